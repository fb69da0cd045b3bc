package services

import (
	"context"
	"errors"
	"math"

	"github.com/transfeera/receiver-api/internal/models"
	"github.com/transfeera/receiver-api/internal/observability"
	"github.com/transfeera/receiver-api/internal/repository"
	"github.com/transfeera/receiver-api/internal/utils"
	"go.uber.org/zap"
)

// ReceiverService handles receiver operations
type ReceiverService struct {
	repo   repository.ReceiverRepository
	logger *zap.Logger
}

// NewReceiverService creates a new receiver service
func NewReceiverService(repo repository.ReceiverRepository, logger *zap.Logger) *ReceiverService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReceiverService{
		repo:   repo,
		logger: logger.Named("receiver_service"),
	}
}

// CreateOne stores a new draft receiver
func (s *ReceiverService) CreateOne(ctx context.Context, req models.CreateReceiverRequest) (*models.Receiver, error) {
	ctx, _, cleanup := utils.TraceBusinessLogic(ctx, "create")
	defer cleanup()

	receiver := req.ToReceiver()
	receiver.BeforeCreate()

	err := s.repo.Create(ctx, receiver)
	observability.RecordOperation("create", err)
	if err != nil {
		s.logger.Error("failed to create receiver", zap.Error(err))
		return nil, err
	}

	s.logger.Info("receiver created",
		zap.Int64("id", receiver.ID),
		zap.String("cpf_cnpj", observability.MaskDocument(receiver.CpfCnpj)),
		zap.String("pix_key_type", string(receiver.PixKeyType)),
	)
	return receiver, nil
}

// GetOne retrieves a receiver by id
func (s *ReceiverService) GetOne(ctx context.Context, id int64) (*models.Receiver, error) {
	ctx, _, cleanup := utils.TraceBusinessLogic(ctx, "get_one")
	defer cleanup()

	receiver, err := s.repo.FindByID(ctx, id)
	observability.RecordOperation("get_one", ignoreNotFound(err))
	if err != nil {
		return nil, err
	}
	return receiver, nil
}

// Search returns one page of receivers matching q.
// An empty result is not an error; a page past the last one is.
func (s *ReceiverService) Search(ctx context.Context, q string, page int) (*models.SearchReceiversResult, error) {
	ctx, span, cleanup := utils.TraceBusinessLogic(ctx, "search")
	defer cleanup()
	utils.AddSpanAttribute(span, "search.page", page)

	if page < 1 {
		page = 1
	}
	pageSize := models.SearchPageSize
	// a page whose offset overflows is past the last page whatever the count,
	// so it only needs the total to build the error
	var skip int64
	if int64(page-1) <= math.MaxInt64/int64(pageSize) {
		skip = int64(page-1) * int64(pageSize)
	}

	values, count, err := s.repo.Search(ctx, q, skip, int64(pageSize))
	if err != nil {
		observability.RecordOperation("search", err)
		s.logger.Error("failed to search receivers", zap.String("q", q), zap.Int("page", page), zap.Error(err))
		return nil, err
	}

	result := &models.SearchReceiversResult{
		Values:          []models.Receiver{},
		TotalCount:      count,
		QuantityPerPage: pageSize,
	}
	if count == 0 {
		observability.RecordOperation("search", nil)
		return result, nil
	}

	result.TotalPages = models.TotalPages(count, pageSize)
	if page > result.TotalPages {
		observability.RecordOperation("search", nil)
		return nil, &models.PageOutOfRangeError{Min: 1, Max: result.TotalPages}
	}

	result.Values = values
	observability.RecordOperation("search", nil)
	return result, nil
}

// PatchOne applies the permitted subset of the request to an existing receiver.
// A validated receiver only accepts a new email.
func (s *ReceiverService) PatchOne(ctx context.Context, req models.PatchReceiverRequest) (*models.Receiver, error) {
	ctx, span, cleanup := utils.TraceBusinessLogic(ctx, "patch")
	defer cleanup()
	utils.AddSpanAttribute(span, "receiver.id", req.ID)

	current, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		observability.RecordOperation("patch", ignoreNotFound(err))
		return nil, err
	}

	changes := models.ProjectPatch(current.Status, req)
	utils.AddSpanAttribute(span, "receiver.status", string(current.Status))

	if changes.IsEmpty() {
		observability.RecordOperation("patch", nil)
		s.logger.Debug("receiver patch has nothing to apply", zap.Int64("id", req.ID))
		return current, nil
	}

	updated, err := s.repo.Update(ctx, req.ID, changes)
	observability.RecordOperation("patch", ignoreNotFound(err))
	if err != nil {
		if !errors.Is(err, models.ErrReceiverNotFound) {
			s.logger.Error("failed to update receiver", zap.Int64("id", req.ID), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("receiver updated",
		zap.Int64("id", updated.ID),
		zap.String("status", string(updated.Status)),
		zap.Bool("email_only", current.Status == models.ReceiverStatusValidated),
	)
	return updated, nil
}

// RemoveOne deletes a receiver and returns what it held
func (s *ReceiverService) RemoveOne(ctx context.Context, id int64) (*models.Receiver, error) {
	ctx, _, cleanup := utils.TraceBusinessLogic(ctx, "remove_one")
	defer cleanup()

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		observability.RecordOperation("remove_one", ignoreNotFound(err))
		return nil, err
	}

	removed, err := s.repo.Delete(ctx, id)
	observability.RecordOperation("remove_one", ignoreNotFound(err))
	if err != nil {
		if !errors.Is(err, models.ErrReceiverNotFound) {
			s.logger.Error("failed to remove receiver", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("receiver removed", zap.Int64("id", id))
	return removed, nil
}

// RemoveMany deletes every receiver in ids and returns how many existed
func (s *ReceiverService) RemoveMany(ctx context.Context, ids []int64) (int64, error) {
	ctx, span, cleanup := utils.TraceBusinessLogic(ctx, "remove_many")
	defer cleanup()
	utils.AddSpanAttribute(span, "receiver.ids", ids)

	deleted, err := s.repo.DeleteMany(ctx, ids)
	observability.RecordOperation("remove_many", err)
	if err != nil {
		s.logger.Error("failed to remove receivers", zap.Int64s("ids", ids), zap.Error(err))
		return 0, err
	}

	s.logger.Info("receivers removed", zap.Int("requested", len(ids)), zap.Int64("deleted", deleted))
	return deleted, nil
}

// Ping checks that the receiver store is reachable
func (s *ReceiverService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func ignoreNotFound(err error) error {
	if errors.Is(err, models.ErrReceiverNotFound) {
		return nil
	}
	return err
}
