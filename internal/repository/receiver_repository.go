package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/transfeera/receiver-api/internal/models"
	"github.com/transfeera/receiver-api/internal/observability"
	"github.com/transfeera/receiver-api/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ReceiverRepository persists receivers
type ReceiverRepository interface {
	// Create assigns the next id to the receiver and stores it
	Create(ctx context.Context, receiver *models.Receiver) error
	FindByID(ctx context.Context, id int64) (*models.Receiver, error)
	// Search returns one window of receivers matching q, ordered by id,
	// together with the total number of matches
	Search(ctx context.Context, q string, skip, limit int64) ([]models.Receiver, int64, error)
	// Update writes the non-nil changes and returns the stored record
	Update(ctx context.Context, id int64, changes models.ReceiverChanges) (*models.Receiver, error)
	// Delete removes a receiver and returns what was stored
	Delete(ctx context.Context, id int64) (*models.Receiver, error)
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
	Ping(ctx context.Context) error
}

// searchFields are the columns matched by the free-text search
var searchFields = []string{"status", "completed_name", "pix_key_type", "pix_key"}

// MongoReceiverRepository stores receivers in a MongoDB collection and draws
// their integer ids from a counters collection
type MongoReceiverRepository struct {
	receivers *mongo.Collection
	counters  *mongo.Collection
}

// NewMongoReceiverRepository creates a repository over the given collections
func NewMongoReceiverRepository(db *mongo.Database, receiverCollection, counterCollection string) *MongoReceiverRepository {
	return &MongoReceiverRepository{
		receivers: db.Collection(receiverCollection),
		counters:  db.Collection(counterCollection),
	}
}

type counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// nextID atomically increments the receiver sequence
func (r *MongoReceiverRepository) nextID(ctx context.Context) (int64, error) {
	ctx, span, cleanup := utils.TraceDatabaseOperation(ctx, "next_id", r.counters.Name())
	defer cleanup()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c counter
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": r.receivers.Name()},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&c)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return 0, fmt.Errorf("failed to allocate receiver id: %w", err)
	}
	return c.Seq, nil
}

func (r *MongoReceiverRepository) Create(ctx context.Context, receiver *models.Receiver) error {
	id, err := r.nextID(ctx)
	if err != nil {
		recordDatabaseOperation("insert", err)
		return err
	}
	receiver.ID = id

	ctx, span, cleanup := utils.TraceDatabaseOperation(ctx, "insert", r.receivers.Name())
	defer cleanup()

	_, err = r.receivers.InsertOne(ctx, receiver)
	recordDatabaseOperation("insert", err)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"receiver.id": id})
		return fmt.Errorf("failed to insert receiver: %w", err)
	}
	return nil
}

func (r *MongoReceiverRepository) FindByID(ctx context.Context, id int64) (*models.Receiver, error) {
	ctx, span, cleanup := utils.TraceDatabaseOperation(ctx, "find_one", r.receivers.Name())
	defer cleanup()

	var receiver models.Receiver
	err := r.receivers.FindOne(ctx, bson.M{"_id": id}).Decode(&receiver)
	recordDatabaseOperation("find_one", ignoreNoDocuments(err))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrReceiverNotFound
		}
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"receiver.id": id})
		return nil, fmt.Errorf("failed to find receiver: %w", err)
	}
	return &receiver, nil
}

// SearchFilter builds the filter matching q as a literal, case-sensitive
// substring of any searchable field. An empty q matches everything.
func SearchFilter(q string) bson.M {
	if q == "" {
		return bson.M{}
	}
	pattern := regexp.QuoteMeta(q)
	or := make(bson.A, 0, len(searchFields))
	for _, field := range searchFields {
		or = append(or, bson.M{field: bson.M{"$regex": pattern}})
	}
	return bson.M{"$or": or}
}

func (r *MongoReceiverRepository) Search(ctx context.Context, q string, skip, limit int64) ([]models.Receiver, int64, error) {
	ctx, span, cleanup := utils.TraceDatabaseOperation(ctx, "search", r.receivers.Name())
	defer cleanup()
	utils.AddSpanAttribute(span, "search.skip", skip)
	utils.AddSpanAttribute(span, "search.limit", limit)

	filter := SearchFilter(q)

	count, err := r.receivers.CountDocuments(ctx, filter)
	if err != nil {
		recordDatabaseOperation("search", err)
		utils.RecordErrorInSpan(span, err, nil)
		return nil, 0, fmt.Errorf("failed to count receivers: %w", err)
	}

	values := []models.Receiver{}
	if count == 0 || skip >= count {
		recordDatabaseOperation("search", nil)
		return values, count, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.receivers.Find(ctx, filter, opts)
	if err != nil {
		recordDatabaseOperation("search", err)
		utils.RecordErrorInSpan(span, err, nil)
		return nil, 0, fmt.Errorf("failed to search receivers: %w", err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &values); err != nil {
		recordDatabaseOperation("search", err)
		utils.RecordErrorInSpan(span, err, nil)
		return nil, 0, fmt.Errorf("failed to decode receivers: %w", err)
	}

	recordDatabaseOperation("search", nil)
	return values, count, nil
}

func (r *MongoReceiverRepository) Update(ctx context.Context, id int64, changes models.ReceiverChanges) (*models.Receiver, error) {
	ctx, span, cleanup := utils.TraceDatabaseOperation(ctx, "update", r.receivers.Name())
	defer cleanup()

	set := bson.M{"updated_at": time.Now().UTC()}
	if changes.CompletedName != nil {
		set["completed_name"] = *changes.CompletedName
	}
	if changes.CpfCnpj != nil {
		set["cpf_cnpj"] = *changes.CpfCnpj
	}
	if changes.Email != nil {
		set["email"] = *changes.Email
	}
	if changes.PixKeyType != nil {
		set["pix_key_type"] = *changes.PixKeyType
	}
	if changes.PixKey != nil {
		set["pix_key"] = *changes.PixKey
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var receiver models.Receiver
	err := r.receivers.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&receiver)
	recordDatabaseOperation("update", ignoreNoDocuments(err))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrReceiverNotFound
		}
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"receiver.id": id})
		return nil, fmt.Errorf("failed to update receiver: %w", err)
	}
	return &receiver, nil
}

func (r *MongoReceiverRepository) Delete(ctx context.Context, id int64) (*models.Receiver, error) {
	ctx, span, cleanup := utils.TraceDatabaseOperation(ctx, "delete", r.receivers.Name())
	defer cleanup()

	var receiver models.Receiver
	err := r.receivers.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&receiver)
	recordDatabaseOperation("delete", ignoreNoDocuments(err))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrReceiverNotFound
		}
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"receiver.id": id})
		return nil, fmt.Errorf("failed to delete receiver: %w", err)
	}
	return &receiver, nil
}

func (r *MongoReceiverRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	ctx, span, cleanup := utils.TraceDatabaseOperation(ctx, "delete_many", r.receivers.Name())
	defer cleanup()

	if len(ids) == 0 {
		return 0, nil
	}

	result, err := r.receivers.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	recordDatabaseOperation("delete_many", err)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"receiver.ids": ids})
		return 0, fmt.Errorf("failed to delete receivers: %w", err)
	}
	return result.DeletedCount, nil
}

func (r *MongoReceiverRepository) Ping(ctx context.Context) error {
	if err := r.receivers.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return nil
}

func ignoreNoDocuments(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return err
}

func recordDatabaseOperation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	observability.DatabaseOperations.WithLabelValues(operation, status).Inc()
}
