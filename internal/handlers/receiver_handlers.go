package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/transfeera/receiver-api/internal/models"
	"github.com/transfeera/receiver-api/internal/services"
	"github.com/transfeera/receiver-api/internal/utils"
	"go.uber.org/zap"
)

// ReceiverHandlers exposes the receiver operations over HTTP
type ReceiverHandlers struct {
	logger          *zap.Logger
	receiverService *services.ReceiverService
}

// NewReceiverHandlers creates a new receiver handlers instance
func NewReceiverHandlers(logger *zap.Logger, receiverService *services.ReceiverService) *ReceiverHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReceiverHandlers{
		logger:          logger.Named("receiver_handlers"),
		receiverService: receiverService,
	}
}

// RegisterRoutes mounts the receiver routes on a router group
func (h *ReceiverHandlers) RegisterRoutes(rg *gin.RouterGroup) {
	receivers := rg.Group("/receiver")
	{
		receivers.GET("", h.Search)
		receivers.GET("/:id", h.GetOne)
		receivers.POST("", h.CreateOne)
		receivers.PATCH("", h.PatchOne)
		receivers.DELETE("/:id", h.RemoveOne)
		receivers.DELETE("", h.RemoveMany)
	}
}

// Search godoc
// @Summary Search receivers
// @Description Lists receivers whose status, name, PIX key type or PIX key contain q. Pages hold 10 receivers ordered by id.
// @Tags Receivers
// @Produce json
// @Param q query string false "Case-sensitive substring to search for"
// @Param page query int false "Page number (default: 1)" minimum(1)
// @Success 200 {object} models.SearchReceiversResult
// @Failure 400 {object} ErrorResponse
// @Failure 412 {object} ErrorResponse "Page out of range"
// @Failure 500 {object} ErrorResponse
// @Router /receiver [get]
func (h *ReceiverHandlers) Search(c *gin.Context) {
	var query models.SearchReceiversQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, http.StatusBadRequest, utils.FormatValidationErrors(err)...)
		return
	}

	result, err := h.receiverService.Search(c.Request.Context(), query.Q, query.Page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetOne godoc
// @Summary Get a receiver
// @Description Returns a single receiver by id
// @Tags Receivers
// @Produce json
// @Param id path int true "Receiver id" minimum(1)
// @Success 200 {object} models.Receiver
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /receiver/{id} [get]
func (h *ReceiverHandlers) GetOne(c *gin.Context) {
	id, err := parseReceiverID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	receiver, err := h.receiverService.GetOne(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, receiver)
}

// CreateOne godoc
// @Summary Create a receiver
// @Description Creates a receiver in the Rascunho status
// @Tags Receivers
// @Accept json
// @Produce json
// @Param receiver body models.CreateReceiverRequest true "Receiver data"
// @Success 201 {object} models.Receiver
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /receiver [post]
func (h *ReceiverHandlers) CreateOne(c *gin.Context) {
	var req models.CreateReceiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, utils.FormatValidationErrors(err)...)
		return
	}

	receiver, err := h.receiverService.CreateOne(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, receiver)
}

// PatchOne godoc
// @Summary Update a receiver
// @Description Updates the receiver identified by the id in the body. A Validado receiver only accepts a new email, any other field is ignored.
// @Tags Receivers
// @Accept json
// @Produce json
// @Param receiver body models.PatchReceiverRequest true "Fields to update"
// @Success 200 {object} models.Receiver
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /receiver [patch]
func (h *ReceiverHandlers) PatchOne(c *gin.Context) {
	var req models.PatchReceiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, utils.FormatValidationErrors(err)...)
		return
	}

	receiver, err := h.receiverService.PatchOne(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, receiver)
}

// RemoveOne godoc
// @Summary Remove a receiver
// @Tags Receivers
// @Param id path int true "Receiver id" minimum(1)
// @Success 204 "Receiver removed"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /receiver/{id} [delete]
func (h *ReceiverHandlers) RemoveOne(c *gin.Context) {
	id, err := parseReceiverID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.receiverService.RemoveOne(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveMany godoc
// @Summary Remove receivers
// @Description Removes every receiver in ids. Unknown ids are ignored.
// @Tags Receivers
// @Accept json
// @Param ids body models.RemoveManyReceiversRequest true "Receiver ids"
// @Success 204 "Receivers removed"
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /receiver [delete]
func (h *ReceiverHandlers) RemoveMany(c *gin.Context) {
	var req models.RemoveManyReceiversRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, utils.FormatValidationErrors(err)...)
		return
	}

	if _, err := h.receiverService.RemoveMany(c.Request.Context(), req.IDs); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReceiverHandlers) handleError(c *gin.Context, err error) {
	var rangeErr *models.PageOutOfRangeError
	switch {
	case errors.Is(err, models.ErrReceiverNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &rangeErr):
		abortWithError(c, http.StatusPreconditionFailed, err.Error())
	default:
		_ = c.Error(err)
		h.logger.Error("receiver operation failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		abortWithError(c, http.StatusInternalServerError)
	}
}

func parseReceiverID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, models.ErrInvalidReceiverID
	}
	return id, nil
}
