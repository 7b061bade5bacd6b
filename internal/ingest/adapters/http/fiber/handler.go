package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/laudwin/Dashlite-v5/internal/ingest/core/usecase"
	applog "github.com/laudwin/Dashlite-v5/internal/log"
)

type StoreMentionUseCase interface {
	Execute(ctx context.Context, in usecase.StoreMentionInput) (bool, error)
	BulkStore(ctx context.Context, in usecase.BulkStoreInput) (usecase.BulkStoreResult, error)
}

type MentionHandler struct {
	storeUC StoreMentionUseCase
}

func NewMentionHandler(storeUC StoreMentionUseCase) *MentionHandler {
	return &MentionHandler{storeUC: storeUC}
}

// CreateMention godoc
// @Summary Store a mention event
// @Description Stores a single mention with idempotency handling
// @Tags Ingest
// @Accept json
// @Produce json
// @Param request body CreateMentionRequest true "Mention payload"
// @Success 201 {object} CreateMentionResponse
// @Success 200 {object} CreateMentionResponse "Duplicate mention"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (h *MentionHandler) CreateMention(c *fiber.Ctx) error {
	var req CreateMentionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	created, err := h.storeUC.Execute(c.UserContext(), toInput(req))
	if err != nil {
		return writeError(c, err)
	}

	if !created {
		return c.Status(http.StatusOK).JSON(CreateMentionResponse{Status: "duplicate"})
	}
	return c.Status(http.StatusCreated).JSON(CreateMentionResponse{Status: "created"})
}

// BulkCreateMentions godoc
// @Summary Bulk store mention events
// @Description Validates every mention first, then stores them individually
// @Tags Ingest
// @Accept json
// @Produce json
// @Param request body BulkCreateMentionsRequest true "Bulk mention payload"
// @Success 201 {object} BulkCreateMentionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/bulk [post]
func (h *MentionHandler) BulkCreateMentions(c *fiber.Ctx) error {
	var req BulkCreateMentionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	if len(req.Mentions) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "mentions_list_required"})
	}

	inputs := make([]usecase.StoreMentionInput, len(req.Mentions))
	for i, m := range req.Mentions {
		inputs[i] = toInput(m)
	}

	result, err := h.storeUC.BulkStore(c.UserContext(), usecase.BulkStoreInput{Mentions: inputs})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(BulkCreateMentionsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

func toInput(r CreateMentionRequest) usecase.StoreMentionInput {
	return usecase.StoreMentionInput{
		Dataset:   r.Dataset,
		Timestamp: r.Timestamp,
		Measure:   r.Measure,
		Labels:    r.Labels,
	}
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidMention),
		errors.Is(err, usecase.ErrFutureTime),
		errors.Is(err, usecase.ErrNegativeMeasure):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_mention",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrBulkTooLarge):
		return c.Status(http.StatusRequestEntityTooLarge).JSON(ErrorResponse{
			Error:   "bulk_too_large",
			Message: err.Error(),
		})
	default:
		applog.FromFiber(c).Error("store mention failed", applog.FieldError, err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
