package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/internal/api/presenters"
	"github.com/ppdew9811-hash/eduvoice/pkg/video"
)

type (
	VideoHandler interface {
		GenerateVideo(c *fiber.Ctx) error
		GetVideos(c *fiber.Ctx) error
		RenderWebhookHandler(c *fiber.Ctx) error
	}

	videoHandler struct {
		videoService video.VideoService
		validator    *validator.Validate
	}
)

func NewVideoHandler(videoService video.VideoService, validator *validator.Validate) VideoHandler {
	return &videoHandler{
		videoService: videoService,
		validator:    validator,
	}
}

func (h *videoHandler) GenerateVideo(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GenerateVideoRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateVideo, err)
	}

	res, err := h.videoService.Generate(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateVideo, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessGenerateVideo)
}

// GetVideos lists the caller's videos, or returns a single one when the
// id query parameter is present. Status polling uses the single lookup.
func (h *videoHandler) GetVideos(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if videoID := c.Query("id"); videoID != "" {
		res, err := h.videoService.GetVideoByID(c.Context(), videoID, userID)
		if err != nil {
			if errors.Is(err, domain.ErrVideoNotFound) {
				return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetVideos, err)
			}
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetVideos, err)
		}
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetVideo)
	}

	res, err := h.videoService.ListVideos(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetVideos, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetVideos)
}

// RenderWebhookHandler lets an external rendering backend report the
// outcome of a generation job. It lands in the same idempotent completion
// path as the demo timer.
func (h *videoHandler) RenderWebhookHandler(c *fiber.Ctx) error {
	req := new(domain.RenderCallbackRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteVideo, err)
	}

	if err := h.videoService.CompleteRendering(c.Context(), req.VideoID, req.Status); err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCompleteVideo, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteVideo, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCompleteVideo)
}
