package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/internal/api/presenters"
	"github.com/ppdew9811-hash/eduvoice/pkg/voice"
)

type (
	VoiceHandler interface {
		GetCelebrityVoices(c *fiber.Ctx) error
		TrainVoice(c *fiber.Ctx) error
		GetVoiceModels(c *fiber.Ctx) error
		TrainingWebhookHandler(c *fiber.Ctx) error
	}

	voiceHandler struct {
		voiceService voice.VoiceService
		validator    *validator.Validate
	}
)

func NewVoiceHandler(voiceService voice.VoiceService, validator *validator.Validate) VoiceHandler {
	return &voiceHandler{
		voiceService: voiceService,
		validator:    validator,
	}
}

func (h *voiceHandler) GetCelebrityVoices(c *fiber.Ctx) error {
	res, err := h.voiceService.GetCelebrityVoices(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCelebrityVoices, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCelebrityVoices)
}

func (h *voiceHandler) TrainVoice(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.TrainVoiceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// Audio is optional, the sample can also arrive as a URL.
	if file, err := c.FormFile("audio"); err == nil {
		req.Audio = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTrainVoice, err)
	}

	res, err := h.voiceService.Train(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTrainVoice, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessTrainVoice)
}

func (h *voiceHandler) GetVoiceModels(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.voiceService.ListVoiceModels(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetVoiceModels, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetVoiceModels)
}

// TrainingWebhookHandler lets an external synthesis backend report the
// outcome of a training job. It lands in the same idempotent completion
// path as the demo timer.
func (h *voiceHandler) TrainingWebhookHandler(c *fiber.Ctx) error {
	req := new(domain.TrainingCallbackRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteTraining, err)
	}

	if err := h.voiceService.CompleteTraining(c.Context(), req.ModelID, req.Status); err != nil {
		if errors.Is(err, domain.ErrVoiceModelNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCompleteTraining, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteTraining, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCompleteTraining)
}
