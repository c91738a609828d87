package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	VoiceStatusTraining = "training"
	VoiceStatusReady    = "ready"
	VoiceStatusFailed   = "failed"

	VoiceModelTypeCelebrity = "celebrity"
	VoiceModelTypeCustom    = "custom"
)

var (
	MessageSuccessGetCelebrityVoices = "celebrity voices retrieved successfully"
	MessageSuccessTrainVoice         = "voice model training started successfully"
	MessageSuccessGetVoiceModels     = "voice models retrieved successfully"
	MessageSuccessCompleteTraining   = "voice model training completed"

	MessageFailedGetCelebrityVoices = "failed to retrieve celebrity voices"
	MessageFailedTrainVoice         = "failed to train voice model"
	MessageFailedGetVoiceModels     = "failed to retrieve voice models"
	MessageFailedCompleteTraining   = "failed to complete voice model training"

	ErrVoiceModelNotFound     = errors.New("voice model not found")
	ErrVoiceModelAlreadyFinal = errors.New("voice model training already finished")
)

type (
	TrainVoiceRequest struct {
		Name     string                `json:"name" form:"name" validate:"required"`
		AudioURL string                `json:"audio_url" form:"audio_url" validate:"omitempty,url"`
		Audio    *multipart.FileHeader `json:"-" form:"audio"`
	}

	VoiceModelResponse struct {
		ID              string    `json:"id"`
		UserID          string    `json:"user_id"`
		Name            string    `json:"name"`
		AudioURL        string    `json:"audio_url,omitempty"`
		Status          string    `json:"status"`
		SimilarityScore float64   `json:"similarity_score"`
		CreatedAt       time.Time `json:"created_at"`
	}

	TrainVoiceResponse struct {
		Model            VoiceModelResponse `json:"model"`
		CreditsRemaining int                `json:"credits_remaining"`
	}

	CelebrityVoiceResponse struct {
		ID              string  `json:"id"`
		Name            string  `json:"name"`
		Description     string  `json:"description"`
		Category        string  `json:"category"`
		ImageURL        string  `json:"image_url,omitempty"`
		SimilarityScore float64 `json:"similarity_score"`
	}

	TrainingCallbackRequest struct {
		ModelID string `json:"model_id" validate:"required,uuid"`
		Status  string `json:"status" validate:"required,oneof=ready failed"`
	}
)
