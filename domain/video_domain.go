package domain

import (
	"errors"
	"time"
)

const (
	VideoStatusGenerating = "generating"
	VideoStatusReady      = "ready"
	VideoStatusFailed     = "failed"
)

var (
	MessageSuccessGenerateVideo = "video generation started successfully"
	MessageSuccessGetVideos     = "videos retrieved successfully"
	MessageSuccessGetVideo      = "video retrieved successfully"
	MessageSuccessCompleteVideo = "video generation completed"

	MessageFailedGenerateVideo = "failed to generate video"
	MessageFailedGetVideos     = "failed to retrieve videos"
	MessageFailedCompleteVideo = "failed to complete video generation"

	ErrVideoNotFound     = errors.New("video not found")
	ErrVideoAlreadyFinal = errors.New("video generation already finished")
)

type (
	GenerateVideoRequest struct {
		Topic          string `json:"topic" validate:"required"`
		VoiceModelID   string `json:"voice_model_id" validate:"required"`
		VoiceModelType string `json:"voice_model_type" validate:"required,oneof=celebrity custom"`
	}

	VideoResponse struct {
		ID             string    `json:"id"`
		UserID         string    `json:"user_id"`
		Topic          string    `json:"topic"`
		VoiceModelID   string    `json:"voice_model_id"`
		VoiceModelType string    `json:"voice_model_type"`
		VideoURL       string    `json:"video_url,omitempty"`
		Duration       int       `json:"duration,omitempty"`
		Status         string    `json:"status"`
		CreditsUsed    int       `json:"credits_used"`
		CreatedAt      time.Time `json:"created_at"`
	}

	GenerateVideoResponse struct {
		Video            VideoResponse `json:"video"`
		CreditsRemaining int           `json:"credits_remaining"`
	}

	RenderCallbackRequest struct {
		VideoID string `json:"video_id" validate:"required,uuid"`
		Status  string `json:"status" validate:"required,oneof=ready failed"`
	}
)
