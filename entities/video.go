package entities

import (
	"github.com/google/uuid"
)

type Video struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Topic          string    `json:"topic"`
	VoiceModelID   string    `json:"voice_model_id"`
	VoiceModelType string    `json:"voice_model_type"` // "celebrity", "custom"
	VideoURL       string    `json:"video_url,omitempty"`
	Duration       int       `json:"duration,omitempty"`
	Status         string    `json:"status"` // "generating", "ready", "failed"
	CreditsUsed    int       `json:"credits_used"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
