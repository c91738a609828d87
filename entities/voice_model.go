package entities

import (
	"github.com/google/uuid"
)

type VoiceModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	AudioURL        string    `json:"audio_url,omitempty"`
	Status          string    `json:"status"` // "training", "ready", "failed"
	SimilarityScore float64   `json:"similarity_score"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
