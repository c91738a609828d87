package entities

import (
	"github.com/google/uuid"
)

type CelebrityVoice struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	ImageURL        string    `json:"image_url,omitempty"`
	SimilarityScore float64   `json:"similarity_score"`

	Timestamp
}
