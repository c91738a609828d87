package entities

import (
	"github.com/google/uuid"
)

type Transaction struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Type          string    `json:"type"` // top_up, premium_upgrade, voice_training, video_generation
	Amount        float64   `json:"amount,omitempty"`
	CreditsChange int       `json:"credits_change"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	PaymentStatus string    `json:"payment_status"` // pending, success, failed
	Description   string    `json:"description"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
