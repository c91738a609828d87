package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email            string     `gorm:"uniqueIndex" json:"email"`
	PasswordHash     string     `json:"-"`
	Name             string     `json:"name"`
	Credits          int        `json:"credits"`
	IsPremium        bool       `json:"is_premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at,omitempty"`
	IsVerified       bool       `json:"is_verified"`
	Role             string     `json:"role"`

	Timestamp
}
