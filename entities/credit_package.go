package entities

import (
	"github.com/google/uuid"
)

type CreditPackage struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                string    `json:"name"`
	Credits             int       `json:"credits"`
	Price               float64   `json:"price"`
	Currency            string    `json:"currency"`
	IsPremium           bool      `json:"is_premium"`
	PremiumDurationDays int       `json:"premium_duration_days,omitempty"`
	IsActive            bool      `json:"is_active"`

	Timestamp
}
