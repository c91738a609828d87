package domain

import (
	"errors"
	"time"
)

const (
	TransactionTypeTopUp           = "top_up"
	TransactionTypePremiumUpgrade  = "premium_upgrade"
	TransactionTypeVoiceTraining   = "voice_training"
	TransactionTypeVideoGeneration = "video_generation"

	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"

	// Feature costs
	COST_VOICE_TRAINING   = 25
	COST_VIDEO_GENERATION = 10
)

var (
	MessageSuccessGetCreditPackages = "credit packages retrieved successfully"
	MessageSuccessGetTransactions   = "transaction history retrieved successfully"

	MessageFailedGetCreditPackages = "failed to retrieve credit packages"
	MessageFailedGetTransactions   = "failed to retrieve transaction history"

	ErrInsufficientCredits         = errors.New("insufficient credits")
	ErrCreditPackageNotFound       = errors.New("credit package not found")
	ErrTransactionNotFound         = errors.New("transaction not found")
	ErrTransactionAlreadyConfirmed = errors.New("transaction already confirmed")
)

type (
	CreditPackage struct {
		ID                  string  `json:"id"`
		Name                string  `json:"name"`
		Credits             int     `json:"credits"`
		Price               float64 `json:"price"`
		Currency            string  `json:"currency"`
		IsPremium           bool    `json:"is_premium"`
		PremiumDurationDays int     `json:"premium_duration_days,omitempty"`
	}

	Transaction struct {
		ID            string    `json:"id"`
		UserID        string    `json:"user_id"`
		Type          string    `json:"type"`
		Amount        float64   `json:"amount,omitempty"`
		CreditsChange int       `json:"credits_change"`
		PaymentMethod string    `json:"payment_method,omitempty"`
		PaymentStatus string    `json:"payment_status"`
		Description   string    `json:"description"`
		CreatedAt     time.Time `json:"created_at"`
	}

	PurchaseResult struct {
		CreditsAdded int  `json:"credits_added"`
		TotalCredits int  `json:"total_credits"`
		IsPremium    bool `json:"is_premium"`
	}
)
