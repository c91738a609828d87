package domain

import (
	"errors"
)

var (
	MessageSuccessCreatePayment   = "payment created successfully"
	MessageSuccessCompletePayment = "payment completed successfully"
	MessageSuccessWebhook         = "notification processed successfully"

	MessageFailedCreatePayment   = "failed to create payment"
	MessageFailedCompletePayment = "failed to complete payment"
	MessageFailedWebhook         = "failed to process notification"

	ErrPaymentFailed = errors.New("payment processing failed")
)

type (
	CreatePaymentRequest struct {
		PackageID     string `json:"package_id" validate:"required,uuid"`
		PaymentMethod string `json:"payment_method" validate:"required"`
	}

	CreatePaymentResponse struct {
		Transaction Transaction `json:"transaction"`
		PaymentURL  string      `json:"payment_url"`
	}

	CompletePaymentRequest struct {
		TransactionID string `json:"transaction_id" validate:"required,uuid"`
	}

	// MidtransNotification carries the fields we need from a Midtrans
	// HTTP notification. OrderID is the transaction id we handed to Snap.
	MidtransNotification struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)
