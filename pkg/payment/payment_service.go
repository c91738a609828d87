package payment

import (
	"context"
	"fmt"
	"log"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/internal/utils"
	"github.com/ppdew9811-hash/eduvoice/pkg/credit"
	"github.com/ppdew9811-hash/eduvoice/pkg/user"
)

type (
	// PaymentService orchestrates a purchase: pending transaction first,
	// then an opaque payment reference the client follows. Confirmation
	// arrives either through the Midtrans notification webhook or, when
	// no gateway is configured, through the demo complete endpoint. Both
	// paths end in the ledger's ConfirmPurchase.
	PaymentService interface {
		CreatePayment(ctx context.Context, req domain.CreatePaymentRequest, userID string) (*domain.CreatePaymentResponse, error)
		CompletePayment(ctx context.Context, transactionID, userID string) (*domain.PurchaseResult, error)
		HandleNotification(ctx context.Context, notification domain.MidtransNotification) error
	}

	paymentService struct {
		creditService  credit.CreditService
		userRepository user.UserRepository
		snapClient     snap.Client
		coreClient     coreapi.Client
		gatewayReady   bool
	}
)

func NewPaymentService(creditService credit.CreditService, userRepository user.UserRepository) PaymentService {
	s := &paymentService{
		creditService:  creditService,
		userRepository: userRepository,
	}

	serverKey := utils.GetConfig("SERVER_KEY")
	if serverKey != "" {
		env := midtrans.Sandbox
		if utils.GetConfig("IsProd") == "true" {
			env = midtrans.Production
		}
		s.snapClient.New(serverKey, env)
		s.coreClient.New(serverKey, env)
		s.gatewayReady = true
	}

	return s
}

func (s *paymentService) CreatePayment(ctx context.Context, req domain.CreatePaymentRequest, userID string) (*domain.CreatePaymentResponse, error) {
	pkg, err := s.creditService.GetPackageByID(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}

	transaction, err := s.creditService.CreatePendingPurchase(ctx, userID, req.PackageID, req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	paymentURL := fmt.Sprintf("/payment/process?id=%s", transaction.ID)
	if s.gatewayReady {
		paymentURL, err = s.createSnapTransaction(ctx, transaction, pkg, userID)
		if err != nil {
			return nil, domain.ErrPaymentFailed
		}
	}

	return &domain.CreatePaymentResponse{
		Transaction: *transaction,
		PaymentURL:  paymentURL,
	}, nil
}

func (s *paymentService) createSnapTransaction(ctx context.Context, transaction *domain.Transaction, pkg *domain.CreditPackage, userID string) (string, error) {
	userData, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  transaction.ID,
			GrossAmt: int64(pkg.Price),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: userData.Name,
			Email: userData.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    pkg.ID,
				Name:  pkg.Name,
				Price: int64(pkg.Price),
				Qty:   1,
			},
		},
	}

	resp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return "", snapErr
	}

	return resp.RedirectURL, nil
}

func (s *paymentService) CompletePayment(ctx context.Context, transactionID, userID string) (*domain.PurchaseResult, error) {
	transaction, err := s.creditService.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if transaction.UserID != userID {
		return nil, domain.ErrTransactionNotFound
	}

	return s.creditService.ConfirmPurchase(ctx, transactionID)
}

func (s *paymentService) HandleNotification(ctx context.Context, notification domain.MidtransNotification) error {
	status := notification.TransactionStatus
	fraud := notification.FraudStatus

	if s.gatewayReady {
		// Never trust the notification body alone, re-check with Midtrans.
		res, err := s.coreClient.CheckTransaction(notification.OrderID)
		if err != nil {
			log.Printf("midtrans status check failed for order %s: %v", notification.OrderID, err)
			return domain.ErrPaymentFailed
		}
		status = res.TransactionStatus
		fraud = res.FraudStatus
	}

	switch status {
	case "capture":
		if fraud != "accept" {
			return nil
		}
		_, err := s.creditService.ConfirmPurchase(ctx, notification.OrderID)
		return err
	case "settlement":
		_, err := s.creditService.ConfirmPurchase(ctx, notification.OrderID)
		return err
	case "deny", "cancel", "expire":
		return s.creditService.FailPurchase(ctx, notification.OrderID)
	default:
		return nil
	}
}
