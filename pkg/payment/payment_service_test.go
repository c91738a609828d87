package payment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/entities"
	"github.com/ppdew9811-hash/eduvoice/pkg/credit"
	"github.com/ppdew9811-hash/eduvoice/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without SERVER_KEY configured the service runs in demo mode: no
// gateway calls, payments complete through CompletePayment or the
// notification body.
func newTestPaymentService(t *testing.T) (PaymentService, credit.CreditRepository, user.UserRepository) {
	t.Helper()
	creditRepo := credit.NewMemoryCreditRepository()
	userRepo := user.NewMemoryUserRepository()
	creditService := credit.NewCreditService(creditRepo, userRepo)
	return NewPaymentService(creditService, userRepo), creditRepo, userRepo
}

func createTestUser(t *testing.T, repo user.UserRepository, credits int) *entities.User {
	t.Helper()
	u := &entities.User{
		ID:      uuid.New(),
		Email:   uuid.New().String() + "@example.com",
		Name:    "Test User",
		Credits: credits,
		Role:    domain.RoleUser,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	return u
}

func createTestPackage(t *testing.T, repo credit.CreditRepository, name string, credits int, price float64, premiumDays int) *entities.CreditPackage {
	t.Helper()
	pkg := &entities.CreditPackage{
		ID:                  uuid.New(),
		Name:                name,
		Credits:             credits,
		Price:               price,
		Currency:            "IDR",
		IsPremium:           premiumDays > 0,
		PremiumDurationDays: premiumDays,
		IsActive:            true,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	require.NoError(t, repo.CreateCreditPackage(context.Background(), pkg))
	return pkg
}

func TestCreatePaymentDemoMode(t *testing.T) {
	svc, creditRepo, userRepo := newTestPaymentService(t)
	ctx := context.Background()
	u := createTestUser(t, userRepo, 50)
	pkg := createTestPackage(t, creditRepo, "Paket Starter", 100, 50000, 0)

	res, err := svc.CreatePayment(ctx, domain.CreatePaymentRequest{
		PackageID:     pkg.ID.String(),
		PaymentMethod: "gopay",
	}, u.ID.String())
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusPending, res.Transaction.PaymentStatus)
	assert.Equal(t, "/payment/process?id="+res.Transaction.ID, res.PaymentURL)
}

func TestCreatePaymentUnknownPackage(t *testing.T) {
	svc, _, userRepo := newTestPaymentService(t)
	ctx := context.Background()
	u := createTestUser(t, userRepo, 50)

	_, err := svc.CreatePayment(ctx, domain.CreatePaymentRequest{
		PackageID:     uuid.New().String(),
		PaymentMethod: "gopay",
	}, u.ID.String())
	assert.ErrorIs(t, err, domain.ErrCreditPackageNotFound)
}

func TestCompletePayment(t *testing.T) {
	svc, creditRepo, userRepo := newTestPaymentService(t)
	ctx := context.Background()
	u := createTestUser(t, userRepo, 50)
	pkg := createTestPackage(t, creditRepo, "Paket Reguler", 250, 100000, 0)

	res, err := svc.CreatePayment(ctx, domain.CreatePaymentRequest{
		PackageID:     pkg.ID.String(),
		PaymentMethod: "gopay",
	}, u.ID.String())
	require.NoError(t, err)

	result, err := svc.CompletePayment(ctx, res.Transaction.ID, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 250, result.CreditsAdded)
	assert.Equal(t, 300, result.TotalCredits)

	// Second completion must not grant credits again.
	_, err = svc.CompletePayment(ctx, res.Transaction.ID, u.ID.String())
	assert.ErrorIs(t, err, domain.ErrTransactionAlreadyConfirmed)
}

func TestCompletePaymentForeignTransaction(t *testing.T) {
	svc, creditRepo, userRepo := newTestPaymentService(t)
	ctx := context.Background()
	alice := createTestUser(t, userRepo, 50)
	bob := createTestUser(t, userRepo, 50)
	pkg := createTestPackage(t, creditRepo, "Paket Starter", 100, 50000, 0)

	res, err := svc.CreatePayment(ctx, domain.CreatePaymentRequest{
		PackageID:     pkg.ID.String(),
		PaymentMethod: "gopay",
	}, alice.ID.String())
	require.NoError(t, err)

	_, err = svc.CompletePayment(ctx, res.Transaction.ID, bob.ID.String())
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestHandleNotificationSettlement(t *testing.T) {
	svc, creditRepo, userRepo := newTestPaymentService(t)
	ctx := context.Background()
	u := createTestUser(t, userRepo, 50)
	pkg := createTestPackage(t, creditRepo, "Premium 1 Bulan", 1000, 299000, 30)

	res, err := svc.CreatePayment(ctx, domain.CreatePaymentRequest{
		PackageID:     pkg.ID.String(),
		PaymentMethod: "bank_transfer",
	}, u.ID.String())
	require.NoError(t, err)

	require.NoError(t, svc.HandleNotification(ctx, domain.MidtransNotification{
		OrderID:           res.Transaction.ID,
		TransactionStatus: "settlement",
	}))

	updated, err := userRepo.GetUserByID(ctx, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1050, updated.Credits)
	assert.True(t, updated.IsPremium)
	require.NotNil(t, updated.PremiumExpiresAt)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), *updated.PremiumExpiresAt, time.Minute)
}

func TestHandleNotificationExpireFailsTransaction(t *testing.T) {
	svc, creditRepo, userRepo := newTestPaymentService(t)
	ctx := context.Background()
	u := createTestUser(t, userRepo, 50)
	pkg := createTestPackage(t, creditRepo, "Paket Starter", 100, 50000, 0)

	res, err := svc.CreatePayment(ctx, domain.CreatePaymentRequest{
		PackageID:     pkg.ID.String(),
		PaymentMethod: "gopay",
	}, u.ID.String())
	require.NoError(t, err)

	require.NoError(t, svc.HandleNotification(ctx, domain.MidtransNotification{
		OrderID:           res.Transaction.ID,
		TransactionStatus: "expire",
	}))

	updated, err := userRepo.GetUserByID(ctx, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Credits)

	// A failed payment cannot be completed afterwards.
	_, err = svc.CompletePayment(ctx, res.Transaction.ID, u.ID.String())
	assert.ErrorIs(t, err, domain.ErrTransactionAlreadyConfirmed)
}

func TestHandleNotificationUnknownStatusIgnored(t *testing.T) {
	svc, creditRepo, userRepo := newTestPaymentService(t)
	ctx := context.Background()
	u := createTestUser(t, userRepo, 50)
	pkg := createTestPackage(t, creditRepo, "Paket Starter", 100, 50000, 0)

	res, err := svc.CreatePayment(ctx, domain.CreatePaymentRequest{
		PackageID:     pkg.ID.String(),
		PaymentMethod: "gopay",
	}, u.ID.String())
	require.NoError(t, err)

	require.NoError(t, svc.HandleNotification(ctx, domain.MidtransNotification{
		OrderID:           res.Transaction.ID,
		TransactionStatus: "pending",
	}))

	updated, err := userRepo.GetUserByID(ctx, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Credits)
}
