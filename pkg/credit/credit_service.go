package credit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/entities"
	"github.com/ppdew9811-hash/eduvoice/pkg/user"
)

type (
	// CreditService is the ledger: every credit balance mutation goes
	// through here and is serialized per user.
	CreditService interface {
		GetPackages(ctx context.Context) ([]*domain.CreditPackage, error)
		GetPackageByID(ctx context.Context, id string) (*domain.CreditPackage, error)
		Debit(ctx context.Context, userID string, amount int, txType, description string) (*domain.Transaction, error)
		Refund(ctx context.Context, userID string, amount int, txType, description string) error
		CreatePendingPurchase(ctx context.Context, userID, packageID, paymentMethod string) (*domain.Transaction, error)
		ConfirmPurchase(ctx context.Context, transactionID string) (*domain.PurchaseResult, error)
		FailPurchase(ctx context.Context, transactionID string) error
		GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
		GetTransactionHistory(ctx context.Context, userID string) ([]*domain.Transaction, error)
	}

	creditService struct {
		creditRepository CreditRepository
		userRepository   user.UserRepository
		locks            *userLocks
	}
)

func NewCreditService(creditRepository CreditRepository, userRepository user.UserRepository) CreditService {
	return &creditService{
		creditRepository: creditRepository,
		userRepository:   userRepository,
		locks:            newUserLocks(),
	}
}

func (s *creditService) GetPackages(ctx context.Context) ([]*domain.CreditPackage, error) {
	packages, err := s.creditRepository.GetCreditPackages(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.CreditPackage, 0, len(packages))
	for _, pkg := range packages {
		result = append(result, toCreditPackage(pkg))
	}
	return result, nil
}

func (s *creditService) GetPackageByID(ctx context.Context, id string) (*domain.CreditPackage, error) {
	pkg, err := s.creditRepository.GetCreditPackageByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCreditPackage(pkg), nil
}

func (s *creditService) Debit(ctx context.Context, userID string, amount int, txType, description string) (*domain.Transaction, error) {
	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	userData, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if userData.Credits < amount {
		return nil, domain.ErrInsufficientCredits
	}

	userData.Credits -= amount
	userData.UpdatedAt = time.Now()
	if err := s.userRepository.UpdateUser(ctx, userData); err != nil {
		return nil, err
	}

	transaction := &entities.Transaction{
		ID:            uuid.New(),
		UserID:        userData.ID,
		Type:          txType,
		CreditsChange: -amount,
		PaymentStatus: domain.PaymentStatusSuccess,
		Description:   description,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	if err := s.creditRepository.CreateTransaction(ctx, transaction); err != nil {
		// Restore the balance so the debit is all or nothing.
		userData.Credits += amount
		_ = s.userRepository.UpdateUser(ctx, userData)
		return nil, err
	}

	return toTransaction(transaction), nil
}

func (s *creditService) Refund(ctx context.Context, userID string, amount int, txType, description string) error {
	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	userData, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	userData.Credits += amount
	userData.UpdatedAt = time.Now()
	if err := s.userRepository.UpdateUser(ctx, userData); err != nil {
		return err
	}

	transaction := &entities.Transaction{
		ID:            uuid.New(),
		UserID:        userData.ID,
		Type:          txType,
		CreditsChange: amount,
		PaymentStatus: domain.PaymentStatusSuccess,
		Description:   fmt.Sprintf("Refund: %s", description),
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	return s.creditRepository.CreateTransaction(ctx, transaction)
}

func (s *creditService) CreatePendingPurchase(ctx context.Context, userID, packageID, paymentMethod string) (*domain.Transaction, error) {
	pkg, err := s.creditRepository.GetCreditPackageByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	txType := domain.TransactionTypeTopUp
	if pkg.IsPremium {
		txType = domain.TransactionTypePremiumUpgrade
	}

	transaction := &entities.Transaction{
		ID:            uuid.New(),
		UserID:        userUUID,
		Type:          txType,
		Amount:        pkg.Price,
		CreditsChange: pkg.Credits,
		PaymentMethod: paymentMethod,
		PaymentStatus: domain.PaymentStatusPending,
		Description:   fmt.Sprintf("Pembelian %s", pkg.Name),
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	if err := s.creditRepository.CreateTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	return toTransaction(transaction), nil
}

func (s *creditService) ConfirmPurchase(ctx context.Context, transactionID string) (*domain.PurchaseResult, error) {
	transaction, err := s.creditRepository.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	userID := transaction.UserID.String()
	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	// Re-read under the lock so a racing confirmation of the same
	// transaction is seen.
	transaction, err = s.creditRepository.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if transaction.PaymentStatus != domain.PaymentStatusPending {
		return nil, domain.ErrTransactionAlreadyConfirmed
	}

	userData, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	transaction.PaymentStatus = domain.PaymentStatusSuccess
	transaction.UpdatedAt = time.Now()
	if err := s.creditRepository.UpdateTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	userData.Credits += transaction.CreditsChange

	if transaction.Type == domain.TransactionTypePremiumUpgrade {
		userData.IsPremium = true
		// The package is re-derived by credit amount, matching the
		// original payment flow. See DESIGN.md for the ambiguity when
		// two packages share a credit value.
		pkg, err := s.creditRepository.FindCreditPackageByCredits(ctx, transaction.CreditsChange)
		if err == nil && pkg.PremiumDurationDays > 0 {
			// Non-stacking renewal: the new expiry is computed from now,
			// not from any remaining premium time.
			expiresAt := time.Now().AddDate(0, 0, pkg.PremiumDurationDays)
			userData.PremiumExpiresAt = &expiresAt
		}
	}

	userData.UpdatedAt = time.Now()
	if err := s.userRepository.UpdateUser(ctx, userData); err != nil {
		return nil, err
	}

	return &domain.PurchaseResult{
		CreditsAdded: transaction.CreditsChange,
		TotalCredits: userData.Credits,
		IsPremium:    userData.IsPremium,
	}, nil
}

func (s *creditService) FailPurchase(ctx context.Context, transactionID string) error {
	transaction, err := s.creditRepository.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}

	userID := transaction.UserID.String()
	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	transaction, err = s.creditRepository.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}

	if transaction.PaymentStatus != domain.PaymentStatusPending {
		return domain.ErrTransactionAlreadyConfirmed
	}

	transaction.PaymentStatus = domain.PaymentStatusFailed
	transaction.UpdatedAt = time.Now()
	return s.creditRepository.UpdateTransaction(ctx, transaction)
}

func (s *creditService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	transaction, err := s.creditRepository.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return toTransaction(transaction), nil
}

func (s *creditService) GetTransactionHistory(ctx context.Context, userID string) ([]*domain.Transaction, error) {
	transactions, err := s.creditRepository.GetUserTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		result = append(result, toTransaction(tx))
	}
	return result, nil
}

func toCreditPackage(pkg *entities.CreditPackage) *domain.CreditPackage {
	return &domain.CreditPackage{
		ID:                  pkg.ID.String(),
		Name:                pkg.Name,
		Credits:             pkg.Credits,
		Price:               pkg.Price,
		Currency:            pkg.Currency,
		IsPremium:           pkg.IsPremium,
		PremiumDurationDays: pkg.PremiumDurationDays,
	}
}

func toTransaction(tx *entities.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:            tx.ID.String(),
		UserID:        tx.UserID.String(),
		Type:          tx.Type,
		Amount:        tx.Amount,
		CreditsChange: tx.CreditsChange,
		PaymentMethod: tx.PaymentMethod,
		PaymentStatus: tx.PaymentStatus,
		Description:   tx.Description,
		CreatedAt:     tx.CreatedAt,
	}
}
