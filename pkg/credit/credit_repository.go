package credit

import (
	"context"
	"errors"

	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/entities"
	"gorm.io/gorm"
)

type (
	CreditRepository interface {
		// Credit packages
		CreateCreditPackage(ctx context.Context, pkg *entities.CreditPackage) error
		GetCreditPackages(ctx context.Context) ([]*entities.CreditPackage, error)
		GetCreditPackageByID(ctx context.Context, id string) (*entities.CreditPackage, error)
		FindCreditPackageByCredits(ctx context.Context, credits int) (*entities.CreditPackage, error)

		// Transactions
		CreateTransaction(ctx context.Context, tx *entities.Transaction) error
		GetTransactionByID(ctx context.Context, id string) (*entities.Transaction, error)
		UpdateTransaction(ctx context.Context, tx *entities.Transaction) error
		GetUserTransactions(ctx context.Context, userID string) ([]*entities.Transaction, error)
	}

	creditRepository struct {
		db *gorm.DB
	}
)

func NewCreditRepository(db *gorm.DB) CreditRepository {
	return &creditRepository{
		db: db,
	}
}

func (r *creditRepository) CreateCreditPackage(ctx context.Context, pkg *entities.CreditPackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *creditRepository) GetCreditPackages(ctx context.Context) ([]*entities.CreditPackage, error) {
	var packages []*entities.CreditPackage
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("credits ASC").
		Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *creditRepository) GetCreditPackageByID(ctx context.Context, id string) (*entities.CreditPackage, error) {
	var pkg entities.CreditPackage
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCreditPackageNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *creditRepository) FindCreditPackageByCredits(ctx context.Context, credits int) (*entities.CreditPackage, error) {
	var pkg entities.CreditPackage
	if err := r.db.WithContext(ctx).
		Where("credits = ? AND is_active = ?", credits, true).
		First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCreditPackageNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *creditRepository) CreateTransaction(ctx context.Context, tx *entities.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *creditRepository) GetTransactionByID(ctx context.Context, id string) (*entities.Transaction, error) {
	var tx entities.Transaction
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *creditRepository) UpdateTransaction(ctx context.Context, tx *entities.Transaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

func (r *creditRepository) GetUserTransactions(ctx context.Context, userID string) ([]*entities.Transaction, error) {
	var transactions []*entities.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}
