package credit

import (
	"context"
	"sort"
	"sync"

	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/entities"
)

// memoryCreditRepository keeps packages and transactions in process-local
// maps. Used in demo mode (no database configured) and by tests.
type memoryCreditRepository struct {
	mu           sync.RWMutex
	packages     map[string]entities.CreditPackage
	transactions map[string]entities.Transaction
}

func NewMemoryCreditRepository() CreditRepository {
	return &memoryCreditRepository{
		packages:     make(map[string]entities.CreditPackage),
		transactions: make(map[string]entities.Transaction),
	}
}

func (r *memoryCreditRepository) CreateCreditPackage(_ context.Context, pkg *entities.CreditPackage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.packages[pkg.ID.String()] = *pkg
	return nil
}

func (r *memoryCreditRepository) GetCreditPackages(_ context.Context) ([]*entities.CreditPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	packages := make([]*entities.CreditPackage, 0, len(r.packages))
	for _, pkg := range r.packages {
		if !pkg.IsActive {
			continue
		}
		p := pkg
		packages = append(packages, &p)
	}
	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Credits < packages[j].Credits
	})
	return packages, nil
}

func (r *memoryCreditRepository) GetCreditPackageByID(_ context.Context, id string) (*entities.CreditPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pkg, ok := r.packages[id]
	if !ok || !pkg.IsActive {
		return nil, domain.ErrCreditPackageNotFound
	}
	return &pkg, nil
}

func (r *memoryCreditRepository) FindCreditPackageByCredits(_ context.Context, credits int) (*entities.CreditPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, pkg := range r.packages {
		if pkg.IsActive && pkg.Credits == credits {
			p := pkg
			return &p, nil
		}
	}
	return nil, domain.ErrCreditPackageNotFound
}

func (r *memoryCreditRepository) CreateTransaction(_ context.Context, tx *entities.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions[tx.ID.String()] = *tx
	return nil
}

func (r *memoryCreditRepository) GetTransactionByID(_ context.Context, id string) (*entities.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tx, ok := r.transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return &tx, nil
}

func (r *memoryCreditRepository) UpdateTransaction(_ context.Context, tx *entities.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.transactions[tx.ID.String()]; !ok {
		return domain.ErrTransactionNotFound
	}
	r.transactions[tx.ID.String()] = *tx
	return nil
}

func (r *memoryCreditRepository) GetUserTransactions(_ context.Context, userID string) ([]*entities.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	transactions := make([]*entities.Transaction, 0)
	for _, tx := range r.transactions {
		if tx.UserID.String() == userID {
			t := tx
			transactions = append(transactions, &t)
		}
	}
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
	return transactions, nil
}
