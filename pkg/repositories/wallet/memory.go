package wallet

import (
	"context"
	"sync"
	"time"

	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/google/uuid"
)

// MemoryRepository implements Repository using in-memory storage
type MemoryRepository struct {
	wallets      map[string]entities.Wallet
	transactions map[string][]entities.Transaction
	mu           sync.RWMutex
}

// NewMemoryRepository creates a new in-memory wallet repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		wallets:      make(map[string]entities.Wallet),
		transactions: make(map[string][]entities.Transaction),
	}
}

// GetWallet retrieves a copy of the wallet for userID
func (r *MemoryRepository) GetWallet(ctx context.Context, userID string) (*entities.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wallet, exists := r.wallets[userID]
	if !exists {
		return nil, ErrWalletNotFound
	}
	return &wallet, nil
}

// SaveWallet stores a copy of wallet
func (r *MemoryRepository) SaveWallet(ctx context.Context, wallet *entities.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if wallet.LastUpdated.IsZero() {
		wallet.LastUpdated = time.Now()
	}
	r.wallets[wallet.UserID] = *wallet
	return nil
}

// AddTransaction records a new transaction
func (r *MemoryRepository) AddTransaction(ctx context.Context, transaction *entities.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	if transaction.Timestamp.IsZero() {
		transaction.Timestamp = time.Now()
	}

	r.transactions[transaction.UserID] = append(r.transactions[transaction.UserID], *transaction)
	return nil
}

// GetTransactions retrieves the most recent transactions for a user, newest first
func (r *MemoryRepository) GetTransactions(ctx context.Context, userID string, limit int) ([]*entities.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transactions := r.transactions[userID]
	if limit <= 0 || limit > len(transactions) {
		limit = len(transactions)
	}

	result := make([]*entities.Transaction, 0, limit)
	for i := len(transactions) - 1; i >= 0 && len(result) < limit; i-- {
		tx := transactions[i]
		result = append(result, &tx)
	}
	return result, nil
}
