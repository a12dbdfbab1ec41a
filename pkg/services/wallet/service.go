package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fadedpez/tucojack/internal/logging"
	"github.com/fadedpez/tucojack/pkg/entities"
	walletRepo "github.com/fadedpez/tucojack/pkg/repositories/wallet"
	"github.com/google/uuid"
)

// DefaultStartingBalance is the bankroll a fresh session starts with
const DefaultStartingBalance int64 = 10_000

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNegativeAmount    = errors.New("amount must be positive")
)

// Service handles wallet business logic for a session
type Service struct {
	repo            walletRepo.Repository
	startingBalance int64
}

// NewService creates a new wallet service. New wallets start with startingBalance.
func NewService(repo walletRepo.Repository, startingBalance int64) *Service {
	if startingBalance <= 0 {
		startingBalance = DefaultStartingBalance
	}
	return &Service{
		repo:            repo,
		startingBalance: startingBalance,
	}
}

// GetOrCreateWallet retrieves a wallet or creates a new one if it doesn't exist
func (s *Service) GetOrCreateWallet(ctx context.Context, userID string) (*entities.Wallet, bool, error) {
	wallet, err := s.repo.GetWallet(ctx, userID)
	if err == nil {
		return wallet, false, nil // Wallet exists
	}

	if !errors.Is(err, walletRepo.ErrWalletNotFound) {
		return nil, false, err // Unexpected error
	}

	newWallet := &entities.Wallet{
		UserID:      userID,
		Balance:     s.startingBalance,
		LastUpdated: time.Now(),
	}

	if err := s.repo.SaveWallet(ctx, newWallet); err != nil {
		return nil, false, err
	}

	return newWallet, true, nil
}

// GetBalance returns the current balance for a user, opening the wallet on first use
func (s *Service) GetBalance(ctx context.Context, userID string) (int64, error) {
	wallet, _, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return 0, err
	}
	return wallet.Balance, nil
}

// AddFunds credits a user's wallet
func (s *Service) AddFunds(ctx context.Context, userID string, amount int64, txType entities.TransactionType, referenceID string) error {
	if amount <= 0 {
		return ErrNegativeAmount
	}

	wallet, _, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return err
	}

	logging.Default.Debug("[WALLET] Adding $%d to %s (%s %s), balance before $%d", amount, userID, txType, referenceID, wallet.Balance)

	wallet.Balance += amount
	wallet.LastUpdated = time.Now()
	if err := s.repo.SaveWallet(ctx, wallet); err != nil {
		return fmt.Errorf("error saving wallet: %w", err)
	}

	return s.record(ctx, wallet, amount, txType, referenceID)
}

// RemoveFunds debits a user's wallet if sufficient funds exist
func (s *Service) RemoveFunds(ctx context.Context, userID string, amount int64, txType entities.TransactionType, referenceID string) error {
	if amount <= 0 {
		return ErrNegativeAmount
	}

	wallet, _, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return err
	}

	// Balance never goes negative
	if wallet.Balance < amount {
		return ErrInsufficientFunds
	}

	logging.Default.Debug("[WALLET] Removing $%d from %s (%s %s), balance before $%d", amount, userID, txType, referenceID, wallet.Balance)

	wallet.Balance -= amount
	wallet.LastUpdated = time.Now()
	if err := s.repo.SaveWallet(ctx, wallet); err != nil {
		return fmt.Errorf("error saving wallet: %w", err)
	}

	return s.record(ctx, wallet, -amount, txType, referenceID)
}

// Reset puts the wallet back to the starting balance
func (s *Service) Reset(ctx context.Context, userID string) error {
	wallet := &entities.Wallet{
		UserID:      userID,
		Balance:     s.startingBalance,
		LastUpdated: time.Now(),
	}
	return s.repo.SaveWallet(ctx, wallet)
}

// GetRecentTransactions retrieves recent transactions for a user
func (s *Service) GetRecentTransactions(ctx context.Context, userID string, limit int) ([]*entities.Transaction, error) {
	return s.repo.GetTransactions(ctx, userID, limit)
}

func (s *Service) record(ctx context.Context, wallet *entities.Wallet, amount int64, txType entities.TransactionType, referenceID string) error {
	transaction := &entities.Transaction{
		ID:           uuid.New().String(),
		UserID:       wallet.UserID,
		Amount:       amount,
		Type:         txType,
		ReferenceID:  referenceID,
		Description:  fmt.Sprintf("Blackjack %s", txType),
		Timestamp:    time.Now(),
		BalanceAfter: wallet.Balance,
	}

	if err := s.repo.AddTransaction(ctx, transaction); err != nil {
		logging.Default.Warn("[WALLET] Error adding transaction for user %s: %v", wallet.UserID, err)
		return err
	}
	return nil
}
