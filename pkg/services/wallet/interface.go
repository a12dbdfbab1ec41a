package wallet

import (
	"context"

	"github.com/fadedpez/tucojack/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_wallet_service
type WalletService interface {
	GetBalance(ctx context.Context, userID string) (int64, error)
	AddFunds(ctx context.Context, userID string, amount int64, txType entities.TransactionType, referenceID string) error
	RemoveFunds(ctx context.Context, userID string, amount int64, txType entities.TransactionType, referenceID string) error
}
