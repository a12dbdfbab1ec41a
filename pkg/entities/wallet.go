package entities

import (
	"time"
)

// Wallet represents the player's session bankroll
type Wallet struct {
	UserID      string    // Local profile ID
	Balance     int64     // Current balance
	LastUpdated time.Time // When the wallet was last updated
}

// TransactionType represents the type of wallet transaction
type TransactionType string

const (
	TransactionTypeBet        TransactionType = "BET"
	TransactionTypeDoubleDown TransactionType = "DOUBLE_DOWN"
	TransactionTypePayout     TransactionType = "PAYOUT"
)

// Transaction represents a single wallet transaction
type Transaction struct {
	ID           string          // Unique identifier
	UserID       string          // User associated with the transaction
	Amount       int64           // Amount (positive for additions, negative for subtractions)
	Type         TransactionType // Type of transaction
	ReferenceID  string          // Round ID the transaction belongs to
	Description  string          // Human-readable description
	Timestamp    time.Time       // When the transaction occurred
	BalanceAfter int64           // Balance after this transaction
}
