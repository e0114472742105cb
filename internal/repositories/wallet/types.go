package wallet

import "github.com/KirkDiggler/ludo/internal/models"

// EnsureUserInput contains parameters for registering a user
type EnsureUserInput struct {
	UserID   string
	Username string
}

// GetUserInput contains parameters for retrieving a user
type GetUserInput struct {
	UserID string
}

// ChangeBalanceInput contains parameters for a credit or debit
type ChangeBalanceInput struct {
	UserID string

	// Amount is always positive; the operation decides the sign
	Amount int64
	Reason string
}

// ChangeBalanceOutput contains the balance after the change
type ChangeBalanceOutput struct {
	Balance int64
}

// GetBalanceInput contains parameters for reading a balance
type GetBalanceInput struct {
	UserID string
}

// GetBalanceOutput contains a user's balance
type GetBalanceOutput struct {
	Balance int64
}

// ListTransactionsInput contains parameters for reading the ledger
type ListTransactionsInput struct {
	UserID string

	// Limit defaults to 20
	Limit int
}

// ListTransactionsOutput contains ledger entries, newest first
type ListTransactionsOutput struct {
	Entries []*models.LedgerEntry
}
