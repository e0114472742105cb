package wallet

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/ludo/internal/repositories/wallet Repository

import (
	"context"

	"github.com/KirkDiggler/ludo/internal/models"
)

// Repository defines the interface for coin balances and the transaction log
type Repository interface {
	// EnsureUser creates the user if missing and refreshes the username
	EnsureUser(ctx context.Context, input *EnsureUserInput) (*models.User, error)

	// GetUser retrieves a user with balance and match statistics
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// Credit adds coins and appends a ledger entry
	Credit(ctx context.Context, input *ChangeBalanceInput) (*ChangeBalanceOutput, error)

	// Debit removes coins and appends a ledger entry
	Debit(ctx context.Context, input *ChangeBalanceInput) (*ChangeBalanceOutput, error)

	// GetBalance returns the current balance
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)

	// ListTransactions returns the most recent ledger entries for a user
	ListTransactions(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error)
}
