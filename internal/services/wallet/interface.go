package wallet

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ludo/internal/services/wallet Service

import "context"

// Service manages coin balances
type Service interface {
	// Register creates the user's wallet on first contact
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Credit adds coins and returns the new balance
	Credit(ctx context.Context, input *CreditInput) (*CreditOutput, error)

	// Debit removes coins and returns the new balance
	Debit(ctx context.Context, input *DebitInput) (*DebitOutput, error)

	// GetBalance returns the user's balance and match statistics
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)

	// ClaimDaily grants the daily bonus once per cooldown window
	ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error)
}
