package wallet

import (
	"time"

	"github.com/KirkDiggler/ludo/internal/models"
	cooldownRepo "github.com/KirkDiggler/ludo/internal/repositories/cooldown"
	walletRepo "github.com/KirkDiggler/ludo/internal/repositories/wallet"
	"go.uber.org/zap"
)

// DailyCooldown is the time between two daily bonus claims
const DailyCooldown = 24 * time.Hour

// Random picks the daily bonus; *rand.Rand satisfies it
type Random interface {
	Int63n(n int64) int64
}

// Config holds configuration for the wallet service
type Config struct {
	// Repository dependencies
	WalletRepo   walletRepo.Repository
	CooldownRepo cooldownRepo.Repository

	// Random picks the daily bonus amount
	Random Random

	// DailyBonusMin and DailyBonusMax bound the daily bonus, inclusive
	DailyBonusMin int64
	DailyBonusMax int64

	// Optional logger
	Logger *zap.Logger
}

// RegisterInput contains parameters for registering a user
type RegisterInput struct {
	UserID   string
	Username string
}

// RegisterOutput contains the registered user
type RegisterOutput struct {
	User *models.User
}

// CreditInput contains parameters for crediting a user
type CreditInput struct {
	UserID string
	Amount int64
	Reason string
}

// CreditOutput contains the balance after a credit
type CreditOutput struct {
	Balance int64
}

// DebitInput contains parameters for debiting a user
type DebitInput struct {
	UserID string
	Amount int64
	Reason string
}

// DebitOutput contains the balance after a debit
type DebitOutput struct {
	Balance int64
}

// GetBalanceInput contains parameters for reading a balance
type GetBalanceInput struct {
	UserID string
}

// GetBalanceOutput contains a user's wallet
type GetBalanceOutput struct {
	User *models.User

	// Recent lists the latest ledger entries, newest first
	Recent []*models.LedgerEntry
}

// ClaimDailyInput contains parameters for claiming the daily bonus
type ClaimDailyInput struct {
	UserID string
}

// ClaimDailyOutput reports the daily bonus claim
type ClaimDailyOutput struct {
	// Claimed is false while the cooldown is running
	Claimed bool

	Amount  int64
	Balance int64

	// Remaining is the time until the next claim when Claimed is false
	Remaining time.Duration
}
