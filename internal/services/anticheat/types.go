package anticheat

import (
	"time"

	"github.com/KirkDiggler/ludo/internal/common/clock"
	"github.com/KirkDiggler/ludo/internal/models"
	strikeRepo "github.com/KirkDiggler/ludo/internal/repositories/strike"
	"github.com/KirkDiggler/ludo/internal/services/wallet"
	"go.uber.org/zap"
)

const (
	ReasonAFK   = "afk"
	ReasonLeave = "left mid-game"

	DefaultAFKFine    int64 = 10
	DefaultLeaveFine  int64 = 20
	DefaultMaxStrikes       = 3
	DefaultTempBan          = 30 * time.Minute
)

// Config holds configuration for the anti-cheat service
type Config struct {
	StrikeRepo strikeRepo.Repository
	Wallet     wallet.Service
	Clock      clock.Clock

	// Fines are charged best-effort; zero disables them
	AFKFine   int64
	LeaveFine int64

	// MaxStrikes is the strike count that triggers a temporary ban
	MaxStrikes int

	// TempBan is how long a temporary ban lasts
	TempBan time.Duration

	// Optional logger
	Logger *zap.Logger
}

// HandleAFKInput identifies the player who timed out
type HandleAFKInput struct {
	RoomID string
	UserID string
}

// HandleAFKOutput reports the consequences
type HandleAFKOutput struct {
	Penalty *PenaltyResult
}

// HandleLeaveMidGameInput identifies the player who left
type HandleLeaveMidGameInput struct {
	RoomID string
	UserID string
}

// HandleLeaveMidGameOutput reports the consequences
type HandleLeaveMidGameOutput struct {
	Penalty *PenaltyResult
}

// PenaltyResult describes what was applied to a player
type PenaltyResult struct {
	Fine int64

	// FineApplied is false when the wallet refused the fine
	FineApplied bool

	// Strikes is the count after this infraction
	Strikes int

	// Banned is true when this infraction issued a temporary ban
	Banned      bool
	BannedUntil time.Time
}

// CheckAutoUnbanInput contains parameters for a ban check
type CheckAutoUnbanInput struct {
	UserID string
}

// CheckAutoUnbanOutput reports the user's ban status after the check
type CheckAutoUnbanOutput struct {
	// Banned is true while an unexpired ban is in place
	Banned      bool
	BannedUntil time.Time

	// Unbanned is true when this check lifted an expired ban
	Unbanned bool
}

// GetStandingInput contains parameters for reading a user's standing
type GetStandingInput struct {
	UserID string
}

// GetStandingOutput contains a user's standing
type GetStandingOutput struct {
	Record    *models.StrikeRecord
	Penalties []*models.Penalty
}
