package reward

import (
	"time"

	"github.com/KirkDiggler/ludo/internal/models"
	settlementRepo "github.com/KirkDiggler/ludo/internal/repositories/settlement"
	"go.uber.org/zap"
)

// DefaultBonusPercent is the house bonus added to the pot
const DefaultBonusPercent int64 = 10

// Config holds configuration for the reward service
type Config struct {
	SettlementRepo settlementRepo.Repository

	// BonusPercent is added on top of the pot
	BonusPercent int64

	// Optional logger
	Logger *zap.Logger
}

// Payout is the arithmetic of a settlement
type Payout struct {
	TotalPot   int64
	Bonus      int64
	RewardPool int64
	Winners    int

	// Share is what each winner receives; the division remainder stays with the house
	Share int64
}

// DistributeInput describes a finished match
type DistributeInput struct {
	RoomID string

	// Players lists every participant in turn order
	Players []string

	// Ranking lists the same players best first
	Ranking []string

	EntryFee  int64
	StartedAt time.Time
	EndedAt   time.Time
}

// DistributeOutput contains the settlement
type DistributeOutput struct {
	Settlement *models.Settlement

	// AlreadySettled is true when an earlier call settled the room
	AlreadySettled bool
}

// GetSettlementInput contains parameters for reading a settlement
type GetSettlementInput struct {
	RoomID string
}

// GetSettlementOutput contains a settlement
type GetSettlementOutput struct {
	Settlement *models.Settlement
}
