package strike

import (
	"time"

	"github.com/KirkDiggler/ludo/internal/models"
)

// GetRecordInput contains parameters for reading a user's standing
type GetRecordInput struct {
	UserID string
}

// AddStrikeInput contains parameters for recording an infraction
type AddStrikeInput struct {
	UserID string
	Reason string

	// Fine is the amount that was attempted
	Fine int64

	// FineApplied is false when the wallet refused the fine
	FineApplied bool

	At time.Time
}

// SetBanInput contains parameters for banning a user
type SetBanInput struct {
	UserID string
	Until  time.Time
}

// ClearBanInput contains parameters for lifting a ban
type ClearBanInput struct {
	UserID string
}

// ListPenaltiesInput contains parameters for reading the penalty log
type ListPenaltiesInput struct {
	UserID string

	// Limit defaults to 10
	Limit int
}

// ListPenaltiesOutput contains penalties, newest first
type ListPenaltiesOutput struct {
	Penalties []*models.Penalty
}
