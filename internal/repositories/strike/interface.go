package strike

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/ludo/internal/repositories/strike Repository

import (
	"context"

	"github.com/KirkDiggler/ludo/internal/models"
)

// Repository defines the interface for anti-cheat standing
type Repository interface {
	// GetRecord returns a user's standing. A user without strikes gets an empty record.
	GetRecord(ctx context.Context, input *GetRecordInput) (*models.StrikeRecord, error)

	// AddStrike increments the strike counter and appends to the penalty log
	AddStrike(ctx context.Context, input *AddStrikeInput) (*models.StrikeRecord, error)

	// SetBan records a temporary ban
	SetBan(ctx context.Context, input *SetBanInput) error

	// ClearBan lifts the ban and resets the strike counter
	ClearBan(ctx context.Context, input *ClearBanInput) error

	// ListPenalties returns the most recent penalties, newest first
	ListPenalties(ctx context.Context, input *ListPenaltiesInput) (*ListPenaltiesOutput, error)
}
