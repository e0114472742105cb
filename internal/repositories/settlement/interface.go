package settlement

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/ludo/internal/repositories/settlement Repository

import (
	"context"

	"github.com/KirkDiggler/ludo/internal/models"
)

// Repository persists match settlements. At most one settlement exists per room.
type Repository interface {
	// GetSettlement retrieves the settlement for a room
	GetSettlement(ctx context.Context, input *GetSettlementInput) (*models.Settlement, error)

	// Settle records the settlement, pays the winners and updates every
	// participant's statistics in one transaction
	Settle(ctx context.Context, input *SettleInput) (*models.Settlement, error)
}
