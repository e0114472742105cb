package reward

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ludo/internal/services/reward Service

import "context"

// Service pays out finished matches
type Service interface {
	// Distribute settles a match exactly once. A room that was already
	// settled returns the existing record with AlreadySettled set.
	Distribute(ctx context.Context, input *DistributeInput) (*DistributeOutput, error)

	// GetSettlement returns the settlement for a room
	GetSettlement(ctx context.Context, input *GetSettlementInput) (*GetSettlementOutput, error)
}
