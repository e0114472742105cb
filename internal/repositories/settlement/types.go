package settlement

import "github.com/KirkDiggler/ludo/internal/models"

// GetSettlementInput contains parameters for retrieving a settlement
type GetSettlementInput struct {
	RoomID string
}

// SettleInput contains parameters for settling a match
type SettleInput struct {
	Settlement *models.Settlement

	// Reason is written to each winner's ledger entry
	Reason string
}
