package anticheat

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ludo/internal/services/anticheat Service

import "context"

// Service enforces consequences for players who stall or abandon matches
type Service interface {
	// HandleAFK fines and strikes a player whose turn timed out
	HandleAFK(ctx context.Context, input *HandleAFKInput) (*HandleAFKOutput, error)

	// HandleLeaveMidGame fines and strikes a player who left an active match
	HandleLeaveMidGame(ctx context.Context, input *HandleLeaveMidGameInput) (*HandleLeaveMidGameOutput, error)

	// CheckAutoUnban lifts an expired ban and reports whether the user is
	// still banned
	CheckAutoUnban(ctx context.Context, input *CheckAutoUnbanInput) (*CheckAutoUnbanOutput, error)

	// GetStanding returns the user's strikes and recent penalties
	GetStanding(ctx context.Context, input *GetStandingInput) (*GetStandingOutput, error)
}
