package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ludo/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetJoinRoomMessage returns a message for when a player joins a room
	GetJoinRoomMessage(ctx context.Context, input *GetJoinRoomMessageInput) (*GetJoinRoomMessageOutput, error)

	// GetRoomStatusMessage returns a dynamic message based on the room status
	GetRoomStatusMessage(ctx context.Context, input *GetRoomStatusMessageInput) (*GetRoomStatusMessageOutput, error)

	// GetRollResultMessage returns a message for a player's roll
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)

	// GetMoveResultMessage returns a message for a token move
	GetMoveResultMessage(ctx context.Context, input *GetMoveResultMessageInput) (*GetMoveResultMessageOutput, error)

	// GetMatchFinishedMessage returns the payout announcement
	GetMatchFinishedMessage(ctx context.Context, input *GetMatchFinishedMessageInput) (*GetMatchFinishedMessageOutput, error)

	// GetPenaltyMessage returns a message for an AFK or leave penalty
	GetPenaltyMessage(ctx context.Context, input *GetPenaltyMessageInput) (*GetPenaltyMessageOutput, error)

	// GetDailyBonusMessage returns a message for a daily bonus claim
	GetDailyBonusMessage(ctx context.Context, input *GetDailyBonusMessageInput) (*GetDailyBonusMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
