package match

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ludo/internal/services/match Service
//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/ludo/internal/services/match Notifier

import (
	"context"

	"github.com/KirkDiggler/ludo/internal/models"
	"github.com/KirkDiggler/ludo/internal/timer"
)

// Service runs Ludo matches from room creation to payout
type Service interface {
	// CreateRoom opens a room and seats the owner, collecting the entry fee
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom seats a player in a forming room, collecting the entry fee
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// LeaveRoom takes a player out of a room. Leaving a forming room refunds
	// the fee; leaving an active match is penalized.
	LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error)

	// StartMatch begins play in a forming room
	StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error)

	// Roll rolls the die for the player whose turn it is
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// Move plays one token with the pending roll
	Move(ctx context.Context, input *MoveInput) (*MoveOutput, error)

	// ForceEnd lets the owner end a room at any time
	ForceEnd(ctx context.Context, input *ForceEndInput) (*ForceEndOutput, error)

	// FinalizeMatch ends the match and pays out. It is safe to call more
	// than once for the same room.
	FinalizeMatch(ctx context.Context, input *FinalizeMatchInput) (*FinalizeMatchOutput, error)

	// HandleTurnTimeout is the turn timer callback
	HandleTurnTimeout(ctx context.Context, turn *timer.Turn)

	// GetRoom returns a snapshot of a room by id or channel
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// ListRooms returns snapshots of every live room
	ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error)
}

// Notifier delivers room events to players and spectators. Delivery is
// best-effort; implementations log their own failures.
type Notifier interface {
	Notify(ctx context.Context, event *models.Event)
}
