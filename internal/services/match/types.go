package match

import (
	"github.com/KirkDiggler/ludo/internal/common/clock"
	"github.com/KirkDiggler/ludo/internal/common/uuid"
	"github.com/KirkDiggler/ludo/internal/dice"
	"github.com/KirkDiggler/ludo/internal/models"
	roomRepo "github.com/KirkDiggler/ludo/internal/repositories/room"
	"github.com/KirkDiggler/ludo/internal/room"
	"github.com/KirkDiggler/ludo/internal/rules"
	"github.com/KirkDiggler/ludo/internal/services/anticheat"
	"github.com/KirkDiggler/ludo/internal/services/reward"
	"github.com/KirkDiggler/ludo/internal/services/wallet"
	"github.com/KirkDiggler/ludo/internal/timer"
	"go.uber.org/zap"
)

// Rejection explains why a gameplay action was refused. Rejections are
// expected during play and are returned as values, not errors.
type Rejection string

const (
	RejectionNone           Rejection = ""
	RejectionNotYourTurn    Rejection = "not_your_turn"
	RejectionAlreadyRolled  Rejection = "already_rolled"
	RejectionRollFirst      Rejection = "roll_first"
	RejectionIllegalMove    Rejection = "illegal_move"
	RejectionMatchNotActive Rejection = "match_not_active"
)

// Config holds configuration for the match service
type Config struct {
	// Live rooms
	Registry *room.Registry

	// Snapshot persistence
	RoomRepo roomRepo.Repository

	// Collaborating services
	Wallet    wallet.Service
	AntiCheat anticheat.Service
	Reward    reward.Service

	Timer         timer.Timer
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Optional event sink
	Notifier Notifier

	// DefaultMaxPlayers applies when a room is created without a size
	DefaultMaxPlayers int

	// Optional logger
	Logger *zap.Logger
}

// CreateRoomInput contains parameters for opening a room
type CreateRoomInput struct {
	OwnerID   string
	OwnerName string

	// ChannelID is the chat channel hosting the room; one room per channel
	ChannelID string

	EntryFee   int64
	MaxPlayers int

	// Color is optional; the first free color is used when empty
	Color models.Color
}

// CreateRoomOutput contains the new room
type CreateRoomOutput struct {
	Room *models.RoomSnapshot
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	RoomID   string
	UserID   string
	Username string
	Color    models.Color
}

// JoinRoomOutput contains the room after the join
type JoinRoomOutput struct {
	Room *models.RoomSnapshot
}

// LeaveRoomInput contains parameters for leaving a room
type LeaveRoomInput struct {
	RoomID string
	UserID string
}

// LeaveRoomOutput reports what leaving did
type LeaveRoomOutput struct {
	Room *models.RoomSnapshot

	// Refunded is the entry fee returned for leaving before the start
	Refunded int64

	// Penalty is set when the player left a running match
	Penalty *anticheat.PenaltyResult

	// Abandoned is true when the room closed because nobody was left
	Abandoned bool

	// Settlement is set when the leave ended the match
	Settlement *models.Settlement
}

// StartMatchInput contains parameters for starting a match
type StartMatchInput struct {
	RoomID string
	UserID string
}

// StartMatchOutput contains the room after the start
type StartMatchOutput struct {
	Room *models.RoomSnapshot
}

// RollInput contains parameters for a roll
type RollInput struct {
	RoomID string
	UserID string
}

// RollOutput reports a roll
type RollOutput struct {
	Rejection Rejection

	DiceValue int

	// Movable lists the token indexes that can use the roll
	Movable []int

	// Suggested is the recommended token when HasSuggestion is set
	Suggested     int
	HasSuggestion bool

	// Passed is true when no token could move and the roll was played out
	Passed bool
	Dice   *rules.DiceResult

	Room *models.RoomSnapshot
}

// MoveInput contains parameters for a move
type MoveInput struct {
	RoomID     string
	UserID     string
	TokenIndex int
}

// MoveOutput reports a move
type MoveOutput struct {
	Rejection Rejection

	Result *rules.MoveResult
	Dice   *rules.DiceResult

	// MatchOver is true when the move finished the match
	MatchOver  bool
	Settlement *models.Settlement

	Room *models.RoomSnapshot
}

// ForceEndInput contains parameters for ending a room early
type ForceEndInput struct {
	RoomID string
	UserID string
}

// ForceEndOutput reports how the room ended
type ForceEndOutput struct {
	Room *models.RoomSnapshot

	// Settlement is set when a running match was settled
	Settlement *models.Settlement
}

// FinalizeMatchInput contains parameters for finalizing a match
type FinalizeMatchInput struct {
	RoomID string
}

// FinalizeMatchOutput contains the match result
type FinalizeMatchOutput struct {
	Settlement *models.Settlement

	// Ranking is empty when the result came from an earlier finalize
	Ranking []string

	AlreadySettled bool
}

// GetRoomInput identifies a room by id or, when RoomID is empty, by channel
type GetRoomInput struct {
	RoomID    string
	ChannelID string
}

// GetRoomOutput contains a room snapshot
type GetRoomOutput struct {
	Room *models.RoomSnapshot
}

// ListRoomsInput contains parameters for listing rooms
type ListRoomsInput struct {
}

// ListRoomsOutput contains every live room
type ListRoomsOutput struct {
	Rooms []*models.RoomSnapshot
}
