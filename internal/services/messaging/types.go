package messaging

import (
	"math/rand"
	"time"

	"github.com/KirkDiggler/ludo/internal/models"
	"github.com/KirkDiggler/ludo/internal/rules"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	ToneNeutral     MessageTone = "neutral"
	ToneFunny       MessageTone = "funny"
	ToneSarcastic   MessageTone = "sarcastic"
	ToneEncouraging MessageTone = "encouraging"
)

// ErrorType identifies a class of player-facing error
type ErrorType string

const (
	ErrorTypeNotYourTurn         ErrorType = "not_your_turn"
	ErrorTypeAlreadyRolled       ErrorType = "already_rolled"
	ErrorTypeRollFirst           ErrorType = "roll_first"
	ErrorTypeIllegalMove         ErrorType = "illegal_move"
	ErrorTypeMatchNotActive      ErrorType = "match_not_active"
	ErrorTypeRoomFull            ErrorType = "room_full"
	ErrorTypeColorTaken          ErrorType = "color_taken"
	ErrorTypeAlreadyJoined       ErrorType = "already_joined"
	ErrorTypeAlreadyStarted      ErrorType = "already_started"
	ErrorTypeNotEnoughPlayers    ErrorType = "not_enough_players"
	ErrorTypeNotOwner            ErrorType = "not_owner"
	ErrorTypeBanned              ErrorType = "banned"
	ErrorTypeInsufficientBalance ErrorType = "insufficient_balance"
	ErrorTypeRoomNotFound        ErrorType = "room_not_found"
	ErrorTypeChannelBusy         ErrorType = "channel_busy"
	ErrorTypeNotInRoom           ErrorType = "not_in_room"
	ErrorTypeUnknown             ErrorType = "unknown"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Random picks between message variants. A time seeded source is used when nil.
	Random *rand.Rand
}

func (c *ServiceConfig) random() *rand.Rand {
	if c != nil && c.Random != nil {
		return c.Random
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GetJoinRoomMessageInput contains parameters for GetJoinRoomMessage
type GetJoinRoomMessageInput struct {
	PlayerName string
	Color      models.Color

	// AlreadyJoined is true when the player pressed join twice
	AlreadyJoined bool
	Status        models.RoomStatus

	EntryFee      int64
	PreferredTone MessageTone
}

// GetJoinRoomMessageOutput contains the join message
type GetJoinRoomMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetRoomStatusMessageInput is the input for GetRoomStatusMessage
type GetRoomStatusMessageInput struct {
	Status      models.RoomStatus
	PlayerCount int
	MaxPlayers  int
	EntryFee    int64
}

// GetRoomStatusMessageOutput is the output for GetRoomStatusMessage
type GetRoomStatusMessageOutput struct {
	Message string
}

// GetRollResultMessageInput contains the input for GetRollResultMessage
type GetRollResultMessageInput struct {
	PlayerName string
	DiceValue  int

	// Passed is true when no token could use the roll
	Passed bool

	// Penalty is true when a third six forfeited the turn
	Penalty bool

	// IsPersonalMessage indicates an ephemeral message to the roller
	IsPersonalMessage bool
}

// GetRollResultMessageOutput contains the output for GetRollResultMessage
type GetRollResultMessageOutput struct {
	Title   string
	Message string
}

// GetMoveResultMessageInput contains the input for GetMoveResultMessage
type GetMoveResultMessageInput struct {
	PlayerName string
	Outcome    rules.Outcome

	// CapturedName is the owner of a token sent home by a kill
	CapturedName string

	ExtraTurn bool
}

// GetMoveResultMessageOutput contains the output for GetMoveResultMessage
type GetMoveResultMessageOutput struct {
	Title   string
	Message string
}

// GetMatchFinishedMessageInput contains the input for GetMatchFinishedMessage
type GetMatchFinishedMessageInput struct {
	// WinnerNames lists paid players in ranking order
	WinnerNames []string
	Share       int64
	TotalPot    int64
	Bonus       int64
}

// GetMatchFinishedMessageOutput contains the output for GetMatchFinishedMessage
type GetMatchFinishedMessageOutput struct {
	Title   string
	Message string
}

// GetPenaltyMessageInput contains the input for GetPenaltyMessage
type GetPenaltyMessageInput struct {
	PlayerName  string
	Reason      string
	Fine        int64
	FineApplied bool
	Strikes     int
	Banned      bool
	BannedUntil time.Time
}

// GetPenaltyMessageOutput contains the output for GetPenaltyMessage
type GetPenaltyMessageOutput struct {
	Message string
}

// GetDailyBonusMessageInput contains the input for GetDailyBonusMessage
type GetDailyBonusMessageInput struct {
	Claimed   bool
	Amount    int64
	Balance   int64
	Remaining time.Duration
}

// GetDailyBonusMessageOutput contains the output for GetDailyBonusMessage
type GetDailyBonusMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType ErrorType

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}
