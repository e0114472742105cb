package discord

import (
	"errors"

	"github.com/KirkDiggler/ludo/internal/room"
	"github.com/KirkDiggler/ludo/internal/services/match"
	"github.com/KirkDiggler/ludo/internal/services/messaging"
	"github.com/KirkDiggler/ludo/internal/services/wallet"
)

// BotError is a custom error type for bot setup errors
type BotError string

// Error implements the error interface
func (e BotError) Error() string {
	return string(e)
}

const (
	ErrNilConfig           BotError = "config cannot be nil"
	ErrNilSession          BotError = "discord session cannot be nil"
	ErrNilSender           BotError = "channel sender cannot be nil"
	ErrNilMatchService     BotError = "match service cannot be nil"
	ErrNilWalletService    BotError = "wallet service cannot be nil"
	ErrNilAntiCheat        BotError = "anti-cheat service cannot be nil"
	ErrNilMessagingService BotError = "messaging service cannot be nil"
)

// errorType maps a service error onto the message catalog
func errorType(err error) messaging.ErrorType {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return messaging.ErrorTypeRoomNotFound
	case errors.Is(err, room.ErrRoomFull):
		return messaging.ErrorTypeRoomFull
	case errors.Is(err, room.ErrColorTaken), errors.Is(err, room.ErrInvalidColor):
		return messaging.ErrorTypeColorTaken
	case errors.Is(err, room.ErrDuplicatePlayer):
		return messaging.ErrorTypeAlreadyJoined
	case errors.Is(err, room.ErrAlreadyStarted), errors.Is(err, room.ErrAlreadyFinished):
		return messaging.ErrorTypeAlreadyStarted
	case errors.Is(err, room.ErrNotEnoughPlayers):
		return messaging.ErrorTypeNotEnoughPlayers
	case errors.Is(err, room.ErrChannelBusy):
		return messaging.ErrorTypeChannelBusy
	case errors.Is(err, room.ErrPlayerNotFound), errors.Is(err, match.ErrPlayerAlreadyLeft):
		return messaging.ErrorTypeNotInRoom
	case errors.Is(err, match.ErrNotOwner):
		return messaging.ErrorTypeNotOwner
	case errors.Is(err, match.ErrUserBanned):
		return messaging.ErrorTypeBanned
	case errors.Is(err, match.ErrMatchNotStarted):
		return messaging.ErrorTypeMatchNotActive
	case errors.Is(err, wallet.ErrInsufficientBalance):
		return messaging.ErrorTypeInsufficientBalance
	}
	return messaging.ErrorTypeUnknown
}

// rejectionType maps a gameplay rejection onto the message catalog
func rejectionType(rejection match.Rejection) messaging.ErrorType {
	switch rejection {
	case match.RejectionNotYourTurn:
		return messaging.ErrorTypeNotYourTurn
	case match.RejectionAlreadyRolled:
		return messaging.ErrorTypeAlreadyRolled
	case match.RejectionRollFirst:
		return messaging.ErrorTypeRollFirst
	case match.RejectionIllegalMove:
		return messaging.ErrorTypeIllegalMove
	case match.RejectionMatchNotActive:
		return messaging.ErrorTypeMatchNotActive
	}
	return messaging.ErrorTypeUnknown
}
