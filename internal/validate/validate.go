package validate

import (
	"strings"

	"github.com/KirkDiggler/ludo/internal/models"
)

// ValidationError is returned for malformed input from a transport
type ValidationError string

// Error implements the error interface
func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrInvalidRoomID     ValidationError = "invalid room id"
	ErrInvalidTokenIndex ValidationError = "token index must be between 0 and 3"
	ErrInvalidAmount     ValidationError = "amount must be positive"
	ErrInvalidUserID     ValidationError = "invalid user id"
)

const (
	minRoomIDLength = 8
	maxUserIDLength = 64
)

// RoomID checks an opaque room token
func RoomID(roomID string) error {
	if len(strings.TrimSpace(roomID)) < minRoomIDLength {
		return ErrInvalidRoomID
	}
	return nil
}

// TokenIndex checks a token index
func TokenIndex(index int) error {
	if index < 0 || index >= models.TokensPerPlayer {
		return ErrInvalidTokenIndex
	}
	return nil
}

// Amount checks a coin amount
func Amount(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// UserID checks an external user identity
func UserID(userID string) error {
	if strings.TrimSpace(userID) == "" || len(userID) > maxUserIDLength {
		return ErrInvalidUserID
	}
	return nil
}
