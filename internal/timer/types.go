package timer

import (
	"context"
	"time"
)

// DefaultTimeout is how long a player has to act
const DefaultTimeout = 30 * time.Second

// Turn identifies the turn a countdown guards
type Turn struct {
	RoomID string
	UserID string

	// Seq is the room sequence number when the countdown was armed
	Seq uint64
}

// Func is invoked when a countdown expires
type Func func(ctx context.Context, turn *Turn)

// Config holds configuration for the turn timer
type Config struct {
	// Timeout is the countdown length, DefaultTimeout when zero
	Timeout time.Duration
}
