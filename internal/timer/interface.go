package timer

//go:generate mockgen -package=mocks -destination=mocks/mock_timer.go github.com/KirkDiggler/ludo/internal/timer Timer

import "context"

// Timer runs at most one turn countdown per room
type Timer interface {
	// Start replaces the room's countdown. Any running countdown is cancelled
	// and awaited, including its callback, before the new one is armed. A
	// turn whose Seq is below the last armed one is dropped.
	Start(ctx context.Context, turn *Turn, onExpire Func) error

	// Cancel stops the room's countdown and waits for it to finish. It is a
	// no-op when nothing is running.
	Cancel(ctx context.Context, roomID string) error

	// Stop cancels every countdown and waits for all of them
	Stop()
}
