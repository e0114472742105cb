package timer

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	cancel context.CancelFunc
	done   chan struct{}
}

type entryKey struct{}

// TurnTimer implements Timer with one goroutine per armed countdown
type TurnTimer struct {
	timeout time.Duration

	mu      sync.Mutex
	entries map[string]*entry
	lastSeq map[string]uint64
	wg      sync.WaitGroup
}

// New creates a turn timer
func New(cfg *Config) *TurnTimer {
	timeout := DefaultTimeout
	if cfg != nil && cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	return &TurnTimer{
		timeout: timeout,
		entries: make(map[string]*entry),
		lastSeq: make(map[string]uint64),
	}
}

// Timeout returns the countdown length
func (t *TurnTimer) Timeout() time.Duration {
	return t.timeout
}

// Start arms a countdown for the turn. A turn older than the last one armed
// for the room is ignored.
func (t *TurnTimer) Start(ctx context.Context, turn *Turn, onExpire Func) error {
	for {
		t.mu.Lock()
		if last, seen := t.lastSeq[turn.RoomID]; seen && turn.Seq < last {
			t.mu.Unlock()
			return nil
		}
		existing, ok := t.entries[turn.RoomID]
		if !ok {
			t.arm(turn, onExpire)
			t.mu.Unlock()
			return nil
		}
		delete(t.entries, turn.RoomID)
		t.mu.Unlock()

		if err := t.await(ctx, existing); err != nil {
			return err
		}
	}
}

// Cancel stops the room's countdown
func (t *TurnTimer) Cancel(ctx context.Context, roomID string) error {
	t.mu.Lock()
	existing, ok := t.entries[roomID]
	if ok {
		delete(t.entries, roomID)
	}
	delete(t.lastSeq, roomID)
	t.mu.Unlock()

	if !ok {
		return nil
	}
	return t.await(ctx, existing)
}

// Stop cancels every countdown and waits for them
func (t *TurnTimer) Stop() {
	t.mu.Lock()
	for roomID, e := range t.entries {
		e.cancel()
		delete(t.entries, roomID)
	}
	clear(t.lastSeq)
	t.mu.Unlock()

	t.wg.Wait()
}

// Running reports whether the room has an armed countdown
func (t *TurnTimer) Running(roomID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.entries[roomID]
	return ok
}

// arm must be called with t.mu held
func (t *TurnTimer) arm(turn *Turn, onExpire Func) {
	ctx, cancel := context.WithCancel(context.Background())
	e := &entry{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	t.entries[turn.RoomID] = e
	t.lastSeq[turn.RoomID] = turn.Seq

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer close(e.done)
		defer t.release(turn.RoomID, e)
		defer cancel()

		countdown := time.NewTimer(t.timeout)
		defer countdown.Stop()

		select {
		case <-ctx.Done():
			return
		case <-countdown.C:
		}

		// the callback runs to completion even if cancelled meanwhile; Cancel waits for it
		fireCtx := context.WithValue(context.WithoutCancel(ctx), entryKey{}, e)
		onExpire(fireCtx, turn)
	}()
}

// release drops the entry unless it was already replaced
func (t *TurnTimer) release(roomID string, e *entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.entries[roomID] == e {
		delete(t.entries, roomID)
	}
}

// await cancels an entry and blocks until its goroutine is gone. An entry
// cancelled from inside its own callback is not waited on.
func (t *TurnTimer) await(ctx context.Context, e *entry) error {
	e.cancel()

	if self, ok := ctx.Value(entryKey{}).(*entry); ok && self == e {
		return nil
	}

	select {
	case <-e.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
