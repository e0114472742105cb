package models

import "time"

// Settlement is the persisted outcome of a finished match. At most one exists per room.
type Settlement struct {
	// RoomID is the idempotency key
	RoomID string `json:"room_id"`

	// Players lists every participant in turn order
	Players []string `json:"players"`

	// Winners lists the paid players in ranking order
	Winners []string `json:"winners"`

	EntryFee int64 `json:"entry_fee"`
	TotalPot int64 `json:"total_pot"`
	Bonus    int64 `json:"bonus"`

	// Share is the amount credited to each winner
	Share int64 `json:"share"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}
