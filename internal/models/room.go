package models

import "time"

// RoomStatus represents the lifecycle state of a room
type RoomStatus string

const (
	// RoomStatusForming indicates the room is waiting for players
	RoomStatusForming RoomStatus = "forming"

	// RoomStatusActive indicates a match is in progress
	RoomStatusActive RoomStatus = "active"

	// RoomStatusFinished indicates the match is over
	RoomStatusFinished RoomStatus = "finished"
)

// IsForming returns true if the room still accepts players
func (s RoomStatus) IsForming() bool {
	return s == RoomStatusForming
}

// IsActive returns true if a match is being played
func (s RoomStatus) IsActive() bool {
	return s == RoomStatusActive
}

// IsFinished returns true if the room reached its terminal state
func (s RoomStatus) IsFinished() bool {
	return s == RoomStatusFinished
}

// RoomSnapshot is a read-only copy of a room handed to other components
type RoomSnapshot struct {
	RoomID     string     `json:"room_id"`
	ChannelID  string     `json:"channel_id,omitempty"`
	OwnerID    string     `json:"owner_id"`
	EntryFee   int64      `json:"entry_fee"`
	MaxPlayers int        `json:"max_players"`
	Status     RoomStatus `json:"status"`
	Players    []*Player  `json:"players"`
	State      *GameState `json:"state,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	StartedAt  time.Time  `json:"started_at,omitempty"`
	EndedAt    time.Time  `json:"ended_at,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
