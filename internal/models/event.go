package models

// EventKind identifies what happened in a room
type EventKind string

const (
	EventRoomCreated   EventKind = "room_created"
	EventPlayerJoined  EventKind = "player_joined"
	EventPlayerLeft    EventKind = "player_left"
	EventMatchStarted  EventKind = "match_started"
	EventDiceRolled    EventKind = "dice_rolled"
	EventTokenMoved    EventKind = "token_moved"
	EventTurnChanged   EventKind = "turn_changed"
	EventPlayerAFK     EventKind = "player_afk"
	EventMatchFinished EventKind = "match_finished"
	EventRoomAbandoned EventKind = "room_abandoned"
)

// Event is emitted by the match service for transports to deliver
type Event struct {
	Kind      EventKind `json:"kind"`
	RoomID    string    `json:"room_id"`
	ChannelID string    `json:"channel_id,omitempty"`

	// UserID is the player the event is about, if any
	UserID string `json:"user_id,omitempty"`

	// NextPlayerID is whose turn it is after the event
	NextPlayerID string `json:"next_player_id,omitempty"`

	DiceValue int    `json:"dice_value,omitempty"`
	Outcome   string `json:"outcome,omitempty"`

	Room       *RoomSnapshot `json:"room,omitempty"`
	Settlement *Settlement   `json:"settlement,omitempty"`
}
