package room

// RoomError is returned for room lifecycle and capacity violations
type RoomError string

// Error implements the error interface
func (e RoomError) Error() string {
	return string(e)
}

const (
	ErrAlreadyStarted    RoomError = "match already started"
	ErrAlreadyFinished   RoomError = "match already finished"
	ErrRoomFull          RoomError = "room is full"
	ErrDuplicatePlayer   RoomError = "player already in room"
	ErrPlayerNotFound    RoomError = "player not in room"
	ErrNotEnoughPlayers  RoomError = "at least two active players are needed"
	ErrColorTaken        RoomError = "color already taken"
	ErrInvalidColor      RoomError = "invalid color"
	ErrInvalidMaxPlayers RoomError = "max players must be between 2 and 4"
	ErrInvalidEntryFee   RoomError = "entry fee cannot be negative"
	ErrRoomNotFound      RoomError = "room not found"
	ErrRoomExists        RoomError = "room already exists"
	ErrChannelBusy       RoomError = "channel already has a room"
	ErrNilPlayer         RoomError = "player cannot be nil"
	ErrNilConfig         RoomError = "config cannot be nil"
)
