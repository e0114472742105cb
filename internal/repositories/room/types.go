package room

import "github.com/KirkDiggler/ludo/internal/models"

type SaveRoomInput struct {
	Room *models.RoomSnapshot
}

type GetRoomInput struct {
	RoomID string
}

type GetRoomByChannelInput struct {
	ChannelID string
}

type DeleteRoomInput struct {
	RoomID string
}

type GetActiveRoomsInput struct {
}

type GetActiveRoomsOutput struct {
	Rooms []*models.RoomSnapshot
}
