package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/ludo/internal/repositories/room Repository

import (
	"context"

	"github.com/KirkDiggler/ludo/internal/models"
)

// Repository defines the interface for room snapshot persistence
type Repository interface {
	// SaveRoom persists a room snapshot
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// GetRoom retrieves a room snapshot by ID
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.RoomSnapshot, error)

	// GetRoomByChannel retrieves the room snapshot hosted in a channel
	GetRoomByChannel(ctx context.Context, input *GetRoomByChannelInput) (*models.RoomSnapshot, error)

	// DeleteRoom removes a room snapshot
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error

	// GetActiveRooms retrieves every room with a match in progress
	GetActiveRooms(ctx context.Context, input *GetActiveRoomsInput) (*GetActiveRoomsOutput, error)
}
