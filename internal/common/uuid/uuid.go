package uuid

import (
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/ludo/internal/common/uuid UUID

type UUID interface {
	// NewUUID returns a random canonical UUID
	NewUUID() string

	// NewRoomID returns a short opaque room token that fits in chat component IDs
	NewRoomID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// NewRoomID returns the first 12 hex digits of a random UUID
func (d *DefaultUUID) NewRoomID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}
