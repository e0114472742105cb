package room

import (
	"sort"
	"sync"
)

// Registry maps room ids to live rooms. It is safe for concurrent use; it
// guards the map only, not the rooms in it.
type Registry struct {
	mu        sync.RWMutex
	rooms     map[string]*Room
	byChannel map[string]string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		rooms:     make(map[string]*Room),
		byChannel: make(map[string]string),
	}
}

// Add registers a room. A room id is registered at most once and a channel
// holds at most one room.
func (r *Registry) Add(room *Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[room.ID]; ok {
		return ErrRoomExists
	}

	if room.ChannelID != "" {
		if _, ok := r.byChannel[room.ChannelID]; ok {
			return ErrChannelBusy
		}
		r.byChannel[room.ChannelID] = room.ID
	}

	r.rooms[room.ID] = room
	return nil
}

// Get returns the room with the given id
func (r *Registry) Get(roomID string) (*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// GetByChannel returns the room hosted in a chat channel
func (r *Registry) GetByChannel(channelID string) (*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roomID, ok := r.byChannel[channelID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r.rooms[roomID], nil
}

// Remove evicts a room and reports whether it was present
func (r *Registry) Remove(roomID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return false
	}

	if room.ChannelID != "" && r.byChannel[room.ChannelID] == roomID {
		delete(r.byChannel, room.ChannelID)
	}
	delete(r.rooms, roomID)
	return true
}

// List returns every live room ordered by id
func (r *Registry) List() []*Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]*Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].ID < rooms[j].ID
	})
	return rooms
}

// Len returns the number of live rooms
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}
