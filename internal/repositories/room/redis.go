package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/ludo/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roomKeyPrefix    = "room:"
	channelKeyPrefix = "room_channel:"
	activeRoomsKey   = "active_rooms"

	// finishedRoomTTL keeps a finished snapshot around for late spectators
	finishedRoomTTL = 10 * time.Minute
)

// ErrRoomNotFound is returned when a room is not found
var ErrRoomNotFound = errors.New("room not found")

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed room repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveRoom persists a room snapshot to Redis
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil || input.Room.RoomID == "" {
		return errors.New("input and room cannot be nil")
	}

	roomJSON, err := json.Marshal(input.Room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	var ttl time.Duration
	if input.Room.Status.IsFinished() {
		ttl = finishedRoomTTL
	}

	pipe := r.client.TxPipeline()

	roomKey := roomKeyPrefix + input.Room.RoomID
	pipe.Set(ctx, roomKey, roomJSON, ttl)

	if input.Room.ChannelID != "" {
		channelKey := channelKeyPrefix + input.Room.ChannelID
		if input.Room.Status.IsFinished() {
			pipe.Del(ctx, channelKey)
		} else {
			pipe.Set(ctx, channelKey, input.Room.RoomID, 0)
		}
	}

	if input.Room.Status.IsActive() {
		pipe.SAdd(ctx, activeRoomsKey, input.Room.RoomID)
	} else {
		pipe.SRem(ctx, activeRoomsKey, input.Room.RoomID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room snapshot by ID from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.RoomSnapshot, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomJSON, err := r.client.Get(ctx, roomKeyPrefix+input.RoomID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room models.RoomSnapshot
	if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// GetRoomByChannel retrieves a room snapshot by channel ID from Redis
func (r *redisRepository) GetRoomByChannel(ctx context.Context, input *GetRoomByChannelInput) (*models.RoomSnapshot, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	roomID, err := r.client.Get(ctx, channelKeyPrefix+input.ChannelID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room ID for channel: %w", err)
	}

	return r.GetRoom(ctx, &GetRoomInput{
		RoomID: roomID,
	})
}

// DeleteRoom removes a room snapshot from Redis
func (r *redisRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	room, err := r.GetRoom(ctx, &GetRoomInput{
		RoomID: input.RoomID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, roomKeyPrefix+input.RoomID)

	// Only drop the channel mapping if it still points at this room
	if room.ChannelID != "" {
		channelKey := channelKeyPrefix + room.ChannelID
		current, err := r.client.Get(ctx, channelKey).Result()
		if err == nil && current == input.RoomID {
			pipe.Del(ctx, channelKey)
		}
	}

	pipe.SRem(ctx, activeRoomsKey, input.RoomID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

// GetActiveRooms retrieves all rooms with a match in progress
func (r *redisRepository) GetActiveRooms(ctx context.Context, input *GetActiveRoomsInput) (*GetActiveRoomsOutput, error) {
	roomIDs, err := r.client.SMembers(ctx, activeRoomsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active rooms: %w", err)
	}

	rooms := make([]*models.RoomSnapshot, 0, len(roomIDs))
	for _, roomID := range roomIDs {
		room, err := r.GetRoom(ctx, &GetRoomInput{
			RoomID: roomID,
		})
		if err != nil {
			// Skip rooms whose snapshot expired underneath the index
			if errors.Is(err, ErrRoomNotFound) {
				continue
			}
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return &GetActiveRoomsOutput{
		Rooms: rooms,
	}, nil
}
