package strike

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/ludo/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	strikeKeyPrefix  = "strikes:"
	penaltyKeyPrefix = "penalties:"

	// Hash fields
	fieldStrikes     = "strikes"
	fieldLastReason  = "last_reason"
	fieldLastAt      = "last_at"
	fieldBannedUntil = "banned_until"

	maxPenalties          = 100
	defaultPenaltiesLimit = 10
)

// Config holds configuration for the Redis strike repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed strike repository
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

// GetRecord reads a user's standing from Redis
func (r *redisRepository) GetRecord(ctx context.Context, input *GetRecordInput) (*models.StrikeRecord, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, strikeKeyPrefix+input.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get strike record: %w", err)
	}

	return parseRecord(input.UserID, fields)
}

// AddStrike records an infraction atomically
func (r *redisRepository) AddStrike(ctx context.Context, input *AddStrikeInput) (*models.StrikeRecord, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	penaltyJSON, err := json.Marshal(&models.Penalty{
		Reason:      input.Reason,
		Fine:        input.Fine,
		FineApplied: input.FineApplied,
		At:          input.At,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal penalty: %w", err)
	}

	strikeKey := strikeKeyPrefix + input.UserID
	penaltyKey := penaltyKeyPrefix + input.UserID

	var all *redis.MapStringStringCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, strikeKey, fieldStrikes, 1)
		pipe.HSet(ctx, strikeKey,
			fieldLastReason, input.Reason,
			fieldLastAt, strconv.FormatInt(input.At.UnixNano(), 10),
		)
		pipe.LPush(ctx, penaltyKey, penaltyJSON)
		pipe.LTrim(ctx, penaltyKey, 0, maxPenalties-1)
		all = pipe.HGetAll(ctx, strikeKey)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add strike: %w", err)
	}

	return parseRecord(input.UserID, all.Val())
}

// SetBan records a ban expiry
func (r *redisRepository) SetBan(ctx context.Context, input *SetBanInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	err := r.client.HSet(ctx, strikeKeyPrefix+input.UserID,
		fieldBannedUntil, strconv.FormatInt(input.Until.UnixNano(), 10),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to set ban: %w", err)
	}

	return nil
}

// ClearBan lifts the ban and resets the strike counter
func (r *redisRepository) ClearBan(ctx context.Context, input *ClearBanInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	strikeKey := strikeKeyPrefix + input.UserID
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, strikeKey, fieldStrikes, 0)
		pipe.HDel(ctx, strikeKey, fieldBannedUntil)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear ban: %w", err)
	}

	return nil
}

// ListPenalties returns the penalty log, newest first
func (r *redisRepository) ListPenalties(ctx context.Context, input *ListPenaltiesInput) (*ListPenaltiesOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultPenaltiesLimit
	}

	items, err := r.client.LRange(ctx, penaltyKeyPrefix+input.UserID, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list penalties: %w", err)
	}

	penalties := make([]*models.Penalty, 0, len(items))
	for _, item := range items {
		var penalty models.Penalty
		if err := json.Unmarshal([]byte(item), &penalty); err != nil {
			return nil, fmt.Errorf("failed to unmarshal penalty: %w", err)
		}
		penalties = append(penalties, &penalty)
	}

	return &ListPenaltiesOutput{
		Penalties: penalties,
	}, nil
}

func parseRecord(userID string, fields map[string]string) (*models.StrikeRecord, error) {
	record := &models.StrikeRecord{
		UserID:     userID,
		LastReason: fields[fieldLastReason],
	}

	if v, ok := fields[fieldStrikes]; ok {
		strikes, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid strike count %q: %w", v, err)
		}
		record.Strikes = strikes
	}

	var err error
	if record.LastAt, err = parseTime(fields[fieldLastAt]); err != nil {
		return nil, err
	}
	if record.BannedUntil, err = parseTime(fields[fieldBannedUntil]); err != nil {
		return nil, err
	}

	return record, nil
}

func parseTime(v string) (time.Time, error) {
	if v == "" || v == "0" {
		return time.Time{}, nil
	}

	nanos, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", v, err)
	}
	return time.Unix(0, nanos).UTC(), nil
}
