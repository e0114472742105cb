package settlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/ludo/internal/models"
	walletRepo "github.com/KirkDiggler/ludo/internal/repositories/wallet"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxSettleAttempts = 3

	codeDeadlockDetected     = "40P01"
	codeSerializationFailure = "40001"
)

var (
	// ErrSettlementNotFound is returned when the room has not been settled
	ErrSettlementNotFound = errors.New("settlement not found")

	// ErrAlreadySettled is returned when a settlement for the room exists
	ErrAlreadySettled = errors.New("room already settled")
)

// Config holds configuration for the Postgres settlement repository
type Config struct {
	// Postgres pool
	Pool *pgxpool.Pool
}

// postgresRepository implements the Repository interface using Postgres
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new Postgres-backed settlement repository
func NewPostgres(cfg *Config) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Pool == nil {
		return nil, errors.New("postgres pool cannot be nil")
	}

	return &postgresRepository{
		pool: cfg.Pool,
	}, nil
}

// GetSettlement retrieves the settlement for a room
func (r *postgresRepository) GetSettlement(ctx context.Context, input *GetSettlementInput) (*models.Settlement, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	s := &models.Settlement{}
	err := r.pool.QueryRow(ctx, `
		SELECT room_id, players, winners, entry_fee, total_pot, bonus, share, started_at, ended_at
		FROM settlements
		WHERE room_id = $1`,
		input.RoomID,
	).Scan(&s.RoomID, &s.Players, &s.Winners, &s.EntryFee, &s.TotalPot, &s.Bonus, &s.Share, &s.StartedAt, &s.EndedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettlementNotFound
		}
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}

	return s, nil
}

// Settle inserts the settlement row first so a second attempt for the same
// room conflicts before any coins move. A transaction aborted by a deadlock or
// serialization failure is retried.
func (r *postgresRepository) Settle(ctx context.Context, input *SettleInput) (*models.Settlement, error) {
	if input == nil || input.Settlement == nil || input.Settlement.RoomID == "" {
		return nil, errors.New("input and settlement cannot be empty")
	}

	var err error
	for attempt := 1; attempt <= maxSettleAttempts; attempt++ {
		err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
			return settle(ctx, tx, input)
		})
		if !retryable(err) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	return input.Settlement, nil
}

func settle(ctx context.Context, tx pgx.Tx, input *SettleInput) error {
	s := input.Settlement

	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO settlements (room_id, players, winners, entry_fee, total_pot, bonus, share, started_at, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (room_id) DO NOTHING
		RETURNING id`,
		s.RoomID, s.Players, s.Winners, s.EntryFee, s.TotalPot, s.Bonus, s.Share, s.StartedAt, s.EndedAt,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAlreadySettled
		}
		return fmt.Errorf("failed to insert settlement: %w", err)
	}

	// Every settlement takes its user locks in user id order, so payouts from
	// rooms sharing players queue behind each other instead of deadlocking
	rows, err := tx.Query(ctx, `
		SELECT user_id FROM users
		WHERE user_id = ANY($1) OR user_id = ANY($2)
		ORDER BY user_id
		FOR UPDATE`,
		s.Players, s.Winners,
	)
	if err != nil {
		return fmt.Errorf("failed to lock participants: %w", err)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to lock participants: %w", err)
	}

	if s.Share > 0 {
		for _, winner := range s.Winners {
			if _, err := walletRepo.ApplyChange(ctx, tx, winner, s.Share, input.Reason); err != nil {
				return fmt.Errorf("failed to credit winner %s: %w", winner, err)
			}
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE users
		SET total_games = total_games + 1,
			wins = wins + CASE WHEN user_id = ANY($2) THEN 1 ELSE 0 END,
			losses = losses + CASE WHEN user_id = ANY($2) THEN 0 ELSE 1 END
		WHERE user_id = ANY($1)`,
		s.Players, s.Winners,
	)
	if err != nil {
		return fmt.Errorf("failed to update statistics: %w", err)
	}

	return nil
}

// retryable reports whether Postgres aborted the transaction for a lock
// conflict that a fresh attempt can get past
func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeDeadlockDetected || pgErr.Code == codeSerializationFailure
}
