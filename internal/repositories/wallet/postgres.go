package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/ludo/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTransactionLimit = 20

var (
	// ErrUserNotFound is returned when the user has no wallet
	ErrUserNotFound = errors.New("user not found")

	// ErrInsufficientBalance is returned when a debit exceeds the balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned for a non-positive amount
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Config holds configuration for the Postgres wallet repository
type Config struct {
	// Postgres pool
	Pool *pgxpool.Pool
}

// postgresRepository implements the Repository interface using Postgres
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new Postgres-backed wallet repository
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

// EnsureUser creates the user row if it does not exist
func (r *postgresRepository) EnsureUser(ctx context.Context, input *EnsureUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (user_id, username)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
			SET username = COALESCE(NULLIF(EXCLUDED.username, ''), users.username)
		RETURNING user_id, username, coins, total_games, wins, losses, created_at`,
		input.UserID, input.Username,
	)

	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure user: %w", err)
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (r *postgresRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	row := r.pool.QueryRow(ctx, `
		SELECT user_id, username, coins, total_games, wins, losses, created_at
		FROM users
		WHERE user_id = $1`,
		input.UserID,
	)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Credit adds coins to a user's balance
func (r *postgresRepository) Credit(ctx context.Context, input *ChangeBalanceInput) (*ChangeBalanceOutput, error) {
	return r.change(ctx, input, 1)
}

// Debit removes coins from a user's balance
func (r *postgresRepository) Debit(ctx context.Context, input *ChangeBalanceInput) (*ChangeBalanceOutput, error) {
	return r.change(ctx, input, -1)
}

func (r *postgresRepository) change(ctx context.Context, input *ChangeBalanceInput, sign int64) (*ChangeBalanceOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var balance int64
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		balance, err = ApplyChange(ctx, tx, input.UserID, sign*input.Amount, input.Reason)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &ChangeBalanceOutput{
		Balance: balance,
	}, nil
}

// GetBalance returns a user's balance
func (r *postgresRepository) GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	var balance int64
	err := r.pool.QueryRow(ctx, `SELECT coins FROM users WHERE user_id = $1`, input.UserID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	return &GetBalanceOutput{
		Balance: balance,
	}, nil
}

// ListTransactions returns a user's most recent ledger entries
func (r *postgresRepository) ListTransactions(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultTransactionLimit
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, amount, reason, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		input.UserID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.LedgerEntry, error) {
		entry := &models.LedgerEntry{}
		err := row.Scan(&entry.ID, &entry.UserID, &entry.Amount, &entry.Reason, &entry.CreatedAt)
		return entry, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return &ListTransactionsOutput{
		Entries: entries,
	}, nil
}

// ApplyChange locks the user row, applies a signed amount and appends a ledger
// entry inside the caller's transaction. It returns the new balance.
func ApplyChange(ctx context.Context, tx pgx.Tx, userID string, amount int64, reason string) (int64, error) {
	if amount == 0 {
		return 0, ErrInvalidAmount
	}

	var balance int64
	err := tx.QueryRow(ctx, `SELECT coins FROM users WHERE user_id = $1 FOR UPDATE`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to lock user: %w", err)
	}

	if balance+amount < 0 {
		return 0, ErrInsufficientBalance
	}

	err = tx.QueryRow(ctx, `UPDATE users SET coins = coins + $2 WHERE user_id = $1 RETURNING coins`, userID, amount).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to update balance: %w", err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO transactions (user_id, amount, reason) VALUES ($1, $2, $3)`, userID, amount, reason); err != nil {
		return 0, fmt.Errorf("failed to append transaction: %w", err)
	}

	return balance, nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Coins,
		&user.TotalGames,
		&user.Wins,
		&user.Losses,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
