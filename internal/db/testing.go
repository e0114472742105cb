//go:build integration

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDatabase is a throwaway Postgres container with the schema applied
type TestDatabase struct {
	Pool      *pgxpool.Pool
	container *postgres.PostgresContainer
}

// StartTestDatabase starts a Postgres container for integration tests
func StartTestDatabase(ctx context.Context) (*TestDatabase, error) {
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ludo"),
		postgres.WithUsername("ludo"),
		postgres.WithPassword("ludo"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	pool, err := Connect(ctx, &Config{DatabaseURL: url})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := Migrate(ctx, pool); err != nil {
		pool.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &TestDatabase{
		Pool:      pool,
		container: container,
	}, nil
}

// Truncate empties every table
func (d *TestDatabase) Truncate(ctx context.Context) error {
	_, err := d.Pool.Exec(ctx, "TRUNCATE settlements, transactions, users RESTART IDENTITY CASCADE")
	return err
}

// Close releases the pool and the container
func (d *TestDatabase) Close(ctx context.Context) error {
	d.Pool.Close()
	return d.container.Terminate(ctx)
}
