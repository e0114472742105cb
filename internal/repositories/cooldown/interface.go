package cooldown

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/ludo/internal/repositories/cooldown Repository

import "context"

// Repository hands out time-boxed claims keyed by name
type Repository interface {
	// Acquire claims the key for the TTL. It reports false if the key is
	// already claimed, together with the time left on the claim.
	Acquire(ctx context.Context, input *AcquireInput) (*AcquireOutput, error)

	// Release drops a claim early
	Release(ctx context.Context, input *ReleaseInput) error
}
