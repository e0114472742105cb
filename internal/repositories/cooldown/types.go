package cooldown

import "time"

// AcquireInput contains parameters for claiming a key
type AcquireInput struct {
	Key string
	TTL time.Duration
}

// AcquireOutput reports the claim result
type AcquireOutput struct {
	Acquired bool

	// Remaining is the time left on an existing claim
	Remaining time.Duration
}

// ReleaseInput contains parameters for dropping a claim
type ReleaseInput struct {
	Key string
}
