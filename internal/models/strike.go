package models

import "time"

// StrikeRecord holds a user's anti-cheat standing
type StrikeRecord struct {
	UserID string `json:"user_id"`

	// Strikes is the number of infractions since the last unban
	Strikes int `json:"strikes"`

	LastReason string    `json:"last_reason"`
	LastAt     time.Time `json:"last_at"`

	// BannedUntil is zero when the user is not banned
	BannedUntil time.Time `json:"banned_until"`
}

// IsBanned reports whether a ban is recorded, expired or not
func (r *StrikeRecord) IsBanned() bool {
	return r != nil && !r.BannedUntil.IsZero()
}

// Penalty is one entry of the anti-cheat audit trail
type Penalty struct {
	Reason      string    `json:"reason"`
	Fine        int64     `json:"fine"`
	FineApplied bool      `json:"fine_applied"`
	At          time.Time `json:"at"`
}
