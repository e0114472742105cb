package models

import "time"

// LedgerEntry is one append-only change to a user's coin balance
type LedgerEntry struct {
	ID     int64  `json:"id"`
	UserID string `json:"user_id"`

	// Amount is positive for credits and negative for debits
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

// User is a wallet holder with match statistics
type User struct {
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	Coins      int64     `json:"coins"`
	TotalGames int       `json:"total_games"`
	Wins       int       `json:"wins"`
	Losses     int       `json:"losses"`
	CreatedAt  time.Time `json:"created_at"`
}
