package rules

// Outcome describes what a move did
type Outcome string

const (
	// OutcomeInvalid means the move was rejected and nothing changed
	OutcomeInvalid Outcome = "invalid"

	// OutcomeSpawn means a token entered play at its start cell
	OutcomeSpawn Outcome = "spawn"

	// OutcomeMove means a plain advance
	OutcomeMove Outcome = "move"

	// OutcomeKill means an opponent token was sent home
	OutcomeKill Outcome = "kill"

	// OutcomeFinish means the token reached the finish cell
	OutcomeFinish Outcome = "finish"
)

// IsValid returns false for a rejected move
func (o Outcome) IsValid() bool {
	return o != "" && o != OutcomeInvalid
}

// MoveResult describes the effect of MoveToken
type MoveResult struct {
	Outcome Outcome `json:"outcome"`

	// GrantsExtraTurn is set for spawn, kill and finish
	GrantsExtraTurn bool `json:"grants_extra_turn"`

	// PlayerFullyFinished is set when the move finished the player's last token
	PlayerFullyFinished bool `json:"player_fully_finished"`

	From int `json:"from"`
	To   int `json:"to"`

	// CapturedUserID is the owner of the token sent home by a kill
	CapturedUserID string `json:"captured_user_id,omitempty"`
	CapturedToken  int    `json:"captured_token,omitempty"`
}

// DiceResult describes what the six counter did to the turn
type DiceResult struct {
	// ExtraTurn means the same player acts again
	ExtraTurn bool `json:"extra_turn"`

	// Penalty means a third six forfeited the turn
	Penalty bool `json:"penalty"`
}
