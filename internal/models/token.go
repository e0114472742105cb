package models

// PositionHome is the position of a token that has not entered play yet
const PositionHome = -1

// Token is one of a player's four pieces
type Token struct {
	// Position is PositionHome, 0-51 on the shared path or 52-57 on the home stretch
	Position int `json:"position"`

	// Finished is true once the token reached the last home stretch cell
	Finished bool `json:"finished"`
}

// AtHome reports whether the token is still waiting to spawn
func (t *Token) AtHome() bool {
	return t.Position == PositionHome
}
