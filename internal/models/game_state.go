package models

// GameState is the live state of an active match
type GameState struct {
	// Players is the turn order, fixed when the match starts
	Players []*Player `json:"players"`

	// CurrentTurn indexes the player whose turn it is
	CurrentTurn int `json:"current_turn"`

	// DiceValue is the pending roll, 0 while the current player still has to roll
	DiceValue int `json:"dice_value"`

	// ConsecutiveSix counts sixes rolled in a row by the current player
	ConsecutiveSix int `json:"consecutive_six"`
}

// NewGameState creates a state whose first turn belongs to the first player
func NewGameState(players []*Player) *GameState {
	return &GameState{
		Players: players,
	}
}

// CurrentPlayer returns the player whose turn it is
func (s *GameState) CurrentPlayer() *Player {
	if s == nil || len(s.Players) == 0 {
		return nil
	}
	return s.Players[s.CurrentTurn]
}

// ActiveCount returns how many players are still engaged
func (s *GameState) ActiveCount() int {
	count := 0
	for _, p := range s.Players {
		if p.Active {
			count++
		}
	}
	return count
}
