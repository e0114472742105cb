package rules

import (
	"github.com/KirkDiggler/ludo/internal/dice"
	"github.com/KirkDiggler/ludo/internal/models"
)

const (
	// PathLength is the number of cells on the shared circular path (0-51)
	PathLength = 52

	// HomeStretchLength is the number of private cells after the shared path (52-57)
	HomeStretchLength = 6

	// FinishPosition is the last home stretch cell
	FinishPosition = PathLength + HomeStretchLength - 1

	// MaxConsecutiveSix is the number of sixes in a row that forfeits the turn
	MaxConsecutiveSix = 3

	// SpawnRoll is the only roll that brings a token into play
	SpawnRoll = dice.Sides
)

// safeCells are the star cells where captures cannot happen
var safeCells = map[int]bool{
	0:  true,
	8:  true,
	13: true,
	21: true,
	26: true,
	34: true,
	39: true,
	47: true,
}

// startOffsets is where each color's tokens spawn
var startOffsets = map[models.Color]int{
	models.ColorRed:    0,
	models.ColorGreen:  13,
	models.ColorYellow: 26,
	models.ColorBlue:   39,
}

// IsSafeCell returns true if captures are forbidden on the cell
func IsSafeCell(position int) bool {
	return safeCells[position]
}

// StartOffset returns the spawn cell for a color
func StartOffset(color models.Color) int {
	return startOffsets[color]
}

// RollDice returns a value in [1, 6]
func RollDice(roller dice.Roller) int {
	return roller.Roll()
}

// CanMove reports whether a token may move by the rolled value
func CanMove(token models.Token, value int) bool {
	if token.Finished {
		return false
	}

	if token.AtHome() {
		return value == SpawnRoll
	}

	return token.Position+value <= FinishPosition
}

// MovableTokens returns the indexes of the player's tokens that can move
func MovableTokens(player *models.Player, value int) []int {
	var movable []int
	for i, token := range player.Tokens {
		if CanMove(token, value) {
			movable = append(movable, i)
		}
	}
	return movable
}

// HasLegalMove reports whether any of the player's tokens can move
func HasLegalMove(player *models.Player, value int) bool {
	return len(MovableTokens(player, value)) > 0
}

// MoveToken applies a move for the player's token and any capture it causes.
// An invalid move leaves every token untouched.
func MoveToken(player *models.Player, tokenIndex int, value int, players []*models.Player) *MoveResult {
	if player == nil || tokenIndex < 0 || tokenIndex >= models.TokensPerPlayer {
		return &MoveResult{Outcome: OutcomeInvalid}
	}

	token := &player.Tokens[tokenIndex]
	if !CanMove(*token, value) {
		return &MoveResult{Outcome: OutcomeInvalid}
	}

	if token.AtHome() {
		token.Position = StartOffset(player.Color)
		return &MoveResult{
			Outcome:         OutcomeSpawn,
			GrantsExtraTurn: true,
			From:            models.PositionHome,
			To:              token.Position,
		}
	}

	from := token.Position
	token.Position += value

	if token.Position == FinishPosition {
		token.Finished = true
		return &MoveResult{
			Outcome:             OutcomeFinish,
			GrantsExtraTurn:     true,
			PlayerFullyFinished: player.AllFinished(),
			From:                from,
			To:                  token.Position,
		}
	}

	if token.Position < PathLength && !IsSafeCell(token.Position) {
		if victim, victimToken, ok := findOpponentAt(player, token.Position, players); ok {
			victim.Tokens[victimToken] = models.Token{Position: models.PositionHome}
			return &MoveResult{
				Outcome:         OutcomeKill,
				GrantsExtraTurn: true,
				From:            from,
				To:              token.Position,
				CapturedUserID:  victim.UserID,
				CapturedToken:   victimToken,
			}
		}
	}

	return &MoveResult{
		Outcome: OutcomeMove,
		From:    from,
		To:      token.Position,
	}
}

// findOpponentAt returns the first active opponent token on the cell
func findOpponentAt(player *models.Player, position int, players []*models.Player) (*models.Player, int, bool) {
	for _, other := range players {
		if other == nil || other == player || other.UserID == player.UserID || !other.Active {
			continue
		}
		for i, t := range other.Tokens {
			if !t.Finished && t.Position == position {
				return other, i, true
			}
		}
	}
	return nil, 0, false
}

// HandleDiceRules applies the six counter after a roll has been played out
func HandleDiceRules(state *models.GameState, value int) *DiceResult {
	if value == SpawnRoll {
		state.ConsecutiveSix++
		if state.ConsecutiveSix >= MaxConsecutiveSix {
			state.ConsecutiveSix = 0
			NextTurn(state)
			return &DiceResult{Penalty: true}
		}
		return &DiceResult{ExtraTurn: true}
	}

	state.ConsecutiveSix = 0
	NextTurn(state)
	return &DiceResult{}
}

// NextTurn moves the turn to the next active player in seating order.
// The turn stays put when nobody else is active.
func NextTurn(state *models.GameState) {
	n := len(state.Players)
	if n == 0 {
		return
	}

	for i := 1; i <= n; i++ {
		next := (state.CurrentTurn + i) % n
		if state.Players[next].Active {
			state.CurrentTurn = next
			return
		}
	}
}

// ResolveTurn settles the turn after a move. A capture or finish on a
// non-six keeps the turn; everything else goes through the dice rules.
func ResolveTurn(state *models.GameState, value int, result *MoveResult) *DiceResult {
	state.DiceValue = 0

	if value != SpawnRoll && result != nil && result.GrantsExtraTurn {
		state.ConsecutiveSix = 0
		return &DiceResult{ExtraTurn: true}
	}

	return HandleDiceRules(state, value)
}

// PassTurn settles a roll that has no legal move
func PassTurn(state *models.GameState, value int) *DiceResult {
	state.DiceValue = 0
	return HandleDiceRules(state, value)
}

// ChooseToken suggests a move: capture first, then spawning on a six, then
// landing on a safe cell, then the first legal token.
func ChooseToken(player *models.Player, value int, players []*models.Player) (int, bool) {
	movable := MovableTokens(player, value)
	if len(movable) == 0 {
		return 0, false
	}

	for _, i := range movable {
		token := player.Tokens[i]
		if token.AtHome() {
			continue
		}
		target := token.Position + value
		if target < PathLength && !IsSafeCell(target) {
			if _, _, ok := findOpponentAt(player, target, players); ok {
				return i, true
			}
		}
	}

	if value == SpawnRoll {
		for _, i := range movable {
			if player.Tokens[i].AtHome() {
				return i, true
			}
		}
	}

	for _, i := range movable {
		token := player.Tokens[i]
		if !token.AtHome() && IsSafeCell(token.Position+value) {
			return i, true
		}
	}

	return movable[0], true
}
