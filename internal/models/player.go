package models

// Color identifies a player's seat and start offset on the shared path
type Color string

const (
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
)

// Colors lists every color in seating order
var Colors = []Color{ColorRed, ColorGreen, ColorYellow, ColorBlue}

// IsValid returns true if the color is one of the four seats
func (c Color) IsValid() bool {
	for _, color := range Colors {
		if c == color {
			return true
		}
	}
	return false
}

// TokensPerPlayer is the number of tokens every player owns
const TokensPerPlayer = 4

// Player is a participant in a room
type Player struct {
	// UserID is the external identity of the player
	UserID string `json:"user_id"`

	// Name is the display name used in messages
	Name string `json:"name"`

	// Color is the player's seat
	Color Color `json:"color"`

	// Tokens are the player's pieces
	Tokens [TokensPerPlayer]Token `json:"tokens"`

	// Active is false once the player left or was eliminated. Inactive players
	// keep their ranking slot but are skipped in turn order.
	Active bool `json:"active"`
}

// NewPlayer creates an active player with every token at home
func NewPlayer(userID, name string, color Color) *Player {
	p := &Player{
		UserID: userID,
		Name:   name,
		Color:  color,
		Active: true,
	}
	for i := range p.Tokens {
		p.Tokens[i] = Token{Position: PositionHome}
	}
	return p
}

// FinishedCount returns how many tokens reached the finish cell
func (p *Player) FinishedCount() int {
	count := 0
	for _, t := range p.Tokens {
		if t.Finished {
			count++
		}
	}
	return count
}

// AllFinished reports whether every token reached the finish cell
func (p *Player) AllFinished() bool {
	return p.FinishedCount() == TokensPerPlayer
}
