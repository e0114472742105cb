package room

import (
	"sync"
	"time"

	"github.com/KirkDiggler/ludo/internal/models"
)

const (
	// MinPlayers is the fewest active players a match can start with
	MinPlayers = 2

	// MaxPlayers is one seat per board color
	MaxPlayers = 4
)

// Config describes a new room
type Config struct {
	ID        string
	ChannelID string
	OwnerID   string
	EntryFee  int64

	// MaxPlayers defaults to four
	MaxPlayers int

	CreatedAt time.Time
}

// Room is one game session.
//
// Room does no locking of its own. Callers must hold Lock for the whole
// read-validate-mutate sequence of any operation on a room, including reads
// of the live state.
type Room struct {
	mu sync.Mutex

	ID         string
	ChannelID  string
	OwnerID    string
	EntryFee   int64
	MaxPlayers int
	Status     models.RoomStatus

	// Players is the roster. Players are never removed, only deactivated.
	Players []*models.Player

	// State exists only while the match is active
	State *models.GameState

	CreatedAt time.Time
	StartedAt time.Time
	EndedAt   time.Time
	UpdatedAt time.Time

	// seq increases with every accepted action so stale timers can be told apart
	seq uint64

	finalizing   bool
	finalizeDone chan struct{}
}

// New creates a forming room with an empty roster
func New(cfg *Config) (*Room, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers == 0 {
		maxPlayers = MaxPlayers
	}
	if maxPlayers < MinPlayers || maxPlayers > MaxPlayers {
		return nil, ErrInvalidMaxPlayers
	}

	if cfg.EntryFee < 0 {
		return nil, ErrInvalidEntryFee
	}

	return &Room{
		ID:         cfg.ID,
		ChannelID:  cfg.ChannelID,
		OwnerID:    cfg.OwnerID,
		EntryFee:   cfg.EntryFee,
		MaxPlayers: maxPlayers,
		Status:     models.RoomStatusForming,
		CreatedAt:  cfg.CreatedAt,
		UpdatedAt:  cfg.CreatedAt,
	}, nil
}

// Lock acquires exclusive access to the room
func (r *Room) Lock() {
	r.mu.Lock()
}

// Unlock releases exclusive access to the room
func (r *Room) Unlock() {
	r.mu.Unlock()
}

// Seq returns the current action sequence number
func (r *Room) Seq() uint64 {
	return r.seq
}

// Bump records an accepted action and returns the new sequence number
func (r *Room) Bump() uint64 {
	r.seq++
	return r.seq
}

// Player returns the roster entry for a user
func (r *Room) Player(userID string) *models.Player {
	for _, p := range r.Players {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// HasPlayer reports whether the user is on the roster, active or not
func (r *Room) HasPlayer(userID string) bool {
	return r.Player(userID) != nil
}

// ActivePlayers returns the players still engaged, in roster order
func (r *Room) ActivePlayers() []*models.Player {
	var active []*models.Player
	for _, p := range r.Players {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

// FreeColor returns the first color in seating order nobody holds
func (r *Room) FreeColor() (models.Color, bool) {
	for _, color := range models.Colors {
		if !r.colorTaken(color) {
			return color, true
		}
	}
	return "", false
}

func (r *Room) colorTaken(color models.Color) bool {
	for _, p := range r.Players {
		if p.Color == color {
			return true
		}
	}
	return false
}

// CanAdd reports why a player with the given color could not join, without
// changing the room. An empty color is checked against the free seats.
func (r *Room) CanAdd(userID string, color models.Color) error {
	switch r.Status {
	case models.RoomStatusActive:
		return ErrAlreadyStarted
	case models.RoomStatusFinished:
		return ErrAlreadyFinished
	}

	if len(r.Players) >= r.MaxPlayers {
		return ErrRoomFull
	}

	if r.HasPlayer(userID) {
		return ErrDuplicatePlayer
	}

	if color == "" {
		if _, ok := r.FreeColor(); !ok {
			return ErrRoomFull
		}
		return nil
	}

	if !color.IsValid() {
		return ErrInvalidColor
	}

	if r.colorTaken(color) {
		return ErrColorTaken
	}

	return nil
}

// AddPlayer appends an active player to a forming room. A player without a
// color receives the first free one.
func (r *Room) AddPlayer(player *models.Player) error {
	if player == nil {
		return ErrNilPlayer
	}

	if err := r.CanAdd(player.UserID, player.Color); err != nil {
		return err
	}

	if player.Color == "" {
		player.Color, _ = r.FreeColor()
	}

	player.Active = true
	r.Players = append(r.Players, player)
	return nil
}

// RemovePlayer deactivates a player. If the owner leaves a forming room,
// ownership moves to the next active player in roster order.
func (r *Room) RemovePlayer(userID string) error {
	player := r.Player(userID)
	if player == nil {
		return ErrPlayerNotFound
	}

	player.Active = false

	if r.Status.IsForming() && r.OwnerID == userID {
		if active := r.ActivePlayers(); len(active) > 0 {
			r.OwnerID = active[0].UserID
		}
	}

	return nil
}

// IsAbandoned reports whether a forming room has nobody left in it. The
// caller is responsible for evicting it.
func (r *Room) IsAbandoned() bool {
	return r.Status.IsForming() && len(r.ActivePlayers()) == 0
}

// StartGame fixes the turn order to the active players and starts the match
func (r *Room) StartGame(now time.Time) error {
	switch r.Status {
	case models.RoomStatusActive:
		return ErrAlreadyStarted
	case models.RoomStatusFinished:
		return ErrAlreadyFinished
	}

	active := r.ActivePlayers()
	if len(active) < MinPlayers {
		return ErrNotEnoughPlayers
	}

	r.Players = active
	r.State = models.NewGameState(active)
	r.Status = models.RoomStatusActive
	r.StartedAt = now
	r.UpdatedAt = now
	r.seq++

	return nil
}

// EndGame marks the match finished. It returns false if it already was.
func (r *Room) EndGame(now time.Time) bool {
	if r.Status.IsFinished() {
		return false
	}

	r.Status = models.RoomStatusFinished
	r.State = nil
	r.EndedAt = now
	r.UpdatedAt = now
	r.seq++

	return true
}

// BeginFinalize claims the right to finalize the room. Only the first caller
// gets true and must call EndFinalize when done.
func (r *Room) BeginFinalize() bool {
	if r.finalizing {
		return false
	}
	r.finalizing = true
	r.finalizeDone = make(chan struct{})
	return true
}

// EndFinalize releases everyone waiting on FinalizeDone
func (r *Room) EndFinalize() {
	if r.finalizeDone != nil {
		close(r.finalizeDone)
	}
}

// Finalizing reports whether a finalize has been claimed
func (r *Room) Finalizing() bool {
	return r.finalizing
}

// FinalizeDone is closed once the claimed finalize completes. It is nil
// before BeginFinalize.
func (r *Room) FinalizeDone() <-chan struct{} {
	return r.finalizeDone
}

// Snapshot returns a deep copy of the room that is safe to hand out
func (r *Room) Snapshot() *models.RoomSnapshot {
	snapshot := &models.RoomSnapshot{
		RoomID:     r.ID,
		ChannelID:  r.ChannelID,
		OwnerID:    r.OwnerID,
		EntryFee:   r.EntryFee,
		MaxPlayers: r.MaxPlayers,
		Status:     r.Status,
		Players:    copyPlayers(r.Players),
		CreatedAt:  r.CreatedAt,
		StartedAt:  r.StartedAt,
		EndedAt:    r.EndedAt,
		UpdatedAt:  r.UpdatedAt,
	}

	if r.State != nil {
		snapshot.State = &models.GameState{
			Players:        snapshot.Players,
			CurrentTurn:    r.State.CurrentTurn,
			DiceValue:      r.State.DiceValue,
			ConsecutiveSix: r.State.ConsecutiveSix,
		}
	}

	return snapshot
}

func copyPlayers(players []*models.Player) []*models.Player {
	copied := make([]*models.Player, 0, len(players))
	for _, p := range players {
		c := *p
		copied = append(copied, &c)
	}
	return copied
}
