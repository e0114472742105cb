package match

import (
	"context"
	"errors"

	"github.com/KirkDiggler/ludo/internal/models"
	"github.com/KirkDiggler/ludo/internal/room"
	"github.com/KirkDiggler/ludo/internal/rules"
	"github.com/KirkDiggler/ludo/internal/services/anticheat"
	"github.com/KirkDiggler/ludo/internal/timer"
	"github.com/KirkDiggler/ludo/internal/validate"
	"go.uber.org/zap"
)

// checkTurn returns the rejection for an action by userID. The room lock must be held.
func checkTurn(r *room.Room, userID string) (*models.Player, Rejection) {
	if !r.Status.IsActive() || r.State == nil {
		return nil, RejectionMatchNotActive
	}

	current := r.State.CurrentPlayer()
	if current == nil || current.UserID != userID {
		return nil, RejectionNotYourTurn
	}

	return current, RejectionNone
}

// Roll rolls the die for the current player. A roll that no token can use
// is played out immediately.
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r, err := s.lookup(input.RoomID)
	if err != nil {
		return nil, err
	}

	r.Lock()

	player, rejection := checkTurn(r, input.UserID)
	if rejection != RejectionNone {
		r.Unlock()
		return &RollOutput{Rejection: rejection}, nil
	}

	state := r.State
	if state.DiceValue != 0 {
		r.Unlock()
		return &RollOutput{Rejection: RejectionAlreadyRolled, DiceValue: state.DiceValue}, nil
	}

	value := rules.RollDice(s.diceRoller)
	state.DiceValue = value

	out := &RollOutput{
		DiceValue: value,
		Movable:   rules.MovableTokens(player, value),
	}

	if len(out.Movable) == 0 {
		out.Passed = true
		out.Dice = rules.PassTurn(state, value)
	} else {
		out.Suggested, out.HasSuggestion = rules.ChooseToken(player, value, state.Players)
	}

	r.UpdatedAt = s.clock.Now()
	r.Bump()

	snapshot := r.Snapshot()
	turn := currentTurn(r)
	r.Unlock()

	out.Room = snapshot

	rolled := newEvent(models.EventDiceRolled, snapshot, input.UserID)
	rolled.DiceValue = value
	events := []*models.Event{rolled}

	if out.Passed && !out.Dice.ExtraTurn {
		events = append(events, newEvent(models.EventTurnChanged, snapshot, input.UserID))
	}

	s.publish(ctx, &update{
		snapshot: snapshot,
		turn:     turn,
		events:   events,
	})

	return out, nil
}

// Move plays a token with the pending roll
func (s *service) Move(ctx context.Context, input *MoveInput) (*MoveOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := validate.TokenIndex(input.TokenIndex); err != nil {
		return nil, err
	}

	r, err := s.lookup(input.RoomID)
	if err != nil {
		return nil, err
	}

	r.Lock()

	player, rejection := checkTurn(r, input.UserID)
	if rejection != RejectionNone {
		r.Unlock()
		return &MoveOutput{Rejection: rejection}, nil
	}

	state := r.State
	if state.DiceValue == 0 {
		r.Unlock()
		return &MoveOutput{Rejection: RejectionRollFirst}, nil
	}

	value := state.DiceValue
	result := rules.MoveToken(player, input.TokenIndex, value, state.Players)
	if !result.Outcome.IsValid() {
		r.Unlock()
		return &MoveOutput{Rejection: RejectionIllegalMove, Result: result}, nil
	}

	out := &MoveOutput{
		Result:    result,
		MatchOver: result.PlayerFullyFinished,
	}

	now := s.clock.Now()
	if out.MatchOver {
		// closes the room to further actions until finalize takes over
		r.EndGame(now)
	} else {
		out.Dice = rules.ResolveTurn(state, value, result)
		r.UpdatedAt = now
		r.Bump()
	}

	snapshot := r.Snapshot()
	turn := currentTurn(r)
	r.Unlock()

	out.Room = snapshot

	moved := newEvent(models.EventTokenMoved, snapshot, input.UserID)
	moved.DiceValue = value
	moved.Outcome = string(result.Outcome)

	if out.MatchOver {
		s.notifier.Notify(ctx, moved)

		final, err := s.finalize(ctx, r)
		if err != nil {
			return out, err
		}
		out.Settlement = final.Settlement
		out.Room = final.room
		return out, nil
	}

	events := []*models.Event{moved}
	if !out.Dice.ExtraTurn {
		events = append(events, newEvent(models.EventTurnChanged, snapshot, input.UserID))
	}

	s.publish(ctx, &update{
		snapshot: snapshot,
		turn:     turn,
		events:   events,
	})

	return out, nil
}

// HandleTurnTimeout penalizes the player whose turn expired and passes the
// turn on. A timer armed for an earlier turn, or for a room that is no
// longer active, does nothing.
func (s *service) HandleTurnTimeout(ctx context.Context, turn *timer.Turn) {
	logger := s.logger.With(
		zap.String("room_id", turn.RoomID),
		zap.String("user_id", turn.UserID),
	)

	r, err := s.registry.Get(turn.RoomID)
	if err != nil {
		logger.Debug("turn timeout for a closed room")
		return
	}

	r.Lock()

	current := r.State.CurrentPlayer()
	if !r.Status.IsActive() || r.Seq() != turn.Seq || current == nil || current.UserID != turn.UserID {
		r.Unlock()
		logger.Debug("stale turn timeout ignored", zap.Uint64("seq", turn.Seq))
		return
	}

	state := r.State
	state.DiceValue = 0
	state.ConsecutiveSix = 0
	rules.NextTurn(state)

	r.UpdatedAt = s.clock.Now()
	r.Bump()

	snapshot := r.Snapshot()
	next := currentTurn(r)
	r.Unlock()

	logger.Warn("player timed out")

	if _, err := s.antiCheat.HandleAFK(ctx, &anticheat.HandleAFKInput{
		RoomID: turn.RoomID,
		UserID: turn.UserID,
	}); err != nil {
		logger.Error("failed to penalize AFK player", zap.Error(err))
	}

	s.publish(ctx, &update{
		snapshot: snapshot,
		turn:     next,
		events: []*models.Event{
			newEvent(models.EventPlayerAFK, snapshot, turn.UserID),
			newEvent(models.EventTurnChanged, snapshot, turn.UserID),
		},
	})
}
