package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/ludo/internal/models"
	roomRepo "github.com/KirkDiggler/ludo/internal/repositories/room"
	"github.com/KirkDiggler/ludo/internal/room"
	"github.com/KirkDiggler/ludo/internal/rules"
	"github.com/KirkDiggler/ludo/internal/services/anticheat"
	"github.com/KirkDiggler/ludo/internal/services/wallet"
	"github.com/KirkDiggler/ludo/internal/validate"
	"go.uber.org/zap"
)

// CreateRoom opens a room with the owner seated
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := validate.UserID(input.OwnerID); err != nil {
		return nil, err
	}

	if err := s.ensureNotBanned(ctx, input.OwnerID); err != nil {
		return nil, err
	}

	if input.ChannelID != "" {
		if _, err := s.registry.GetByChannel(input.ChannelID); err == nil {
			return nil, room.ErrChannelBusy
		}
	}

	maxPlayers := input.MaxPlayers
	if maxPlayers == 0 {
		maxPlayers = s.defaultMaxPlayers
	}

	r, err := room.New(&room.Config{
		ID:         s.uuidGenerator.NewRoomID(),
		ChannelID:  input.ChannelID,
		OwnerID:    input.OwnerID,
		EntryFee:   input.EntryFee,
		MaxPlayers: maxPlayers,
		CreatedAt:  s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	if err := r.AddPlayer(models.NewPlayer(input.OwnerID, input.OwnerName, input.Color)); err != nil {
		return nil, err
	}

	if _, err := s.wallet.Register(ctx, &wallet.RegisterInput{
		UserID:   input.OwnerID,
		Username: input.OwnerName,
	}); err != nil {
		return nil, fmt.Errorf("failed to register owner: %w", err)
	}

	if err := s.collectFee(ctx, r.ID, input.OwnerID, r.EntryFee); err != nil {
		return nil, err
	}

	if err := s.registry.Add(r); err != nil {
		s.refundFee(ctx, r.ID, input.OwnerID, r.EntryFee)
		return nil, err
	}

	r.Lock()
	snapshot := r.Snapshot()
	r.Unlock()

	s.logger.Info("room created",
		zap.String("room_id", r.ID),
		zap.String("owner_id", input.OwnerID),
		zap.Int64("entry_fee", r.EntryFee),
	)

	s.publish(ctx, &update{
		snapshot: snapshot,
		events:   []*models.Event{newEvent(models.EventRoomCreated, snapshot, input.OwnerID)},
	})

	return &CreateRoomOutput{
		Room: snapshot,
	}, nil
}

// JoinRoom seats a player in a forming room
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := validate.UserID(input.UserID); err != nil {
		return nil, err
	}

	r, err := s.lookup(input.RoomID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureNotBanned(ctx, input.UserID); err != nil {
		return nil, err
	}

	r.Lock()
	snapshot, err := s.join(ctx, r, input)
	r.Unlock()
	if err != nil {
		return nil, err
	}

	s.publish(ctx, &update{
		snapshot: snapshot,
		events:   []*models.Event{newEvent(models.EventPlayerJoined, snapshot, input.UserID)},
	})

	return &JoinRoomOutput{
		Room: snapshot,
	}, nil
}

// join runs with the room lock held so the seat cannot be taken between the
// check and the fee collection
func (s *service) join(ctx context.Context, r *room.Room, input *JoinRoomInput) (*models.RoomSnapshot, error) {
	if err := r.CanAdd(input.UserID, input.Color); err != nil {
		return nil, err
	}

	if _, err := s.wallet.Register(ctx, &wallet.RegisterInput{
		UserID:   input.UserID,
		Username: input.Username,
	}); err != nil {
		return nil, fmt.Errorf("failed to register player: %w", err)
	}

	if err := s.collectFee(ctx, r.ID, input.UserID, r.EntryFee); err != nil {
		return nil, err
	}

	if err := r.AddPlayer(models.NewPlayer(input.UserID, input.Username, input.Color)); err != nil {
		s.refundFee(ctx, r.ID, input.UserID, r.EntryFee)
		return nil, err
	}

	r.UpdatedAt = s.clock.Now()
	r.Bump()

	s.logger.Info("player joined",
		zap.String("room_id", r.ID),
		zap.String("user_id", input.UserID),
	)

	return r.Snapshot(), nil
}

// LeaveRoom takes a player out of a room
func (s *service) LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r, err := s.lookup(input.RoomID)
	if err != nil {
		return nil, err
	}

	r.Lock()

	player := r.Player(input.UserID)
	if player == nil {
		r.Unlock()
		return nil, room.ErrPlayerNotFound
	}

	if !player.Active {
		r.Unlock()
		return nil, ErrPlayerAlreadyLeft
	}

	switch r.Status {
	case models.RoomStatusForming:
		return s.leaveForming(ctx, r, input.UserID)
	case models.RoomStatusActive:
		return s.leaveActive(ctx, r, input.UserID)
	}

	r.Unlock()
	return nil, room.ErrAlreadyFinished
}

// leaveForming is entered with the room lock held and releases it
func (s *service) leaveForming(ctx context.Context, r *room.Room, userID string) (*LeaveRoomOutput, error) {
	if err := r.RemovePlayer(userID); err != nil {
		r.Unlock()
		return nil, err
	}

	r.UpdatedAt = s.clock.Now()
	r.Bump()

	abandoned := r.IsAbandoned()
	if abandoned {
		// finalize the flag so nobody can join a room that is being evicted
		r.EndGame(s.clock.Now())
	}
	snapshot := r.Snapshot()
	fee := r.EntryFee
	r.Unlock()

	out := &LeaveRoomOutput{
		Room:      snapshot,
		Abandoned: abandoned,
	}

	if s.refundFee(ctx, r.ID, userID, fee) {
		out.Refunded = fee
	}

	if abandoned {
		s.evict(ctx, r.ID)
		s.publish(ctx, &update{
			events: []*models.Event{newEvent(models.EventRoomAbandoned, snapshot, userID)},
		})
		return out, nil
	}

	s.publish(ctx, &update{
		snapshot: snapshot,
		events:   []*models.Event{newEvent(models.EventPlayerLeft, snapshot, userID)},
	})

	return out, nil
}

// leaveActive is entered with the room lock held and releases it
func (s *service) leaveActive(ctx context.Context, r *room.Room, userID string) (*LeaveRoomOutput, error) {
	state := r.State
	wasCurrent := state.CurrentPlayer() != nil && state.CurrentPlayer().UserID == userID

	if err := r.RemovePlayer(userID); err != nil {
		r.Unlock()
		return nil, err
	}

	if wasCurrent {
		state.DiceValue = 0
		state.ConsecutiveSix = 0
		rules.NextTurn(state)
	}

	now := s.clock.Now()
	matchOver := state.ActiveCount() < room.MinPlayers
	if matchOver {
		r.EndGame(now)
	} else {
		r.UpdatedAt = now
		r.Bump()
	}

	snapshot := r.Snapshot()
	turn := currentTurn(r)
	r.Unlock()

	out := &LeaveRoomOutput{
		Room: snapshot,
	}

	penalty, err := s.antiCheat.HandleLeaveMidGame(ctx, &anticheat.HandleLeaveMidGameInput{
		RoomID: r.ID,
		UserID: userID,
	})
	if err != nil {
		s.logger.Error("failed to penalize leaver",
			zap.String("room_id", r.ID),
			zap.String("user_id", userID),
			zap.Error(err),
		)
	} else {
		out.Penalty = penalty.Penalty
	}

	left := newEvent(models.EventPlayerLeft, snapshot, userID)

	if matchOver {
		s.notifier.Notify(ctx, left)

		final, err := s.finalize(ctx, r)
		if err != nil {
			return out, err
		}
		out.Settlement = final.Settlement
		return out, nil
	}

	s.publish(ctx, &update{
		snapshot: snapshot,
		turn:     turn,
		events:   []*models.Event{left},
	})

	return out, nil
}

// StartMatch begins play; only the owner may start
func (s *service) StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r, err := s.lookup(input.RoomID)
	if err != nil {
		return nil, err
	}

	r.Lock()

	if r.OwnerID != input.UserID {
		r.Unlock()
		return nil, ErrNotOwner
	}

	if err := r.StartGame(s.clock.Now()); err != nil {
		r.Unlock()
		return nil, err
	}

	snapshot := r.Snapshot()
	turn := currentTurn(r)
	r.Unlock()

	s.logger.Info("match started",
		zap.String("room_id", r.ID),
		zap.Int("players", len(snapshot.Players)),
	)

	s.publish(ctx, &update{
		snapshot: snapshot,
		turn:     turn,
		events:   []*models.Event{newEvent(models.EventMatchStarted, snapshot, input.UserID)},
	})

	return &StartMatchOutput{
		Room: snapshot,
	}, nil
}

// ForceEnd ends a room early. A forming room is closed with every fee
// refunded; a running match is settled on its current standings.
func (s *service) ForceEnd(ctx context.Context, input *ForceEndInput) (*ForceEndOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r, err := s.lookup(input.RoomID)
	if err != nil {
		return nil, err
	}

	r.Lock()

	if r.OwnerID != input.UserID {
		r.Unlock()
		return nil, ErrNotOwner
	}

	if r.Status.IsForming() {
		var refunds []string
		for _, p := range r.ActivePlayers() {
			refunds = append(refunds, p.UserID)
		}
		r.EndGame(s.clock.Now())
		snapshot := r.Snapshot()
		fee := r.EntryFee
		r.Unlock()

		for _, userID := range refunds {
			s.refundFee(ctx, r.ID, userID, fee)
		}

		s.evict(ctx, r.ID)
		s.publish(ctx, &update{
			events: []*models.Event{newEvent(models.EventRoomAbandoned, snapshot, input.UserID)},
		})

		return &ForceEndOutput{
			Room: snapshot,
		}, nil
	}

	r.EndGame(s.clock.Now())
	r.Unlock()

	final, err := s.finalize(ctx, r)
	if err != nil {
		return nil, err
	}

	return &ForceEndOutput{
		Room:       final.room,
		Settlement: final.Settlement,
	}, nil
}

// evict removes a room that never started
func (s *service) evict(ctx context.Context, roomID string) {
	s.registry.Remove(roomID)

	if err := s.roomRepo.DeleteRoom(ctx, &roomRepo.DeleteRoomInput{RoomID: roomID}); err != nil {
		s.logger.Error("failed to delete room snapshot",
			zap.String("room_id", roomID),
			zap.Error(err),
		)
	}

	s.logger.Info("room closed before start", zap.String("room_id", roomID))
}
