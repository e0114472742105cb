package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/ludo/internal/common/clock"
	"github.com/KirkDiggler/ludo/internal/common/uuid"
	"github.com/KirkDiggler/ludo/internal/dice"
	"github.com/KirkDiggler/ludo/internal/models"
	roomRepo "github.com/KirkDiggler/ludo/internal/repositories/room"
	"github.com/KirkDiggler/ludo/internal/room"
	"github.com/KirkDiggler/ludo/internal/services/anticheat"
	"github.com/KirkDiggler/ludo/internal/services/reward"
	"github.com/KirkDiggler/ludo/internal/services/wallet"
	"github.com/KirkDiggler/ludo/internal/timer"
	"github.com/KirkDiggler/ludo/internal/validate"
	"go.uber.org/zap"
)

// service implements the Service interface.
//
// Every mutation holds the room lock for its read-validate-mutate sequence.
// Persisting snapshots, arming the turn timer and notifying happen after the
// lock is released, so a timer callback waiting on the lock can always be
// cancelled.
type service struct {
	registry          *room.Registry
	roomRepo          roomRepo.Repository
	wallet            wallet.Service
	antiCheat         anticheat.Service
	reward            reward.Service
	timer             timer.Timer
	diceRoller        dice.Roller
	clock             clock.Clock
	uuidGenerator     uuid.UUID
	notifier          Notifier
	defaultMaxPlayers int
	logger            *zap.Logger
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.Wallet == nil {
		return nil, ErrNilWalletService
	}

	if cfg.AntiCheat == nil {
		return nil, ErrNilAntiCheatService
	}

	if cfg.Reward == nil {
		return nil, ErrNilRewardService
	}

	if cfg.Timer == nil {
		return nil, ErrNilTimer
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	var notifier Notifier = nopNotifier{}
	if cfg.Notifier != nil {
		notifier = cfg.Notifier
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		registry:          cfg.Registry,
		roomRepo:          cfg.RoomRepo,
		wallet:            cfg.Wallet,
		antiCheat:         cfg.AntiCheat,
		reward:            cfg.Reward,
		timer:             cfg.Timer,
		diceRoller:        cfg.DiceRoller,
		clock:             cfg.Clock,
		uuidGenerator:     cfg.UUIDGenerator,
		notifier:          notifier,
		defaultMaxPlayers: cfg.DefaultMaxPlayers,
		logger:            logger,
	}, nil
}

// update is the work left to do once the room lock is released
type update struct {
	snapshot *models.RoomSnapshot

	// turn arms the timer when set
	turn *timer.Turn

	events []*models.Event
}

func (s *service) publish(ctx context.Context, u *update) {
	if u.snapshot != nil {
		if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: u.snapshot}); err != nil {
			s.logger.Error("failed to save room snapshot",
				zap.String("room_id", u.snapshot.RoomID),
				zap.Error(err),
			)
		}
	}

	if u.turn != nil {
		if err := s.timer.Start(ctx, u.turn, s.HandleTurnTimeout); err != nil {
			s.logger.Error("failed to start turn timer",
				zap.String("room_id", u.turn.RoomID),
				zap.String("user_id", u.turn.UserID),
				zap.Error(err),
			)
		}
	}

	for _, e := range u.events {
		s.notifier.Notify(ctx, e)
	}
}

// currentTurn describes the turn the timer should guard. The room lock must be held.
func currentTurn(r *room.Room) *timer.Turn {
	if !r.Status.IsActive() || r.State == nil {
		return nil
	}

	current := r.State.CurrentPlayer()
	if current == nil {
		return nil
	}

	return &timer.Turn{
		RoomID: r.ID,
		UserID: current.UserID,
		Seq:    r.Seq(),
	}
}

func newEvent(kind models.EventKind, snapshot *models.RoomSnapshot, userID string) *models.Event {
	e := &models.Event{
		Kind:      kind,
		RoomID:    snapshot.RoomID,
		ChannelID: snapshot.ChannelID,
		UserID:    userID,
		Room:      snapshot,
	}
	if snapshot.State != nil {
		if next := snapshot.State.CurrentPlayer(); next != nil {
			e.NextPlayerID = next.UserID
		}
	}
	return e
}

func (s *service) lookup(roomID string) (*room.Room, error) {
	if err := validate.RoomID(roomID); err != nil {
		return nil, err
	}
	return s.registry.Get(roomID)
}

// ensureNotBanned lifts an expired ban and rejects a user who is still banned
func (s *service) ensureNotBanned(ctx context.Context, userID string) error {
	check, err := s.antiCheat.CheckAutoUnban(ctx, &anticheat.CheckAutoUnbanInput{
		UserID: userID,
	})
	if err != nil {
		return fmt.Errorf("failed to check ban: %w", err)
	}

	if check.Banned {
		return fmt.Errorf("%w until %s", ErrUserBanned, check.BannedUntil.Format(time.RFC3339))
	}

	return nil
}

func (s *service) collectFee(ctx context.Context, roomID, userID string, fee int64) error {
	if fee == 0 {
		return nil
	}

	_, err := s.wallet.Debit(ctx, &wallet.DebitInput{
		UserID: userID,
		Amount: fee,
		Reason: "Entry fee: " + roomID,
	})
	return err
}

// refundFee returns an entry fee. Failures are logged; the ledger keeps the debit.
func (s *service) refundFee(ctx context.Context, roomID, userID string, fee int64) bool {
	if fee == 0 {
		return false
	}

	_, err := s.wallet.Credit(ctx, &wallet.CreditInput{
		UserID: userID,
		Amount: fee,
		Reason: "Refund: " + roomID,
	})
	if err != nil {
		s.logger.Error("failed to refund entry fee",
			zap.String("room_id", roomID),
			zap.String("user_id", userID),
			zap.Int64("fee", fee),
			zap.Error(err),
		)
		return false
	}
	return true
}

// GetRoom returns a live room, falling back to the stored snapshot of a
// recently finished one
func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var (
		r   *room.Room
		err error
	)
	if input.RoomID != "" {
		r, err = s.registry.Get(input.RoomID)
	} else {
		r, err = s.registry.GetByChannel(input.ChannelID)
	}

	if err == nil {
		r.Lock()
		snapshot := r.Snapshot()
		r.Unlock()
		return &GetRoomOutput{Room: snapshot}, nil
	}

	if !errors.Is(err, room.ErrRoomNotFound) {
		return nil, err
	}

	var snapshot *models.RoomSnapshot
	if input.RoomID != "" {
		snapshot, err = s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
	} else {
		snapshot, err = s.roomRepo.GetRoomByChannel(ctx, &roomRepo.GetRoomByChannelInput{ChannelID: input.ChannelID})
	}
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, room.ErrRoomNotFound
		}
		return nil, err
	}

	return &GetRoomOutput{Room: snapshot}, nil
}

// ListRooms returns snapshots of every live room
func (s *service) ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error) {
	rooms := s.registry.List()

	snapshots := make([]*models.RoomSnapshot, 0, len(rooms))
	for _, r := range rooms {
		r.Lock()
		snapshots = append(snapshots, r.Snapshot())
		r.Unlock()
	}

	return &ListRoomsOutput{
		Rooms: snapshots,
	}, nil
}
