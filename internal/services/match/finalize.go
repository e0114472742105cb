package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/ludo/internal/models"
	roomRepo "github.com/KirkDiggler/ludo/internal/repositories/room"
	"github.com/KirkDiggler/ludo/internal/room"
	"github.com/KirkDiggler/ludo/internal/services/reward"
	"go.uber.org/zap"
)

// settleTimeout bounds a settlement, which runs detached from the caller's context
const settleTimeout = 30 * time.Second

type finalResult struct {
	*FinalizeMatchOutput
	room *models.RoomSnapshot
}

// FinalizeMatch ends the match and pays out. A room that is gone from the
// registry but was settled earlier returns that settlement.
func (s *service) FinalizeMatch(ctx context.Context, input *FinalizeMatchInput) (*FinalizeMatchOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r, err := s.lookup(input.RoomID)
	if err != nil {
		if !errors.Is(err, room.ErrRoomNotFound) {
			return nil, err
		}
		return s.settled(ctx, input.RoomID, err)
	}

	r.Lock()
	forming := r.Status.IsForming()
	r.Unlock()
	if forming {
		return nil, ErrMatchNotStarted
	}

	final, err := s.finalize(ctx, r)
	if err != nil {
		return nil, err
	}

	return final.FinalizeMatchOutput, nil
}

// settled reports an earlier settlement, or notFound if there is none
func (s *service) settled(ctx context.Context, roomID string, notFound error) (*FinalizeMatchOutput, error) {
	existing, err := s.reward.GetSettlement(ctx, &reward.GetSettlementInput{RoomID: roomID})
	if err != nil {
		if errors.Is(err, reward.ErrSettlementNotFound) {
			return nil, notFound
		}
		return nil, err
	}

	return &FinalizeMatchOutput{
		Settlement:     existing.Settlement,
		AlreadySettled: true,
	}, nil
}

// finalize runs at most once per room. Later callers wait for the first to
// finish and get its settlement. The room always leaves the registry, even
// when settling fails.
func (s *service) finalize(ctx context.Context, r *room.Room) (*finalResult, error) {
	r.Lock()

	if !r.BeginFinalize() {
		done := r.FinalizeDone()
		r.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		out, err := s.settled(ctx, r.ID, ErrFinalizeFailed)
		if err != nil {
			return nil, err
		}

		r.Lock()
		snapshot := r.Snapshot()
		r.Unlock()

		return &finalResult{FinalizeMatchOutput: out, room: snapshot}, nil
	}

	r.EndGame(s.clock.Now())

	players := make([]string, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, p.UserID)
	}
	ranking := BuildRanking(r.Players)
	entryFee := r.EntryFee
	startedAt, endedAt := r.StartedAt, r.EndedAt
	snapshot := r.Snapshot()
	r.Unlock()

	logger := s.logger.With(zap.String("room_id", r.ID))

	// The room leaves the registry below, so the payout must not die with the caller
	settleCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
	defer cancel()

	defer func() {
		s.registry.Remove(r.ID)

		if err := s.roomRepo.SaveRoom(settleCtx, &roomRepo.SaveRoomInput{Room: snapshot}); err != nil {
			logger.Error("failed to save finished room", zap.Error(err))
		}

		r.Lock()
		r.EndFinalize()
		r.Unlock()
	}()

	if err := s.timer.Cancel(settleCtx, r.ID); err != nil {
		logger.Error("failed to cancel turn timer", zap.Error(err))
	}

	distributed, err := s.reward.Distribute(settleCtx, &reward.DistributeInput{
		RoomID:    r.ID,
		Players:   players,
		Ranking:   ranking,
		EntryFee:  entryFee,
		StartedAt: startedAt,
		EndedAt:   endedAt,
	})
	if err != nil {
		logger.Error("failed to settle match", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFinalizeFailed, err)
	}

	logger.Info("match finalized",
		zap.Strings("ranking", ranking),
		zap.Bool("already_settled", distributed.AlreadySettled),
	)

	finished := newEvent(models.EventMatchFinished, snapshot, "")
	finished.Settlement = distributed.Settlement
	s.notifier.Notify(settleCtx, finished)

	return &finalResult{
		FinalizeMatchOutput: &FinalizeMatchOutput{
			Settlement:     distributed.Settlement,
			Ranking:        ranking,
			AlreadySettled: distributed.AlreadySettled,
		},
		room: snapshot,
	}, nil
}
