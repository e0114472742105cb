package reward

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/ludo/internal/models"
	settlementRepo "github.com/KirkDiggler/ludo/internal/repositories/settlement"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	settlementRepo settlementRepo.Repository
	bonusPercent   int64
	logger         *zap.Logger
}

// New creates a new reward service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SettlementRepo == nil {
		return nil, ErrNilSettlementRepo
	}

	if cfg.BonusPercent < 0 {
		return nil, ErrInvalidBonusPercent
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		settlementRepo: cfg.SettlementRepo,
		bonusPercent:   cfg.BonusPercent,
		logger:         logger,
	}, nil
}

// Distribute settles a match exactly once
func (s *service) Distribute(ctx context.Context, input *DistributeInput) (*DistributeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.RoomID == "" {
		return nil, errors.New("room ID cannot be empty")
	}

	if err := checkRanking(input.Players, input.Ranking); err != nil {
		return nil, err
	}

	payout, err := Compute(input.EntryFee, len(input.Players), s.bonusPercent)
	if err != nil {
		return nil, err
	}

	existing, err := s.settlementRepo.GetSettlement(ctx, &settlementRepo.GetSettlementInput{
		RoomID: input.RoomID,
	})
	switch {
	case err == nil:
		return &DistributeOutput{Settlement: existing, AlreadySettled: true}, nil
	case !errors.Is(err, settlementRepo.ErrSettlementNotFound):
		return nil, fmt.Errorf("failed to check settlement: %w", err)
	}

	settlement := &models.Settlement{
		RoomID:    input.RoomID,
		Players:   append([]string(nil), input.Players...),
		Winners:   append([]string(nil), input.Ranking[:payout.Winners]...),
		EntryFee:  input.EntryFee,
		TotalPot:  payout.TotalPot,
		Bonus:     payout.Bonus,
		Share:     payout.Share,
		StartedAt: input.StartedAt,
		EndedAt:   input.EndedAt,
	}

	settled, err := s.settlementRepo.Settle(ctx, &settlementRepo.SettleInput{
		Settlement: settlement,
		Reason:     "Match win: " + input.RoomID,
	})
	if err != nil {
		if !errors.Is(err, settlementRepo.ErrAlreadySettled) {
			return nil, fmt.Errorf("failed to settle room %s: %w", input.RoomID, err)
		}

		// Lost the race to another finalize; report what it wrote
		existing, getErr := s.settlementRepo.GetSettlement(ctx, &settlementRepo.GetSettlementInput{
			RoomID: input.RoomID,
		})
		if getErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrAlreadySettled, getErr)
		}
		return &DistributeOutput{Settlement: existing, AlreadySettled: true}, nil
	}

	s.logger.Info("match settled",
		zap.String("room_id", input.RoomID),
		zap.Strings("winners", settled.Winners),
		zap.Int64("total_pot", settled.TotalPot),
		zap.Int64("bonus", settled.Bonus),
		zap.Int64("share", settled.Share),
	)

	return &DistributeOutput{
		Settlement: settled,
	}, nil
}

// GetSettlement returns the settlement for a room
func (s *service) GetSettlement(ctx context.Context, input *GetSettlementInput) (*GetSettlementOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	settlement, err := s.settlementRepo.GetSettlement(ctx, &settlementRepo.GetSettlementInput{
		RoomID: input.RoomID,
	})
	if err != nil {
		if errors.Is(err, settlementRepo.ErrSettlementNotFound) {
			return nil, ErrSettlementNotFound
		}
		return nil, err
	}

	return &GetSettlementOutput{
		Settlement: settlement,
	}, nil
}

// checkRanking verifies the ranking is a permutation of the players
func checkRanking(players, ranking []string) error {
	if len(players) != len(ranking) {
		return ErrInvalidRanking
	}

	seen := make(map[string]bool, len(players))
	for _, p := range players {
		seen[p] = true
	}
	if len(seen) != len(players) {
		return ErrInvalidRanking
	}

	for _, r := range ranking {
		if !seen[r] {
			return ErrInvalidRanking
		}
		delete(seen, r)
	}

	return nil
}
