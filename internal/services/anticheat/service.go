package anticheat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/ludo/internal/common/clock"
	strikeRepo "github.com/KirkDiggler/ludo/internal/repositories/strike"
	"github.com/KirkDiggler/ludo/internal/services/wallet"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	strikeRepo strikeRepo.Repository
	wallet     wallet.Service
	clock      clock.Clock
	afkFine    int64
	leaveFine  int64
	maxStrikes int
	tempBan    time.Duration
	logger     *zap.Logger
}

// New creates a new anti-cheat service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.StrikeRepo == nil {
		return nil, ErrNilStrikeRepo
	}

	if cfg.Wallet == nil {
		return nil, ErrNilWalletService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.AFKFine < 0 || cfg.LeaveFine < 0 {
		return nil, ErrInvalidFine
	}

	maxStrikes := cfg.MaxStrikes
	if maxStrikes == 0 {
		maxStrikes = DefaultMaxStrikes
	}
	if maxStrikes < 1 {
		return nil, ErrInvalidMaxStrike
	}

	tempBan := cfg.TempBan
	if tempBan == 0 {
		tempBan = DefaultTempBan
	}
	if tempBan < 0 {
		return nil, ErrInvalidTempBan
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		strikeRepo: cfg.StrikeRepo,
		wallet:     cfg.Wallet,
		clock:      cfg.Clock,
		afkFine:    cfg.AFKFine,
		leaveFine:  cfg.LeaveFine,
		maxStrikes: maxStrikes,
		tempBan:    tempBan,
		logger:     logger,
	}, nil
}

// HandleAFK fines and strikes a player whose turn timed out
func (s *service) HandleAFK(ctx context.Context, input *HandleAFKInput) (*HandleAFKOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	penalty, err := s.penalize(ctx, input.RoomID, input.UserID, ReasonAFK, s.afkFine)
	if err != nil {
		return nil, err
	}

	return &HandleAFKOutput{
		Penalty: penalty,
	}, nil
}

// HandleLeaveMidGame fines and strikes a player who left an active match.
// Deactivating the player in the room is the caller's job.
func (s *service) HandleLeaveMidGame(ctx context.Context, input *HandleLeaveMidGameInput) (*HandleLeaveMidGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	penalty, err := s.penalize(ctx, input.RoomID, input.UserID, ReasonLeave, s.leaveFine)
	if err != nil {
		return nil, err
	}

	return &HandleLeaveMidGameOutput{
		Penalty: penalty,
	}, nil
}

func (s *service) penalize(ctx context.Context, roomID, userID, reason string, fine int64) (*PenaltyResult, error) {
	if userID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	logger := s.logger.With(
		zap.String("room_id", roomID),
		zap.String("user_id", userID),
		zap.String("reason", reason),
	)

	result := &PenaltyResult{
		Fine: fine,
	}

	// The fine is best-effort; a broke player still gets the strike
	if fine > 0 {
		_, err := s.wallet.Debit(ctx, &wallet.DebitInput{
			UserID: userID,
			Amount: fine,
			Reason: "Penalty: " + reason,
		})
		if err != nil {
			logger.Info("fine not applied", zap.Int64("fine", fine), zap.Error(err))
		} else {
			result.FineApplied = true
		}
	}

	now := s.clock.Now()
	record, err := s.strikeRepo.AddStrike(ctx, &strikeRepo.AddStrikeInput{
		UserID:      userID,
		Reason:      reason,
		Fine:        fine,
		FineApplied: result.FineApplied,
		At:          now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record strike: %w", err)
	}
	result.Strikes = record.Strikes

	logger.Warn("strike recorded", zap.Int("strikes", record.Strikes))

	if record.Strikes < s.maxStrikes {
		return result, nil
	}

	until := now.Add(s.tempBan)
	if err := s.strikeRepo.SetBan(ctx, &strikeRepo.SetBanInput{
		UserID: userID,
		Until:  until,
	}); err != nil {
		return nil, fmt.Errorf("failed to set ban: %w", err)
	}

	result.Banned = true
	result.BannedUntil = until

	logger.Error("temporary ban issued",
		zap.Int("strikes", record.Strikes),
		zap.Time("banned_until", until),
	)

	return result, nil
}

// CheckAutoUnban lifts the ban once its expiry has passed
func (s *service) CheckAutoUnban(ctx context.Context, input *CheckAutoUnbanInput) (*CheckAutoUnbanOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	record, err := s.strikeRepo.GetRecord(ctx, &strikeRepo.GetRecordInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get strike record: %w", err)
	}

	if !record.IsBanned() {
		return &CheckAutoUnbanOutput{}, nil
	}

	if s.clock.Now().Before(record.BannedUntil) {
		return &CheckAutoUnbanOutput{
			Banned:      true,
			BannedUntil: record.BannedUntil,
		}, nil
	}

	if err := s.strikeRepo.ClearBan(ctx, &strikeRepo.ClearBanInput{
		UserID: input.UserID,
	}); err != nil {
		return nil, fmt.Errorf("failed to clear ban: %w", err)
	}

	s.logger.Info("ban expired",
		zap.String("user_id", input.UserID),
		zap.Time("banned_until", record.BannedUntil),
	)

	return &CheckAutoUnbanOutput{
		Unbanned: true,
	}, nil
}

// GetStanding returns the user's strikes and recent penalties
func (s *service) GetStanding(ctx context.Context, input *GetStandingInput) (*GetStandingOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	record, err := s.strikeRepo.GetRecord(ctx, &strikeRepo.GetRecordInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get strike record: %w", err)
	}

	penalties, err := s.strikeRepo.ListPenalties(ctx, &strikeRepo.ListPenaltiesInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list penalties: %w", err)
	}

	return &GetStandingOutput{
		Record:    record,
		Penalties: penalties.Penalties,
	}, nil
}
