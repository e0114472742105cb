package wallet

import (
	"context"
	"errors"
	"fmt"

	cooldownRepo "github.com/KirkDiggler/ludo/internal/repositories/cooldown"
	walletRepo "github.com/KirkDiggler/ludo/internal/repositories/wallet"
	"github.com/KirkDiggler/ludo/internal/validate"
	"go.uber.org/zap"
)

const recentTransactions = 5

// service implements the Service interface
type service struct {
	walletRepo    walletRepo.Repository
	cooldownRepo  cooldownRepo.Repository
	random        Random
	dailyBonusMin int64
	dailyBonusMax int64
	logger        *zap.Logger
}

// New creates a new wallet service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.WalletRepo == nil {
		return nil, ErrNilWalletRepo
	}

	if cfg.CooldownRepo == nil {
		return nil, ErrNilCooldownRepo
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.DailyBonusMin < 1 || cfg.DailyBonusMin > cfg.DailyBonusMax {
		return nil, ErrInvalidDailyBonus
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		walletRepo:    cfg.WalletRepo,
		cooldownRepo:  cfg.CooldownRepo,
		random:        cfg.Random,
		dailyBonusMin: cfg.DailyBonusMin,
		dailyBonusMax: cfg.DailyBonusMax,
		logger:        logger,
	}, nil
}

// Register creates the user's wallet if it does not exist yet
func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := validate.UserID(input.UserID); err != nil {
		return nil, err
	}

	user, err := s.walletRepo.EnsureUser(ctx, &walletRepo.EnsureUserInput{
		UserID:   input.UserID,
		Username: input.Username,
	})
	if err != nil {
		return nil, err
	}

	return &RegisterOutput{
		User: user,
	}, nil
}

// Credit adds coins to a user
func (s *service) Credit(ctx context.Context, input *CreditInput) (*CreditOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := validate.Amount(input.Amount); err != nil {
		return nil, err
	}

	out, err := s.walletRepo.Credit(ctx, &walletRepo.ChangeBalanceInput{
		UserID: input.UserID,
		Amount: input.Amount,
		Reason: input.Reason,
	})
	if err != nil {
		return nil, translate(err)
	}

	s.logger.Debug("coins credited",
		zap.String("user_id", input.UserID),
		zap.Int64("amount", input.Amount),
		zap.String("reason", input.Reason),
	)

	return &CreditOutput{
		Balance: out.Balance,
	}, nil
}

// Debit removes coins from a user
func (s *service) Debit(ctx context.Context, input *DebitInput) (*DebitOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := validate.Amount(input.Amount); err != nil {
		return nil, err
	}

	out, err := s.walletRepo.Debit(ctx, &walletRepo.ChangeBalanceInput{
		UserID: input.UserID,
		Amount: input.Amount,
		Reason: input.Reason,
	})
	if err != nil {
		return nil, translate(err)
	}

	s.logger.Debug("coins debited",
		zap.String("user_id", input.UserID),
		zap.Int64("amount", input.Amount),
		zap.String("reason", input.Reason),
	)

	return &DebitOutput{
		Balance: out.Balance,
	}, nil
}

// GetBalance returns a user's wallet with the latest ledger entries
func (s *service) GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	user, err := s.walletRepo.GetUser(ctx, &walletRepo.GetUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, translate(err)
	}

	txs, err := s.walletRepo.ListTransactions(ctx, &walletRepo.ListTransactionsInput{
		UserID: input.UserID,
		Limit:  recentTransactions,
	})
	if err != nil {
		return nil, err
	}

	return &GetBalanceOutput{
		User:   user,
		Recent: txs.Entries,
	}, nil
}

// ClaimDaily grants a random bonus at most once per DailyCooldown
func (s *service) ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := validate.UserID(input.UserID); err != nil {
		return nil, err
	}

	key := "daily:" + input.UserID
	claim, err := s.cooldownRepo.Acquire(ctx, &cooldownRepo.AcquireInput{
		Key: key,
		TTL: DailyCooldown,
	})
	if err != nil {
		return nil, err
	}

	if !claim.Acquired {
		return &ClaimDailyOutput{
			Claimed:   false,
			Remaining: claim.Remaining,
		}, nil
	}

	amount := s.dailyBonusMin + s.random.Int63n(s.dailyBonusMax-s.dailyBonusMin+1)

	out, err := s.Credit(ctx, &CreditInput{
		UserID: input.UserID,
		Amount: amount,
		Reason: "Daily bonus",
	})
	if err != nil {
		// Give the claim back so a failed credit can be retried
		if releaseErr := s.cooldownRepo.Release(ctx, &cooldownRepo.ReleaseInput{Key: key}); releaseErr != nil {
			s.logger.Error("failed to release daily cooldown",
				zap.String("user_id", input.UserID),
				zap.Error(releaseErr),
			)
		}
		return nil, fmt.Errorf("failed to credit daily bonus: %w", err)
	}

	s.logger.Info("daily bonus claimed",
		zap.String("user_id", input.UserID),
		zap.Int64("amount", amount),
	)

	return &ClaimDailyOutput{
		Claimed: true,
		Amount:  amount,
		Balance: out.Balance,
	}, nil
}

// translate maps repository errors to wallet errors
func translate(err error) error {
	switch {
	case errors.Is(err, walletRepo.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, walletRepo.ErrInsufficientBalance):
		return ErrInsufficientBalance
	case errors.Is(err, walletRepo.ErrInvalidAmount):
		return validate.ErrInvalidAmount
	}
	return err
}
