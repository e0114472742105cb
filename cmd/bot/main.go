package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/ludo/internal/common/clock"
	"github.com/KirkDiggler/ludo/internal/common/uuid"
	"github.com/KirkDiggler/ludo/internal/config"
	"github.com/KirkDiggler/ludo/internal/db"
	"github.com/KirkDiggler/ludo/internal/dice"
	"github.com/KirkDiggler/ludo/internal/handlers/discord"
	"github.com/KirkDiggler/ludo/internal/handlers/ws"
	"github.com/KirkDiggler/ludo/internal/repositories/cooldown"
	roomRepo "github.com/KirkDiggler/ludo/internal/repositories/room"
	"github.com/KirkDiggler/ludo/internal/repositories/settlement"
	"github.com/KirkDiggler/ludo/internal/repositories/strike"
	walletRepo "github.com/KirkDiggler/ludo/internal/repositories/wallet"
	"github.com/KirkDiggler/ludo/internal/room"
	"github.com/KirkDiggler/ludo/internal/services/anticheat"
	"github.com/KirkDiggler/ludo/internal/services/match"
	"github.com/KirkDiggler/ludo/internal/services/messaging"
	"github.com/KirkDiggler/ludo/internal/services/reward"
	"github.com/KirkDiggler/ludo/internal/services/wallet"
	"github.com/KirkDiggler/ludo/internal/timer"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// globalRandom draws from the package-level source, which is safe for
// concurrent use
type globalRandom struct{}

func (globalRandom) Int63n(n int64) int64 {
	return rand.Int63n(n)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet
		panic(err)
	}

	logger := newLogger(cfg.IsDevelopment())
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Postgres holds wallets and settlements
	pool, err := db.Connect(ctx, &db.Config{DatabaseURL: cfg.DatabaseURL})
	if err != nil {
		logger.Fatal("Failed to connect to Postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("Failed to apply schema", zap.Error(err))
	}

	// Redis holds room snapshots, strikes and cooldowns
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize repositories
	walletRepository, err := walletRepo.NewPostgres(&walletRepo.Config{Pool: pool})
	if err != nil {
		logger.Fatal("Failed to create wallet repository", zap.Error(err))
	}

	settlementRepository, err := settlement.NewPostgres(&settlement.Config{Pool: pool})
	if err != nil {
		logger.Fatal("Failed to create settlement repository", zap.Error(err))
	}

	roomRepository, err := roomRepo.NewRedis(&roomRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatal("Failed to create room repository", zap.Error(err))
	}

	strikeRepository, err := strike.NewRedis(&strike.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatal("Failed to create strike repository", zap.Error(err))
	}

	cooldownRepository, err := cooldown.NewRedis(&cooldown.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatal("Failed to create cooldown repository", zap.Error(err))
	}

	// Initialize services
	walletSvc, err := wallet.New(&wallet.Config{
		WalletRepo:    walletRepository,
		CooldownRepo:  cooldownRepository,
		Random:        globalRandom{},
		DailyBonusMin: cfg.DailyBonusMin,
		DailyBonusMax: cfg.DailyBonusMax,
		Logger:        logger.Named("wallet"),
	})
	if err != nil {
		logger.Fatal("Failed to create wallet service", zap.Error(err))
	}

	systemClock := clock.New()

	antiCheatSvc, err := anticheat.New(&anticheat.Config{
		StrikeRepo: strikeRepository,
		Wallet:     walletSvc,
		Clock:      systemClock,
		AFKFine:    cfg.AFKFine,
		LeaveFine:  cfg.LeaveFine,
		MaxStrikes: cfg.MaxStrikes,
		TempBan:    cfg.TempBan(),
		Logger:     logger.Named("anticheat"),
	})
	if err != nil {
		logger.Fatal("Failed to create anti-cheat service", zap.Error(err))
	}

	rewardSvc, err := reward.New(&reward.Config{
		SettlementRepo: settlementRepository,
		BonusPercent:   cfg.GameBonusPercent,
		Logger:         logger.Named("reward"),
	})
	if err != nil {
		logger.Fatal("Failed to create reward service", zap.Error(err))
	}

	turnTimer := timer.New(&timer.Config{Timeout: cfg.TurnTimeout})
	defer turnTimer.Stop()

	if cfg.DiscordToken == "" {
		logger.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// The session is shared by the bot and the channel notifier
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		logger.Fatal("Failed to create Discord session", zap.Error(err))
	}

	discordNotifier, err := discord.NewNotifier(&discord.NotifierConfig{
		Sender: session,
		Logger: logger.Named("notifier"),
	})
	if err != nil {
		logger.Fatal("Failed to create Discord notifier", zap.Error(err))
	}

	hub := ws.NewHub(logger.Named("hub"))
	defer hub.Close()

	matchSvc, err := match.New(&match.Config{
		Registry:          room.NewRegistry(),
		RoomRepo:          roomRepository,
		Wallet:            walletSvc,
		AntiCheat:         antiCheatSvc,
		Reward:            rewardSvc,
		Timer:             turnTimer,
		DiceRoller:        dice.New(&dice.Config{}),
		Clock:             systemClock,
		UUIDGenerator:     uuid.New(),
		Notifier:          match.MultiNotifier{discordNotifier, hub},
		DefaultMaxPlayers: cfg.DefaultMaxPlayers,
		Logger:            logger.Named("match"),
	})
	if err != nil {
		logger.Fatal("Failed to create match service", zap.Error(err))
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		logger.Fatal("Failed to create messaging service", zap.Error(err))
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:          session,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		DefaultEntryFee:  cfg.DefaultEntryFee,
		MatchService:     matchSvc,
		WalletService:    walletSvc,
		AntiCheatService: antiCheatSvc,
		MessagingService: messagingSvc,
		Logger:           logger.Named("discord"),
	})
	if err != nil {
		logger.Fatal("Failed to create Discord bot", zap.Error(err))
	}

	// Spectator API
	spectators, err := ws.New(&ws.Config{
		MatchService: matchSvc,
		Hub:          hub,
		Logger:       logger.Named("ws"),
	})
	if err != nil {
		logger.Fatal("Failed to create spectator server", zap.Error(err))
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           spectators.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Spectator server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Spectator server stopped", zap.Error(err))
		}
	}()

	// Start the bot
	if err := bot.Start(); err != nil {
		logger.Fatal("Failed to start Discord bot", zap.Error(err))
	}

	logger.Info("Bot is running", zap.String("env", cfg.Env))

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		logger.Error("Error stopping bot", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error stopping spectator server", zap.Error(err))
	}

	logger.Info("Bot has been shut down")
}

func newLogger(development bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
