package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/ludo/internal/services/anticheat"
	"github.com/KirkDiggler/ludo/internal/services/match"
	"github.com/KirkDiggler/ludo/internal/services/messaging"
	"github.com/KirkDiggler/ludo/internal/services/wallet"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// requestTimeout bounds the service calls made for one interaction
const requestTimeout = 10 * time.Second

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID

	matchService     match.Service
	walletService    wallet.Service
	antiCheatService anticheat.Service
	messagingService messaging.Service

	config *Config
	logger *zap.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an unopened Discord session
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// DefaultEntryFee applies when /ludo create is given no fee
	DefaultEntryFee int64

	MatchService     match.Service
	WalletService    wallet.Service
	AntiCheatService anticheat.Service
	MessagingService messaging.Service

	// Optional logger
	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Session == nil {
		return nil, ErrNilSession
	}

	if cfg.MatchService == nil {
		return nil, ErrNilMatchService
	}

	if cfg.WalletService == nil {
		return nil, ErrNilWalletService
	}

	if cfg.AntiCheatService == nil {
		return nil, ErrNilAntiCheat
	}

	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bot := &Bot{
		session:          cfg.Session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		matchService:     cfg.MatchService,
		walletService:    cfg.WalletService,
		antiCheatService: cfg.AntiCheatService,
		messagingService: cfg.MessagingService,
		config:           cfg,
		logger:           logger,
	}

	// Register the interaction handler
	bot.session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	ludoCmd := NewLudoCommand(b)
	if err := b.RegisterCommand(ludoCmd); err != nil {
		return fmt.Errorf("failed to register ludo command: %w", err)
	}

	b.logger.Info("bot is running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err))
		} else {
			b.logger.Info("deleted command", zap.String("command", cmdName))
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord. Commands are registered
// for the configured guild, or globally when no guild is set.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", b.config.GuildID))

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("error handling command", zap.String("command", name), zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("error handling component interaction",
				zap.String("custom_id", i.MessageComponentData().CustomID),
				zap.Error(err))
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	userID, username := interactionUser(i)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	switch customID {
	case ButtonJoin:
		return b.handleJoinButton(ctx, s, i, userID, username)
	case ButtonRoll:
		return b.handleRollButton(ctx, s, i, userID)
	}

	if tokenIndex, ok := parseMoveButton(customID); ok {
		return b.handleMoveButton(ctx, s, i, userID, tokenIndex)
	}

	return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
}

// roomID resolves the room hosted in the interaction's channel
func (b *Bot) roomID(ctx context.Context, channelID string) (string, error) {
	out, err := b.matchService.GetRoom(ctx, &match.GetRoomInput{
		ChannelID: channelID,
	})
	if err != nil {
		return "", err
	}
	return out.Room.RoomID, nil
}

// respondWithServiceError turns a service error into a friendly ephemeral reply
func (b *Bot) respondWithServiceError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	kind := errorType(err)
	if kind == messaging.ErrorTypeUnknown {
		b.logger.Error("interaction failed", zap.String("channel_id", i.ChannelID), zap.Error(err))
	} else {
		b.logger.Debug("interaction refused", zap.String("channel_id", i.ChannelID), zap.Error(err))
	}
	return b.respondWithErrorType(ctx, s, i, kind)
}

func (b *Bot) respondWithErrorType(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, kind messaging.ErrorType) error {
	msg, err := b.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: kind,
	})
	if err != nil {
		return RespondWithError(s, i, string(kind))
	}
	return RespondWithError(s, i, msg.Message)
}

// handleJoinButton seats the user in the channel's room
func (b *Bot) handleJoinButton(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	roomID, err := b.roomID(ctx, i.ChannelID)
	if err != nil {
		return b.respondWithServiceError(ctx, s, i, err)
	}

	joined, err := b.matchService.JoinRoom(ctx, &match.JoinRoomInput{
		RoomID:   roomID,
		UserID:   userID,
		Username: username,
	})
	if err != nil {
		return b.respondWithServiceError(ctx, s, i, err)
	}

	player := findPlayer(joined.Room, userID)
	input := &messaging.GetJoinRoomMessageInput{
		PlayerName: username,
		Status:     joined.Room.Status,
		EntryFee:   joined.Room.EntryFee,
	}
	if player != nil {
		input.Color = player.Color
	}

	msg, err := b.messagingService.GetJoinRoomMessage(ctx, input)
	if err != nil {
		return RespondWithEphemeralMessage(s, i, "You've joined the room! Wait for the owner to start.")
	}
	return RespondWithEphemeralMessage(s, i, msg.Message)
}

// handleRollButton rolls for the user and offers the movable tokens
func (b *Bot) handleRollButton(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	roomID, err := b.roomID(ctx, i.ChannelID)
	if err != nil {
		return b.respondWithServiceError(ctx, s, i, err)
	}

	rolled, err := b.matchService.Roll(ctx, &match.RollInput{
		RoomID: roomID,
		UserID: userID,
	})
	if err != nil {
		return b.respondWithServiceError(ctx, s, i, err)
	}

	if rolled.Rejection != match.RejectionNone {
		return b.respondWithErrorType(ctx, s, i, rejectionType(rolled.Rejection))
	}

	input := &messaging.GetRollResultMessageInput{
		DiceValue:         rolled.DiceValue,
		Passed:            rolled.Passed,
		IsPersonalMessage: true,
	}
	if rolled.Dice != nil {
		input.Penalty = rolled.Dice.Penalty
	}
	msg, err := b.messagingService.GetRollResultMessage(ctx, input)
	if err != nil {
		return err
	}

	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       colorGreen,
	}

	var components []discordgo.MessageComponent
	switch {
	case !rolled.Passed:
		components = moveComponents(findPlayer(rolled.Room, userID), rolled.Movable, rolled.Suggested, rolled.HasSuggestion)
	case rolled.Dice != nil && rolled.Dice.ExtraTurn:
		components = roomComponents(rolled.Room)
	}

	return RespondWithEphemeralEmbed(s, i, embed, components)
}

// handleMoveButton plays the chosen token
func (b *Bot) handleMoveButton(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, tokenIndex int) error {
	roomID, err := b.roomID(ctx, i.ChannelID)
	if err != nil {
		return b.respondWithServiceError(ctx, s, i, err)
	}

	moved, err := b.matchService.Move(ctx, &match.MoveInput{
		RoomID:     roomID,
		UserID:     userID,
		TokenIndex: tokenIndex,
	})
	if err != nil {
		return b.respondWithServiceError(ctx, s, i, err)
	}

	if moved.Rejection != match.RejectionNone {
		return b.respondWithErrorType(ctx, s, i, rejectionType(moved.Rejection))
	}

	extraTurn := !moved.MatchOver && moved.Dice != nil && moved.Dice.ExtraTurn
	msg, err := b.messagingService.GetMoveResultMessage(ctx, &messaging.GetMoveResultMessageInput{
		PlayerName:   "You",
		Outcome:      moved.Result.Outcome,
		CapturedName: playerName(moved.Room, moved.Result.CapturedUserID),
		ExtraTurn:    extraTurn,
	})
	if err != nil {
		return err
	}

	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       colorGreen,
	}

	components := []discordgo.MessageComponent{}
	if extraTurn {
		components = roomComponents(moved.Room)
	}

	// Replace the token picker so it cannot be pressed twice
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}
