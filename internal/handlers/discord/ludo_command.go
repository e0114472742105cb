package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/ludo/internal/services/anticheat"
	"github.com/KirkDiggler/ludo/internal/services/match"
	"github.com/KirkDiggler/ludo/internal/services/messaging"
	"github.com/KirkDiggler/ludo/internal/services/wallet"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Subcommand names
const (
	SubcommandCreate  = "create"
	SubcommandStart   = "start"
	SubcommandLeave   = "leave"
	SubcommandEnd     = "end"
	SubcommandBalance = "balance"
	SubcommandDaily   = "daily"

	optionFee     = "fee"
	optionPlayers = "players"
)

var (
	minFee     = float64(0)
	minPlayers = float64(2)
)

// LudoCommand handles the /ludo command
type LudoCommand struct {
	BaseCommand
	bot *Bot
}

// NewLudoCommand creates a new ludo command handler
func NewLudoCommand(bot *Bot) *LudoCommand {
	return &LudoCommand{
		BaseCommand: BaseCommand{
			Name:        "ludo",
			Description: "Play Ludo for coins",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandCreate,
					Description: "Open a room in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionFee,
							Description: "Entry fee in coins",
							MinValue:    &minFee,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionPlayers,
							Description: "Number of seats (2-4)",
							MinValue:    &minPlayers,
							MaxValue:    4,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandStart,
					Description: "Start the match (owner only)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandLeave,
					Description: "Leave the room in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandEnd,
					Description: "End the room now (owner only)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandBalance,
					Description: "Show your coins and record",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandDaily,
					Description: "Claim your daily coin bonus",
				},
			},
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the ludo command
func (c *LudoCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	userID, username := interactionUser(i)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	sub := data.Options[0]
	switch sub.Name {
	case SubcommandCreate:
		fee, players := createOptions(sub.Options, c.bot.config.DefaultEntryFee)
		return c.handleCreate(ctx, s, i, userID, username, fee, players)
	case SubcommandStart:
		return c.handleStart(ctx, s, i, userID)
	case SubcommandLeave:
		return c.handleLeave(ctx, s, i, userID)
	case SubcommandEnd:
		return c.handleEnd(ctx, s, i, userID)
	case SubcommandBalance:
		return c.handleBalance(ctx, s, i, userID, username)
	case SubcommandDaily:
		return c.handleDaily(ctx, s, i, userID, username)
	}

	return errors.New("unknown subcommand")
}

// createOptions reads the optional fee and seat count. A missing seat count
// is left zero for the match service default.
func createOptions(options []*discordgo.ApplicationCommandInteractionDataOption, defaultFee int64) (int64, int) {
	fee := defaultFee
	var players int
	for _, opt := range options {
		switch opt.Name {
		case optionFee:
			fee = opt.IntValue()
		case optionPlayers:
			players = int(opt.IntValue())
		}
	}
	return fee, players
}

func (c *LudoCommand) handleCreate(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string, fee int64, players int) error {
	created, err := c.bot.matchService.CreateRoom(ctx, &match.CreateRoomInput{
		OwnerID:    userID,
		OwnerName:  username,
		ChannelID:  i.ChannelID,
		EntryFee:   fee,
		MaxPlayers: players,
	})
	if err != nil {
		return c.bot.respondWithServiceError(ctx, s, i, err)
	}

	// The room message itself is posted through the notifier
	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("Room %s is open! You're seated. Use `/ludo start` once others have joined.", created.Room.RoomID))
}

func (c *LudoCommand) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	roomID, err := c.bot.roomID(ctx, i.ChannelID)
	if err != nil {
		return c.bot.respondWithServiceError(ctx, s, i, err)
	}

	if _, err := c.bot.matchService.StartMatch(ctx, &match.StartMatchInput{
		RoomID: roomID,
		UserID: userID,
	}); err != nil {
		return c.bot.respondWithServiceError(ctx, s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, "Match started! Watch the channel for your turn.")
}

func (c *LudoCommand) handleLeave(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	roomID, err := c.bot.roomID(ctx, i.ChannelID)
	if err != nil {
		return c.bot.respondWithServiceError(ctx, s, i, err)
	}

	left, err := c.bot.matchService.LeaveRoom(ctx, &match.LeaveRoomInput{
		RoomID: roomID,
		UserID: userID,
	})
	if err != nil {
		return c.bot.respondWithServiceError(ctx, s, i, err)
	}

	var lines []string
	lines = append(lines, "You left the room.")
	if left.Refunded > 0 {
		lines = append(lines, fmt.Sprintf("Your %d coin entry fee was refunded.", left.Refunded))
	}
	if left.Penalty != nil {
		msg, err := c.bot.messagingService.GetPenaltyMessage(ctx, &messaging.GetPenaltyMessageInput{
			PlayerName:  "You",
			Reason:      anticheat.ReasonLeave,
			Fine:        left.Penalty.Fine,
			FineApplied: left.Penalty.FineApplied,
			Strikes:     left.Penalty.Strikes,
			Banned:      left.Penalty.Banned,
			BannedUntil: left.Penalty.BannedUntil,
		})
		if err == nil {
			lines = append(lines, msg.Message)
		}
	}

	return RespondWithEphemeralMessage(s, i, strings.Join(lines, " "))
}

func (c *LudoCommand) handleEnd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	roomID, err := c.bot.roomID(ctx, i.ChannelID)
	if err != nil {
		return c.bot.respondWithServiceError(ctx, s, i, err)
	}

	ended, err := c.bot.matchService.ForceEnd(ctx, &match.ForceEndInput{
		RoomID: roomID,
		UserID: userID,
	})
	if err != nil {
		return c.bot.respondWithServiceError(ctx, s, i, err)
	}

	if ended.Settlement == nil {
		return RespondWithEphemeralMessage(s, i, "Room closed. Entry fees were refunded.")
	}
	return RespondWithEphemeralMessage(s, i, "Match ended early. Winners have been paid.")
}

func (c *LudoCommand) handleBalance(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	if _, err := c.bot.walletService.Register(ctx, &wallet.RegisterInput{
		UserID:   userID,
		Username: username,
	}); err != nil {
		return c.bot.respondWithServiceError(ctx, s, i, err)
	}

	balance, err := c.bot.walletService.GetBalance(ctx, &wallet.GetBalanceInput{
		UserID: userID,
	})
	if err != nil {
		return c.bot.respondWithServiceError(ctx, s, i, err)
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Coins",
			Value:  fmt.Sprintf("%d", balance.User.Coins),
			Inline: true,
		},
		{
			Name:   "Record",
			Value:  fmt.Sprintf("%dW / %dL of %d", balance.User.Wins, balance.User.Losses, balance.User.TotalGames),
			Inline: true,
		},
	}

	standing, err := c.bot.antiCheatService.GetStanding(ctx, &anticheat.GetStandingInput{
		UserID: userID,
	})
	if err != nil {
		c.bot.logger.Warn("failed to load standing", zap.String("user_id", userID), zap.Error(err))
	} else if standing.Record != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Strikes",
			Value:  fmt.Sprintf("%d", standing.Record.Strikes),
			Inline: true,
		})
	}

	if len(balance.Recent) > 0 {
		var recent strings.Builder
		for _, entry := range balance.Recent {
			fmt.Fprintf(&recent, "`%+d` %s\n", entry.Amount, entry.Reason)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Recent",
			Value: recent.String(),
		})
	}

	return RespondWithEphemeralEmbed(s, i, &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("%s's Wallet", username),
		Color:  colorBlue,
		Fields: fields,
	}, nil)
}

func (c *LudoCommand) handleDaily(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	if _, err := c.bot.walletService.Register(ctx, &wallet.RegisterInput{
		UserID:   userID,
		Username: username,
	}); err != nil {
		return c.bot.respondWithServiceError(ctx, s, i, err)
	}

	claimed, err := c.bot.walletService.ClaimDaily(ctx, &wallet.ClaimDailyInput{
		UserID: userID,
	})
	if err != nil {
		return c.bot.respondWithServiceError(ctx, s, i, err)
	}

	msg, err := c.bot.messagingService.GetDailyBonusMessage(ctx, &messaging.GetDailyBonusMessageInput{
		Claimed:   claimed.Claimed,
		Amount:    claimed.Amount,
		Balance:   claimed.Balance,
		Remaining: claimed.Remaining,
	})
	if err != nil {
		return err
	}

	return RespondWithEphemeralMessage(s, i, msg.Message)
}
