package discord

import (
	"context"

	"github.com/KirkDiggler/ludo/internal/models"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// ChannelSender posts messages to a channel. *discordgo.Session satisfies it.
type ChannelSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// NotifierConfig holds configuration for the channel notifier
type NotifierConfig struct {
	Sender ChannelSender

	// Optional logger
	Logger *zap.Logger
}

// Notifier posts room events to the room's channel
type Notifier struct {
	sender ChannelSender
	logger *zap.Logger
}

// NewNotifier creates a channel notifier
func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Sender == nil {
		return nil, ErrNilSender
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Notifier{
		sender: cfg.Sender,
		logger: logger,
	}, nil
}

// Notify posts the event to its channel. Rooms created outside Discord have
// no channel and are skipped.
func (n *Notifier) Notify(ctx context.Context, event *models.Event) {
	if event == nil || event.ChannelID == "" {
		return
	}

	msg := renderEvent(event)
	if msg == nil {
		return
	}

	if _, err := n.sender.ChannelMessageSendComplex(event.ChannelID, msg, discordgo.WithContext(ctx)); err != nil {
		n.logger.Warn("failed to post room event",
			zap.String("room_id", event.RoomID),
			zap.String("channel_id", event.ChannelID),
			zap.String("kind", string(event.Kind)),
			zap.Error(err))
	}
}
