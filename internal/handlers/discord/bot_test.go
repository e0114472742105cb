package discord

import (
	"testing"

	anticheatMocks "github.com/KirkDiggler/ludo/internal/services/anticheat/mocks"
	matchMocks "github.com/KirkDiggler/ludo/internal/services/match/mocks"
	messagingMocks "github.com/KirkDiggler/ludo/internal/services/messaging/mocks"
	walletMocks "github.com/KirkDiggler/ludo/internal/services/wallet/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BotTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	session *discordgo.Session
	cfg     *Config
}

func (s *BotTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	session, err := discordgo.New("Bot test-token")
	s.Require().NoError(err)
	s.session = session

	s.cfg = &Config{
		Session:          session,
		MatchService:     matchMocks.NewMockService(s.ctrl),
		WalletService:    walletMocks.NewMockService(s.ctrl),
		AntiCheatService: anticheatMocks.NewMockService(s.ctrl),
		MessagingService: messagingMocks.NewMockService(s.ctrl),
	}
}

func (s *BotTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BotTestSuite) TestNew() {
	bot, err := New(s.cfg)
	s.Require().NoError(err)
	s.NotNil(bot.logger)
	s.Empty(bot.commands)
}

func (s *BotTestSuite) TestNewValidation() {
	testCases := []struct {
		name   string
		mutate func(cfg *Config)
		want   error
	}{
		{"session", func(cfg *Config) { cfg.Session = nil }, ErrNilSession},
		{"match", func(cfg *Config) { cfg.MatchService = nil }, ErrNilMatchService},
		{"wallet", func(cfg *Config) { cfg.WalletService = nil }, ErrNilWalletService},
		{"anticheat", func(cfg *Config) { cfg.AntiCheatService = nil }, ErrNilAntiCheat},
		{"messaging", func(cfg *Config) { cfg.MessagingService = nil }, ErrNilMessagingService},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := *s.cfg
			tc.mutate(&cfg)

			_, err := New(&cfg)
			s.ErrorIs(err, tc.want)
		})
	}

	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)
}

func (s *BotTestSuite) TestLudoCommandDefinition() {
	bot, err := New(s.cfg)
	s.Require().NoError(err)

	cmd := NewLudoCommand(bot).GetCommand()
	s.Equal("ludo", cmd.Name)

	var names []string
	for _, opt := range cmd.Options {
		names = append(names, opt.Name)
	}
	s.Equal([]string{
		SubcommandCreate,
		SubcommandStart,
		SubcommandLeave,
		SubcommandEnd,
		SubcommandBalance,
		SubcommandDaily,
	}, names)
}

func (s *BotTestSuite) TestCreateOptions() {
	fee, players := createOptions([]*discordgo.ApplicationCommandInteractionDataOption{
		{Name: optionFee, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(25)},
		{Name: optionPlayers, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
	}, 50)
	s.Equal(int64(25), fee)
	s.Equal(3, players)

	fee, players = createOptions(nil, 50)
	s.Equal(int64(50), fee)
	s.Zero(players)
}

func TestBotSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}
