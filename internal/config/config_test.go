package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	for _, key := range []string{
		"DISCORD_TOKEN", "REDIS_ADDR", "HTTP_ADDR", "GAME_BONUS_PERCENT", "DEFAULT_ENTRY_FEE",
		"TURN_TIMEOUT_SECONDS", "AFK_FINE_COINS", "LEAVE_FINE_COINS", "MAX_STRIKES_BEFORE_TEMP_BAN",
		"TEMP_BAN_MINUTES", "DAILY_BONUS_MIN", "DAILY_BONUS_MAX", "DEFAULT_MAX_PLAYERS", "ENV",
	} {
		s.T().Setenv(key, "")
	}
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := FromEnv()
	s.Require().NoError(err)

	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal(":8080", cfg.HTTPAddr)
	s.Equal(int64(10), cfg.GameBonusPercent)
	s.Equal(int64(50), cfg.DefaultEntryFee)
	s.Equal(30*time.Second, cfg.TurnTimeout)
	s.Equal(int64(10), cfg.AFKFine)
	s.Equal(int64(20), cfg.LeaveFine)
	s.Equal(3, cfg.MaxStrikes)
	s.Equal(30*time.Minute, cfg.TempBan())
	s.Equal(int64(10), cfg.DailyBonusMin)
	s.Equal(int64(30), cfg.DailyBonusMax)
	s.Equal(4, cfg.DefaultMaxPlayers)
	s.True(cfg.IsDevelopment())
}

func (s *ConfigTestSuite) TestOverrides() {
	s.T().Setenv("GAME_BONUS_PERCENT", "25")
	s.T().Setenv("TURN_TIMEOUT_SECONDS", "5")
	s.T().Setenv("ENV", "production")

	cfg, err := FromEnv()
	s.Require().NoError(err)

	s.Equal(int64(25), cfg.GameBonusPercent)
	s.Equal(5*time.Second, cfg.TurnTimeout)
	s.False(cfg.IsDevelopment())
}

func (s *ConfigTestSuite) TestInvalidNumber() {
	s.T().Setenv("GAME_BONUS_PERCENT", "x")

	_, err := FromEnv()
	s.EqualError(err, `config: invalid GAME_BONUS_PERCENT "x"`)
}

func (s *ConfigTestSuite) TestValidateRejectsBadValues() {
	s.T().Setenv("DAILY_BONUS_MIN", "40")

	_, err := FromEnv()
	s.Error(err)

	s.T().Setenv("DAILY_BONUS_MIN", "")
	s.T().Setenv("TURN_TIMEOUT_SECONDS", "0")

	_, err = FromEnv()
	s.Error(err)
}
