package anticheat

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/ludo/internal/common/clock/mocks"
	"github.com/KirkDiggler/ludo/internal/models"
	strikeRepo "github.com/KirkDiggler/ludo/internal/repositories/strike"
	strikeMocks "github.com/KirkDiggler/ludo/internal/repositories/strike/mocks"
	"github.com/KirkDiggler/ludo/internal/services/wallet"
	walletMocks "github.com/KirkDiggler/ludo/internal/services/wallet/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AntiCheatServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockStrikeRepo *strikeMocks.MockRepository
	mockWallet     *walletMocks.MockService
	mockClock      *clockMocks.MockClock
	service        Service
	ctx            context.Context

	testNow    time.Time
	testRoomID string
	testUserID string
}

func (s *AntiCheatServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStrikeRepo = strikeMocks.NewMockRepository(s.mockCtrl)
	s.mockWallet = walletMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.testRoomID = "room-0001"
	s.testUserID = "test-user-id"

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return s.testNow
	}).AnyTimes()

	svc, err := New(&Config{
		StrikeRepo: s.mockStrikeRepo,
		Wallet:     s.mockWallet,
		Clock:      s.mockClock,
		AFKFine:    10,
		LeaveFine:  20,
		MaxStrikes: 3,
		TempBan:    30 * time.Minute,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *AntiCheatServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAntiCheatServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AntiCheatServiceTestSuite))
}

func (s *AntiCheatServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Wallet: s.mockWallet, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilStrikeRepo)

	_, err = New(&Config{StrikeRepo: s.mockStrikeRepo, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilWalletService)

	_, err = New(&Config{StrikeRepo: s.mockStrikeRepo, Wallet: s.mockWallet})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{StrikeRepo: s.mockStrikeRepo, Wallet: s.mockWallet, Clock: s.mockClock, AFKFine: -1})
	s.ErrorIs(err, ErrInvalidFine)

	_, err = New(&Config{StrikeRepo: s.mockStrikeRepo, Wallet: s.mockWallet, Clock: s.mockClock, MaxStrikes: -1})
	s.ErrorIs(err, ErrInvalidMaxStrike)
}

func (s *AntiCheatServiceTestSuite) TestHandleAFKFinesAndStrikes() {
	s.mockWallet.EXPECT().
		Debit(s.ctx, &wallet.DebitInput{UserID: s.testUserID, Amount: 10, Reason: "Penalty: afk"}).
		Return(&wallet.DebitOutput{Balance: 40}, nil)
	s.mockStrikeRepo.EXPECT().
		AddStrike(s.ctx, &strikeRepo.AddStrikeInput{
			UserID:      s.testUserID,
			Reason:      ReasonAFK,
			Fine:        10,
			FineApplied: true,
			At:          s.testNow,
		}).
		Return(&models.StrikeRecord{UserID: s.testUserID, Strikes: 1}, nil)

	out, err := s.service.HandleAFK(s.ctx, &HandleAFKInput{RoomID: s.testRoomID, UserID: s.testUserID})
	s.Require().NoError(err)

	s.True(out.Penalty.FineApplied)
	s.Equal(1, out.Penalty.Strikes)
	s.False(out.Penalty.Banned)
}

func (s *AntiCheatServiceTestSuite) TestFineFailureIsSwallowed() {
	s.mockWallet.EXPECT().
		Debit(s.ctx, gomock.Any()).
		Return(nil, wallet.ErrInsufficientBalance)
	s.mockStrikeRepo.EXPECT().
		AddStrike(s.ctx, &strikeRepo.AddStrikeInput{
			UserID:      s.testUserID,
			Reason:      ReasonLeave,
			Fine:        20,
			FineApplied: false,
			At:          s.testNow,
		}).
		Return(&models.StrikeRecord{UserID: s.testUserID, Strikes: 2}, nil)

	out, err := s.service.HandleLeaveMidGame(s.ctx, &HandleLeaveMidGameInput{RoomID: s.testRoomID, UserID: s.testUserID})
	s.Require().NoError(err)

	s.False(out.Penalty.FineApplied)
	s.Equal(int64(20), out.Penalty.Fine)
	s.Equal(2, out.Penalty.Strikes)
}

func (s *AntiCheatServiceTestSuite) TestThresholdIssuesBan() {
	s.mockWallet.EXPECT().Debit(s.ctx, gomock.Any()).Return(&wallet.DebitOutput{}, nil)
	s.mockStrikeRepo.EXPECT().
		AddStrike(s.ctx, gomock.Any()).
		Return(&models.StrikeRecord{UserID: s.testUserID, Strikes: 3}, nil)
	s.mockStrikeRepo.EXPECT().
		SetBan(s.ctx, &strikeRepo.SetBanInput{UserID: s.testUserID, Until: s.testNow.Add(30 * time.Minute)}).
		Return(nil)

	out, err := s.service.HandleAFK(s.ctx, &HandleAFKInput{RoomID: s.testRoomID, UserID: s.testUserID})
	s.Require().NoError(err)

	s.True(out.Penalty.Banned)
	s.Equal(s.testNow.Add(30*time.Minute), out.Penalty.BannedUntil)
}

func (s *AntiCheatServiceTestSuite) TestStrikeFailureIsReturned() {
	s.mockWallet.EXPECT().Debit(s.ctx, gomock.Any()).Return(&wallet.DebitOutput{}, nil)
	s.mockStrikeRepo.EXPECT().
		AddStrike(s.ctx, gomock.Any()).
		Return(nil, errors.New("redis down"))

	_, err := s.service.HandleAFK(s.ctx, &HandleAFKInput{RoomID: s.testRoomID, UserID: s.testUserID})
	s.Error(err)
}

func (s *AntiCheatServiceTestSuite) TestCheckAutoUnbanNotBanned() {
	s.mockStrikeRepo.EXPECT().
		GetRecord(s.ctx, &strikeRepo.GetRecordInput{UserID: s.testUserID}).
		Return(&models.StrikeRecord{UserID: s.testUserID, Strikes: 1}, nil)

	out, err := s.service.CheckAutoUnban(s.ctx, &CheckAutoUnbanInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.False(out.Banned)
	s.False(out.Unbanned)
}

func (s *AntiCheatServiceTestSuite) TestCheckAutoUnbanStillBanned() {
	until := s.testNow.Add(time.Minute)
	s.mockStrikeRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(&models.StrikeRecord{UserID: s.testUserID, Strikes: 3, BannedUntil: until}, nil)

	out, err := s.service.CheckAutoUnban(s.ctx, &CheckAutoUnbanInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.True(out.Banned)
	s.Equal(until, out.BannedUntil)
}

func (s *AntiCheatServiceTestSuite) TestCheckAutoUnbanExpired() {
	s.mockStrikeRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(&models.StrikeRecord{UserID: s.testUserID, Strikes: 3, BannedUntil: s.testNow}, nil)
	s.mockStrikeRepo.EXPECT().
		ClearBan(s.ctx, &strikeRepo.ClearBanInput{UserID: s.testUserID}).
		Return(nil)

	out, err := s.service.CheckAutoUnban(s.ctx, &CheckAutoUnbanInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.False(out.Banned)
	s.True(out.Unbanned)
}

// ScenarioTestSuite runs the anti-cheat flow against a Redis-backed strike repository
type ScenarioTestSuite struct {
	suite.Suite
	mr         *miniredis.Miniredis
	client     *redis.Client
	mockCtrl   *gomock.Controller
	mockWallet *walletMocks.MockService
	mockClock  *clockMocks.MockClock
	service    Service
	ctx        context.Context
	now        time.Time
}

func (s *ScenarioTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	repo, err := strikeRepo.NewRedis(&strikeRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockWallet = walletMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.now = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return s.now
	}).AnyTimes()

	svc, err := New(&Config{
		StrikeRepo: repo,
		Wallet:     s.mockWallet,
		Clock:      s.mockClock,
		AFKFine:    10,
		MaxStrikes: 3,
		TempBan:    30 * time.Minute,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *ScenarioTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioTestSuite))
}

func (s *ScenarioTestSuite) TestThreeAFKsBanUntilExpiry() {
	s.mockWallet.EXPECT().
		Debit(s.ctx, gomock.Any()).
		Return(nil, wallet.ErrInsufficientBalance).
		Times(3)

	var last *PenaltyResult
	for i := 0; i < 3; i++ {
		out, err := s.service.HandleAFK(s.ctx, &HandleAFKInput{RoomID: "room-0001", UserID: "alice"})
		s.Require().NoError(err)
		last = out.Penalty
		s.now = s.now.Add(time.Minute)
	}

	s.Equal(3, last.Strikes)
	s.True(last.Banned)

	check, err := s.service.CheckAutoUnban(s.ctx, &CheckAutoUnbanInput{UserID: "alice"})
	s.Require().NoError(err)
	s.True(check.Banned)

	s.now = last.BannedUntil.Add(time.Second)

	check, err = s.service.CheckAutoUnban(s.ctx, &CheckAutoUnbanInput{UserID: "alice"})
	s.Require().NoError(err)
	s.False(check.Banned)
	s.True(check.Unbanned)

	standing, err := s.service.GetStanding(s.ctx, &GetStandingInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(0, standing.Record.Strikes)
	s.False(standing.Record.IsBanned())
	s.Len(standing.Penalties, 3)
}
