package room

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/ludo/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) snapshot(roomID, channelID string, status models.RoomStatus) *models.RoomSnapshot {
	players := []*models.Player{
		models.NewPlayer("alice", "Alice", models.ColorRed),
		models.NewPlayer("bob", "Bob", models.ColorGreen),
	}
	snapshot := &models.RoomSnapshot{
		RoomID:     roomID,
		ChannelID:  channelID,
		OwnerID:    "alice",
		EntryFee:   50,
		MaxPlayers: 4,
		Status:     status,
		Players:    players,
		CreatedAt:  s.testNow,
		UpdatedAt:  s.testNow,
	}
	if status.IsActive() {
		snapshot.State = &models.GameState{Players: players, CurrentTurn: 1, DiceValue: 4}
	}
	return snapshot
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRoom() {
	err := s.repo.SaveRoom(s.ctx, &SaveRoomInput{
		Room: s.snapshot("room-0001", "channel-1", models.RoomStatusActive),
	})
	s.Require().NoError(err)

	room, err := s.repo.GetRoom(s.ctx, &GetRoomInput{RoomID: "room-0001"})
	s.Require().NoError(err)

	s.Equal("room-0001", room.RoomID)
	s.Equal("alice", room.OwnerID)
	s.Equal(models.RoomStatusActive, room.Status)
	s.Require().Len(room.Players, 2)
	s.Equal(models.ColorGreen, room.Players[1].Color)
	s.Equal(models.PositionHome, room.Players[1].Tokens[3].Position)
	s.Require().NotNil(room.State)
	s.Equal(1, room.State.CurrentTurn)
	s.Equal(4, room.State.DiceValue)
	s.Equal(s.testNow.Unix(), room.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetRoomNotFound() {
	_, err := s.repo.GetRoom(s.ctx, &GetRoomInput{RoomID: "missing"})
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetRoomByChannel() {
	s.Require().NoError(s.repo.SaveRoom(s.ctx, &SaveRoomInput{
		Room: s.snapshot("room-0001", "channel-1", models.RoomStatusForming),
	}))

	room, err := s.repo.GetRoomByChannel(s.ctx, &GetRoomByChannelInput{ChannelID: "channel-1"})
	s.Require().NoError(err)
	s.Equal("room-0001", room.RoomID)

	_, err = s.repo.GetRoomByChannel(s.ctx, &GetRoomByChannelInput{ChannelID: "channel-2"})
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetActiveRooms() {
	s.Require().NoError(s.repo.SaveRoom(s.ctx, &SaveRoomInput{
		Room: s.snapshot("room-0001", "channel-1", models.RoomStatusActive),
	}))
	s.Require().NoError(s.repo.SaveRoom(s.ctx, &SaveRoomInput{
		Room: s.snapshot("room-0002", "channel-2", models.RoomStatusForming),
	}))

	out, err := s.repo.GetActiveRooms(s.ctx, &GetActiveRoomsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Rooms, 1)
	s.Equal("room-0001", out.Rooms[0].RoomID)
}

func (s *RedisRepositoryTestSuite) TestFinishedRoomLeavesIndexesAndExpires() {
	s.Require().NoError(s.repo.SaveRoom(s.ctx, &SaveRoomInput{
		Room: s.snapshot("room-0001", "channel-1", models.RoomStatusActive),
	}))
	s.Require().NoError(s.repo.SaveRoom(s.ctx, &SaveRoomInput{
		Room: s.snapshot("room-0001", "channel-1", models.RoomStatusFinished),
	}))

	out, err := s.repo.GetActiveRooms(s.ctx, &GetActiveRoomsInput{})
	s.Require().NoError(err)
	s.Empty(out.Rooms)

	_, err = s.repo.GetRoomByChannel(s.ctx, &GetRoomByChannelInput{ChannelID: "channel-1"})
	s.ErrorIs(err, ErrRoomNotFound)

	s.mr.FastForward(finishedRoomTTL + time.Second)
	_, err = s.repo.GetRoom(s.ctx, &GetRoomInput{RoomID: "room-0001"})
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteRoom() {
	s.Require().NoError(s.repo.SaveRoom(s.ctx, &SaveRoomInput{
		Room: s.snapshot("room-0001", "channel-1", models.RoomStatusActive),
	}))

	s.Require().NoError(s.repo.DeleteRoom(s.ctx, &DeleteRoomInput{RoomID: "room-0001"}))

	_, err := s.repo.GetRoom(s.ctx, &GetRoomInput{RoomID: "room-0001"})
	s.ErrorIs(err, ErrRoomNotFound)

	_, err = s.repo.GetRoomByChannel(s.ctx, &GetRoomByChannelInput{ChannelID: "channel-1"})
	s.ErrorIs(err, ErrRoomNotFound)

	out, err := s.repo.GetActiveRooms(s.ctx, &GetActiveRoomsInput{})
	s.Require().NoError(err)
	s.Empty(out.Rooms)

	s.ErrorIs(s.repo.DeleteRoom(s.ctx, &DeleteRoomInput{RoomID: "room-0001"}), ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteKeepsNewerChannelMapping() {
	s.Require().NoError(s.repo.SaveRoom(s.ctx, &SaveRoomInput{
		Room: s.snapshot("room-0001", "channel-1", models.RoomStatusForming),
	}))
	s.Require().NoError(s.repo.SaveRoom(s.ctx, &SaveRoomInput{
		Room: s.snapshot("room-0002", "channel-1", models.RoomStatusForming),
	}))

	s.Require().NoError(s.repo.DeleteRoom(s.ctx, &DeleteRoomInput{RoomID: "room-0001"}))

	room, err := s.repo.GetRoomByChannel(s.ctx, &GetRoomByChannelInput{ChannelID: "channel-1"})
	s.Require().NoError(err)
	s.Equal("room-0002", room.RoomID)
}
