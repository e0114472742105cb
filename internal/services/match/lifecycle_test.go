package match

import (
	"time"

	"github.com/KirkDiggler/ludo/internal/models"
	"github.com/KirkDiggler/ludo/internal/room"
	"github.com/KirkDiggler/ludo/internal/services/wallet"
	"github.com/KirkDiggler/ludo/internal/validate"
)

func (s *MatchServiceTestSuite) TestCreateRoomCollectsFee() {
	out, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{
		OwnerID:    "alice",
		OwnerName:  "Alice",
		ChannelID:  "channel-1",
		EntryFee:   50,
		MaxPlayers: 3,
	})
	s.Require().NoError(err)

	s.Equal("room-0001", out.Room.RoomID)
	s.Equal(models.RoomStatusForming, out.Room.Status)
	s.Equal(3, out.Room.MaxPlayers)
	s.Require().Len(out.Room.Players, 1)
	s.Equal(models.ColorRed, out.Room.Players[0].Color)
	s.Equal([]walletCall{{UserID: "alice", Amount: 50}}, s.debits)
	s.Equal(1, s.registry.Len())
	s.Equal([]models.EventKind{models.EventRoomCreated}, s.eventKinds())
}

func (s *MatchServiceTestSuite) TestCreateRoomFreeSkipsWallet() {
	_, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{OwnerID: "alice"})
	s.Require().NoError(err)
	s.Empty(s.debits)
}

func (s *MatchServiceTestSuite) TestCreateRoomRejectsBannedUser() {
	s.bannedUntil["alice"] = s.testNow.Add(time.Hour)

	_, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{OwnerID: "alice", EntryFee: 50})
	s.ErrorIs(err, ErrUserBanned)
	s.Empty(s.debits)
	s.Equal(0, s.registry.Len())
}

func (s *MatchServiceTestSuite) TestCreateRoomAfterBanExpired() {
	s.bannedUntil["alice"] = s.testNow.Add(-time.Minute)

	_, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{OwnerID: "alice"})
	s.NoError(err)
}

func (s *MatchServiceTestSuite) TestCreateRoomChannelBusy() {
	s.createRoom(50, "alice")

	_, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{OwnerID: "bob", ChannelID: "channel-alice", EntryFee: 50})
	s.ErrorIs(err, room.ErrChannelBusy)
	s.Len(s.debits, 1)
}

func (s *MatchServiceTestSuite) TestCreateRoomInsufficientBalance() {
	s.broke["alice"] = true

	_, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{OwnerID: "alice", EntryFee: 50})
	s.ErrorIs(err, wallet.ErrInsufficientBalance)
	s.Equal(0, s.registry.Len())
}

func (s *MatchServiceTestSuite) TestCreateRoomRejectsBadSize() {
	_, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{OwnerID: "alice", MaxPlayers: 6})
	s.ErrorIs(err, room.ErrInvalidMaxPlayers)
	s.Empty(s.debits)
}

func (s *MatchServiceTestSuite) TestJoinRoom() {
	roomID := s.createRoom(50, "alice")

	out, err := s.service.JoinRoom(s.ctx, &JoinRoomInput{RoomID: roomID, UserID: "bob", Username: "Bob"})
	s.Require().NoError(err)

	s.Require().Len(out.Room.Players, 2)
	s.Equal(models.ColorGreen, out.Room.Players[1].Color)
	s.Equal([]walletCall{{UserID: "alice", Amount: 50}, {UserID: "bob", Amount: 50}}, s.debits)
	s.Contains(s.eventKinds(), models.EventPlayerJoined)
}

func (s *MatchServiceTestSuite) TestJoinRoomWithColor() {
	roomID := s.createRoom(50, "alice")

	out, err := s.service.JoinRoom(s.ctx, &JoinRoomInput{RoomID: roomID, UserID: "bob", Color: models.ColorBlue})
	s.Require().NoError(err)
	s.Equal(models.ColorBlue, out.Room.Players[1].Color)

	_, err = s.service.JoinRoom(s.ctx, &JoinRoomInput{RoomID: roomID, UserID: "carol", Color: models.ColorBlue})
	s.ErrorIs(err, room.ErrColorTaken)
}

func (s *MatchServiceTestSuite) TestJoinRoomFullDoesNotCharge() {
	out, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{OwnerID: "alice", EntryFee: 50, MaxPlayers: 2})
	s.Require().NoError(err)

	_, err = s.service.JoinRoom(s.ctx, &JoinRoomInput{RoomID: out.Room.RoomID, UserID: "bob"})
	s.Require().NoError(err)

	_, err = s.service.JoinRoom(s.ctx, &JoinRoomInput{RoomID: out.Room.RoomID, UserID: "carol"})
	s.ErrorIs(err, room.ErrRoomFull)

	for _, d := range s.debits {
		s.NotEqual("carol", d.UserID)
	}
}

func (s *MatchServiceTestSuite) TestJoinRoomDuplicate() {
	roomID := s.createRoom(50, "alice", "bob")

	_, err := s.service.JoinRoom(s.ctx, &JoinRoomInput{RoomID: roomID, UserID: "bob"})
	s.ErrorIs(err, room.ErrDuplicatePlayer)
	s.Len(s.debits, 2)
}

func (s *MatchServiceTestSuite) TestJoinRoomAfterStart() {
	roomID := s.startMatch("alice", "bob")

	_, err := s.service.JoinRoom(s.ctx, &JoinRoomInput{RoomID: roomID, UserID: "carol"})
	s.ErrorIs(err, room.ErrAlreadyStarted)
}

func (s *MatchServiceTestSuite) TestJoinRoomValidatesInput() {
	_, err := s.service.JoinRoom(s.ctx, &JoinRoomInput{RoomID: "short", UserID: "bob"})
	s.ErrorIs(err, validate.ErrInvalidRoomID)

	_, err = s.service.JoinRoom(s.ctx, &JoinRoomInput{RoomID: "room-0001", UserID: ""})
	s.ErrorIs(err, validate.ErrInvalidUserID)

	_, err = s.service.JoinRoom(s.ctx, &JoinRoomInput{RoomID: "room-0404", UserID: "bob"})
	s.ErrorIs(err, room.ErrRoomNotFound)
}

func (s *MatchServiceTestSuite) TestJoinRoomBanned() {
	roomID := s.createRoom(50, "alice")
	s.bannedUntil["bob"] = s.testNow.Add(time.Minute)

	_, err := s.service.JoinRoom(s.ctx, &JoinRoomInput{RoomID: roomID, UserID: "bob"})
	s.ErrorIs(err, ErrUserBanned)
}

func (s *MatchServiceTestSuite) TestLeaveFormingRoomRefunds() {
	roomID := s.createRoom(50, "alice", "bob")

	out, err := s.service.LeaveRoom(s.ctx, &LeaveRoomInput{RoomID: roomID, UserID: "bob"})
	s.Require().NoError(err)

	s.Equal(int64(50), out.Refunded)
	s.False(out.Abandoned)
	s.Nil(out.Penalty)
	s.Equal([]walletCall{{UserID: "bob", Amount: 50}}, s.credits)
	s.Empty(s.leavers)

	_, err = s.service.LeaveRoom(s.ctx, &LeaveRoomInput{RoomID: roomID, UserID: "bob"})
	s.ErrorIs(err, ErrPlayerAlreadyLeft)
}

func (s *MatchServiceTestSuite) TestOwnerLeavingHandsOverRoom() {
	roomID := s.createRoom(50, "alice", "bob")

	out, err := s.service.LeaveRoom(s.ctx, &LeaveRoomInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)
	s.Equal("bob", out.Room.OwnerID)

	_, err = s.service.StartMatch(s.ctx, &StartMatchInput{RoomID: roomID, UserID: "alice"})
	s.ErrorIs(err, ErrNotOwner)
}

func (s *MatchServiceTestSuite) TestLastPlayerLeavingAbandonsRoom() {
	roomID := s.createRoom(50, "alice")

	out, err := s.service.LeaveRoom(s.ctx, &LeaveRoomInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	s.True(out.Abandoned)
	s.Equal(0, s.registry.Len())
	s.Equal([]walletCall{{UserID: "alice", Amount: 50}}, s.credits)
	s.Contains(s.eventKinds(), models.EventRoomAbandoned)
}

func (s *MatchServiceTestSuite) TestLeaveUnknownPlayer() {
	roomID := s.createRoom(50, "alice")

	_, err := s.service.LeaveRoom(s.ctx, &LeaveRoomInput{RoomID: roomID, UserID: "mallory"})
	s.ErrorIs(err, room.ErrPlayerNotFound)
}

func (s *MatchServiceTestSuite) TestStartMatchArmsTimer() {
	roomID := s.createRoom(50, "alice", "bob")

	out, err := s.service.StartMatch(s.ctx, &StartMatchInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	s.Equal(models.RoomStatusActive, out.Room.Status)
	s.Require().NotNil(out.Room.State)
	s.Equal(s.testNow, out.Room.StartedAt)

	turn := s.lastTurn()
	s.Equal(roomID, turn.RoomID)
	s.Equal("alice", turn.UserID)
	s.Contains(s.eventKinds(), models.EventMatchStarted)
}

func (s *MatchServiceTestSuite) TestStartMatchErrors() {
	roomID := s.createRoom(50, "alice")

	_, err := s.service.StartMatch(s.ctx, &StartMatchInput{RoomID: roomID, UserID: "alice"})
	s.ErrorIs(err, room.ErrNotEnoughPlayers)

	_, err = s.service.JoinRoom(s.ctx, &JoinRoomInput{RoomID: roomID, UserID: "bob"})
	s.Require().NoError(err)

	_, err = s.service.StartMatch(s.ctx, &StartMatchInput{RoomID: roomID, UserID: "bob"})
	s.ErrorIs(err, ErrNotOwner)

	_, err = s.service.StartMatch(s.ctx, &StartMatchInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	_, err = s.service.StartMatch(s.ctx, &StartMatchInput{RoomID: roomID, UserID: "alice"})
	s.ErrorIs(err, room.ErrAlreadyStarted)
}

func (s *MatchServiceTestSuite) TestStartMatchDropsPlayersWhoLeft() {
	roomID := s.createRoom(50, "alice", "bob", "carol")

	_, err := s.service.LeaveRoom(s.ctx, &LeaveRoomInput{RoomID: roomID, UserID: "bob"})
	s.Require().NoError(err)

	out, err := s.service.StartMatch(s.ctx, &StartMatchInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	s.Require().Len(out.Room.Players, 2)
	s.Equal("alice", out.Room.Players[0].UserID)
	s.Equal("carol", out.Room.Players[1].UserID)
}

func (s *MatchServiceTestSuite) TestForceEndFormingRoomRefundsEveryone() {
	roomID := s.createRoom(50, "alice", "bob")

	_, err := s.service.ForceEnd(s.ctx, &ForceEndInput{RoomID: roomID, UserID: "bob"})
	s.ErrorIs(err, ErrNotOwner)

	out, err := s.service.ForceEnd(s.ctx, &ForceEndInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	s.Nil(out.Settlement)
	s.Equal(models.RoomStatusFinished, out.Room.Status)
	s.ElementsMatch([]walletCall{{UserID: "alice", Amount: 50}, {UserID: "bob", Amount: 50}}, s.credits)
	s.Equal(0, s.registry.Len())
	s.Equal(0, s.settleCalls)
}

func (s *MatchServiceTestSuite) TestForceEndActiveMatchSettles() {
	roomID := s.startMatch("alice", "bob")

	s.withRoom(roomID, func(r *room.Room) {
		r.Player("bob").Tokens[0] = models.Token{Position: 57, Finished: true}
	})

	out, err := s.service.ForceEnd(s.ctx, &ForceEndInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	s.Require().NotNil(out.Settlement)
	s.Equal([]string{"bob"}, out.Settlement.Winners)
	s.Equal(int64(110), out.Settlement.Share)
	s.Equal(0, s.registry.Len())
	s.Contains(s.cancels, roomID)
}
