package match

import (
	"github.com/KirkDiggler/ludo/internal/models"
	"github.com/KirkDiggler/ludo/internal/room"
	"github.com/KirkDiggler/ludo/internal/rules"
	"github.com/KirkDiggler/ludo/internal/validate"
)

func (s *MatchServiceTestSuite) TestRollRejections() {
	roomID := s.createRoom(50, "alice", "bob")

	out, err := s.service.Roll(s.ctx, &RollInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(RejectionMatchNotActive, out.Rejection)

	_, err = s.service.StartMatch(s.ctx, &StartMatchInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	out, err = s.service.Roll(s.ctx, &RollInput{RoomID: roomID, UserID: "bob"})
	s.Require().NoError(err)
	s.Equal(RejectionNotYourTurn, out.Rejection)

	s.setRolls(6)
	out, err = s.service.Roll(s.ctx, &RollInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(RejectionNone, out.Rejection)

	out, err = s.service.Roll(s.ctx, &RollInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(RejectionAlreadyRolled, out.Rejection)
	s.Equal(6, out.DiceValue)
}

func (s *MatchServiceTestSuite) TestRollWithoutLegalMovePassesTurn() {
	roomID := s.startMatch("alice", "bob")

	s.setRolls(3)
	out, err := s.service.Roll(s.ctx, &RollInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	s.Equal(3, out.DiceValue)
	s.True(out.Passed)
	s.Empty(out.Movable)
	s.False(out.HasSuggestion)
	s.Equal(0, out.Room.State.DiceValue)
	s.Equal("bob", out.Room.State.CurrentPlayer().UserID)

	turn := s.lastTurn()
	s.Equal("bob", turn.UserID)
	s.Contains(s.eventKinds(), models.EventTurnChanged)
}

func (s *MatchServiceTestSuite) TestRollSixSuggestsSpawn() {
	roomID := s.startMatch("alice", "bob")

	s.setRolls(6)
	out, err := s.service.Roll(s.ctx, &RollInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	s.False(out.Passed)
	s.Equal([]int{0, 1, 2, 3}, out.Movable)
	s.True(out.HasSuggestion)
	s.Equal(0, out.Suggested)
	s.Equal(6, out.Room.State.DiceValue)

	// the timer guards the move now
	turn := s.lastTurn()
	s.Equal("alice", turn.UserID)
	s.withRoom(roomID, func(r *room.Room) {
		s.Equal(r.Seq(), turn.Seq)
	})
}

func (s *MatchServiceTestSuite) TestSpawnKeepsTurn() {
	roomID := s.startMatch("alice", "bob")

	s.setRolls(6)
	_, err := s.service.Roll(s.ctx, &RollInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	out, err := s.service.Move(s.ctx, &MoveInput{RoomID: roomID, UserID: "alice", TokenIndex: 0})
	s.Require().NoError(err)

	s.Equal(RejectionNone, out.Rejection)
	s.Equal(rules.OutcomeSpawn, out.Result.Outcome)
	s.True(out.Dice.ExtraTurn)
	s.Equal(0, out.Room.State.DiceValue)
	s.Equal(1, out.Room.State.ConsecutiveSix)
	s.Equal("alice", out.Room.State.CurrentPlayer().UserID)
	s.Equal(0, out.Room.Players[0].Tokens[0].Position)
}

func (s *MatchServiceTestSuite) TestMoveRejections() {
	roomID := s.startMatch("alice", "bob")

	out, err := s.service.Move(s.ctx, &MoveInput{RoomID: roomID, UserID: "alice", TokenIndex: 0})
	s.Require().NoError(err)
	s.Equal(RejectionRollFirst, out.Rejection)

	out, err = s.service.Move(s.ctx, &MoveInput{RoomID: roomID, UserID: "bob", TokenIndex: 0})
	s.Require().NoError(err)
	s.Equal(RejectionNotYourTurn, out.Rejection)

	_, err = s.service.Move(s.ctx, &MoveInput{RoomID: roomID, UserID: "alice", TokenIndex: 4})
	s.ErrorIs(err, validate.ErrInvalidTokenIndex)

	s.withRoom(roomID, func(r *room.Room) {
		r.Player("alice").Tokens[0].Position = 5
	})

	s.setRolls(3)
	roll, err := s.service.Roll(s.ctx, &RollInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)
	s.Equal([]int{0}, roll.Movable)

	out, err = s.service.Move(s.ctx, &MoveInput{RoomID: roomID, UserID: "alice", TokenIndex: 1})
	s.Require().NoError(err)
	s.Equal(RejectionIllegalMove, out.Rejection)

	s.withRoom(roomID, func(r *room.Room) {
		s.Equal(3, r.State.DiceValue)
		s.Equal(models.PositionHome, r.Player("alice").Tokens[1].Position)
	})

	out, err = s.service.Move(s.ctx, &MoveInput{RoomID: roomID, UserID: "alice", TokenIndex: 0})
	s.Require().NoError(err)
	s.Equal(rules.OutcomeMove, out.Result.Outcome)
	s.Equal("bob", out.Room.State.CurrentPlayer().UserID)
}

func (s *MatchServiceTestSuite) TestCaptureGrantsExtraTurn() {
	roomID := s.startMatch("alice", "bob")

	s.withRoom(roomID, func(r *room.Room) {
		r.Player("alice").Tokens[0].Position = 10
		r.Player("bob").Tokens[2].Position = 12
	})

	s.setRolls(2)
	_, err := s.service.Roll(s.ctx, &RollInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	out, err := s.service.Move(s.ctx, &MoveInput{RoomID: roomID, UserID: "alice", TokenIndex: 0})
	s.Require().NoError(err)

	s.Equal(rules.OutcomeKill, out.Result.Outcome)
	s.Equal("bob", out.Result.CapturedUserID)
	s.Equal(2, out.Result.CapturedToken)
	s.True(out.Dice.ExtraTurn)
	s.Equal("alice", out.Room.State.CurrentPlayer().UserID)
	s.Equal(models.PositionHome, out.Room.Players[1].Tokens[2].Position)
}

func (s *MatchServiceTestSuite) TestThirdSixForfeitsTurn() {
	roomID := s.startMatch("alice", "bob")

	s.withRoom(roomID, func(r *room.Room) {
		r.Player("alice").Tokens[0].Position = 5
		r.State.ConsecutiveSix = 2
	})

	s.setRolls(6)
	_, err := s.service.Roll(s.ctx, &RollInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	out, err := s.service.Move(s.ctx, &MoveInput{RoomID: roomID, UserID: "alice", TokenIndex: 0})
	s.Require().NoError(err)

	s.Equal(rules.OutcomeMove, out.Result.Outcome)
	s.True(out.Dice.Penalty)
	s.False(out.Dice.ExtraTurn)
	s.Equal(0, out.Room.State.ConsecutiveSix)
	s.Equal("bob", out.Room.State.CurrentPlayer().UserID)
}

func (s *MatchServiceTestSuite) TestTimeoutPenalizesAndPassesTurn() {
	roomID := s.startMatch("alice", "bob")

	s.withRoom(roomID, func(r *room.Room) {
		r.State.ConsecutiveSix = 1
	})

	s.service.HandleTurnTimeout(s.ctx, s.lastTurn())

	s.Equal([]string{"alice"}, s.afk)
	s.withRoom(roomID, func(r *room.Room) {
		s.Equal("bob", r.State.CurrentPlayer().UserID)
		s.Equal(0, r.State.ConsecutiveSix)
		s.Equal(0, r.State.DiceValue)
	})

	turn := s.lastTurn()
	s.Equal("bob", turn.UserID)
	s.Contains(s.eventKinds(), models.EventPlayerAFK)
}

func (s *MatchServiceTestSuite) TestTimeoutAfterRollClearsDice() {
	roomID := s.startMatch("alice", "bob")

	s.setRolls(6)
	_, err := s.service.Roll(s.ctx, &RollInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	s.service.HandleTurnTimeout(s.ctx, s.lastTurn())

	s.Equal([]string{"alice"}, s.afk)
	s.withRoom(roomID, func(r *room.Room) {
		s.Equal(0, r.State.DiceValue)
		s.Equal("bob", r.State.CurrentPlayer().UserID)
	})
}

func (s *MatchServiceTestSuite) TestStaleTimeoutIsIgnored() {
	roomID := s.startMatch("alice", "bob")
	stale := s.lastTurn()

	s.setRolls(6)
	_, err := s.service.Roll(s.ctx, &RollInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	s.service.HandleTurnTimeout(s.ctx, stale)

	s.Empty(s.afk)
	s.withRoom(roomID, func(r *room.Room) {
		s.Equal("alice", r.State.CurrentPlayer().UserID)
		s.Equal(6, r.State.DiceValue)
	})
}

func (s *MatchServiceTestSuite) TestTimeoutOnFinishedRoomIsIgnored() {
	roomID := s.startMatch("alice", "bob")
	turn := s.lastTurn()

	// finished but not yet evicted
	s.withRoom(roomID, func(r *room.Room) {
		r.EndGame(s.testNow)
	})
	s.service.HandleTurnTimeout(s.ctx, turn)

	s.Empty(s.afk)
}

func (s *MatchServiceTestSuite) TestLeaveMidGameKeepsMatchGoing() {
	roomID := s.startMatch("alice", "bob", "carol")

	out, err := s.service.LeaveRoom(s.ctx, &LeaveRoomInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	s.Nil(out.Settlement)
	s.Require().NotNil(out.Penalty)
	s.True(out.Penalty.FineApplied)
	s.Equal([]string{"alice"}, s.leavers)
	s.Empty(s.credits)

	s.Equal(models.RoomStatusActive, out.Room.Status)
	s.Equal("bob", out.Room.State.CurrentPlayer().UserID)
	s.False(out.Room.Players[0].Active)

	turn := s.lastTurn()
	s.Equal("bob", turn.UserID)
}

func (s *MatchServiceTestSuite) TestLeaveMidGameOutOfTurnKeepsTurn() {
	roomID := s.startMatch("alice", "bob", "carol")

	s.setRolls(6)
	_, err := s.service.Roll(s.ctx, &RollInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	out, err := s.service.LeaveRoom(s.ctx, &LeaveRoomInput{RoomID: roomID, UserID: "carol"})
	s.Require().NoError(err)

	s.Equal("alice", out.Room.State.CurrentPlayer().UserID)
	s.Equal(6, out.Room.State.DiceValue)
}

func (s *MatchServiceTestSuite) TestTurnSkipsPlayersWhoLeft() {
	roomID := s.startMatch("alice", "bob", "carol")

	_, err := s.service.LeaveRoom(s.ctx, &LeaveRoomInput{RoomID: roomID, UserID: "bob"})
	s.Require().NoError(err)

	s.setRolls(1)
	out, err := s.service.Roll(s.ctx, &RollInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	s.True(out.Passed)
	s.Equal("carol", out.Room.State.CurrentPlayer().UserID)
}
