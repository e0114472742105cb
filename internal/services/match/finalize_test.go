package match

import (
	"context"
	"sync"

	"github.com/KirkDiggler/ludo/internal/models"
	"github.com/KirkDiggler/ludo/internal/room"
	"github.com/KirkDiggler/ludo/internal/rules"
)

// nearlyFinished leaves the player one roll of 2 away from finishing
func nearlyFinished(p *models.Player) {
	for i := 0; i < 3; i++ {
		p.Tokens[i] = models.Token{Position: rules.FinishPosition, Finished: true}
	}
	p.Tokens[3] = models.Token{Position: rules.FinishPosition - 2}
}

func (s *MatchServiceTestSuite) TestFinishingLastTokenSettlesMatch() {
	roomID := s.startMatch("alice", "bob")

	s.withRoom(roomID, func(r *room.Room) {
		nearlyFinished(r.Player("alice"))
	})

	s.setRolls(2)
	_, err := s.service.Roll(s.ctx, &RollInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	out, err := s.service.Move(s.ctx, &MoveInput{RoomID: roomID, UserID: "alice", TokenIndex: 3})
	s.Require().NoError(err)

	s.Equal(rules.OutcomeFinish, out.Result.Outcome)
	s.True(out.Result.PlayerFullyFinished)
	s.True(out.MatchOver)
	s.Require().NotNil(out.Settlement)

	s.Equal([]string{"alice", "bob"}, out.Settlement.Players)
	s.Equal([]string{"alice"}, out.Settlement.Winners)
	s.Equal(int64(100), out.Settlement.TotalPot)
	s.Equal(int64(10), out.Settlement.Bonus)
	s.Equal(int64(110), out.Settlement.Share)
	s.Equal(s.testNow, out.Settlement.StartedAt)
	s.Equal(s.testNow, out.Settlement.EndedAt)

	s.Equal(models.RoomStatusFinished, out.Room.Status)
	s.Nil(out.Room.State)
	s.Equal(0, s.registry.Len())
	s.Contains(s.cancels, roomID)
	s.Contains(s.eventKinds(), models.EventMatchFinished)
}

func (s *MatchServiceTestSuite) TestFinalizeTwiceSettlesOnce() {
	roomID := s.startMatch("alice", "bob", "carol", "dave")

	s.withRoom(roomID, func(r *room.Room) {
		r.Player("carol").Tokens[0] = models.Token{Position: rules.FinishPosition, Finished: true}
		r.Player("carol").Tokens[1] = models.Token{Position: rules.FinishPosition, Finished: true}
		r.Player("bob").Tokens[0] = models.Token{Position: rules.FinishPosition, Finished: true}
	})

	first, err := s.service.FinalizeMatch(s.ctx, &FinalizeMatchInput{RoomID: roomID})
	s.Require().NoError(err)

	s.False(first.AlreadySettled)
	s.Equal([]string{"carol", "bob", "alice", "dave"}, first.Ranking)
	s.Equal([]string{"carol", "bob", "alice"}, first.Settlement.Winners)
	s.Equal(int64(200), first.Settlement.TotalPot)
	s.Equal(int64(20), first.Settlement.Bonus)
	s.Equal(int64(73), first.Settlement.Share)

	second, err := s.service.FinalizeMatch(s.ctx, &FinalizeMatchInput{RoomID: roomID})
	s.Require().NoError(err)

	s.True(second.AlreadySettled)
	s.Equal(first.Settlement, second.Settlement)
	s.Equal(1, s.settleCalls)
}

func (s *MatchServiceTestSuite) TestConcurrentFinalizeSettlesOnce() {
	roomID := s.startMatch("alice", "bob")

	const callers = 8
	results := make([]*FinalizeMatchOutput, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.service.FinalizeMatch(s.ctx, &FinalizeMatchInput{RoomID: roomID})
		}(i)
	}
	wg.Wait()

	fresh := 0
	for i := 0; i < callers; i++ {
		s.Require().NoError(errs[i])
		s.Require().NotNil(results[i].Settlement)
		s.Equal(roomID, results[i].Settlement.RoomID)
		if !results[i].AlreadySettled {
			fresh++
		}
	}

	s.Equal(1, fresh)
	s.Equal(1, s.settleCalls)
	s.Equal(0, s.registry.Len())
}

func (s *MatchServiceTestSuite) TestFinalizeWithCancelledContextStillSettles() {
	roomID := s.startMatch("alice", "bob")

	s.withRoom(roomID, func(r *room.Room) {
		r.Player("bob").Tokens[0] = models.Token{Position: rules.FinishPosition, Finished: true}
	})

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	out, err := s.service.FinalizeMatch(ctx, &FinalizeMatchInput{RoomID: roomID})
	s.Require().NoError(err)
	s.Require().NotNil(out.Settlement)
	s.Equal([]string{"bob"}, out.Settlement.Winners)
	s.Equal(1, s.settleCalls)
	s.Equal(0, s.registry.Len())

	again, err := s.service.FinalizeMatch(s.ctx, &FinalizeMatchInput{RoomID: roomID})
	s.Require().NoError(err)
	s.True(again.AlreadySettled)
	s.Equal(out.Settlement, again.Settlement)
}

func (s *MatchServiceTestSuite) TestFinalizeFormingRoom() {
	roomID := s.createRoom(50, "alice", "bob")

	_, err := s.service.FinalizeMatch(s.ctx, &FinalizeMatchInput{RoomID: roomID})
	s.ErrorIs(err, ErrMatchNotStarted)
}

func (s *MatchServiceTestSuite) TestFinalizeUnknownRoom() {
	_, err := s.service.FinalizeMatch(s.ctx, &FinalizeMatchInput{RoomID: "room-0404"})
	s.ErrorIs(err, room.ErrRoomNotFound)
}

func (s *MatchServiceTestSuite) TestLastOpponentLeavingEndsMatch() {
	roomID := s.startMatch("alice", "bob")

	out, err := s.service.LeaveRoom(s.ctx, &LeaveRoomInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)

	s.Equal([]string{"alice"}, s.leavers)
	s.Require().NotNil(out.Settlement)
	s.Equal([]string{"bob"}, out.Settlement.Winners)
	s.Equal(0, s.registry.Len())
}

func (s *MatchServiceTestSuite) TestTimeoutAfterMatchEndedIsIgnored() {
	roomID := s.startMatch("alice", "bob")
	turn := s.lastTurn()

	_, err := s.service.FinalizeMatch(s.ctx, &FinalizeMatchInput{RoomID: roomID})
	s.Require().NoError(err)

	s.service.HandleTurnTimeout(s.ctx, turn)

	s.Empty(s.afk)
	s.Equal(1, s.settleCalls)
}

func (s *MatchServiceTestSuite) TestActionsAfterFinishAreRejected() {
	roomID := s.startMatch("alice", "bob")

	s.withRoom(roomID, func(r *room.Room) {
		r.EndGame(s.testNow)
	})

	out, err := s.service.Roll(s.ctx, &RollInput{RoomID: roomID, UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(RejectionMatchNotActive, out.Rejection)
}
