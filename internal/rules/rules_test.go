package rules

import (
	"testing"

	"github.com/KirkDiggler/ludo/internal/dice"
	diceMocks "github.com/KirkDiggler/ludo/internal/dice/mocks"
	"github.com/KirkDiggler/ludo/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RulesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller

	red    *models.Player
	green  *models.Player
	yellow *models.Player
	state  *models.GameState
}

func (s *RulesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())

	s.red = models.NewPlayer("red-user", "Red", models.ColorRed)
	s.green = models.NewPlayer("green-user", "Green", models.ColorGreen)
	s.yellow = models.NewPlayer("yellow-user", "Yellow", models.ColorYellow)
	s.state = models.NewGameState([]*models.Player{s.red, s.green, s.yellow})
}

func (s *RulesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRulesTestSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}

func (s *RulesTestSuite) players() []*models.Player {
	return s.state.Players
}

func (s *RulesTestSuite) TestRollDiceUsesRoller() {
	roller := diceMocks.NewMockRoller(s.mockCtrl)
	roller.EXPECT().Roll().Return(4)

	s.Equal(4, RollDice(roller))
}

func (s *RulesTestSuite) TestCanMove() {
	s.False(CanMove(models.Token{Position: models.PositionHome}, 5))
	s.True(CanMove(models.Token{Position: models.PositionHome}, 6))
	s.False(CanMove(models.Token{Position: FinishPosition, Finished: true}, 1))
	s.True(CanMove(models.Token{Position: 51}, 6))
	s.True(CanMove(models.Token{Position: 54}, 3))
	s.False(CanMove(models.Token{Position: 55}, 3))
}

func (s *RulesTestSuite) TestSpawnUsesColorOffset() {
	result := MoveToken(s.green, 0, 6, s.players())

	s.Equal(OutcomeSpawn, result.Outcome)
	s.True(result.GrantsExtraTurn)
	s.Equal(13, s.green.Tokens[0].Position)
}

func (s *RulesTestSuite) TestHomeTokenNeedsSix() {
	for value := 1; value < 6; value++ {
		result := MoveToken(s.red, 0, value, s.players())
		s.Equal(OutcomeInvalid, result.Outcome)
		s.Equal(models.PositionHome, s.red.Tokens[0].Position)
	}
}

func (s *RulesTestSuite) TestPlainMove() {
	s.red.Tokens[0].Position = 2

	result := MoveToken(s.red, 0, 3, s.players())

	s.Equal(OutcomeMove, result.Outcome)
	s.False(result.GrantsExtraTurn)
	s.Equal(2, result.From)
	s.Equal(5, result.To)
	s.Equal(5, s.red.Tokens[0].Position)
}

func (s *RulesTestSuite) TestCaptureSendsOpponentHome() {
	s.red.Tokens[0].Position = 10
	s.green.Tokens[2].Position = 14

	result := MoveToken(s.red, 0, 4, s.players())

	s.Equal(OutcomeKill, result.Outcome)
	s.True(result.GrantsExtraTurn)
	s.Equal("green-user", result.CapturedUserID)
	s.Equal(2, result.CapturedToken)
	s.Equal(models.PositionHome, s.green.Tokens[2].Position)
	s.False(s.green.Tokens[2].Finished)
}

func (s *RulesTestSuite) TestCaptureEvictsOnlyFirstOpponent() {
	s.red.Tokens[0].Position = 10
	s.green.Tokens[0].Position = 14
	s.yellow.Tokens[0].Position = 14

	result := MoveToken(s.red, 0, 4, s.players())

	s.Equal(OutcomeKill, result.Outcome)
	s.Equal(models.PositionHome, s.green.Tokens[0].Position)
	s.Equal(14, s.yellow.Tokens[0].Position)
}

func (s *RulesTestSuite) TestNoCaptureOnSafeCell() {
	s.red.Tokens[0].Position = 4
	s.green.Tokens[0].Position = 8

	result := MoveToken(s.red, 0, 4, s.players())

	s.Equal(OutcomeMove, result.Outcome)
	s.Equal(8, s.green.Tokens[0].Position)
}

func (s *RulesTestSuite) TestNoCaptureOfOwnToken() {
	s.red.Tokens[0].Position = 10
	s.red.Tokens[1].Position = 14

	result := MoveToken(s.red, 0, 4, s.players())

	s.Equal(OutcomeMove, result.Outcome)
	s.Equal(14, s.red.Tokens[0].Position)
	s.Equal(14, s.red.Tokens[1].Position)
}

func (s *RulesTestSuite) TestNoCaptureOfInactivePlayer() {
	s.red.Tokens[0].Position = 10
	s.green.Tokens[0].Position = 14
	s.green.Active = false

	result := MoveToken(s.red, 0, 4, s.players())

	s.Equal(OutcomeMove, result.Outcome)
	s.Equal(14, s.green.Tokens[0].Position)
}

func (s *RulesTestSuite) TestNoCaptureOnHomeStretch() {
	s.red.Tokens[0].Position = 50
	s.green.Tokens[0].Position = 53

	result := MoveToken(s.red, 0, 3, s.players())

	s.Equal(OutcomeMove, result.Outcome)
	s.Equal(53, s.green.Tokens[0].Position)
}

func (s *RulesTestSuite) TestFinish() {
	s.red.Tokens[0].Position = 53

	result := MoveToken(s.red, 0, 4, s.players())

	s.Equal(OutcomeFinish, result.Outcome)
	s.True(result.GrantsExtraTurn)
	s.False(result.PlayerFullyFinished)
	s.True(s.red.Tokens[0].Finished)
	s.Equal(FinishPosition, s.red.Tokens[0].Position)
}

func (s *RulesTestSuite) TestLastFinishCompletesPlayer() {
	for i := 0; i < 3; i++ {
		s.red.Tokens[i] = models.Token{Position: FinishPosition, Finished: true}
	}
	s.red.Tokens[3].Position = 56

	result := MoveToken(s.red, 3, 1, s.players())

	s.Equal(OutcomeFinish, result.Outcome)
	s.True(result.PlayerFullyFinished)
	s.True(s.red.AllFinished())
}

func (s *RulesTestSuite) TestOvershootIsInvalid() {
	s.red.Tokens[0].Position = 55

	result := MoveToken(s.red, 0, 3, s.players())

	s.Equal(OutcomeInvalid, result.Outcome)
	s.Equal(55, s.red.Tokens[0].Position)
}

func (s *RulesTestSuite) TestTokenIndexOutOfRange() {
	s.Equal(OutcomeInvalid, MoveToken(s.red, 4, 6, s.players()).Outcome)
	s.Equal(OutcomeInvalid, MoveToken(s.red, -1, 6, s.players()).Outcome)
}

func (s *RulesTestSuite) TestSixGrantsExtraTurn() {
	result := HandleDiceRules(s.state, 6)

	s.True(result.ExtraTurn)
	s.False(result.Penalty)
	s.Equal(1, s.state.ConsecutiveSix)
	s.Equal(0, s.state.CurrentTurn)
}

func (s *RulesTestSuite) TestThirdSixForfeitsTurn() {
	HandleDiceRules(s.state, 6)
	HandleDiceRules(s.state, 6)
	result := HandleDiceRules(s.state, 6)

	s.False(result.ExtraTurn)
	s.True(result.Penalty)
	s.Equal(0, s.state.ConsecutiveSix)
	s.Equal(1, s.state.CurrentTurn)
}

func (s *RulesTestSuite) TestNonSixResetsCounterAndAdvances() {
	s.state.ConsecutiveSix = 2

	result := HandleDiceRules(s.state, 3)

	s.False(result.ExtraTurn)
	s.False(result.Penalty)
	s.Equal(0, s.state.ConsecutiveSix)
	s.Equal(1, s.state.CurrentTurn)
}

func (s *RulesTestSuite) TestNextTurnSkipsInactive() {
	s.green.Active = false

	NextTurn(s.state)
	s.Equal(2, s.state.CurrentTurn)

	NextTurn(s.state)
	s.Equal(0, s.state.CurrentTurn)
}

func (s *RulesTestSuite) TestNextTurnStaysWhenAloneActive() {
	s.green.Active = false
	s.yellow.Active = false

	NextTurn(s.state)
	s.Equal(0, s.state.CurrentTurn)
}

func (s *RulesTestSuite) TestResolveTurnKeepsTurnOnCaptureWithoutSix() {
	s.state.ConsecutiveSix = 1
	s.state.DiceValue = 4

	result := ResolveTurn(s.state, 4, &MoveResult{Outcome: OutcomeKill, GrantsExtraTurn: true})

	s.True(result.ExtraTurn)
	s.Equal(0, s.state.ConsecutiveSix)
	s.Equal(0, s.state.DiceValue)
	s.Equal(0, s.state.CurrentTurn)
}

func (s *RulesTestSuite) TestResolveTurnCountsSixOnSpawn() {
	s.state.ConsecutiveSix = 2
	s.state.DiceValue = 6

	result := ResolveTurn(s.state, 6, &MoveResult{Outcome: OutcomeSpawn, GrantsExtraTurn: true})

	s.True(result.Penalty)
	s.Equal(1, s.state.CurrentTurn)
}

func (s *RulesTestSuite) TestResolveTurnAdvancesOnPlainMove() {
	s.state.DiceValue = 2

	result := ResolveTurn(s.state, 2, &MoveResult{Outcome: OutcomeMove})

	s.False(result.ExtraTurn)
	s.Equal(1, s.state.CurrentTurn)
}

func (s *RulesTestSuite) TestPassTurn() {
	s.state.DiceValue = 5

	PassTurn(s.state, 5)

	s.Equal(0, s.state.DiceValue)
	s.Equal(1, s.state.CurrentTurn)
}

func (s *RulesTestSuite) TestChooseTokenPrefersCapture() {
	s.red.Tokens[0].Position = 2
	s.red.Tokens[1].Position = 10
	s.green.Tokens[0].Position = 16

	index, ok := ChooseToken(s.red, 6, s.players())

	s.True(ok)
	s.Equal(1, index)
}

func (s *RulesTestSuite) TestChooseTokenPrefersSpawnOnSix() {
	s.red.Tokens[0].Position = 3

	index, ok := ChooseToken(s.red, 6, s.players())

	s.True(ok)
	s.Equal(1, index)
}

func (s *RulesTestSuite) TestChooseTokenPrefersSafeCell() {
	s.red.Tokens[0].Position = 1
	s.red.Tokens[1].Position = 5

	index, ok := ChooseToken(s.red, 3, s.players())

	s.True(ok)
	s.Equal(1, index)
}

func (s *RulesTestSuite) TestChooseTokenWithoutLegalMove() {
	_, ok := ChooseToken(s.red, 3, s.players())

	s.False(ok)
}

// Plays many random turns and checks the token invariants after each move
func (s *RulesTestSuite) TestRandomPlayKeepsTokenInvariants() {
	roller := dice.New(&dice.Config{Seed: 7})

	for turn := 0; turn < 5000; turn++ {
		player := s.state.CurrentPlayer()
		value := RollDice(roller)

		index, ok := ChooseToken(player, value, s.players())
		if !ok {
			PassTurn(s.state, value)
			continue
		}

		before := player.Tokens[index]
		result := MoveToken(player, index, value, s.players())
		s.Require().True(result.Outcome.IsValid())
		if before.AtHome() {
			s.Equal(6, value)
		}

		for _, p := range s.players() {
			for _, t := range p.Tokens {
				s.GreaterOrEqual(t.Position, models.PositionHome)
				s.LessOrEqual(t.Position, FinishPosition)
				s.Equal(t.Position == FinishPosition, t.Finished)
			}
		}
		s.Less(s.state.ConsecutiveSix, MaxConsecutiveSix)

		if result.PlayerFullyFinished {
			return
		}
		ResolveTurn(s.state, value, result)
	}
}
