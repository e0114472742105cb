package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/ludo/internal/models"
	"github.com/KirkDiggler/ludo/internal/rules"
	"github.com/KirkDiggler/ludo/internal/services/anticheat"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	return &service{
		rand: config.random(),
	}, nil
}

// pick selects one message variant
func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetJoinRoomMessage returns a message for when a player joins a room
func (s *service) GetJoinRoomMessage(ctx context.Context, input *GetJoinRoomMessageInput) (*GetJoinRoomMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	if input.AlreadyJoined {
		switch {
		case input.Status.IsForming():
			messages = []string{
				"You're already seated, eager beaver! Wait for the owner to start.",
				"Patience, grasshopper! You already have a seat at this board.",
				"Double-dipping, are we? You're already in this room!",
			}
		case input.Status.IsActive():
			messages = []string{
				"You're already playing! Watch the board for your turn.",
				"Found your tokens again? They're right where you left them.",
			}
		default:
			messages = []string{
				"This match is over. Start another one with `/ludo create`.",
				"I know, I miss that match too. Maybe start another one?",
			}
		}
	} else {
		name := input.PlayerName
		messages = []string{
			fmt.Sprintf("Welcome to the board, %s! Your %s tokens are waiting at home.", name, input.Color),
			fmt.Sprintf("A new challenger appears! %s takes the %s seat.", name, input.Color),
			fmt.Sprintf("%s pulls up a chair and picks %s. Roll a six to get going!", name, input.Color),
			fmt.Sprintf("Fresh tokens on the board! %s is playing %s.", name, input.Color),
		}
		if input.EntryFee > 0 {
			for i := range messages {
				messages[i] += fmt.Sprintf(" (%d coins paid)", input.EntryFee)
			}
		}
	}

	return &GetJoinRoomMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetRoomStatusMessage returns a dynamic message based on the room status
func (s *service) GetRoomStatusMessage(ctx context.Context, input *GetRoomStatusMessageInput) (*GetRoomStatusMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var messages []string
	switch input.Status {
	case models.RoomStatusForming:
		open := input.MaxPlayers - input.PlayerCount
		messages = []string{
			fmt.Sprintf("Gather 'round! %d of %d seats are open.", open, input.MaxPlayers),
			fmt.Sprintf("A Ludo board is forming. %d seat(s) left, grab one!", open),
			fmt.Sprintf("Looking for %d more brave soul(s) to roll some dice.", open),
		}
		if input.EntryFee > 0 {
			messages = append(messages, fmt.Sprintf("Entry is %d coins. Winner takes the pot (well, most of it).", input.EntryFee))
		}
	case models.RoomStatusActive:
		messages = []string{
			"The match is on! Roll a six to leave home.",
			"Tokens are moving. Watch out for that safe square!",
			"Game in progress! Captures send tokens straight back home.",
			"May the dice be ever in your favor.",
		}
	case models.RoomStatusFinished:
		messages = []string{
			"Match over! Coins have been paid out.",
			"The dice have spoken. Check your balance!",
			"Another match for the books.",
		}
	default:
		return &GetRoomStatusMessageOutput{
			Message: "Ludo match in progress. May the odds be in your favor!",
		}, nil
	}

	return &GetRoomStatusMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetRollResultMessage returns a dynamic message for a dice roll result
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	subject := input.PlayerName
	if input.IsPersonalMessage {
		subject = "You"
	}

	var titles, messages []string
	switch {
	case input.Penalty:
		titles = []string{"Three Sixes!", "Too Lucky!", "Busted!"}
		messages = []string{
			fmt.Sprintf("%s rolled a third six in a row. The dice call that cheating, turn over!", subject),
			fmt.Sprintf("Three sixes? Nobody is that lucky. %s lose(s) the turn.", subject),
		}
	case input.Passed:
		titles = []string{
			fmt.Sprintf("A %d... and nowhere to go", input.DiceValue),
			"Stuck!",
			"No Moves",
		}
		messages = []string{
			fmt.Sprintf("%s rolled a %d but no token can move. Next!", subject, input.DiceValue),
			fmt.Sprintf("A %d for %s, and the tokens just sit there. Turn passes.", input.DiceValue, subject),
			fmt.Sprintf("%s rolled a %d. Everyone's stuck at home, better luck next turn.", subject, input.DiceValue),
		}
	case input.DiceValue == rules.SpawnRoll:
		titles = []string{"SIX!", "Nat 6!", "Perfect Roll!", "DANGER ZONE!"}
		messages = []string{
			fmt.Sprintf("%s rolled a 6! Bring a token out or push ahead, and roll again after.", subject),
			fmt.Sprintf("The dice gods favor %s today! That's a 6.", subject),
			fmt.Sprintf("A wild 6 appears for %s! Extra roll incoming.", subject),
		}
	case input.DiceValue == 1:
		titles = []string{"Snake Eye!", "Nat 1!", "Baby Steps"}
		messages = []string{
			fmt.Sprintf("%s rolled a 1. Every journey starts with a single step.", subject),
			fmt.Sprintf("Oof! A 1 for %s. Inching forward.", subject),
		}
	default:
		titles = []string{
			fmt.Sprintf("%d!", input.DiceValue),
			fmt.Sprintf("It's a %d!", input.DiceValue),
			fmt.Sprintf("Roll: %d", input.DiceValue),
		}
		messages = []string{
			fmt.Sprintf("%s rolled a %d. Pick a token to move.", subject, input.DiceValue),
			fmt.Sprintf("The dice landed on %d for %s.", input.DiceValue, subject),
			fmt.Sprintf("A solid %d from %s!", input.DiceValue, subject),
		}
	}

	return &GetRollResultMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
	}, nil
}

// GetMoveResultMessage returns a message for a token move
func (s *service) GetMoveResultMessage(ctx context.Context, input *GetMoveResultMessageInput) (*GetMoveResultMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := input.PlayerName
	var title string
	var messages []string
	switch input.Outcome {
	case rules.OutcomeSpawn:
		title = "Out of the Gate!"
		messages = []string{
			fmt.Sprintf("%s brings a fresh token onto the board.", name),
			fmt.Sprintf("A new token for %s enters the race!", name),
		}
	case rules.OutcomeKill:
		title = "Captured!"
		captured := input.CapturedName
		if captured == "" {
			captured = "someone"
		}
		messages = []string{
			fmt.Sprintf("%s sends %s's token packing back home!", name, captured),
			fmt.Sprintf("Ouch! %s just captured %s. Back to the start!", name, captured),
			fmt.Sprintf("%s shows no mercy. %s's token goes home.", name, captured),
		}
	case rules.OutcomeFinish:
		title = "Home Sweet Home!"
		messages = []string{
			fmt.Sprintf("%s gets a token all the way home!", name),
			fmt.Sprintf("One more token safe for %s.", name),
		}
	default:
		title = "Moved"
		messages = []string{
			fmt.Sprintf("%s moves a token along.", name),
			fmt.Sprintf("%s advances. Nothing to see here.", name),
		}
	}

	message := s.pick(messages)
	if input.ExtraTurn {
		message += " Roll again!"
	}

	return &GetMoveResultMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}

// GetMatchFinishedMessage returns the payout announcement
func (s *service) GetMatchFinishedMessage(ctx context.Context, input *GetMatchFinishedMessageInput) (*GetMatchFinishedMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.WinnerNames) == 0 {
		return &GetMatchFinishedMessageOutput{
			Title:   "Match Over",
			Message: "The match ended without a winner.",
		}, nil
	}

	winners := strings.Join(input.WinnerNames, ", ")
	messages := []string{
		fmt.Sprintf("Congratulations %s! Each winner takes %d coins.", winners, input.Share),
		fmt.Sprintf("The dice have spoken: %s walk(s) away with %d coins each.", winners, input.Share),
		fmt.Sprintf("%s cash(es) in for %d coins apiece. Rematch?", winners, input.Share),
	}

	message := s.pick(messages)
	if input.Bonus > 0 {
		message += fmt.Sprintf(" (pot %d + %d bonus)", input.TotalPot, input.Bonus)
	}

	return &GetMatchFinishedMessageOutput{
		Title:   "Match Over!",
		Message: message,
	}, nil
}

// GetPenaltyMessage returns a message for an AFK or leave penalty
func (s *service) GetPenaltyMessage(ctx context.Context, input *GetPenaltyMessageInput) (*GetPenaltyMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var b strings.Builder
	switch input.Reason {
	case anticheat.ReasonAFK:
		b.WriteString(s.pick([]string{
			fmt.Sprintf("%s fell asleep at the board.", input.PlayerName),
			fmt.Sprintf("Hello? %s? The turn timer ran out.", input.PlayerName),
		}))
	default:
		b.WriteString(s.pick([]string{
			fmt.Sprintf("%s rage quit mid-game.", input.PlayerName),
			fmt.Sprintf("%s left the table while the dice were still warm.", input.PlayerName),
		}))
	}

	if input.FineApplied {
		fmt.Fprintf(&b, " Fined %d coins.", input.Fine)
	}
	fmt.Fprintf(&b, " Strikes: %d.", input.Strikes)
	if input.Banned {
		fmt.Fprintf(&b, " Banned until %s.", input.BannedUntil.UTC().Format(time.RFC3339))
	}

	return &GetPenaltyMessageOutput{
		Message: b.String(),
	}, nil
}

// GetDailyBonusMessage returns a message for a daily bonus claim
func (s *service) GetDailyBonusMessage(ctx context.Context, input *GetDailyBonusMessageInput) (*GetDailyBonusMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !input.Claimed {
		wait := input.Remaining.Round(time.Minute)
		return &GetDailyBonusMessageOutput{
			Message: s.pick([]string{
				fmt.Sprintf("Easy there! Your next bonus is ready in %s.", wait),
				fmt.Sprintf("Already claimed today. Come back in %s.", wait),
			}),
		}, nil
	}

	return &GetDailyBonusMessageOutput{
		Message: s.pick([]string{
			fmt.Sprintf("Here's %d coins on the house! Balance: %d.", input.Amount, input.Balance),
			fmt.Sprintf("Daily bonus: +%d coins. You now have %d.", input.Amount, input.Balance),
			fmt.Sprintf("Ka-ching! %d coins added, %d in the bank.", input.Amount, input.Balance),
		}),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch input.ErrorType {
	case ErrorTypeNotYourTurn:
		messages = []string{
			"Patience! It's not your turn yet.",
			"Hold your horses! Someone else is rolling now.",
			"Wait your turn! The dice will come to you soon.",
		}
	case ErrorTypeAlreadyRolled:
		messages = []string{
			"You've already rolled! Now pick a token to move.",
			"One roll at a time! Move a token first.",
		}
	case ErrorTypeRollFirst:
		messages = []string{
			"Roll the dice before moving a token.",
			"Tokens don't move themselves. Roll first!",
		}
	case ErrorTypeIllegalMove:
		messages = []string{
			"That token can't move with this roll. Try another one.",
			"Nope, that move isn't legal. Pick a highlighted token.",
		}
	case ErrorTypeMatchNotActive:
		messages = []string{
			"There's no match running right now.",
			"The board is quiet. Start a match first.",
		}
	case ErrorTypeRoomFull:
		messages = []string{
			"This room is packed! Try again when someone leaves.",
			"No room at the inn! Every seat is taken.",
		}
	case ErrorTypeColorTaken:
		messages = []string{
			"That color is taken. Pick another one.",
		}
	case ErrorTypeAlreadyJoined:
		messages = []string{
			"You're already in this room! One set of tokens per player.",
			"Easy there! You can't join twice.",
		}
	case ErrorTypeAlreadyStarted:
		messages = []string{
			"This match is already rolling! Catch the next one.",
			"Too late, hotshot! The tokens are already moving.",
		}
	case ErrorTypeNotEnoughPlayers:
		messages = []string{
			"Ludo needs at least two players. Find a friend!",
			"Playing alone? Wait for someone to join first.",
		}
	case ErrorTypeNotOwner:
		messages = []string{
			"Only the room owner can do that.",
			"Nice try! That button belongs to the owner.",
		}
	case ErrorTypeBanned:
		messages = []string{
			"You're on a timeout for too many strikes. Come back later.",
			"Banned! Too many AFKs and rage quits. Cool off for a bit.",
		}
	case ErrorTypeInsufficientBalance:
		messages = []string{
			"You can't afford the entry fee. Try `/ludo daily` for free coins.",
			"Your wallet is looking thin. Claim a daily bonus first.",
		}
	case ErrorTypeRoomNotFound:
		messages = []string{
			"No room here. Use `/ludo create` to open one.",
			"There's no board in this channel yet.",
		}
	case ErrorTypeChannelBusy:
		messages = []string{
			"This channel already has a room. Finish that one first.",
		}
	case ErrorTypeNotInRoom:
		messages = []string{
			"You're not part of this room.",
			"Join the room before doing that.",
		}
	default:
		messages = []string{
			"Something went wrong! Try again later.",
			"Oops! The dice got confused. Try again.",
			"Technical difficulties! The dice are being recalibrated.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
