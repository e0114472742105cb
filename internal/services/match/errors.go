package match

// MatchError is a custom error type for match errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

const (
	ErrNotOwner          MatchError = "only the room owner can do that"
	ErrUserBanned        MatchError = "user is temporarily banned"
	ErrMatchNotStarted   MatchError = "match has not started"
	ErrPlayerAlreadyLeft MatchError = "player already left"
	ErrFinalizeFailed    MatchError = "failed to settle match"

	ErrNilConfig           MatchError = "config cannot be nil"
	ErrNilRegistry         MatchError = "room registry cannot be nil"
	ErrNilRoomRepo         MatchError = "room repository cannot be nil"
	ErrNilWalletService    MatchError = "wallet service cannot be nil"
	ErrNilAntiCheatService MatchError = "anti-cheat service cannot be nil"
	ErrNilRewardService    MatchError = "reward service cannot be nil"
	ErrNilTimer            MatchError = "turn timer cannot be nil"
	ErrNilDiceRoller       MatchError = "dice roller cannot be nil"
	ErrNilClock            MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator    MatchError = "UUID generator cannot be nil"
)
