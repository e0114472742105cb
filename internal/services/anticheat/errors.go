package anticheat

// AntiCheatError is a custom error type for anti-cheat errors
type AntiCheatError string

// Error implements the error interface
func (e AntiCheatError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        AntiCheatError = "config cannot be nil"
	ErrNilStrikeRepo    AntiCheatError = "strike repository cannot be nil"
	ErrNilWalletService AntiCheatError = "wallet service cannot be nil"
	ErrNilClock         AntiCheatError = "clock cannot be nil"
	ErrInvalidFine      AntiCheatError = "fines cannot be negative"
	ErrInvalidMaxStrike AntiCheatError = "strike threshold must be at least one"
	ErrInvalidTempBan   AntiCheatError = "temporary ban must be positive"
)
