package wallet

// WalletError is a custom error type for wallet errors
type WalletError string

// Error implements the error interface
func (e WalletError) Error() string {
	return string(e)
}

const (
	ErrUserNotFound        WalletError = "user not found"
	ErrInsufficientBalance WalletError = "insufficient balance"
	ErrNilConfig           WalletError = "config cannot be nil"
	ErrNilWalletRepo       WalletError = "wallet repository cannot be nil"
	ErrNilCooldownRepo     WalletError = "cooldown repository cannot be nil"
	ErrNilRandom           WalletError = "random source cannot be nil"
	ErrInvalidDailyBonus   WalletError = "daily bonus range is invalid"
)
