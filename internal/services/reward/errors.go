package reward

// RewardError is a custom error type for reward errors
type RewardError string

// Error implements the error interface
func (e RewardError) Error() string {
	return string(e)
}

const (
	ErrNilConfig           RewardError = "config cannot be nil"
	ErrNilSettlementRepo   RewardError = "settlement repository cannot be nil"
	ErrInvalidBonusPercent RewardError = "bonus percent cannot be negative"
	ErrInvalidPlayerCount  RewardError = "player count must be between two and four"
	ErrInvalidEntryFee     RewardError = "entry fee cannot be negative"
	ErrInvalidRanking      RewardError = "ranking must list every player exactly once"
	ErrAlreadySettled      RewardError = "room already settled"
	ErrSettlementNotFound  RewardError = "settlement not found"
)
