package reward

// winnersByPlayerCount is how many top-ranked players get paid
var winnersByPlayerCount = map[int]int{
	2: 1,
	3: 2,
	4: 3,
}

// CalculateWinners returns the number of paid places for a match size
func CalculateWinners(playerCount int) (int, error) {
	winners, ok := winnersByPlayerCount[playerCount]
	if !ok {
		return 0, ErrInvalidPlayerCount
	}
	return winners, nil
}

// Compute works out pot, bonus and per-winner share
func Compute(entryFee int64, playerCount int, bonusPercent int64) (*Payout, error) {
	if entryFee < 0 {
		return nil, ErrInvalidEntryFee
	}

	if bonusPercent < 0 {
		return nil, ErrInvalidBonusPercent
	}

	winners, err := CalculateWinners(playerCount)
	if err != nil {
		return nil, err
	}

	totalPot := entryFee * int64(playerCount)
	bonus := totalPot * bonusPercent / 100
	pool := totalPot + bonus

	return &Payout{
		TotalPot:   totalPot,
		Bonus:      bonus,
		RewardPool: pool,
		Winners:    winners,
		Share:      pool / int64(winners),
	}, nil
}
