package match

import (
	"sort"

	"github.com/KirkDiggler/ludo/internal/models"
)

// BuildRanking orders players best first: fully finished players, then by
// finished token count, then players still engaged above those who left.
// Remaining ties keep turn order.
func BuildRanking(players []*models.Player) []string {
	ranked := append([]*models.Player(nil), players...)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.AllFinished() != b.AllFinished() {
			return a.AllFinished()
		}
		if a.FinishedCount() != b.FinishedCount() {
			return a.FinishedCount() > b.FinishedCount()
		}
		return a.Active && !b.Active
	})

	ids := make([]string, 0, len(ranked))
	for _, p := range ranked {
		ids = append(ids, p.UserID)
	}
	return ids
}
