package pokerlog

import "sort"

// LocationStats is the rollup of all sessions played at one location.
type LocationStats struct {
	Name   string
	Profit Money
	Record Record
}

// LocationRollup groups sessions by location (exact, case-sensitive match)
// and sums profit and the win/loss/draw record per group. The result is
// sorted by descending profit; on ties the first-encountered location comes
// first.
func LocationRollup(sessions []Session) []LocationStats {
	index := make(map[string]int)
	rollup := make([]LocationStats, 0)
	for _, s := range sessions {
		i, ok := index[s.Location]
		if !ok {
			i = len(rollup)
			index[s.Location] = i
			rollup = append(rollup, LocationStats{Name: s.Location, Profit: M(0, USD)})
		}
		profit := s.Profit()
		rollup[i].Profit = rollup[i].Profit.Add(profit)
		rollup[i].Record.add(profit)
	}
	sort.SliceStable(rollup, func(i, j int) bool {
		return rollup[i].Profit.GreaterThan(rollup[j].Profit)
	})
	return rollup
}
