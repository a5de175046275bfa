package pokerlog

import "fmt"

// Record is a win/loss/draw count over a set of sessions. A session wins
// when its profit is positive, loses when negative, draws when zero.
type Record struct {
	Wins, Losses, Draws int
}

func (r *Record) add(profit Money) {
	switch {
	case profit.IsPositive():
		r.Wins++
	case profit.IsNegative():
		r.Losses++
	default:
		r.Draws++
	}
}

// String renders the record in its "W-L-D" display form.
func (r Record) String() string {
	return fmt.Sprintf("%d-%d-%d", r.Wins, r.Losses, r.Draws)
}

// LifetimeStats is the at-a-glance overview of all recorded sessions.
type LifetimeStats struct {
	Sessions int
	Profit   Money
	ROI      Percent
	Record   Record
}

// NewLifetimeStats computes total profit, ROI and the win/loss/draw record
// over a snapshot of sessions. It is total: an empty snapshot yields zeroes,
// and ROI is defined as 0 when the total buy-in is 0.
func NewLifetimeStats(sessions []Session) LifetimeStats {
	stats := LifetimeStats{Sessions: len(sessions)}
	totalBuyIn := M(0, USD)
	stats.Profit = M(0, USD)
	for _, s := range sessions {
		profit := s.Profit()
		stats.Profit = stats.Profit.Add(profit)
		totalBuyIn = totalBuyIn.Add(s.BuyIn)
		stats.Record.add(profit)
	}
	if !totalBuyIn.IsZero() {
		roi := stats.Profit.Amount().Div(totalBuyIn.Amount())
		stats.ROI = Percent(roi.InexactFloat64() * 100)
	}
	return stats
}
