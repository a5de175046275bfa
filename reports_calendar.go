package pokerlog

import (
	"slices"

	"github.com/railbird/pokerlog/date"
)

// DayProfit is one calendar day's bucket of the daily rollup.
type DayProfit struct {
	Profit   Money
	Sessions []Session // members in insertion order
}

// DailyRollup maps each UTC calendar day to its profit and member sessions.
type DailyRollup map[date.Date]*DayProfit

// NewDailyRollup partitions sessions by the UTC calendar day of their start
// time. Every session lands in exactly one bucket; per-day member order is
// the snapshot's order.
func NewDailyRollup(sessions []Session) DailyRollup {
	rollup := make(DailyRollup)
	for _, s := range sessions {
		day := s.Day()
		bucket, ok := rollup[day]
		if !ok {
			bucket = &DayProfit{Profit: M(0, USD)}
			rollup[day] = bucket
		}
		bucket.Profit = bucket.Profit.Add(s.Profit())
		bucket.Sessions = append(bucket.Sessions, s)
	}
	return rollup
}

// Days returns the rollup's days in chronological order, for deterministic
// rendering.
func (r DailyRollup) Days() []date.Date {
	days := make([]date.Date, 0, len(r))
	for day := range r {
		days = append(days, day)
	}
	slices.SortFunc(days, func(a, b date.Date) int {
		switch {
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		default:
			return 0
		}
	})
	return days
}

// MonthStats summarizes one calendar month of play.
type MonthStats struct {
	Month       date.Range
	TotalProfit Money
	Sessions    int
	WinningDays int // days with strictly positive profit
	LosingDays  int // days with strictly negative profit; break-even days count as neither
}

// NewMonthStats restricts a daily rollup to the days inside the given range
// and sums profit, session count and winning/losing days. Total: an empty
// rollup or a month with no play yields zeroes.
func NewMonthStats(daily DailyRollup, month date.Range) MonthStats {
	stats := MonthStats{Month: month, TotalProfit: M(0, USD)}
	for day, bucket := range daily {
		if !month.Contains(day) {
			continue
		}
		stats.TotalProfit = stats.TotalProfit.Add(bucket.Profit)
		stats.Sessions += len(bucket.Sessions)
		switch {
		case bucket.Profit.IsPositive():
			stats.WinningDays++
		case bucket.Profit.IsNegative():
			stats.LosingDays++
		}
	}
	return stats
}
