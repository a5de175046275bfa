package date

import "fmt"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// Contains return true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// MonthOf returns the calendar month containing d, first day to last day.
func MonthOf(d Date) Range {
	first := New(d.Year(), d.Month(), 1)
	return Range{From: first, To: New(d.Year(), d.Month()+1, 0)}
}

// ParseMonth parses a "2006-01" month identifier into its Range.
func ParseMonth(str string) (Range, error) {
	d, err := Parse(str + "-1")
	if err != nil {
		return Range{}, fmt.Errorf("invalid month %q want format \"2006-01\": %w", str, err)
	}
	return MonthOf(d), nil
}

// Identifier computes a unique identifier for a month range, e.g. "2024-03".
func (r Range) Identifier() string {
	return r.From.Format("2006-01")
}
