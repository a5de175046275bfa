// Package renderer turns pokerlog reports into markdown for terminal
// display. Each report gets one function returning a markdown string; the
// cmd package decides how to print it.
package renderer

import (
	"time"

	"github.com/railbird/pokerlog"
)

// timeFormat is the display rendering of session timestamps.
const timeFormat = "2006-01-02 15:04"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Minute).String()
}

// profitCell renders a profit with an explicit sign so gains and losses
// read apart in a table.
func profitCell(m pokerlog.Money) string {
	return m.SignedString()
}
