package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/railbird/pokerlog"
)

// CalendarMarkdown renders one month: headline stats then a per-day table
// restricted to days inside the month.
func CalendarMarkdown(stats pokerlog.MonthStats, daily pokerlog.DailyRollup) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(stats.Month.From.Format("January 2006"))
	doc.PlainText(fmt.Sprintf("%s over %d sessions, %dW - %dL days",
		stats.TotalProfit.SignedString(), stats.Sessions, stats.WinningDays, stats.LosingDays))

	rows := make([][]string, 0, len(daily))
	for _, day := range daily.Days() {
		if !stats.Month.Contains(day) {
			continue
		}
		bucket := daily[day]
		rows = append(rows, []string{
			day.String(),
			profitCell(bucket.Profit),
			fmt.Sprintf("%d", len(bucket.Sessions)),
		})
	}
	if len(rows) > 0 {
		doc.Table(md.TableSet{
			Header: []string{"Day", "Profit", "Sessions"},
			Rows:   rows,
		})
	}

	return doc.String()
}
