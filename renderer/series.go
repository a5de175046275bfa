package renderer

import (
	"bytes"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/railbird/pokerlog"
	"github.com/shopspring/decimal"
)

// barWidth is the number of cells the largest absolute profit spans.
const barWidth = 24

// SeriesMarkdown renders the cumulative profit series as a table with a
// text bar chart.
func SeriesMarkdown(points []pokerlog.SeriesPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cumulative Profit")

	max := decimal.Zero
	for _, p := range points {
		if abs := p.Profit.Amount().Abs(); abs.GreaterThan(max) {
			max = abs
		}
	}

	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{p.Label, p.Profit.SignedString(), bar(p.Profit, max)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Profit", ""},
		Rows:   rows,
	})

	return doc.String()
}

func bar(profit pokerlog.Money, max decimal.Decimal) string {
	if max.IsZero() {
		return ""
	}
	cells := profit.Amount().Abs().Div(max).Mul(decimal.NewFromInt(barWidth)).IntPart()
	if cells == 0 && !profit.IsZero() {
		cells = 1
	}
	glyph := "█"
	if profit.IsNegative() {
		glyph = "░"
	}
	return strings.Repeat(glyph, int(cells))
}
