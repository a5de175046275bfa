package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/railbird/pokerlog"
)

// StatsMarkdown renders the lifetime overview: headline stats plus the
// per-location rollup.
func StatsMarkdown(stats pokerlog.LifetimeStats, locations []pokerlog.LocationStats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Lifetime Stats")
	doc.PlainText(fmt.Sprintf("%d sessions recorded", stats.Sessions))

	doc.Table(md.TableSet{
		Header: []string{"Profit", "ROI", "Record"},
		Rows: [][]string{
			{profitCell(stats.Profit), stats.ROI.String(), stats.Record.String()},
		},
	})

	if len(locations) > 0 {
		doc.H2("Locations")
		rows := make([][]string, 0, len(locations))
		for _, loc := range locations {
			rows = append(rows, []string{loc.Name, profitCell(loc.Profit), loc.Record.String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Location", "Profit", "Record"},
			Rows:   rows,
		})
	}

	return doc.String()
}
