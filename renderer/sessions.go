package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/railbird/pokerlog"
)

// SessionsMarkdown renders the session list as a table, newest first.
func SessionsMarkdown(sessions []pokerlog.Session) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sessions")

	sorted := pokerlog.ByStartTime(sessions)
	rows := make([][]string, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		s := sorted[i]
		rows = append(rows, []string{
			s.ID,
			formatTime(s.StartTime),
			s.Location,
			s.Stakes,
			profitCell(s.Profit()),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Id", "Start", "Location", "Stakes", "Profit"},
		Rows:   rows,
	})

	return doc.String()
}

// SessionMarkdown renders one session in full, including hand histories.
func SessionMarkdown(s pokerlog.Session) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s %s", s.Location, s.Stakes))
	doc.PlainText(fmt.Sprintf("%s to %s (%s)",
		formatTime(s.StartTime), formatTime(s.EndTime), formatDuration(s.Duration())))

	doc.Table(md.TableSet{
		Header: []string{"Buy-in", "Cash-out", "Profit"},
		Rows: [][]string{
			{s.BuyIn.String(), s.CashOut.String(), profitCell(s.Profit())},
		},
	})

	if s.Notes != "" {
		doc.H2("Notes")
		doc.PlainText(s.Notes)
	}

	if len(s.HandHistories) > 0 {
		doc.H2(fmt.Sprintf("Hands (%d)", len(s.HandHistories)))
		for i, h := range s.HandHistories {
			doc.H3(fmt.Sprintf("Hand %d", i+1))
			rows := [][]string{{"Preflop", h.Preflop}}
			if h.Flop != "" {
				rows = append(rows, []string{"Flop", h.Flop})
			}
			if h.Turn != "" {
				rows = append(rows, []string{"Turn", h.Turn})
			}
			if h.River != "" {
				rows = append(rows, []string{"River", h.River})
			}
			if h.Result != "" {
				rows = append(rows, []string{"Result", h.Result})
			}
			if h.Notes != "" {
				rows = append(rows, []string{"Notes", h.Notes})
			}
			doc.Table(md.TableSet{
				Header: []string{"Street", "Action"},
				Rows:   rows,
			})
		}
	}

	return doc.String()
}
