package pokerlog

// SeriesPoint is one point of the cumulative profit chart.
type SeriesPoint struct {
	Label  string // short calendar-date rendering of the session's start
	Profit Money  // running profit up to and including this session
}

// seriesLabelFormat is the short date rendering used for chart labels.
const seriesLabelFormat = "Jan 2"

// CumulativeSeries computes the running profit over sessions ordered by
// start time (stable on ties). An empty snapshot yields a single zero point
// so the chart never renders empty.
func CumulativeSeries(sessions []Session) []SeriesPoint {
	if len(sessions) == 0 {
		return []SeriesPoint{{Label: "", Profit: M(0, USD)}}
	}
	sorted := ByStartTime(sessions)
	points := make([]SeriesPoint, 0, len(sorted))
	running := M(0, USD)
	for _, s := range sorted {
		running = running.Add(s.Profit())
		points = append(points, SeriesPoint{
			Label:  s.StartTime.UTC().Format(seriesLabelFormat),
			Profit: running,
		})
	}
	return points
}
