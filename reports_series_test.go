package pokerlog

import "testing"

func TestCumulativeSeries(t *testing.T) {
	got := CumulativeSeries(seedSessions())

	want := []SeriesPoint{
		{Label: "Mar 10", Profit: M(700, USD)},
		{Label: "Mar 11", Profit: M(2000, USD)},
		{Label: "Mar 12", Profit: M(1800, USD)},
		{Label: "Mar 13", Profit: M(2200, USD)},
		{Label: "Mar 14", Profit: M(2000, USD)},
		{Label: "Mar 15", Profit: M(3000, USD)},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Label != want[i].Label {
			t.Errorf("point[%d].Label = %q, want %q", i, got[i].Label, want[i].Label)
		}
		if !got[i].Profit.Equal(want[i].Profit) {
			t.Errorf("point[%d].Profit = %s, want %s", i, got[i].Profit, want[i].Profit)
		}
	}
}

func TestCumulativeSeries_Empty(t *testing.T) {
	got := CumulativeSeries(nil)
	if len(got) != 1 {
		t.Fatalf("got %d points, want a single zero point", len(got))
	}
	if !got[0].Profit.IsZero() || got[0].Label != "" {
		t.Errorf("got %+v, want a blank zero point", got[0])
	}
}

func TestCumulativeSeries_UnsortedInput(t *testing.T) {
	// Sessions arrive out of order; the running sum must follow start time.
	sessions := []Session{
		session(t, "2", "Aria", "2024-03-11T18:00:00Z", 1000, 1100),
		session(t, "1", "Bellagio", "2024-03-10T14:00:00Z", 500, 1200),
	}
	got := CumulativeSeries(sessions)
	if got[0].Label != "Mar 10" {
		t.Errorf("first point is %q, want %q", got[0].Label, "Mar 10")
	}
	if !got[1].Profit.Equal(M(800, USD)) {
		t.Errorf("final running profit = %s, want %s", got[1].Profit, M(800, USD))
	}
}
