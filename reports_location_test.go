package pokerlog

import "testing"

func TestLocationRollup(t *testing.T) {
	got := LocationRollup(seedSessions())

	// Bellagio +1100 (2-0-0), Aria +1100 (1-1-0), Wynn +800 (1-1-0).
	// Bellagio and Aria tie on profit; Bellagio was seen first and must
	// keep its place.
	want := []LocationStats{
		{Name: "Bellagio", Profit: M(1100, USD), Record: Record{Wins: 2}},
		{Name: "Aria", Profit: M(1100, USD), Record: Record{Wins: 1, Losses: 1}},
		{Name: "Wynn", Profit: M(800, USD), Record: Record{Wins: 1, Losses: 1}},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d locations, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i].Name {
			t.Errorf("location[%d].Name = %q, want %q", i, got[i].Name, want[i].Name)
		}
		if !got[i].Profit.Equal(want[i].Profit) {
			t.Errorf("location[%d].Profit = %s, want %s", i, got[i].Profit, want[i].Profit)
		}
		if got[i].Record != want[i].Record {
			t.Errorf("location[%d].Record = %s, want %s", i, got[i].Record, want[i].Record)
		}
	}
}

func TestLocationRollup_Empty(t *testing.T) {
	if got := LocationRollup(nil); len(got) != 0 {
		t.Errorf("got %d locations, want none", len(got))
	}
}

func TestLocationRollup_CaseSensitive(t *testing.T) {
	sessions := []Session{
		session(t, "1", "bellagio", "2024-03-10T14:00:00Z", 500, 600),
		session(t, "2", "Bellagio", "2024-03-11T14:00:00Z", 500, 700),
	}
	got := LocationRollup(sessions)
	if len(got) != 2 {
		t.Fatalf("got %d locations, want 2 distinct ones", len(got))
	}
}
