package pokerlog

import (
	"errors"
	"testing"
	"time"
)

func validDraft() *Draft {
	d := NewDraft()
	d.Location = "Bellagio"
	d.Stakes = "2/5 NL"
	d.BuyIn = "500"
	d.CashOut = "1200"
	return d
}

func TestDraft_Submit(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(*Draft)
		wantField string
	}{
		{name: "valid", mutate: func(d *Draft) {}},
		{
			name:      "missing location",
			mutate:    func(d *Draft) { d.Location = "" },
			wantField: "location",
		},
		{
			name:      "missing stakes",
			mutate:    func(d *Draft) { d.Stakes = "" },
			wantField: "stakes",
		},
		{
			name:      "empty buy-in",
			mutate:    func(d *Draft) { d.BuyIn = "" },
			wantField: "buy-in",
		},
		{
			name:      "non-numeric buy-in",
			mutate:    func(d *Draft) { d.BuyIn = "five hundred" },
			wantField: "buy-in",
		},
		{
			name:      "negative cash-out",
			mutate:    func(d *Draft) { d.CashOut = "-100" },
			wantField: "cash-out",
		},
		{
			name:      "ends before it starts",
			mutate:    func(d *Draft) { d.End = d.Start.Add(-time.Hour) },
			wantField: "end time",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(d)
			session, err := d.Submit()

			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("Submit() error = %v", err)
				}
				if session.ID == "" {
					t.Error("submitted session has no id")
				}
				if !session.Profit().Equal(M(700, USD)) {
					t.Errorf("Profit() = %s, want %s", session.Profit(), M(700, USD))
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Submit() error = %v, want a *ValidationError", err)
			}
			if verr.Field != tc.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tc.wantField)
			}
		})
	}
}

func TestDraft_SubmitResets(t *testing.T) {
	d := validDraft()
	d.Notes = "some notes"
	d.Hand.Preflop = "raise 15"
	d.AddHand()

	if _, err := d.Submit(); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if d.Location != "" || d.Stakes != "" || d.BuyIn != "" || d.Notes != "" {
		t.Errorf("draft fields not reset after submit: %+v", d)
	}
	if len(d.Hands()) != 0 {
		t.Errorf("draft kept %d hands after submit", len(d.Hands()))
	}
}

func TestDraft_SubmitKeepsStateOnError(t *testing.T) {
	d := validDraft()
	d.BuyIn = "oops"
	if _, err := d.Submit(); err == nil {
		t.Fatal("Submit() accepted an invalid draft")
	}
	if d.Location != "Bellagio" || d.CashOut != "1200" {
		t.Errorf("failed submit wiped the draft: %+v", d)
	}
}

func TestDraft_AddHand(t *testing.T) {
	d := NewDraft()

	// An empty preflop is discarded.
	d.Hand.Flop = "bet 30"
	d.AddHand()
	if len(d.Hands()) != 0 {
		t.Fatalf("hand with empty preflop was kept")
	}
	if d.Hand.Flop != "" {
		t.Error("draft hand was not reset after a discarded entry")
	}

	d.Hand.Preflop = "raise 15, two callers"
	d.Hand.Result = "won 90"
	firstID := d.Hand.ID
	d.AddHand()

	hands := d.Hands()
	if len(hands) != 1 {
		t.Fatalf("got %d hands, want 1", len(hands))
	}
	if hands[0].ID != firstID {
		t.Errorf("kept hand lost its id: %q != %q", hands[0].ID, firstID)
	}
	if d.Hand.Preflop != "" {
		t.Error("draft hand not blank after AddHand")
	}
	if d.Hand.ID == firstID {
		t.Error("next draft hand reuses the previous id")
	}
}

func TestDraft_SubmittedSessionCarriesHands(t *testing.T) {
	d := validDraft()
	d.Hand.Preflop = "limp, raise to 25"
	d.AddHand()
	d.Hand.Preflop = "3bet to 60"
	d.AddHand()

	session, err := d.Submit()
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(session.HandHistories) != 2 {
		t.Fatalf("got %d hand histories, want 2", len(session.HandHistories))
	}
	if session.HandHistories[1].Preflop != "3bet to 60" {
		t.Errorf("hands out of order: %+v", session.HandHistories)
	}
}
