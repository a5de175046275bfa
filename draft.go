package pokerlog

import (
	"fmt"
	"time"
)

// Draft accumulates user-entered fields for one session before submission.
// Amounts are kept as free text until Submit parses them, mirroring the
// entry form. The zero value is not usable; create drafts with NewDraft.
type Draft struct {
	Location string
	Stakes   string
	Start    time.Time
	End      time.Time
	BuyIn    string
	CashOut  string
	Notes    string

	Hand  DraftHand
	hands []HandHistory
}

// DraftHand is the hand history currently being entered.
type DraftHand struct {
	ID      string
	Preflop string
	Flop    string
	Turn    string
	River   string
	Result  string
	Notes   string
}

// NewDraft returns a blank draft with start and end times defaulted to now.
func NewDraft() *Draft {
	now := time.Now()
	return &Draft{Start: now, End: now, Hand: blankHand()}
}

func blankHand() DraftHand {
	return DraftHand{ID: NewID()}
}

// Hands returns the hand histories accumulated so far, in entry order.
func (d *Draft) Hands() []HandHistory {
	return append([]HandHistory(nil), d.hands...)
}

// AddHand appends the current draft hand to the session's hand-history
// sequence, but only when its preflop street is filled in; an empty hand is
// silently discarded. Either way the draft hand resets to blank with a
// fresh id, ready for the next entry.
func (d *Draft) AddHand() {
	if d.Hand.Preflop != "" {
		d.hands = append(d.hands, HandHistory{
			ID:      d.Hand.ID,
			Preflop: d.Hand.Preflop,
			Flop:    d.Hand.Flop,
			Turn:    d.Hand.Turn,
			River:   d.Hand.River,
			Result:  d.Hand.Result,
			Notes:   d.Hand.Notes,
		})
	}
	d.Hand = blankHand()
}

// Submit validates the draft and produces a fully-formed session with a
// freshly generated id. On success all draft state resets to blank. On
// failure the draft is left untouched so the caller can correct and retry.
//
// Submit rejects amounts that do not parse as non-negative numbers and end
// times before the start time; either would let a corrupt record into
// storage and poison every aggregate.
func (d *Draft) Submit() (Session, error) {
	if d.Location == "" {
		return Session{}, &ValidationError{Field: "location", Err: fmt.Errorf("required field is empty")}
	}
	if d.Stakes == "" {
		return Session{}, &ValidationError{Field: "stakes", Err: fmt.Errorf("required field is empty")}
	}
	buyIn, err := ParseMoney(d.BuyIn, USD)
	if err != nil {
		return Session{}, &ValidationError{Field: "buy-in", Err: err}
	}
	cashOut, err := ParseMoney(d.CashOut, USD)
	if err != nil {
		return Session{}, &ValidationError{Field: "cash-out", Err: err}
	}
	if d.End.Before(d.Start) {
		return Session{}, &ValidationError{Field: "end time", Err: fmt.Errorf("ends before it starts")}
	}

	session := Session{
		ID:            NewID(),
		Location:      d.Location,
		Stakes:        d.Stakes,
		StartTime:     d.Start,
		EndTime:       d.End,
		BuyIn:         buyIn,
		CashOut:       cashOut,
		Notes:         d.Notes,
		HandHistories: d.hands,
	}
	*d = *NewDraft()
	return session, nil
}
