package pokerlog

import (
	"encoding/json"
	"time"

	"github.com/railbird/pokerlog/date"
	"github.com/shopspring/decimal"
)

// Session is one recorded poker-playing session. Sessions are immutable once
// appended to a Store; there is no update or delete.
type Session struct {
	ID            string        // unique within the store
	Location      string        // e.g. "Bellagio", "Home Game"
	Stakes        string        // e.g. "2/5 NL"
	StartTime     time.Time
	EndTime       time.Time
	BuyIn         Money
	CashOut       Money
	Notes         string
	HandHistories []HandHistory // insertion order, display-relevant
}

// Profit is the session's financial outcome: cash-out minus buy-in.
func (s Session) Profit() Money {
	return s.CashOut.Sub(s.BuyIn)
}

// Duration returns how long the session lasted.
func (s Session) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// Day returns the UTC calendar day the session started on. All calendar
// grouping uses this one truncation so the daily and monthly views agree.
func (s Session) Day() date.Date {
	return date.Of(s.StartTime)
}

// HandHistory is a free-text record of one poker hand's action streets,
// attached to a session. Only the preflop street is required.
type HandHistory struct {
	ID      string
	Preflop string
	Flop    string
	Turn    string
	River   string
	Result  string
	Notes   string
}

// Persisted layout: RFC3339 timestamps, amounts as plain numbers, optional
// hand streets omitted.

// MarshalJSON implements the json.Marshaler interface for Session.
func (s Session) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", s.ID)
	w.Append("location", s.Location)
	w.Append("stakes", s.Stakes)
	w.Append("startTime", s.StartTime.UTC().Format(time.RFC3339))
	w.Append("endTime", s.EndTime.UTC().Format(time.RFC3339))
	w.Append("buyIn", s.BuyIn.Amount())
	w.Append("cashOut", s.CashOut.Amount())
	w.Append("notes", s.Notes)
	if len(s.HandHistories) > 0 {
		w.Append("handHistories", s.HandHistories)
	} else {
		w.Append("handHistories", []HandHistory{})
	}
	return w.MarshalJSON()
}

// sessionRecord is a specialized struct for decoding json. Amounts are read
// as bare decimals and re-assembled into Money.
type sessionRecord struct {
	ID            string          `json:"id"`
	Location      string          `json:"location"`
	Stakes        string          `json:"stakes"`
	StartTime     time.Time       `json:"startTime"`
	EndTime       time.Time       `json:"endTime"`
	BuyIn         decimal.Decimal `json:"buyIn"`
	CashOut       decimal.Decimal `json:"cashOut"`
	Notes         string          `json:"notes"`
	HandHistories []HandHistory   `json:"handHistories"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Session.
func (s *Session) UnmarshalJSON(data []byte) error {
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*s = Session{
		ID:            rec.ID,
		Location:      rec.Location,
		Stakes:        rec.Stakes,
		StartTime:     rec.StartTime,
		EndTime:       rec.EndTime,
		BuyIn:         M(rec.BuyIn, USD),
		CashOut:       M(rec.CashOut, USD),
		Notes:         rec.Notes,
		HandHistories: rec.HandHistories,
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for HandHistory.
func (h HandHistory) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", h.ID)
	w.Append("preflop", h.Preflop)
	w.Optional("flop", h.Flop)
	w.Optional("turn", h.Turn)
	w.Optional("river", h.River)
	w.Optional("result", h.Result)
	w.Optional("notes", h.Notes)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for HandHistory.
func (h *HandHistory) UnmarshalJSON(data []byte) error {
	var rec struct {
		ID      string `json:"id"`
		Preflop string `json:"preflop"`
		Flop    string `json:"flop"`
		Turn    string `json:"turn"`
		River   string `json:"river"`
		Result  string `json:"result"`
		Notes   string `json:"notes"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*h = HandHistory(rec)
	return nil
}
