package pokerlog

import "time"

// seedSessions returns the example dataset written on first run, when no
// persisted state exists yet. Three locations, two stake levels, a mix of
// winning and losing outcomes. Also used as fixture data in tests.
func seedSessions() []Session {
	day := func(s string) time.Time {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			panic(err.Error())
		}
		return t
	}
	return []Session{
		{
			ID:        "1",
			Location:  "Bellagio",
			Stakes:    "2/5 NL",
			StartTime: day("2024-03-10T14:00:00Z"),
			EndTime:   day("2024-03-10T20:00:00Z"),
			BuyIn:     M(500, USD),
			CashOut:   M(1200, USD),
			Notes:     "Good session, hit set over set",
		},
		{
			ID:        "2",
			Location:  "Aria",
			Stakes:    "5/10 NL",
			StartTime: day("2024-03-11T18:00:00Z"),
			EndTime:   day("2024-03-12T02:00:00Z"),
			BuyIn:     M(1000, USD),
			CashOut:   M(2300, USD),
			Notes:     "Crazy action game",
		},
		{
			ID:        "3",
			Location:  "Wynn",
			Stakes:    "2/5 NL",
			StartTime: day("2024-03-12T15:00:00Z"),
			EndTime:   day("2024-03-12T21:00:00Z"),
			BuyIn:     M(500, USD),
			CashOut:   M(300, USD),
			Notes:     "Tough lineup",
		},
		{
			ID:        "4",
			Location:  "Bellagio",
			Stakes:    "2/5 NL",
			StartTime: day("2024-03-13T16:00:00Z"),
			EndTime:   day("2024-03-13T23:00:00Z"),
			BuyIn:     M(500, USD),
			CashOut:   M(900, USD),
			Notes:     "Standard session",
		},
		{
			ID:        "5",
			Location:  "Aria",
			Stakes:    "5/10 NL",
			StartTime: day("2024-03-14T19:00:00Z"),
			EndTime:   day("2024-03-15T03:00:00Z"),
			BuyIn:     M(1000, USD),
			CashOut:   M(800, USD),
			Notes:     "Lost big pot with AA",
		},
		{
			ID:        "6",
			Location:  "Wynn",
			Stakes:    "2/5 NL",
			StartTime: day("2024-03-15T14:00:00Z"),
			EndTime:   day("2024-03-15T22:00:00Z"),
			BuyIn:     M(500, USD),
			CashOut:   M(1500, USD),
			Notes:     "Great game, lots of action",
		},
	}
}
