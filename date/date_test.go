package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2024, 3, 10)
	d2 := New(2024, 3, 10)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestOf(t *testing.T) {
	// 23:30 in UTC-2 is already the next UTC day.
	loc := time.FixedZone("UTC-2", -2*60*60)
	instant := time.Date(2024, 3, 10, 23, 30, 0, 0, loc)
	if got, want := Of(instant), New(2024, 3, 11); got != want {
		t.Errorf("Of() = %s, want %s", got, want)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		str     string
		want    Date
		wantErr bool
	}{
		{str: "2024-03-10", want: New(2024, 3, 10)},
		{str: "2024-3-1", want: New(2024, 3, 1)},
		{str: "March 10", wantErr: true},
		{str: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.str)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) accepted invalid input", tc.str)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tc.str, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.str, got, tc.want)
		}
	}
}

func TestAddNormalizes(t *testing.T) {
	if got, want := New(2024, 2, 28).Add(2), New(2024, 3, 1); got != want {
		t.Errorf("Add(2) = %s, want %s", got, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	want := New(2024, 3, 10)
	raw, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(raw) != `"2024-03-10"` {
		t.Errorf("Marshal() = %s, want %q", raw, `"2024-03-10"`)
	}
	var got Date
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != want {
		t.Errorf("round trip changed the date: %s != %s", got, want)
	}
}
