package pokerlog

import "testing"

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		want    Money
		wantErr bool
	}{
		{name: "integer", text: "500", want: M(500, USD)},
		{name: "decimal", text: "512.50", want: M(512.50, USD)},
		{name: "padded", text: "  500 ", want: M(500, USD)},
		{name: "zero", text: "0", want: M(0, USD)},
		{name: "empty", text: "", wantErr: true},
		{name: "blank", text: "   ", wantErr: true},
		{name: "words", text: "five hundred", wantErr: true},
		{name: "currency sign", text: "$500", wantErr: true},
		{name: "negative", text: "-20", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMoney(tc.text, USD)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseMoney(%q) accepted invalid input", tc.text)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoney(%q) error = %v", tc.text, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseMoney(%q) = %s, want %s", tc.text, got, tc.want)
			}
		})
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(0, USD).SignedString(); got != "-" {
		t.Errorf("zero renders as %q, want %q", got, "-")
	}
	if got := M(700, USD).SignedString(); got[0] != '+' {
		t.Errorf("positive amount %q lacks its sign", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	profit := M(1200, USD).Sub(M(500, USD))
	if !profit.Equal(M(700, USD)) {
		t.Errorf("1200 - 500 = %s", profit)
	}
	if profit.Currency() != USD {
		t.Errorf("currency lost in subtraction: %q", profit.Currency())
	}

	loss := M(300, USD).Sub(M(500, USD))
	if !loss.IsNegative() {
		t.Errorf("300 - 500 should be negative, got %s", loss)
	}
}

func TestPercentString(t *testing.T) {
	if got := Percent(75).String(); got != "75.0%" {
		t.Errorf("String() = %q, want %q", got, "75.0%")
	}
	if got := Percent(-12.34).SignedString(); got != "-12.3%" {
		t.Errorf("SignedString() = %q, want %q", got, "-12.3%")
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString() = %q, want %q", got, "-")
	}
}
