package journal

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "plain number", raw: "12.50", want: "12.5", wantOK: true},
		{name: "currency symbol", raw: "$12.50", want: "12.5", wantOK: true},
		{name: "parenthesized negative", raw: "(12.50)", want: "-12.5", wantOK: true},
		{name: "symbol inside parens", raw: "($12.50)", want: "-12.5", wantOK: true},
		{name: "minus with symbol", raw: "-$12.50", want: "-12.5", wantOK: true},
		{name: "thousands separators", raw: "$1,234.56", want: "1234.56", wantOK: true},
		{name: "already normalized", raw: "-12.5", want: "-12.5", wantOK: true},
		{name: "surrounding whitespace", raw: "  $3.00 ", want: "3", wantOK: true},
		{name: "zero", raw: "0", want: "0", wantOK: true},
		{name: "empty", raw: "", wantOK: false},
		{name: "text column", raw: "Membership", wantOK: false},
		{name: "date column", raw: "7/18/2025 1:30 PM", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeCurrency(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("NormalizeCurrency(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.String() != tt.want {
				t.Errorf("NormalizeCurrency(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeCurrencyIdempotent(t *testing.T) {
	for _, raw := range []string{"$12.50", "(0.75)", "-3", "1,000"} {
		first, ok := NormalizeCurrency(raw)
		if !ok {
			t.Fatalf("NormalizeCurrency(%q) did not parse", raw)
		}
		second, ok := NormalizeCurrency(first.String())
		if !ok {
			t.Fatalf("normalized value %s did not re-parse", first)
		}
		if !first.Equal(second) {
			t.Errorf("normalization not idempotent for %q: %s then %s", raw, first, second)
		}
	}
}

func TestNormalizeCellPassthrough(t *testing.T) {
	// Non-monetary cells survive the column-wide transform unchanged.
	for _, raw := range []string{"Service Add-On", "TX-1001", "", "7/18/2025"} {
		if got := NormalizeCell(raw); got != raw {
			t.Errorf("NormalizeCell(%q) = %q, want passthrough", raw, got)
		}
	}
	if got := NormalizeCell("($5.00)"); got != "-5" {
		t.Errorf("NormalizeCell((\"$5.00\")) = %q, want -5", got)
	}
}

func TestNormalizeTable(t *testing.T) {
	rows := [][]string{
		{"TX-1", "$50.00", "(2.50)", "Service"},
		{"TX-2", "0", "note", "$1,000.00"},
	}
	NormalizeTable(rows)

	want := [][]string{
		{"TX-1", "50", "-2.5", "Service"},
		{"TX-2", "0", "note", "1000"},
	}
	for i := range want {
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Errorf("cell [%d][%d] = %q, want %q", i, j, rows[i][j], want[i][j])
			}
		}
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}
