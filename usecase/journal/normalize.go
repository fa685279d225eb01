package journal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeCurrency converts a display-formatted monetary cell into a signed
// decimal. Parenthesized values are negative magnitudes ("(12.50)" is -12.50),
// a leading currency symbol and thousands separators are stripped. The second
// return value is false when the cell does not parse as a number.
func NormalizeCurrency(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	// The symbol can sit inside a leading minus ("-$12.50") or the parens.
	s = strings.TrimSpace(strings.Replace(s, "$", "", 1))
	s = strings.Replace(s, ",", "", -1)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative && d.IsPositive() {
		d = d.Neg()
	}
	return d, true
}

// NormalizeCell is the best-effort column-wide transform applied to every
// cell of both record sets before reconciliation begins. Monetary-looking
// cells come back as canonical numeric strings; anything else passes through
// unchanged, since not every column is monetary.
func NormalizeCell(raw string) string {
	d, ok := NormalizeCurrency(raw)
	if !ok {
		return raw
	}
	return d.String()
}

// NormalizeTable applies NormalizeCell to every cell in place and returns the
// same slice for convenience.
func NormalizeTable(rows [][]string) [][]string {
	for _, row := range rows {
		for j, cell := range row {
			row[j] = NormalizeCell(cell)
		}
	}
	return rows
}
