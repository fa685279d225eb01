package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/salonledger/journal-builder/entity"
)

func TestWriteJournalCSV(t *testing.T) {
	lines := []entity.JournalLine{
		{
			JournalNumber: "VG - Dep - 07/18",
			JournalDate:   "07/18/2025",
			ReceivedFrom:  "Vagaro",
			AccountName:   "01-017 Vagaro Fees",
			Description:   "Vagaro Merchant Services Deposit",
			Debit:         decimal.NullDecimal{Decimal: mustDecimal(t, "2"), Valid: true},
		},
		{
			JournalNumber: "VG - Dep - 07/18",
			JournalDate:   "07/18/2025",
			ReceivedFrom:  "Massage Therapy Customers",
			AccountName:   "02-003 Massage Income",
			Description:   "Vagaro Merchant Services Deposit",
			Credit:        decimal.NullDecimal{Decimal: mustDecimal(t, "50"), Valid: true},
		},
	}

	path := filepath.Join(t.TempDir(), "journal.csv")
	if err := WriteJournalCSV(path, lines); err != nil {
		t.Fatalf("WriteJournalCSV: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("rows = %d, want header + 2 lines", len(records))
	}

	wantHeader := []string{"Journal No.", "Journal Date", "Received From", "Account", "Description", "Payment Method", "Ref No.", "Debits", "Credits"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}

	// Debit line: formatted amount plus empty credit placeholder.
	if records[1][7] != "$2.00" || records[1][8] != "" {
		t.Errorf("debit row amounts = %q/%q, want $2.00 and empty", records[1][7], records[1][8])
	}
	if records[2][7] != "" || records[2][8] != "$50.00" {
		t.Errorf("credit row amounts = %q/%q, want empty and $50.00", records[2][7], records[2][8])
	}
	// Empty Payment Method / Ref No. placeholders survive the round trip.
	if records[1][5] != "" || records[1][6] != "" {
		t.Errorf("placeholders = %q/%q, want empty", records[1][5], records[1][6])
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(decimal.NullDecimal{}); got != "" {
		t.Errorf("empty amount = %q, want empty string", got)
	}
	got := FormatMoney(decimal.NullDecimal{Decimal: mustDecimal(t, "12.5"), Valid: true})
	if got != "$12.50" {
		t.Errorf("amount = %q, want $12.50", got)
	}
}
