package journal

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"github.com/salonledger/journal-builder/entity"
)

// journalHeader is the column layout the downstream accounting import
// expects. Order and the empty-string placeholders for the unused side of
// each line must be preserved.
var journalHeader = []string{
	"Journal No.",
	"Journal Date",
	"Received From",
	"Account",
	"Description",
	"Payment Method",
	"Ref No.",
	"Debits",
	"Credits",
}

// WriteJournalCSV serializes the finished journal lines. Amounts get their
// leading currency symbol here and nowhere earlier; accumulation upstream is
// purely numeric.
func WriteJournalCSV(destFile string, lines []entity.JournalLine) error {
	file, err := os.Create(destFile)
	if err != nil {
		return fmt.Errorf("failed to create journal file %s: %w", destFile, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(journalHeader); err != nil {
		return fmt.Errorf("failed to write journal header: %w", err)
	}

	for _, line := range lines {
		record := []string{
			line.JournalNumber,
			line.JournalDate,
			line.ReceivedFrom,
			line.AccountName,
			line.Description,
			line.PaymentMethod,
			line.RefNo,
			FormatMoney(line.Debit),
			FormatMoney(line.Credit),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write journal line: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush journal file %s: %w", destFile, err)
	}

	log.Infof("[JournalWriter] Wrote %d journal lines to %s", len(lines), destFile)
	return nil
}

// FormatMoney renders a populated amount as "$12.34" and an unpopulated one
// as the empty string the import format requires.
func FormatMoney(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return ""
	}
	return "$" + amount.Decimal.StringFixed(2)
}
