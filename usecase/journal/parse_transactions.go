package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"github.com/salonledger/journal-builder/entity"
)

var checkoutTimeLayouts = []string{
	"1/2/2006 3:04 PM",
	"1/2/2006 15:04",
	"1/2/2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LoadTransactionList parses the per-transaction ledger export. The export
// carries a report preamble above the real header, so the parser scans for
// the row containing "Transaction ID" and ignores everything before it.
// Rows whose monetary columns all normalize to zero are dropped, which also
// removes the trailing summary row. Row order is preserved as read.
func LoadTransactionList(sourceFile string) ([]entity.TransactionRecord, error) {
	log.Infof("[TransactionParser] Reading transaction list: %s", sourceFile)

	file, err := os.Open(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction file %s: %w", sourceFile, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV from transaction file %s: %w", sourceFile, err)
	}

	headerIdx := -1
	var columns map[string]int
	for i, row := range records {
		if cols, ok := indexColumns(row, "Transaction ID"); ok {
			headerIdx = i
			columns = cols
			break
		}
	}
	if headerIdx == -1 {
		return nil, fmt.Errorf("no header row with %q found in %s", "Transaction ID", sourceFile)
	}

	for _, required := range []string{"Transaction ID", "Transaction Type", "Price", "Amt paid"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("transaction file %s is missing required column %q", sourceFile, required)
		}
	}

	NormalizeTable(records[headerIdx+1:])

	var transactions []entity.TransactionRecord
	skipped := 0

	for _, row := range records[headerIdx+1:] {
		id := strings.TrimSpace(cellAt(row, columns, "Transaction ID"))
		if id == "" {
			skipped++
			continue
		}

		price := moneyAt(row, columns, "Price")
		tip := moneyAt(row, columns, "Tip")
		amountPaid := moneyAt(row, columns, "Amt paid")
		discount := moneyAt(row, columns, "Disc")

		// All-zero monetary rows are padding or the summary row.
		if price.IsZero() && tip.IsZero() && amountPaid.IsZero() && discount.IsZero() {
			skipped++
			continue
		}

		quantity := 0
		if qty := strings.TrimSpace(cellAt(row, columns, "Qty")); qty != "" {
			if n, err := strconv.Atoi(qty); err == nil {
				quantity = n
			}
		}

		transactions = append(transactions, entity.TransactionRecord{
			TransactionID:         id,
			Type:                  canonicalType(cellAt(row, columns, "Transaction Type")),
			CheckoutTime:          parseCheckoutTime(cellAt(row, columns, "Checkout Date")),
			Price:                 price,
			Tip:                   tip,
			AmountPaid:            amountPaid,
			Discount:              discount,
			Quantity:              quantity,
			GiftCertificateNumber: strings.TrimSpace(cellAt(row, columns, "GiftCertificate No")),
		})
	}

	log.Infof("[TransactionParser] Parsed %d transactions, skipped %d rows", len(transactions), skipped)
	return transactions, nil
}

func indexColumns(row []string, marker string) (map[string]int, bool) {
	found := false
	cols := make(map[string]int, len(row))
	for i, cell := range row {
		name := strings.TrimSpace(cell)
		if name == "" {
			continue
		}
		cols[name] = i
		if name == marker {
			found = true
		}
	}
	return cols, found
}

func cellAt(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// moneyAt reads a monetary cell. Cells were already normalized column-wide;
// an unparseable non-empty value is a malformed currency cell, logged and
// treated as zero for this category.
func moneyAt(row []string, columns map[string]int, name string) decimal.Decimal {
	raw := cellAt(row, columns, name)
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero
	}
	d, ok := NormalizeCurrency(raw)
	if !ok {
		log.Warnf("[TransactionParser] malformed currency value %q in column %q", raw, name)
		return decimal.Zero
	}
	return d
}

func canonicalType(raw string) entity.TransactionType {
	switch s := strings.ToLower(strings.TrimSpace(raw)); {
	case s == "service":
		return entity.TypeService
	case strings.Contains(s, "add"):
		return entity.TypeServiceAddOn
	case strings.Contains(s, "membership"):
		return entity.TypeMembership
	case strings.Contains(s, "gift"):
		return entity.TypeGiftCard
	case strings.Contains(s, "refund"):
		return entity.TypeRefund
	default:
		return entity.TypeOther
	}
}

func parseCheckoutTime(raw string) time.Time {
	s := strings.TrimSpace(raw)
	for _, layout := range checkoutTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	// Ordering is positional; a missing timestamp does not break the scan.
	return time.Time{}
}
