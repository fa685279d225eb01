package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/salonledger/journal-builder/entity"
)

// LoadDepositReport parses the per-batch settlement/deposit export. Rows with
// an empty TranNum are batch-level adjustments and are kept; they correlate
// to no single transaction but still carry fee and net-amount signal.
func LoadDepositReport(sourceFile string) ([]entity.SettlementRecord, error) {
	log.Infof("[DepositParser] Reading deposit report: %s", sourceFile)

	file, err := os.Open(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open deposit file %s: %w", sourceFile, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV from deposit file %s: %w", sourceFile, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("deposit file %s is empty", sourceFile)
	}

	columns, ok := indexColumns(records[0], "TranNum")
	if !ok {
		return nil, fmt.Errorf("no header row with %q found in %s", "TranNum", sourceFile)
	}
	if _, hasNet := columns["NetAmount"]; !hasNet {
		return nil, fmt.Errorf("deposit file %s is missing required column %q", sourceFile, "NetAmount")
	}

	NormalizeTable(records[1:])

	var settlements []entity.SettlementRecord
	skipped := 0

	for _, row := range records[1:] {
		tranNum := strings.TrimSpace(cellAt(row, columns, "TranNum"))
		fee := moneyAt(row, columns, "Fee")
		net := moneyAt(row, columns, "NetAmount")

		if tranNum == "" && fee.IsZero() && net.IsZero() {
			skipped++
			continue
		}

		settlements = append(settlements, entity.SettlementRecord{
			TransactionNumber: tranNum,
			Fee:               fee,
			NetAmount:         net,
		})
	}

	log.Infof("[DepositParser] Parsed %d settlement rows, skipped %d blank rows", len(settlements), skipped)
	return settlements, nil
}
