package main

import (
	"flag"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/salonledger/journal-builder/entity"
	journal "github.com/salonledger/journal-builder/usecase/journal"
)

// One-shot runner: reconcile a transaction list against a deposit report and
// write the journal CSV, no service stack required.
func main() {
	transactionFile := flag.String("transactions", "", "path to the transaction list CSV export")
	depositFile := flag.String("deposits", "", "path to the deposit report CSV export")
	dateStr := flag.String("date", time.Now().Format("2006-01-02"), "journal date (yyyy-mm-dd)")
	outputFile := flag.String("output", "output.csv", "path for the journal entry CSV")
	flag.Parse()

	if *transactionFile == "" || *depositFile == "" {
		log.Fatalf("both -transactions and -deposits are required")
	}

	journalDate, err := time.Parse("2006-01-02", *dateStr)
	if err != nil {
		log.Fatalf("invalid -date %q: %v", *dateStr, err)
	}

	lines, summary, err := journal.BuildJournalFile(
		entity.DefaultJournalConfig(),
		*transactionFile,
		*depositFile,
		journalDate,
		*outputFile,
	)
	if err != nil {
		log.Fatalf("journal build failed: %v", err)
	}

	log.Infof("wrote %d journal lines (%d blocks, %d matched, %d ghost, %d skipped) to %s",
		len(lines), summary.Blocks, summary.MatchedRows, summary.GhostRows, summary.SkippedRows, *outputFile)
}
