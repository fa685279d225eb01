package journal

import (
	"errors"

	"github.com/salonledger/journal-builder/entity"
)

// ErrNoSettlementOverlap means the deposit report matched nothing in the
// transaction ledger. Callers treat it as a warning, not a failure.
var ErrNoSettlementOverlap = errors.New("no settlement rows match any ledger transaction")

// EligibleRange finds the contiguous index span of ledger rows covered by the
// settlement batch: the min and max index among transactions whose ID appears
// in the settlement set. Rows inside the span with no settlement row of their
// own ("ghost" transactions) were still settled as part of the same lump-sum
// deposit and must be recognized, so the whole inclusive span is eligible.
func EligibleRange(txs []entity.TransactionRecord, settled map[string]entity.SettlementRecord) (int, int, error) {
	minIdx, maxIdx := -1, -1
	for i := range txs {
		if _, ok := settled[txs[i].TransactionID]; !ok {
			continue
		}
		if minIdx == -1 {
			minIdx = i
		}
		maxIdx = i
	}
	if minIdx == -1 {
		return 0, -1, ErrNoSettlementOverlap
	}
	return minIdx, maxIdx, nil
}
