package journal

import (
	"errors"
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"github.com/salonledger/journal-builder/entity"
)

// ErrAmbiguousNegativeAdjustment is fatal: a deposit report with more than
// one negative net-amount row cannot be attributed safely and must be
// inspected by the preparer before anything is posted.
var ErrAmbiguousNegativeAdjustment = errors.New("deposit report has multiple negative net-amount adjustment rows")

// Engine reconciles one period's transaction ledger against one deposit
// report and builds the balanced journal lines for it. The deposit report is
// treated as a single settlement batch.
type Engine struct {
	cfg entity.JournalConfig
}

func NewEngine(cfg entity.JournalConfig) *Engine {
	return &Engine{cfg: cfg}
}

// RunSummary counts what one reconciliation scan saw. It is serialized into
// the process log's result column.
type RunSummary struct {
	TotalTransactions int      `json:"total_transactions"`
	MatchedRows       int      `json:"matched_rows"`
	GhostRows         int      `json:"ghost_rows"`
	SkippedRows       int      `json:"skipped_rows"`
	MissingFieldRows  int      `json:"missing_field_rows"`
	Blocks            int      `json:"blocks"`
	Lines             int      `json:"lines"`
	Warnings          []string `json:"warnings,omitempty"`
}

// Reconcile scans the chronologically ordered ledger once, accumulating one
// block at a time and flushing it to journal lines on the block boundary.
// Row-level problems are logged and counted; batch-level ambiguity and a
// failed balance assertion abort the run before any line is returned.
func (e *Engine) Reconcile(txs []entity.TransactionRecord, settlements []entity.SettlementRecord) ([]entity.JournalLine, *RunSummary, error) {
	summary := &RunSummary{TotalTransactions: len(txs)}

	InferDiscounts(txs)

	settled := make(map[string]entity.SettlementRecord, len(settlements))
	var adjustments []entity.SettlementRecord
	var batchFee decimal.Decimal
	for _, s := range settlements {
		if s.TransactionNumber != "" {
			settled[s.TransactionNumber] = s
		}
		if s.NetAmount.IsNegative() {
			adjustments = append(adjustments, s)
		}
		batchFee = batchFee.Add(s.Fee)
	}

	if len(adjustments) > 1 {
		return nil, nil, fmt.Errorf("%w: found %d", ErrAmbiguousNegativeAdjustment, len(adjustments))
	}
	singleDebit := len(adjustments) == 0
	var adjustmentNet decimal.Decimal
	if !singleDebit {
		adjustmentNet = adjustments[0].NetAmount
	}

	minIdx, maxIdx, rangeErr := EligibleRange(txs, settled)
	hasRange := rangeErr == nil
	if rangeErr != nil {
		if !errors.Is(rangeErr, ErrNoSettlementOverlap) {
			return nil, nil, rangeErr
		}
		log.Warnf("[Engine] %v; only standalone blocks will be emitted", rangeErr)
		summary.Warnings = append(summary.Warnings, rangeErr.Error())
	}

	var out []entity.JournalLine
	var block *reconciliationBlock
	blockIsBatch := false

	flush := func() error {
		if block == nil {
			return nil
		}
		lines, err := block.emit(e.cfg)
		if err != nil {
			return err
		}
		log.Infof("[Engine] block flushed: %d rows -> %d lines", block.rows, len(lines))
		out = append(out, lines...)
		summary.Blocks++
		block = nil
		blockIsBatch = false
		return nil
	}

	for i := range txs {
		tx := &txs[i]
		inRange := hasRange && i >= minIdx && i <= maxIdx
		settlement, matched := settled[tx.TransactionID]

		if !inRange {
			// The batch block closes as soon as the scan moves past its range.
			if blockIsBatch {
				if err := flush(); err != nil {
					return nil, nil, err
				}
			}
			// Outside the settled span only standalone membership income is
			// recognized; anything else closes an open standalone block.
			if tx.Type != entity.TypeMembership {
				summary.SkippedRows++
				if err := flush(); err != nil {
					return nil, nil, err
				}
				continue
			}
			if tx.Quantity <= 0 {
				log.Warnf("[Engine] membership row %s has no quantity, skipped", tx.TransactionID)
				summary.MissingFieldRows++
				continue
			}
			credit := tx.Price.Mul(decimal.NewFromInt(int64(tx.Quantity)))
			if !credit.IsPositive() {
				summary.SkippedRows++
				continue
			}
			if block == nil {
				block = newBlock()
			}
			block.add(catMembership, credit)
			block.rows++
			continue
		}

		// Entering the settled span flushes any open standalone block first.
		if block != nil && !blockIsBatch {
			if err := flush(); err != nil {
				return nil, nil, err
			}
		}
		if block == nil {
			block = newBlock()
			blockIsBatch = true
			block.singleDebitMode = singleDebit
			if singleDebit {
				// No adjustment signal in the deposit: the batch-wide fee is
				// the sum of every settlement fee, applied exactly once.
				block.add(catFee, batchFee)
			}
		}
		block.rows++

		if matched {
			summary.MatchedRows++
			if !block.singleDebitMode {
				block.add(catFee, settlement.Fee.Add(adjustmentNet))
			}
		} else {
			summary.GhostRows++
		}

		switch tx.Type {
		case entity.TypeMembership:
			if tx.Quantity <= 0 {
				log.Warnf("[Engine] membership row %s has no quantity, skipped", tx.TransactionID)
				summary.MissingFieldRows++
				continue
			}
			credit := tx.Price.Mul(decimal.NewFromInt(int64(tx.Quantity)))
			if credit.IsPositive() {
				block.add(catMembership, credit)
			}
		case entity.TypeGiftCard:
			block.add(catGiftCard, tx.Price)
		default:
			// Services, add-ons, refunds and anything else settled in the
			// span contribute sale income, tips and the inferred discount.
			block.add(catIncome, tx.Price)
			block.add(catTips, tx.Tip)
			block.add(catDiscount, tx.Discount)
		}
	}

	if err := flush(); err != nil {
		return nil, nil, err
	}

	summary.Lines = len(out)
	return out, summary, nil
}
