package journal

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/salonledger/journal-builder/entity"
)

// ErrUnbalancedBatch is the fail-fast assertion for a block whose emitted
// debits and credits do not sum to zero even after the balancing line.
var ErrUnbalancedBatch = errors.New("journal batch debits and credits do not balance")

type category int

const (
	catFee category = iota
	catIncome
	catTips
	catDiscount
	catMembership
	catGiftCard
	numCategories
)

// reconciliationBlock accumulates category totals for one contiguous span of
// settled transactions. Every category always holds a defined (possibly zero)
// decimal, so there is no conditional-existence bookkeeping anywhere; a zero
// category simply emits nothing.
type reconciliationBlock struct {
	amounts [numCategories]decimal.Decimal

	// singleDebitMode means the batch had no negative net-amount rows, the
	// whole batch fee was summed once up front, and per-row fee accumulation
	// is suppressed.
	singleDebitMode bool

	rows int
}

func newBlock() *reconciliationBlock {
	return &reconciliationBlock{}
}

// add folds a contribution into the category's single accumulated amount.
// A block never produces two lines for the same category.
func (b *reconciliationBlock) add(cat category, amount decimal.Decimal) {
	b.amounts[cat] = b.amounts[cat].Add(amount)
}

// residual is sum(credit categories) - sum(debit categories). A positive
// residual needs a balancing debit, a negative one a balancing credit.
func (b *reconciliationBlock) residual() decimal.Decimal {
	credits := b.amounts[catIncome].
		Add(b.amounts[catTips]).
		Add(b.amounts[catMembership]).
		Add(b.amounts[catGiftCard])
	debits := b.amounts[catFee].Add(b.amounts[catDiscount])
	return credits.Sub(debits)
}

// emit flushes the block to journal lines in category-fixed order: fee,
// income, tips, discount, membership, gift card, totals. Zero categories are
// dropped. The totals line carries whatever residual is needed to make the
// block sum to zero, and the balance is asserted before returning.
func (b *reconciliationBlock) emit(cfg entity.JournalConfig) ([]entity.JournalLine, error) {
	lines := make([]entity.JournalLine, 0, numCategories+1)

	appendLine := func(account, party string, amount decimal.Decimal, debitSide bool) {
		if amount.IsZero() {
			return
		}
		// A category that nets negative flips to the opposite side, keeping
		// exactly one of debit/credit populated.
		if amount.IsNegative() {
			amount = amount.Neg()
			debitSide = !debitSide
		}
		line := entity.JournalLine{
			JournalNumber: cfg.JournalNumber,
			JournalDate:   cfg.JournalDate,
			ReceivedFrom:  party,
			AccountName:   account,
			Description:   cfg.Description,
		}
		if debitSide {
			line.Debit = decimal.NullDecimal{Decimal: amount, Valid: true}
		} else {
			line.Credit = decimal.NullDecimal{Decimal: amount, Valid: true}
		}
		lines = append(lines, line)
	}

	appendLine(cfg.FeeAccount, cfg.FeePayee, b.amounts[catFee], true)
	appendLine(cfg.IncomeAccount, cfg.ReceivedFrom, b.amounts[catIncome], false)
	appendLine(cfg.TipsAccount, cfg.ReceivedFrom, b.amounts[catTips], false)
	appendLine(cfg.DiscountAccount, cfg.ReceivedFrom, b.amounts[catDiscount], true)
	appendLine(cfg.MembershipAccount, cfg.ReceivedFrom, b.amounts[catMembership], false)
	appendLine(cfg.GiftCardAccount, cfg.ReceivedFrom, b.amounts[catGiftCard], false)

	if res := b.residual(); !res.IsZero() {
		appendLine(cfg.TotalsAccount, cfg.ReceivedFrom, res, true)
	}

	var debits, credits decimal.Decimal
	for _, line := range lines {
		if line.Debit.Valid {
			debits = debits.Add(line.Debit.Decimal)
		}
		if line.Credit.Valid {
			credits = credits.Add(line.Credit.Decimal)
		}
	}
	if !debits.Equal(credits) {
		return nil, fmt.Errorf("%w: debits=%s credits=%s", ErrUnbalancedBatch, debits, credits)
	}

	return lines, nil
}
