package journal

import (
	"github.com/salonledger/journal-builder/entity"
)

// InferDiscounts recomputes the discount column from price, tip and amount
// paid. The export's own discount field is filled inconsistently upstream; a
// positive shortfall between price+tip and the amount actually collected is
// definitionally a discount. A non-positive candidate leaves the source value
// alone, so a pre-existing discount is never forced negative. Mutates the
// slice in place and is idempotent.
func InferDiscounts(txs []entity.TransactionRecord) {
	for i := range txs {
		candidate := txs[i].Price.Add(txs[i].Tip).Sub(txs[i].AmountPaid)
		if candidate.IsPositive() {
			txs[i].Discount = candidate
		}
	}
}
