package journal

import (
	"testing"

	"github.com/salonledger/journal-builder/entity"
)

func TestInferDiscounts(t *testing.T) {
	tests := []struct {
		name         string
		price        string
		tip          string
		amountPaid   string
		discount     string
		wantDiscount string
	}{
		{
			name:  "positive shortfall overwrites source discount",
			price: "50", tip: "5", amountPaid: "45",
			discount:     "0",
			wantDiscount: "10",
		},
		{
			name:  "zero shortfall preserves source discount",
			price: "50", tip: "0", amountPaid: "50",
			discount:     "3",
			wantDiscount: "3",
		},
		{
			name:  "overpayment never forces discount negative",
			price: "50", tip: "0", amountPaid: "60",
			discount:     "2",
			wantDiscount: "2",
		},
		{
			name:  "missing tip defaults to zero",
			price: "40", tip: "0", amountPaid: "30",
			discount:     "",
			wantDiscount: "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := entity.TransactionRecord{
				Price:      mustDecimal(t, tt.price),
				Tip:        mustDecimal(t, tt.tip),
				AmountPaid: mustDecimal(t, tt.amountPaid),
			}
			if tt.discount != "" {
				tx.Discount = mustDecimal(t, tt.discount)
			}

			txs := []entity.TransactionRecord{tx}
			InferDiscounts(txs)

			if got := txs[0].Discount; !got.Equal(mustDecimal(t, tt.wantDiscount)) {
				t.Errorf("discount = %s, want %s", got, tt.wantDiscount)
			}

			// Idempotent: amount paid does not change, so a second pass
			// computes the same candidate.
			InferDiscounts(txs)
			if got := txs[0].Discount; !got.Equal(mustDecimal(t, tt.wantDiscount)) {
				t.Errorf("after second pass discount = %s, want %s", got, tt.wantDiscount)
			}
		})
	}
}
