package entity

import (
	"github.com/shopspring/decimal"

	"github.com/salonledger/journal-builder/consts"
)

// JournalLine is one debit-or-credit entry destined for a general ledger
// import. Exactly one of Debit/Credit is populated; a line with neither is
// never emitted.
type JournalLine struct {
	JournalNumber string
	JournalDate   string
	ReceivedFrom  string
	AccountName   string
	Description   string
	PaymentMethod string
	RefNo         string
	Debit         decimal.NullDecimal
	Credit        decimal.NullDecimal
}

// JournalConfig carries the per-run labels and the chart-of-accounts mapping
// for each aggregated category. Accounts are configuration, not logic.
type JournalConfig struct {
	JournalNumber string
	JournalDate   string
	ReceivedFrom  string
	FeePayee      string
	Description   string

	FeeAccount        string
	IncomeAccount     string
	TipsAccount       string
	DiscountAccount   string
	MembershipAccount string
	GiftCardAccount   string
	TotalsAccount     string
}

// DefaultJournalConfig returns the stock account mapping. JournalNumber and
// JournalDate are filled in per run.
func DefaultJournalConfig() JournalConfig {
	return JournalConfig{
		ReceivedFrom:      consts.DefaultReceivedFrom,
		FeePayee:          consts.DefaultFeePayee,
		Description:       consts.DefaultDescription,
		FeeAccount:        consts.DefaultFeeAccount,
		IncomeAccount:     consts.DefaultIncomeAccount,
		TipsAccount:       consts.DefaultTipsAccount,
		DiscountAccount:   consts.DefaultDiscountAccount,
		MembershipAccount: consts.DefaultMembershipAccount,
		GiftCardAccount:   consts.DefaultGiftCardAccount,
		TotalsAccount:     consts.DefaultTotalsAccount,
	}
}
