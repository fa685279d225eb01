package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the canonical category of a ledger row. The raw export
// uses free-form labels ("Service Add-On", "Gift Cards"); the loader maps
// them onto these values.
type TransactionType string

const (
	TypeService      TransactionType = "Service"
	TypeServiceAddOn TransactionType = "ServiceAddOn"
	TypeMembership   TransactionType = "Membership"
	TypeGiftCard     TransactionType = "GiftCard"
	TypeRefund       TransactionType = "Refund"
	TypeOther        TransactionType = "Other"
)

// TransactionRecord is one row of the per-transaction ledger export.
// Rows keep their original chronological order; the ghost-range detector
// depends on that ordering.
type TransactionRecord struct {
	TransactionID         string
	Type                  TransactionType
	CheckoutTime          time.Time
	Price                 decimal.Decimal
	Tip                   decimal.Decimal
	AmountPaid            decimal.Decimal
	Discount              decimal.Decimal
	Quantity              int
	GiftCertificateNumber string
}

// SettlementRecord is one row of the per-batch deposit report.
// TransactionNumber is empty on batch-level adjustment rows, which carry a
// negative NetAmount and correlate to no single transaction.
type SettlementRecord struct {
	TransactionNumber string
	Fee               decimal.Decimal
	NetAmount         decimal.Decimal
}
