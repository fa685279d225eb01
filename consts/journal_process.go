package consts

const (
	// Journal type merchant deposit reconciliation
	JournalTypeMerchantDeposit = 1

	// Journal run status codes
	StatusInit     = 1
	StatusRunning  = 2
	StatusFinished = 3
	StatusFailed   = 4

	// DataType constants for uploaded input files
	DataTypeTransactionList = 1
	DataTypeDepositReport   = 2

	// Default config
	DefaultWorkerNumber  = 1
	DefaultIntervalInSec = 2
	DefaultUploadDir     = "uploads"
	DefaultOutputDir     = "output"
)

// Chart-of-accounts labels used by the journal builder. These are defaults
// only; every account can be overridden through entity.JournalConfig.
const (
	DefaultFeeAccount        = "01-017 Vagaro Fees"
	DefaultIncomeAccount     = "02-003 Massage Income"
	DefaultTipsAccount       = "02-004 Tips for Service Income"
	DefaultDiscountAccount   = "02-010 Discount Income"
	DefaultMembershipAccount = "02-008 Membership Income"
	DefaultGiftCardAccount   = "05-003 Gift Card Liability"
	DefaultTotalsAccount     = "00-001 SLW Main Checking"

	DefaultReceivedFrom = "Massage Therapy Customers"
	DefaultFeePayee     = "Vagaro"
	DefaultDescription  = "Vagaro Merchant Services Deposit"

	// Journal numbers look like "VG - Dep - 07/18"
	JournalNumberPrefix = "VG - Dep - "
)
