package entity

type ProcessJournalRequest struct {
	TransactionCSVPath string `json:"transaction_csv_path"`
	DepositCSVPath     string `json:"deposit_csv_path"`
	JournalDate        string `json:"journal_date"`
	Operator           string `json:"operator"`
}

// ProcessMetadata is stored as JSON on the process log row.
type ProcessMetadata struct {
	JournalDate int64  `json:"journal_date"`
	OutputPath  string `json:"output_path"`
}
