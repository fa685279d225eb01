package model

type JournalProcessLogAsset struct {
	ID                  int64  `gorm:"primary_key;auto_increment" json:"id"`
	JournalProcessLogID int64  `gorm:"not null;index" json:"journal_process_log_id"`
	DataType            int64  `gorm:"not null" json:"data_type"`
	FileName            string `gorm:"size:100;not null" json:"file_name"`
	FileUrl             string `gorm:"size:100;not null" json:"file_url"`
	CreateTime          int64  `gorm:"not null" json:"create_time"`
	CreateBy            string `gorm:"size:100;not null" json:"create_by"`
}
