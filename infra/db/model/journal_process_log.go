package model

type JournalProcessLog struct {
	ID            int64  `gorm:"primary_key;auto_increment" json:"id"`
	JournalType   int64  `gorm:"not null" json:"journal_type"`
	TotalRows     int64  `gorm:"not null" json:"total_rows"`
	ProcessedRows int64  `gorm:"not null" json:"processed_rows"`
	ProcessInfo   string `gorm:"type:text;not null" json:"process_info"`
	Status        int    `gorm:"not null" json:"status"`
	Result        string `gorm:"type:text;not null" json:"result"`
	CreateTime    int64  `gorm:"not null" json:"create_time"`
	CreateBy      string `gorm:"size:100;not null" json:"create_by"`
	UpdateTime    int64  `gorm:"not null" json:"update_time"`
	UpdateBy      string `gorm:"size:100;not null" json:"update_by"`
}
