package dao

import (
	"github.com/salonledger/journal-builder/infra/db/model"

	"github.com/jinzhu/gorm"
)

type DaoMethod interface {
	GetJournalProcessLogs() ([]model.JournalProcessLog, error)
	GetJournalProcessLogsByStatusList(statusList []int) ([]model.JournalProcessLog, error)
	GetJournalProcessLogByID(logID int64) (model.JournalProcessLog, error)
	CreateJournalProcessLog(payload *model.JournalProcessLog) error
	UpdateJournalProcessLog(logEntry model.JournalProcessLog) error
	CreateJournalProcessLogAsset(payload model.JournalProcessLogAsset) error
	GetJournalLogAssetsByLogID(logID int64) ([]model.JournalProcessLogAsset, error)
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
