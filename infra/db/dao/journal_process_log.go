package dao

import (
	"fmt"

	"github.com/salonledger/journal-builder/infra/db/model"
)

func (d *dao) GetJournalProcessLogs() ([]model.JournalProcessLog, error) {
	var logs []model.JournalProcessLog
	if err := d.db.Find(&logs).Error; err != nil {
		return nil, err
	}

	return logs, nil
}

func (d *dao) GetJournalProcessLogsByStatusList(statusList []int) ([]model.JournalProcessLog, error) {
	var processLogList []model.JournalProcessLog
	if err := d.db.
		Select("id").
		Where("status IN (?)", statusList).
		Order("create_time ASC").
		Find(&processLogList).Error; err != nil {
		return nil, err
	}
	return processLogList, nil
}

func (d *dao) GetJournalProcessLogByID(logID int64) (model.JournalProcessLog, error) {
	var logEntry model.JournalProcessLog
	if err := d.db.First(&logEntry, logID).Error; err != nil {
		return logEntry, fmt.Errorf("log not found: %w", err)
	}
	return logEntry, nil
}

func (d *dao) CreateJournalProcessLog(payload *model.JournalProcessLog) error {
	if err := d.db.Create(payload).Error; err != nil {
		return fmt.Errorf("failed to create journal process log: %v", err)
	}
	return nil
}

func (d *dao) UpdateJournalProcessLog(logEntry model.JournalProcessLog) error {
	if err := d.db.Save(&logEntry).Error; err != nil {
		return fmt.Errorf("failed to update log: %w", err)
	}
	return nil
}
