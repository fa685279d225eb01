package dao

import (
	"fmt"

	"github.com/salonledger/journal-builder/infra/db/model"
)

func (d *dao) CreateJournalProcessLogAsset(payload model.JournalProcessLogAsset) error {
	if err := d.db.Create(&payload).Error; err != nil {
		return fmt.Errorf("failed to save file asset: %v", err)
	}
	return nil
}

func (d *dao) GetJournalLogAssetsByLogID(logID int64) ([]model.JournalProcessLogAsset, error) {
	var assets []model.JournalProcessLogAsset
	if err := d.db.Where("journal_process_log_id = ?", logID).Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch log assets: %w", err)
	}
	return assets, nil
}
