package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/salonledger/journal-builder/consts"
	"github.com/salonledger/journal-builder/entity"
	"github.com/salonledger/journal-builder/infra/db/model"
)

// ProcessJournalInit registers a journal run: both input files are copied to
// the upload area, a process log row is created in init status, and one asset
// row per input file records where the copies live. The cron workers pick the
// run up from there.
func (u *journalUsecase) ProcessJournalInit(transactionCSV, depositCSV string, journalDate time.Time, operator string) (*model.JournalProcessLog, error) {
	timeNowUnix := time.Now().Unix()

	transactionURL, err := u.uploadFile(transactionCSV)
	if err != nil {
		return nil, fmt.Errorf("failed to upload transaction file: %v", err)
	}

	depositURL, err := u.uploadFile(depositCSV)
	if err != nil {
		return nil, fmt.Errorf("failed to upload deposit file: %v", err)
	}

	outputPath := filepath.Join(u.outputDir, fmt.Sprintf("journal_%s.csv", journalDate.Format("2006-01-02")))
	processInfo := entity.ProcessMetadata{
		JournalDate: journalDate.Unix(),
		OutputPath:  outputPath,
	}

	processInfoJSON, err := json.Marshal(processInfo)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal process info: %w", err)
	}

	logEntry := &model.JournalProcessLog{
		JournalType: consts.JournalTypeMerchantDeposit,
		ProcessInfo: string(processInfoJSON),
		Status:      consts.StatusInit,
		Result:      "",
		CreateTime:  timeNowUnix,
		CreateBy:    operator,
		UpdateTime:  timeNowUnix,
		UpdateBy:    operator,
	}

	if err := u.dao.CreateJournalProcessLog(logEntry); err != nil {
		return nil, err
	}

	assets := []model.JournalProcessLogAsset{
		{DataType: consts.DataTypeTransactionList, FileUrl: transactionURL},
		{DataType: consts.DataTypeDepositReport, FileUrl: depositURL},
	}
	for _, asset := range assets {
		asset.JournalProcessLogID = logEntry.ID
		asset.FileName = filepath.Base(asset.FileUrl)
		asset.CreateTime = timeNowUnix
		asset.CreateBy = operator
		if err := u.dao.CreateJournalProcessLogAsset(asset); err != nil {
			return nil, err
		}
	}

	return logEntry, nil
}

// NOTES: this is the simulation version of object storage, later we can plug
// a real object storage uploader in production.
func (u *journalUsecase) uploadFile(filePath string) (string, error) {
	input, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(u.uploadDir, 0755); err != nil {
		return "", err
	}

	fileName := filepath.Base(filePath)
	destPath := filepath.Join(u.uploadDir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), fileName))

	if err := os.WriteFile(destPath, input, 0644); err != nil {
		return "", err
	}

	return destPath, nil
}
