package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/salonledger/journal-builder/consts"
	"github.com/salonledger/journal-builder/entity"
	"github.com/salonledger/journal-builder/infra/db/model"
)

// ProcessJournalJob executes one registered run end to end: load both
// uploaded exports, reconcile, write the journal CSV, store the summary.
// Fatal reconciliation errors (ambiguous adjustments, a failed balance
// assertion) mark the run failed before any output file is written; a
// half-built journal is worse than none.
func (u *journalUsecase) ProcessJournalJob(ctx context.Context, logID int64) error {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[JournalJob] Panic recovered for LogID %d: %v", logID, r)
		}
	}()

	log.Infof("[JournalJob] Starting job for LogID: %d", logID)

	logEntry, err := u.dao.GetJournalProcessLogByID(logID)
	if err != nil {
		log.Errorf("[JournalJob] Could not fetch process log %d: %v", logID, err)
		return err
	}

	assets, err := u.dao.GetJournalLogAssetsByLogID(logID)
	if err != nil {
		log.Errorf("[JournalJob] Could not fetch assets for LogID %d: %v", logID, err)
		return err
	}

	transactionURL, err := findAssetURL(assets, consts.DataTypeTransactionList)
	if err != nil {
		log.Errorf("[JournalJob] Transaction file URL not found: %v", err)
		return err
	}

	depositURL, err := findAssetURL(assets, consts.DataTypeDepositReport)
	if err != nil {
		log.Errorf("[JournalJob] Deposit file URL not found: %v", err)
		return err
	}

	metadata, err := parseProcessMetadata(logEntry.ProcessInfo)
	if err != nil {
		log.Errorf("[JournalJob] Metadata parse error for LogID %d: %v", logID, err)
		return err
	}
	journalDate := time.Unix(metadata.JournalDate, 0).UTC()

	logEntry.Status = consts.StatusRunning
	logEntry.UpdateTime = time.Now().Unix()
	logEntry.UpdateBy = "system"
	if err := u.dao.UpdateJournalProcessLog(logEntry); err != nil {
		return fmt.Errorf("failed to mark log running: %w", err)
	}

	lines, summary, runErr := u.buildJournal(transactionURL, depositURL, journalDate, metadata.OutputPath)

	logEntry.UpdateTime = time.Now().Unix()
	if runErr != nil {
		log.Errorf("[JournalJob] Run failed for LogID %d: %v", logID, runErr)
		logEntry.Status = consts.StatusFailed
		logEntry.Result = fmt.Sprintf(`{"error":%q}`, runErr.Error())
		if err := u.dao.UpdateJournalProcessLog(logEntry); err != nil {
			return fmt.Errorf("failed to update log: %w", err)
		}
		return runErr
	}

	resultJSON, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}

	logEntry.Status = consts.StatusFinished
	logEntry.TotalRows = int64(summary.TotalTransactions)
	logEntry.ProcessedRows = int64(summary.TotalTransactions)
	logEntry.Result = string(resultJSON)
	if err := u.dao.UpdateJournalProcessLog(logEntry); err != nil {
		return fmt.Errorf("failed to update log: %w", err)
	}

	log.Infof("[JournalJob] Job completed for LogID %d: %d lines in %d blocks", logID, len(lines), summary.Blocks)
	return nil
}

func (u *journalUsecase) buildJournal(transactionFile, depositFile string, journalDate time.Time, outputPath string) ([]entity.JournalLine, *RunSummary, error) {
	return BuildJournalFile(u.cfg, transactionFile, depositFile, journalDate, outputPath)
}

// BuildJournalFile is the direct load -> reconcile -> write pipeline. The
// one-shot CLI uses it without the process-log bookkeeping. JournalNumber and
// JournalDate on the config are derived from the journal date.
func BuildJournalFile(baseCfg entity.JournalConfig, transactionFile, depositFile string, journalDate time.Time, outputPath string) ([]entity.JournalLine, *RunSummary, error) {
	transactions, err := LoadTransactionList(transactionFile)
	if err != nil {
		return nil, nil, err
	}

	settlements, err := LoadDepositReport(depositFile)
	if err != nil {
		return nil, nil, err
	}

	cfg := baseCfg
	cfg.JournalNumber = consts.JournalNumberPrefix + journalDate.Format("01/02")
	cfg.JournalDate = journalDate.Format("01/02/2006")

	engine := NewEngine(cfg)
	lines, summary, err := engine.Reconcile(transactions, settlements)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, nil, err
	}
	if err := WriteJournalCSV(outputPath, lines); err != nil {
		return nil, nil, err
	}

	return lines, summary, nil
}

func findAssetURL(assets []model.JournalProcessLogAsset, dataType int64) (string, error) {
	for _, asset := range assets {
		if asset.DataType == dataType {
			return asset.FileUrl, nil
		}
	}
	return "", errors.New("missing input file URL")
}

func parseProcessMetadata(processInfo string) (entity.ProcessMetadata, error) {
	var metadata entity.ProcessMetadata
	if err := json.Unmarshal([]byte(processInfo), &metadata); err != nil {
		return metadata, fmt.Errorf("failed to parse process metadata: %w", err)
	}
	return metadata, nil
}
