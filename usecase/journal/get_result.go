package journal

import (
	"github.com/salonledger/journal-builder/infra/db/model"
)

func (u *journalUsecase) GetJournalRuns() ([]model.JournalProcessLog, error) {
	return u.dao.GetJournalProcessLogs()
}

func (u *journalUsecase) GetJournalRunByID(logID int64) (model.JournalProcessLog, error) {
	return u.dao.GetJournalProcessLogByID(logID)
}
