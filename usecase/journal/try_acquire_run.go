package journal

import (
	"context"

	"github.com/labstack/gommon/log"

	"github.com/salonledger/journal-builder/consts"
)

// TryAcquireRun claims the oldest pending run not already being executed by
// another worker in this process. Returns false when nothing is pending.
func (u *journalUsecase) TryAcquireRun(ctx context.Context) (bool, int64, error) {
	processLogList, err := u.dao.GetJournalProcessLogsByStatusList([]int{consts.StatusInit})
	if err != nil {
		return false, 0, err
	}

	for _, processLog := range processLogList {
		if !u.locker.TryAcquire(processLog.ID) {
			continue
		}

		log.Infof("[LOCK_RUN] log_id:%d", processLog.ID)
		return true, processLog.ID, nil
	}

	return false, 0, nil
}

func (u *journalUsecase) ReleaseRun(ctx context.Context, logID int64) {
	u.locker.Release(logID)
	log.Infof("[UNLOCK_RUN] log_id:%d", logID)
}
