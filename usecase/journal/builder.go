package journal

import (
	"context"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/salonledger/journal-builder/consts"
	"github.com/salonledger/journal-builder/entity"
	"github.com/salonledger/journal-builder/infra/db/dao"
	"github.com/salonledger/journal-builder/infra/db/model"
	"github.com/salonledger/journal-builder/infra/locker"
)

type JournalUsecase interface {
	ProcessJournalInit(transactionCSV, depositCSV string, journalDate time.Time, operator string) (*model.JournalProcessLog, error)
	GetJournalRuns() ([]model.JournalProcessLog, error)
	GetJournalRunByID(logID int64) (model.JournalProcessLog, error)
	ProcessJournalJob(ctx context.Context, logID int64) error
	TryAcquireRun(ctx context.Context) (bool, int64, error)
	ReleaseRun(ctx context.Context, logID int64)
}

type journalUsecase struct {
	dao       dao.DaoMethod
	locker    *locker.Locker
	cfg       entity.JournalConfig
	uploadDir string
	outputDir string
}

func NewJournalUsecase(db *gorm.DB, lk *locker.Locker) JournalUsecase {
	return &journalUsecase{
		dao:       dao.NewDaoMethod(db),
		locker:    lk,
		cfg:       entity.DefaultJournalConfig(),
		uploadDir: consts.DefaultUploadDir,
		outputDir: consts.DefaultOutputDir,
	}
}
