package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	"github.com/labstack/gommon/log"

	"github.com/salonledger/journal-builder/consts"
	"github.com/salonledger/journal-builder/handler"
	"github.com/salonledger/journal-builder/infra/locker"
	journalUsecase "github.com/salonledger/journal-builder/usecase/journal"
)

type CronWorkerConfig struct {
	Interval time.Duration
	Workers  int
}

func (cfg CronWorkerConfig) startJournalExecutorWorker(h *handler.JournalHandler, workerID int) {
	for {
		ctx := context.Background()
		err := h.JournalExecution(ctx)
		switch {
		case errors.Is(err, handler.ErrNoRunHandled):
			// nothing pending
		case err != nil:
			log.Errorf("[Worker %d] error: %s", workerID, err.Error())
		default:
			log.Infof("[Worker %d] success", workerID)
		}

		time.Sleep(cfg.Interval)
	}
}

type App struct {
	DB     *gorm.DB
	Locker *locker.Locker
}

func (a *App) startCronWorker(cfg CronWorkerConfig) {
	var wg sync.WaitGroup

	journalUc := journalUsecase.NewJournalUsecase(a.DB, a.Locker)
	h := handler.NewJournalHandler(journalUc)

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			log.Infof("spawn [Worker %d]", workerID)
			cfg.startJournalExecutorWorker(h, workerID)
		}(i + 1)
	}
	wg.Wait()
}

func (a *App) Initialize(DbHost, DbPort, DbUser, DbName, DbPassword string) {
	var err error
	DBURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", DbHost, DbPort, DbUser, DbName, DbPassword)

	a.DB, err = gorm.Open("postgres", DBURI)
	if err != nil {
		log.Fatalf("Cannot connect to database %s: %v", DbName, err)
	}
	log.Infof("Connected to database %s", DbName)

	a.Locker = locker.New()
}

func (a *App) RunServer() {
	a.startCronWorker(CronWorkerConfig{
		Workers:  consts.DefaultWorkerNumber,
		Interval: consts.DefaultIntervalInSec * time.Second,
	})
}

func main() {
	app := App{}
	app.Initialize(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PASSWORD"))

	app.RunServer()
}
