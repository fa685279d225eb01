package controllers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	"github.com/labstack/gommon/log"

	"github.com/salonledger/journal-builder/handler"
	"github.com/salonledger/journal-builder/infra/db/model"
	"github.com/salonledger/journal-builder/middlewares"
	journalUsecase "github.com/salonledger/journal-builder/usecase/journal"
)

type App struct {
	DB     *gorm.DB
	Router *mux.Router
}

func (a *App) Initialize(DbHost, DbPort, DbUser, DbName, DbPassword string) {
	var err error
	DBURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", DbHost, DbPort, DbUser, DbName, DbPassword)

	a.DB, err = gorm.Open("postgres", DBURI)
	if err != nil {
		log.Fatalf("Cannot connect to database %s: %v", DbName, err)
	}
	log.Infof("Connected to database %s", DbName)

	a.DB.Debug().AutoMigrate(
		&model.JournalProcessLog{},
		&model.JournalProcessLogAsset{},
	) //database migration

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
}

func (a *App) initializeRoutes() {
	a.Router.Use(middlewares.SetContentTypeMiddleware)
	journalUc := journalUsecase.NewJournalUsecase(a.DB, nil)
	h := handler.NewJournalHandler(journalUc)
	RegisterJournalRoutes(a.Router, h)
}

func (a *App) RunServer() {
	port := os.Getenv("PORT")

	if port == "" {
		port = "8080"
	}

	log.Infof("Server starting on port %v", port)
	log.Fatal(http.ListenAndServe(":"+port, a.Router))
}
