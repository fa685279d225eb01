package controllers

import (
	"github.com/salonledger/journal-builder/handler"

	"github.com/gorilla/mux"
)

func RegisterJournalRoutes(router *mux.Router, h *handler.JournalHandler) {
	router.HandleFunc("/process_journal", h.ProcessJournal).Methods("POST")
	router.HandleFunc("/get_result", h.GetResult).Methods("GET")
}
