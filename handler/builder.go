package handler

import (
	usecase "github.com/salonledger/journal-builder/usecase/journal"
)

type JournalHandler struct {
	Usecase usecase.JournalUsecase
}

func NewJournalHandler(uc usecase.JournalUsecase) *JournalHandler {
	return &JournalHandler{Usecase: uc}
}

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
