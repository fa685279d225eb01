package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/salonledger/journal-builder/entity"
)

func (h *JournalHandler) ProcessJournal(w http.ResponseWriter, r *http.Request) {
	var req entity.ProcessJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}

	journalDate, err := parseJournalDate(req.JournalDate)
	if err != nil {
		log.Warnf("Invalid date input: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	if err := validateProcessJournalRequest(req); err != nil {
		log.Warnf("Invalid input: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	res, err := h.Usecase.ProcessJournalInit(
		req.TransactionCSVPath,
		req.DepositCSVPath,
		journalDate,
		req.Operator,
	)
	if err != nil {
		log.Errorf("failed to register journal run: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Failed to register journal run",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   res,
	})
}

func parseJournalDate(raw string) (time.Time, error) {
	const layout = "2006-01-02"

	journalDate, err := time.Parse(layout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid journal date format: %v", err)
	}
	return time.Date(journalDate.Year(), journalDate.Month(), journalDate.Day(), 0, 0, 0, 0, time.UTC), nil
}

func validateProcessJournalRequest(req entity.ProcessJournalRequest) error {
	if req.TransactionCSVPath == "" {
		return errors.New("transaction CSV path is required")
	}
	if _, err := os.Stat(req.TransactionCSVPath); os.IsNotExist(err) {
		return errors.New("transaction CSV file does not exist")
	}
	if req.DepositCSVPath == "" {
		return errors.New("deposit CSV path is required")
	}
	if _, err := os.Stat(req.DepositCSVPath); os.IsNotExist(err) {
		return errors.New("deposit CSV file does not exist")
	}
	if strings.TrimSpace(req.Operator) == "" {
		return errors.New("operator must be specified")
	}
	return nil
}
