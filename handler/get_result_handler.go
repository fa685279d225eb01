package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func (h *JournalHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	logIDStr := r.URL.Query().Get("log_id")
	if logIDStr == "" {
		results, err := h.Usecase.GetJournalRuns()
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(APIResponse{
				Status:  "error",
				Message: "Failed to get results",
			})
			return
		}
		json.NewEncoder(w).Encode(APIResponse{
			Status: "success",
			Data:   results,
		})
		return
	}

	logID, err := strconv.ParseInt(logIDStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "log_id must be a valid integer",
		})
		return
	}

	result, err := h.Usecase.GetJournalRunByID(logID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Failed to get result",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   result,
	})
}
