package status

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

type Handler struct {
	Storage *storage.Storage
}

func NewHandler(s *storage.Storage) Handler {
	return Handler{Storage: s}
}

type response struct {
	Status string `json:"status"`
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	endTimer := logData.AddTiming("pingMs")
	err := h.Storage.Ping(req.Context())
	endTimer()

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(response{Status: "unavailable"})
		return fmt.Errorf("status: storage ping: %w", err)
	}

	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(response{Status: "ok"})
}
