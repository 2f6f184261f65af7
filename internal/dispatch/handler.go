package dispatch

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NexaiGuy/nexai-website/pkg/logging"
)

// Handler exposes the dispatcher over HTTP with the same contract as the
// original serverless function: POST /api/send-emails.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a dispatch HTTP handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// SendEmails handles POST /api/send-emails requests.
func (h *Handler) SendEmails(w http.ResponseWriter, r *http.Request) {
	var req EmailDispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("dispatch: failed to decode request", "error", err)
		writeResult(w, http.StatusBadRequest, &Result{
			Success: false,
			Error:   "invalid request body",
			Details: err.Error(),
		})
		return
	}

	result, err := h.service.Dispatch(r.Context(), &req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrMissingContactFields) {
			status = http.StatusBadRequest
		}
		writeResult(w, status, &Result{
			Success: false,
			Error:   "Failed to send emails",
			Details: err.Error(),
		})
		return
	}

	writeResult(w, http.StatusOK, result)
}

func writeResult(w http.ResponseWriter, status int, res *Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}
