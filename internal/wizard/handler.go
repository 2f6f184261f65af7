package wizard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/NexaiGuy/nexai-website/internal/catalog"
	"github.com/NexaiGuy/nexai-website/internal/observability/metrics"
	"github.com/NexaiGuy/nexai-website/pkg/logging"
)

// Handler drives wizard sessions over HTTP. The SPA is a thin view over
// these endpoints; all state and gating live in the Session.
type Handler struct {
	store      *Store
	dispatcher Dispatcher
	catalog    *catalog.Catalog
	metrics    *metrics.BookingMetrics
	logger     *logging.Logger
}

// NewHandler creates a wizard HTTP handler.
func NewHandler(store *Store, d Dispatcher, cat *catalog.Catalog, m *metrics.BookingMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		store:      store,
		dispatcher: d,
		catalog:    cat,
		metrics:    m,
		logger:     logger,
	}
}

// Routes mounts the session API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/sessions", h.OpenSession)
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Get("/", h.GetSession)
		r.Delete("/", h.CloseSession)
		r.Patch("/fields", h.SetField)
		r.Post("/advance", h.Advance)
		r.Post("/retreat", h.Retreat)
		r.Post("/slot", h.SelectSlot)
		r.Post("/confirm", h.Confirm)
	})
	return r
}

type sessionResponse struct {
	ID        string    `json:"id"`
	Step      string    `json:"step"`
	Form      FormState `json:"form"`
	StepValid bool      `json:"step_valid"`
	Warning   string    `json:"warning,omitempty"`
	TimeSlots []string  `json:"time_slots,omitempty"`
}

func (h *Handler) snapshot(s *Session) sessionResponse {
	resp := sessionResponse{
		ID:        s.ID,
		Step:      s.Step.String(),
		Form:      s.Form,
		StepValid: s.StepValid(s.Step),
		Warning:   s.Warning,
	}
	if s.Step == StepSlotSelection {
		resp.TimeSlots = h.catalog.TimeSlots()
	}
	return resp
}

// OpenSession handles POST /wizard/sessions.
func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	s := h.store.Open()
	h.metrics.ObserveSessionOpened()
	h.logger.Info("wizard session opened", "session_id", s.ID)
	writeJSON(w, http.StatusCreated, h.snapshot(&s))
}

// GetSession handles GET /wizard/sessions/{sessionID}.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(s *Session) error { return nil })
}

// CloseSession handles DELETE /wizard/sessions/{sessionID}: the explicit
// exit action. The session's form state is discarded.
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if err := h.store.Close(id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.logger.Info("wizard session closed", "session_id", id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "closed"})
}

type setFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// SetField handles PATCH /wizard/sessions/{sessionID}/fields. Selection
// fields are checked against the catalog so a stale client cannot store
// ids the catalog no longer offers; free-text fields are taken as-is.
func (h *Handler) SetField(w http.ResponseWriter, r *http.Request) {
	var req setFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.withSession(w, r, func(s *Session) error {
		switch req.Field {
		case "project_type":
			if !h.catalog.ValidService(req.Value) {
				return errUnknownSelection(req.Field, req.Value)
			}
			s.SetProjectType(req.Value)
		case "budget":
			if !h.catalog.ValidBudget(req.Value) {
				return errUnknownSelection(req.Field, req.Value)
			}
			s.SetBudget(req.Value)
		case "timeline":
			if !h.catalog.ValidTimeline(req.Value) {
				return errUnknownSelection(req.Field, req.Value)
			}
			s.SetTimeline(req.Value)
		case "description":
			s.SetDescription(req.Value)
		default:
			return s.SetContactField(req.Field, req.Value)
		}
		return nil
	})
}

// Advance handles POST /wizard/sessions/{sessionID}/advance.
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(s *Session) error { return s.Advance() })
}

// Retreat handles POST /wizard/sessions/{sessionID}/retreat.
func (h *Handler) Retreat(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(s *Session) error { return s.Retreat() })
}

type selectSlotRequest struct {
	TimeSlot string `json:"time_slot"`
}

// SelectSlot handles POST /wizard/sessions/{sessionID}/slot.
func (h *Handler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	var req selectSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.withSession(w, r, func(s *Session) error { return s.SelectTimeSlot(req.TimeSlot) })
}

// Confirm handles POST /wizard/sessions/{sessionID}/confirm. The booking is
// confirmed regardless of email delivery; a delivery failure only surfaces
// as a warning in the response.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(s *Session) error {
		if err := s.ConfirmBooking(r.Context(), h.dispatcher); err != nil {
			return err
		}
		outcome := "sent"
		if s.EmailFailed() {
			outcome = "failed"
			h.logger.Warn("booking confirmed but email dispatch failed",
				"session_id", s.ID, "email", s.Form.Email)
		}
		h.metrics.ObserveBooking(outcome)
		h.logger.Info("booking confirmed",
			"session_id", s.ID, "time_slot", s.Form.SelectedTimeSlot, "email_outcome", outcome)
		return nil
	})
}

// withSession looks up the session, runs fn under its lock, and writes the
// resulting snapshot (or the mapped error).
func (h *Handler) withSession(w http.ResponseWriter, r *http.Request, fn func(*Session) error) {
	id := chi.URLParam(r, "sessionID")

	var resp sessionResponse
	err := h.store.With(id, func(s *Session) error {
		if err := fn(s); err != nil {
			return err
		}
		resp = h.snapshot(s)
		return nil
	})
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, ErrSessionNotFound):
			status = http.StatusNotFound
		case errors.Is(err, ErrDispatchInFlight):
			status = http.StatusConflict
		}
		http.Error(w, err.Error(), status)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

type unknownSelectionError struct {
	field, value string
}

func (e unknownSelectionError) Error() string {
	return "unknown " + e.field + " selection: " + e.value
}

func errUnknownSelection(field, value string) error {
	return unknownSelectionError{field: field, value: value}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
