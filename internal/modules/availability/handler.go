package availability

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Handler exposes availability and slot-matching HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Put("/api/v1/availability/{user_id}", h.setSlots)   // PUT /api/v1/availability/{user_id}
	r.Get("/api/v1/availability/{user_id}", h.getSlots)   // GET /api/v1/availability/{user_id}?date=2025-01-22
	r.Post("/api/v1/schedule/analyze", h.analyze)         // POST /api/v1/schedule/analyze
	r.Get("/api/v1/schedule/matches", h.listMatches)      // GET /api/v1/schedule/matches
}

func (h *Handler) setSlots(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	var req SetSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	slot, err := h.service.SetSlots(r.Context(), userID, req)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			respond(w, http.StatusBadRequest, map[string]interface{}{"error": "validation failed", "fields": verrs})
		case strings.Contains(err.Error(), "invalid user_id"):
			respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}
	respond(w, http.StatusOK, slot)
}

func (h *Handler) getSlots(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	date := r.URL.Query().Get("date")
	if date == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "date query parameter is required"})
		return
	}

	slot, err := h.service.GetSlots(r.Context(), userID, date)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, slot)
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	match, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			respond(w, http.StatusBadRequest, map[string]interface{}{"error": "validation failed", "fields": verrs})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	// An empty overlap is a business outcome, not an error.
	respond(w, http.StatusOK, match)
}

func (h *Handler) listMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.service.ListMatches(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, matches)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
