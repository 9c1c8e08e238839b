package prep

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Handler exposes prep note HTTP endpoints under the meeting resource.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/v1/meetings/{id}/prep", h.get)
	r.Put("/api/v1/meetings/{id}/prep", h.save)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	meetingID := chi.URLParam(r, "id")
	note, err := h.service.Get(r.Context(), meetingID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, note)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	meetingID := chi.URLParam(r, "id")
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	note, err := h.service.Save(r.Context(), meetingID, req)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			respond(w, http.StatusBadRequest, map[string]interface{}{"error": "validation failed", "fields": verrs})
		case strings.Contains(err.Error(), "invalid meeting id"):
			respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}
	respond(w, http.StatusOK, note)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
