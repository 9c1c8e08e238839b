package meeting

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Handler exposes meeting HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/meetings", func(r chi.Router) {
		r.Post("/", h.schedule)                  // POST   /api/v1/meetings
		r.Get("/", h.list)                       // GET    /api/v1/meetings?status=scheduled
		r.Get("/{id}", h.get)                    // GET    /api/v1/meetings/{id}
		r.Patch("/{id}/complete", h.complete)    // PATCH  /api/v1/meetings/{id}/complete
		r.Patch("/{id}/cancel", h.cancel)        // PATCH  /api/v1/meetings/{id}/cancel
	})
}

func (h *Handler) schedule(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	m, err := h.service.Schedule(r.Context(), req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			respond(w, http.StatusBadRequest, map[string]interface{}{"error": "validation failed", "fields": verrs})
			return
		}
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, m)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, err := h.service.Get(r.Context(), id)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, m)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	meetings, err := h.service.List(r.Context(), status)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, meetings)
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	m, err := h.service.Complete(r.Context(), id, req)
	if err != nil {
		respondTransitionErr(w, err)
		return
	}
	respond(w, http.StatusOK, m)
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		respondTransitionErr(w, err)
		return
	}
	respond(w, http.StatusOK, m)
}

func respondTransitionErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if strings.Contains(err.Error(), "cannot transition") {
		code = http.StatusUnprocessableEntity
	} else if strings.Contains(err.Error(), "not found") {
		code = http.StatusNotFound
	}
	respond(w, code, map[string]string{"error": err.Error()})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
