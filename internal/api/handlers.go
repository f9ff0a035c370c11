package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frankasd12/NibbleCheck/internal/catalog"
	"github.com/frankasd12/NibbleCheck/internal/logging"
	"github.com/frankasd12/NibbleCheck/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires up all routes with the provided Service. allowedOrigins
// feeds the CORS policy; empty means any origin.
func NewRouter(svc *service.Service, allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(logging.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{logging.RequestIDHeader},
		AllowCredentials: true,
	}))

	r.Get("/health", handleHealth(svc))
	r.Get("/search", handleSearch(svc))
	r.Get("/foods/{id}", handleGetFood(svc))
	r.Post("/ingredients/resolve", handleResolve(svc))

	return r
}

func handleHealth(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Health(r.Context()); err != nil {
			jsonError(w, "catalog unavailable", http.StatusInternalServerError, err)
			return
		}
		jsonOK(w, map[string]bool{"ok": true})
	}
}

// --- search ---

func handleSearch(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			jsonError(w, "q is required", http.StatusBadRequest)
			return
		}
		limit := service.DefaultSearchLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				jsonError(w, "limit must be an integer", http.StatusBadRequest)
				return
			}
			limit = v
		}
		res, err := svc.Search(r.Context(), q, limit)
		if err != nil {
			writeServiceError(w, "search failed", err)
			return
		}
		jsonOK(w, res)
	}
}

// --- food detail ---

func handleGetFood(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			jsonError(w, "invalid id", http.StatusBadRequest)
			return
		}
		food, err := svc.Food(r.Context(), id)
		if err != nil {
			writeServiceError(w, "failed to get food", err)
			return
		}
		jsonOK(w, food)
	}
}

// --- resolve ---

type resolveRequest struct {
	Text string `json:"text"`
	// IngredientsText is the field name older clients send.
	IngredientsText string `json:"ingredients_text"`
}

func handleResolve(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		text := req.Text
		if text == "" {
			text = req.IngredientsText
		}
		res, err := svc.Resolve(r.Context(), text)
		if err != nil {
			writeServiceError(w, "resolve failed", err)
			return
		}
		jsonOK(w, res)
	}
}

// --- helpers ---

// writeServiceError maps service and catalog errors onto status codes.
func writeServiceError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, catalog.ErrNotFound):
		jsonError(w, "food not found", http.StatusNotFound)
	default:
		jsonError(w, msg, http.StatusInternalServerError, err)
	}
}

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int, errs ...error) {
	if status >= 500 && len(errs) > 0 {
		slog.Error(msg, "status", status, "error", errs[0])
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
