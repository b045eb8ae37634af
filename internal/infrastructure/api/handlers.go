// Package api exposes the REST surface of the integration layer.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shopopti-integration-layer/internal/application"
	"shopopti-integration-layer/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Handler serves the integration REST API.
type Handler struct {
	connections *application.ConnectionService
	imports     *application.ImportService
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewHandler creates the REST handler
func NewHandler(
	connections *application.ConnectionService,
	imports *application.ImportService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		connections: connections,
		imports:     imports,
		validate:    validator.New(),
		logger:      logger,
	}
}

// Register mounts every API route on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/connect/{platform}", h.Connect)
	r.Post("/api/import/products", h.ImportProducts)
	r.Get("/api/connections", h.ListConnections)
	r.Delete("/api/connections/{id}", h.DeleteConnection)
	r.Get("/api/connections/{id}/shop", h.ShopInfo)
}

type connectRequest struct {
	UserID      string             `json:"user_id"`
	Credentials domain.Credentials `json:"credentials"`
}

// Connect handles POST /api/connect/{platform}
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	platform := chi.URLParam(r, "platform")

	var req connectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Credentials == nil {
		req.Credentials = domain.Credentials{}
	}

	conn, err := h.connections.Connect(r.Context(), platform, req.UserID, req.Credentials)
	if err != nil {
		var failure *domain.ConnectFailure
		if errors.As(err, &failure) {
			writeError(w, connectStatus(failure.Kind), failure.Reason)
			return
		}
		h.logger.Error().Err(err).Str("platform", platform).Msg("Connect failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":        "connected",
		"connection_id": conn.ID,
	})
}

// connectStatus maps the connect failure taxonomy onto HTTP status codes.
// Upstream unreachable is 502 rather than 422 so callers can retry the
// former and fix their credentials for the latter.
func connectStatus(kind domain.ConnectFailureKind) int {
	switch kind {
	case domain.ConnectInvalidInput, domain.ConnectUnsupportedPlatform:
		return http.StatusBadRequest
	case domain.ConnectRejected:
		return http.StatusUnprocessableEntity
	case domain.ConnectTransportFault:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type importRequest struct {
	Products []importProduct `json:"products" validate:"dive"`
}

type importProduct struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	UserID      string   `json:"user_id"`
}

// ImportProducts handles POST /api/import/products
func (h *Handler) ImportProducts(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	drafts := make([]domain.ProductDraft, 0, len(req.Products))
	for _, p := range req.Products {
		drafts = append(drafts, domain.ProductDraft{
			Title:       p.Title,
			Description: p.Description,
			Price:       *p.Price,
			UserID:      p.UserID,
		})
	}

	result := h.imports.ImportProducts(r.Context(), drafts)
	writeJSON(w, http.StatusOK, result)
}

// connectionSummary deliberately omits credentials; they are never echoed
// back to callers.
type connectionSummary struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
}

// ListConnections handles GET /api/connections?user_id=
func (h *Handler) ListConnections(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id required")
		return
	}

	conns, err := h.connections.List(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list connections")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	summaries := make([]connectionSummary, 0, len(conns))
	for _, c := range conns {
		summaries = append(summaries, connectionSummary{
			ID:        c.ID,
			Platform:  c.Platform,
			CreatedAt: c.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"connections": summaries})
}

// DeleteConnection handles DELETE /api/connections/{id}
func (h *Handler) DeleteConnection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.connections.Disconnect(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "connection not found")
			return
		}
		h.logger.Error().Err(err).Str("connectionId", id).Msg("Failed to delete connection")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ShopInfo handles GET /api/connections/{id}/shop
func (h *Handler) ShopInfo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	info, err := h.connections.ShopInfo(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "connection not found")
		case errors.Is(err, application.ErrNotShopify):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Str("connectionId", id).Msg("Failed to fetch shop info")
			writeError(w, http.StatusBadGateway, "failed to reach shopify")
		}
		return
	}

	writeJSON(w, http.StatusOK, info)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
