package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/recommendme-server/internal/api/http/response"
	"github.com/dtroode/recommendme-server/internal/logger"
	"github.com/dtroode/recommendme-server/internal/model"
	"github.com/dtroode/recommendme-server/internal/validation"
)

// QueryService is the query use-case surface the handlers depend on.
type QueryService interface {
	ListQueries(ctx context.Context, limit int64) ([]model.Query, error)
	SearchQueries(ctx context.Context, term string) ([]model.Query, error)
	GetQuery(ctx context.Context, id string) (model.Query, error)
	CreateQuery(ctx context.Context, identity model.Identity, query model.Query) (model.InsertResult, error)
	UpdateQuery(ctx context.Context, id string, update model.QueryUpdate) (model.UpdateResult, error)
	ListOwnQueries(ctx context.Context, identity model.Identity, email string) ([]model.Query, error)
	DeleteQuery(ctx context.Context, id string) (model.DeleteResult, error)
}

type Query struct {
	service        QueryService
	contextManager model.ContextManager
	validator      *validation.Validator
	logger         *logger.Logger
}

func NewQuery(service QueryService, contextManager model.ContextManager, validator *validation.Validator, logger *logger.Logger) *Query {
	return &Query{
		service:        service,
		contextManager: contextManager,
		validator:      validator,
		logger:         logger,
	}
}

// List handles GET /queries?limit=N.
func (h *Query) List(w http.ResponseWriter, r *http.Request) {
	queries, err := h.service.ListQueries(r.Context(), parseLimit(r.URL.Query().Get("limit")))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, queries)
}

// Get handles GET /queries/{id}. A missing query is answered with 200 and null.
func (h *Query) Get(w http.ResponseWriter, r *http.Request) {
	query, err := h.service.GetQuery(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, model.ErrNotFound) {
		response.JSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, query)
}

// Search handles GET /search?q=term.
func (h *Query) Search(w http.ResponseWriter, r *http.Request) {
	queries, err := h.service.SearchQueries(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to search queries")
		return
	}

	response.JSON(w, http.StatusOK, queries)
}

// Create handles POST /queries. The token identity must own formData.
func (h *Query) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, model.ErrUnauthorized)
		return
	}

	var req CreateQueryRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	if !identity.Owns(req.FormData.Email) {
		handleError(w, h.logger, model.ErrUnauthorized)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	result, err := h.service.CreateQuery(r.Context(), identity, req.FormData.toModel())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Update handles PUT /update-query/{id}.
func (h *Query) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateQueryRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	result, err := h.service.UpdateQuery(r.Context(), chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Delete handles DELETE /my-queries/{id}.
func (h *Query) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DeleteQuery(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// ListOwn handles POST /my-queries. The token identity must match body.email.
func (h *Query) ListOwn(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, model.ErrUnauthorized)
		return
	}

	var req OwnQueriesRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	if !identity.Owns(req.Email) {
		handleError(w, h.logger, model.ErrUnauthorized)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	queries, err := h.service.ListOwnQueries(r.Context(), identity, req.Email)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, queries)
}

// parseLimit reads the leading integer of raw, so "5abc" is 5. Anything
// without leading digits means no limit.
func parseLimit(raw string) int64 {
	raw = strings.TrimLeft(raw, " \t\n\r")
	end := 0
	if end < len(raw) && (raw[end] == '-' || raw[end] == '+') {
		end++
	}
	start := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}

	limit, err := strconv.ParseInt(raw[:end], 10, 64)
	if err != nil {
		return 0
	}
	return limit
}
