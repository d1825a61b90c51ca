package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/recommendme-server/internal/api/http/response"
	"github.com/dtroode/recommendme-server/internal/logger"
	"github.com/dtroode/recommendme-server/internal/model"
	"github.com/dtroode/recommendme-server/internal/validation"
)

type RecommendationService interface {
	ListForQuery(ctx context.Context, queryID string) ([]model.Recommendation, error)
	ListByRecommender(ctx context.Context, email string) ([]model.Recommendation, error)
	ListForUser(ctx context.Context, email string) ([]model.Recommendation, error)
	CreateRecommendation(ctx context.Context, recommendation model.Recommendation) (model.InsertResult, error)
	DeleteRecommendation(ctx context.Context, id string) (model.DeleteResult, error)
}

type Recommendation struct {
	service   RecommendationService
	validator *validation.Validator
	logger    *logger.Logger
}

func NewRecommendation(service RecommendationService, validator *validation.Validator, logger *logger.Logger) *Recommendation {
	return &Recommendation{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// ListForQuery handles GET /recommendations/{id}, where id is the query id.
func (h *Recommendation) ListForQuery(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListForQuery, chi.URLParam(r, "id"))
}

// ListByRecommender handles GET /recommended-by-me/{email}.
func (h *Recommendation) ListByRecommender(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListByRecommender, chi.URLParam(r, "email"))
}

// ListForUser handles GET /recommended-for-me/{email}.
func (h *Recommendation) ListForUser(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListForUser, chi.URLParam(r, "email"))
}

func (h *Recommendation) list(
	w http.ResponseWriter,
	r *http.Request,
	fetch func(context.Context, string) ([]model.Recommendation, error),
	key string,
) {
	recommendations, err := fetch(r.Context(), key)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, recommendations)
}

// Create handles POST /recommendations.
func (h *Recommendation) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRecommendationRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	result, err := h.service.CreateRecommendation(r.Context(), req.toModel())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Delete handles DELETE /recommendations/{id}.
func (h *Recommendation) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DeleteRecommendation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}
