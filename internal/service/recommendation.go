package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/recommendme-server/internal/logger"
	"github.com/dtroode/recommendme-server/internal/model"
)

type Recommendation struct {
	recommendationStore model.RecommendationStore
	queryStore          model.QueryStore
	logger              *logger.Logger
	timeout             time.Duration
	now                 func() time.Time
}

func NewRecommendation(
	recommendationStore model.RecommendationStore,
	queryStore model.QueryStore,
	logger *logger.Logger,
	timeout time.Duration,
) *Recommendation {
	return &Recommendation{
		recommendationStore: recommendationStore,
		queryStore:          queryStore,
		logger:              logger,
		timeout:             timeout,
		now:                 time.Now,
	}
}

func (s *Recommendation) ListForQuery(ctx context.Context, queryID string) ([]model.Recommendation, error) {
	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	recommendations, err := s.recommendationStore.GetByQueryID(ctx, queryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recommendations by query id: %w", err)
	}

	return nonNil(recommendations), nil
}

func (s *Recommendation) ListByRecommender(ctx context.Context, email string) ([]model.Recommendation, error) {
	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	recommendations, err := s.recommendationStore.GetByRecommender(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get recommendations by recommender: %w", err)
	}

	return nonNil(recommendations), nil
}

func (s *Recommendation) ListForUser(ctx context.Context, email string) ([]model.Recommendation, error) {
	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	recommendations, err := s.recommendationStore.GetByTargetUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get recommendations for user: %w", err)
	}

	return nonNil(recommendations), nil
}

// CreateRecommendation stores the recommendation and then increments the
// parent query's counter. The two writes are independent: if the increment
// fails the recommendation stays stored and the counter under-counts.
func (s *Recommendation) CreateRecommendation(ctx context.Context, recommendation model.Recommendation) (model.InsertResult, error) {
	recommendation.ID = ""
	if recommendation.Date.IsZero() {
		recommendation.Date = s.now().UTC()
	}

	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.recommendationStore.Create(ctx, recommendation)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to create recommendation: %w", err)
	}
	if result.InsertedID == "" {
		return result, nil
	}

	if _, err := s.adjustCount(ctx, recommendation.QueryID, 1); err != nil {
		s.logger.Error("Recommendation service: counter increment failed after insert",
			"recommendation_id", result.InsertedID,
			"query_id", recommendation.QueryID,
			"error", err)
		return result, fmt.Errorf("recommendation %s stored but query counter not incremented: %w", result.InsertedID, err)
	}

	return result, nil
}

// DeleteRecommendation removes the recommendation and, iff exactly one
// document was deleted, decrements the parent query's counter. A missing
// recommendation yields a zero DeletedCount and no counter change.
func (s *Recommendation) DeleteRecommendation(ctx context.Context, id string) (model.DeleteResult, error) {
	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	recommendation, err := s.recommendationStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.DeleteResult{Acknowledged: true}, nil
	}
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("failed to get recommendation: %w", err)
	}

	result, err := s.recommendationStore.Delete(ctx, id)
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("failed to delete recommendation: %w", err)
	}
	if result.DeletedCount != 1 {
		return result, nil
	}

	if _, err := s.adjustCount(ctx, recommendation.QueryID, -1); err != nil {
		s.logger.Error("Recommendation service: counter decrement failed after delete",
			"recommendation_id", id,
			"query_id", recommendation.QueryID,
			"error", err)
		return result, fmt.Errorf("recommendation %s deleted but query counter not decremented: %w", id, err)
	}

	return result, nil
}

// adjustCount moves the parent query's counter. A queryId that cannot name
// any query matches nothing.
func (s *Recommendation) adjustCount(ctx context.Context, queryID string, delta int) (model.UpdateResult, error) {
	res, err := s.queryStore.AdjustRecommendationCount(ctx, queryID, delta)
	if errors.Is(err, model.ErrInvalidID) {
		return model.UpdateResult{Acknowledged: true}, nil
	}
	return res, err
}
