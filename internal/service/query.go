package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dtroode/recommendme-server/internal/logger"
	"github.com/dtroode/recommendme-server/internal/model"
)

// ErrEmptyUpdate is returned when an update request carries no fields.
var ErrEmptyUpdate = errors.New("update has no fields")

type Query struct {
	queryStore model.QueryStore
	logger     *logger.Logger
	timeout    time.Duration
	now        func() time.Time
}

func NewQuery(queryStore model.QueryStore, logger *logger.Logger, timeout time.Duration) *Query {
	return &Query{
		queryStore: queryStore,
		logger:     logger,
		timeout:    timeout,
		now:        time.Now,
	}
}

// ListQueries returns every query, or only the first limit queries when limit > 0.
func (s *Query) ListQueries(ctx context.Context, limit int64) ([]model.Query, error) {
	if limit < 0 {
		limit = 0
	}

	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	queries, err := s.queryStore.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}

	return nonNil(queries), nil
}

// SearchQueries matches term case-insensitively against product names.
func (s *Query) SearchQueries(ctx context.Context, term string) ([]model.Query, error) {
	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	queries, err := s.queryStore.Search(ctx, term)
	if err != nil {
		s.logger.Error("Query service: search failed", "term", term, "error", err)
		return nil, fmt.Errorf("failed to search queries: %w", err)
	}

	return nonNil(queries), nil
}

func (s *Query) GetQuery(ctx context.Context, id string) (model.Query, error) {
	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	query, err := s.queryStore.GetByID(ctx, id)
	if err != nil {
		return model.Query{}, fmt.Errorf("failed to get query by id: %w", err)
	}

	return query, nil
}

// CreateQuery stores a query on behalf of identity, which must own it.
func (s *Query) CreateQuery(ctx context.Context, identity model.Identity, query model.Query) (model.InsertResult, error) {
	if !identity.Owns(query.Email) {
		s.logger.Warn("Query service: create rejected, owner mismatch",
			"identity", identity.Email,
			"email", query.Email)
		return model.InsertResult{}, model.ErrUnauthorized
	}

	query.ID = ""
	query.ProductName = strings.TrimSpace(query.ProductName)
	query.RecommendationCount = 0
	if query.Date.IsZero() {
		query.Date = s.now().UTC()
	}

	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.queryStore.Create(ctx, query)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to create query: %w", err)
	}

	s.logger.Debug("Query service: query created", "query_id", result.InsertedID, "email", query.Email)

	return result, nil
}

// UpdateQuery overwrites the non-nil fields of update. Ownership is not checked.
func (s *Query) UpdateQuery(ctx context.Context, id string, update model.QueryUpdate) (model.UpdateResult, error) {
	if update.IsEmpty() {
		return model.UpdateResult{}, ErrEmptyUpdate
	}

	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.queryStore.Update(ctx, id, update)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("failed to update query: %w", err)
	}

	return result, nil
}

// ListOwnQueries returns the queries owned by email, newest first.
// identity must be the owner.
func (s *Query) ListOwnQueries(ctx context.Context, identity model.Identity, email string) ([]model.Query, error) {
	if !identity.Owns(email) {
		s.logger.Warn("Query service: owner listing rejected",
			"identity", identity.Email,
			"email", email)
		return nil, model.ErrUnauthorized
	}

	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	queries, err := s.queryStore.GetByOwner(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get queries by owner: %w", err)
	}

	return nonNil(queries), nil
}

// DeleteQuery removes a query unconditionally. Recommendations that
// reference it are left in place.
func (s *Query) DeleteQuery(ctx context.Context, id string) (model.DeleteResult, error) {
	ctx, cancel := withStoreTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.queryStore.Delete(ctx, id)
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("failed to delete query: %w", err)
	}

	return result, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
