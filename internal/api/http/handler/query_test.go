package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/recommendme-server/internal/mocks"
	"github.com/dtroode/recommendme-server/internal/model"
	"github.com/dtroode/recommendme-server/internal/service"
	"github.com/dtroode/recommendme-server/internal/testutil"
	"github.com/dtroode/recommendme-server/internal/validation"
)

func newQueryHandler(t *testing.T) (*Query, *mocks.QueryService, *mocks.ContextManager) {
	svc := mocks.NewQueryService(t)
	cm := mocks.NewContextManager(t)
	return NewQuery(svc, cm, validation.New(), testutil.MakeNoopLogger()), svc, cm
}

func TestQuery_List(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		mockSetup  func(*mocks.QueryService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "with limit",
			target: "/queries?limit=2",
			mockSetup: func(svc *mocks.QueryService) {
				svc.On("ListQueries", mock.Anything, int64(2)).Return([]model.Query{{ID: "1"}, {ID: "2"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "no limit",
			target: "/queries",
			mockSetup: func(svc *mocks.QueryService) {
				svc.On("ListQueries", mock.Anything, int64(0)).Return([]model.Query{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:   "non-numeric limit lists everything",
			target: "/queries?limit=abc",
			mockSetup: func(svc *mocks.QueryService) {
				svc.On("ListQueries", mock.Anything, int64(0)).Return([]model.Query{{ID: "1"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "limit with trailing text",
			target: "/queries?limit=5abc",
			mockSetup: func(svc *mocks.QueryService) {
				svc.On("ListQueries", mock.Anything, int64(5)).Return([]model.Query{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "store failure",
			target: "/queries",
			mockSetup: func(svc *mocks.QueryService) {
				svc.On("ListQueries", mock.Anything, int64(0)).Return(nil, errors.New("down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc, _ := newQueryHandler(t)
			tt.mockSetup(svc)

			rec := serve(http.MethodGet, "/queries", h.List, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestQuery_Get(t *testing.T) {
	tests := []struct {
		name       string
		result     model.Query
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "found",
			result:     model.Query{ID: "q1", Email: "a@x.com", ProductName: "Red Shirt", Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
			wantStatus: http.StatusOK,
			wantBody:   `{"_id":"q1","email":"a@x.com","productName":"Red Shirt","date":"2024-05-01T00:00:00Z","recommendationCount":0}`,
		},
		{
			name:       "missing is null",
			err:        model.ErrNotFound,
			wantStatus: http.StatusOK,
			wantBody:   `null`,
		},
		{
			name:       "invalid id",
			err:        model.ErrInvalidID,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"invalid id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc, _ := newQueryHandler(t)
			svc.On("GetQuery", mock.Anything, "q1").Return(tt.result, tt.err)

			rec := serve(http.MethodGet, "/queries/{id}", h.Get, "/queries/q1", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestQuery_Search(t *testing.T) {
	h, svc, _ := newQueryHandler(t)
	svc.On("SearchQueries", mock.Anything, "shirt").Return([]model.Query{{ID: "1", ProductName: "Red Shirt"}}, nil).Once()
	svc.On("SearchQueries", mock.Anything, "boom").Return(nil, errors.New("down")).Once()

	rec := serve(http.MethodGet, "/search", h.Search, "/search?q=shirt", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Red Shirt")

	rec = serve(http.MethodGet, "/search", h.Search, "/search?q=boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Failed to search queries"}`, rec.Body.String())
}

func TestQuery_Create(t *testing.T) {
	tests := []struct {
		name       string
		identity   model.Identity
		hasID      bool
		body       string
		mockSetup  func(*mocks.QueryService)
		wantStatus int
		wantBody   string
	}{
		{
			name:     "owner matches",
			identity: model.Identity{Email: "a@x.com"},
			hasID:    true,
			body:     `{"formData":{"email":"a@x.com","productName":"Red Shirt"}}`,
			mockSetup: func(svc *mocks.QueryService) {
				svc.On("CreateQuery", mock.Anything, model.Identity{Email: "a@x.com"}, mock.MatchedBy(func(q model.Query) bool {
					return q.Email == "a@x.com" && q.ProductName == "Red Shirt"
				})).Return(model.InsertResult{Acknowledged: true, InsertedID: "new-id"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"acknowledged":true,"insertedId":"new-id"}`,
		},
		{
			name:       "owner mismatch",
			identity:   model.Identity{Email: "a@x.com"},
			hasID:      true,
			body:       `{"formData":{"email":"b@x.com","productName":"Red Shirt"}}`,
			mockSetup:  func(svc *mocks.QueryService) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Unauthorized access"}`,
		},
		{
			name:       "mismatch wins over invalid payload",
			identity:   model.Identity{Email: "a@x.com"},
			hasID:      true,
			body:       `{"formData":{"email":"not-an-email"}}`,
			mockSetup:  func(svc *mocks.QueryService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing product name",
			identity:   model.Identity{Email: "a@x.com"},
			hasID:      true,
			body:       `{"formData":{"email":"a@x.com"}}`,
			mockSetup:  func(svc *mocks.QueryService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"validation failed","errors":{"formData.productName":"is required"}}`,
		},
		{
			name:       "malformed body",
			identity:   model.Identity{Email: "a@x.com"},
			hasID:      true,
			body:       `{"formData":`,
			mockSetup:  func(svc *mocks.QueryService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"invalid request body"}`,
		},
		{
			name:       "no identity in context",
			hasID:      false,
			body:       `{"formData":{"email":"a@x.com","productName":"x"}}`,
			mockSetup:  func(svc *mocks.QueryService) {},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc, cm := newQueryHandler(t)
			cm.On("GetIdentityFromContext", mock.Anything).Return(tt.identity, tt.hasID)
			tt.mockSetup(svc)

			rec := serve(http.MethodPost, "/queries", h.Create, "/queries", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestQuery_Update(t *testing.T) {
	t.Run("merges provided fields", func(t *testing.T) {
		h, svc, _ := newQueryHandler(t)
		svc.On("UpdateQuery", mock.Anything, "q1", mock.MatchedBy(func(u model.QueryUpdate) bool {
			return u.ProductName != nil && *u.ProductName == "Blue Shirt" && u.ProductBrand == nil
		})).Return(model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

		rec := serve(http.MethodPut, "/update-query/{id}", h.Update, "/update-query/q1", `{"productName":"Blue Shirt"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1}`, rec.Body.String())
	})

	t.Run("empty update", func(t *testing.T) {
		h, svc, _ := newQueryHandler(t)
		svc.On("UpdateQuery", mock.Anything, "q1", model.QueryUpdate{}).Return(model.UpdateResult{}, service.ErrEmptyUpdate)

		rec := serve(http.MethodPut, "/update-query/{id}", h.Update, "/update-query/q1", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestQuery_Delete(t *testing.T) {
	h, svc, _ := newQueryHandler(t)
	svc.On("DeleteQuery", mock.Anything, "q1").Return(model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)

	rec := serve(http.MethodDelete, "/my-queries/{id}", h.Delete, "/my-queries/q1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, rec.Body.String())
}

func TestQuery_ListOwn(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		h, svc, cm := newQueryHandler(t)
		cm.On("GetIdentityFromContext", mock.Anything).Return(model.Identity{Email: "a@x.com"}, true)
		svc.On("ListOwnQueries", mock.Anything, model.Identity{Email: "a@x.com"}, "a@x.com").
			Return([]model.Query{{ID: "2"}, {ID: "1"}}, nil)

		rec := serve(http.MethodPost, "/my-queries", h.ListOwn, "/my-queries", `{"email":"a@x.com"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"_id":"2"`)
	})

	t.Run("someone else", func(t *testing.T) {
		h, _, cm := newQueryHandler(t)
		cm.On("GetIdentityFromContext", mock.Anything).Return(model.Identity{Email: "a@x.com"}, true)

		rec := serve(http.MethodPost, "/my-queries", h.ListOwn, "/my-queries", `{"email":"b@x.com"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Unauthorized access"}`, rec.Body.String())
	})
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{raw: "", want: 0},
		{raw: "3", want: 3},
		{raw: " 7", want: 7},
		{raw: "5abc", want: 5},
		{raw: "abc", want: 0},
		{raw: "-", want: 0},
		{raw: "-2", want: -2},
		{raw: "99999999999999999999", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLimit(tt.raw))
		})
	}
}
