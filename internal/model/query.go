package model

import (
	"context"
	"time"
)

// QueryStore defines persistence operations for queries.
type QueryStore interface {
	List(ctx context.Context, limit int64) ([]Query, error)
	Search(ctx context.Context, term string) ([]Query, error)
	GetByID(ctx context.Context, id string) (Query, error)
	GetByOwner(ctx context.Context, email string) ([]Query, error)
	Create(ctx context.Context, query Query) (InsertResult, error)
	Update(ctx context.Context, id string, update QueryUpdate) (UpdateResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
	AdjustRecommendationCount(ctx context.Context, id string, delta int) (UpdateResult, error)
}

// Query is a user's request for a product recommendation.
type Query struct {
	ID                  string    `json:"_id"`
	Email               string    `json:"email"`
	UserName            string    `json:"userName,omitempty"`
	UserImage           string    `json:"userImage,omitempty"`
	ProductName         string    `json:"productName"`
	ProductBrand        string    `json:"productBrand,omitempty"`
	ProductImage        string    `json:"productImage,omitempty"`
	QueryTitle          string    `json:"queryTitle,omitempty"`
	BoycottingReason    string    `json:"boycottingReason,omitempty"`
	Date                time.Time `json:"date"`
	RecommendationCount int       `json:"recommendationCount"`
}

// QueryUpdate lists the query fields that may be overwritten after creation.
// Nil fields are left untouched. Owner email and the recommendation counter
// are not updatable.
type QueryUpdate struct {
	ProductName      *string
	ProductBrand     *string
	ProductImage     *string
	QueryTitle       *string
	BoycottingReason *string
	Date             *time.Time
}

// IsEmpty reports whether the update would change nothing.
func (u QueryUpdate) IsEmpty() bool {
	return u.ProductName == nil &&
		u.ProductBrand == nil &&
		u.ProductImage == nil &&
		u.QueryTitle == nil &&
		u.BoycottingReason == nil &&
		u.Date == nil
}
