package model

import (
	"context"
	"time"
)

// RecommendationStore defines persistence operations for recommendations.
type RecommendationStore interface {
	GetByID(ctx context.Context, id string) (Recommendation, error)
	GetByQueryID(ctx context.Context, queryID string) ([]Recommendation, error)
	GetByRecommender(ctx context.Context, email string) ([]Recommendation, error)
	GetByTargetUser(ctx context.Context, email string) ([]Recommendation, error)
	Create(ctx context.Context, recommendation Recommendation) (InsertResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}

// Recommendation is an answer to a Query authored by another user.
// QueryID is a weak reference: the store does not enforce that it exists.
type Recommendation struct {
	ID                      string    `json:"_id"`
	QueryID                 string    `json:"queryId"`
	QueryTitle              string    `json:"queryTitle,omitempty"`
	ProductName             string    `json:"productName,omitempty"`
	UserEmail               string    `json:"userEmail"`
	UserName                string    `json:"userName,omitempty"`
	RecommenderEmail        string    `json:"recommenderEmail"`
	RecommenderName         string    `json:"recommenderName,omitempty"`
	RecommendationTitle     string    `json:"recommendationTitle,omitempty"`
	RecommendedProductName  string    `json:"recommendedProductName,omitempty"`
	RecommendedProductImage string    `json:"recommendedProductImage,omitempty"`
	RecommendationReason    string    `json:"recommendationReason,omitempty"`
	Date                    time.Time `json:"date"`
}
