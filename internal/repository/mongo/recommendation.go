package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dtroode/recommendme-server/internal/model"
)

var _ model.RecommendationStore = (*RecommendationRepository)(nil)

type RecommendationRepository struct {
	coll *mongo.Collection
}

func NewRecommendationRepository(db *Connection) *RecommendationRepository {
	return &RecommendationRepository{
		coll: db.Collection(recommendationsCollection),
	}
}

func (r *RecommendationRepository) GetByID(ctx context.Context, id string) (model.Recommendation, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.Recommendation{}, err
	}

	var doc recommendationDocument
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Recommendation{}, model.ErrNotFound
		}
		return model.Recommendation{}, err
	}

	return doc.toModel(), nil
}

func (r *RecommendationRepository) GetByQueryID(ctx context.Context, queryID string) ([]model.Recommendation, error) {
	return r.find(ctx, bson.D{{Key: "queryId", Value: queryID}})
}

func (r *RecommendationRepository) GetByRecommender(ctx context.Context, email string) ([]model.Recommendation, error) {
	return r.find(ctx, bson.D{{Key: "recommenderEmail", Value: email}})
}

func (r *RecommendationRepository) GetByTargetUser(ctx context.Context, email string) ([]model.Recommendation, error) {
	return r.find(ctx, bson.D{{Key: "userEmail", Value: email}})
}

func (r *RecommendationRepository) Create(ctx context.Context, recommendation model.Recommendation) (model.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, newRecommendationDocument(recommendation))
	if err != nil {
		return model.InsertResult{}, err
	}

	return model.InsertResult{
		Acknowledged: true,
		InsertedID:   insertedHex(res.InsertedID),
	}, nil
}

func (r *RecommendationRepository) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.DeleteResult{}, err
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return model.DeleteResult{}, err
	}

	return model.DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}, nil
}

func (r *RecommendationRepository) find(ctx context.Context, filter bson.D) ([]model.Recommendation, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var docs []recommendationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	recommendations := make([]model.Recommendation, 0, len(docs))
	for _, doc := range docs {
		recommendations = append(recommendations, doc.toModel())
	}

	return recommendations, nil
}
