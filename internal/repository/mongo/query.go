package mongo

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dtroode/recommendme-server/internal/model"
)

var _ model.QueryStore = (*QueryRepository)(nil)

type QueryRepository struct {
	coll *mongo.Collection
}

func NewQueryRepository(db *Connection) *QueryRepository {
	return &QueryRepository{
		coll: db.Collection(queriesCollection),
	}
}

func (r *QueryRepository) List(ctx context.Context, limit int64) ([]model.Query, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return r.find(ctx, bson.D{}, opts)
}

func (r *QueryRepository) Search(ctx context.Context, term string) ([]model.Query, error) {
	return r.find(ctx, searchFilter(term), options.Find())
}

func (r *QueryRepository) GetByID(ctx context.Context, id string) (model.Query, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.Query{}, err
	}

	var doc queryDocument
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Query{}, model.ErrNotFound
		}
		return model.Query{}, err
	}

	return doc.toModel(), nil
}

func (r *QueryRepository) GetByOwner(ctx context.Context, email string) ([]model.Query, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return r.find(ctx, bson.D{{Key: "email", Value: email}}, opts)
}

func (r *QueryRepository) Create(ctx context.Context, query model.Query) (model.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, newQueryDocument(query))
	if err != nil {
		return model.InsertResult{}, err
	}

	return model.InsertResult{
		Acknowledged: true,
		InsertedID:   insertedHex(res.InsertedID),
	}, nil
}

func (r *QueryRepository) Update(ctx context.Context, id string, update model.QueryUpdate) (model.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.UpdateResult{}, err
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: setFields(update)}},
	)
	if err != nil {
		return model.UpdateResult{}, err
	}

	return updateResult(res), nil
}

func (r *QueryRepository) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
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

func (r *QueryRepository) AdjustRecommendationCount(ctx context.Context, id string, delta int) (model.UpdateResult, error) {
	// queryId is a weak reference; an id no query can have matches nothing.
	oid, err := parseObjectID(id)
	if err != nil {
		return model.UpdateResult{Acknowledged: true}, nil
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "recommendationCount", Value: delta}}}},
	)
	if err != nil {
		return model.UpdateResult{}, err
	}

	return updateResult(res), nil
}

func (r *QueryRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]model.Query, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var docs []queryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	queries := make([]model.Query, 0, len(docs))
	for _, doc := range docs {
		queries = append(queries, doc.toModel())
	}

	return queries, nil
}

// searchFilter matches term literally and case-insensitively anywhere in productName.
func searchFilter(term string) bson.D {
	return bson.D{{Key: "productName", Value: primitive.Regex{
		Pattern: regexp.QuoteMeta(term),
		Options: "i",
	}}}
}

func setFields(update model.QueryUpdate) bson.D {
	set := bson.D{}
	if update.ProductName != nil {
		set = append(set, bson.E{Key: "productName", Value: *update.ProductName})
	}
	if update.ProductBrand != nil {
		set = append(set, bson.E{Key: "productBrand", Value: *update.ProductBrand})
	}
	if update.ProductImage != nil {
		set = append(set, bson.E{Key: "productImage", Value: *update.ProductImage})
	}
	if update.QueryTitle != nil {
		set = append(set, bson.E{Key: "queryTitle", Value: *update.QueryTitle})
	}
	if update.BoycottingReason != nil {
		set = append(set, bson.E{Key: "boycottingReason", Value: *update.BoycottingReason})
	}
	if update.Date != nil {
		set = append(set, bson.E{Key: "date", Value: *update.Date})
	}
	return set
}

func updateResult(res *mongo.UpdateResult) model.UpdateResult {
	return model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
}
