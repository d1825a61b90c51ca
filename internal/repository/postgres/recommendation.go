package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/recommendme-server/internal/model"
)

var _ model.RecommendationStore = (*RecommendationRepository)(nil)

const recommendationColumns = `id, query_id, query_title, product_name, user_email, user_name,
	recommender_email, recommender_name, recommendation_title, recommended_product_name,
	recommended_product_image, recommendation_reason, date`

type RecommendationRepository struct {
	db *Connection
}

func NewRecommendationRepository(db *Connection) *RecommendationRepository {
	return &RecommendationRepository{
		db: db,
	}
}

func (r *RecommendationRepository) GetByID(ctx context.Context, id string) (model.Recommendation, error) {
	uid, err := parseID(id)
	if err != nil {
		return model.Recommendation{}, err
	}

	query := `SELECT ` + recommendationColumns + ` FROM recommendations WHERE id = $1`

	rec, err := scanRecommendation(r.db.QueryRow(ctx, query, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Recommendation{}, model.ErrNotFound
		}
		return model.Recommendation{}, err
	}

	return rec, nil
}

func (r *RecommendationRepository) GetByQueryID(ctx context.Context, queryID string) ([]model.Recommendation, error) {
	return r.listBy(ctx, "query_id", queryID)
}

func (r *RecommendationRepository) GetByRecommender(ctx context.Context, email string) ([]model.Recommendation, error) {
	return r.listBy(ctx, "recommender_email", email)
}

func (r *RecommendationRepository) GetByTargetUser(ctx context.Context, email string) ([]model.Recommendation, error) {
	return r.listBy(ctx, "user_email", email)
}

func (r *RecommendationRepository) Create(ctx context.Context, rec model.Recommendation) (model.InsertResult, error) {
	query := `
		INSERT INTO recommendations (id, query_id, query_title, product_name, user_email, user_name,
			recommender_email, recommender_name, recommendation_title, recommended_product_name,
			recommended_product_image, recommendation_reason, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		uuid.New(), rec.QueryID, rec.QueryTitle, rec.ProductName, rec.UserEmail, rec.UserName,
		rec.RecommenderEmail, rec.RecommenderName, rec.RecommendationTitle, rec.RecommendedProductName,
		rec.RecommendedProductImage, rec.RecommendationReason, rec.Date,
	).Scan(&id)
	if err != nil {
		return model.InsertResult{}, err
	}

	return model.InsertResult{Acknowledged: true, InsertedID: id.String()}, nil
}

func (r *RecommendationRepository) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	uid, err := parseID(id)
	if err != nil {
		return model.DeleteResult{}, err
	}

	cmd, err := r.db.Exec(ctx, `DELETE FROM recommendations WHERE id = $1`, uid)
	if err != nil {
		return model.DeleteResult{}, err
	}

	return model.DeleteResult{Acknowledged: true, DeletedCount: cmd.RowsAffected()}, nil
}

// listBy filters on a fixed column name; column is never user input.
func (r *RecommendationRepository) listBy(ctx context.Context, column, value string) ([]model.Recommendation, error) {
	query := `SELECT ` + recommendationColumns + ` FROM recommendations WHERE ` + column + ` = $1 ORDER BY date ASC`

	rows, err := r.db.Query(ctx, query, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := []model.Recommendation{}
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return recs, nil
}

func scanRecommendation(row pgx.Row) (model.Recommendation, error) {
	var (
		rec model.Recommendation
		id  uuid.UUID
	)
	err := row.Scan(
		&id, &rec.QueryID, &rec.QueryTitle, &rec.ProductName, &rec.UserEmail, &rec.UserName,
		&rec.RecommenderEmail, &rec.RecommenderName, &rec.RecommendationTitle, &rec.RecommendedProductName,
		&rec.RecommendedProductImage, &rec.RecommendationReason, &rec.Date,
	)
	if err != nil {
		return model.Recommendation{}, err
	}
	rec.ID = id.String()
	return rec, nil
}
