package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/recommendme-server/internal/model"
)

var _ model.QueryStore = (*QueryRepository)(nil)

const queryColumns = `id, email, user_name, user_image, product_name, product_brand, product_image,
	query_title, boycotting_reason, date, recommendation_count`

type QueryRepository struct {
	db *Connection
}

func NewQueryRepository(db *Connection) *QueryRepository {
	return &QueryRepository{
		db: db,
	}
}

func (r *QueryRepository) List(ctx context.Context, limit int64) ([]model.Query, error) {
	query := `SELECT ` + queryColumns + ` FROM queries ORDER BY date ASC LIMIT NULLIF($1::bigint, 0)`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	return collectQueries(rows)
}

func (r *QueryRepository) Search(ctx context.Context, term string) ([]model.Query, error) {
	query := `SELECT ` + queryColumns + ` FROM queries
		WHERE product_name ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY date ASC`

	rows, err := r.db.Query(ctx, query, escapeLike(term))
	if err != nil {
		return nil, err
	}

	return collectQueries(rows)
}

func (r *QueryRepository) GetByID(ctx context.Context, id string) (model.Query, error) {
	uid, err := parseID(id)
	if err != nil {
		return model.Query{}, err
	}

	query := `SELECT ` + queryColumns + ` FROM queries WHERE id = $1`

	q, err := scanQuery(r.db.QueryRow(ctx, query, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Query{}, model.ErrNotFound
		}
		return model.Query{}, err
	}

	return q, nil
}

func (r *QueryRepository) GetByOwner(ctx context.Context, email string) ([]model.Query, error) {
	query := `SELECT ` + queryColumns + ` FROM queries WHERE email = $1 ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}

	return collectQueries(rows)
}

func (r *QueryRepository) Create(ctx context.Context, q model.Query) (model.InsertResult, error) {
	query := `
		INSERT INTO queries (id, email, user_name, user_image, product_name, product_brand, product_image,
			query_title, boycotting_reason, date, recommendation_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		uuid.New(), q.Email, q.UserName, q.UserImage, q.ProductName, q.ProductBrand, q.ProductImage,
		q.QueryTitle, q.BoycottingReason, q.Date, q.RecommendationCount,
	).Scan(&id)
	if err != nil {
		return model.InsertResult{}, err
	}

	return model.InsertResult{Acknowledged: true, InsertedID: id.String()}, nil
}

func (r *QueryRepository) Update(ctx context.Context, id string, update model.QueryUpdate) (model.UpdateResult, error) {
	uid, err := parseID(id)
	if err != nil {
		return model.UpdateResult{}, err
	}

	set, args := buildQueryUpdate(update)
	if len(args) == 0 {
		return model.UpdateResult{}, fmt.Errorf("empty update")
	}

	args = append(args, uid)
	query := fmt.Sprintf(`UPDATE queries SET %s WHERE id = $%d`, set, len(args))

	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return model.UpdateResult{}, err
	}

	// Postgres rewrites matched rows even when values are unchanged.
	affected := cmd.RowsAffected()
	return model.UpdateResult{Acknowledged: true, MatchedCount: affected, ModifiedCount: affected}, nil
}

func (r *QueryRepository) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	uid, err := parseID(id)
	if err != nil {
		return model.DeleteResult{}, err
	}

	cmd, err := r.db.Exec(ctx, `DELETE FROM queries WHERE id = $1`, uid)
	if err != nil {
		return model.DeleteResult{}, err
	}

	return model.DeleteResult{Acknowledged: true, DeletedCount: cmd.RowsAffected()}, nil
}

func (r *QueryRepository) AdjustRecommendationCount(ctx context.Context, id string, delta int) (model.UpdateResult, error) {
	uid, err := parseID(id)
	if err != nil {
		return model.UpdateResult{Acknowledged: true}, nil
	}

	const query = `UPDATE queries SET recommendation_count = recommendation_count + $2 WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, uid, delta)
	if err != nil {
		return model.UpdateResult{}, err
	}

	affected := cmd.RowsAffected()
	return model.UpdateResult{Acknowledged: true, MatchedCount: affected, ModifiedCount: affected}, nil
}

func scanQuery(row pgx.Row) (model.Query, error) {
	var (
		q  model.Query
		id uuid.UUID
	)
	err := row.Scan(
		&id, &q.Email, &q.UserName, &q.UserImage, &q.ProductName, &q.ProductBrand, &q.ProductImage,
		&q.QueryTitle, &q.BoycottingReason, &q.Date, &q.RecommendationCount,
	)
	if err != nil {
		return model.Query{}, err
	}
	q.ID = id.String()
	return q, nil
}

func collectQueries(rows pgx.Rows) ([]model.Query, error) {
	defer rows.Close()

	queries := []model.Query{}
	for rows.Next() {
		q, err := scanQuery(rows)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return queries, nil
}

// buildQueryUpdate renders the SET clause for the non-nil fields of update.
// Placeholders start at $1.
func buildQueryUpdate(update model.QueryUpdate) (string, []any) {
	var (
		parts []string
		args  []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		parts = append(parts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.ProductName != nil {
		add("product_name", *update.ProductName)
	}
	if update.ProductBrand != nil {
		add("product_brand", *update.ProductBrand)
	}
	if update.ProductImage != nil {
		add("product_image", *update.ProductImage)
	}
	if update.QueryTitle != nil {
		add("query_title", *update.QueryTitle)
	}
	if update.BoycottingReason != nil {
		add("boycotting_reason", *update.BoycottingReason)
	}
	if update.Date != nil {
		add("date", *update.Date)
	}

	return strings.Join(parts, ", "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
