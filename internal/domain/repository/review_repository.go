package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"game_catalog/internal/common"
	"game_catalog/internal/domain/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	Update(ctx context.Context, review *model.Review) error
	SoftDelete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Review, error)
	ListByGame(ctx context.Context, gameID string) ([]model.Review, error)
	List(ctx context.Context, gameID string, limit, offset int) ([]model.Review, int, error)
}

type pgReviewRepository struct {
	db *sql.DB
}

func NewPgReviewRepository(db *sql.DB) ReviewRepository {
	return &pgReviewRepository{db: db}
}

const reviewColumns = `r.id, r.owner_id, ou.username AS owner_username,
               r.game_id, g.title AS game_title,
               r.title, r.rating, r.content, r.image_url,
               r.created_at, r.updated_at`

const reviewJoins = `
        FROM reviews r
        LEFT JOIN users ou ON r.owner_id = ou.id
        LEFT JOIN games g ON r.game_id = g.id`

func (r *pgReviewRepository) Create(ctx context.Context, rv *model.Review) error {
	query := `INSERT INTO reviews (id, owner_id, game_id, title, rating, content, image_url)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, rv.ID, rv.OwnerID, rv.GameID, rv.Title, rv.Rating, rv.Content, rv.ImageURL)
	if err != nil {
		return fmt.Errorf("pgReviewRepository.Create: %w", err)
	}
	return nil
}

func (r *pgReviewRepository) Update(ctx context.Context, rv *model.Review) error {
	query := `UPDATE reviews SET
	            title = $1, rating = $2, content = $3, image_url = $4,
	            updated_at = CURRENT_TIMESTAMP
	          WHERE id = $5 AND is_deleted = FALSE`
	res, err := r.db.ExecContext(ctx, query, rv.Title, rv.Rating, rv.Content, rv.ImageURL, rv.ID)
	if err != nil {
		return fmt.Errorf("pgReviewRepository.Update: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgReviewRepository) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE reviews SET is_deleted = TRUE, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $1 AND is_deleted = FALSE`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("pgReviewRepository.SoftDelete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgReviewRepository) FindByID(ctx context.Context, id string) (*model.Review, error) {
	query := `SELECT ` + reviewColumns + reviewJoins + `
        WHERE r.id = $1 AND r.is_deleted = FALSE`

	review := &model.Review{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&review.ID, &review.OwnerID, &review.OwnerUsername,
		&review.GameID, &review.GameTitle,
		&review.Title, &review.Rating, &review.Content, &review.ImageURL,
		&review.CreatedAt, &review.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgReviewRepository.FindByID: %w", err)
	}
	return review, nil
}

func (r *pgReviewRepository) ListByGame(ctx context.Context, gameID string) ([]model.Review, error) {
	query := `SELECT ` + reviewColumns + reviewJoins + `
        WHERE r.game_id = $1 AND r.is_deleted = FALSE
        ORDER BY r.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("pgReviewRepository.ListByGame query: %w", err)
	}
	defer rows.Close()
	return scanReviews(rows, "ListByGame")
}

func (r *pgReviewRepository) List(ctx context.Context, gameID string, limit, offset int) ([]model.Review, int, error) {
	where := ` WHERE r.is_deleted = FALSE`
	var args []interface{}
	argID := 1
	if gameID != "" {
		where += fmt.Sprintf(" AND r.game_id = $%d", argID)
		args = append(args, gameID)
		argID++
	}

	var total int
	countQuery := `SELECT COUNT(r.id) FROM reviews r` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("pgReviewRepository.List count: %w", err)
	}

	query := `SELECT ` + reviewColumns + reviewJoins + where +
		fmt.Sprintf(" ORDER BY r.created_at DESC LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("pgReviewRepository.List query: %w", err)
	}
	defer rows.Close()

	reviews, err := scanReviews(rows, "List")
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func scanReviews(rows *sql.Rows, op string) ([]model.Review, error) {
	reviews := []model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.OwnerID, &rv.OwnerUsername,
			&rv.GameID, &rv.GameTitle,
			&rv.Title, &rv.Rating, &rv.Content, &rv.ImageURL,
			&rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("pgReviewRepository.%s scan: %w", op, err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgReviewRepository.%s rows.Err: %w", op, err)
	}
	return reviews, nil
}
