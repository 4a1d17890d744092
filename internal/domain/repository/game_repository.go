package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"game_catalog/internal/common"
	"game_catalog/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type GameRepository interface {
	Create(ctx context.Context, game *model.Game) error
	Update(ctx context.Context, game *model.Game) error
	SoftDelete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Game, error)
	FindBySlug(ctx context.Context, slug string) (*model.Game, error)
	List(ctx context.Context, limit, offset int, category, searchTerm string) ([]model.Game, int, error)
}

type pgGameRepository struct {
	db *sql.DB
}

func NewPgGameRepository(db *sql.DB) GameRepository {
	return &pgGameRepository{db: db}
}

func (r *pgGameRepository) Create(ctx context.Context, g *model.Game) error {
	query := `INSERT INTO games (id, slug, owner_id, title, category, description, cover_url)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, g.ID, g.Slug, g.OwnerID, g.Title, g.Category, g.Description, g.CoverURL)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint for slug
			return fmt.Errorf("game with this slug already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgGameRepository.Create: %w", err)
	}
	return nil
}

func (r *pgGameRepository) Update(ctx context.Context, g *model.Game) error {
	query := `UPDATE games SET
	            slug = $1, title = $2, category = $3, description = $4,
	            cover_url = $5, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $6 AND is_deleted = FALSE`
	res, err := r.db.ExecContext(ctx, query, g.Slug, g.Title, g.Category, g.Description, g.CoverURL, g.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("game with this slug already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgGameRepository.Update: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgGameRepository) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE games SET is_deleted = TRUE, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $1 AND is_deleted = FALSE`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("pgGameRepository.SoftDelete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgGameRepository) FindByID(ctx context.Context, id string) (*model.Game, error) {
	return r.findOne(ctx, `g.id = $1`, id)
}

func (r *pgGameRepository) FindBySlug(ctx context.Context, slug string) (*model.Game, error) {
	return r.findOne(ctx, `g.slug = $1`, slug)
}

func (r *pgGameRepository) findOne(ctx context.Context, where string, arg interface{}) (*model.Game, error) {
	query := `
        SELECT g.id, g.slug, g.owner_id, ou.username AS owner_username,
               g.title, g.category, g.description, g.cover_url,
               g.created_at, g.updated_at
        FROM games g
        LEFT JOIN users ou ON g.owner_id = ou.id
        WHERE ` + where + ` AND g.is_deleted = FALSE`

	game := &model.Game{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&game.ID, &game.Slug, &game.OwnerID, &game.OwnerUsername,
		&game.Title, &game.Category, &game.Description, &game.CoverURL,
		&game.CreatedAt, &game.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgGameRepository.findOne: %w", err)
	}
	return game, nil
}

func (r *pgGameRepository) List(ctx context.Context, limit, offset int, category, searchTerm string) ([]model.Game, int, error) {
	var conditions []string
	var args []interface{}
	argID := 1

	conditions = append(conditions, "g.is_deleted = FALSE")

	if category != "" {
		conditions = append(conditions, fmt.Sprintf("g.category = $%d", argID))
		args = append(args, category)
		argID++
	}
	if searchTerm != "" {
		conditions = append(conditions, fmt.Sprintf("g.title ILIKE $%d", argID))
		args = append(args, "%"+searchTerm+"%")
		argID++
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(g.id) FROM games g` + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("pgGameRepository.List count: %w", err)
	}

	query := `
        SELECT g.id, g.slug, g.owner_id, ou.username AS owner_username,
               g.title, g.category, g.description, g.cover_url,
               g.created_at, g.updated_at
        FROM games g
        LEFT JOIN users ou ON g.owner_id = ou.id` + whereClause +
		fmt.Sprintf(" ORDER BY g.created_at DESC LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("pgGameRepository.List query: %w", err)
	}
	defer rows.Close()

	games := []model.Game{}
	for rows.Next() {
		var g model.Game
		if err := rows.Scan(&g.ID, &g.Slug, &g.OwnerID, &g.OwnerUsername,
			&g.Title, &g.Category, &g.Description, &g.CoverURL,
			&g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("pgGameRepository.List scan: %w", err)
		}
		games = append(games, g)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("pgGameRepository.List rows.Err: %w", err)
	}

	return games, total, nil
}
