package postgres

import (
	"context"
	"database/sql"
	"time"

	"cookbook/internal/domain"
)

// RecipeRepo implements recipe repository operations on DB.
type RecipeRepo struct {
	db *DB
}

// NewRecipeRepo wraps a DB as a RecipeRepository.
func NewRecipeRepo(db *DB) *RecipeRepo {
	return &RecipeRepo{db: db}
}

// ListByUser returns all recipes owned by userID. No ORDER BY; the contract
// leaves ordering to the store.
func (r *RecipeRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Recipe, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT id, title, instructions, minutes_to_complete, user_id, created_at FROM recipes WHERE user_id = $1;", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Recipe, 0)
	for rows.Next() {
		var (
			rec     domain.Recipe
			minutes sql.NullInt64
		)
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Instructions, &minutes, &rec.UserID, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if minutes.Valid {
			m := int(minutes.Int64)
			rec.MinutesToComplete = &m
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Create inserts a new recipe owned by recipe.UserID.
func (r *RecipeRepo) Create(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO recipes (title, instructions, minutes_to_complete, user_id, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at",
		recipe.Title, recipe.Instructions, recipe.MinutesToComplete, recipe.UserID, time.Now(),
	).Scan(&recipe.ID, &recipe.CreatedAt)
	if err != nil {
		return nil, err
	}
	return recipe, nil
}
