package domain

import (
	"context"
	"time"
)

// Recipe represents a recipe owned by exactly one user.
type Recipe struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Instructions      string    `json:"instructions"`
	MinutesToComplete *int      `json:"minutes_to_complete"`
	UserID            int64     `json:"user_id"`
	CreatedAt         time.Time `json:"-"`
}

// RecipeRepository is the port for recipe persistence. List order is the
// store's own; callers must not rely on it.
type RecipeRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]Recipe, error)
	// Create persists the recipe and fills in ID and CreatedAt.
	Create(ctx context.Context, recipe *Recipe) (*Recipe, error)
}
