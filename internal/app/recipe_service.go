package app

import (
	"context"
	"errors"

	"cookbook/internal/domain"
)

// ErrInvalidRecipe indicates that the recipe input failed validation.
var ErrInvalidRecipe = errors.New("title and instructions (at least 50 characters) are required")

const minInstructionsLen = 50

// RecipeService encapsulates recipe use cases, always scoped to a caller.
type RecipeService struct {
	repo domain.RecipeRepository
}

// NewRecipeService creates a RecipeService backed by the given repository.
func NewRecipeService(repo domain.RecipeRepository) *RecipeService {
	return &RecipeService{repo: repo}
}

// List returns all recipes owned by userID, in store order.
func (s *RecipeService) List(ctx context.Context, userID int64) ([]domain.Recipe, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create validates and stores a recipe owned by userID.
func (s *RecipeService) Create(ctx context.Context, userID int64, title, instructions string, minutesToComplete *int) (*domain.Recipe, error) {
	if title == "" || len(instructions) < minInstructionsLen {
		return nil, ErrInvalidRecipe
	}

	recipe := &domain.Recipe{
		Title:             title,
		Instructions:      instructions,
		MinutesToComplete: minutesToComplete,
		UserID:            userID,
	}
	return s.repo.Create(ctx, recipe)
}
