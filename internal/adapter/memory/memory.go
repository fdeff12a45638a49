// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sync"
	"time"

	"cookbook/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	users    []*domain.User
	recipes  []domain.Recipe
	sessions map[string]*domain.Session

	userIDCounter   int64
	recipeIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.RecipeRepository = (*RecipeRepo)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user, enforcing username uniqueness.
func (db *DB) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == user.Username {
			return nil, domain.ErrDuplicateUsername
		}
	}

	db.userIDCounter++
	user.ID = db.userIDCounter
	user.CreatedAt = time.Now().UTC()
	db.users = append(db.users, user)
	return user, nil
}

// DeleteUser removes a user by ID. Exists so tests can exercise the
// dangling-session path.
func (db *DB) DeleteUser(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, u := range db.users {
		if u.ID == id {
			db.users = append(db.users[:i], db.users[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- RecipeRepository ---

// RecipeRepo implements recipe persistence.
type RecipeRepo struct {
	db *DB
}

// NewRecipeRepo creates a new recipe repository.
func (db *DB) NewRecipeRepo() *RecipeRepo {
	return &RecipeRepo{db: db}
}

// ListByUser returns all recipes owned by userID in insertion order.
func (r *RecipeRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Recipe, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Recipe, 0)
	for _, rec := range r.db.recipes {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Create stores a new recipe.
func (r *RecipeRepo) Create(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.recipeIDCounter++
	recipe.ID = r.db.recipeIDCounter
	recipe.CreatedAt = time.Now().UTC()
	r.db.recipes = append(r.db.recipes, *recipe)
	return recipe, nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		return s, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
