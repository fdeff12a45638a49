package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cookbook/internal/domain"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// GetByUsername retrieves a user by username.
func (d *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, username, password_hash, bio, image_url, created_at FROM users WHERE username = $1",
		username,
	).Scan(&u.ID, &u.Username, &u.Password, &u.Bio, &u.ImageURL, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID retrieves a user by ID.
func (d *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, username, password_hash, bio, image_url, created_at FROM users WHERE id = $1",
		id,
	).Scan(&u.ID, &u.Username, &u.Password, &u.Bio, &u.ImageURL, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. A username collision, including the loser of a
// concurrent signup race, surfaces as domain.ErrDuplicateUsername.
func (d *DB) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO users (username, password_hash, bio, image_url, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at",
		user.Username, user.Password, user.Bio, user.ImageURL, time.Now(),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, err
	}
	return user, nil
}
