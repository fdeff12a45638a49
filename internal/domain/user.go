// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ErrDuplicateUsername indicates that the username is already taken.
var ErrDuplicateUsername = errors.New("username already exists")

// Credential is a write-only password holder. The public interface is Set
// and Verify; the bcrypt hash is only reachable through the database/sql
// plumbing so repositories can persist and reload it.
type Credential struct {
	hash string
}

// Set replaces the credential with a salted bcrypt hash of plaintext.
// The plaintext is never stored.
func (c *Credential) Set(plaintext string) error {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.hash = string(h)
	return nil
}

// Verify reports whether plaintext matches the stored hash. Comparison
// happens inside bcrypt and is constant-time. An unset credential never
// verifies.
func (c *Credential) Verify(plaintext string) bool {
	if c.hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.hash), []byte(plaintext)) == nil
}

// Scan implements sql.Scanner.
func (c *Credential) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		c.hash = ""
	case string:
		c.hash = v
	case []byte:
		c.hash = string(v)
	default:
		return fmt.Errorf("credential: cannot scan %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (c Credential) Value() (driver.Value, error) {
	return c.hash, nil
}

// User represents a registered user.
type User struct {
	ID        int64
	Username  string
	Password  Credential
	Bio       *string
	ImageURL  *string
	CreatedAt time.Time
}

// UserRepository defines the port for user persistence operations.
// Lookups return (nil, nil) when no user matches.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	// Create persists the user and fills in ID and CreatedAt. It returns
	// ErrDuplicateUsername when the username is already taken.
	Create(ctx context.Context, user *User) (*User, error)
}
