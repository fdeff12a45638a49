// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"cookbook/internal/domain"
)

var (
	// ErrMissingCredentials indicates that the signup request lacked a username or password.
	ErrMissingCredentials = errors.New("username and password are required")
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrNoSession indicates that the caller has no active session.
	ErrNoSession = errors.New("no active session")
	// ErrUserNotFound indicates that the user bound to a session no longer exists.
	ErrUserNotFound = errors.New("user not found")
)

const sessionTTL = 24 * time.Hour

// AuthService handles signup, authentication and session management.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Signup registers a new user. It does not establish a session; the new
// user must log in separately. Returns ErrMissingCredentials when the
// username or password is empty and domain.ErrDuplicateUsername when the
// username is taken.
func (s *AuthService) Signup(ctx context.Context, username, password string, bio, imageURL *string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user := &domain.User{
		Username: username,
		Bio:      bio,
		ImageURL: imageURL,
	}
	if err := user.Password.Set(password); err != nil {
		return nil, err
	}

	return s.users.Create(ctx, user)
}

// Login authenticates a user and creates a session. An unknown username
// and a wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.Password.Verify(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return nil, "", err
	}

	if err := s.sessions.Create(ctx, user.ID, token, time.Now().Add(sessionTTL)); err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Logout clears the session bound to token. Returns ErrNoSession when
// there is nothing to clear.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrNoSession
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if session == nil || time.Now().After(session.ExpiresAt) {
		return ErrNoSession
	}

	return s.sessions.Delete(ctx, token)
}

// CurrentUser resolves the session token into the calling user. Expired
// and unknown tokens read as no session; a session pointing at a deleted
// user reads as ErrUserNotFound.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoSession
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrNoSession
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// LoginWithUser creates a session for an already authenticated user
// (e.g. via SSO), provisioning the account on first login. Provisioned
// users carry an unset credential and cannot log in with a password.
func (s *AuthService) LoginWithUser(ctx context.Context, username string) (*domain.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		user, err = s.users.Create(ctx, &domain.User{Username: username})
		if errors.Is(err, domain.ErrDuplicateUsername) {
			// Lost a provisioning race; the row exists now.
			user, err = s.users.GetByUsername(ctx, username)
		}
		if err != nil {
			return nil, "", err
		}
		if user == nil {
			return nil, "", ErrUserNotFound
		}
	}

	token, err := generateToken()
	if err != nil {
		return nil, "", err
	}

	if err := s.sessions.Create(ctx, user.ID, token, time.Now().Add(sessionTTL)); err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
