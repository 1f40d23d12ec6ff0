// Package service provides the business logic for accounts and tasks,
// delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/taskward/taskward/internal/credentials"
	"github.com/taskward/taskward/internal/models"
	"github.com/taskward/taskward/internal/repository"
)

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// Create inserts a new user. Returns repository.ErrDuplicateEmail if the
	// email is already taken.
	Create(ctx context.Context, user models.User) error
	// FindByEmail returns the user with the given email, or repository.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByID returns the user with the given id, or repository.ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// AuthService implements signup and login by delegating to a UserRepository.
type AuthService struct {
	repo UserRepository
}

// NewAuthService constructs a new AuthService using the provided repository.
func NewAuthService(repo UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// normalizeEmail makes email lookups case-insensitive. Emails are trimmed
// and lower-cased here, in one place, before storage and before every lookup.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new user. The plaintext password is hashed and
// discarded; only the hash is stored. Returns a wrapped ErrValidation when
// email or password is missing, or repository.ErrDuplicateEmail.
func (s *AuthService) Signup(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	hash, err := credentials.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Create(ctx, models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	})
}

// Login verifies the credentials and returns the user id on success.
// Unknown emails and wrong passwords both return ErrInvalidCredentials so the
// response never reveals whether an account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}
	if !credentials.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return user.ID, nil
}
