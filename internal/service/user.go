// Package service provides the business logic layer for the MediaLog
// catalog: users, categories, items with their tag and creator sets,
// reviews, and CSV export with email delivery.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/store"
)

// UserService manages accounts.
type UserService struct {
	store  store.Catalog
	logger *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(store store.Catalog, logger *slog.Logger) *UserService {
	return &UserService{
		store:  store,
		logger: logger,
	}
}

// CreateUser registers a new account. Usernames are unique; a taken
// username is an input error, not a conflict, to match the API contract.
func (s *UserService) CreateUser(ctx context.Context, username, email, firstName, password string) (*domain.User, error) {
	if username == "" {
		return nil, store.ErrInvalidInput.WithMessage("Username is required")
	}

	user := &domain.User{
		Username:  username,
		Email:     email,
		FirstName: firstName,
		Password:  password,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, store.ErrInvalidInput.WithMessage("Username already taken")
		}
		return nil, err
	}

	s.logger.Info("user created",
		"user_id", user.ID,
		"username", user.Username,
	)

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, store.ErrNotFound.WithMessagef("User with id %d not found", id)
	}
	return user, err
}

// ListUsers returns all users ordered by id.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.store.ListUsers(ctx)
}

// Login checks a username/password pair and returns the account.
// Credentials are compared in plaintext; this server is a personal
// tracker and does not harden authentication.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, store.ErrUnauthorized.WithMessage("Invalid username or password")
	}
	if err != nil {
		return nil, err
	}

	if user.Password != password {
		return nil, store.ErrUnauthorized.WithMessage("Invalid username or password")
	}

	s.logger.Info("user logged in", "user_id", user.ID, "username", user.Username)

	return user, nil
}
