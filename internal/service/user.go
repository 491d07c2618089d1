package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Mehedihasan1234567/SocioSphere/internal/apperror"
	"github.com/Mehedihasan1234567/SocioSphere/internal/model"
	"github.com/Mehedihasan1234567/SocioSphere/internal/repository"
)

// UserService handles registration and profile operations.
type UserService struct {
	users     repository.UserRepository
	passwords passwordHasher
	logger    *slog.Logger
}

// passwordHasher is the slice of auth.PasswordService this service needs.
// Taking an interface keeps tests free to stub hashing entirely.
type passwordHasher interface {
	Hash(plaintext string) (string, error)
}

func NewUserService(users repository.UserRepository, passwords passwordHasher, logger *slog.Logger) *UserService {
	return &UserService{
		users:     users,
		passwords: passwords,
		logger:    logger,
	}
}

// Register creates a credential account.
//
// All three fields are required. A duplicate email is a conflict; the check
// runs before hashing so a rejected registration never pays the bcrypt
// cost. The UNIQUE index on email backstops the race between check and
// insert — a concurrent duplicate surfaces as the same conflict error.
//
// The returned user carries the hash only in the json-invisible
// PasswordHash field; serializing it can never leak the hash.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, apperror.ValidationFailed("", "Name, email, and password are required.")
	}

	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, apperror.Conflict("User with this email already exists.")
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("service/user: checking email: %w", err)
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("service/user: hashing password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("service/user: creating user: %w", err)
	}

	s.logger.Info("user registered",
		slog.String("userID", user.ID),
	)

	return user, nil
}

// GetProfile returns a user with their posts for the profile page.
func (s *UserService) GetProfile(ctx context.Context, id string) (*model.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.ValidationFailed("id", "User ID is required.")
	}
	return s.users.GetUserProfile(ctx, id)
}

// UpdateProfile applies a partial update to the principal's own record.
//
// Users own exactly themselves, so the ownership check is an ID comparison
// — no load needed, and a mismatch is 403 regardless of whether the target
// exists (the endpoint never reveals which user IDs are taken).
//
// nil pointers mean "field not supplied". A non-nil empty string clears
// the field — distinguishable from absence, which a truthiness check could
// never express.
func (s *UserService) UpdateProfile(ctx context.Context, id, principalID string, name, image *string) (*model.User, error) {
	if id != principalID {
		return nil, apperror.Forbidden()
	}

	user, err := s.users.UpdateUserProfile(ctx, id, name, image)
	if err != nil {
		return nil, err
	}

	s.logger.Info("profile updated",
		slog.String("userID", id),
	)

	return user, nil
}
