// Package service contains the business logic layer.
//
// Handlers parse HTTP and write responses; services validate input and
// enforce the rules; repositories talk to the database. Services receive
// the repository interfaces (not the concrete sqlite.DB), so tests inject
// in-memory mocks and main.go decides the real implementation.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Mehedihasan1234567/SocioSphere/internal/apperror"
	"github.com/Mehedihasan1234567/SocioSphere/internal/auth"
	"github.com/Mehedihasan1234567/SocioSphere/internal/model"
	"github.com/Mehedihasan1234567/SocioSphere/internal/repository"
)

// AuthService signs users in — by credentials or via Google — and issues
// session tokens. Registration lives on UserService; this service only
// authenticates existing principals (with the OAuth exception of creating
// an account on first Google sign-in).
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	logger    *slog.Logger
}

func NewAuthService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// AuthResult bundles the authenticated user and the issued JWT so the
// handler can set the cookie and respond in one step.
type AuthResult struct {
	User  *model.User
	Token string
}

// LoginCredentials verifies an email/password pair and issues a session.
//
// All failure modes — unknown email, OAuth-only account (no password hash),
// wrong password — collapse into the same Unauthorized error, so a caller
// cannot probe which emails are registered.
func (s *AuthService) LoginCredentials(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, apperror.ValidationFailed("email", "Email and password are required.")
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized()
		}
		return nil, fmt.Errorf("service/auth: looking up user by email: %w", err)
	}

	if user.PasswordHash == "" {
		// OAuth account — there is no password to check.
		return nil, apperror.Unauthorized()
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		return nil, apperror.Unauthorized()
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("service/auth: generating token for user %s: %w", user.ID, err)
	}

	s.logger.Info("user signed in",
		slog.String("userID", user.ID),
	)

	return &AuthResult{User: user, Token: token}, nil
}

// LoginOrRegisterGoogle completes the Google OAuth callback: find the
// account by the verified Google email, create it on first sign-in, and
// issue a session token.
func (s *AuthService) LoginOrRegisterGoogle(ctx context.Context, gUser *auth.GoogleUser) (*AuthResult, error) {
	if gUser == nil {
		return nil, fmt.Errorf("service/auth: Google user must not be nil")
	}

	user, err := s.users.GetUserByEmail(ctx, gUser.Email)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			return nil, fmt.Errorf("service/auth: looking up user by email: %w", err)
		}

		// First sign-in: create the account from the Google profile.
		// No password hash — this account authenticates via Google only.
		user = &model.User{
			Name:  gUser.Name,
			Email: gUser.Email,
			Image: gUser.Picture,
		}
		if err := s.users.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("service/auth: creating user for Google account: %w", err)
		}
		s.logger.Info("user registered via Google",
			slog.String("userID", user.ID),
		)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("service/auth: generating token for user %s: %w", user.ID, err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// GetUserByID returns the user for the given internal ID. Used by the
// /api/me handler after the middleware validates the session.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, fmt.Errorf("service/auth: user ID must not be empty")
	}
	return s.users.GetUserByID(ctx, id)
}
