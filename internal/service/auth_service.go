package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JuanjoFeller/billwise/internal/auth"
	"github.com/JuanjoFeller/billwise/internal/models"
	"github.com/JuanjoFeller/billwise/internal/storage"
)

// AuthService pairs an authenticator with the token manager: accounts in,
// bearer tokens out.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	store         storage.Store
}

// NewAuthService creates an auth service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, store storage.Store) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		store:         store,
	}
}

// Register creates an account and signs the user in.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	user, err := s.authenticator.Register(ctx, req.Email, req.DisplayName, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email)
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials and issues a fresh token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.authenticator.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	slog.Info("user logged in", "user_id", user.ID)
	return &models.AuthResponse{Token: token, User: user}, nil
}

// CurrentUser resolves the account behind a validated token's user id.
// Returns storage.ErrNotFound if the account vanished after the token was
// issued.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, storage.ErrNotFound
	}
	return user, nil
}
