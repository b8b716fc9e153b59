// internal/service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"expenselog/internal/domain"
	"expenselog/internal/repository"
	"expenselog/internal/util"
)

// SessionDuration is how long login sessions last.
const SessionDuration = 24 * time.Hour

// AuthService defines the interface for signup, login and session checks.
type AuthService interface {
	Signup(ctx context.Context, username, fullname, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// authService implements the AuthService interface.
type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, logger *slog.Logger) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Signup registers a new user with a bcrypt-hashed password.
func (s *authService) Signup(ctx context.Context, username, fullname, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, util.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewUser(username, fullname, string(hash))
	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if !util.IsError(err, util.ErrDuplicateUsername) {
			s.logger.Error("Cannot create user", "username", username, "error", err)
		}
		return nil, err
	}
	user.ID = id
	return user, nil
}

// Login verifies the credentials and opens a new session, returning its token.
func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return "", nil, util.ErrInvalidCredentials
		}
		s.logger.Error("Cannot look up user", "username", username, "error", err)
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := generateSessionToken()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &domain.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(SessionDuration),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.Error("Cannot create session", "username", username, "error", err)
		return "", nil, err
	}

	return token, user, nil
}

// Logout closes the session. An unknown token is a no-op.
func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		s.logger.Error("Cannot delete session", "error", err)
		return err
	}
	return nil
}

// Authenticate resolves a session token to its user.
// Missing or expired sessions fail with ErrInvalidCredentials.
func (s *authService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.sessionRepo.Get(ctx, token)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		s.logger.Error("Cannot look up session", "error", err)
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessionRepo.Delete(ctx, token)
		return nil, util.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		s.logger.Error("Cannot resolve session user", "error", err)
		return nil, err
	}
	return user, nil
}

func generateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
