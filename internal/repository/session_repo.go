// internal/repository/session_repo.go
package repository

import (
	"context"

	"expenselog/internal/domain"
)

// SessionRepository defines the interface for login session storage.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *domain.Session) error
	// Get retrieves a session by token. Missing sessions fail with ErrNotFound.
	Get(ctx context.Context, token string) (*domain.Session, error)
	// Delete removes a session by token. Missing tokens are a no-op.
	Delete(ctx context.Context, token string) error
}
