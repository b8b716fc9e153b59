// internal/repository/user_repo.go
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"expenselog/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// Create adds a new user. A taken username fails with ErrDuplicateUsername.
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	// GetByID retrieves a user by their identifier.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	// GetByUsername retrieves a user by their username.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
