// internal/repository/mongodb/session_mongo.go
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"expenselog/internal/domain"
	"expenselog/internal/repository"
	"expenselog/internal/util"
)

// SessionRepository implements repository.SessionRepository for MongoDB.
type SessionRepository struct {
	collection *mongo.Collection
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(database *mongo.Database) repository.SessionRepository {
	return &SessionRepository{collection: database.Collection(sessionCollection)}
}

// Create persists a new session keyed by its token.
func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	_, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// Get retrieves a session by token.
func (r *SessionRepository) Get(ctx context.Context, token string) (*domain.Session, error) {
	var session domain.Session
	err := r.collection.FindOne(ctx, bson.M{"_id": token}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// Delete removes a session by token. Missing tokens are a no-op.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": token})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
