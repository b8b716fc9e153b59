// internal/repository/mongodb/user_mongo.go
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"expenselog/internal/domain"
	"expenselog/internal/repository"
	"expenselog/internal/util"
)

// UserRepository implements repository.UserRepository for MongoDB.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(database *mongo.Database) repository.UserRepository {
	return &UserRepository{collection: database.Collection(userCollection)}
}

// Create adds a new user. The username must not already be taken.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"username": user.Username})
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to check username %q: %w", user.Username, err)
	}
	if count > 0 {
		return primitive.NilObjectID, util.ErrDuplicateUsername
	}

	doc := bson.M{
		"username": user.Username,
		"fullname": user.Fullname,
		"password": user.PasswordHash,
	}
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert user: %w", err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}
	return id, nil
}

// GetByID retrieves a user by their identifier.
func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id.Hex(), err)
	}
	return &user, nil
}

// GetByUsername retrieves a user by their username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username %q: %w", username, err)
	}
	return &user, nil
}
