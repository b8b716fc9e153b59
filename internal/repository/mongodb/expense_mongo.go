// internal/repository/mongodb/expense_mongo.go
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

const (
	expenseCollection = "expense"
	userCollection    = "user"
	sessionCollection = "session"
)

// ExpenseRepository implements repository.ExpenseRepository for MongoDB.
type ExpenseRepository struct {
	collection *mongo.Collection
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(database *mongo.Database) repository.ExpenseRepository {
	return &ExpenseRepository{collection: database.Collection(expenseCollection)}
}

// Query runs the filtered aggregation pipeline:
// match -> left-outer-join user -> flatten -> project -> sort.
// Expenses whose user reference resolves to nothing keep null display fields.
func (r *ExpenseRepository) Query(ctx context.Context, filter domain.ExpenseFilter) ([]domain.ExpenseView, error) {
	criteria, sort, err := buildCriteria(filter)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: criteria}},
		{{Key: "$lookup", Value: bson.M{
			"from":         userCollection,
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "userDetails",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$userDetails",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":      1,
			"amount":   1,
			"category": 1,
			"date":     1,
			"notes":    1,
			"username": "$userDetails.username",
			"fullname": "$userDetails.fullname",
		}}},
		{{Key: "$sort", Value: sort}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to run expense query pipeline: %w", err)
	}
	defer cursor.Close(ctx)

	expenses := []domain.ExpenseView{}
	if err = cursor.All(ctx, &expenses); err != nil {
		return nil, fmt.Errorf("failed to decode expense query results: %w", err)
	}
	return expenses, nil
}

// GetByID retrieves a raw expense document by its identifier.
func (r *ExpenseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Expense, error) {
	var expense domain.Expense
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&expense)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get expense by ID %s: %w", id.Hex(), err)
	}
	return &expense, nil
}

// Insert adds a new expense and returns the store-assigned identifier.
func (r *ExpenseRepository) Insert(ctx context.Context, expense *domain.Expense) (primitive.ObjectID, error) {
	doc := bson.M{
		"userId":   expense.UserID,
		"amount":   expense.Amount,
		"category": expense.Category,
		"date":     expense.Date,
		"notes":    expense.Notes,
	}
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert expense: %w", err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}
	return id, nil
}

// Update sets the whitelisted patch fields on the matching document.
// Updating a missing identifier is a no-op.
func (r *ExpenseRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.ExpensePatch) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch})
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", id.Hex(), err)
	}
	return nil
}

// Delete removes the expense with the given identifier.
// Deleting a missing identifier is a no-op.
func (r *ExpenseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", id.Hex(), err)
	}
	return nil
}
