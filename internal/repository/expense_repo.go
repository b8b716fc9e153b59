// internal/repository/expense_repo.go
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"expenselog/internal/domain"
)

// ExpenseRepository defines the interface for expense data operations.
type ExpenseRepository interface {
	// Query runs the filtered query pipeline: match, join user metadata,
	// project and sort. A missing user reference yields null display fields.
	Query(ctx context.Context, filter domain.ExpenseFilter) ([]domain.ExpenseView, error)
	// GetByID retrieves a raw expense document by its identifier.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Expense, error)
	// Insert adds a new expense and returns the store-assigned identifier.
	// The caller's struct is never written through.
	Insert(ctx context.Context, expense *domain.Expense) (primitive.ObjectID, error)
	// Update sets the whitelisted patch fields on the matching document.
	// A missing identifier is a no-op, not an error.
	Update(ctx context.Context, id primitive.ObjectID, patch domain.ExpensePatch) error
	// Delete removes the expense with the given identifier.
	// A missing identifier is a no-op, not an error.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
