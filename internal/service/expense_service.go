// internal/service/expense_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"expenselog/internal/domain"
	"expenselog/internal/repository"
	"expenselog/internal/util"
)

// ExpenseService defines the interface for expense-related business logic.
type ExpenseService interface {
	Query(ctx context.Context, filter domain.ExpenseFilter) ([]domain.ExpenseView, error)
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	Add(ctx context.Context, expense *domain.Expense) (primitive.ObjectID, error)
	Update(ctx context.Context, id string, patch domain.ExpensePatch) error
	Remove(ctx context.Context, id string) (string, error)
}

// expenseService implements the ExpenseService interface.
type expenseService struct {
	expenseRepo repository.ExpenseRepository
	logger      *slog.Logger
}

// NewExpenseService creates a new instance of ExpenseService.
func NewExpenseService(expenseRepo repository.ExpenseRepository, logger *slog.Logger) ExpenseService {
	return &expenseService{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// Query returns the filtered, user-joined, sorted expense list.
// Store failures are logged and propagated unchanged.
func (s *expenseService) Query(ctx context.Context, filter domain.ExpenseFilter) ([]domain.ExpenseView, error) {
	expenses, err := s.expenseRepo.Query(ctx, filter)
	if err != nil {
		s.logger.Error("Cannot find expenses", "error", err)
		return nil, err
	}
	return expenses, nil
}

// GetByID fetches a single expense and attaches the creation time embedded
// in its identifier. A missing document fails with ErrNotFound.
func (s *expenseService) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	expenseID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("expense id %q: %w", id, util.ErrInvalidID)
	}

	expense, err := s.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		if !util.IsError(err, util.ErrNotFound) {
			s.logger.Error("While finding expense", "expenseId", id, "error", err)
		}
		return nil, err
	}

	expense.CreatedAt = expense.ID.Timestamp()
	return expense, nil
}

// Add inserts the expense and returns the store-assigned identifier.
// The caller's struct is never mutated.
func (s *expenseService) Add(ctx context.Context, expense *domain.Expense) (primitive.ObjectID, error) {
	id, err := s.expenseRepo.Insert(ctx, expense)
	if err != nil {
		s.logger.Error("Cannot insert expense", "error", err)
		return primitive.NilObjectID, err
	}
	return id, nil
}

// Update sets exactly the whitelisted patch fields on the matching document.
// Updating a missing identifier is a silent no-op.
func (s *expenseService) Update(ctx context.Context, id string, patch domain.ExpensePatch) error {
	expenseID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("expense id %q: %w", id, util.ErrInvalidID)
	}

	if err := s.expenseRepo.Update(ctx, expenseID, patch); err != nil {
		s.logger.Error("Cannot update expense", "expenseId", id, "error", err)
		return err
	}
	return nil
}

// Remove deletes by identifier and returns the identifier whether or not a
// document existed.
func (s *expenseService) Remove(ctx context.Context, id string) (string, error) {
	expenseID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", fmt.Errorf("expense id %q: %w", id, util.ErrInvalidID)
	}

	if err := s.expenseRepo.Delete(ctx, expenseID); err != nil {
		s.logger.Error("Cannot remove expense", "expenseId", id, "error", err)
		return "", err
	}
	return id, nil
}
