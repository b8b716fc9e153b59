// internal/domain/expense.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense represents a single expense document.
// CreatedAt is derived from the ObjectID's embedded timestamp on reads;
// it is never stored as its own field.
type Expense struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Amount    float64            `bson:"amount" json:"amount"`
	Category  string             `bson:"category" json:"category"`
	Date      int64              `bson:"date" json:"date"` // Unix seconds, whole-second calendar date
	Notes     string             `bson:"notes" json:"notes"`
	CreatedAt time.Time          `bson:"-" json:"createdAt,omitempty"`
}

// ExpensePatch carries exactly the fields an update is allowed to touch.
// The identifier and anything else on the document are never written back.
type ExpensePatch struct {
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	Amount   float64            `bson:"amount" json:"amount"`
	Category string             `bson:"category" json:"category"`
	Date     int64              `bson:"date" json:"date"`
	Notes    string             `bson:"notes" json:"notes"`
}

// ExpenseView is the shape produced by the filtered query pipeline:
// the expense fields plus display metadata joined from the user collection.
// Username and Fullname stay nil when the referenced user does not exist.
type ExpenseView struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Amount   float64            `bson:"amount" json:"amount"`
	Category string             `bson:"category" json:"category"`
	Date     int64              `bson:"date" json:"date"`
	Notes    string             `bson:"notes" json:"notes"`
	Username *string            `bson:"username" json:"username"`
	Fullname *string            `bson:"fullname" json:"fullname"`
}

// ExpenseFilter narrows a query. Zero values mean "no restriction".
type ExpenseFilter struct {
	UserID     string   `json:"userId"`
	Categories []string `json:"categories"`
	Date       int64    `json:"date"` // Unix seconds; restricts to that calendar day
	Sort       string   `json:"sort"` // "amount" sorts by amount, anything else by date
}

// NewExpense creates a new Expense instance. The identifier is assigned by
// the store at insert time.
func NewExpense(userID primitive.ObjectID, amount float64, category string, date int64, notes string) *Expense {
	return &Expense{
		UserID:   userID,
		Amount:   amount,
		Category: category,
		Date:     date,
		Notes:    notes,
	}
}
