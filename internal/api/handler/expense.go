// internal/api/handler/expense.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"expenselog/internal/api/types"
	"expenselog/internal/domain"
	"expenselog/internal/service"
	"expenselog/internal/util"
)

// DefaultTimeout bounds request handling at the router level.
const DefaultTimeout = 15 * time.Second

// ExpenseHandler handles HTTP requests related to expense operations.
type ExpenseHandler struct {
	service service.ExpenseService
	logger  *slog.Logger
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(svc service.ExpenseService, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		service: svc,
		logger:  logger,
	}
}

// Helper function to send JSON responses.
func respondWithJSON(logger *slog.Logger, w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses.
func respondWithError(logger *slog.Logger, w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidID), util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case util.IsError(err, util.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		message = "Invalid credentials"
	case util.IsError(err, util.ErrDuplicateUsername):
		statusCode = http.StatusConflict
		message = err.Error()
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(logger, w, statusCode, types.ErrorResponse{Error: message})
}

// Query handles the filtered expense list request.
// GET /api/expense?userId=&categories=food,transport&date=&sort=amount
func (h *ExpenseHandler) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ExpenseFilter{
		UserID: q.Get("userId"),
		Sort:   q.Get("sort"),
	}

	if raw := q.Get("categories"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c != "" {
				filter.Categories = append(filter.Categories, c)
			}
		}
	}

	if raw := q.Get("date"); raw != "" {
		date, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondWithError(h.logger, w, util.ErrInvalidInput)
			return
		}
		filter.Date = date
	}

	expenses, err := h.service.Query(r.Context(), filter)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.ListResponse[domain.ExpenseView]{
		Data:  expenses,
		Count: len(expenses),
	})
}

// GetByID handles the single expense fetch request.
// GET /api/expense/{expenseID}
func (h *ExpenseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "expenseID")

	expense, err := h.service.GetByID(r.Context(), expenseID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, expense)
}

// ExpenseRequest represents the request body for create and update.
type ExpenseRequest struct {
	UserID   string  `json:"userId"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     int64   `json:"date"`
	Notes    string  `json:"notes"`
}

// Add handles the create expense request.
// POST /api/expense
func (h *ExpenseHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	userID, err := h.resolveUserID(r, req.UserID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	expense := domain.NewExpense(userID, req.Amount, req.Category, req.Date, req.Notes)
	id, err := h.service.Add(r.Context(), expense)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, types.IDResponse{ID: id.Hex()})
}

// Update handles the update expense request. Only the whitelisted fields are
// ever written back; extraneous body fields are discarded by decoding.
// PUT /api/expense/{expenseID}
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "expenseID")

	var req ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	userID, err := h.resolveUserID(r, req.UserID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	patch := domain.ExpensePatch{
		UserID:   userID,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
		Notes:    req.Notes,
	}
	if err := h.service.Update(r.Context(), expenseID, patch); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.IDResponse{ID: expenseID})
}

// Remove handles the delete expense request. Deleting a missing expense
// still returns the identifier.
// DELETE /api/expense/{expenseID}
func (h *ExpenseHandler) Remove(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "expenseID")

	id, err := h.service.Remove(r.Context(), expenseID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.IDResponse{ID: id})
}

// resolveUserID parses the body's userId, falling back to the authenticated
// session user when the body omits it.
func (h *ExpenseHandler) resolveUserID(r *http.Request, raw string) (primitive.ObjectID, error) {
	if raw == "" {
		if user := GetUserFromContext(r); user != nil {
			return user.ID, nil
		}
		return primitive.NilObjectID, util.ErrInvalidInput
	}
	userID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, util.ErrInvalidID
	}
	return userID, nil
}
