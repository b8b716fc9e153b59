// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"expenselog/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(expenseHandler *handler.ExpenseHandler, authHandler *handler.AuthHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Session endpoints
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
	})

	// Expense API routes, all behind the session cookie
	r.Route("/api/expense", func(r chi.Router) {
		r.Use(authHandler.RequireAuth)
		r.Get("/", expenseHandler.Query)
		r.Post("/", expenseHandler.Add)
		r.Get("/{expenseID}", expenseHandler.GetByID)
		r.Put("/{expenseID}", expenseHandler.Update)
		r.Delete("/{expenseID}", expenseHandler.Remove)
	})

	return r
}
