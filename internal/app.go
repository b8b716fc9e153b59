// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	router "expenselog/internal/api"
	"expenselog/internal/api/handler"
	"expenselog/internal/config"
	"expenselog/internal/repository"
	"expenselog/internal/repository/mongodb"
	"expenselog/internal/service"
	"expenselog/internal/util"
	"expenselog/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	Mongo  *mongo.Client

	// Repositories
	ExpenseRepository repository.ExpenseRepository
	UserRepository    repository.UserRepository
	SessionRepository repository.SessionRepository

	// Services
	ExpenseService service.ExpenseService
	AuthService    service.AuthService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to the document store
	client, err := db.NewMongoClient(ctx, app.Config.Mongo)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.Mongo = client
	database := client.Database(app.Config.Mongo.DBName)
	app.Logger.Info("Database connection established.")

	// 4. Initialize Repositories
	app.ExpenseRepository = mongodb.NewExpenseRepository(database)
	app.UserRepository = mongodb.NewUserRepository(database)
	app.SessionRepository = mongodb.NewSessionRepository(database)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	app.ExpenseService = service.NewExpenseService(app.ExpenseRepository, app.Logger)
	app.AuthService = service.NewAuthService(app.UserRepository, app.SessionRepository, app.Logger)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	expenseHandler := handler.NewExpenseHandler(app.ExpenseService, app.Logger)
	authHandler := handler.NewAuthHandler(app.AuthService, app.Logger, app.Config.SecureCookie)
	app.HTTPHandler = router.NewRouter(expenseHandler, authHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.Mongo != nil {
		if err := app.Mongo.Disconnect(ctx); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
