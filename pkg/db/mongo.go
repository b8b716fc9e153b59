// pkg/db/mongo.go
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config holds document store connection configuration.
type Config struct {
	URI    string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	DBName string `env:"MONGODB_DB" envDefault:"expenselog"`
}

// NewMongoClient initializes and returns a connected MongoDB client.
// The connection is verified with a ping before it is handed out.
func NewMongoClient(ctx context.Context, cfg Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}
