package database

import (
	"context"
	"fmt"

	"social-vault/pkg/config"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// NewMongoDB connects and pings before handing back the configured database.
func NewMongoDB(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURL).
		SetTimeout(cfg.StoreTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, client.Database(cfg.DBName), nil
}
