package database

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoClient connects to MongoDB. When checkConnection is set the primary is pinged
// before the client is returned.
func NewMongoClient(ctx context.Context, uri string, checkConnection bool) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo URI cannot be empty")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if checkConnection {
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("failed to ping mongo: %w", err)
		}
		slog.Info("Successfully connected to MongoDB.")
	}

	return client, nil
}

// CloseMongoClient disconnects the client.
func CloseMongoClient(ctx context.Context, client *mongo.Client) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		slog.Error("Error disconnecting from MongoDB", slog.String("error", err.Error()))
		return
	}
	slog.Info("MongoDB client disconnected.")
}
