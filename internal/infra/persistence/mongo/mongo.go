// Package mongo contains the concrete implementation of the persistence layer
// using the official MongoDB driver.
package mongo

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"accounts/config"
	"accounts/internal/domain/lifecycle"
	"accounts/internal/errors"
)

const accountsCollection = "accounts"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle for the service.
// The client is established once at startup and treated as read-only
// process-wide state afterwards.
func New(params Params) (*mongo.Database, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	database := client.Database(params.Config.Mongo.Database)

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureAccountIndexes(ctx, database); err != nil {
				return err
			}

			params.Logger.Info("connected to MongoDB", slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return database, nil
}

// ensureAccountIndexes enforces userName/email uniqueness at the storage
// layer. The service still pre-checks both so that the caller gets the
// first-failure-wins duplicate message, but the index closes the
// check-then-insert race between concurrent registrations.
func ensureAccountIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(accountsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userName", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "verificationToken", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "verificationToken", Value: bson.D{{Key: "$exists", Value: true}}}}),
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create account indexes")
	}

	return nil
}
