// Package mongodb provides support for working with MongoDB.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect attempts to connect to a mongo db instance. The user and password
// are optional.
func Connect(ctx context.Context, host string, userName string, password string) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(host)
	if userName != "" {
		opts.SetAuth(options.Credential{
			Username: userName,
			Password: password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("ping: %w", err)
	}

	return client, nil
}

// CreateCollection will create the specified collection in the specified
// database if it doesn't already exist.
func CreateCollection(ctx context.Context, db *mongo.Database, collectionName string) (*mongo.Collection, error) {
	names, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collection names: %w", err)
	}

	for _, name := range names {
		if name == collectionName {
			return db.Collection(collectionName), nil
		}
	}

	if err := db.CreateCollection(ctx, collectionName); err != nil {
		var cmdErr mongo.CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Name != "NamespaceExists" {
			return nil, fmt.Errorf("create collection: %w", err)
		}
	}

	return db.Collection(collectionName), nil
}
