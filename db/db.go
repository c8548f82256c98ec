package db

import (
	"context"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dbName = "TICKET-COUNTER"

// Store bundles the collection handles the handlers operate on. A single
// Store is built at startup and injected; the underlying client is safe
// for concurrent use.
type Store struct {
	Client   *mongo.Client
	Users    *mongo.Collection
	Events   *mongo.Collection
	Bookings *mongo.Collection
	Payments *mongo.Collection
}

// URIFromEnv resolves the connection string: MONGODB_URI wins, otherwise
// DB_USER/DB_PASS compose the Atlas URI, otherwise a local default.
func URIFromEnv() string {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		return uri
	}
	if user := os.Getenv("DB_USER"); user != "" {
		return fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.7aech.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0",
			user, os.Getenv("DB_PASS"),
		)
	}
	return "mongodb://localhost:27017"
}

func Connect(ctx context.Context, uri string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	d := client.Database(dbName)
	return &Store{
		Client:   client,
		Users:    d.Collection("users"),
		Events:   d.Collection("events"),
		Bookings: d.Collection("bookings"),
		Payments: d.Collection("payments"),
	}, nil
}
