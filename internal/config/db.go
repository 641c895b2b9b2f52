package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collections groups the five collection handles the server works with.
// There is exactly one long-lived client shared by all requests; the driver
// is safe for concurrent use.
type Collections struct {
	Users    *mongo.Collection
	Menu     *mongo.Collection
	Reviews  *mongo.Collection
	Carts    *mongo.Collection
	Payments *mongo.Collection
}

// ConnectDB establishes a connection to MongoDB, retrying a few times so the
// server survives the database coming up after it.
func ConnectDB(cfg *Config) (*mongo.Client, error) {
	var client *mongo.Client
	var err error

	maxRetries := 5
	retryInterval := 5 * time.Second

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	for i := 0; i < maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err = mongo.Connect(ctx, opts)
		if err == nil {
			err = client.Ping(ctx, readpref.Primary())
			if err == nil {
				cancel()
				log.Println("Successfully connected to MongoDB!")
				return client, nil
			}
		}
		cancel()
		log.Printf("Failed to connect to database (attempt %d/%d): %v. Retrying in %v...", i+1, maxRetries, err, retryInterval)
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// OpenCollections returns handles to the named collections in the configured
// database.
func OpenCollections(client *mongo.Client, dbName string) *Collections {
	db := client.Database(dbName)
	return &Collections{
		Users:    db.Collection("users"),
		Menu:     db.Collection("menu"),
		Reviews:  db.Collection("reviews"),
		Carts:    db.Collection("carts"),
		Payments: db.Collection("payments"),
	}
}
