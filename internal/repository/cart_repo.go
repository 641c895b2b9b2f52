package repository

import (
	"context"
	"fmt"

	"bistro_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartRepository defines operations for cart item documents.
type CartRepository interface {
	FindByEmail(ctx context.Context, email string) ([]model.CartItem, error)
	Insert(ctx context.Context, item *model.CartItem) (*mongo.InsertOneResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type cartRepository struct {
	coll *mongo.Collection
}

// NewCartRepository creates a new CartRepository backed by the given collection.
func NewCartRepository(coll *mongo.Collection) CartRepository {
	return &cartRepository{coll: coll}
}

// FindByEmail retrieves the cart items owned by the given email. The filter
// is an exact match, so an empty email matches nothing rather than everything.
func (r *cartRepository) FindByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to query carts: %w", err)
	}
	defer cursor.Close(ctx)

	items := []model.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}
	return items, nil
}

func (r *cartRepository) Insert(ctx context.Context, item *model.CartItem) (*mongo.InsertOneResult, error) {
	result, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to insert cart item: %w", err)
	}
	return result, nil
}

func (r *cartRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete cart item: %w", err)
	}
	return result, nil
}
