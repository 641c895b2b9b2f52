package repository

import (
	"context"
	"errors"
	"fmt"

	"bistro_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MenuRepository defines operations for menu item documents.
type MenuRepository interface {
	FindAll(ctx context.Context) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.MenuItem, error)
	Insert(ctx context.Context, item *model.MenuItem) (*mongo.InsertOneResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type menuRepository struct {
	coll *mongo.Collection
}

// NewMenuRepository creates a new MenuRepository backed by the given collection.
func NewMenuRepository(coll *mongo.Collection) MenuRepository {
	return &menuRepository{coll: coll}
}

func (r *menuRepository) FindAll(ctx context.Context) ([]model.MenuItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query menu: %w", err)
	}
	defer cursor.Close(ctx)

	items := []model.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}
	return items, nil
}

func (r *menuRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.MenuItem, error) {
	item := &model.MenuItem{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find menu item by ID: %w", err)
	}
	return item, nil
}

func (r *menuRepository) Insert(ctx context.Context, item *model.MenuItem) (*mongo.InsertOneResult, error) {
	result, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to insert menu item: %w", err)
	}
	return result, nil
}

func (r *menuRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete menu item: %w", err)
	}
	return result, nil
}
