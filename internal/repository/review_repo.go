package repository

import (
	"context"
	"fmt"

	"bistro_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewRepository defines operations for review documents. Reviews are
// read-only from this service's perspective; no write path exists.
type ReviewRepository interface {
	FindAll(ctx context.Context) ([]model.Review, error)
}

type reviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository creates a new ReviewRepository backed by the given collection.
func NewReviewRepository(coll *mongo.Collection) ReviewRepository {
	return &reviewRepository{coll: coll}
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]model.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []model.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}
