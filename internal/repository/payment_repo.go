package repository

import (
	"context"
	"fmt"

	"bistro_backend/internal/model"

	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository defines operations for payment documents.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *model.Payment) (*mongo.InsertOneResult, error)
}

type paymentRepository struct {
	coll *mongo.Collection
}

// NewPaymentRepository creates a new PaymentRepository backed by the given collection.
func NewPaymentRepository(coll *mongo.Collection) PaymentRepository {
	return &paymentRepository{coll: coll}
}

func (r *paymentRepository) Insert(ctx context.Context, payment *model.Payment) (*mongo.InsertOneResult, error) {
	result, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}
	return result, nil
}
