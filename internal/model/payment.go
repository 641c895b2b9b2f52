package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed Stripe charge.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	CartIDs       []string           `bson:"cartIds" json:"cartIds"`
	MenuItemIDs   []string           `bson:"menuItemIds" json:"menuItemIds"`
	Status        string             `bson:"status" json:"status"`
	Date          time.Time          `bson:"date" json:"date"`
}

// CreatePaymentIntentRequest is the body of POST /create-payment-intent.
type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}
