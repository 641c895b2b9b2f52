package service

import (
	"context"
	"fmt"
	"math"

	"bistro_backend/internal/model"
	"bistro_backend/internal/repository"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"go.mongodb.org/mongo-driver/mongo"
)

// Stripe rejects intents below 50 minor units for usd.
const minIntentAmount = 50

// IntentClient creates payment intents on the payment processor. It exists
// so tests can stub the network call.
type IntentClient interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type stripeIntentClient struct{}

func (stripeIntentClient) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.New(params)
}

// NewStripeIntentClient configures the Stripe SDK with the account secret
// key and returns a client for creating payment intents.
func NewStripeIntentClient(secretKey string) IntentClient {
	stripe.Key = secretKey
	return stripeIntentClient{}
}

// PaymentService creates payment intents and records completed payments.
type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
	RecordPayment(ctx context.Context, payment *model.Payment) (*mongo.InsertOneResult, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	intents     IntentClient
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo repository.PaymentRepository, intents IntentClient) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, intents: intents}
}

// IntentAmount converts a price in dollars to the integer minor-unit amount
// sent to the processor, with the processor's minimum floor applied.
func IntentAmount(price float64) int64 {
	amount := int64(math.Round(price * 100))
	if amount < minIntentAmount {
		amount = minIntentAmount
	}
	return amount
}

// CreateIntent creates a card payment intent for the given price and returns
// the client secret the frontend needs to confirm the charge.
func (s *paymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(IntentAmount(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := s.intents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

// RecordPayment stores a payment document after a successful charge.
// TODO: delete the purchased cart items once the intended cascade semantics
// are confirmed (by cartIds vs. by owner email).
func (s *paymentService) RecordPayment(ctx context.Context, payment *model.Payment) (*mongo.InsertOneResult, error) {
	result, err := s.paymentRepo.Insert(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return result, nil
}
