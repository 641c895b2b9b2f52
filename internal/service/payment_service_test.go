package service

import (
	"context"
	"errors"
	"testing"

	"bistro_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v82"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Insert(ctx context.Context, payment *model.Payment) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

type stubIntentClient struct {
	gotParams *stripe.PaymentIntentParams
	intent    *stripe.PaymentIntent
	err       error
}

func (s *stubIntentClient) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	s.gotParams = params
	return s.intent, s.err
}

func TestIntentAmount(t *testing.T) {
	// Minimum floor of 50 minor units applies to small prices
	assert.EqualValues(t, 50, IntentAmount(0.30))
	assert.EqualValues(t, 50, IntentAmount(0.50))
	assert.EqualValues(t, 51, IntentAmount(0.51))
	assert.EqualValues(t, 1200, IntentAmount(12.00))
	assert.EqualValues(t, 1999, IntentAmount(19.99))
	assert.EqualValues(t, 50, IntentAmount(0))
}

func TestPaymentService_CreateIntent(t *testing.T) {
	client := &stubIntentClient{
		intent: &stripe.PaymentIntent{ClientSecret: "pi_123_secret_456"},
	}
	svc := NewPaymentService(new(mockPaymentRepo), client)

	secret, err := svc.CreateIntent(context.Background(), 12.00)

	assert.NoError(t, err)
	assert.Equal(t, "pi_123_secret_456", secret)
	assert.EqualValues(t, 1200, *client.gotParams.Amount)
	assert.Equal(t, "usd", *client.gotParams.Currency)
	if assert.Len(t, client.gotParams.PaymentMethodTypes, 1) {
		assert.Equal(t, "card", *client.gotParams.PaymentMethodTypes[0])
	}
}

func TestPaymentService_CreateIntent_UpstreamFailure(t *testing.T) {
	client := &stubIntentClient{err: errors.New("stripe unavailable")}
	svc := NewPaymentService(new(mockPaymentRepo), client)

	_, err := svc.CreateIntent(context.Background(), 12.00)
	assert.Error(t, err)
}

func TestPaymentService_RecordPayment(t *testing.T) {
	repo := new(mockPaymentRepo)
	svc := NewPaymentService(repo, &stubIntentClient{})

	payment := &model.Payment{Email: "a@x.com", Price: 12.00, Status: "pending"}
	insertedID := primitive.NewObjectID()
	repo.On("Insert", mock.Anything, payment).Return(&mongo.InsertOneResult{InsertedID: insertedID}, nil).Once()

	result, err := svc.RecordPayment(context.Background(), payment)

	assert.NoError(t, err)
	assert.Equal(t, insertedID, result.InsertedID)
	repo.AssertExpectations(t)
}
