package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mockPaymentService struct {
	mock.Mock
}

func (m *mockPaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	args := m.Called(ctx, price)
	return args.String(0), args.Error(1)
}

func (m *mockPaymentService) RecordPayment(ctx context.Context, payment *model.Payment) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func setupPaymentRouter(svc *mockPaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewPaymentHandler(svc).RegisterPaymentRoutes(r.Group(""))
	return r
}

func TestPaymentHandler_CreatePaymentIntent(t *testing.T) {
	svc := new(mockPaymentService)
	svc.On("CreateIntent", mock.Anything, 12.00).Return("pi_123_secret_456", nil).Once()

	r := setupPaymentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(`{"price":12.00}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"clientSecret":"pi_123_secret_456"`)
	svc.AssertExpectations(t)
}

func TestPaymentHandler_CreatePaymentIntent_MissingPrice(t *testing.T) {
	svc := new(mockPaymentService)

	r := setupPaymentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateIntent", mock.Anything, mock.Anything)
}

func TestPaymentHandler_RecordPayment(t *testing.T) {
	svc := new(mockPaymentService)
	insertedID := primitive.NewObjectID()
	svc.On("RecordPayment", mock.Anything, mock.Anything).Return(&mongo.InsertOneResult{InsertedID: insertedID}, nil).Once()

	r := setupPaymentRouter(svc)

	body := `{"email":"a@x.com","price":12.00,"transactionId":"pi_123","cartIds":["c1"],"menuItemIds":["m1"],"status":"pending"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), insertedID.Hex())
	svc.AssertExpectations(t)
}
