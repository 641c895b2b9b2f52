package middleware

import (
	"context"
	"errors"
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

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) CreateUser(ctx context.Context, user *model.User) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *mockUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

func (m *mockUserService) PromoteUser(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func setupAdminRouter(svc *mockUserService, email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin-only",
		func(c *gin.Context) {
			if email != "" {
				c.Set(AuthEmailKey, email)
			}
			c.Next()
		},
		AdminMiddleware(svc),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		},
	)
	return r
}

func TestAdminMiddleware_Admin(t *testing.T) {
	svc := new(mockUserService)
	svc.On("IsAdmin", mock.Anything, "admin@x.com").Return(true, nil)

	r := setupAdminRouter(svc, "admin@x.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminMiddleware_NonAdmin(t *testing.T) {
	svc := new(mockUserService)
	svc.On("IsAdmin", mock.Anything, "user@x.com").Return(false, nil)

	r := setupAdminRouter(svc, "user@x.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden access")
}

func TestAdminMiddleware_NoAuthEmail(t *testing.T) {
	svc := new(mockUserService)

	r := setupAdminRouter(svc, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	svc.AssertNotCalled(t, "IsAdmin", mock.Anything, mock.Anything)
}

func TestAdminMiddleware_LookupError(t *testing.T) {
	// A store error must not silently permit access
	svc := new(mockUserService)
	svc.On("IsAdmin", mock.Anything, "admin@x.com").Return(false, errors.New("connection reset"))

	r := setupAdminRouter(svc, "admin@x.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
