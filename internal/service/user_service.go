package service

import (
	"context"
	"errors"
	"fmt"

	"bistro_backend/internal/model"
	"bistro_backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrUserAlreadyExists = errors.New("user already exist")
)

// UserService provides user account operations.
type UserService interface {
	CreateUser(ctx context.Context, user *model.User) (*mongo.InsertOneResult, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	PromoteUser(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateUser stores a user record on first sign-in. The operation is
// idempotent on email: if a record already exists the insert is skipped and
// ErrUserAlreadyExists is returned. The check is read-then-write, so two
// concurrent calls for the same email can race; upstream consistency is
// delegated to the store.
func (s *userService) CreateUser(ctx context.Context, user *model.User) (*mongo.InsertOneResult, error) {
	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	result, err := s.userRepo.Insert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return result, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// IsAdmin reports whether the user stored under the given email holds the
// admin role. An absent user is simply not an admin.
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to look up user role: %w", err)
	}
	return user.IsAdmin(), nil
}

func (s *userService) DeleteUser(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := s.userRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return result, nil
}

func (s *userService) PromoteUser(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	result, err := s.userRepo.PromoteToAdmin(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to promote user: %w", err)
	}
	return result, nil
}
