package service

import (
	"context"
	"fmt"

	"bistro_backend/internal/model"
	"bistro_backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartService provides cart operations. No ownership check is enforced:
// any client may add items, and items are deleted by their own id.
type CartService interface {
	ListByEmail(ctx context.Context, email string) ([]model.CartItem, error)
	AddItem(ctx context.Context, item *model.CartItem) (*mongo.InsertOneResult, error)
	RemoveItem(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type cartService struct {
	cartRepo repository.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartService{cartRepo: cartRepo}
}

func (s *cartService) ListByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	items, err := s.cartRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return items, nil
}

func (s *cartService) AddItem(ctx context.Context, item *model.CartItem) (*mongo.InsertOneResult, error) {
	result, err := s.cartRepo.Insert(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	return result, nil
}

func (s *cartService) RemoveItem(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := s.cartRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}
	return result, nil
}
