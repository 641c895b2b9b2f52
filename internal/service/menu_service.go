package service

import (
	"context"
	"fmt"

	"bistro_backend/internal/model"
	"bistro_backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MenuService provides catalog operations. Reads are public, writes are
// admin-only (enforced by route guards, not here).
type MenuService interface {
	ListMenu(ctx context.Context) ([]model.MenuItem, error)
	GetItem(ctx context.Context, id primitive.ObjectID) (*model.MenuItem, error)
	CreateItem(ctx context.Context, item *model.MenuItem) (*mongo.InsertOneResult, error)
	DeleteItem(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new MenuService.
func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

func (s *menuService) ListMenu(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.menuRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}
	return items, nil
}

// GetItem returns the menu item with the given id, or nil when absent.
// Absence is surfaced to the client as a null payload, not an error.
func (s *menuService) GetItem(ctx context.Context, id primitive.ObjectID) (*model.MenuItem, error) {
	item, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) CreateItem(ctx context.Context, item *model.MenuItem) (*mongo.InsertOneResult, error) {
	result, err := s.menuRepo.Insert(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return result, nil
}

func (s *menuService) DeleteItem(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := s.menuRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete menu item: %w", err)
	}
	return result, nil
}
