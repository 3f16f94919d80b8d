package menu

import (
	"context"
	"fmt"

	menuRepo "resortly/database/repository/menu"
	"resortly/models"
)

// MenuService manages the restaurant menu catalog.
type MenuService interface {
	Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	Get(ctx context.Context, id string) (*models.MenuItem, error)
	List(ctx context.Context, category string, availableOnly bool) ([]models.MenuItem, error)
	Update(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

// DefaultMenuService implements MenuService.
type DefaultMenuService struct {
	Repo menuRepo.MenuRepository
}

func validateItem(item *models.MenuItem) error {
	if item.Name == "" || len(item.Name) > 100 {
		return fmt.Errorf("menu item name must be between 1 and 100 characters")
	}
	if item.Price < 0 {
		return fmt.Errorf("menu item price cannot be negative")
	}
	return nil
}

func (s *DefaultMenuService) Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *DefaultMenuService) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultMenuService) List(ctx context.Context, category string, availableOnly bool) ([]models.MenuItem, error) {
	return s.Repo.List(ctx, category, availableOnly)
}

func (s *DefaultMenuService) Update(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *DefaultMenuService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
