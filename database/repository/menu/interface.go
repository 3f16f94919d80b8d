// File: database/repository/menu/interface.go
package menuRepo

import (
	"context"
	"errors"

	"resortly/database"
	"resortly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("menu item not found")

// MenuRepository owns the restaurant menu catalog.
type MenuRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
	List(ctx context.Context, category string, availableOnly bool) ([]models.MenuItem, error)
	Update(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, id string) error
}

type mongoMenuRepo struct {
	coll *mongo.Collection
}

// NewMongoMenuRepo constructs a MongoDB-backed MenuRepository.
func NewMongoMenuRepo() MenuRepository {
	return &mongoMenuRepo{coll: database.DB().Collection("menu_items")}
}
