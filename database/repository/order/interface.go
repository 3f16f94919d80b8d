// File: database/repository/order/interface.go
package orderRepo

import (
	"context"
	"errors"

	"resortly/database"
	"resortly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("order not found")

// ErrStatusConflict is returned when a status update loses the race against
// a concurrent transition.
var ErrStatusConflict = errors.New("order status changed concurrently")

// OrderRepository owns dining order records.
type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	ListByGuest(ctx context.Context, guestID string) ([]models.Order, error)
	ListByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	// UpdateStatus transitions id from the expected status to the new one,
	// with the expected status in the update filter.
	UpdateStatus(ctx context.Context, id string, from, to models.OrderStatus) error
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo constructs a MongoDB-backed OrderRepository.
func NewMongoOrderRepo() OrderRepository {
	return &mongoOrderRepo{coll: database.DB().Collection("orders")}
}
