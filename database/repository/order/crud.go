// File: database/repository/order/crud.go
package orderRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"resortly/models"
)

func (r *mongoOrderRepo) Insert(ctx context.Context, order *models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *mongoOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var order models.Order
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order %s: %w", id, err)
	}
	return &order, nil
}

func (r *mongoOrderRepo) ListByGuest(ctx context.Context, guestID string) ([]models.Order, error) {
	return r.list(ctx, bson.M{"guest_id": guestID})
}

func (r *mongoOrderRepo) ListByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	return r.list(ctx, bson.M{"status": status})
}

func (r *mongoOrderRepo) list(ctx context.Context, filter bson.M) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Order
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return out, nil
}

func (r *mongoOrderRepo) UpdateStatus(ctx context.Context, id string, from, to models.OrderStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrStatusConflict
	}
	return nil
}
