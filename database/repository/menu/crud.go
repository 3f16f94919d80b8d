// File: database/repository/menu/crud.go
package menuRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"resortly/models"
)

func (r *mongoMenuRepo) Create(ctx context.Context, item *models.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

func (r *mongoMenuRepo) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var item models.MenuItem
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu item %s: %w", id, err)
	}
	return &item, nil
}

func (r *mongoMenuRepo) List(ctx context.Context, category string, availableOnly bool) ([]models.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if availableOnly {
		filter["available"] = true
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.MenuItem
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}
	return out, nil
}

func (r *mongoMenuRepo) Update(ctx context.Context, item *models.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	item.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": item.ID}, item)
	if err != nil {
		return fmt.Errorf("failed to update menu item %s: %w", item.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoMenuRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete menu item %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
