// File: database/repository/guest/crud.go
package guestRepo

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

func (r *mongoGuestRepo) Create(ctx context.Context, g *models.Guest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, g); err != nil {
		return fmt.Errorf("failed to insert guest: %w", err)
	}
	return nil
}

func (r *mongoGuestRepo) GetByID(ctx context.Context, id string) (*models.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var g models.Guest
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guest %s: %w", id, err)
	}
	return &g, nil
}

func (r *mongoGuestRepo) Update(ctx context.Context, g *models.Guest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	g.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": g.ID}, g)
	if err != nil {
		return fmt.Errorf("failed to update guest %s: %w", g.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoGuestRepo) UpdatePrefs(ctx context.Context, id string, prefs models.NotificationPrefs) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"prefs": prefs, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update guest prefs: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
