// File: database/repository/pricerule/crud.go
package priceruleRepo

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

func (r *mongoPriceRuleRepo) Create(ctx context.Context, rule *models.PriceRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	rule.CreatedAt = now
	rule.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, rule); err != nil {
		return fmt.Errorf("failed to insert price rule: %w", err)
	}
	return nil
}

func (r *mongoPriceRuleRepo) GetByID(ctx context.Context, id string) (*models.PriceRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rule models.PriceRule
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price rule %s: %w", id, err)
	}
	return &rule, nil
}

func (r *mongoPriceRuleRepo) ListActive(ctx context.Context, resourceID string, rtype models.ResourceType, from, to models.Day) ([]models.PriceRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"active":     true,
		"start_date": bson.M{"$lte": to},
		"end_date":   bson.M{"$gte": from},
		"$or": bson.A{
			bson.M{"resource_id": resourceID},
			bson.M{"resource_id": bson.M{"$in": bson.A{"", nil}}, "resource_type": rtype},
		},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list active price rules: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.PriceRule
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode price rules: %w", err)
	}
	return out, nil
}

func (r *mongoPriceRuleRepo) List(ctx context.Context) ([]models.PriceRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list price rules: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.PriceRule
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode price rules: %w", err)
	}
	return out, nil
}

func (r *mongoPriceRuleRepo) Update(ctx context.Context, rule *models.PriceRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rule.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": rule.ID}, rule)
	if err != nil {
		return fmt.Errorf("failed to update price rule %s: %w", rule.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoPriceRuleRepo) Deactivate(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"active": false, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to deactivate price rule %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
