// File: database/repository/resource/guards.go
package resourceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"resortly/models"
)

// ClaimNights marks every requested night occupied in one conditional
// update. The filter requires that none of the nights is already present, so
// two concurrent claims over intersecting night sets cannot both match: at
// most one commit succeeds per overlapping interval.
func (r *mongoResourceRepo) ClaimNights(ctx context.Context, resourceID string, nights []models.Day) error {
	if len(nights) == 0 {
		return errors.New("no nights to claim")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Instantiate the calendar document on first use.
	_, err := r.calendars.UpdateOne(ctx,
		bson.M{"resource_id": resourceID},
		bson.M{"$setOnInsert": bson.M{"resource_id": resourceID, "nights": []models.Day{}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to ensure chalet calendar: %w", err)
	}

	filter := bson.M{
		"resource_id": resourceID,
		"nights":      bson.M{"$nin": nights},
	}
	update := bson.M{"$addToSet": bson.M{"nights": bson.M{"$each": nights}}}
	res, err := r.calendars.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to claim nights: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNightsTaken
	}
	return nil
}

func (r *mongoResourceRepo) ReleaseNights(ctx context.Context, resourceID string, nights []models.Day) error {
	if len(nights) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$pull": bson.M{"nights": bson.M{"$in": nights}}}
	_, err := r.calendars.UpdateOne(ctx, bson.M{"resource_id": resourceID}, update)
	if err != nil {
		return fmt.Errorf("failed to release nights: %w", err)
	}
	return nil
}

func (r *mongoResourceRepo) EnsureSessionDay(ctx context.Context, sessionID string, date models.Day, maxCapacity int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"session_id": sessionID, "date": date}
	update := bson.M{"$setOnInsert": bson.M{
		"session_id":   sessionID,
		"date":         date,
		"max_capacity": maxCapacity,
		"sold_units":   0,
		"version":      0,
	}}
	_, err := r.sessionDays.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to ensure session day: %w", err)
	}
	return nil
}

func (r *mongoResourceRepo) GetSessionDay(ctx context.Context, sessionID string, date models.Day) (*models.SessionDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var day models.SessionDay
	err := r.sessionDays.FindOne(ctx, bson.M{"session_id": sessionID, "date": date}).Decode(&day)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session day: %w", err)
	}
	return &day, nil
}

// ReserveCapacity adds units to the sold count only while room remains. The
// capacity check lives inside the update filter, so the read-modify-write is
// a single document operation and concurrent purchasers cannot both observe
// spare capacity.
func (r *mongoResourceRepo) ReserveCapacity(ctx context.Context, sessionID string, date models.Day, units int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"session_id": sessionID,
		"date":       date,
		"$expr": bson.M{"$lte": bson.A{
			bson.M{"$add": bson.A{"$sold_units", units}},
			"$max_capacity",
		}},
	}
	update := bson.M{"$inc": bson.M{"sold_units": units, "version": 1}}
	res, err := r.sessionDays.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve capacity: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrCapacityExhausted
	}
	return nil
}

func (r *mongoResourceRepo) ReleaseCapacity(ctx context.Context, sessionID string, date models.Day, units int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Never drop below zero, even if a rollback races a repair job.
	filter := bson.M{
		"session_id": sessionID,
		"date":       date,
		"sold_units": bson.M{"$gte": units},
	}
	update := bson.M{"$inc": bson.M{"sold_units": -units, "version": 1}}
	res, err := r.sessionDays.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to release capacity: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("capacity release skipped; ledger for %s/%s below %d units", sessionID, date, units)
	}
	return nil
}
