// File: database/repository/reservation/crud.go
package reservationRepo

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

func (r *mongoReservationRepo) Insert(ctx context.Context, res *models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}

func (r *mongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var res models.Reservation
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation %s: %w", id, err)
	}
	return &res, nil
}

func (r *mongoReservationRepo) UpdateStatus(ctx context.Context, id string, from, to models.ReservationStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing record from a lost transition race.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrStatusConflict
	}
	return nil
}

func (r *mongoReservationRepo) UpdateStay(ctx context.Context, id string, checkIn, checkOut models.Day, nights []models.NightRate, total models.Cents) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"check_in":    checkIn,
		"check_out":   checkOut,
		"nights":      nights,
		"total_price": total,
		"updated_at":  time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update reservation stay: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
