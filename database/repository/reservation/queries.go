// File: database/repository/reservation/queries.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"resortly/models"
)

func (f ListFilter) toBSON() bson.M {
	filter := bson.M{}
	if f.ResourceID != "" {
		filter["resource_id"] = f.ResourceID
	}
	if f.GuestID != "" {
		filter["guest_id"] = f.GuestID
	}
	if len(f.Statuses) > 0 {
		filter["status"] = bson.M{"$in": f.Statuses}
	}
	if f.ExcludeID != "" {
		filter["id"] = bson.M{"$ne": f.ExcludeID}
	}
	if !f.SessionDate.IsZero() {
		filter["session_date"] = f.SessionDate
	}
	return filter
}

func (r *mongoReservationRepo) List(ctx context.Context, filter ListFilter) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter.toBSON())
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return out, nil
}

func (r *mongoReservationRepo) SumPartySize(ctx context.Context, sessionID string, date models.Day, statuses []models.ReservationStatus) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"resource_id":  sessionID,
			"session_date": date,
			"status":       bson.M{"$in": statuses},
		}},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$party_size"},
		}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate party sizes: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode party size aggregate: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
