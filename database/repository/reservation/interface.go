// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"errors"

	"resortly/database"
	"resortly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no reservation matches the given id.
var ErrNotFound = errors.New("reservation not found")

// ErrStatusConflict is returned when a status update loses the race against
// a concurrent transition (the from-status no longer matches).
var ErrStatusConflict = errors.New("reservation status changed concurrently")

// ListFilter is the closed set of reservation query criteria. Zero-valued
// fields are ignored, so invalid filter combinations cannot be expressed.
type ListFilter struct {
	ResourceID  string
	GuestID     string
	Statuses    []models.ReservationStatus
	ExcludeID   string
	SessionDate models.Day
}

// ReservationRepository owns durable reservation records.
type ReservationRepository interface {
	Insert(ctx context.Context, res *models.Reservation) error
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	List(ctx context.Context, filter ListFilter) ([]models.Reservation, error)
	// UpdateStatus transitions id from the expected status to the new one.
	// The expected status is part of the update filter, so concurrent
	// transitions cannot both win.
	UpdateStatus(ctx context.Context, id string, from, to models.ReservationStatus) error
	// UpdateStay rewrites the interval and price breakdown of an exclusive
	// reservation during a reschedule.
	UpdateStay(ctx context.Context, id string, checkIn, checkOut models.Day, nights []models.NightRate, total models.Cents) error
	// SumPartySize aggregates party sizes over reservations for one
	// session-date in the given statuses.
	SumPartySize(ctx context.Context, sessionID string, date models.Day, statuses []models.ReservationStatus) (int, error)
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a MongoDB-backed ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	return &mongoReservationRepo{coll: database.DB().Collection("reservations")}
}
