// File: database/repository/resource/interface.go
package resourceRepo

import (
	"context"
	"errors"

	"resortly/database"
	"resortly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no resource matches the given id.
var ErrNotFound = errors.New("resource not found")

// ErrNightsTaken is returned when a calendar claim loses to an existing
// occupied night. The caller translates this into a booking conflict.
var ErrNightsTaken = errors.New("one or more nights already occupied")

// ErrCapacityExhausted is returned when a conditional capacity reserve finds
// too few units left. The caller translates this into a capacity rejection.
var ErrCapacityExhausted = errors.New("session capacity exhausted")

// ResourceRepository owns chalet units, shared session templates, and the
// commit-time guard documents (chalet calendars and per-date session
// ledgers) that make commits atomic.
type ResourceRepository interface {
	CreateChalet(ctx context.Context, ch *models.Chalet) error
	GetChalet(ctx context.Context, id string) (*models.Chalet, error)
	ListChalets(ctx context.Context, activeOnly bool) ([]models.Chalet, error)
	UpdateChalet(ctx context.Context, ch *models.Chalet) error

	CreateSession(ctx context.Context, s *models.SharedSession) error
	GetSession(ctx context.Context, id string) (*models.SharedSession, error)
	ListSessions(ctx context.Context, activeOnly bool) ([]models.SharedSession, error)
	UpdateSession(ctx context.Context, s *models.SharedSession) error

	// ClaimNights atomically marks all given nights occupied for a chalet,
	// failing with ErrNightsTaken if any night is already held.
	ClaimNights(ctx context.Context, resourceID string, nights []models.Day) error
	// ReleaseNights frees previously claimed nights (cancellation, checkout,
	// reschedule, or rollback of a failed commit).
	ReleaseNights(ctx context.Context, resourceID string, nights []models.Day) error

	// EnsureSessionDay lazily instantiates the per-date sale ledger for a
	// session, seeding it with the session's capacity.
	EnsureSessionDay(ctx context.Context, sessionID string, date models.Day, maxCapacity int) error
	GetSessionDay(ctx context.Context, sessionID string, date models.Day) (*models.SessionDay, error)
	// ReserveCapacity atomically adds units to the ledger's sold count,
	// failing with ErrCapacityExhausted when the remaining capacity is too
	// small. This conditional update is the oversell guard.
	ReserveCapacity(ctx context.Context, sessionID string, date models.Day, units int) error
	// ReleaseCapacity subtracts units from the sold count (cancellation or
	// rollback of a failed commit).
	ReleaseCapacity(ctx context.Context, sessionID string, date models.Day, units int) error
}

type mongoResourceRepo struct {
	chalets     *mongo.Collection
	sessions    *mongo.Collection
	calendars   *mongo.Collection
	sessionDays *mongo.Collection
}

// NewMongoResourceRepo constructs a MongoDB-backed ResourceRepository.
func NewMongoResourceRepo() ResourceRepository {
	db := database.DB()
	return &mongoResourceRepo{
		chalets:     db.Collection("chalets"),
		sessions:    db.Collection("sessions"),
		calendars:   db.Collection("chalet_calendars"),
		sessionDays: db.Collection("session_days"),
	}
}
