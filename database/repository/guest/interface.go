// File: database/repository/guest/interface.go
package guestRepo

import (
	"context"
	"errors"

	"resortly/database"
	"resortly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("guest not found")

// GuestRepository owns guest profiles and their notification preferences.
type GuestRepository interface {
	Create(ctx context.Context, g *models.Guest) error
	GetByID(ctx context.Context, id string) (*models.Guest, error)
	Update(ctx context.Context, g *models.Guest) error
	UpdatePrefs(ctx context.Context, id string, prefs models.NotificationPrefs) error
}

type mongoGuestRepo struct {
	coll *mongo.Collection
}

// NewMongoGuestRepo constructs a MongoDB-backed GuestRepository.
func NewMongoGuestRepo() GuestRepository {
	return &mongoGuestRepo{coll: database.DB().Collection("guests")}
}
