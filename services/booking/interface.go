package booking

import (
	"context"
	"time"

	reservationRepo "resortly/database/repository/reservation"
	resourceRepo "resortly/database/repository/resource"
	"resortly/models"
)

// Engine is the surface the booking controllers call. Every method either
// succeeds or fails fast with a typed *Rejection; nothing retries
// internally.
type Engine interface {
	QuoteExclusive(ctx context.Context, resourceID string, checkIn, checkOut models.Day) (*models.ExclusiveQuote, error)
	CommitExclusive(ctx context.Context, resourceID string, checkIn, checkOut models.Day, meta models.BookingMeta) (*models.Reservation, error)
	QuoteShared(ctx context.Context, sessionID string, date models.Day, partySize int) (*models.SharedQuote, error)
	CommitShared(ctx context.Context, sessionID string, date models.Day, partySize int, meta models.BookingMeta) (*models.Reservation, error)
	Reschedule(ctx context.Context, reservationID string, checkIn, checkOut models.Day) (*models.Reservation, error)
	Cancel(ctx context.Context, reservationID string) error
	Transition(ctx context.Context, reservationID string, to models.ReservationStatus) error
	Snapshot(ctx context.Context, sessionID string, date models.Day) (*models.CapacitySnapshot, error)
}

// Coordinator composes the availability index, the price resolver, and the
// capacity ledger into priced, conflict-free reservations. It keeps no
// mutable state of its own; everything durable lives behind the
// repositories.
type Coordinator struct {
	Availability *AvailabilityIndex
	Pricing      *PriceRuleResolver
	Ledger       *CapacityLedger
	Resources    resourceRepo.ResourceRepository
	Reservations reservationRepo.ReservationRepository
	// Now stamps records; business-date comparisons always use
	// caller-supplied dates, never the wall clock.
	Now func() time.Time
}

var _ Engine = (*Coordinator)(nil)

func (c *Coordinator) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now().UTC()
}
