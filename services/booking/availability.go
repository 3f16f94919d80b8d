package booking

import (
	"context"

	reservationRepo "resortly/database/repository/reservation"
	"resortly/models"
)

// AvailabilityIndex answers whether a requested stay interval collides with
// any live reservation on the same exclusive resource. It is a pure read
// computation with no side effects.
type AvailabilityIndex struct {
	Reservations reservationRepo.ReservationRepository
}

// FindConflicts enumerates reservations on resourceID whose half-open stay
// interval overlaps [start, end). Cancelled and checked-out reservations do
// not block; excludeID skips a reservation being re-validated against
// itself during a reschedule. An empty result means the interval is free.
func (ai *AvailabilityIndex) FindConflicts(ctx context.Context, resourceID string, start, end models.Day, excludeID string) ([]models.Reservation, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return nil, reject(CodeInvalidRange, "check-out %s must be after check-in %s", end, start)
	}

	existing, err := ai.Reservations.List(ctx, reservationRepo.ListFilter{
		ResourceID: resourceID,
		Statuses:   models.ConflictStatuses(),
		ExcludeID:  excludeID,
	})
	if err != nil {
		return nil, storeErr(err)
	}

	var conflicts []models.Reservation
	for _, r := range existing {
		if models.DaysOverlap(start, end, r.CheckIn, r.CheckOut) {
			conflicts = append(conflicts, r)
		}
	}
	return conflicts, nil
}
