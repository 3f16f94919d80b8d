package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	reservationRepo "resortly/database/repository/reservation"
	resourceRepo "resortly/database/repository/resource"
	"resortly/models"
	"resortly/utils"
)

// QuoteExclusive reports whether a chalet stay is feasible and what it
// would cost. Quoting is read-only: repeated calls with no intervening
// commits return identical results.
func (c *Coordinator) QuoteExclusive(ctx context.Context, resourceID string, checkIn, checkOut models.Day) (*models.ExclusiveQuote, error) {
	chalet, err := c.getChalet(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	conflicts, err := c.Availability.FindConflicts(ctx, resourceID, checkIn, checkOut, "")
	if err != nil {
		return nil, err
	}
	quote := &models.ExclusiveQuote{
		ResourceID: resourceID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Feasible:   len(conflicts) == 0,
		Conflicts:  conflicts,
	}
	if !quote.Feasible {
		return quote, nil
	}

	rates, err := c.Pricing.ResolveNightly(ctx, resourceID, models.ResourceExclusive, checkIn, checkOut, chalet.NightlyBase)
	if err != nil {
		return nil, err
	}
	quote.Nights = rates
	quote.TotalPrice = SumNights(rates)
	return quote, nil
}

// CommitExclusive books a chalet stay. Feasibility is checked twice: once
// against the reservation rows for a conflict report, and once atomically by
// claiming the nights on the chalet calendar, which is what guarantees at
// most one successful commit per overlapping interval.
func (c *Coordinator) CommitExclusive(ctx context.Context, resourceID string, checkIn, checkOut models.Day, meta models.BookingMeta) (*models.Reservation, error) {
	chalet, err := c.getChalet(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	conflicts, err := c.Availability.FindConflicts(ctx, resourceID, checkIn, checkOut, "")
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, c.conflictRejection(resourceID, checkIn, checkOut, conflicts)
	}

	rates, err := c.Pricing.ResolveNightly(ctx, resourceID, models.ResourceExclusive, checkIn, checkOut, chalet.NightlyBase)
	if err != nil {
		return nil, err
	}

	nights := models.Nights(checkIn, checkOut)
	if err := c.Resources.ClaimNights(ctx, resourceID, nights); err != nil {
		if errors.Is(err, resourceRepo.ErrNightsTaken) {
			// Lost the race since the read above; report the winners.
			conflicts, listErr := c.Availability.FindConflicts(ctx, resourceID, checkIn, checkOut, "")
			if listErr != nil {
				return nil, listErr
			}
			return nil, c.conflictRejection(resourceID, checkIn, checkOut, conflicts)
		}
		return nil, storeErr(err)
	}

	now := c.now()
	res := &models.Reservation{
		ResourceID:   resourceID,
		ResourceType: models.ResourceExclusive,
		GuestID:      meta.GuestID,
		GuestName:    meta.GuestName,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Nights:       rates,
		Status:       models.StatusConfirmed,
		UnitPrice:    chalet.BaseRate,
		TotalPrice:   SumNights(rates),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := c.Reservations.Insert(ctx, res); err != nil {
		if rbErr := c.Resources.ReleaseNights(ctx, resourceID, nights); rbErr != nil {
			utils.GetLogger().Error("night rollback failed after insert error",
				zap.String("resourceID", resourceID), zap.Error(rbErr))
		}
		return nil, storeErr(err)
	}
	return res, nil
}

// QuoteShared prices a shared-session purchase and reports advisory
// availability. The price does not depend on the capacity outcome.
func (c *Coordinator) QuoteShared(ctx context.Context, sessionID string, date models.Day, partySize int) (*models.SharedQuote, error) {
	if partySize <= 0 {
		return nil, reject(CodeInvalidInput, "party size must be positive, got %d", partySize)
	}
	session, err := c.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	unit, err := c.Pricing.ResolvePrice(ctx, session.UnitPrice, sessionID, models.ResourceShared, date)
	if err != nil {
		return nil, err
	}
	snap, err := c.Ledger.GetCapacitySnapshot(ctx, session, date)
	if err != nil {
		return nil, err
	}
	return &models.SharedQuote{
		SessionID:  sessionID,
		Date:       date,
		PartySize:  partySize,
		Available:  snap.Available,
		UnitPrice:  unit,
		TotalPrice: unit * models.Cents(partySize),
	}, nil
}

// CommitShared prices first, then runs the atomic check-and-reserve.
func (c *Coordinator) CommitShared(ctx context.Context, sessionID string, date models.Day, partySize int, meta models.BookingMeta) (*models.Reservation, error) {
	session, err := c.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	unit, err := c.Pricing.ResolvePrice(ctx, session.UnitPrice, sessionID, models.ResourceShared, date)
	if err != nil {
		return nil, err
	}
	return c.Ledger.CheckAndReserve(ctx, session, date, partySize, unit, meta)
}

// Reschedule moves an exclusive stay to new dates, re-validating against
// every reservation except itself. Only the nights not already held by this
// reservation are claimed, so shrinking or shifting a stay cannot conflict
// with its own calendar entries.
func (c *Coordinator) Reschedule(ctx context.Context, reservationID string, checkIn, checkOut models.Day) (*models.Reservation, error) {
	res, err := c.getReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.ResourceType != models.ResourceExclusive {
		return nil, reject(CodeInvalidInput, "only chalet stays can be rescheduled")
	}
	if res.Status != models.StatusPending && res.Status != models.StatusConfirmed {
		return nil, reject(CodeInvalidInput, "reservation in status %s cannot be rescheduled", res.Status)
	}

	conflicts, err := c.Availability.FindConflicts(ctx, res.ResourceID, checkIn, checkOut, res.ID)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, c.conflictRejection(res.ResourceID, checkIn, checkOut, conflicts)
	}

	chalet, err := c.getChalet(ctx, res.ResourceID)
	if err != nil {
		return nil, err
	}
	rates, err := c.Pricing.ResolveNightly(ctx, res.ResourceID, models.ResourceExclusive, checkIn, checkOut, chalet.NightlyBase)
	if err != nil {
		return nil, err
	}

	oldNights := models.Nights(res.CheckIn, res.CheckOut)
	newNights := models.Nights(checkIn, checkOut)
	toClaim := diffNights(newNights, oldNights)
	toRelease := diffNights(oldNights, newNights)

	if len(toClaim) > 0 {
		if err := c.Resources.ClaimNights(ctx, res.ResourceID, toClaim); err != nil {
			if errors.Is(err, resourceRepo.ErrNightsTaken) {
				conflicts, listErr := c.Availability.FindConflicts(ctx, res.ResourceID, checkIn, checkOut, res.ID)
				if listErr != nil {
					return nil, listErr
				}
				return nil, c.conflictRejection(res.ResourceID, checkIn, checkOut, conflicts)
			}
			return nil, storeErr(err)
		}
	}

	total := SumNights(rates)
	if err := c.Reservations.UpdateStay(ctx, res.ID, checkIn, checkOut, rates, total); err != nil {
		if len(toClaim) > 0 {
			if rbErr := c.Resources.ReleaseNights(ctx, res.ResourceID, toClaim); rbErr != nil {
				utils.GetLogger().Error("night rollback failed after reschedule error",
					zap.String("reservationID", res.ID), zap.Error(rbErr))
			}
		}
		return nil, storeErr(err)
	}
	if err := c.Resources.ReleaseNights(ctx, res.ResourceID, toRelease); err != nil {
		utils.GetLogger().Error("failed to release vacated nights after reschedule",
			zap.String("reservationID", res.ID), zap.Error(err))
	}

	res.CheckIn = checkIn
	res.CheckOut = checkOut
	res.Nights = rates
	res.TotalPrice = total
	res.UpdatedAt = c.now()
	return res, nil
}

// Cancel transitions a reservation to cancelled and immediately frees its
// nights or seats. Exclusion from future feasibility checks is filter-based,
// so no background cleanup is involved.
func (c *Coordinator) Cancel(ctx context.Context, reservationID string) error {
	res, err := c.getReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if !models.CanTransition(res.Status, models.StatusCancelled) {
		return reject(CodeInvalidInput, "reservation in status %s cannot be cancelled", res.Status)
	}
	if err := c.Reservations.UpdateStatus(ctx, res.ID, res.Status, models.StatusCancelled); err != nil {
		return storeErr(err)
	}
	c.releaseHolding(ctx, res)
	return nil
}

// Transition applies a staff-driven status change (check-in, check-out,
// no-show) under the closed transition table.
func (c *Coordinator) Transition(ctx context.Context, reservationID string, to models.ReservationStatus) error {
	if to == models.StatusCancelled {
		return c.Cancel(ctx, reservationID)
	}
	res, err := c.getReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if res.ResourceType == models.ResourceShared && to == models.StatusCheckedOut {
		// A used ticket keeps its slot for the day; shared sales end at
		// checked_in.
		return reject(CodeInvalidInput, "shared-session sales are not checked out")
	}
	if !models.CanTransition(res.Status, to) {
		return reject(CodeInvalidInput, "cannot transition reservation from %s to %s", res.Status, to)
	}
	if err := c.Reservations.UpdateStatus(ctx, res.ID, res.Status, to); err != nil {
		return storeErr(err)
	}

	switch to {
	case models.StatusCheckedOut:
		// The stay is over; the calendar nights stop blocking.
		c.releaseHolding(ctx, res)
	case models.StatusNoShow:
		if res.ResourceType == models.ResourceShared {
			// Keep the sale ledger aligned with the aggregation, which
			// stops counting no-shows.
			c.releaseHolding(ctx, res)
		}
	}
	return nil
}

// Snapshot exposes the advisory capacity view for one session-date.
func (c *Coordinator) Snapshot(ctx context.Context, sessionID string, date models.Day) (*models.CapacitySnapshot, error) {
	session, err := c.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return c.Ledger.GetCapacitySnapshot(ctx, session, date)
}

func (c *Coordinator) releaseHolding(ctx context.Context, res *models.Reservation) {
	logger := utils.GetLogger()
	switch res.ResourceType {
	case models.ResourceExclusive:
		nights := models.Nights(res.CheckIn, res.CheckOut)
		if err := c.Resources.ReleaseNights(ctx, res.ResourceID, nights); err != nil {
			logger.Error("failed to release chalet nights",
				zap.String("reservationID", res.ID), zap.Error(err))
		}
	case models.ResourceShared:
		if err := c.Resources.ReleaseCapacity(ctx, res.ResourceID, res.SessionDate, res.PartySize); err != nil {
			logger.Error("failed to release session capacity",
				zap.String("reservationID", res.ID), zap.Error(err))
		}
		c.Ledger.invalidateSnapshot(ctx, res.ResourceID, res.SessionDate)
	}
}

func (c *Coordinator) conflictRejection(resourceID string, checkIn, checkOut models.Day, conflicts []models.Reservation) *Rejection {
	rej := reject(CodeConflict, "chalet %s is occupied within [%s, %s)", resourceID, checkIn, checkOut)
	rej.Conflicts = conflicts
	return rej
}

func (c *Coordinator) getChalet(ctx context.Context, id string) (*models.Chalet, error) {
	chalet, err := c.Resources.GetChalet(ctx, id)
	if errors.Is(err, resourceRepo.ErrNotFound) {
		return nil, reject(CodeInvalidInput, "unknown chalet %s", id)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	if !chalet.Active {
		return nil, reject(CodeInvalidInput, "chalet %s is not open for sale", id)
	}
	return chalet, nil
}

func (c *Coordinator) getSession(ctx context.Context, id string) (*models.SharedSession, error) {
	session, err := c.Resources.GetSession(ctx, id)
	if errors.Is(err, resourceRepo.ErrNotFound) {
		return nil, reject(CodeInvalidInput, "unknown session %s", id)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	if !session.Active {
		return nil, reject(CodeInvalidInput, "session %s is not open for sale", id)
	}
	return session, nil
}

func (c *Coordinator) getReservation(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := c.Reservations.GetByID(ctx, id)
	if errors.Is(err, reservationRepo.ErrNotFound) {
		return nil, reject(CodeInvalidInput, "unknown reservation %s", id)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return res, nil
}

// diffNights returns the nights in a that are not in b.
func diffNights(a, b []models.Day) []models.Day {
	inB := make(map[models.Day]bool, len(b))
	for _, d := range b {
		inB[d] = true
	}
	var out []models.Day
	for _, d := range a {
		if !inB[d] {
			out = append(out, d)
		}
	}
	return out
}
