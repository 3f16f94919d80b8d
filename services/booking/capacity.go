package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	reservationRepo "resortly/database/repository/reservation"
	resourceRepo "resortly/database/repository/resource"
	"resortly/models"
	"resortly/utils"
)

// CapacityLedger accounts for shared-session sales. The capacity check and
// the sale record are made indivisible by pushing the check into a
// conditional ledger update, so two simultaneous purchases can never both
// observe spare capacity and both succeed.
type CapacityLedger struct {
	Resources    resourceRepo.ResourceRepository
	Reservations reservationRepo.ReservationRepository
	Cache        *redis.Client // optional; advisory snapshots only
	SnapshotTTL  time.Duration
	Now          func() time.Time
}

func snapshotKey(sessionID string, date models.Day) string {
	return fmt.Sprintf("capacity:%s:%s", sessionID, date)
}

func (cl *CapacityLedger) now() time.Time {
	if cl.Now != nil {
		return cl.Now()
	}
	return time.Now().UTC()
}

// CheckAndReserve atomically admits a party into a session-date or refuses
// with CAPACITY_EXCEEDED and the remaining headroom. On success the inserted
// reservation is returned in confirmed status.
func (cl *CapacityLedger) CheckAndReserve(ctx context.Context, session *models.SharedSession, date models.Day, partySize int, unitPrice models.Cents, meta models.BookingMeta) (*models.Reservation, error) {
	if partySize <= 0 {
		return nil, reject(CodeInvalidInput, "party size must be positive, got %d", partySize)
	}
	if date.IsZero() {
		return nil, reject(CodeInvalidInput, "session date is required")
	}

	if err := cl.Resources.EnsureSessionDay(ctx, session.ID, date, session.MaxCapacity); err != nil {
		return nil, storeErr(err)
	}

	if err := cl.Resources.ReserveCapacity(ctx, session.ID, date, partySize); err != nil {
		if errors.Is(err, resourceRepo.ErrCapacityExhausted) {
			available := 0
			if day, dayErr := cl.Resources.GetSessionDay(ctx, session.ID, date); dayErr == nil {
				available = day.MaxCapacity - day.SoldUnits
			}
			rej := reject(CodeCapacityExceeded,
				"session %s on %s has %d of %d seats left, requested %d",
				session.ID, date, available, session.MaxCapacity, partySize)
			rej.Available = available
			return nil, rej
		}
		return nil, storeErr(err)
	}

	now := cl.now()
	res := &models.Reservation{
		ResourceID:   session.ID,
		ResourceType: models.ResourceShared,
		GuestID:      meta.GuestID,
		GuestName:    meta.GuestName,
		SessionDate:  date,
		PartySize:    partySize,
		Status:       models.StatusConfirmed,
		UnitPrice:    unitPrice,
		TotalPrice:   unitPrice * models.Cents(partySize),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := cl.Reservations.Insert(ctx, res); err != nil {
		// The seats were already taken out of the ledger; hand them back.
		if rbErr := cl.Resources.ReleaseCapacity(ctx, session.ID, date, partySize); rbErr != nil {
			utils.GetLogger().Error("capacity rollback failed after insert error",
				zap.String("sessionID", session.ID), zap.String("date", string(date)), zap.Error(rbErr))
		}
		return nil, storeErr(err)
	}

	cl.invalidateSnapshot(ctx, session.ID, date)
	return res, nil
}

// GetCapacitySnapshot reports (sold, admitted, available) for display. The
// result may be served from a short-lived cache and is allowed to be stale;
// enforcement always goes through CheckAndReserve.
func (cl *CapacityLedger) GetCapacitySnapshot(ctx context.Context, session *models.SharedSession, date models.Day) (*models.CapacitySnapshot, error) {
	key := snapshotKey(session.ID, date)
	if cl.Cache != nil {
		if cached, err := cl.Cache.Get(ctx, key).Result(); err == nil {
			var snap models.CapacitySnapshot
			if jsonErr := json.Unmarshal([]byte(cached), &snap); jsonErr == nil {
				return &snap, nil
			}
		}
	}

	sold, err := cl.Reservations.SumPartySize(ctx, session.ID, date, models.CapacityStatuses())
	if err != nil {
		return nil, storeErr(err)
	}
	admitted, err := cl.Reservations.SumPartySize(ctx, session.ID, date, []models.ReservationStatus{models.StatusCheckedIn})
	if err != nil {
		return nil, storeErr(err)
	}

	snap := &models.CapacitySnapshot{
		SessionID: session.ID,
		Date:      date,
		Sold:      sold,
		Admitted:  admitted,
		Available: session.MaxCapacity - sold,
	}
	if cl.Cache != nil {
		if data, err := json.Marshal(snap); err == nil {
			cl.Cache.Set(ctx, key, data, cl.SnapshotTTL)
		}
	}
	return snap, nil
}

// invalidateSnapshot drops the cached snapshot for a session-date. Called on
// every commit and cancellation, never on a timer, so the cache can only be
// stale between unrelated reads.
func (cl *CapacityLedger) invalidateSnapshot(ctx context.Context, sessionID string, date models.Day) {
	if cl.Cache == nil {
		return
	}
	if err := cl.Cache.Del(ctx, snapshotKey(sessionID, date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate capacity snapshot",
			zap.String("sessionID", sessionID), zap.String("date", string(date)), zap.Error(err))
	}
}
