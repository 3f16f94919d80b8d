package booking

import (
	"context"
	"testing"

	"resortly/models"
)

func seedStay(t *testing.T, repo *fakeReservationRepo, id, resourceID string, checkIn, checkOut models.Day, status models.ReservationStatus) {
	t.Helper()
	err := repo.Insert(context.Background(), &models.Reservation{
		ID:           id,
		ResourceID:   resourceID,
		ResourceType: models.ResourceExclusive,
		GuestID:      "guest-1",
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Status:       status,
	})
	if err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
}

func TestFindConflictsHalfOpenIntervals(t *testing.T) {
	repo := newFakeReservationRepo()
	seedStay(t, repo, "r1", "chalet-1", "2026-07-10", "2026-07-14", models.StatusConfirmed)
	index := &AvailabilityIndex{Reservations: repo}

	tests := []struct {
		name      string
		start     models.Day
		end       models.Day
		conflicts int
	}{
		{"identical interval", "2026-07-10", "2026-07-14", 1},
		{"overlaps tail", "2026-07-12", "2026-07-16", 1},
		{"overlaps head", "2026-07-08", "2026-07-11", 1},
		{"fully inside", "2026-07-11", "2026-07-13", 1},
		{"fully around", "2026-07-08", "2026-07-16", 1},
		{"back-to-back after checkout", "2026-07-14", "2026-07-18", 0},
		{"back-to-back before checkin", "2026-07-06", "2026-07-10", 0},
		{"disjoint", "2026-08-01", "2026-08-05", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts, err := index.FindConflicts(context.Background(), "chalet-1", tt.start, tt.end, "")
			if err != nil {
				t.Fatalf("FindConflicts: %v", err)
			}
			if len(conflicts) != tt.conflicts {
				t.Errorf("got %d conflicts, want %d", len(conflicts), tt.conflicts)
			}
		})
	}
}

func TestFindConflictsIgnoresReleasedStatuses(t *testing.T) {
	repo := newFakeReservationRepo()
	seedStay(t, repo, "r1", "chalet-1", "2026-07-10", "2026-07-14", models.StatusCancelled)
	seedStay(t, repo, "r2", "chalet-1", "2026-07-10", "2026-07-14", models.StatusCheckedOut)
	seedStay(t, repo, "r3", "chalet-1", "2026-07-10", "2026-07-14", models.StatusNoShow)
	index := &AvailabilityIndex{Reservations: repo}

	conflicts, err := index.FindConflicts(context.Background(), "chalet-1", "2026-07-10", "2026-07-14", "")
	if err != nil {
		t.Fatalf("FindConflicts: %v", err)
	}
	// Only the no-show still blocks the calendar.
	if len(conflicts) != 1 || conflicts[0].ID != "r3" {
		t.Errorf("expected only the no-show to conflict, got %v", conflicts)
	}
}

func TestFindConflictsExcludesSelf(t *testing.T) {
	repo := newFakeReservationRepo()
	seedStay(t, repo, "r1", "chalet-1", "2026-07-10", "2026-07-14", models.StatusConfirmed)
	index := &AvailabilityIndex{Reservations: repo}

	conflicts, err := index.FindConflicts(context.Background(), "chalet-1", "2026-07-11", "2026-07-15", "r1")
	if err != nil {
		t.Fatalf("FindConflicts: %v", err)
	}
	if len(conflicts) != 0 {
		t.Errorf("reservation should not conflict with itself, got %v", conflicts)
	}
}

func TestFindConflictsIgnoresOtherResources(t *testing.T) {
	repo := newFakeReservationRepo()
	seedStay(t, repo, "r1", "chalet-2", "2026-07-10", "2026-07-14", models.StatusConfirmed)
	index := &AvailabilityIndex{Reservations: repo}

	conflicts, err := index.FindConflicts(context.Background(), "chalet-1", "2026-07-10", "2026-07-14", "")
	if err != nil {
		t.Fatalf("FindConflicts: %v", err)
	}
	if len(conflicts) != 0 {
		t.Errorf("other resource's stay must not conflict, got %v", conflicts)
	}
}

func TestFindConflictsRejectsInvalidRange(t *testing.T) {
	index := &AvailabilityIndex{Reservations: newFakeReservationRepo()}

	tests := []struct {
		name  string
		start models.Day
		end   models.Day
	}{
		{"equal bounds", "2026-07-10", "2026-07-10"},
		{"reversed bounds", "2026-07-14", "2026-07-10"},
		{"missing start", "", "2026-07-14"},
		{"missing end", "2026-07-10", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := index.FindConflicts(context.Background(), "chalet-1", tt.start, tt.end, "")
			if !IsCode(err, CodeInvalidRange) {
				t.Errorf("expected INVALID_RANGE, got %v", err)
			}
		})
	}
}
