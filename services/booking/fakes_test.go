package booking

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	priceruleRepo "resortly/database/repository/pricerule"
	reservationRepo "resortly/database/repository/reservation"
	resourceRepo "resortly/database/repository/resource"
	"resortly/models"
)

// fakeReservationRepo is an in-memory ReservationRepository. All methods are
// mutex-guarded so concurrency tests exercise the same interleavings the
// database would see.
type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations map[string]*models.Reservation
	insertErr    error
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[string]*models.Reservation)}
}

func (f *fakeReservationRepo) Insert(_ context.Context, res *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	cp := *res
	f.reservations[res.ID] = &cp
	return nil
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id string) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrNotFound
	}
	cp := *res
	return &cp, nil
}

func matchesFilter(res *models.Reservation, filter reservationRepo.ListFilter) bool {
	if filter.ResourceID != "" && res.ResourceID != filter.ResourceID {
		return false
	}
	if filter.GuestID != "" && res.GuestID != filter.GuestID {
		return false
	}
	if filter.ExcludeID != "" && res.ID == filter.ExcludeID {
		return false
	}
	if !filter.SessionDate.IsZero() && res.SessionDate != filter.SessionDate {
		return false
	}
	if len(filter.Statuses) > 0 {
		found := false
		for _, s := range filter.Statuses {
			if res.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (f *fakeReservationRepo) List(_ context.Context, filter reservationRepo.ListFilter) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Reservation
	for _, res := range f.reservations {
		if matchesFilter(res, filter) {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id string, from, to models.ReservationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrNotFound
	}
	if res.Status != from {
		return reservationRepo.ErrStatusConflict
	}
	res.Status = to
	return nil
}

func (f *fakeReservationRepo) UpdateStay(_ context.Context, id string, checkIn, checkOut models.Day, nights []models.NightRate, total models.Cents) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrNotFound
	}
	res.CheckIn = checkIn
	res.CheckOut = checkOut
	res.Nights = nights
	res.TotalPrice = total
	return nil
}

func (f *fakeReservationRepo) SumPartySize(_ context.Context, sessionID string, date models.Day, statuses []models.ReservationStatus) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sum := 0
	for _, res := range f.reservations {
		if res.ResourceID != sessionID || res.SessionDate != date {
			continue
		}
		for _, s := range statuses {
			if res.Status == s {
				sum += res.PartySize
				break
			}
		}
	}
	return sum, nil
}

// fakeResourceRepo is an in-memory ResourceRepository. ClaimNights and
// ReserveCapacity hold the mutex across their check and their write, matching
// the atomicity the single-document conditional updates provide in
// production.
type fakeResourceRepo struct {
	mu          sync.Mutex
	chalets     map[string]*models.Chalet
	sessions    map[string]*models.SharedSession
	calendars   map[string]map[models.Day]bool
	sessionDays map[string]*models.SessionDay
}

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{
		chalets:     make(map[string]*models.Chalet),
		sessions:    make(map[string]*models.SharedSession),
		calendars:   make(map[string]map[models.Day]bool),
		sessionDays: make(map[string]*models.SessionDay),
	}
}

func sessionDayKey(sessionID string, date models.Day) string {
	return fmt.Sprintf("%s|%s", sessionID, date)
}

func (f *fakeResourceRepo) CreateChalet(_ context.Context, ch *models.Chalet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ch.ID == "" {
		ch.ID = uuid.NewString()
	}
	cp := *ch
	f.chalets[ch.ID] = &cp
	return nil
}

func (f *fakeResourceRepo) GetChalet(_ context.Context, id string) (*models.Chalet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch, ok := f.chalets[id]
	if !ok {
		return nil, resourceRepo.ErrNotFound
	}
	cp := *ch
	return &cp, nil
}

func (f *fakeResourceRepo) ListChalets(_ context.Context, activeOnly bool) ([]models.Chalet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Chalet
	for _, ch := range f.chalets {
		if !activeOnly || ch.Active {
			out = append(out, *ch)
		}
	}
	return out, nil
}

func (f *fakeResourceRepo) UpdateChalet(_ context.Context, ch *models.Chalet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.chalets[ch.ID]; !ok {
		return resourceRepo.ErrNotFound
	}
	cp := *ch
	f.chalets[ch.ID] = &cp
	return nil
}

func (f *fakeResourceRepo) CreateSession(_ context.Context, s *models.SharedSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	cp := *s
	f.sessions[s.ID] = &cp
	return nil
}

func (f *fakeResourceRepo) GetSession(_ context.Context, id string) (*models.SharedSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, resourceRepo.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeResourceRepo) ListSessions(_ context.Context, activeOnly bool) ([]models.SharedSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.SharedSession
	for _, s := range f.sessions {
		if !activeOnly || s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeResourceRepo) UpdateSession(_ context.Context, s *models.SharedSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[s.ID]; !ok {
		return resourceRepo.ErrNotFound
	}
	cp := *s
	f.sessions[s.ID] = &cp
	return nil
}

func (f *fakeResourceRepo) ClaimNights(_ context.Context, resourceID string, nights []models.Day) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cal := f.calendars[resourceID]
	if cal == nil {
		cal = make(map[models.Day]bool)
		f.calendars[resourceID] = cal
	}
	for _, n := range nights {
		if cal[n] {
			return resourceRepo.ErrNightsTaken
		}
	}
	for _, n := range nights {
		cal[n] = true
	}
	return nil
}

func (f *fakeResourceRepo) ReleaseNights(_ context.Context, resourceID string, nights []models.Day) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cal := f.calendars[resourceID]
	for _, n := range nights {
		delete(cal, n)
	}
	return nil
}

func (f *fakeResourceRepo) EnsureSessionDay(_ context.Context, sessionID string, date models.Day, maxCapacity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := sessionDayKey(sessionID, date)
	if _, ok := f.sessionDays[key]; !ok {
		f.sessionDays[key] = &models.SessionDay{
			SessionID:   sessionID,
			Date:        date,
			MaxCapacity: maxCapacity,
		}
	}
	return nil
}

func (f *fakeResourceRepo) GetSessionDay(_ context.Context, sessionID string, date models.Day) (*models.SessionDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	day, ok := f.sessionDays[sessionDayKey(sessionID, date)]
	if !ok {
		return nil, resourceRepo.ErrNotFound
	}
	cp := *day
	return &cp, nil
}

func (f *fakeResourceRepo) ReserveCapacity(_ context.Context, sessionID string, date models.Day, units int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	day, ok := f.sessionDays[sessionDayKey(sessionID, date)]
	if !ok {
		return resourceRepo.ErrNotFound
	}
	if day.SoldUnits+units > day.MaxCapacity {
		return resourceRepo.ErrCapacityExhausted
	}
	day.SoldUnits += units
	day.Version++
	return nil
}

func (f *fakeResourceRepo) ReleaseCapacity(_ context.Context, sessionID string, date models.Day, units int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	day, ok := f.sessionDays[sessionDayKey(sessionID, date)]
	if !ok {
		return resourceRepo.ErrNotFound
	}
	if day.SoldUnits < units {
		return fmt.Errorf("release of %d exceeds sold units %d", units, day.SoldUnits)
	}
	day.SoldUnits -= units
	day.Version++
	return nil
}

// nightsClaimed reports the occupied nights of a chalet, for assertions.
func (f *fakeResourceRepo) nightsClaimed(resourceID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calendars[resourceID])
}

// fakePriceRuleRepo serves a fixed rule set.
type fakePriceRuleRepo struct {
	rules   []models.PriceRule
	listErr error
}

func (f *fakePriceRuleRepo) Create(_ context.Context, rule *models.PriceRule) error {
	f.rules = append(f.rules, *rule)
	return nil
}

func (f *fakePriceRuleRepo) GetByID(_ context.Context, id string) (*models.PriceRule, error) {
	for i := range f.rules {
		if f.rules[i].ID == id {
			cp := f.rules[i]
			return &cp, nil
		}
	}
	return nil, priceruleRepo.ErrNotFound
}

func (f *fakePriceRuleRepo) ListActive(_ context.Context, resourceID string, rtype models.ResourceType, from, to models.Day) ([]models.PriceRule, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.PriceRule
	for _, r := range f.rules {
		if !r.Active {
			continue
		}
		if r.EndDate.Before(from) || to.Before(r.StartDate) {
			continue
		}
		if r.ResourceID != "" && r.ResourceID != resourceID {
			continue
		}
		if r.ResourceID == "" && r.ResourceType != rtype {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakePriceRuleRepo) List(_ context.Context) ([]models.PriceRule, error) {
	return append([]models.PriceRule(nil), f.rules...), nil
}

func (f *fakePriceRuleRepo) Update(_ context.Context, rule *models.PriceRule) error {
	for i := range f.rules {
		if f.rules[i].ID == rule.ID {
			f.rules[i] = *rule
			return nil
		}
	}
	return priceruleRepo.ErrNotFound
}

func (f *fakePriceRuleRepo) Deactivate(_ context.Context, id string) error {
	for i := range f.rules {
		if f.rules[i].ID == id {
			f.rules[i].Active = false
			return nil
		}
	}
	return priceruleRepo.ErrNotFound
}
