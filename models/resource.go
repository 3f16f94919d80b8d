package models

import "time"

// ResourceType distinguishes the two bookable variants.
type ResourceType string

const (
	// ResourceExclusive is a unit that serves at most one reservation per
	// overlapping interval (a chalet).
	ResourceExclusive ResourceType = "exclusive"
	// ResourceShared is a session with finite concurrent capacity shared by
	// many reservations (a pool slot, a dining seating).
	ResourceShared ResourceType = "shared"
)

// Chalet is an exclusive-use unit booked by night.
type Chalet struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Sleeps      int       `bson:"sleeps" json:"sleeps"`
	BaseRate    Cents     `bson:"base_rate" json:"base_rate"`       // nightly rate Sun–Thu
	WeekendRate Cents     `bson:"weekend_rate" json:"weekend_rate"` // nightly rate Fri–Sat; 0 means same as base
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// NightlyBase returns the rack rate for one night before any price rules
// apply. Weekend nights (Friday and Saturday) use the weekend rate when one
// is configured; day-of-week pricing beyond that is expressed as ordinary
// recurring price rules by the admin tooling, not special-cased here.
func (ch *Chalet) NightlyBase(night Day) Cents {
	wd := night.Weekday()
	if ch.WeekendRate > 0 && (wd == time.Friday || wd == time.Saturday) {
		return ch.WeekendRate
	}
	return ch.BaseRate
}

// SharedSession is a capacity-bounded session template, instantiated per
// calendar day at sale time.
type SharedSession struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	StartMinute int       `bson:"start_minute" json:"start_minute"` // minutes from midnight
	EndMinute   int       `bson:"end_minute" json:"end_minute"`
	MaxCapacity int       `bson:"max_capacity" json:"max_capacity"`
	UnitPrice   Cents     `bson:"unit_price" json:"unit_price"` // per head, before price rules
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// SessionDay is the per-date sale ledger for a shared session. SoldUnits is
// the denormalized commit-time guard; the reservation collection remains the
// source of truth and snapshots are recomputed from it.
type SessionDay struct {
	SessionID   string `bson:"session_id" json:"session_id"`
	Date        Day    `bson:"date" json:"date"`
	MaxCapacity int    `bson:"max_capacity" json:"max_capacity"`
	SoldUnits   int    `bson:"sold_units" json:"sold_units"`
	Version     int    `bson:"version" json:"version"`
}

// ChaletCalendar holds the set of occupied nights for one chalet. Claiming
// nights is a single conditional update, which is what makes the exclusive
// commit path atomic with respect to concurrent purchasers.
type ChaletCalendar struct {
	ResourceID string `bson:"resource_id" json:"resource_id"`
	Nights     []Day  `bson:"nights" json:"nights"`
}
