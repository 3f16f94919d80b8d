package models

import "time"

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
	StatusNoShow     ReservationStatus = "no_show"
)

// Terminal reports whether the status freezes the record: no further price
// or interval mutation is allowed past these states.
func (s ReservationStatus) Terminal() bool {
	switch s {
	case StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ConflictStatuses are the states that occupy an exclusive resource's
// interval. Cancelled and checked-out stays no longer block the calendar.
func ConflictStatuses() []ReservationStatus {
	return []ReservationStatus{StatusPending, StatusConfirmed, StatusCheckedIn, StatusNoShow}
}

// CapacityStatuses are the states that count against a shared session's
// capacity. A used ticket still occupies its originally reserved slot for
// the day, so checked-in stays counted.
func CapacityStatuses() []ReservationStatus {
	return []ReservationStatus{StatusPending, StatusConfirmed, StatusCheckedIn}
}

// reservationNext is the closed transition table for reservation statuses.
var reservationNext = map[ReservationStatus]map[ReservationStatus]bool{
	StatusPending:    {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed:  {StatusCheckedIn: true, StatusCancelled: true, StatusNoShow: true},
	StatusCheckedIn:  {StatusCheckedOut: true},
	StatusCheckedOut: {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

// CanTransition reports whether a status change is legal.
func CanTransition(from, to ReservationStatus) bool {
	return reservationNext[from][to]
}

// NightRate is the resolved price of one night of an exclusive stay.
type NightRate struct {
	Date  Day   `bson:"date" json:"date"`
	Price Cents `bson:"price" json:"price"`
}

// Reservation represents a sold unit of a resource. Exclusive stays carry
// CheckIn/CheckOut and the per-night rate breakdown; shared sales carry
// SessionDate and PartySize.
type Reservation struct {
	ID           string            `bson:"id" json:"id"`
	ResourceID   string            `bson:"resource_id" json:"resource_id"`
	ResourceType ResourceType      `bson:"resource_type" json:"resource_type"`
	GuestID      string            `bson:"guest_id" json:"guest_id"`
	GuestName    string            `bson:"guest_name,omitempty" json:"guest_name,omitempty"`

	CheckIn  Day         `bson:"check_in,omitempty" json:"check_in,omitempty"`
	CheckOut Day         `bson:"check_out,omitempty" json:"check_out,omitempty"`
	Nights   []NightRate `bson:"nights,omitempty" json:"nights,omitempty"`

	SessionDate Day `bson:"session_date,omitempty" json:"session_date,omitempty"`
	PartySize   int `bson:"party_size,omitempty" json:"party_size,omitempty"`

	Status     ReservationStatus `bson:"status" json:"status"`
	UnitPrice  Cents             `bson:"unit_price" json:"unit_price"` // snapshot at sale time
	TotalPrice Cents             `bson:"total_price" json:"total_price"`
	CreatedAt  time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time         `bson:"updated_at" json:"updated_at"`
}
