package models

// BookingMeta carries the caller-supplied context attached to a commit.
type BookingMeta struct {
	GuestID   string `json:"guest_id"`
	GuestName string `json:"guest_name,omitempty"`
}

// ExclusiveQuote is the answer to "can I book this chalet for these dates,
// and what would it cost". Quoting has no side effects; the price is only
// binding once a commit succeeds.
type ExclusiveQuote struct {
	ResourceID string        `json:"resource_id"`
	CheckIn    Day           `json:"check_in"`
	CheckOut   Day           `json:"check_out"`
	Feasible   bool          `json:"feasible"`
	Conflicts  []Reservation `json:"conflicts,omitempty"`
	Nights     []NightRate   `json:"nights,omitempty"`
	TotalPrice Cents         `json:"total_price"`
}

// SharedQuote is the advisory answer for a shared-session purchase.
type SharedQuote struct {
	SessionID  string `json:"session_id"`
	Date       Day    `json:"date"`
	PartySize  int    `json:"party_size"`
	Available  int    `json:"available"`
	UnitPrice  Cents  `json:"unit_price"`
	TotalPrice Cents  `json:"total_price"`
}
