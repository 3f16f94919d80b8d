package models

// CapacitySnapshot is the derived sale state of a shared session on one
// date. It is computed on demand from reservation rows and may be served
// from a short-lived cache for display; it never enforces anything.
type CapacitySnapshot struct {
	SessionID string `json:"session_id"`
	Date      Day    `json:"date"`
	Sold      int    `json:"sold"`      // sum of party sizes still holding a slot
	Admitted  int    `json:"admitted"`  // subset of sold that has checked in
	Available int    `json:"available"` // max capacity minus sold
}
