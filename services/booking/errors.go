package booking

import (
	"errors"
	"fmt"

	"resortly/models"
)

// RejectionCode identifies why a booking attempt was refused. Codes are
// stable and programmatic; callers never need to parse message text.
type RejectionCode string

const (
	CodeInvalidInput     RejectionCode = "INVALID_INPUT"
	CodeInvalidBasePrice RejectionCode = "INVALID_BASE_PRICE"
	CodeInvalidRange     RejectionCode = "INVALID_RANGE"
	CodeConflict         RejectionCode = "CONFLICT"
	CodeCapacityExceeded RejectionCode = "CAPACITY_EXCEEDED"
	CodeRuleAmbiguous    RejectionCode = "RULE_RESOLUTION_AMBIGUOUS"
	CodeStoreUnavailable RejectionCode = "STORE_UNAVAILABLE"
)

// Rejection is a typed business refusal. Conflicts is populated for
// CONFLICT so callers can show alternatives; Available is populated for
// CAPACITY_EXCEEDED so callers can suggest a smaller party.
type Rejection struct {
	Code      RejectionCode
	Message   string
	Conflicts []models.Reservation
	Available int
}

func (e *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func reject(code RejectionCode, format string, args ...any) *Rejection {
	return &Rejection{Code: code, Message: fmt.Sprintf(format, args...)}
}

// storeErr wraps a persistence failure so it surfaces as STORE_UNAVAILABLE
// while keeping the underlying error in the chain for logging.
func storeErr(err error) error {
	return fmt.Errorf("%s: %w", CodeStoreUnavailable, err)
}

// AsRejection extracts a typed rejection from an error chain.
func AsRejection(err error) (*Rejection, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

// IsCode reports whether err is a rejection with the given code.
func IsCode(err error, code RejectionCode) bool {
	rej, ok := AsRejection(err)
	return ok && rej.Code == code
}
