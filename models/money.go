package models

import (
	"fmt"
	"math"
)

// Cents is a monetary amount in hundredths of the display currency. All
// pricing arithmetic happens on whole cents so that summing many nights
// never accumulates floating point drift.
type Cents int64

// MulRound applies a rate multiplier and rounds half-up to the nearest cent.
// The multiplier is snapped to basis points before multiplying so that a
// product landing on an exact half cent rounds up even when the float
// product sits a hair below it.
func (c Cents) MulRound(multiplier float64) Cents {
	bps := int64(math.Round(multiplier * 10000))
	p := int64(c) * bps
	q := p / 10000
	r := p % 10000
	if r >= 5000 {
		q++
	} else if r <= -5000 {
		q--
	}
	return Cents(q)
}

// String renders the amount with two fraction digits, e.g. "150.00".
func (c Cents) String() string {
	sign := ""
	v := c
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
