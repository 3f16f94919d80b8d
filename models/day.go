package models

import (
	"fmt"
	"time"
)

// DayLayout is the storage format for calendar days ("YYYY-MM-DD").
const DayLayout = "2006-01-02"

// Day is a calendar day at date granularity. Chalet stays occupy whole
// nights, so time-of-day never participates in comparisons. The ISO format
// makes lexicographic order equal to chronological order.
type Day string

// ParseDay validates and normalizes a "YYYY-MM-DD" string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid day %q: %w", s, err)
	}
	return Day(t.Format(DayLayout)), nil
}

// DayOf truncates a timestamp to its calendar day in UTC.
func DayOf(t time.Time) Day {
	return Day(t.UTC().Format(DayLayout))
}

// Time returns the midnight UTC instant of the day.
func (d Day) Time() time.Time {
	t, _ := time.Parse(DayLayout, string(d))
	return t
}

func (d Day) IsZero() bool { return d == "" }

func (d Day) Before(other Day) bool { return d < other }

func (d Day) After(other Day) bool { return d > other }

// AddDays returns the day shifted by n calendar days.
func (d Day) AddDays(n int) Day {
	return Day(d.Time().AddDate(0, 0, n).Format(DayLayout))
}

// Weekday reports the day of the week.
func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Nights enumerates the nights of a half-open stay [start, end): every day
// from start inclusive to end exclusive. Returns nil when end <= start.
func Nights(start, end Day) []Day {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return nil
	}
	var nights []Day
	for d := start; d.Before(end); d = d.AddDays(1) {
		nights = append(nights, d)
	}
	return nights
}

// DaysOverlap applies the half-open interval test: [a,b) and [c,d) overlap
// iff a < d && c < b. Back-to-back stays sharing a boundary day do not
// overlap, which is what allows same-day turnover.
func DaysOverlap(aStart, aEnd, bStart, bEnd Day) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
