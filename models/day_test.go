package models

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2026-07-10")
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if day != "2026-07-10" {
		t.Errorf("got %s", day)
	}

	for _, bad := range []string{"", "2026-7-10", "10/07/2026", "2026-13-01", "2026-02-30"} {
		if _, err := ParseDay(bad); err == nil {
			t.Errorf("ParseDay(%q) should fail", bad)
		}
	}
}

func TestDayOrderingAndArithmetic(t *testing.T) {
	a := Day("2026-07-10")
	if !a.Before("2026-07-11") || a.Before("2026-07-10") {
		t.Error("Before is broken")
	}
	if a.AddDays(1) != "2026-07-11" {
		t.Errorf("AddDays(1): got %s", a.AddDays(1))
	}
	if a.AddDays(-10) != "2026-06-30" {
		t.Errorf("AddDays(-10): got %s", a.AddDays(-10))
	}
	// Month and year rollover.
	if Day("2026-12-31").AddDays(1) != "2027-01-01" {
		t.Error("year rollover failed")
	}
	if a.Weekday() != time.Friday {
		t.Errorf("2026-07-10 is a Friday, got %s", a.Weekday())
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name  string
		start Day
		end   Day
		want  int
	}{
		{"three nights", "2026-07-10", "2026-07-13", 3},
		{"one night", "2026-07-10", "2026-07-11", 1},
		{"empty range", "2026-07-10", "2026-07-10", 0},
		{"reversed range", "2026-07-13", "2026-07-10", 0},
		{"zero start", "", "2026-07-10", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nights := Nights(tt.start, tt.end)
			if len(nights) != tt.want {
				t.Errorf("got %d nights, want %d", len(nights), tt.want)
			}
		})
	}

	nights := Nights("2026-07-10", "2026-07-13")
	want := []Day{"2026-07-10", "2026-07-11", "2026-07-12"}
	for i, w := range want {
		if nights[i] != w {
			t.Errorf("night %d: got %s, want %s", i, nights[i], w)
		}
	}
}

func TestDaysOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd Day
		want                       bool
	}{
		{"identical", "2026-07-10", "2026-07-13", "2026-07-10", "2026-07-13", true},
		{"partial tail", "2026-07-10", "2026-07-13", "2026-07-12", "2026-07-15", true},
		{"contained", "2026-07-10", "2026-07-15", "2026-07-11", "2026-07-12", true},
		{"back-to-back", "2026-07-10", "2026-07-13", "2026-07-13", "2026-07-15", false},
		{"back-to-back reversed", "2026-07-13", "2026-07-15", "2026-07-10", "2026-07-13", false},
		{"disjoint", "2026-07-10", "2026-07-13", "2026-08-01", "2026-08-03", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
