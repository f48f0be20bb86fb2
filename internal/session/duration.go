package session

import (
	"math"
	"time"
)

// Policy holds the wall-clock rules applied to work sessions: the unpaid
// lunch window and the daily cutoff, both local-time hours on the session's
// start day.
type Policy struct {
	LunchStartHour int
	LunchEndHour   int
	CutoffHour     int
}

// DefaultPolicy returns the standard business policy: lunch 12:00-13:00,
// forced stop at 17:00.
func DefaultPolicy() Policy {
	return Policy{
		LunchStartHour: 12,
		LunchEndHour:   13,
		CutoffHour:     17,
	}
}

// CutoffTime returns the automatic cutoff instant for a session started at start.
func (p Policy) CutoffTime(start time.Time) time.Time {
	return time.Date(start.Year(), start.Month(), start.Day(), p.CutoffHour, 0, 0, 0, start.Location())
}

// SubtractLunch applies the lunch-deduction rule to a continuous interval.
// It returns the adjusted minutes and whether a deduction was applied.
//
// The rule only fires when start and end fall on the same calendar day; an
// overnight span keeps its gross minutes. Any overlap with the lunch window,
// however small, deducts the full overlap.
func (p Policy) SubtractLunch(start, end time.Time) (int, bool) {
	if !end.After(start) {
		return 0, false
	}

	gross := roundMinutes(end.Sub(start))
	if !sameCalendarDay(start, end) {
		return gross, false
	}

	lunchStart := time.Date(start.Year(), start.Month(), start.Day(), p.LunchStartHour, 0, 0, 0, start.Location())
	lunchEnd := time.Date(start.Year(), start.Month(), start.Day(), p.LunchEndHour, 0, 0, 0, start.Location())

	overlapStart := maxTime(start, lunchStart)
	overlapEnd := minTime(end, lunchEnd)

	overlap := overlapEnd.Sub(overlapStart)
	if overlap < 0 {
		overlap = 0
	}

	overlapMinutes := roundMinutes(overlap)
	if overlapMinutes > 0 {
		adjusted := gross - overlapMinutes
		if adjusted < 0 {
			adjusted = 0
		}
		return adjusted, true
	}
	return gross, false
}

// Billable converts a raw session interval plus accumulated pause time into
// final billable minutes: lunch-adjusted minutes minus paused minutes,
// floored at zero.
func (p Policy) Billable(start, end time.Time, paused time.Duration) (int, bool) {
	lunchAdjusted, lunchDeducted := p.SubtractLunch(start, end)

	if paused < 0 {
		paused = 0
	}
	pausedMinutes := roundMinutes(paused)

	minutes := lunchAdjusted - pausedMinutes
	if minutes < 0 {
		minutes = 0
	}
	return minutes, lunchDeducted
}

// roundMinutes rounds a duration to the nearest whole minute.
func roundMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}

func sameCalendarDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
