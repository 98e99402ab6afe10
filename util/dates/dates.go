// Package dates holds the date-range rules shared by the booking engine and
// the calendar/stats queries. The conventions are deliberate and must not
// drift apart:
//
//   - Overlaps and calendar containment are inclusive on both ends, so a
//     reservation ending the day another starts still conflicts (no same-day
//     turnover).
//   - Nights uses the half-open [start, end) convention: a May 1 - May 3 stay
//     is 2 nights but covers 3 calendar days.
package dates

import "time"

// Day truncates t to midnight UTC. All range comparisons operate on
// normalized days; time-of-day never participates.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether [startA, endA] and [startB, endB] share at least
// one calendar day. Both ranges are inclusive on both ends.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	startA, endA = Day(startA), Day(endA)
	startB, endB = Day(startB), Day(endB)
	return !startA.After(endB) && !startB.After(endA)
}

// Covers reports whether day d falls inside [start, end], inclusive.
func Covers(d, start, end time.Time) bool {
	d, start, end = Day(d), Day(start), Day(end)
	return !d.Before(start) && !d.After(end)
}

// Nights counts the nights between start and end, i.e. end - start in days.
func Nights(start, end time.Time) int {
	return int(Day(end).Sub(Day(start)).Hours() / 24)
}

// SpanDays counts the calendar days covered by [start, end] inclusive.
func SpanDays(start, end time.Time) int {
	return Nights(start, end) + 1
}

// EachDay calls fn for every calendar day of [start, end] inclusive.
func EachDay(start, end time.Time, fn func(day time.Time)) {
	last := Day(end)
	for d := Day(start); !d.After(last); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// DaysInYear returns 366 for leap years, 365 otherwise.
func DaysInYear(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}
