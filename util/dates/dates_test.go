package dates

import (
	"testing"
	"time"
)

func d(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		startA, endA, startB, endB string
		want                       bool
	}{
		{"disjoint", "2025-07-01", "2025-07-05", "2025-07-10", "2025-07-12", false},
		{"contained", "2025-07-01", "2025-07-10", "2025-07-03", "2025-07-05", true},
		{"partial", "2025-07-01", "2025-07-05", "2025-07-04", "2025-07-08", true},
		// End touching start counts: no same-day turnover.
		{"touching end-to-start", "2025-07-01", "2025-07-05", "2025-07-05", "2025-07-09", true},
		{"touching start-to-end", "2025-07-05", "2025-07-09", "2025-07-01", "2025-07-05", true},
		{"adjacent days", "2025-07-01", "2025-07-04", "2025-07-05", "2025-07-08", false},
		{"same range", "2025-07-01", "2025-07-05", "2025-07-01", "2025-07-05", true},
		{"single day equal", "2025-07-01", "2025-07-01", "2025-07-01", "2025-07-01", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(d(tc.startA), d(tc.endA), d(tc.startB), d(tc.endB))
			if got != tc.want {
				t.Fatalf("Overlaps(%s..%s, %s..%s) = %v, want %v",
					tc.startA, tc.endA, tc.startB, tc.endB, got, tc.want)
			}
		})
	}
}

func TestOverlapsIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2025, 7, 5, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 7, 5, 0, 1, 0, 0, time.UTC)
	if !Overlaps(a, a, b, b) {
		t.Fatal("same calendar day with different times must overlap")
	}
}

func TestNightsVsSpanDays(t *testing.T) {
	// A stay from May 1 to May 3 is 2 nights but touches 3 calendar days.
	start, end := d("2025-05-01"), d("2025-05-03")
	if got := Nights(start, end); got != 2 {
		t.Fatalf("Nights = %d, want 2", got)
	}
	if got := SpanDays(start, end); got != 3 {
		t.Fatalf("SpanDays = %d, want 3", got)
	}
}

func TestEachDay(t *testing.T) {
	var days []string
	EachDay(d("2025-12-30"), d("2026-01-02"), func(day time.Time) {
		days = append(days, day.Format("2006-01-02"))
	})
	want := []string{"2025-12-30", "2025-12-31", "2026-01-01", "2026-01-02"}
	if len(days) != len(want) {
		t.Fatalf("got %d days, want %d", len(days), len(want))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("day[%d] = %s, want %s", i, days[i], want[i])
		}
	}
}

func TestDaysInYear(t *testing.T) {
	for year, want := range map[int]int{2024: 366, 2025: 365, 2000: 366, 1900: 365} {
		if got := DaysInYear(year); got != want {
			t.Fatalf("DaysInYear(%d) = %d, want %d", year, got, want)
		}
	}
}

func TestCovers(t *testing.T) {
	start, end := d("2025-07-01"), d("2025-07-05")
	for _, day := range []string{"2025-07-01", "2025-07-03", "2025-07-05"} {
		if !Covers(d(day), start, end) {
			t.Fatalf("Covers(%s) = false, want true", day)
		}
	}
	for _, day := range []string{"2025-06-30", "2025-07-06"} {
		if Covers(d(day), start, end) {
			t.Fatalf("Covers(%s) = true, want false", day)
		}
	}
}
