package schedule

import (
	"testing"
	"time"
)

// referenceWeekdays walks every day in [from, to] and collects those whose
// weekday is in the set, independently of the expander's month enumeration.
func referenceWeekdays(from, to time.Time, weekdays map[time.Weekday]bool) []SlotDate {
	var out []SlotDate
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if weekdays[d.Weekday()] {
			out = append(out, SlotDate{Year: d.Year(), Month: int(d.Month()), Day: d.Day()})
		}
	}
	return out
}

func TestWeekdayDates_OnlyRequestedWeekdaysWithinWindow(t *testing.T) {
	now := time.Date(2025, 5, 28, 12, 30, 0, 0, time.UTC) // a Wednesday
	anchor := time.Date(2025, 5, 27, 0, 0, 0, 0, time.UTC)

	dates := WeekdayDates(now, 3, []int{3})
	if len(dates) == 0 {
		t.Fatal("expected at least one date")
	}

	var prev time.Time
	for _, d := range dates {
		day := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
		if day.Weekday() != time.Wednesday {
			t.Fatalf("expected only Wednesdays, got %s (%s)", day.Format("2006-01-02"), day.Weekday())
		}
		if !day.After(anchor) {
			t.Fatalf("date %s is not after the anchor %s", day.Format("2006-01-02"), anchor.Format("2006-01-02"))
		}
		if !day.After(prev) {
			t.Fatalf("dates are not strictly chronological around %s", day.Format("2006-01-02"))
		}
		prev = day
	}

	// The last enumerated month is July; nothing beyond it may appear.
	last := dates[len(dates)-1]
	if last.Year != 2025 || last.Month > 7 {
		t.Fatalf("expected final date within July 2025, got %+v", last)
	}
}

func TestWeekdayDates_GraceWindowIncludesToday(t *testing.T) {
	now := time.Date(2025, 5, 28, 18, 0, 0, 0, time.UTC) // a Wednesday evening

	dates := WeekdayDates(now, 3, []int{3})
	first := dates[0]
	if first.Year != 2025 || first.Month != 5 || first.Day != 28 {
		t.Fatalf("expected today (2025-05-28) to be included, got %+v", first)
	}
}

func TestWeekdayDates_MatchesReferenceCalendar(t *testing.T) {
	now := time.Date(2025, 5, 29, 9, 0, 0, 0, time.UTC)
	dates := WeekdayDates(now, 3, []int{3})

	// Reference: every Wednesday strictly after the anchor, up to the end of
	// the third enumerated month (July 2025).
	from := time.Date(2025, 5, 29, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
	want := referenceWeekdays(from, to, map[time.Weekday]bool{time.Wednesday: true})

	if len(dates) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(dates))
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("date %d: expected %+v, got %+v", i, want[i], dates[i])
		}
	}
}

func TestWeekdayDates_YearRollover(t *testing.T) {
	now := time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC)
	dates := WeekdayDates(now, 3, []int{1}) // Mondays across Nov, Dec, Jan

	last := dates[len(dates)-1]
	if last.Year != 2026 || last.Month != 1 {
		t.Fatalf("expected final dates in January 2026, got %+v", last)
	}
	// 2026-01-26 is the last Monday of January 2026.
	if last.Day != 26 {
		t.Fatalf("expected last Monday of January 2026 (26th), got day %d", last.Day)
	}
}

func TestWeekdayDates_LeapYearFebruary(t *testing.T) {
	now := time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC)
	dates := WeekdayDates(now, 1, []int{4}) // Thursdays of February 2024

	found := false
	for _, d := range dates {
		if d.Year == 2024 && d.Month == 2 && d.Day == 29 {
			found = true
		}
	}
	// 2024-02-29 was a Thursday; a non-leap month length would drop it.
	if !found {
		t.Fatal("expected leap day 2024-02-29 in the expansion")
	}
}

func TestWeekdayDates_NoDuplicates(t *testing.T) {
	now := time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)
	dates := WeekdayDates(now, 3, []int{0, 1, 2, 3, 4, 5, 6})

	seen := make(map[SlotDate]bool, len(dates))
	for _, d := range dates {
		if seen[d] {
			t.Fatalf("duplicate date %+v", d)
		}
		seen[d] = true
	}
}
