package schedule

import (
	"context"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/maksim-leskin/api-chik-chik/models"
)

func TestRebuildIfStale_StalenessBoundary(t *testing.T) {
	now := time.Date(2025, 5, 28, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		lastRebuild time.Time
		wantRebuild bool
	}{
		{"24h1s old is stale", now.Add(-24*time.Hour - time.Second), true},
		{"23h59m old is fresh", now.Add(-23*time.Hour - 59*time.Minute), false},
		{"never rebuilt is stale", time.Time{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, schedules := newTestService(now,
				models.Specialist{ID: 1, WorkingDays: []int{3}},
			)
			schedules.lastRebuild = tc.lastRebuild

			if err := svc.RebuildIfStale(context.Background()); err != nil {
				t.Fatalf("RebuildIfStale failed: %v", err)
			}

			rebuilt := schedules.replaceCalls > 0
			if rebuilt != tc.wantRebuild {
				t.Fatalf("expected rebuild=%v, got %v", tc.wantRebuild, rebuilt)
			}
		})
	}
}

func TestRebuildIfStale_MarkerReadFailureSuppressesRebuild(t *testing.T) {
	now := time.Date(2025, 5, 28, 12, 0, 0, 0, time.UTC)
	svc, schedules := newTestService(now, models.Specialist{ID: 1, WorkingDays: []int{3}})
	schedules.markerErr = context.DeadlineExceeded

	if err := svc.RebuildIfStale(context.Background()); err != nil {
		t.Fatalf("a failed freshness check must not fail the cycle: %v", err)
	}
	if schedules.replaceCalls != 0 {
		t.Fatalf("expected no rebuild on marker failure, got %d", schedules.replaceCalls)
	}
}

func TestRebuildIfStale_SecondCallIsNoOp(t *testing.T) {
	now := time.Date(2025, 5, 28, 12, 0, 0, 0, time.UTC)
	svc, schedules := newTestService(now, models.Specialist{ID: 1, WorkingDays: []int{3}})

	if err := svc.RebuildIfStale(context.Background()); err != nil {
		t.Fatalf("first rebuild failed: %v", err)
	}
	snapshot := schedules.docs[1]

	if err := svc.RebuildIfStale(context.Background()); err != nil {
		t.Fatalf("second rebuild failed: %v", err)
	}
	if schedules.replaceCalls != 1 {
		t.Fatalf("expected a single rebuild, got %d", schedules.replaceCalls)
	}
	if !reflect.DeepEqual(snapshot, schedules.docs[1]) {
		t.Fatal("fresh cache content changed on the second call")
	}
}

func TestRebuildIfStale_ReplaceFailureKeepsOldSchedules(t *testing.T) {
	now := time.Date(2025, 5, 28, 12, 0, 0, 0, time.UTC)
	svc, schedules := newTestService(now, models.Specialist{ID: 1, WorkingDays: []int{3}})
	old := models.SpecialistSchedule{ID: 1, Work: models.WorkSchedule{"6": {"4": {"10:00-11:30"}}}}
	schedules.docs[1] = old
	schedules.replaceErr = context.DeadlineExceeded

	if err := svc.RebuildIfStale(context.Background()); err == nil {
		t.Fatal("expected the rebuild error to surface")
	}
	if !schedules.lastRebuild.IsZero() {
		t.Fatal("marker must not be touched after a failed replace")
	}
	if !reflect.DeepEqual(schedules.docs[1], old) {
		t.Fatal("previous schedule must remain authoritative after a failed rebuild")
	}
}

// TestRebuildIfStale_WednesdayRoundTrip validates the cache against a
// reference calendar: a Wednesdays-only specialist must get exactly the
// Wednesdays of each populated month as day keys.
func TestRebuildIfStale_WednesdayRoundTrip(t *testing.T) {
	now := time.Date(2025, 5, 28, 12, 0, 0, 0, time.UTC)
	svc, schedules := newTestService(now,
		models.Specialist{ID: 7, WorkingDays: []int{3}},
	)

	if err := svc.RebuildIfStale(context.Background()); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}

	months, err := svc.months(7)
	if err != nil {
		t.Fatalf("months lookup failed: %v", err)
	}
	// May 28 itself is a Wednesday inside the grace window, so May is populated.
	wantMonths := []int{5, 6, 7}
	if !reflect.DeepEqual(months, wantMonths) {
		t.Fatalf("expected months %v, got %v", wantMonths, months)
	}

	days, err := svc.monthDays(7, 6)
	if err != nil {
		t.Fatalf("days lookup failed: %v", err)
	}
	wantDays := []int{4, 11, 18, 25} // Wednesdays of June 2025
	if !reflect.DeepEqual(days, wantDays) {
		t.Fatalf("expected June Wednesdays %v, got %v", wantDays, days)
	}

	slots, err := svc.daySlots(7, 6, 4)
	if err != nil {
		t.Fatalf("slots lookup failed: %v", err)
	}
	if len(slots) < 3 || len(slots) > 5 {
		t.Fatalf("expected 3 to 5 slots, got %d", len(slots))
	}
	inCatalog := make(map[string]bool, len(DefaultSlotCatalog))
	for _, label := range DefaultSlotCatalog {
		inCatalog[label] = true
	}
	for _, label := range slots {
		if !inCatalog[label] {
			t.Fatalf("slot %q is not a catalog label", label)
		}
	}

	// Every populated day of every month must be a Wednesday.
	for monthKey, daysMap := range schedules.docs[7].Work {
		for dayKey := range daysMap {
			month := mustAtoi(t, monthKey)
			day := mustAtoi(t, dayKey)
			date := time.Date(2025, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			if date.Weekday() != time.Wednesday {
				t.Fatalf("cache contains non-Wednesday %s", date.Format("2006-01-02"))
			}
		}
	}
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	if err != nil {
		t.Fatalf("non-numeric key %q", s)
	}
	return n
}
