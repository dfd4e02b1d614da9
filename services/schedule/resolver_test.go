package schedule

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/maksim-leskin/api-chik-chik/models"
)

// memoryCache is an in-process ScheduleCache for tests.
type memoryCache struct {
	entries map[string]json.RawMessage
	sets    int
	hits    int
	flushes int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]json.RawMessage{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	raw, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return raw, ok
}

func (c *memoryCache) Set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.entries[key] = data
	c.sets++
}

func (c *memoryCache) Flush(ctx context.Context) error {
	c.entries = map[string]json.RawMessage{}
	c.flushes++
	return nil
}

func TestQueryShapePrecedence(t *testing.T) {
	cases := []struct {
		name string
		q    Query
		want queryShape
	}{
		{"empty", Query{}, shapeCatalog},
		{"service only", Query{Service: intPtr(2)}, shapeByService},
		{"service beats spec", Query{Service: intPtr(2), Spec: intPtr(7)}, shapeByService},
		{"full triple", Query{Spec: intPtr(7), Month: intPtr(6), Day: intPtr(4)}, shapeDaySlots},
		{"spec and month", Query{Spec: intPtr(7), Month: intPtr(6)}, shapeMonthDays},
		{"spec only", Query{Spec: intPtr(7)}, shapeMonths},
		{"month without spec", Query{Month: intPtr(6)}, shapeInvalid},
		{"day without month", Query{Spec: intPtr(7), Day: intPtr(4)}, shapeMonths},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.q.shape(); got != tc.want {
				t.Fatalf("expected shape %d, got %d", tc.want, got)
			}
		})
	}
}

func TestResolve_CachesAndFlushesOnRebuild(t *testing.T) {
	now := time.Date(2025, 5, 28, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now, models.Specialist{ID: 7, WorkingDays: []int{3}})
	cache := newMemoryCache()
	svc.Cache = cache

	if err := svc.RebuildIfStale(context.Background()); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if cache.flushes != 1 {
		t.Fatalf("expected one flush after rebuild, got %d", cache.flushes)
	}

	q := Query{Spec: intPtr(7)}
	first, err := svc.Resolve(context.Background(), q)
	if err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected the miss to populate the cache, got %d sets", cache.sets)
	}

	second, err := svc.Resolve(context.Background(), q)
	if err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected a cache hit on the second resolve, got %d", cache.hits)
	}

	// The cached raw JSON must decode to the same month list.
	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	if string(firstJSON) != string(secondJSON) {
		t.Fatalf("cached response diverged: %s vs %s", firstJSON, secondJSON)
	}
}

func TestResolve_ErrorsAreNotCached(t *testing.T) {
	now := time.Date(2025, 5, 28, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	cache := newMemoryCache()
	svc.Cache = cache

	if _, err := svc.Resolve(context.Background(), Query{Spec: intPtr(999)}); !IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if cache.sets != 0 {
		t.Fatalf("expected no cache writes for a failed lookup, got %d", cache.sets)
	}
}
