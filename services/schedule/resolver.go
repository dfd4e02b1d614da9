package schedule

import (
	"context"
	"fmt"
)

// Query carries the availability query parameters after numeric coercion.
// A nil field means the parameter was absent from the request.
type Query struct {
	Service *int
	Spec    *int
	Month   *int
	Day     *int
}

// queryShape is the closed set of supported parameter combinations.
type queryShape int

const (
	shapeCatalog queryShape = iota
	shapeByService
	shapeDaySlots
	shapeMonthDays
	shapeMonths
	shapeInvalid
)

// shape classifies the query; precedence follows the documented contract,
// first match wins.
func (q Query) shape() queryShape {
	switch {
	case q.Service == nil && q.Spec == nil && q.Month == nil && q.Day == nil:
		return shapeCatalog
	case q.Service != nil:
		return shapeByService
	case q.Spec != nil && q.Month != nil && q.Day != nil:
		return shapeDaySlots
	case q.Spec != nil && q.Month != nil:
		return shapeMonthDays
	case q.Spec != nil:
		return shapeMonths
	default:
		return shapeInvalid
	}
}

// cacheKey is stable per query shape and parameter values. Empty for
// invalid shapes, which are never cached.
func (q Query) cacheKey() string {
	switch q.shape() {
	case shapeCatalog:
		return "catalog"
	case shapeByService:
		return fmt.Sprintf("service:%d", *q.Service)
	case shapeDaySlots:
		return fmt.Sprintf("spec:%d:month:%d:day:%d", *q.Spec, *q.Month, *q.Day)
	case shapeMonthDays:
		return fmt.Sprintf("spec:%d:month:%d", *q.Spec, *q.Month)
	case shapeMonths:
		return fmt.Sprintf("spec:%d", *q.Spec)
	default:
		return ""
	}
}

// Resolve evaluates an availability query against the specialist catalog
// and the precomputed schedules, returning the JSON-serializable projection
// for the query's shape:
//
//	(no params)            -> full specialist catalog
//	service                -> {id, img, name} of matching specialists
//	spec + month + day     -> slot labels for that day
//	spec + month           -> bookable day numbers for that month
//	spec                   -> bookable month numbers
//
// Any other combination is rejected with a bad-input error.
func (s *DefaultScheduleService) Resolve(ctx context.Context, q Query) (any, error) {
	key := q.cacheKey()
	if s.Cache != nil && key != "" {
		if raw, ok := s.Cache.Get(ctx, key); ok {
			return raw, nil
		}
	}

	var result any
	var err error
	switch q.shape() {
	case shapeCatalog:
		result, err = s.listCatalog()
	case shapeByService:
		result, err = s.listByService(*q.Service)
	case shapeDaySlots:
		result, err = s.daySlots(*q.Spec, *q.Month, *q.Day)
	case shapeMonthDays:
		result, err = s.monthDays(*q.Spec, *q.Month)
	case shapeMonths:
		result, err = s.months(*q.Spec)
	default:
		return nil, NewBadInputError("unsupported parameter combination")
	}
	if err != nil {
		return nil, err
	}

	if s.Cache != nil && key != "" {
		s.Cache.Set(ctx, key, result)
	}
	return result, nil
}
