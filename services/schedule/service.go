package schedule

import (
	"context"
	"math/rand"
	"sort"
	"strconv"
	"time"

	scheduleRepo "github.com/maksim-leskin/api-chik-chik/database/repository/schedule"
	specialistRepo "github.com/maksim-leskin/api-chik-chik/database/repository/specialist"
	"github.com/maksim-leskin/api-chik-chik/models"
)

// ScheduleService resolves availability queries and keeps the precomputed
// schedule set fresh.
type ScheduleService interface {
	Resolve(ctx context.Context, q Query) (any, error)
	RebuildIfStale(ctx context.Context) error
}

// DefaultScheduleService is the concrete implementation backed by the
// specialist catalog and the schedule storage.
type DefaultScheduleService struct {
	Specialists specialistRepo.SpecialistRepository
	Schedules   scheduleRepo.ScheduleRepository
	Cache       ScheduleCache // optional; nil disables response caching

	Catalog     []string      // defaults to DefaultSlotCatalog
	MonthsAhead int           // defaults to 3
	StaleAfter  time.Duration // defaults to 24h
	Now         func() time.Time
	Rng         *rand.Rand
}

func (s *DefaultScheduleService) catalog() []string {
	if len(s.Catalog) > 0 {
		return s.Catalog
	}
	return DefaultSlotCatalog
}

func (s *DefaultScheduleService) monthsAhead() int {
	if s.MonthsAhead > 0 {
		return s.MonthsAhead
	}
	return 3
}

func (s *DefaultScheduleService) staleAfter() time.Duration {
	if s.StaleAfter > 0 {
		return s.StaleAfter
	}
	return 24 * time.Hour
}

func (s *DefaultScheduleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultScheduleService) rng() *rand.Rand {
	if s.Rng == nil {
		s.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s.Rng
}

// listCatalog returns the full specialist catalog unchanged.
func (s *DefaultScheduleService) listCatalog() ([]models.Specialist, error) {
	return s.Specialists.GetAll()
}

// listByService returns the {id, img, name} projection of every specialist
// offering the given service.
func (s *DefaultScheduleService) listByService(serviceID int) ([]models.SpecialistSummary, error) {
	specialists, err := s.Specialists.GetByService(serviceID)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.SpecialistSummary, 0, len(specialists))
	for _, sp := range specialists {
		summaries = append(summaries, models.SpecialistSummary{ID: sp.ID, Img: sp.Img, Name: sp.Name})
	}
	return summaries, nil
}

// workFor fetches the schedule document for one specialist.
func (s *DefaultScheduleService) workFor(specID int) (models.WorkSchedule, error) {
	sched, err := s.Schedules.GetBySpecialist(specID)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, NewNotFoundError("no schedule for specialist %d", specID)
	}
	return sched.Work, nil
}

// months returns the months (numerically sorted) in which the specialist
// has any bookable day.
func (s *DefaultScheduleService) months(specID int) ([]int, error) {
	work, err := s.workFor(specID)
	if err != nil {
		return nil, err
	}
	return sortedNumericKeys(work), nil
}

// monthDays returns the bookable day numbers (numerically sorted) for one
// specialist and month.
func (s *DefaultScheduleService) monthDays(specID, month int) ([]int, error) {
	work, err := s.workFor(specID)
	if err != nil {
		return nil, err
	}
	days, ok := work[strconv.Itoa(month)]
	if !ok {
		return nil, NewNotFoundError("specialist %d has no schedule for month %d", specID, month)
	}
	return sortedNumericKeys(days), nil
}

// daySlots returns the sampled slot labels for one specialist, month and day.
func (s *DefaultScheduleService) daySlots(specID, month, day int) (models.DaySlots, error) {
	work, err := s.workFor(specID)
	if err != nil {
		return nil, err
	}
	days, ok := work[strconv.Itoa(month)]
	if !ok {
		return nil, NewNotFoundError("specialist %d has no schedule for month %d", specID, month)
	}
	slots, ok := days[strconv.Itoa(day)]
	if !ok {
		return nil, NewNotFoundError("specialist %d has no slots on %d/%d", specID, month, day)
	}
	return slots, nil
}

// sortedNumericKeys returns a map's decimal string keys as sorted integers.
// Persisted schedule keys are always numeric.
func sortedNumericKeys[V any](m map[string]V) []int {
	out := make([]int, 0, len(m))
	for key := range m {
		if n, err := strconv.Atoi(key); err == nil {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}
