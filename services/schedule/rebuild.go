package schedule

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/maksim-leskin/api-chik-chik/models"
	"github.com/maksim-leskin/api-chik-chik/utils"

	"go.uber.org/zap"
)

// RebuildIfStale recomputes every specialist's schedule when the freshness
// marker is older than StaleAfter, then replaces the stored schedule set and
// touches the marker. While the cache is fresh this is a no-op, so calling
// it twice in a row performs at most one rebuild.
//
// A failed freshness check suppresses the rebuild (logged, never fatal); a
// failed rebuild leaves the previous schedule set authoritative.
func (s *DefaultScheduleService) RebuildIfStale(ctx context.Context) error {
	logger := utils.GetLogger()
	if !s.isStale() {
		return nil
	}
	logger.Info("Schedule cache is stale, rebuilding")

	specialists, err := s.Specialists.GetAll()
	if err != nil {
		return fmt.Errorf("schedule rebuild: failed to load specialists: %w", err)
	}

	now := s.now()
	schedules := make([]models.SpecialistSchedule, 0, len(specialists))
	for _, sp := range specialists {
		schedules = append(schedules, models.SpecialistSchedule{
			ID:   sp.ID,
			Work: s.buildWork(now, sp.WorkingDays),
		})
	}

	if err := s.Schedules.ReplaceAll(schedules); err != nil {
		return fmt.Errorf("schedule rebuild: %w", err)
	}
	if err := s.Schedules.TouchRebuildMarker(); err != nil {
		return fmt.Errorf("schedule rebuild: %w", err)
	}

	if s.Cache != nil {
		if err := s.Cache.Flush(ctx); err != nil {
			logger.Warn("Failed to flush schedule response cache", zap.Error(err))
		}
	}

	logger.Info("Schedule cache rebuilt", zap.Int("specialists", len(schedules)))
	return nil
}

// buildWork assembles the month -> day -> slots structure for one weekly
// working pattern.
func (s *DefaultScheduleService) buildWork(now time.Time, workingDays []int) models.WorkSchedule {
	work := models.WorkSchedule{}
	for _, date := range WeekdayDates(now, s.monthsAhead(), workingDays) {
		monthKey := strconv.Itoa(date.Month)
		if work[monthKey] == nil {
			work[monthKey] = models.MonthSchedule{}
		}
		work[monthKey][strconv.Itoa(date.Day)] = SampleSlots(s.rng(), s.catalog())
	}
	return work
}

// isStale compares the freshness marker against StaleAfter. A marker that
// has never been written counts as stale so the first boot builds the
// schedule set; a marker that cannot be read suppresses the rebuild and is
// only logged, keeping a storage hiccup from turning into a crash loop.
func (s *DefaultScheduleService) isStale() bool {
	last, err := s.Schedules.LastRebuildAt()
	if err != nil {
		utils.GetLogger().Error("Schedule freshness check failed, skipping rebuild", zap.Error(err))
		return false
	}
	if last.IsZero() {
		return true
	}
	return s.now().Sub(last) > s.staleAfter()
}
