package scheduleRepo

import (
	"time"

	"github.com/maksim-leskin/api-chik-chik/models"
)

// ScheduleRepository stores the precomputed availability schedules and the
// freshness marker that gates their rebuild.
type ScheduleRepository interface {
	// GetBySpecialist returns the schedule document for one specialist, or
	// (nil, nil) when none exists.
	GetBySpecialist(id int) (*models.SpecialistSchedule, error)
	// ReplaceAll swaps the whole schedule set for the given one. Each
	// specialist's document is replaced atomically, so readers never observe
	// a partially rebuilt schedule.
	ReplaceAll(schedules []models.SpecialistSchedule) error
	// LastRebuildAt returns the freshness marker's last-write time, or the
	// zero time when the marker has never been written.
	LastRebuildAt() (time.Time, error)
	// TouchRebuildMarker records the current time as the last rebuild time.
	TouchRebuildMarker() error
}
