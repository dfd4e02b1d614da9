package models

// DaySlots is the ordered set of bookable slot labels assigned to one day.
type DaySlots []string

// MonthSchedule maps day-of-month (decimal string key, as persisted) to the
// slots sampled for that day.
type MonthSchedule map[string]DaySlots

// WorkSchedule maps month number (decimal string key) to that month's days.
type WorkSchedule map[string]MonthSchedule

// SpecialistSchedule is one availability cache document: the precomputed
// month -> day -> slots structure for a single specialist.
type SpecialistSchedule struct {
	ID   int          `bson:"id" json:"id"`
	Work WorkSchedule `bson:"work" json:"work"`
}
