package schedule

import "time"

// SlotDate identifies one bookable calendar date. The year is carried so
// that a horizon crossing a year boundary cannot alias January of the
// current and the following year.
type SlotDate struct {
	Year  int
	Month int // 1..12
	Day   int // 1..31
}

// WeekdayDates expands a weekly working pattern into the concrete calendar
// dates falling on the given weekdays (0 = Sunday .. 6 = Saturday) over the
// next monthsAhead calendar months, in chronological order.
//
// The lower bound is "now minus one day", exclusive: a matching date equal
// to today is still included. The one-day pull-back is a deliberate grace
// window for same-day bookings.
func WeekdayDates(now time.Time, monthsAhead int, weekdays []int) []SlotDate {
	loc := now.Location()
	anchor := time.Date(now.Year(), now.Month(), now.Day()-1, 0, 0, 0, 0, loc)

	wanted := make(map[time.Weekday]bool, len(weekdays))
	for _, d := range weekdays {
		wanted[time.Weekday(d)] = true
	}

	var dates []SlotDate
	for i := 0; i < monthsAhead; i++ {
		// time.Date normalizes out-of-range months, so month 13 of year N
		// resolves to January of year N+1 with true calendar arithmetic.
		monthStart := time.Date(anchor.Year(), anchor.Month()+time.Month(i), 1, 0, 0, 0, 0, loc)
		daysInMonth := time.Date(monthStart.Year(), monthStart.Month()+1, 0, 0, 0, 0, 0, loc).Day()
		for day := 1; day <= daysInMonth; day++ {
			date := time.Date(monthStart.Year(), monthStart.Month(), day, 0, 0, 0, 0, loc)
			if wanted[date.Weekday()] && date.After(anchor) {
				dates = append(dates, SlotDate{
					Year:  date.Year(),
					Month: int(date.Month()),
					Day:   date.Day(),
				})
			}
		}
	}
	return dates
}
