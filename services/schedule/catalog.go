package schedule

// DefaultSlotCatalog lists the bookable time-of-day ranges for any working
// day, in day order. Every slot is 90 minutes.
var DefaultSlotCatalog = []string{
	"10:00-11:30",
	"11:30-13:00",
	"13:00-14:30",
	"14:30-16:00",
	"16:00-17:30",
	"17:30-19:00",
	"19:00-20:30",
}
