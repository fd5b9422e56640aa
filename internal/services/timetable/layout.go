package timetable

import "github.com/KirkDiggler/waterstone/internal/models"

// LayoutPeriod is one row group of the staff timetable
type LayoutPeriod struct {
	Period     string
	YearGroups []string
}

var (
	allYearGroups = []string{
		models.YearSeven,
		models.YearEight,
		models.YearReflection,
		models.YearPastoral,
		models.YearReception,
	}
	specialYearGroups = []string{
		models.YearReflection,
		models.YearPastoral,
		models.YearReception,
	}
)

// layout is the timetable in display order. Break and Lunch have no lessons.
var layout = []LayoutPeriod{
	{Period: models.PeriodOne, YearGroups: allYearGroups},
	{Period: models.PeriodTwo, YearGroups: allYearGroups},
	{Period: models.PeriodBreak, YearGroups: specialYearGroups},
	{Period: models.PeriodThree, YearGroups: allYearGroups},
	{Period: models.PeriodLunch, YearGroups: specialYearGroups},
	{Period: models.PeriodFour, YearGroups: allYearGroups},
}

// autoRooms are the fixed rooms for the pastoral year groups
var autoRooms = map[string]string{
	models.YearReflection: "F13",
	models.YearPastoral:   "G13",
	models.YearReception:  "G01",
}

// Layout returns a copy of the timetable layout in display order
func Layout() []LayoutPeriod {
	out := make([]LayoutPeriod, len(layout))
	for i, p := range layout {
		out[i] = LayoutPeriod{
			Period:     p.Period,
			YearGroups: append([]string(nil), p.YearGroups...),
		}
	}
	return out
}

// IsValidSlot reports whether the canonical period and year group form a
// cell of the timetable
func IsValidSlot(period, yearGroup string) bool {
	for _, p := range layout {
		if p.Period != period {
			continue
		}
		for _, y := range p.YearGroups {
			if y == yearGroup {
				return true
			}
		}
		return false
	}
	return false
}

// IsSpecialYearGroup reports whether the year group has a fixed room
func IsSpecialYearGroup(yearGroup string) bool {
	_, ok := autoRooms[yearGroup]
	return ok
}

// AutoRoom returns the fixed room of a special year group
func AutoRoom(yearGroup string) (string, bool) {
	room, ok := autoRooms[yearGroup]
	return room, ok
}
