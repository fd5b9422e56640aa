package models

// Canonical period names
const (
	PeriodOne   = "Period 1"
	PeriodTwo   = "Period 2"
	PeriodThree = "Period 3"
	PeriodFour  = "Period 4"
	PeriodBreak = "Break"
	PeriodLunch = "Lunch"
)

// Canonical year group names
const (
	YearSeven      = "Year 7"
	YearEight      = "Year 8"
	YearReflection = "Reflection"
	YearPastoral   = "Pastoral"
	YearReception  = "Reception"
)

// TimetableSlot is a single claimed cell of the staff timetable
type TimetableSlot struct {
	// Period is the canonical period name
	Period string `json:"period"`

	// YearGroup is the canonical year group name
	YearGroup string `json:"year_group"`

	// Staff is the mention of the staff member holding the slot
	Staff string `json:"staff"`

	// Room is where the lesson takes place
	Room string `json:"room"`

	// Subject is the free-text subject
	Subject string `json:"subject"`
}

// Key returns the slot key for the slot's period and year group
func (s *TimetableSlot) Key() string {
	return SlotKey(s.Period, s.YearGroup)
}

// SlotKey joins a canonical period and year group into a slot key
func SlotKey(period, yearGroup string) string {
	return period + "_" + yearGroup
}

// ClaimRequest is a parsed free-text claim
type ClaimRequest struct {
	Period    string
	YearGroup string
	Subject   string
	Room      string
}
