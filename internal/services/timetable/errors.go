package timetable

// TimetableError is a custom error type for timetable errors
type TimetableError string

// Error implements the error interface
func (e TimetableError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMalformedClaim   TimetableError = "malformed claim"
	ErrInvalidPeriod    TimetableError = "invalid period"
	ErrInvalidYearGroup TimetableError = "invalid year group"
	ErrUnknownSlot      TimetableError = "slot is not part of the timetable"
	ErrRoomRequired     TimetableError = "room is required for year 7 and year 8 lessons"
	ErrNilInput         TimetableError = "input cannot be nil"
	ErrNilConfig        TimetableError = "config cannot be nil"
	ErrNilClaimant      TimetableError = "claimant cannot be empty"
	ErrMissingGuild     TimetableError = "guild ID cannot be empty"
)
