package session

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func parseInts(text, sep string, n int) ([]int, bool) {
	parts := strings.Split(strings.TrimSpace(text), sep)
	if len(parts) != n {
		return nil, false
	}
	out := make([]int, n)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// ParseClock parses a 24-hour HH:MM time of day
func ParseClock(text string) (hour, minute int, err error) {
	v, ok := parseInts(text, ":", 2)
	if !ok || v[0] < 0 || v[0] > 23 || v[1] < 0 || v[1] > 59 {
		return 0, 0, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidSchedule, text)
	}
	return v[0], v[1], nil
}

// ParseDate parses a DD/MM/YYYY date in UTC
func ParseDate(text string) (time.Time, error) {
	v, ok := parseInts(text, "/", 3)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q is not DD/MM/YYYY", ErrInvalidSchedule, text)
	}
	day, month, year := v[0], v[1], v[2]
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return time.Time{}, fmt.Errorf("%w: %q is not a calendar date", ErrInvalidSchedule, text)
	}
	return date, nil
}

// ParseScheduleWindow turns DD/MM/YYYY plus HH:MM start and end into a UTC
// window. An end not after the start falls on the next day.
func ParseScheduleWindow(date, start, end string, now time.Time) (time.Time, time.Time, error) {
	day, err := ParseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	startHour, startMinute, err := ParseClock(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endHour, endMinute, err := ParseClock(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	startTime := day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMinute)*time.Minute)
	endTime := day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMinute)*time.Minute)
	if !endTime.After(startTime) {
		endTime = endTime.AddDate(0, 0, 1)
	}

	if startTime.Before(now.UTC()) {
		return time.Time{}, time.Time{}, ErrSessionInPast
	}
	return startTime, endTime, nil
}

// ParseStartWindow returns a window starting now and ending at the next
// occurrence of the HH:MM end time.
func ParseStartWindow(end string, now time.Time) (time.Time, time.Time, error) {
	hour, minute, err := ParseClock(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	now = now.UTC().Truncate(time.Minute)
	endTime := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	if !endTime.After(now) {
		endTime = endTime.AddDate(0, 0, 1)
	}
	return now, endTime, nil
}
