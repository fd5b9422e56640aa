package timetable

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/KirkDiggler/waterstone/internal/models"
)

var (
	periodPattern    = regexp.MustCompile(`(?i)^(?:period|p)?\s*([1-4])$`)
	yearGroupPattern = regexp.MustCompile(`(?i)^(?:year|y)?\s*([78])$`)
)

// NormalizePeriod maps Break, Lunch, P<N>, Period <N> or a bare N (1-4) to
// its canonical name.
func NormalizePeriod(text string) (string, bool) {
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "break":
		return models.PeriodBreak, true
	case "lunch":
		return models.PeriodLunch, true
	}
	if m := periodPattern.FindStringSubmatch(text); m != nil {
		return "Period " + m[1], true
	}
	return "", false
}

// NormalizeYearGroup maps Year <N>, Y<N>, a bare N (7-8) or one of the
// pastoral year groups to its canonical name.
func NormalizeYearGroup(text string) (string, bool) {
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "reflection":
		return models.YearReflection, true
	case "pastoral":
		return models.YearPastoral, true
	case "reception":
		return models.YearReception, true
	}
	if m := yearGroupPattern.FindStringSubmatch(text); m != nil {
		return "Year " + m[1], true
	}
	return "", false
}

// firstAlternative returns the first comma-separated option that normalizes
func firstAlternative(line string, normalize func(string) (string, bool)) (string, bool) {
	for _, option := range strings.Split(line, ",") {
		if v, ok := normalize(option); ok {
			return v, true
		}
	}
	return "", false
}

func claimLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedClaim, fmt.Sprintf(format, args...))
}

// Parse turns a claim message into a ClaimRequest. The accepted forms are
//
//	<period>                 <period>
//	Reflection|Pastoral|...  <subject>
//	                         <year group>
//	                         <room>
//
// Any structural mismatch is returned as ErrMalformedClaim.
func Parse(raw string) (*models.ClaimRequest, error) {
	lines := claimLines(raw)
	if len(lines) < 2 {
		return nil, malformed("expected at least 2 lines, got %d", len(lines))
	}

	period, ok := firstAlternative(lines[0], NormalizePeriod)
	if !ok {
		return nil, malformed("%q is not a period", lines[0])
	}

	var claim *models.ClaimRequest
	if yearGroup, ok := firstAlternative(lines[1], NormalizeYearGroup); ok && IsSpecialYearGroup(yearGroup) {
		room, _ := AutoRoom(yearGroup)
		claim = &models.ClaimRequest{
			Period:    period,
			YearGroup: yearGroup,
			Subject:   yearGroup,
			Room:      room,
		}
	} else {
		if len(lines) < 4 {
			return nil, malformed("lessons need subject, year group and room lines")
		}
		yearGroup, ok := firstAlternative(lines[2], NormalizeYearGroup)
		if !ok {
			return nil, malformed("%q is not a year group", lines[2])
		}
		claim = &models.ClaimRequest{
			Period:    period,
			YearGroup: yearGroup,
			Subject:   lines[1],
			Room:      lines[3],
		}
	}

	if !IsValidSlot(claim.Period, claim.YearGroup) {
		return nil, malformed("%s has no %s slot", claim.Period, claim.YearGroup)
	}
	return claim, nil
}
