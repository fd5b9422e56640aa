package models

import (
	"time"
)

// SessionStatus represents the lifecycle state of a school session
type SessionStatus string

const (
	// SessionStatusScheduled indicates a session waiting for its start time
	SessionStatusScheduled SessionStatus = "scheduled"

	// SessionStatusActive indicates the session currently running in a guild
	SessionStatusActive SessionStatus = "active"
)

// AnnouncementKind selects which variant of the session announcement is shown
type AnnouncementKind string

const (
	// AnnouncementStarting is posted when a session becomes active
	AnnouncementStarting AnnouncementKind = "starting"

	// AnnouncementEnded replaces the announcement when a session expires
	AnnouncementEnded AnnouncementKind = "ended"

	// AnnouncementCancelled replaces the announcement when staff cancel a session
	AnnouncementCancelled AnnouncementKind = "cancelled"
)

// Session represents a school session hosted by a staff member
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// GuildID is the Discord server the session belongs to
	GuildID string

	// Host is the staff member running the session
	Host *Member

	// Title is the event title for scheduled sessions
	Title string

	// StartTime is when the session starts (UTC)
	StartTime time.Time

	// EndTime is when the session ends (UTC)
	EndTime time.Time

	// Status is the current lifecycle state
	Status SessionStatus

	// AnnouncementID is the message ID of the status announcement
	AnnouncementID string

	// EventID is the guild scheduled event backing a scheduled session
	EventID string

	// CancelledAt is set when the session was cancelled by staff
	CancelledAt time.Time
}

// Clone returns a copy of the session that callers may keep
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.Host != nil {
		host := *s.Host
		c.Host = &host
	}
	return &c
}
