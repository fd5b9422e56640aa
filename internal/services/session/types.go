package session

import (
	"time"

	"github.com/KirkDiggler/waterstone/internal/common/clock"
	"github.com/KirkDiggler/waterstone/internal/common/uuid"
	"github.com/KirkDiggler/waterstone/internal/models"
)

// DefaultTitle is used when a scheduled session has no title
const DefaultTitle = "Waterstone School Session"

// Config holds the dependencies of the session service
type Config struct {
	Platform Platform
	Clock    clock.Clock
	UUID     uuid.UUID
}

type StartSessionInput struct {
	GuildID   string
	Host      *models.Member
	StartTime time.Time
	EndTime   time.Time
}

type StartSessionOutput struct {
	Session *models.Session
}

type ScheduleSessionInput struct {
	GuildID   string
	Host      *models.Member
	StartTime time.Time
	EndTime   time.Time

	// Title defaults to DefaultTitle
	Title string
}

type ScheduleSessionOutput struct {
	Session *models.Session
	EventID string
}

type CancelActiveSessionInput struct {
	GuildID string
}

type CancelActiveSessionOutput struct {
	Session *models.Session
}

type CancelScheduledSessionInput struct {
	GuildID string
	EventID string
}

type CancelScheduledSessionOutput struct {
	Session *models.Session
}

type HasActiveSessionInput struct {
	GuildID string
}

type HasActiveSessionOutput struct {
	Active bool
}

type GetActiveSessionInput struct {
	GuildID string
}

type GetActiveSessionOutput struct {
	// Session is nil when nothing is active
	Session *models.Session
}

type GetScheduledSessionsInput struct {
	GuildID string
}

type GetScheduledSessionsOutput struct {
	// Sessions are in the order they were scheduled
	Sessions []*models.Session
}

type ReconcileInput struct {
}

// DropReason says why a due scheduled session was not promoted
type DropReason string

const (
	DropReasonAlreadyActive  DropReason = "already_active"
	DropReasonHostUnresolved DropReason = "host_unresolved"
	DropReasonAnnounceFailed DropReason = "announce_failed"
)

// DroppedSession is a due scheduled session that was discarded
type DroppedSession struct {
	Session *models.Session
	Reason  DropReason
}

type ReconcileOutput struct {
	Ended    []*models.Session
	Promoted []*models.Session
	Dropped  []*DroppedSession
}
