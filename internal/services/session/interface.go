package session

//go:generate mockgen -package=mocks -destination=mocks/mock_platform.go github.com/KirkDiggler/waterstone/internal/services/session Platform

import (
	"context"

	"github.com/KirkDiggler/waterstone/internal/models"
)

// Service defines the interface for session lifecycle operations
type Service interface {
	// StartSession makes a session active immediately and announces it
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// ScheduleSession creates a guild event and queues the session
	ScheduleSession(ctx context.Context, input *ScheduleSessionInput) (*ScheduleSessionOutput, error)

	// CancelActiveSession ends the active session early
	CancelActiveSession(ctx context.Context, input *CancelActiveSessionInput) (*CancelActiveSessionOutput, error)

	// CancelScheduledSession removes a queued session by its event ID
	CancelScheduledSession(ctx context.Context, input *CancelScheduledSessionInput) (*CancelScheduledSessionOutput, error)

	// HasActiveSession reports whether the guild has an active session
	HasActiveSession(ctx context.Context, input *HasActiveSessionInput) (*HasActiveSessionOutput, error)

	// GetActiveSession returns the guild's active session, if any
	GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error)

	// GetScheduledSessions returns the guild's queued sessions
	GetScheduledSessions(ctx context.Context, input *GetScheduledSessionsInput) (*GetScheduledSessionsOutput, error)

	// Reconcile expires finished sessions and promotes due ones
	Reconcile(ctx context.Context, input *ReconcileInput) (*ReconcileOutput, error)
}

// Platform is the chat platform surface sessions depend on
type Platform interface {
	// Announce posts the announcement variant and returns its message ID
	Announce(ctx context.Context, session *models.Session, kind models.AnnouncementKind) (string, error)

	// EditAnnouncement rewrites a posted announcement to another variant
	EditAnnouncement(ctx context.Context, session *models.Session, kind models.AnnouncementKind) error

	// CreateEvent creates the guild scheduled event and returns its ID
	CreateEvent(ctx context.Context, session *models.Session) (string, error)

	// DeleteEvent removes a guild scheduled event
	DeleteEvent(ctx context.Context, guildID, eventID string) error

	// GetMember resolves a guild member
	GetMember(ctx context.Context, guildID, userID string) (*models.Member, error)
}
