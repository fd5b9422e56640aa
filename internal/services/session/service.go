package session

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/waterstone/internal/common/clock"
	"github.com/KirkDiggler/waterstone/internal/common/uuid"
	"github.com/KirkDiggler/waterstone/internal/models"
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("session")

// guildState holds one guild's sessions. mu is held across platform calls so
// operations on the same guild never interleave.
type guildState struct {
	mu        sync.Mutex
	active    *models.Session
	scheduled []*models.Session
}

// service implements the Service interface
type service struct {
	platform Platform
	clock    clock.Clock
	uuid     uuid.UUID

	mu     sync.Mutex
	guilds map[string]*guildState
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Platform == nil {
		return nil, ErrNilPlatform
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	return &service{
		platform: cfg.Platform,
		clock:    cfg.Clock,
		uuid:     cfg.UUID,
		guilds:   make(map[string]*guildState),
	}, nil
}

func (s *service) guild(guildID string) *guildState {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guilds[guildID]
	if !ok {
		g = &guildState{}
		s.guilds[guildID] = g
	}
	return g
}

// lookup returns the guild's state without creating it
func (s *service) lookup(guildID string) (*guildState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guilds[guildID]
	return g, ok
}

func (s *service) guildIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.guilds))
	for id := range s.guilds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// StartSession records an active session and posts the starting announcement
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}
	if input.Host == nil {
		return nil, ErrNilHost
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, ErrInvalidWindow
	}

	g := s.guild(input.GuildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active != nil {
		return nil, ErrSessionAlreadyActive
	}

	host := *input.Host
	sess := &models.Session{
		ID:        s.uuid.NewUUID(),
		GuildID:   input.GuildID,
		Host:      &host,
		StartTime: input.StartTime.UTC(),
		EndTime:   input.EndTime.UTC(),
		Status:    models.SessionStatusActive,
	}

	messageID, err := s.platform.Announce(ctx, sess.Clone(), models.AnnouncementStarting)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnnouncementUnavailable, err)
	}
	sess.AnnouncementID = messageID
	g.active = sess

	log.Infof("session %s started in guild %s by %s", sess.ID, sess.GuildID, host.ID)

	return &StartSessionOutput{
		Session: sess.Clone(),
	}, nil
}

// ScheduleSession creates the guild event and queues the session. Scheduled
// sessions never collide with each other.
func (s *service) ScheduleSession(ctx context.Context, input *ScheduleSessionInput) (*ScheduleSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}
	if input.Host == nil {
		return nil, ErrNilHost
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, ErrInvalidWindow
	}
	if input.StartTime.Before(s.clock.Now()) {
		return nil, ErrSessionInPast
	}

	title := input.Title
	if title == "" {
		title = DefaultTitle
	}

	g := s.guild(input.GuildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	host := *input.Host
	sess := &models.Session{
		ID:        s.uuid.NewUUID(),
		GuildID:   input.GuildID,
		Host:      &host,
		Title:     title,
		StartTime: input.StartTime.UTC(),
		EndTime:   input.EndTime.UTC(),
		Status:    models.SessionStatusScheduled,
	}

	eventID, err := s.platform.CreateEvent(ctx, sess.Clone())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEventCreationFailed, err)
	}
	sess.EventID = eventID
	g.scheduled = append(g.scheduled, sess)

	log.Infof("session %s scheduled in guild %s for %s", sess.ID, sess.GuildID, sess.StartTime.Format("02/01/2006 15:04"))

	return &ScheduleSessionOutput{
		Session: sess.Clone(),
		EventID: eventID,
	}, nil
}

// CancelActiveSession marks the announcement cancelled and drops the session
func (s *service) CancelActiveSession(ctx context.Context, input *CancelActiveSessionInput) (*CancelActiveSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}

	g := s.guild(input.GuildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active == nil {
		return nil, ErrNoActiveSession
	}

	sess := g.active
	sess.CancelledAt = s.clock.Now()
	if sess.AnnouncementID != "" {
		if err := s.platform.EditAnnouncement(ctx, sess.Clone(), models.AnnouncementCancelled); err != nil {
			log.Warningf("failed to mark session %s cancelled: %v", sess.ID, err)
		}
	}
	g.active = nil

	log.Infof("session %s cancelled in guild %s", sess.ID, sess.GuildID)

	return &CancelActiveSessionOutput{
		Session: sess.Clone(),
	}, nil
}

// CancelScheduledSession removes the queued session matching the event ID
func (s *service) CancelScheduledSession(ctx context.Context, input *CancelScheduledSessionInput) (*CancelScheduledSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}

	g := s.guild(input.GuildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	index := -1
	for i, sess := range g.scheduled {
		if sess.EventID == input.EventID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrScheduledSessionNotFound
	}

	sess := g.scheduled[index]
	g.scheduled = append(g.scheduled[:index], g.scheduled[index+1:]...)

	if err := s.platform.DeleteEvent(ctx, sess.GuildID, sess.EventID); err != nil {
		log.Warningf("failed to delete event %s of session %s: %v", sess.EventID, sess.ID, err)
	}

	log.Infof("scheduled session %s cancelled in guild %s", sess.ID, sess.GuildID)

	return &CancelScheduledSessionOutput{
		Session: sess.Clone(),
	}, nil
}

// HasActiveSession reports whether an active session exists
func (s *service) HasActiveSession(ctx context.Context, input *HasActiveSessionInput) (*HasActiveSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}

	g, ok := s.lookup(input.GuildID)
	if !ok {
		return &HasActiveSessionOutput{}, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return &HasActiveSessionOutput{
		Active: g.active != nil,
	}, nil
}

// GetActiveSession returns a copy of the active session
func (s *service) GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}

	g, ok := s.lookup(input.GuildID)
	if !ok {
		return &GetActiveSessionOutput{}, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return &GetActiveSessionOutput{
		Session: g.active.Clone(),
	}, nil
}

// GetScheduledSessions returns copies of the queued sessions
func (s *service) GetScheduledSessions(ctx context.Context, input *GetScheduledSessionsInput) (*GetScheduledSessionsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}

	g, ok := s.lookup(input.GuildID)
	if !ok {
		return &GetScheduledSessionsOutput{Sessions: []*models.Session{}}, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	sessions := make([]*models.Session, 0, len(g.scheduled))
	for _, sess := range g.scheduled {
		sessions = append(sessions, sess.Clone())
	}

	return &GetScheduledSessionsOutput{
		Sessions: sessions,
	}, nil
}

// Reconcile runs one tick: every guild's expired active session ends first,
// then due scheduled sessions are promoted or dropped. Nothing is retried.
func (s *service) Reconcile(ctx context.Context, input *ReconcileInput) (*ReconcileOutput, error) {
	now := s.clock.Now()
	output := &ReconcileOutput{}
	ids := s.guildIDs()

	for _, id := range ids {
		if ended := s.expire(ctx, s.guild(id), now); ended != nil {
			output.Ended = append(output.Ended, ended)
		}
	}

	for _, id := range ids {
		promoted, dropped := s.promote(ctx, s.guild(id), now)
		output.Promoted = append(output.Promoted, promoted...)
		output.Dropped = append(output.Dropped, dropped...)
	}

	return output, nil
}

func (s *service) expire(ctx context.Context, g *guildState, now time.Time) *models.Session {
	g.mu.Lock()
	defer g.mu.Unlock()

	sess := g.active
	if sess == nil || now.Before(sess.EndTime) {
		return nil
	}

	if sess.AnnouncementID != "" {
		if err := s.platform.EditAnnouncement(ctx, sess.Clone(), models.AnnouncementEnded); err != nil {
			log.Warningf("failed to mark session %s ended: %v", sess.ID, err)
		}
	}
	g.active = nil

	log.Infof("session %s ended in guild %s", sess.ID, sess.GuildID)
	return sess.Clone()
}

func (s *service) promote(ctx context.Context, g *guildState, now time.Time) ([]*models.Session, []*DroppedSession) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var (
		promoted []*models.Session
		dropped  []*DroppedSession
		pending  []*models.Session
	)
	drop := func(sess *models.Session, reason DropReason) {
		log.Warningf("dropping scheduled session %s in guild %s: %s", sess.ID, sess.GuildID, reason)
		dropped = append(dropped, &DroppedSession{Session: sess.Clone(), Reason: reason})
	}

	for _, sess := range g.scheduled {
		if now.Before(sess.StartTime) {
			pending = append(pending, sess)
			continue
		}

		if g.active != nil {
			drop(sess, DropReasonAlreadyActive)
			continue
		}

		host, err := s.platform.GetMember(ctx, sess.GuildID, sess.Host.ID)
		if err != nil || host == nil {
			drop(sess, DropReasonHostUnresolved)
			continue
		}
		candidate := sess.Clone()
		candidate.Host = host
		candidate.Status = models.SessionStatusActive

		messageID, err := s.platform.Announce(ctx, candidate.Clone(), models.AnnouncementStarting)
		if err != nil {
			drop(sess, DropReasonAnnounceFailed)
			continue
		}
		candidate.AnnouncementID = messageID
		g.active = candidate
		promoted = append(promoted, candidate.Clone())

		log.Infof("scheduled session %s is now active in guild %s", candidate.ID, candidate.GuildID)
	}
	g.scheduled = pending

	return promoted, dropped
}
