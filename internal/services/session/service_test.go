package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/waterstone/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/waterstone/internal/common/uuid/mocks"
	"github.com/KirkDiggler/waterstone/internal/models"
	"github.com/KirkDiggler/waterstone/internal/services/session/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testGuildID = "guild-1"

type SessionServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockPlatform *mocks.MockPlatform
	mockClock    *clockMocks.MockClock
	mockUUID     *uuidMocks.MockUUID
	service      *service
	ctx          context.Context
	now          time.Time
	host         *models.Member
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPlatform = mocks.NewMockPlatform(s.ctrl)
	s.mockClock = clockMocks.NewMockClock(s.ctrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)
	s.host = &models.Member{ID: "host-1", Username: "headteacher"}

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("session-id").AnyTimes()

	svc, err := New(&Config{
		Platform: s.mockPlatform,
		Clock:    s.mockClock,
		UUID:     s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *SessionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSessionServiceSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) startSession(end time.Time) *models.Session {
	s.mockPlatform.EXPECT().
		Announce(gomock.Any(), gomock.Any(), models.AnnouncementStarting).
		Return("announcement-1", nil)

	output, err := s.service.StartSession(s.ctx, &StartSessionInput{
		GuildID:   testGuildID,
		Host:      s.host,
		StartTime: s.now,
		EndTime:   end,
	})
	s.Require().NoError(err)
	return output.Session
}

func (s *SessionServiceTestSuite) scheduleSession(start time.Time, eventID string) {
	s.mockPlatform.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		Return(eventID, nil)

	_, err := s.service.ScheduleSession(s.ctx, &ScheduleSessionInput{
		GuildID:   testGuildID,
		Host:      s.host,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	s.Require().NoError(err)
}

func (s *SessionServiceTestSuite) hasActive() bool {
	output, err := s.service.HasActiveSession(s.ctx, &HasActiveSessionInput{GuildID: testGuildID})
	s.Require().NoError(err)
	return output.Active
}

func (s *SessionServiceTestSuite) TestNewValidatesDependencies() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, UUID: s.mockUUID})
	s.ErrorIs(err, ErrNilPlatform)

	_, err = New(&Config{Platform: s.mockPlatform, UUID: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{Platform: s.mockPlatform, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUID)
}

func (s *SessionServiceTestSuite) TestStartThenCancel() {
	sess := s.startSession(s.now.Add(2 * time.Hour))
	s.Equal(models.SessionStatusActive, sess.Status)
	s.Equal("announcement-1", sess.AnnouncementID)
	s.True(s.hasActive())

	s.mockPlatform.EXPECT().
		EditAnnouncement(gomock.Any(), gomock.Any(), models.AnnouncementCancelled).
		DoAndReturn(func(_ context.Context, sess *models.Session, _ models.AnnouncementKind) error {
			s.Equal(s.now, sess.CancelledAt)
			return nil
		})

	output, err := s.service.CancelActiveSession(s.ctx, &CancelActiveSessionInput{GuildID: testGuildID})
	s.Require().NoError(err)
	s.Equal("session-id", output.Session.ID)
	s.False(s.hasActive())
}

func (s *SessionServiceTestSuite) TestStartTwiceKeepsFirstSession() {
	first := s.startSession(s.now.Add(2 * time.Hour))

	_, err := s.service.StartSession(s.ctx, &StartSessionInput{
		GuildID:   testGuildID,
		Host:      &models.Member{ID: "host-2"},
		StartTime: s.now,
		EndTime:   s.now.Add(time.Hour),
	})
	s.ErrorIs(err, ErrSessionAlreadyActive)

	active, err := s.service.GetActiveSession(s.ctx, &GetActiveSessionInput{GuildID: testGuildID})
	s.Require().NoError(err)
	s.Equal(first, active.Session)
}

func (s *SessionServiceTestSuite) TestStartFailsWhenAnnouncementUnavailable() {
	s.mockPlatform.EXPECT().
		Announce(gomock.Any(), gomock.Any(), models.AnnouncementStarting).
		Return("", errors.New("channel not found"))

	_, err := s.service.StartSession(s.ctx, &StartSessionInput{
		GuildID:   testGuildID,
		Host:      s.host,
		StartTime: s.now,
		EndTime:   s.now.Add(time.Hour),
	})
	s.ErrorIs(err, ErrAnnouncementUnavailable)
	s.False(s.hasActive())
}

func (s *SessionServiceTestSuite) TestStartValidation() {
	_, err := s.service.StartSession(s.ctx, &StartSessionInput{GuildID: testGuildID, StartTime: s.now, EndTime: s.now.Add(time.Hour)})
	s.ErrorIs(err, ErrNilHost)

	_, err = s.service.StartSession(s.ctx, &StartSessionInput{GuildID: testGuildID, Host: s.host, StartTime: s.now, EndTime: s.now})
	s.ErrorIs(err, ErrInvalidWindow)

	_, err = s.service.StartSession(s.ctx, &StartSessionInput{Host: s.host, StartTime: s.now, EndTime: s.now.Add(time.Hour)})
	s.ErrorIs(err, ErrMissingGuild)
}

func (s *SessionServiceTestSuite) TestCancelWithoutActiveSession() {
	_, err := s.service.CancelActiveSession(s.ctx, &CancelActiveSessionInput{GuildID: testGuildID})
	s.ErrorIs(err, ErrNoActiveSession)
}

func (s *SessionServiceTestSuite) TestCancelSwallowsEditFailure() {
	s.startSession(s.now.Add(time.Hour))

	s.mockPlatform.EXPECT().
		EditAnnouncement(gomock.Any(), gomock.Any(), models.AnnouncementCancelled).
		Return(errors.New("message deleted"))

	_, err := s.service.CancelActiveSession(s.ctx, &CancelActiveSessionInput{GuildID: testGuildID})
	s.Require().NoError(err)
	s.False(s.hasActive())
}

func (s *SessionServiceTestSuite) TestScheduleSession() {
	start := s.now.Add(24 * time.Hour)
	s.mockPlatform.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sess *models.Session) (string, error) {
			s.Equal(DefaultTitle, sess.Title)
			s.Equal(models.SessionStatusScheduled, sess.Status)
			return "event-1", nil
		})

	output, err := s.service.ScheduleSession(s.ctx, &ScheduleSessionInput{
		GuildID:   testGuildID,
		Host:      s.host,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	s.Require().NoError(err)
	s.Equal("event-1", output.EventID)

	// Overlapping schedules are allowed.
	s.scheduleSession(start, "event-2")

	scheduled, err := s.service.GetScheduledSessions(s.ctx, &GetScheduledSessionsInput{GuildID: testGuildID})
	s.Require().NoError(err)
	s.Require().Len(scheduled.Sessions, 2)
	s.Equal("event-1", scheduled.Sessions[0].EventID)
	s.Equal("event-2", scheduled.Sessions[1].EventID)
	s.False(s.hasActive())
}

func (s *SessionServiceTestSuite) TestScheduleSessionFailures() {
	_, err := s.service.ScheduleSession(s.ctx, &ScheduleSessionInput{
		GuildID:   testGuildID,
		Host:      s.host,
		StartTime: s.now.Add(-time.Minute),
		EndTime:   s.now.Add(time.Hour),
	})
	s.ErrorIs(err, ErrSessionInPast)

	s.mockPlatform.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		Return("", errors.New("missing permissions"))

	_, err = s.service.ScheduleSession(s.ctx, &ScheduleSessionInput{
		GuildID:   testGuildID,
		Host:      s.host,
		StartTime: s.now.Add(time.Hour),
		EndTime:   s.now.Add(2 * time.Hour),
		Title:     "Open Day",
	})
	s.ErrorIs(err, ErrEventCreationFailed)

	scheduled, err := s.service.GetScheduledSessions(s.ctx, &GetScheduledSessionsInput{GuildID: testGuildID})
	s.Require().NoError(err)
	s.Empty(scheduled.Sessions)
}

func (s *SessionServiceTestSuite) TestCancelScheduledSession() {
	s.scheduleSession(s.now.Add(time.Hour), "event-1")
	s.scheduleSession(s.now.Add(2*time.Hour), "event-2")

	s.mockPlatform.EXPECT().
		DeleteEvent(gomock.Any(), testGuildID, "event-1").
		Return(errors.New("already deleted"))

	output, err := s.service.CancelScheduledSession(s.ctx, &CancelScheduledSessionInput{
		GuildID: testGuildID,
		EventID: "event-1",
	})
	s.Require().NoError(err)
	s.Equal("event-1", output.Session.EventID)

	_, err = s.service.CancelScheduledSession(s.ctx, &CancelScheduledSessionInput{
		GuildID: testGuildID,
		EventID: "event-1",
	})
	s.ErrorIs(err, ErrScheduledSessionNotFound)

	scheduled, err := s.service.GetScheduledSessions(s.ctx, &GetScheduledSessionsInput{GuildID: testGuildID})
	s.Require().NoError(err)
	s.Require().Len(scheduled.Sessions, 1)
	s.Equal("event-2", scheduled.Sessions[0].EventID)
}

func (s *SessionServiceTestSuite) TestReconcileExpiresActiveSession() {
	s.startSession(s.now.Add(30 * time.Minute))

	s.now = s.now.Add(30 * time.Minute)
	s.mockPlatform.EXPECT().
		EditAnnouncement(gomock.Any(), gomock.Any(), models.AnnouncementEnded).
		Return(errors.New("message deleted"))

	output, err := s.service.Reconcile(s.ctx, &ReconcileInput{})
	s.Require().NoError(err)
	s.Len(output.Ended, 1)
	s.False(s.hasActive())
}

func (s *SessionServiceTestSuite) TestReconcileLeavesRunningSession() {
	s.startSession(s.now.Add(30 * time.Minute))

	output, err := s.service.Reconcile(s.ctx, &ReconcileInput{})
	s.Require().NoError(err)
	s.Empty(output.Ended)
	s.True(s.hasActive())
}

func (s *SessionServiceTestSuite) TestReconcilePromotesDueSession() {
	s.scheduleSession(s.now.Add(time.Minute), "event-1")
	s.scheduleSession(s.now.Add(time.Hour), "event-2")

	s.now = s.now.Add(time.Minute)
	s.mockPlatform.EXPECT().
		GetMember(gomock.Any(), testGuildID, "host-1").
		Return(&models.Member{ID: "host-1", DisplayName: "Head"}, nil)
	s.mockPlatform.EXPECT().
		Announce(gomock.Any(), gomock.Any(), models.AnnouncementStarting).
		Return("announcement-2", nil)

	output, err := s.service.Reconcile(s.ctx, &ReconcileInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Promoted, 1)
	s.Empty(output.Dropped)

	active, err := s.service.GetActiveSession(s.ctx, &GetActiveSessionInput{GuildID: testGuildID})
	s.Require().NoError(err)
	s.Require().NotNil(active.Session)
	s.Equal(models.SessionStatusActive, active.Session.Status)
	s.Equal("announcement-2", active.Session.AnnouncementID)
	s.Equal("Head", active.Session.Host.DisplayName)

	scheduled, err := s.service.GetScheduledSessions(s.ctx, &GetScheduledSessionsInput{GuildID: testGuildID})
	s.Require().NoError(err)
	s.Require().Len(scheduled.Sessions, 1)
	s.Equal("event-2", scheduled.Sessions[0].EventID)
}

func (s *SessionServiceTestSuite) TestReconcileDropsDueSessionWhenActive() {
	s.scheduleSession(s.now.Add(time.Minute), "event-1")
	original := s.startSession(s.now.Add(3 * time.Hour))

	s.now = s.now.Add(2 * time.Minute)
	output, err := s.service.Reconcile(s.ctx, &ReconcileInput{})
	s.Require().NoError(err)
	s.Empty(output.Promoted)
	s.Require().Len(output.Dropped, 1)
	s.Equal(DropReasonAlreadyActive, output.Dropped[0].Reason)

	active, err := s.service.GetActiveSession(s.ctx, &GetActiveSessionInput{GuildID: testGuildID})
	s.Require().NoError(err)
	s.Equal(original, active.Session)

	scheduled, err := s.service.GetScheduledSessions(s.ctx, &GetScheduledSessionsInput{GuildID: testGuildID})
	s.Require().NoError(err)
	s.Empty(scheduled.Sessions)
}

func (s *SessionServiceTestSuite) TestReconcileOnlyPromotesOneOfSimultaneousSessions() {
	s.scheduleSession(s.now.Add(time.Minute), "event-1")
	s.scheduleSession(s.now.Add(time.Minute), "event-2")

	s.now = s.now.Add(time.Minute)
	s.mockPlatform.EXPECT().GetMember(gomock.Any(), testGuildID, "host-1").Return(s.host, nil)
	s.mockPlatform.EXPECT().Announce(gomock.Any(), gomock.Any(), models.AnnouncementStarting).Return("announcement-1", nil)

	output, err := s.service.Reconcile(s.ctx, &ReconcileInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Promoted, 1)
	s.Equal("event-1", output.Promoted[0].EventID)
	s.Require().Len(output.Dropped, 1)
	s.Equal("event-2", output.Dropped[0].Session.EventID)
}

func (s *SessionServiceTestSuite) TestReconcileExpiresBeforePromoting() {
	s.startSession(s.now.Add(10 * time.Minute))
	s.scheduleSession(s.now.Add(10*time.Minute), "event-1")

	s.now = s.now.Add(10 * time.Minute)
	gomock.InOrder(
		s.mockPlatform.EXPECT().EditAnnouncement(gomock.Any(), gomock.Any(), models.AnnouncementEnded).Return(nil),
		s.mockPlatform.EXPECT().GetMember(gomock.Any(), testGuildID, "host-1").Return(s.host, nil),
		s.mockPlatform.EXPECT().Announce(gomock.Any(), gomock.Any(), models.AnnouncementStarting).Return("announcement-2", nil),
	)

	output, err := s.service.Reconcile(s.ctx, &ReconcileInput{})
	s.Require().NoError(err)
	s.Len(output.Ended, 1)
	s.Len(output.Promoted, 1)
	s.True(s.hasActive())
}

func (s *SessionServiceTestSuite) TestReconcileDropsUnresolvableHost() {
	s.scheduleSession(s.now.Add(time.Minute), "event-1")

	s.now = s.now.Add(time.Minute)
	s.mockPlatform.EXPECT().
		GetMember(gomock.Any(), testGuildID, "host-1").
		Return(nil, errors.New("unknown member"))

	output, err := s.service.Reconcile(s.ctx, &ReconcileInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Dropped, 1)
	s.Equal(DropReasonHostUnresolved, output.Dropped[0].Reason)
	s.False(s.hasActive())

	// Dropped sessions are not retried on the next tick.
	output, err = s.service.Reconcile(s.ctx, &ReconcileInput{})
	s.Require().NoError(err)
	s.Empty(output.Dropped)
}

func (s *SessionServiceTestSuite) TestReconcileDropsWhenAnnouncementFails() {
	s.scheduleSession(s.now.Add(time.Minute), "event-1")

	s.now = s.now.Add(time.Minute)
	s.mockPlatform.EXPECT().GetMember(gomock.Any(), testGuildID, "host-1").Return(s.host, nil)
	s.mockPlatform.EXPECT().
		Announce(gomock.Any(), gomock.Any(), models.AnnouncementStarting).
		Return("", errors.New("channel not found"))

	output, err := s.service.Reconcile(s.ctx, &ReconcileInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Dropped, 1)
	s.Equal(DropReasonAnnounceFailed, output.Dropped[0].Reason)
	s.False(s.hasActive())
}

func (s *SessionServiceTestSuite) TestReconcilePromotesLateSessionThenEndsIt() {
	s.scheduleSession(s.now.Add(time.Minute), "event-1")

	s.now = s.now.Add(3 * time.Hour)
	s.mockPlatform.EXPECT().GetMember(gomock.Any(), testGuildID, "host-1").Return(s.host, nil)
	s.mockPlatform.EXPECT().
		Announce(gomock.Any(), gomock.Any(), models.AnnouncementStarting).
		Return("announcement-2", nil)

	output, err := s.service.Reconcile(s.ctx, &ReconcileInput{})
	s.Require().NoError(err)
	s.Empty(output.Dropped)
	s.Require().Len(output.Promoted, 1)
	s.True(s.hasActive())

	s.mockPlatform.EXPECT().
		EditAnnouncement(gomock.Any(), gomock.Any(), models.AnnouncementEnded).
		Return(nil)

	output, err = s.service.Reconcile(s.ctx, &ReconcileInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Ended, 1)
	s.False(s.hasActive())
}

func (s *SessionServiceTestSuite) TestGuildsAreIndependent() {
	s.startSession(s.now.Add(time.Hour))

	output, err := s.service.HasActiveSession(s.ctx, &HasActiveSessionInput{GuildID: "guild-2"})
	s.Require().NoError(err)
	s.False(output.Active)
}

func (s *SessionServiceTestSuite) TestReadsRequireGuild() {
	_, err := s.service.HasActiveSession(s.ctx, &HasActiveSessionInput{})
	s.ErrorIs(err, ErrMissingGuild)

	_, err = s.service.GetActiveSession(s.ctx, &GetActiveSessionInput{})
	s.ErrorIs(err, ErrMissingGuild)

	_, err = s.service.GetScheduledSessions(s.ctx, &GetScheduledSessionsInput{})
	s.ErrorIs(err, ErrMissingGuild)
}

func (s *SessionServiceTestSuite) TestReadsDoNotTrackUnknownGuilds() {
	active, err := s.service.GetActiveSession(s.ctx, &GetActiveSessionInput{GuildID: "guild-2"})
	s.Require().NoError(err)
	s.Nil(active.Session)

	scheduled, err := s.service.GetScheduledSessions(s.ctx, &GetScheduledSessionsInput{GuildID: "guild-3"})
	s.Require().NoError(err)
	s.Empty(scheduled.Sessions)

	has, err := s.service.HasActiveSession(s.ctx, &HasActiveSessionInput{GuildID: "guild-4"})
	s.Require().NoError(err)
	s.False(has.Active)

	s.Empty(s.service.guildIDs())
}

func (s *SessionServiceTestSuite) TestConcurrentStartsAllowOneSession() {
	release := make(chan struct{})
	entered := make(chan struct{})
	s.mockPlatform.EXPECT().
		Announce(gomock.Any(), gomock.Any(), models.AnnouncementStarting).
		DoAndReturn(func(context.Context, *models.Session, models.AnnouncementKind) (string, error) {
			close(entered)
			<-release
			return "announcement-1", nil
		}).
		Times(1)

	const callers = 4
	errs := make(chan error, callers)
	var wg sync.WaitGroup
	for n := 0; n < callers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.StartSession(s.ctx, &StartSessionInput{
				GuildID:   testGuildID,
				Host:      s.host,
				StartTime: s.now,
				EndTime:   s.now.Add(time.Hour),
			})
			errs <- err
		}()
	}

	<-entered
	// The other callers queue behind the guild lock while the announcement is in flight.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	var succeeded, rejected int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSessionAlreadyActive):
			rejected++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, succeeded)
	s.Equal(callers-1, rejected)
	s.True(s.hasActive())
}
