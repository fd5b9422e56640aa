package timetable

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/waterstone/internal/models"
	timetableRepo "github.com/KirkDiggler/waterstone/internal/repositories/timetable"
	"github.com/KirkDiggler/waterstone/internal/repositories/timetable/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testGuildID = "guild-1"

type TimetableServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockRepository
	service  *service
	ctx      context.Context
}

func (s *TimetableServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = mocks.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	svc, err := New(&Config{
		Repository: s.mockRepo,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *TimetableServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTimetableServiceSuite(t *testing.T) {
	suite.Run(t, new(TimetableServiceTestSuite))
}

func (s *TimetableServiceTestSuite) TestNewRequiresConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)
}

func (s *TimetableServiceTestSuite) TestProcessClaimSuccess() {
	s.mockRepo.EXPECT().
		SaveSlot(gomock.Any(), &timetableRepo.SaveSlotInput{
			GuildID: testGuildID,
			Slot: &models.TimetableSlot{
				Period:    models.PeriodTwo,
				YearGroup: models.YearSeven,
				Staff:     "<@1>",
				Room:      "F07",
				Subject:   "Maths",
			},
		}).
		Return(nil)

	output, err := s.service.ProcessClaim(s.ctx, &ProcessClaimInput{
		GuildID:  testGuildID,
		Raw:      "p2\nMaths\ny7\nF07",
		Claimant: "<@1>",
	})
	s.Require().NoError(err)
	s.Equal(ClaimOutcomeClaimed, output.Outcome)
	s.Equal("Maths", output.Claim.Subject)

	available, err := s.service.IsSlotAvailable(s.ctx, &IsSlotAvailableInput{
		GuildID:   testGuildID,
		Period:    models.PeriodTwo,
		YearGroup: models.YearSeven,
	})
	s.Require().NoError(err)
	s.False(available.Available)
}

func (s *TimetableServiceTestSuite) TestProcessClaimParseFailure() {
	output, err := s.service.ProcessClaim(s.ctx, &ProcessClaimInput{
		GuildID:  testGuildID,
		Raw:      "Period 9\nMaths\nYear 7\nF07",
		Claimant: "<@1>",
	})
	s.Require().NoError(err)
	s.Equal(ClaimOutcomeParseFailure, output.Outcome)
	s.Nil(output.Claim)
	s.True(IsParseFailure(output.ParseError))
}

func (s *TimetableServiceTestSuite) TestProcessClaimUnavailableKeepsExistingClaim() {
	s.mockRepo.EXPECT().SaveSlot(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := s.service.ProcessClaim(s.ctx, &ProcessClaimInput{
		GuildID:  testGuildID,
		Raw:      "Period 1\nMaths\nYear 7\nF07",
		Claimant: "<@1>",
	})
	s.Require().NoError(err)

	output, err := s.service.ProcessClaim(s.ctx, &ProcessClaimInput{
		GuildID:  testGuildID,
		Raw:      "P1\nEnglish\nY7\nG02",
		Claimant: "<@2>",
	})
	s.Require().NoError(err)
	s.Equal(ClaimOutcomeUnavailable, output.Outcome)
	s.Equal("<@1>", output.Existing.Staff)

	board, err := s.service.GetBoard(s.ctx, &GetBoardInput{GuildID: testGuildID})
	s.Require().NoError(err)
	s.Equal(1, board.Claimed)
	slot := board.Periods[0].Cells[0].Slot
	s.Require().NotNil(slot)
	s.Equal("<@1>", slot.Staff)
	s.Equal("Maths", slot.Subject)
	s.Equal("F07", slot.Room)
}

func (s *TimetableServiceTestSuite) TestProcessClaimValidatesInput() {
	_, err := s.service.ProcessClaim(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.ProcessClaim(s.ctx, &ProcessClaimInput{Raw: "x", Claimant: "<@1>"})
	s.ErrorIs(err, ErrMissingGuild)

	_, err = s.service.ProcessClaim(s.ctx, &ProcessClaimInput{GuildID: testGuildID, Raw: "x"})
	s.ErrorIs(err, ErrNilClaimant)
}

func (s *TimetableServiceTestSuite) TestClaimsAreScopedPerGuild() {
	s.mockRepo.EXPECT().SaveSlot(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.service.ClaimSlot(s.ctx, &ClaimSlotInput{
		GuildID:   testGuildID,
		Period:    models.PeriodOne,
		YearGroup: models.YearSeven,
		Staff:     "<@1>",
	})
	s.Require().NoError(err)

	available, err := s.service.IsSlotAvailable(s.ctx, &IsSlotAvailableInput{
		GuildID:   "guild-2",
		Period:    models.PeriodOne,
		YearGroup: models.YearSeven,
	})
	s.Require().NoError(err)
	s.True(available.Available)
}

func (s *TimetableServiceTestSuite) TestClaimSlotOverwrites() {
	s.mockRepo.EXPECT().SaveSlot(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	for _, staff := range []string{"<@1>", "<@2>"} {
		_, err := s.service.ClaimSlot(s.ctx, &ClaimSlotInput{
			GuildID:   testGuildID,
			Period:    models.PeriodOne,
			YearGroup: models.YearSeven,
			Staff:     staff,
			Room:      "F07",
			Subject:   "Maths",
		})
		s.Require().NoError(err)
	}

	board, err := s.service.GetBoard(s.ctx, &GetBoardInput{GuildID: testGuildID})
	s.Require().NoError(err)
	s.Equal(1, board.Claimed)
	s.Equal("<@2>", board.Periods[0].Cells[0].Slot.Staff)
}

func (s *TimetableServiceTestSuite) TestClaimSlotNormalizesSlot() {
	s.mockRepo.EXPECT().
		SaveSlot(gomock.Any(), &timetableRepo.SaveSlotInput{
			GuildID: testGuildID,
			Slot: &models.TimetableSlot{
				Period:    models.PeriodThree,
				YearGroup: models.YearEight,
				Staff:     "<@1>",
				Room:      "S04",
				Subject:   "Science",
			},
		}).
		Return(nil)

	output, err := s.service.ClaimSlot(s.ctx, &ClaimSlotInput{
		GuildID:   testGuildID,
		Period:    "p3",
		YearGroup: "y8",
		Staff:     "<@1>",
		Room:      "S04",
		Subject:   "Science",
	})
	s.Require().NoError(err)
	s.Equal(models.PeriodThree, output.Slot.Period)
	s.Equal(models.YearEight, output.Slot.YearGroup)
}

func (s *TimetableServiceTestSuite) TestClaimSlotRejectsUnknownSlots() {
	cases := []struct {
		name      string
		period    string
		yearGroup string
		err       error
	}{
		{name: "period out of range", period: "Period 9", yearGroup: models.YearSeven, err: ErrInvalidPeriod},
		{name: "unknown year group", period: models.PeriodOne, yearGroup: "Year 11", err: ErrInvalidYearGroup},
		{name: "lesson during break", period: models.PeriodBreak, yearGroup: models.YearSeven, err: ErrUnknownSlot},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.ClaimSlot(s.ctx, &ClaimSlotInput{
				GuildID:   testGuildID,
				Period:    tc.period,
				YearGroup: tc.yearGroup,
				Staff:     "<@1>",
			})
			s.ErrorIs(err, tc.err)
		})
	}
}

func (s *TimetableServiceTestSuite) TestResetWaitsForInFlightMirrorWrite() {
	saving := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		s.mockRepo.EXPECT().
			SaveSlot(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, input *timetableRepo.SaveSlotInput) error {
				close(saving)
				<-release
				return nil
			}),
		s.mockRepo.EXPECT().
			ResetGuild(gomock.Any(), &timetableRepo.ResetGuildInput{GuildID: testGuildID}).
			Return(nil),
	)

	claimed := make(chan error, 1)
	go func() {
		_, err := s.service.ProcessClaim(s.ctx, &ProcessClaimInput{
			GuildID:  testGuildID,
			Raw:      "Period 1\nReflection",
			Claimant: "<@1>",
		})
		claimed <- err
	}()
	<-saving

	reset := make(chan error, 1)
	go func() {
		_, err := s.service.ResetTimetable(s.ctx, &ResetTimetableInput{GuildID: testGuildID})
		reset <- err
	}()

	select {
	case <-reset:
		s.Fail("reset completed while a claim was still being mirrored")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	s.Require().NoError(<-claimed)
	s.Require().NoError(<-reset)

	available, err := s.service.IsSlotAvailable(s.ctx, &IsSlotAvailableInput{
		GuildID:   testGuildID,
		Period:    models.PeriodOne,
		YearGroup: models.YearReflection,
	})
	s.Require().NoError(err)
	s.True(available.Available)
}

func (s *TimetableServiceTestSuite) TestResetSurvivesRestart() {
	mr := miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo, err := timetableRepo.NewRedis(&timetableRepo.Config{RedisClient: client})
	s.Require().NoError(err)

	svc, err := New(&Config{Repository: repo})
	s.Require().NoError(err)

	_, err = svc.ProcessClaim(s.ctx, &ProcessClaimInput{
		GuildID:  testGuildID,
		Raw:      "Period 1\nReflection",
		Claimant: "<@1>",
	})
	s.Require().NoError(err)
	_, err = svc.ResetTimetable(s.ctx, &ResetTimetableInput{GuildID: testGuildID})
	s.Require().NoError(err)

	restarted, err := New(&Config{Repository: repo})
	s.Require().NoError(err)
	restored, err := restarted.Restore(s.ctx, &RestoreInput{})
	s.Require().NoError(err)
	s.Zero(restored.Slots)

	available, err := restarted.IsSlotAvailable(s.ctx, &IsSlotAvailableInput{
		GuildID:   testGuildID,
		Period:    models.PeriodOne,
		YearGroup: models.YearReflection,
	})
	s.Require().NoError(err)
	s.True(available.Available)
}

func (s *TimetableServiceTestSuite) TestMirrorFailureDoesNotFailClaim() {
	s.mockRepo.EXPECT().SaveSlot(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	output, err := s.service.ProcessClaim(s.ctx, &ProcessClaimInput{
		GuildID:  testGuildID,
		Raw:      "Period 1\nReflection",
		Claimant: "<@1>",
	})
	s.Require().NoError(err)
	s.Equal(ClaimOutcomeClaimed, output.Outcome)
}

func (s *TimetableServiceTestSuite) TestUnclaimSlot() {
	output, err := s.service.UnclaimSlot(s.ctx, &UnclaimSlotInput{
		GuildID:   testGuildID,
		Period:    models.PeriodOne,
		YearGroup: models.YearSeven,
	})
	s.Require().NoError(err)
	s.False(output.Removed)

	s.mockRepo.EXPECT().SaveSlot(gomock.Any(), gomock.Any()).Return(nil)
	s.mockRepo.EXPECT().
		DeleteSlot(gomock.Any(), &timetableRepo.DeleteSlotInput{
			GuildID:   testGuildID,
			Period:    models.PeriodOne,
			YearGroup: models.YearSeven,
		}).
		Return(nil)

	_, err = s.service.ClaimSlot(s.ctx, &ClaimSlotInput{
		GuildID:   testGuildID,
		Period:    models.PeriodOne,
		YearGroup: models.YearSeven,
		Staff:     "<@1>",
	})
	s.Require().NoError(err)

	output, err = s.service.UnclaimSlot(s.ctx, &UnclaimSlotInput{
		GuildID:   testGuildID,
		Period:    models.PeriodOne,
		YearGroup: models.YearSeven,
	})
	s.Require().NoError(err)
	s.True(output.Removed)
}

func (s *TimetableServiceTestSuite) TestResetTimetableFreesEverySlot() {
	s.mockRepo.EXPECT().SaveSlot(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	s.mockRepo.EXPECT().ResetGuild(gomock.Any(), &timetableRepo.ResetGuildInput{GuildID: testGuildID}).Return(nil)

	claims := []string{
		"Period 1\nReflection",
		"Break\nPastoral",
		"P4\nArt\nY8\nA1",
	}
	for _, raw := range claims {
		output, err := s.service.ProcessClaim(s.ctx, &ProcessClaimInput{
			GuildID:  testGuildID,
			Raw:      raw,
			Claimant: "<@1>",
		})
		s.Require().NoError(err)
		s.Require().Equal(ClaimOutcomeClaimed, output.Outcome)
	}

	reset, err := s.service.ResetTimetable(s.ctx, &ResetTimetableInput{GuildID: testGuildID})
	s.Require().NoError(err)
	s.Equal(3, reset.Cleared)

	for _, pair := range [][2]string{
		{models.PeriodOne, models.YearReflection},
		{models.PeriodBreak, models.YearPastoral},
		{models.PeriodFour, models.YearEight},
	} {
		available, err := s.service.IsSlotAvailable(s.ctx, &IsSlotAvailableInput{
			GuildID:   testGuildID,
			Period:    pair[0],
			YearGroup: pair[1],
		})
		s.Require().NoError(err)
		s.True(available.Available, pair)
	}
}

func (s *TimetableServiceTestSuite) TestEditSlot() {
	s.mockRepo.EXPECT().SaveSlot(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	output, err := s.service.EditSlot(s.ctx, &EditSlotInput{
		GuildID:   testGuildID,
		Period:    "p3",
		YearGroup: "reception",
		Staff:     "<@1>",
		Room:      "ignored",
	})
	s.Require().NoError(err)
	s.False(output.Replaced)
	s.Equal(models.PeriodThree, output.Slot.Period)
	s.Equal("G01", output.Slot.Room)
	s.Equal(models.YearReception, output.Slot.Subject)

	output, err = s.service.EditSlot(s.ctx, &EditSlotInput{
		GuildID:   testGuildID,
		Period:    "Period 3",
		YearGroup: "Reception",
		Staff:     "<@2>",
	})
	s.Require().NoError(err)
	s.True(output.Replaced)
	s.Equal("<@2>", output.Slot.Staff)
}

func (s *TimetableServiceTestSuite) TestEditSlotValidation() {
	tests := []struct {
		name     string
		input    *EditSlotInput
		expected error
	}{
		{
			name:     "bad period",
			input:    &EditSlotInput{GuildID: testGuildID, Period: "Period 7", YearGroup: "Year 7", Staff: "<@1>", Room: "F07"},
			expected: ErrInvalidPeriod,
		},
		{
			name:     "bad year group",
			input:    &EditSlotInput{GuildID: testGuildID, Period: "Period 1", YearGroup: "Year 11", Staff: "<@1>", Room: "F07"},
			expected: ErrInvalidYearGroup,
		},
		{
			name:     "slot outside layout",
			input:    &EditSlotInput{GuildID: testGuildID, Period: "Lunch", YearGroup: "Year 7", Staff: "<@1>", Room: "F07"},
			expected: ErrUnknownSlot,
		},
		{
			name:     "lesson without room",
			input:    &EditSlotInput{GuildID: testGuildID, Period: "Period 1", YearGroup: "Year 7", Staff: "<@1>"},
			expected: ErrRoomRequired,
		},
		{
			name:     "missing staff",
			input:    &EditSlotInput{GuildID: testGuildID, Period: "Period 1", YearGroup: "Year 7", Room: "F07"},
			expected: ErrNilClaimant,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := s.service.EditSlot(s.ctx, tc.input)
			s.ErrorIs(err, tc.expected)
		})
	}
}

func (s *TimetableServiceTestSuite) TestGetBoardOrder() {
	board, err := s.service.GetBoard(s.ctx, &GetBoardInput{GuildID: testGuildID})
	s.Require().NoError(err)
	s.Zero(board.Claimed)

	var periods []string
	for _, p := range board.Periods {
		periods = append(periods, p.Period)
	}
	s.Equal([]string{
		models.PeriodOne,
		models.PeriodTwo,
		models.PeriodBreak,
		models.PeriodThree,
		models.PeriodLunch,
		models.PeriodFour,
	}, periods)
	s.Equal(models.YearSeven, board.Periods[0].Cells[0].YearGroup)
	s.Equal(models.YearReflection, board.Periods[2].Cells[0].YearGroup)
}

func (s *TimetableServiceTestSuite) TestBoardMessage() {
	s.mockRepo.EXPECT().
		SaveBoardMessage(gomock.Any(), &timetableRepo.SaveBoardMessageInput{GuildID: testGuildID, MessageID: "msg-1"}).
		Return(nil)

	_, err := s.service.SetBoardMessage(s.ctx, &SetBoardMessageInput{GuildID: testGuildID, MessageID: "msg-1"})
	s.Require().NoError(err)

	output, err := s.service.GetBoardMessage(s.ctx, &GetBoardMessageInput{GuildID: testGuildID})
	s.Require().NoError(err)
	s.Equal("msg-1", output.MessageID)
}

func (s *TimetableServiceTestSuite) TestRestore() {
	s.mockRepo.EXPECT().
		ListGuilds(gomock.Any(), gomock.Any()).
		Return(&timetableRepo.ListGuildsOutput{GuildIDs: []string{testGuildID}}, nil)
	s.mockRepo.EXPECT().
		ListSlots(gomock.Any(), &timetableRepo.ListSlotsInput{GuildID: testGuildID}).
		Return(&timetableRepo.ListSlotsOutput{Slots: []*models.TimetableSlot{
			{Period: models.PeriodOne, YearGroup: models.YearSeven, Staff: "<@1>", Room: "F07", Subject: "Maths"},
			{Period: models.PeriodBreak, YearGroup: models.YearSeven, Staff: "<@1>"},
		}}, nil)
	s.mockRepo.EXPECT().
		GetBoardMessage(gomock.Any(), &timetableRepo.GetBoardMessageInput{GuildID: testGuildID}).
		Return(&timetableRepo.GetBoardMessageOutput{MessageID: "msg-9"}, nil)

	output, err := s.service.Restore(s.ctx, &RestoreInput{})
	s.Require().NoError(err)
	s.Equal(1, output.Guilds)
	s.Equal(1, output.Slots)

	available, err := s.service.IsSlotAvailable(s.ctx, &IsSlotAvailableInput{
		GuildID:   testGuildID,
		Period:    models.PeriodOne,
		YearGroup: models.YearSeven,
	})
	s.Require().NoError(err)
	s.False(available.Available)

	board, err := s.service.GetBoardMessage(s.ctx, &GetBoardMessageInput{GuildID: testGuildID})
	s.Require().NoError(err)
	s.Equal("msg-9", board.MessageID)
}

func (s *TimetableServiceTestSuite) TestMemoryOnlyService() {
	svc, err := New(&Config{})
	s.Require().NoError(err)

	_, err = svc.ClaimSlot(s.ctx, &ClaimSlotInput{
		GuildID:   testGuildID,
		Period:    models.PeriodOne,
		YearGroup: models.YearSeven,
		Staff:     "<@1>",
	})
	s.Require().NoError(err)

	restored, err := svc.Restore(s.ctx, &RestoreInput{})
	s.Require().NoError(err)
	s.Zero(restored.Slots)
}
