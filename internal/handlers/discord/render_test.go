package discord

import (
	"testing"
	"time"

	"github.com/KirkDiggler/waterstone/internal/models"
	"github.com/KirkDiggler/waterstone/internal/services/diagnostics"
	"github.com/KirkDiggler/waterstone/internal/services/messaging"
	"github.com/KirkDiggler/waterstone/internal/services/timetable"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
)

type RenderTestSuite struct {
	suite.Suite
	session *models.Session
}

func (s *RenderTestSuite) SetupTest() {
	start := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	s.session = &models.Session{
		ID:        "session-1",
		GuildID:   "guild-1",
		Host:      &models.Member{ID: "host-1"},
		Title:     "Morning Session",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	}
}

func (s *RenderTestSuite) TestAnnouncementStarting() {
	embed := renderSessionAnnouncement(s.session, models.AnnouncementStarting)

	s.Equal("Waterstone Session Starting", embed.Title)
	s.Contains(embed.Description, "<@host-1>")
	s.Contains(embed.Description, "<t:1772460000:t>")
	s.Contains(embed.Description, "<t:1772467200:t>")
}

func (s *RenderTestSuite) TestAnnouncementCancelledUsesCancelTime() {
	s.session.CancelledAt = s.session.StartTime.Add(30 * time.Minute)

	embed := renderSessionAnnouncement(s.session, models.AnnouncementCancelled)

	s.Equal("Waterstone Session Cancelled", embed.Title)
	s.Contains(embed.Description, "<t:1772461800:t>")
	s.NotContains(embed.Description, "<t:1772467200:t>")
}

func (s *RenderTestSuite) TestAnnouncementEnded() {
	embed := renderSessionAnnouncement(s.session, models.AnnouncementEnded)
	s.Equal("Waterstone Session Ending", embed.Title)
}

func (s *RenderTestSuite) TestAnnouncementWithoutHost() {
	s.session.Host = nil

	embed := renderSessionAnnouncement(s.session, models.AnnouncementStarting)
	s.Contains(embed.Description, "**Host**: Unknown")
}

func (s *RenderTestSuite) TestSessionStatusEmpty() {
	embed := renderSessionStatus(nil, nil)

	s.Contains(embed.Description, "**Active Session**\nNone")
	s.Contains(embed.Description, "**Scheduled Sessions**\nNone")
}

func (s *RenderTestSuite) TestSessionStatusListsScheduled() {
	s.session.EventID = "event-9"

	embed := renderSessionStatus(nil, []*models.Session{s.session})
	s.Contains(embed.Description, "Morning Session by <@host-1>")
	s.Contains(embed.Description, "`event-9`")
}

func (s *RenderTestSuite) TestBoard() {
	board := &timetable.GetBoardOutput{
		Periods: []*timetable.BoardPeriod{
			{
				Period: models.PeriodOne,
				Cells: []*timetable.BoardCell{
					{
						YearGroup: models.YearSeven,
						Slot: &models.TimetableSlot{
							Period:    models.PeriodOne,
							YearGroup: models.YearSeven,
							Staff:     "<@staff-1>",
							Room:      "F07",
							Subject:   "Maths",
						},
					},
					{YearGroup: models.YearEight},
				},
			},
		},
		Claimed: 1,
	}

	embed := renderBoard(board)

	s.Equal(boardTitle, embed.Title)
	s.Equal("**Period 1**\nYear 7: <@staff-1> - **F07**\nYear 8: **Unclaimed**", embed.Description)
}

func (s *RenderTestSuite) TestSlotEdited() {
	output := &timetable.EditSlotOutput{
		Slot: &models.TimetableSlot{
			Period:    models.PeriodTwo,
			YearGroup: models.YearEight,
			Staff:     "<@staff-2>",
			Room:      "S12",
			Subject:   "Science",
		},
		Replaced: true,
	}

	embed := renderSlotEdited(output)

	s.Equal("Slot Updated", embed.Title)
	s.Contains(embed.Description, "Successfully updated **Year 8** during **Period 2** to <@staff-2>.")
}

func (s *RenderTestSuite) TestTicketPanelHasCreateButton() {
	send := renderTicketPanel()

	s.Require().Len(send.Embeds, 1)
	s.Equal(supportTitle, send.Embeds[0].Title)

	s.Require().Len(send.Components, 1)
	row, ok := send.Components[0].(discordgo.ActionsRow)
	s.Require().True(ok)
	button, ok := row.Components[0].(discordgo.Button)
	s.Require().True(ok)
	s.Equal(ButtonCreateTicket, button.CustomID)
}

func (s *RenderTestSuite) TestProfileTitleFollowsStaffFlag() {
	profile := &models.Profile{
		RobloxUsername: "builder",
		Rank:           "Teacher",
		AccountStatus:  "Active",
		RoleplayName:   "Mr Smith",
		IsStaff:        true,
	}

	embed := renderProfile(profile, "discorduser", "https://cdn.example.com/a.png")
	s.Equal("Staff Profile", embed.Title)
	s.Require().NotNil(embed.Thumbnail)

	profile.IsStaff = false
	embed = renderProfile(profile, "discorduser", "")
	s.Equal("Student Profile", embed.Title)
	s.Nil(embed.Thumbnail)
}

func (s *RenderTestSuite) TestDiagnostics() {
	output := &diagnostics.RunOutput{
		Results: []*diagnostics.Result{
			{Name: diagnostics.CheckBotStatus, Passed: true},
			{Name: diagnostics.CheckRedis, Passed: false, Error: "connection refused"},
		},
	}

	embed := renderDiagnostics(output)

	s.Equal("Bot Diagnoses", embed.Title)
	s.Contains(embed.Description, "**Bot Status**\n"+emojiTick)
	s.Contains(embed.Description, "**Redis Connection**\n"+emojiCross)
}

func (s *RenderTestSuite) TestPresetAllowsEveryoneOnlyWhenMentioned() {
	send := renderPreset(&messaging.Preset{
		Content: "@everyone Merry Christmas",
		Images:  []string{"https://example.com/1.png", "https://example.com/2.png"},
	})

	s.Len(send.Embeds, 2)
	s.Require().NotNil(send.AllowedMentions)
	s.Equal([]discordgo.AllowedMentionType{discordgo.AllowedMentionTypeEveryone}, send.AllowedMentions.Parse)

	send = renderPreset(&messaging.Preset{Content: "Have a good break"})
	s.Empty(send.Embeds)
	s.Nil(send.AllowedMentions)
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}
