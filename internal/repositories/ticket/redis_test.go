package ticket

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/waterstone/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newTicket(channelID, ownerID string) *models.Ticket {
	return &models.Ticket{
		ID:        "ticket-" + channelID,
		GuildID:   "guild-1",
		ChannelID: channelID,
		OwnerID:   ownerID,
		OwnerName: "student",
		Reason:    "Lost my timetable",
		OpenedAt:  s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetTicket() {
	ticket := s.newTicket("channel-1", "user-1")

	err := s.repo.SaveTicket(s.ctx, &SaveTicketInput{Ticket: ticket})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetTicket(s.ctx, &GetTicketInput{ChannelID: "channel-1"})
	s.Require().NoError(err)
	s.Equal(ticket.ID, retrieved.ID)
	s.Equal(ticket.Reason, retrieved.Reason)
	s.True(ticket.OpenedAt.Equal(retrieved.OpenedAt))

	open, err := s.repo.GetOpenTicket(s.ctx, &GetOpenTicketInput{GuildID: "guild-1", OwnerID: "user-1"})
	s.Require().NoError(err)
	s.Equal("channel-1", open.ChannelID)
}

func (s *RedisRepositoryTestSuite) TestGetMissingTicket() {
	_, err := s.repo.GetTicket(s.ctx, &GetTicketInput{ChannelID: "nope"})
	s.Equal(ErrTicketNotFound, err)

	_, err = s.repo.GetOpenTicket(s.ctx, &GetOpenTicketInput{GuildID: "guild-1", OwnerID: "user-1"})
	s.Equal(ErrTicketNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestDeleteTicket() {
	err := s.repo.SaveTicket(s.ctx, &SaveTicketInput{Ticket: s.newTicket("channel-1", "user-1")})
	s.Require().NoError(err)

	err = s.repo.DeleteTicket(s.ctx, &DeleteTicketInput{ChannelID: "channel-1"})
	s.Require().NoError(err)

	_, err = s.repo.GetTicket(s.ctx, &GetTicketInput{ChannelID: "channel-1"})
	s.Equal(ErrTicketNotFound, err)

	_, err = s.repo.GetOpenTicket(s.ctx, &GetOpenTicketInput{GuildID: "guild-1", OwnerID: "user-1"})
	s.Equal(ErrTicketNotFound, err)

	err = s.repo.DeleteTicket(s.ctx, &DeleteTicketInput{ChannelID: "channel-1"})
	s.Equal(ErrTicketNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestDeleteKeepsNewerOwnerIndex() {
	err := s.repo.SaveTicket(s.ctx, &SaveTicketInput{Ticket: s.newTicket("channel-1", "user-1")})
	s.Require().NoError(err)
	err = s.repo.SaveTicket(s.ctx, &SaveTicketInput{Ticket: s.newTicket("channel-2", "user-1")})
	s.Require().NoError(err)

	err = s.repo.DeleteTicket(s.ctx, &DeleteTicketInput{ChannelID: "channel-1"})
	s.Require().NoError(err)

	open, err := s.repo.GetOpenTicket(s.ctx, &GetOpenTicketInput{GuildID: "guild-1", OwnerID: "user-1"})
	s.Require().NoError(err)
	s.Equal("channel-2", open.ChannelID)
}

func (s *RedisRepositoryTestSuite) TestBlacklist() {
	status, err := s.repo.IsBlacklisted(s.ctx, &IsBlacklistedInput{GuildID: "guild-1", UserID: "user-1"})
	s.Require().NoError(err)
	s.False(status.Blacklisted)

	changed, err := s.repo.SetBlacklisted(s.ctx, &SetBlacklistedInput{GuildID: "guild-1", UserID: "user-1", Blacklisted: true})
	s.Require().NoError(err)
	s.True(changed.Changed)

	changed, err = s.repo.SetBlacklisted(s.ctx, &SetBlacklistedInput{GuildID: "guild-1", UserID: "user-1", Blacklisted: true})
	s.Require().NoError(err)
	s.False(changed.Changed)

	status, err = s.repo.IsBlacklisted(s.ctx, &IsBlacklistedInput{GuildID: "guild-1", UserID: "user-1"})
	s.Require().NoError(err)
	s.True(status.Blacklisted)

	status, err = s.repo.IsBlacklisted(s.ctx, &IsBlacklistedInput{GuildID: "guild-2", UserID: "user-1"})
	s.Require().NoError(err)
	s.False(status.Blacklisted)

	changed, err = s.repo.SetBlacklisted(s.ctx, &SetBlacklistedInput{GuildID: "guild-1", UserID: "user-1"})
	s.Require().NoError(err)
	s.True(changed.Changed)

	status, err = s.repo.IsBlacklisted(s.ctx, &IsBlacklistedInput{GuildID: "guild-1", UserID: "user-1"})
	s.Require().NoError(err)
	s.False(status.Blacklisted)
}
