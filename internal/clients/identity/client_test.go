package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	mux    *http.ServeMux
	server *httptest.Server
	client *client
	ctx    context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.ctx = context.Background()

	c, err := New(&Config{
		APIKey:    "api-key",
		GuildID:   "guild-1",
		GroupID:   "42",
		BaseURL:   s.server.URL + "/v4",
		UsersURL:  s.server.URL + "/users",
		GroupsURL: s.server.URL + "/groups",
	})
	s.Require().NoError(err)
	s.client = c
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) handleLink(discordID, body string) {
	s.mux.HandleFunc("/v4/public/guilds/guild-1/discord-to-roblox/"+discordID, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(body))
	})
}

func (s *ClientTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrMissingGuild)
}

func (s *ClientTestSuite) TestGetUserResolved() {
	s.handleLink("1", `{
		"robloxID": "900",
		"resolved": {
			"roblox": {
				"name": "MrSmith",
				"displayName": "Mr Smith",
				"groups": [
					{"group": {"id": 7, "name": "Other"}, "role": {"name": "Member", "rank": 1}},
					{"group": {"id": 42, "name": "Waterstone"}, "role": {"name": "Teacher", "rank": 30}}
				]
			}
		}
	}`)

	account, err := s.client.GetUser(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal("900", account.RobloxID)
	s.Equal("MrSmith", account.Username)
	s.Equal("Mr Smith", account.DisplayName)
	s.Len(account.Groups, 2)

	group, err := s.client.GetPrimaryGroup(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal("Waterstone", group.GroupName)
	s.Equal(30, group.Rank)

	rank, err := s.client.GetRank(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal("Teacher", rank)
}

func (s *ClientTestSuite) TestGetUserFallsBackToRoblox() {
	s.handleLink("2", `{"robloxID": "901", "resolved": {}}`)
	s.mux.HandleFunc("/users/v1/users/901", func(w http.ResponseWriter, r *http.Request) {
		s.Empty(r.Header.Get("Authorization"))
		w.Write([]byte(`{"name": "Pupil", "displayName": "Pupil One"}`))
	})
	s.mux.HandleFunc("/groups/v1/users/901/groups/roles", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"group": {"id": 42, "name": "Waterstone"}, "role": {"name": "Student", "rank": 5}}]}`))
	})

	account, err := s.client.GetUser(s.ctx, "2")
	s.Require().NoError(err)
	s.Equal("Pupil", account.Username)
	s.Require().Len(account.Groups, 1)
	s.Equal("42", account.Groups[0].GroupID)

	username, err := s.client.GetUsername(s.ctx, "2")
	s.Require().NoError(err)
	s.Equal("Pupil", username)
}

func (s *ClientTestSuite) TestFallbackFailureKeepsLink() {
	s.handleLink("3", `{"robloxID": "902", "robloxUsername": "Raw", "resolved": {}}`)

	account, err := s.client.GetUser(s.ctx, "3")
	s.Require().NoError(err)
	s.Equal("902", account.RobloxID)
	s.Equal("Raw", account.Username)
	s.Empty(account.Groups)

	_, err = s.client.GetPrimaryGroup(s.ctx, "3")
	s.ErrorIs(err, ErrNotInGroup)
}

func (s *ClientTestSuite) TestGetUserNotLinked() {
	_, err := s.client.GetUser(s.ctx, "404")
	s.ErrorIs(err, ErrNotLinked)
	s.True(IsNotLinked(err))

	_, err = s.client.GetRank(s.ctx, "404")
	s.ErrorIs(err, ErrNotLinked)
}

func (s *ClientTestSuite) TestGetUserUnexpectedStatus() {
	s.mux.HandleFunc("/v4/public/guilds/guild-1/discord-to-roblox/5", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := s.client.GetUser(s.ctx, "5")
	var statusErr *StatusError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusTooManyRequests, statusErr.StatusCode)
}

func (s *ClientTestSuite) TestUpdateUser() {
	s.mux.HandleFunc("/v4/public/guilds/guild-1/update-user/1", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPatch, r.Method)
		s.Equal("api-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})

	s.NoError(s.client.UpdateUser(s.ctx, "1"))
	s.ErrorIs(s.client.UpdateUser(s.ctx, "2"), ErrNotLinked)
}
