package messaging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

const testContent = `
facts:
  - Waterstone opened in 2023.
presets:
  christmas:
    content: "@everyone"
    images:
      - https://example.com/one.png
      - https://example.com/two.png
  Summer:
    content: Have a good break
statuses:
  - Marking homework
developers: "@someone"
`

type MessagingServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service Service
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	content, err := ParseContent([]byte(testContent))
	s.Require().NoError(err)

	svc, err := NewService(&ServiceConfig{Content: content, Seed: 1})
	s.Require().NoError(err)
	s.service = svc
}

func (s *MessagingServiceTestSuite) TestRandomFactFromContent() {
	output, err := s.service.GetRandomFact(s.ctx, &GetRandomFactInput{})
	s.Require().NoError(err)
	s.Equal("Waterstone opened in 2023.", output.Fact)
}

func (s *MessagingServiceTestSuite) TestRandomFactFallback() {
	svc, err := NewService(&ServiceConfig{Seed: 1})
	s.Require().NoError(err)

	output, err := svc.GetRandomFact(s.ctx, &GetRandomFactInput{})
	s.Require().NoError(err)
	s.Contains(fallbackFacts, output.Fact)
}

func (s *MessagingServiceTestSuite) TestBotInfo() {
	output, err := s.service.GetBotInfo(s.ctx, &GetBotInfoInput{})
	s.Require().NoError(err)
	s.Equal("@someone", output.Developers)
	s.Equal(DefaultLocation, output.Location)
	s.Equal("Waterstone opened in 2023.", output.Fact)
}

func (s *MessagingServiceTestSuite) TestGetPresetIsCaseInsensitive() {
	output, err := s.service.GetPreset(s.ctx, &GetPresetInput{Name: "Christmas"})
	s.Require().NoError(err)
	s.Equal("CHRISTMAS", output.Name)
	s.Equal("@everyone", output.Preset.Content)
	s.Len(output.Preset.Images, 2)
}

func (s *MessagingServiceTestSuite) TestGetPresetUnknown() {
	_, err := s.service.GetPreset(s.ctx, &GetPresetInput{Name: "easter"})
	s.ErrorIs(err, ErrUnknownPreset)

	_, err = s.service.GetPreset(s.ctx, &GetPresetInput{Name: " "})
	s.ErrorIs(err, ErrMissingPreset)
}

func (s *MessagingServiceTestSuite) TestListPresetsSorted() {
	output, err := s.service.ListPresets(s.ctx, &ListPresetsInput{})
	s.Require().NoError(err)
	s.Equal([]string{"CHRISTMAS", "SUMMER"}, output.Names)
}

func (s *MessagingServiceTestSuite) TestStatusRotation() {
	var got []string
	for i := 0; i < 3; i++ {
		output, err := s.service.NextStatus(s.ctx, &NextStatusInput{MemberCount: 40 + i})
		s.Require().NoError(err)
		got = append(got, output.Status)
	}

	s.Equal([]string{"Watching 40 members", "Marking homework", "Watching 42 members"}, got)
}

func (s *MessagingServiceTestSuite) TestStatusRotationDefaults() {
	svc, err := NewService(nil)
	s.Require().NoError(err)

	var got []string
	for i := 0; i < 4; i++ {
		output, err := svc.NextStatus(s.ctx, &NextStatusInput{MemberCount: 7})
		s.Require().NoError(err)
		got = append(got, output.Status)
	}

	s.Equal([]string{
		"Watching 7 members",
		"Watching over Waterstone",
		"Answering your tickets",
		"Watching 7 members",
	}, got)
}

func (s *MessagingServiceTestSuite) TestLoadContent() {
	dir := s.T().TempDir()

	content, err := LoadContent(filepath.Join(dir, "missing.yaml"))
	s.Require().NoError(err)
	s.Empty(content.Facts)

	path := filepath.Join(dir, "content.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(testContent), 0o600))

	content, err = LoadContent(path)
	s.Require().NoError(err)
	s.Contains(content.Presets, "SUMMER")

	s.Require().NoError(os.WriteFile(path, []byte("facts: [unterminated"), 0o600))
	_, err = LoadContent(path)
	s.Error(err)
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}
