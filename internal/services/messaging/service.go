package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("messaging")

// service implements the Service interface
type service struct {
	content *Content

	// Random number generator for selecting random facts
	rand *rand.Rand

	mu          sync.Mutex
	statusIndex int
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	content := &Content{}
	seed := time.Now().UnixNano()
	if config != nil {
		if config.Content != nil {
			content = config.Content
		}
		if config.Seed != 0 {
			seed = config.Seed
		}
	}

	return &service{
		content: content,
		rand:    rand.New(rand.NewSource(seed)),
	}, nil
}

// GetRandomFact returns a random fact, falling back to the built-in facts
func (s *service) GetRandomFact(ctx context.Context, input *GetRandomFactInput) (*GetRandomFactOutput, error) {
	facts := s.content.Facts
	if len(facts) == 0 {
		facts = fallbackFacts
	}

	s.mu.Lock()
	selected := facts[s.rand.Intn(len(facts))]
	s.mu.Unlock()

	return &GetRandomFactOutput{
		Fact: selected,
	}, nil
}

// GetBotInfo returns the fields of the bot info card
func (s *service) GetBotInfo(ctx context.Context, input *GetBotInfoInput) (*GetBotInfoOutput, error) {
	fact, err := s.GetRandomFact(ctx, &GetRandomFactInput{})
	if err != nil {
		return nil, err
	}

	output := &GetBotInfoOutput{
		Developers: DefaultDevelopers,
		Location:   DefaultLocation,
		Fact:       fact.Fact,
	}
	if s.content.Developers != "" {
		output.Developers = s.content.Developers
	}
	if s.content.Location != "" {
		output.Location = s.content.Location
	}

	return output, nil
}

// GetPreset looks up a preset by name
func (s *service) GetPreset(ctx context.Context, input *GetPresetInput) (*GetPresetOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := strings.ToUpper(strings.TrimSpace(input.Name))
	if name == "" {
		return nil, ErrMissingPreset
	}

	preset, ok := s.content.Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}

	return &GetPresetOutput{
		Name:   name,
		Preset: preset,
	}, nil
}

// ListPresets returns every preset name in sorted order
func (s *service) ListPresets(ctx context.Context, input *ListPresetsInput) (*ListPresetsOutput, error) {
	names := make([]string, 0, len(s.content.Presets))
	for name := range s.content.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return &ListPresetsOutput{
		Names: names,
	}, nil
}

// NextStatus advances the rotation. The first status always shows the
// member count, the rest come from the content file or the defaults.
func (s *service) NextStatus(ctx context.Context, input *NextStatusInput) (*NextStatusOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	statuses := s.content.Statuses
	if len(statuses) == 0 {
		statuses = defaultStatuses
	}
	rotation := append([]string{fmt.Sprintf("Watching %d members", input.MemberCount)}, statuses...)

	s.mu.Lock()
	index := s.statusIndex % len(rotation)
	s.statusIndex = (index + 1) % len(rotation)
	s.mu.Unlock()

	return &NextStatusOutput{
		Status: rotation[index],
	}, nil
}
