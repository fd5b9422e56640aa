package messaging

// Default bot info fields used when the content file leaves them empty
const (
	DefaultDevelopers = "[@eezaxr](https://x.com/eezaxr)"
	DefaultLocation   = "[Frankfurt, Germany](https://cloud.google.com/about/locations)"
)

// fallbackFacts are served when the content file has no facts
var fallbackFacts = []string{
	"A group of flamingos is called a 'flamboyance'.",
	"Octopuses have three hearts.",
	"Honey never spoils. Archaeologists have found pots of honey in ancient Egyptian tombs that are still edible.",
}

// defaultStatuses follow the member count status in the rotation
var defaultStatuses = []string{
	"Watching over Waterstone",
	"Answering your tickets",
}

// Content is the YAML document holding the bot's editable text
type Content struct {
	// Facts are shown by the bot info card
	Facts []string `yaml:"facts"`

	// Presets are the messages the send command can post, keyed by name
	Presets map[string]*Preset `yaml:"presets"`

	// Statuses rotate after the member count status
	Statuses []string `yaml:"statuses"`

	// Developers is the developers field of the bot info card
	Developers string `yaml:"developers"`

	// Location is the server location field of the bot info card
	Location string `yaml:"location"`
}

// Preset is a message posted by the send command
type Preset struct {
	// Content is the plain message text
	Content string `yaml:"content"`

	// Images are posted as one image embed each
	Images []string `yaml:"images"`
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Content is the loaded content file, nil uses the built-in defaults
	Content *Content

	// Seed fixes the random source, zero seeds from the current time
	Seed int64
}

type GetRandomFactInput struct{}

type GetRandomFactOutput struct {
	Fact string
}

type GetBotInfoInput struct{}

type GetBotInfoOutput struct {
	Developers string
	Location   string
	Fact       string
}

type GetPresetInput struct {
	// Name is matched case-insensitively
	Name string
}

type GetPresetOutput struct {
	Name   string
	Preset *Preset
}

type ListPresetsInput struct{}

type ListPresetsOutput struct {
	Names []string
}

type NextStatusInput struct {
	// MemberCount is shown in the first status of the rotation
	MemberCount int
}

type NextStatusOutput struct {
	Status string
}
