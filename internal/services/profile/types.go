package profile

import (
	"github.com/KirkDiggler/waterstone/internal/clients/identity"
	"github.com/KirkDiggler/waterstone/internal/clients/recordstore"
	"github.com/KirkDiggler/waterstone/internal/models"
)

const (
	// DefaultStaffRankThreshold is the lowest group rank shown as staff
	DefaultStaffRankThreshold = 25

	// AccountsPath is where account records live in the record store
	AccountsPath = "accounts"

	StatusNotLinked   = "Not Linked"
	StatusLinked      = "Linked"
	StatusActive      = "Active"
	StatusBlacklisted = "Blacklisted"

	notAvailable = "N/A"
	notSet       = "Not Set"
	unknownName  = "Unknown"
)

// Config holds the dependencies of the profile service
type Config struct {
	RecordStore recordstore.Client
	Identity    identity.Client

	// StaffRankThreshold defaults to DefaultStaffRankThreshold
	StaffRankThreshold int
}

type GetProfileInput struct {
	DiscordID string
}

type GetProfileOutput struct {
	Profile *models.Profile
}

type GetActivityInput struct {
	DiscordID string
}

type GetActivityOutput struct {
	Activity *models.Activity
}
