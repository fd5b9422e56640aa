package profile

import (
	"context"
	"errors"
	"sort"

	"github.com/KirkDiggler/waterstone/internal/clients/identity"
	"github.com/KirkDiggler/waterstone/internal/clients/recordstore"
	"github.com/KirkDiggler/waterstone/internal/models"
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("profile")

// service implements the Service interface
type service struct {
	store          recordstore.Client
	identity       identity.Client
	staffThreshold int
}

// New creates a new profile service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RecordStore == nil {
		return nil, ErrNilRecordStore
	}
	if cfg.Identity == nil {
		return nil, ErrNilIdentity
	}

	threshold := cfg.StaffRankThreshold
	if threshold == 0 {
		threshold = DefaultStaffRankThreshold
	}

	return &service{
		store:          cfg.RecordStore,
		identity:       cfg.Identity,
		staffThreshold: threshold,
	}, nil
}

// GetProfile builds the profile of a Discord user. Unlinked users get a
// profile with placeholder values rather than an error.
func (s *service) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.DiscordID == "" {
		return nil, ErrMissingUser
	}

	profile := &models.Profile{
		RobloxUsername: notAvailable,
		Rank:           notAvailable,
		AccountStatus:  StatusNotLinked,
		RoleplayName:   notSet,
	}

	account, err := s.identity.GetUser(ctx, input.DiscordID)
	if err != nil {
		if identity.IsNotLinked(err) {
			return &GetProfileOutput{Profile: profile}, nil
		}
		return nil, err
	}

	profile.RobloxID = account.RobloxID
	if account.Username != "" {
		profile.RobloxUsername = account.Username
	}

	group, err := s.identity.GetPrimaryGroup(ctx, input.DiscordID)
	switch {
	case err == nil:
		if group.RoleName != "" {
			profile.Rank = group.RoleName
		}
		profile.RankNumber = group.Rank
	case errors.Is(err, identity.ErrNotInGroup):
	default:
		log.Warningf("failed to resolve group of %s: %v", input.DiscordID, err)
	}
	profile.IsStaff = profile.RankNumber >= s.staffThreshold

	var record models.Account
	found, err := s.store.Get(ctx, AccountsPath+"/"+account.RobloxID, &record)
	if err != nil {
		return nil, err
	}

	if !found {
		profile.AccountStatus = StatusLinked
		return &GetProfileOutput{Profile: profile}, nil
	}

	profile.AccountStatus = StatusActive
	if record.AccountStatus != "" {
		profile.AccountStatus = record.AccountStatus
	}
	if record.UserBlacklisted {
		profile.AccountStatus = StatusBlacklisted
	}
	if record.RoleplayName != "" {
		profile.RoleplayName = record.RoleplayName
	}

	return &GetProfileOutput{
		Profile: profile,
	}, nil
}

// GetActivity finds the account whose discord_id matches. It asks the store
// for an indexed match first and scans every account if the query fails.
func (s *service) GetActivity(ctx context.Context, input *GetActivityInput) (*GetActivityOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.DiscordID == "" {
		return nil, ErrMissingUser
	}

	accounts := map[string]*models.Account{}
	discordID := input.DiscordID
	found, err := s.store.Query(ctx, AccountsPath, &recordstore.Query{
		OrderBy: "discord_id",
		EqualTo: &discordID,
	}, &accounts)
	if err != nil {
		log.Debugf("indexed account query failed, scanning: %v", err)
		accounts = map[string]*models.Account{}
		found, err = s.store.Get(ctx, AccountsPath, &accounts)
		if err != nil {
			return nil, err
		}
		if !found || len(accounts) == 0 {
			return nil, ErrNoAccounts
		}
	}
	if !found {
		return nil, ErrActivityNotFound
	}

	keys := make([]string, 0, len(accounts))
	for key := range accounts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		account := accounts[key]
		if account == nil || account.DiscordID != input.DiscordID {
			continue
		}

		activity := &models.Activity{
			RoleplayName:  account.RoleplayName,
			TotalSessions: account.TotalSessions,
			TotalMinutes:  account.TotalMinutes,
			TotalMessages: account.TotalMessages,
		}
		if activity.RoleplayName == "" {
			activity.RoleplayName = unknownName
		}
		return &GetActivityOutput{Activity: activity}, nil
	}

	return nil, ErrActivityNotFound
}
