package ticket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/waterstone/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	ticketKeyPrefix    = "ticket:"
	ownerKeyPrefix     = "ticket_owner:"
	blacklistKeyPrefix = "ticket_blacklist:"
)

// ErrTicketNotFound is returned when a ticket is not found
var ErrTicketNotFound = errors.New("ticket not found")

// Config holds configuration for the Redis ticket repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ticket repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func ownerKey(guildID, ownerID string) string {
	return fmt.Sprintf("%s%s:%s", ownerKeyPrefix, guildID, ownerID)
}

// SaveTicket persists a ticket to Redis
func (r *redisRepository) SaveTicket(ctx context.Context, input *SaveTicketInput) error {
	if input == nil || input.Ticket == nil {
		return errors.New("input and ticket cannot be nil")
	}

	ticket := input.Ticket
	if ticket.ChannelID == "" {
		return errors.New("ticket channel ID cannot be empty")
	}

	ticketJSON, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("failed to marshal ticket: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, ticketKeyPrefix+ticket.ChannelID, ticketJSON, 0)
	if ticket.OwnerID != "" {
		pipe.Set(ctx, ownerKey(ticket.GuildID, ticket.OwnerID), ticket.ChannelID, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return nil
}

// GetTicket retrieves a ticket by channel ID
func (r *redisRepository) GetTicket(ctx context.Context, input *GetTicketInput) (*models.Ticket, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	ticketJSON, err := r.client.Get(ctx, ticketKeyPrefix+input.ChannelID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	var ticket models.Ticket
	if err := json.Unmarshal([]byte(ticketJSON), &ticket); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ticket: %w", err)
	}

	return &ticket, nil
}

// GetOpenTicket follows the owner index to the owner's ticket. A stale index
// entry is treated as no ticket.
func (r *redisRepository) GetOpenTicket(ctx context.Context, input *GetOpenTicketInput) (*models.Ticket, error) {
	if input == nil || input.GuildID == "" || input.OwnerID == "" {
		return nil, errors.New("guild ID and owner ID cannot be empty")
	}

	channelID, err := r.client.Get(ctx, ownerKey(input.GuildID, input.OwnerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get owner ticket: %w", err)
	}

	return r.GetTicket(ctx, &GetTicketInput{
		ChannelID: channelID,
	})
}

// DeleteTicket removes a ticket and, if it still points at it, the owner index
func (r *redisRepository) DeleteTicket(ctx context.Context, input *DeleteTicketInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	ticket, err := r.GetTicket(ctx, &GetTicketInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, ticketKeyPrefix+ticket.ChannelID)
	if ticket.OwnerID != "" {
		key := ownerKey(ticket.GuildID, ticket.OwnerID)
		current, err := r.client.Get(ctx, key).Result()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("failed to get owner ticket: %w", err)
		}
		if current == ticket.ChannelID {
			pipe.Del(ctx, key)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	return nil
}

// SetBlacklisted adds or removes a user from the guild blacklist set
func (r *redisRepository) SetBlacklisted(ctx context.Context, input *SetBlacklistedInput) (*SetBlacklistedOutput, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("guild ID and user ID cannot be empty")
	}

	key := blacklistKeyPrefix + input.GuildID
	var (
		changed int64
		err     error
	)
	if input.Blacklisted {
		changed, err = r.client.SAdd(ctx, key, input.UserID).Result()
	} else {
		changed, err = r.client.SRem(ctx, key, input.UserID).Result()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update blacklist: %w", err)
	}

	return &SetBlacklistedOutput{
		Changed: changed > 0,
	}, nil
}

// IsBlacklisted checks the guild blacklist set
func (r *redisRepository) IsBlacklisted(ctx context.Context, input *IsBlacklistedInput) (*IsBlacklistedOutput, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("guild ID and user ID cannot be empty")
	}

	blacklisted, err := r.client.SIsMember(ctx, blacklistKeyPrefix+input.GuildID, input.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check blacklist: %w", err)
	}

	return &IsBlacklistedOutput{
		Blacklisted: blacklisted,
	}, nil
}
