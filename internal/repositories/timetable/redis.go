package timetable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/waterstone/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	slotsKeyPrefix = "timetable:slots:"
	boardKeyPrefix = "timetable:board:"
	guildsKey      = "timetable:guilds"
)

// Config holds configuration for the Redis timetable repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed timetable repository
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

// SaveSlot stores a slot in the guild's hash, keyed by slot key
func (r *redisRepository) SaveSlot(ctx context.Context, input *SaveSlotInput) error {
	if input == nil || input.Slot == nil {
		return errors.New("input and slot cannot be nil")
	}
	if input.GuildID == "" {
		return errors.New("guild ID cannot be empty")
	}

	slotJSON, err := json.Marshal(input.Slot)
	if err != nil {
		return fmt.Errorf("failed to marshal slot: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, slotsKeyPrefix+input.GuildID, input.Slot.Key(), slotJSON)
	pipe.SAdd(ctx, guildsKey, input.GuildID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save slot: %w", err)
	}

	return nil
}

// DeleteSlot removes a slot from the guild's hash
func (r *redisRepository) DeleteSlot(ctx context.Context, input *DeleteSlotInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	key := models.SlotKey(input.Period, input.YearGroup)
	if err := r.client.HDel(ctx, slotsKeyPrefix+input.GuildID, key).Err(); err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}

	return nil
}

// ResetGuild drops the guild's slot hash
func (r *redisRepository) ResetGuild(ctx context.Context, input *ResetGuildInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	if err := r.client.Del(ctx, slotsKeyPrefix+input.GuildID).Err(); err != nil {
		return fmt.Errorf("failed to reset timetable: %w", err)
	}

	return nil
}

// ListSlots returns the guild's slots ordered by slot key
func (r *redisRepository) ListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	values, err := r.client.HGetAll(ctx, slotsKeyPrefix+input.GuildID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	slots := make([]*models.TimetableSlot, 0, len(keys))
	for _, key := range keys {
		var slot models.TimetableSlot
		if err := json.Unmarshal([]byte(values[key]), &slot); err != nil {
			return nil, fmt.Errorf("failed to unmarshal slot %s: %w", key, err)
		}
		slots = append(slots, &slot)
	}

	return &ListSlotsOutput{
		Slots: slots,
	}, nil
}

// ListGuilds returns every guild that has saved a slot or board message
func (r *redisRepository) ListGuilds(ctx context.Context, input *ListGuildsInput) (*ListGuildsOutput, error) {
	guildIDs, err := r.client.SMembers(ctx, guildsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list guilds: %w", err)
	}
	sort.Strings(guildIDs)

	return &ListGuildsOutput{
		GuildIDs: guildIDs,
	}, nil
}

// SaveBoardMessage stores the board message ID, clearing it when empty
func (r *redisRepository) SaveBoardMessage(ctx context.Context, input *SaveBoardMessageInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	if input.MessageID == "" {
		pipe.Del(ctx, boardKeyPrefix+input.GuildID)
	} else {
		pipe.Set(ctx, boardKeyPrefix+input.GuildID, input.MessageID, 0)
	}
	pipe.SAdd(ctx, guildsKey, input.GuildID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save board message: %w", err)
	}

	return nil
}

// GetBoardMessage returns the stored board message ID
func (r *redisRepository) GetBoardMessage(ctx context.Context, input *GetBoardMessageInput) (*GetBoardMessageOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	messageID, err := r.client.Get(ctx, boardKeyPrefix+input.GuildID).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetBoardMessageOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get board message: %w", err)
	}

	return &GetBoardMessageOutput{
		MessageID: messageID,
	}, nil
}
