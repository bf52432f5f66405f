package inventory

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
	redisclient "github.com/KirkDiggler/echosheet/internal/redis"
)

const inventoryKeyPrefix = "inventory:character:"

// GetKey returns the Redis key for a character's inventory
func GetKey(characterID string) string {
	return inventoryKeyPrefix + characterID
}

// RedisConfig contains configuration for the Redis inventory repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a new Redis-backed inventory repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.CharacterID)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("inventory for character %s not found", input.CharacterID)
		}
		return nil, errors.Wrapf(err, "failed to get inventory for character %s", input.CharacterID)
	}

	var inv echosheet.Inventory
	if err := json.Unmarshal([]byte(result), &inv); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal inventory")
	}

	return &GetOutput{Inventory: inv}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	data, err := json.Marshal(input.Inventory)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal inventory")
	}

	if err := r.client.Set(ctx, GetKey(input.CharacterID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update inventory for character %s", input.CharacterID)
	}

	return &UpdateOutput{Inventory: input.Inventory.Clone()}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	removed, err := r.client.Del(ctx, GetKey(input.CharacterID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete inventory for character %s", input.CharacterID)
	}
	if removed == 0 {
		return nil, errors.NotFoundf("inventory for character %s not found", input.CharacterID)
	}

	return &DeleteOutput{}, nil
}
