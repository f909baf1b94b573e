package character

import (
	"context"
	"log/slog"
	"slices"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/quest-chronicles/internal/redis"
	"github.com/KirkDiggler/quest-chronicles/internal/savefile"
)

const (
	characterKeyPrefix = "character:"
	characterIndexKey  = "characters:index" // no name maps onto this key

	fieldData    = "data"
	fieldSavedAt = "saved_at"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSaveInput(input); err != nil {
		return nil, err
	}

	name := input.Character.Name
	key := characterKeyPrefix + name
	now := r.clock.Now()

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key,
		fieldData, savefile.Encode(input.Character),
		fieldSavedAt, now.Unix(),
	)
	pipe.SAdd(ctx, characterIndexKey, name)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeCorrupted, "failed to save character %s", name)
	}

	slog.DebugContext(ctx, "Saved character to redis",
		"name", name,
		"key", key,
	)

	return &SaveOutput{SavedAt: now}, nil
}

func (r *redisRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	data, err := r.client.HGet(ctx, characterKeyPrefix+input.Name, fieldData).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.CharacterNotFoundf("no save for %s", input.Name)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeCorrupted, "failed to read save for %s", input.Name)
	}

	c, err := savefile.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode save for %s", input.Name)
	}

	return &LoadOutput{Character: c}, nil
}

func (r *redisRepository) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	names, err := r.client.SMembers(ctx, characterIndexKey).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCorrupted, "failed to list saves")
	}

	slices.Sort(names)
	return &ListOutput{Names: names}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, characterKeyPrefix+input.Name)
	pipe.SRem(ctx, characterIndexKey, input.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeCorrupted, "failed to delete save for %s", input.Name)
	}
	if del.Val() == 0 {
		return nil, errors.CharacterNotFoundf("no save for %s", input.Name)
	}

	slog.InfoContext(ctx, "Deleted character save",
		"name", input.Name,
		"backend", "redis",
	)
	return &DeleteOutput{}, nil
}
