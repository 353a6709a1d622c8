package monsters

import (
	"cmp"
	"context"
	"encoding/json"
	"slices"
	"strconv"

	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
	"github.com/KirkDiggler/brainmon-api/internal/errors"
	"github.com/KirkDiggler/brainmon-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/brainmon-api/internal/redis"
)

const (
	monsterKeyPrefix = "monster:"
	idIndexKey       = "monster:ids"
	idSequenceKey    = "monster:seq"

	// maxIDAttempts bounds INCR retries when a caller supplied id
	// already took the next sequence value
	maxIDAttempts = 8
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis monster repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed monster repository
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

func monsterKey(id int64) string {
	return monsterKeyPrefix + strconv.FormatInt(id, 10)
}

func (r *redisRepository) Insert(ctx context.Context, input InsertInput) (*InsertOutput, error) {
	if err := validateForWrite(input.Monster); err != nil {
		return nil, err
	}

	m := *input.Monster
	if m.CaughtAt.IsZero() {
		m.CaughtAt = r.clock.Now()
	}
	m.CaughtAt = m.CaughtAt.UTC()

	if m.ID > 0 {
		stored, err := r.setNew(ctx, &m)
		if err != nil {
			return nil, err
		}
		return &InsertOutput{Monster: &m, Ignored: !stored}, nil
	}

	for range maxIDAttempts {
		id, err := r.client.Incr(ctx, idSequenceKey).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to allocate monster id")
		}
		m.ID = id

		stored, err := r.setNew(ctx, &m)
		if err != nil {
			return nil, err
		}
		if stored {
			return &InsertOutput{Monster: &m}, nil
		}
	}

	return nil, errors.Internalf("failed to allocate monster id after %d attempts", maxIDAttempts)
}

// setNew writes m only if its key is free and indexes it in the same transaction
func (r *redisRepository) setNew(ctx context.Context, m *brainmon.Monster) (bool, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return false, errors.Wrapf(err, "failed to marshal monster")
	}

	pipe := r.client.TxPipeline()
	setCmd := pipe.SetNX(ctx, monsterKey(m.ID), data, 0)
	pipe.SAdd(ctx, idIndexKey, m.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, errors.Wrapf(err, "failed to insert monster")
	}

	return setCmd.Val(), nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateForWrite(input.Monster); err != nil {
		return nil, err
	}
	if input.Monster.ID <= 0 {
		return nil, errors.InvalidArgument(errIDRequired)
	}

	data, err := json.Marshal(input.Monster)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal monster")
	}

	updated, err := r.client.SetXX(ctx, monsterKey(input.Monster.ID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update monster")
	}
	if !updated {
		return nil, errors.NotFoundf("monster with ID %d not found", input.Monster.ID)
	}

	return &UpdateOutput{Monster: input.Monster}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errIDRequired)
	}

	pipe := r.client.TxPipeline()
	delCmd := pipe.Del(ctx, monsterKey(input.ID))
	pipe.SRem(ctx, idIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete monster")
	}

	return &DeleteOutput{Deleted: delCmd.Val() > 0}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errIDRequired)
	}

	result, err := r.client.Get(ctx, monsterKey(input.ID)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("monster with ID %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get monster")
	}

	var m brainmon.Monster
	if err := json.Unmarshal([]byte(result), &m); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal monster")
	}

	return &GetOutput{Monster: &m}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, idIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list monster ids")
	}
	if len(ids) == 0 {
		return &ListOutput{Monsters: []*brainmon.Monster{}}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, monsterKeyPrefix+id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load monsters")
	}

	monsters := make([]*brainmon.Monster, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry without a row; skip it
			continue
		}
		var m brainmon.Monster
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal monster %s", ids[i])
		}
		monsters = append(monsters, &m)
	}

	sortByNameThenID(monsters)

	return &ListOutput{Monsters: monsters}, nil
}

func sortByNameThenID(monsters []*brainmon.Monster) {
	slices.SortFunc(monsters, func(a, b *brainmon.Monster) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
