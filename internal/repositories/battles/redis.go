package battles

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/creature-battle/internal/domain/game/combat"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	// Key patterns
	battleKeyPrefix = "battle:"
	ownerBattlesKey = "owner:%s:battles"

	// DefaultTTL keeps an idle battle for a day
	DefaultTTL = 24 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TTL          time.Duration
	TimeProvider TimeProvider
}

type redisRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
	clock  TimeProvider
}

// NewRedisRepository creates a new Redis-backed battle repository. Each
// battle is one JSON value under battle:<id>; its TTL is refreshed on every
// write.
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	clock := cfg.TimeProvider
	if clock == nil {
		clock = RealTime()
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
		clock:  clock,
	}
}

func battleKey(id string) string {
	return battleKeyPrefix + id
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf(ownerBattlesKey, ownerID)
}

// Create stores a new battle
func (r *redisRepository) Create(ctx context.Context, battle *combat.Battle) error {
	if battle == nil || battle.ID == "" {
		return apperrors.InvalidArgument("battle with an ID is required")
	}

	now := r.clock.Now()
	battle.CreatedAt = now
	battle.UpdatedAt = now

	data, err := encode(battle)
	if err != nil {
		return err
	}

	created, err := r.client.SetNX(ctx, battleKey(battle.ID), string(data), r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create battle in Redis: %w", err)
	}
	if !created {
		return apperrors.AlreadyExistsf("battle %s already exists", battle.ID)
	}

	pipe := r.client.Pipeline()
	pipe.SAdd(ctx, ownerKey(battle.OwnerID), battle.ID)
	pipe.Expire(ctx, ownerKey(battle.OwnerID), r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to index battle %s: %w", battle.ID, err)
	}

	return nil
}

// Get retrieves a battle by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*combat.Battle, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("battle ID is required")
	}

	data, err := r.client.Get(ctx, battleKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFoundf("battle not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get battle from Redis: %w", err)
	}

	return decode(data)
}

// Update replaces a stored battle and refreshes its TTL
func (r *redisRepository) Update(ctx context.Context, battle *combat.Battle) error {
	if battle == nil || battle.ID == "" {
		return apperrors.InvalidArgument("battle with an ID is required")
	}

	battle.UpdatedAt = r.clock.Now()

	data, err := encode(battle)
	if err != nil {
		return err
	}

	updated, err := r.client.SetXX(ctx, battleKey(battle.ID), string(data), r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to update battle in Redis: %w", err)
	}
	if !updated {
		return apperrors.NotFoundf("battle not found: %s", battle.ID)
	}

	if err := r.client.Expire(ctx, ownerKey(battle.OwnerID), r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to refresh owner index TTL: %w", err)
	}

	return nil
}

// Delete removes a battle and its owner index entry
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	battle, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, battleKey(id))
	pipe.SRem(ctx, ownerKey(battle.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete battle from Redis: %w", err)
	}

	return nil
}

// ListByOwner retrieves the owner's battles. Index entries whose battle has
// expired are dropped from the index.
func (r *redisRepository) ListByOwner(ctx context.Context, ownerID string) ([]*combat.Battle, error) {
	ids, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get owner battles from Redis: %w", err)
	}

	found := make([]*combat.Battle, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			battle, err := r.Get(gctx, id)
			if err != nil {
				if apperrors.IsNotFound(err) {
					return nil
				}
				return fmt.Errorf("failed to get battle %s: %w", id, err)
			}
			found[i] = battle
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*combat.Battle, 0, len(found))
	var stale []any
	for i, battle := range found {
		if battle == nil {
			stale = append(stale, ids[i])
			continue
		}
		result = append(result, battle)
	}

	if len(stale) > 0 {
		if err := r.client.SRem(ctx, ownerKey(ownerID), stale...).Err(); err != nil {
			log.Printf("BattleRepository: failed to prune %d expired battles for owner %s: %v", len(stale), ownerID, err)
		}
	}

	sortByCreated(result)
	return result, nil
}
