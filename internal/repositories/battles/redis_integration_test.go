//go:build integration

package battles

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/creature-battle/internal/domain/game/combat"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
	"github.com/KirkDiggler/creature-battle/internal/testutils"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Container(t *testing.T) {
	roundTrip(t, testutils.CreateRedisContainerClient(t))
}

func TestRedisRepository_LocalRedis(t *testing.T) {
	roundTrip(t, testutils.CreateTestRedisClient(t))
}

func roundTrip(t *testing.T, client redis.UniversalClient) {
	ctx := context.Background()
	repo := NewRedisRepository(&RedisRepoConfig{Client: client, TTL: time.Minute})

	battle := newTestBattle(t, "battle-int", "owner-int")
	require.NoError(t, repo.Create(ctx, battle))
	assert.True(t, apperrors.IsAlreadyExists(repo.Create(ctx, battle)))

	ttl, err := client.TTL(ctx, battleKey(battle.ID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	stored, err := repo.Get(ctx, battle.ID)
	require.NoError(t, err)
	require.True(t, stored.A.Inflict(combat.AilmentPoison))
	stored.CycleWeather()
	require.NoError(t, repo.Update(ctx, stored))

	list, err := repo.ListByOwner(ctx, "owner-int")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, combat.AilmentPoison, list[0].A.Ailment())
	assert.Equal(t, combat.WeatherSun, list[0].Weather)

	require.NoError(t, repo.Delete(ctx, battle.ID))
	_, err = repo.Get(ctx, battle.ID)
	assert.True(t, apperrors.IsNotFound(err))

	members, err := client.SMembers(ctx, ownerKey("owner-int")).Result()
	require.NoError(t, err)
	assert.Empty(t, members)
	assert.Zero(t, testutils.CountKeys(t, client, battleKeyPrefix+"*"))
}
