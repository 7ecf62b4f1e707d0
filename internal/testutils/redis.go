package testutils

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// RedisAddrEnv points the local-Redis tests at a server other than localhost
const RedisAddrEnv = "REDIS_TEST_ADDR"

// testDB keeps test keys away from a developer's real battles
const testDB = 15

// CreateTestRedisClient connects to the Redis named by REDIS_TEST_ADDR (or
// localhost:6379) on a dedicated DB. The DB is flushed before and after the
// test; the test is skipped when nothing answers.
func CreateTestRedisClient(t *testing.T) redis.UniversalClient {
	t.Helper()

	addr := os.Getenv(RedisAddrEnv)
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: testDB})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available at %s: %v", addr, err)
	}
	require.NoError(t, client.FlushDB(ctx).Err())

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})
	return client
}

// WaitForRedis polls addr until it answers PING or ctx is done
func WaitForRedis(ctx context.Context, addr string) error {
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		if err := client.Ping(ctx).Err(); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// CountKeys returns how many keys match pattern
func CountKeys(t *testing.T, client redis.UniversalClient, pattern string) int {
	t.Helper()

	var n int
	iter := client.Scan(context.Background(), 0, pattern, 100).Iterator()
	for iter.Next(context.Background()) {
		n++
	}
	require.NoError(t, iter.Err())
	return n
}
