package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupClient(t *testing.T) *Client {
	t.Helper()
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	client, err := Initialize(url)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestInitializeRejectsBadURL(t *testing.T) {
	_, err := Initialize("not-a-redis-url")
	assert.Error(t, err)
}

func TestNextIsSequential(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()
	name := fmt.Sprintf("test-%d", time.Now().UnixNano())
	t.Cleanup(func() { client.rdb.Del(ctx, sequenceKeyPrefix+name) })

	first, err := client.Next(ctx, name)
	require.NoError(t, err)
	second, err := client.Next(ctx, name)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

func TestEnsureAtLeast(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()
	name := fmt.Sprintf("test-%d", time.Now().UnixNano())
	t.Cleanup(func() { client.rdb.Del(ctx, sequenceKeyPrefix+name) })

	require.NoError(t, client.EnsureAtLeast(ctx, name, 41))
	next, err := client.Next(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, int64(42), next)

	require.NoError(t, client.EnsureAtLeast(ctx, name, 10))
	next, err = client.Next(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, int64(43), next)
}

func TestPingAfterClose(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	require.NoError(t, client.Ping(ctx))
	require.NoError(t, client.Close())
	assert.Error(t, client.Ping(ctx))
}
