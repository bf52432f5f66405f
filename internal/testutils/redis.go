// Package testutils provides shared test helpers and fixtures
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/echosheet/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing.
// The server is closed when the test ends.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")
	t.Cleanup(mr.Close)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
