package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultRemoteURL, c.RemoteURL)
	assert.Equal(t, 20*time.Second, c.HTTPTimeout)
	assert.Equal(t, 180*time.Millisecond, c.SearchDebounce)
	assert.Equal(t, 2500*time.Millisecond, c.ToastTimeout)
	assert.Equal(t, 3, c.ToastMax)
	assert.Equal(t, "th", c.Locale)
	assert.Equal(t, "file", c.CartBackend)
	assert.Empty(t, c.Brokers())
}

func TestOverrides(t *testing.T) {
	t.Setenv("STOCKFRONT_REMOTE_URL", "http://localhost:8088")
	t.Setenv("STOCKFRONT_CART_BACKEND", "Redis")
	t.Setenv("STOCKFRONT_KAFKA_BROKERS", "k1:9092, ,k2:9092")
	t.Setenv("STOCKFRONT_SEARCH_DEBOUNCE", "50ms")

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8088", c.RemoteURL)
	assert.Equal(t, "redis", c.Storage().Backend)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.Brokers())
	assert.Equal(t, 50*time.Millisecond, c.SearchDebounce)
}

func TestRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STOCKFRONT_CART_BACKEND", "floppy")
	_, err := FromEnv()
	assert.ErrorContains(t, err, `unknown cart backend "floppy"`)
}

func TestRejectsBadDuration(t *testing.T) {
	t.Setenv("STOCKFRONT_HTTP_TIMEOUT", "soon")
	_, err := FromEnv()
	assert.Error(t, err)
}
