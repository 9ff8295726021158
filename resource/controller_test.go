package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerLimit(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	require.NoError(t, c.AcquireMemory(60))
	assert.Equal(t, int64(60), c.MemoryUsage())

	err := c.AcquireMemory(50)
	require.ErrorIs(t, err, ErrMemoryLimitExceeded)
	assert.Equal(t, int64(60), c.MemoryUsage())

	c.ReleaseMemory(60)
	assert.Equal(t, int64(0), c.MemoryUsage())
	require.NoError(t, c.AcquireMemory(100))
	assert.Equal(t, int64(100), c.MemoryLimit())
}

func TestControllerUnlimitedTracksUsage(t *testing.T) {
	c := NewController(Config{})

	require.NoError(t, c.AcquireMemory(1<<40))
	assert.Equal(t, int64(1<<40), c.MemoryUsage())
	assert.Equal(t, int64(0), c.MemoryLimit())
}

func TestNilControllerIsUnlimited(t *testing.T) {
	var c *Controller

	assert.NoError(t, c.AcquireMemory(1))
	c.ReleaseMemory(1)
	assert.Equal(t, int64(0), c.MemoryUsage())
	assert.Equal(t, int64(0), c.MemoryLimit())
}

func TestControllerIgnoresNonPositive(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 10})

	assert.NoError(t, c.AcquireMemory(0))
	assert.NoError(t, c.AcquireMemory(-5))
	c.ReleaseMemory(-5)
	assert.Equal(t, int64(0), c.MemoryUsage())
}
