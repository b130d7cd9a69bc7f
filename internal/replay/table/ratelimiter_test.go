package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinSizeLimiter(t *testing.T) {
	l := NewMinSizeLimiter(3)

	assert.True(t, l.CanInsert(0, 1))
	assert.True(t, l.CanInsert(1000000, 1))

	assert.False(t, l.CanSample(0, 1))
	assert.False(t, l.CanSample(2, 1))
	assert.True(t, l.CanSample(3, 1))
	assert.True(t, l.CanSample(3, 100))

	assert.Equal(t, 3, l.MinSizeToSample())
}

func TestMinSizeLimiter_ClampsToOne(t *testing.T) {
	l := NewMinSizeLimiter(0)
	assert.Equal(t, 1, l.MinSizeToSample())
	assert.False(t, l.CanSample(0, 1))
	assert.True(t, l.CanSample(1, 1))
}

func TestQueueLimiter(t *testing.T) {
	l := NewQueueLimiter(3)

	assert.True(t, l.CanInsert(0, 1))
	assert.True(t, l.CanInsert(2, 1))
	assert.False(t, l.CanInsert(3, 1))
	assert.False(t, l.CanInsert(2, 2))

	assert.False(t, l.CanSample(0, 1))
	assert.True(t, l.CanSample(1, 1))
}
