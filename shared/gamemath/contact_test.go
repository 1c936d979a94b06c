package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleRectContactOutside(t *testing.T) {
	// Circle just left of a box centred at origin.
	c, ok := CircleRectContact(V(-12, 1), 3, V(0, 0), V(10, 5))
	require.True(t, ok)
	assert.Equal(t, V(-10, 1), c.Point)
	assert.Equal(t, V(-1, 0), c.Normal)
	assert.InDelta(t, 1.0, c.Penetration, 1e-9)

	_, ok = CircleRectContact(V(-14, 1), 3, V(0, 0), V(10, 5))
	assert.False(t, ok)
}

func TestCircleRectContactCorner(t *testing.T) {
	c, ok := CircleRectContact(V(11, 6), 2, V(0, 0), V(10, 5))
	require.True(t, ok)
	assert.Equal(t, V(10, 5), c.Point)
	assert.InDelta(t, 1.0, c.Normal.Len(), 1e-9)
	assert.Greater(t, c.Normal.X, 0.0)
	assert.Greater(t, c.Normal.Y, 0.0)
}

func TestCircleRectContactInside(t *testing.T) {
	// Centre inside, closer to the top face.
	c, ok := CircleRectContact(V(0, 4), 1, V(0, 0), V(10, 5))
	require.True(t, ok)
	assert.Equal(t, V(0, 1), c.Normal)
	assert.Equal(t, V(0, 5), c.Point)
	assert.InDelta(t, 2.0, c.Penetration, 1e-9)

	// Zero-height box never yields a zero normal.
	c, ok = CircleRectContact(V(0, 0), 1, V(0, 0), V(0, 0))
	require.True(t, ok)
	assert.InDelta(t, 1.0, c.Normal.Len(), 1e-9)
}
