package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/chaingrid/constraint"
	"github.com/katalvlaran/chaingrid/geom"
)

// TestNonCrossing_Defaults: enabled out of the box, no tracked segments, and
// everything passes while nothing is tracked.
func TestNonCrossing_Defaults(t *testing.T) {
	nc := constraint.NewNonCrossing()
	assert.Equal(t, constraint.NonCrossingName, nc.Name())
	assert.True(t, nc.Enabled())
	assert.Equal(t, 0, nc.TrackedCount())

	ok, err := nc.Validate(geom.Pt{X: 0, Y: 0}, geom.Pt{X: 1, Y: 1})
	assert.NoError(t, err)
	assert.True(t, ok, "empty tracker accepts any segment")
	assert.NotEmpty(t, nc.Describe())
}

// TestNonCrossing_DetectsCrossing replays the canonical scenario: realized
// diagonal (0,0)-(1,1) rejects the crossing diagonal (0,1)-(1,0) but accepts
// a continuation sharing an endpoint.
func TestNonCrossing_DetectsCrossing(t *testing.T) {
	nc := constraint.NewNonCrossing()
	nc.OnConnect(geom.Pt{X: 0, Y: 0}, geom.Pt{X: 1, Y: 1})
	assert.Equal(t, 1, nc.TrackedCount())

	ok, err := nc.Validate(geom.Pt{X: 0, Y: 1}, geom.Pt{X: 1, Y: 0})
	assert.NoError(t, err)
	assert.False(t, ok, "crossing diagonal must be rejected")

	ok, err = nc.Validate(geom.Pt{X: 1, Y: 1}, geom.Pt{X: 2, Y: 2})
	assert.NoError(t, err)
	assert.True(t, ok, "segment sharing endpoint (1,1) is a continuation, not a crossing")
}

// TestNonCrossing_DisconnectAndClear verifies the tracker honors removals
// (in either endpoint order) and full clears.
func TestNonCrossing_DisconnectAndClear(t *testing.T) {
	nc := constraint.NewNonCrossing()
	nc.OnConnect(geom.Pt{X: 0, Y: 0}, geom.Pt{X: 1, Y: 1})
	nc.OnConnect(geom.Pt{X: 2, Y: 0}, geom.Pt{X: 2, Y: 1})
	assert.Equal(t, 2, nc.TrackedCount())

	// Removal is order-independent thanks to segment normalization.
	nc.OnDisconnect(geom.Pt{X: 1, Y: 1}, geom.Pt{X: 0, Y: 0})
	assert.Equal(t, 1, nc.TrackedCount())

	ok, _ := nc.Validate(geom.Pt{X: 0, Y: 1}, geom.Pt{X: 1, Y: 0})
	assert.True(t, ok, "removed segment no longer blocks crossings")

	nc.Clear()
	assert.Equal(t, 0, nc.TrackedCount())
}
