package constraint

import (
	"fmt"

	"github.com/katalvlaran/chaingrid/geom"
)

// Registry keys and default thresholds of the distance constraints.
const (
	MaxDistanceName = "max-distance"
	MinDistanceName = "min-distance"

	// DefaultMaxDistance admits every connection within a 2-unit radius.
	DefaultMaxDistance = 2.0
	// DefaultMinDistance admits every connection of at least unit length.
	DefaultMinDistance = 1.0
)

// MaxDistance rejects connections whose Euclidean length exceeds a limit.
// Stateless: the distance is recomputed on every call. Disabled by default.
type MaxDistance struct {
	toggle
	limit float64
}

// NewMaxDistance returns a max-distance constraint with the given limit,
// disabled by default.
func NewMaxDistance(limit float64) *MaxDistance {
	return &MaxDistance{limit: limit}
}

// Name implements Constraint.
func (md *MaxDistance) Name() string { return MaxDistanceName }

// Describe implements Constraint.
func (md *MaxDistance) Describe() string {
	return fmt.Sprintf("limits connections to maximum distance %g", md.limit)
}

// Validate implements Constraint. Complexity: O(1).
func (md *MaxDistance) Validate(a, b geom.Pt) (bool, error) {
	return a.Dist(b) <= md.limit, nil
}

// Limit returns the current maximum allowed distance.
func (md *MaxDistance) Limit() float64 { return md.limit }

// SetLimit replaces the maximum allowed distance.
func (md *MaxDistance) SetLimit(limit float64) { md.limit = limit }

// MinDistance rejects connections shorter than a required Euclidean length.
// Stateless: the distance is recomputed on every call. Disabled by default.
type MinDistance struct {
	toggle
	limit float64
}

// NewMinDistance returns a min-distance constraint with the given
// requirement, disabled by default.
func NewMinDistance(limit float64) *MinDistance {
	return &MinDistance{limit: limit}
}

// Name implements Constraint.
func (md *MinDistance) Name() string { return MinDistanceName }

// Describe implements Constraint.
func (md *MinDistance) Describe() string {
	return fmt.Sprintf("requires connections to span at least distance %g", md.limit)
}

// Validate implements Constraint. Complexity: O(1).
func (md *MinDistance) Validate(a, b geom.Pt) (bool, error) {
	return a.Dist(b) >= md.limit, nil
}

// Limit returns the current minimum required distance.
func (md *MinDistance) Limit() float64 { return md.limit }

// SetLimit replaces the minimum required distance.
func (md *MinDistance) SetLimit(limit float64) { md.limit = limit }
