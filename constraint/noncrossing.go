package constraint

import "github.com/katalvlaran/chaingrid/geom"

// NonCrossingName is the registry key of the non-crossing constraint.
const NonCrossingName = "non-crossing"

// NonCrossing rejects connections whose segment geometrically crosses any
// currently realized connection. Segments sharing an endpoint do not cross.
//
// NonCrossing keeps its own index of realized segments, normalized so (p,q)
// and (q,p) compare equal. It does not observe the grid; the engine must be
// notified on every connect/disconnect (it implements ConnectionObserver).
type NonCrossing struct {
	toggle
	active map[geom.Segment]struct{}
}

// NewNonCrossing returns the non-crossing constraint, enabled by default,
// tracking no segments.
func NewNonCrossing() *NonCrossing {
	return &NonCrossing{
		toggle: toggle{enabled: true},
		active: make(map[geom.Segment]struct{}),
	}
}

// Name implements Constraint.
func (nc *NonCrossing) Name() string { return NonCrossingName }

// Describe implements Constraint.
func (nc *NonCrossing) Describe() string {
	return "prevents chains from crossing each other geometrically"
}

// Validate checks the proposed segment a-b against every tracked segment.
// Complexity: O(tracked segments).
func (nc *NonCrossing) Validate(a, b geom.Pt) (bool, error) {
	proposed := geom.NewSegment(a, b)
	for seg := range nc.active {
		if geom.SegmentsCross(proposed, seg) {
			return false, nil
		}
	}
	return true, nil
}

// OnConnect implements ConnectionObserver.
func (nc *NonCrossing) OnConnect(a, b geom.Pt) {
	nc.active[geom.NewSegment(a, b)] = struct{}{}
}

// OnDisconnect implements ConnectionObserver.
func (nc *NonCrossing) OnDisconnect(a, b geom.Pt) {
	delete(nc.active, geom.NewSegment(a, b))
}

// Clear implements ConnectionObserver.
func (nc *NonCrossing) Clear() {
	nc.active = make(map[geom.Segment]struct{})
}

// TrackedCount returns the number of realized segments currently tracked.
func (nc *NonCrossing) TrackedCount() int { return len(nc.active) }
