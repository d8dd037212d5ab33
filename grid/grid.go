package grid

import (
	"errors"

	"github.com/katalvlaran/chaingrid/constraint"
	"github.com/katalvlaran/chaingrid/geom"
)

// ErrBadDimensions indicates a grid was requested with rows or cols below 1.
var ErrBadDimensions = errors.New("grid: dimensions must be at least 1x1")

// conn8Offsets are the neighbor offsets of the 8-neighborhood, precomputed
// once for all adjacency traversals.
var conn8Offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a fixed rows × cols lattice of points. It owns its points and one
// constraint engine; both live exactly as long as the grid.
//
// Grid is not safe for concurrent use: one builder drives one grid at a time.
type Grid struct {
	rows, cols int
	points     []Point
	engine     *constraint.Engine
}

// New constructs a rows × cols grid with the default constraint set:
// non-crossing enabled, max-distance and min-distance registered but
// disabled. Returns ErrBadDimensions unless rows, cols ≥ 1.
// Complexity: O(rows·cols).
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}
	g := &Grid{
		rows:   rows,
		cols:   cols,
		points: make([]Point, rows*cols),
		engine: constraint.NewEngine(),
	}
	for x := 0; x < rows; x++ {
		for y := 0; y < cols; y++ {
			idx := g.index(x, y)
			g.points[idx] = Point{
				g:       g,
				idx:     idx,
				pt:      geom.Pt{X: x, Y: y},
				chainID: noChain,
				links:   [maxLinks]int{noLink, noLink},
			}
		}
	}
	// Default constraint set. Names are unique by construction, so Add
	// cannot fail here.
	_ = g.engine.Add(constraint.NewNonCrossing())
	_ = g.engine.Add(constraint.NewMaxDistance(constraint.DefaultMaxDistance))
	_ = g.engine.Add(constraint.NewMinDistance(constraint.DefaultMinDistance))
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// TotalPoints returns rows × cols.
func (g *Grid) TotalPoints() int { return len(g.points) }

// index maps (x, y) to the row-major arena index.
func (g *Grid) index(x, y int) int { return x*g.cols + y }

// inBounds reports whether (x, y) lies within the lattice.
func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.rows && y >= 0 && y < g.cols
}

// PointAt returns the point at (x, y), or nil if out of bounds.
// Complexity: O(1).
func (g *Grid) PointAt(x, y int) *Point {
	if !g.inBounds(x, y) {
		return nil
	}
	return &g.points[g.index(x, y)]
}

// Neighbors returns the up-to-8 points adjacent to p (Chebyshev distance 1)
// that lie within bounds.
// Complexity: O(1).
func (g *Grid) Neighbors(p *Point) []*Point {
	out := make([]*Point, 0, len(conn8Offsets))
	for _, d := range conn8Offsets {
		nx, ny := p.pt.X+d[0], p.pt.Y+d[1]
		if g.inBounds(nx, ny) {
			out = append(out, &g.points[g.index(nx, ny)])
		}
	}
	return out
}

// UnconnectedNeighborCount returns how many of p's neighbors are not yet
// claimed by any chain. This count is the scoring signal of the cover
// builder.
// Complexity: O(1).
func (g *Grid) UnconnectedNeighborCount(p *Point) int {
	n := 0
	for _, d := range conn8Offsets {
		nx, ny := p.pt.X+d[0], p.pt.Y+d[1]
		if g.inBounds(nx, ny) && !g.points[g.index(nx, ny)].connected {
			n++
		}
	}
	return n
}

// AllPoints returns every point in deterministic row-major order.
// Complexity: O(rows·cols).
func (g *Grid) AllPoints() []*Point {
	out := make([]*Point, len(g.points))
	for i := range g.points {
		out[i] = &g.points[i]
	}
	return out
}

// UnconnectedPoints returns the points not yet claimed by any chain, in
// row-major order.
// Complexity: O(rows·cols).
func (g *Grid) UnconnectedPoints() []*Point {
	var out []*Point
	for i := range g.points {
		if !g.points[i].connected {
			out = append(out, &g.points[i])
		}
	}
	return out
}

// ConnectedPoints returns the points claimed by some chain, in row-major
// order.
// Complexity: O(rows·cols).
func (g *Grid) ConnectedPoints() []*Point {
	var out []*Point
	for i := range g.points {
		if g.points[i].connected {
			out = append(out, &g.points[i])
		}
	}
	return out
}

// HasUnconnected reports whether any point remains unclaimed, without
// allocating.
// Complexity: O(rows·cols).
func (g *Grid) HasUnconnected() bool {
	for i := range g.points {
		if !g.points[i].connected {
			return true
		}
	}
	return false
}

// ValidateConnection reports whether the engine admits a connection between
// p and q. Boolean hot-path form; see ExplainConnection for attribution.
func (g *Grid) ValidateConnection(p, q *Point) bool {
	return g.engine.ValidateFast(p.pt, q.pt)
}

// ExplainConnection runs the full constraint pass and returns the detailed
// result, for display layers.
func (g *Grid) ExplainConnection(p, q *Point) constraint.Result {
	return g.engine.Validate(p.pt, q.pt)
}

// Connect realizes the bidirectional link p-q. It fails gracefully (returns
// false, no mutation) if either point is foreign to this grid or already at
// degree 2, if the points are not adjacent or already linked, or if any
// enabled constraint rejects the connection. On success every observing
// constraint is notified so its tracking state stays consistent.
// Complexity: O(1) plus constraint validation.
func (g *Grid) Connect(p, q *Point) bool {
	if p == nil || q == nil || p.g != g || q.g != g || p == q {
		return false
	}
	if !p.CanLink() || !q.CanLink() {
		return false
	}
	if !p.pt.Adjacent(q.pt) {
		return false
	}
	if p.LinkedTo(q) {
		return false
	}
	if !g.engine.ValidateFast(p.pt, q.pt) {
		return false
	}
	p.attach(q.idx)
	q.attach(p.idx)
	g.engine.NotifyConnect(p.pt, q.pt)
	return true
}

// Disconnect tears down the link p-q. Returns false if no such link exists.
// Observing constraints are notified on success.
// Complexity: O(1).
func (g *Grid) Disconnect(p, q *Point) bool {
	if p == nil || q == nil || p.g != g || q.g != g {
		return false
	}
	if !p.detach(q.idx) {
		return false
	}
	q.detach(p.idx)
	g.engine.NotifyDisconnect(p.pt, q.pt)
	return true
}

// Claim marks an unclaimed point as a member of the given chain. Returns
// false if the point is foreign or already claimed. Links are realized
// separately via Connect; a claimed point with degree 0 is a chain seed.
func (g *Grid) Claim(p *Point, chainID int) bool {
	if p == nil || p.g != g || p.connected {
		return false
	}
	p.connected = true
	p.chainID = chainID
	return true
}

// Release detaches every link of p and returns it to the unclaimed state.
func (g *Grid) Release(p *Point) {
	if p == nil || p.g != g {
		return
	}
	for p.degree > 0 {
		g.Disconnect(p, &g.points[p.links[0]])
	}
	p.resetState()
}

// Reset returns every point to the unconnected state and clears all
// constraint tracking. Callable repeatedly; afterwards the grid is
// indistinguishable from a freshly constructed one.
// Complexity: O(rows·cols).
func (g *Grid) Reset() {
	for i := range g.points {
		g.points[i].resetState()
	}
	g.engine.ClearTracking()
}

// Progress returns the fraction of points claimed by chains, in [0, 1].
// Complexity: O(rows·cols).
func (g *Grid) Progress() float64 {
	connected := 0
	for i := range g.points {
		if g.points[i].connected {
			connected++
		}
	}
	return float64(connected) / float64(len(g.points))
}
