package chain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/chaingrid/grid"
)

// ErrNegativeMax indicates a chain was requested with a negative connection cap.
var ErrNegativeMax = errors.New("chain: max connections must be at least 0")

// ErrCannotAdd indicates Add was called for a point that CanAdd rejects.
var ErrCannotAdd = errors.New("chain: point cannot be added to this chain")

// ErrNoEndpoint indicates no chain endpoint could accept the new point at
// commit time (a constraint rejected the connection, or no endpoint was
// adjacent and link-capable).
var ErrNoEndpoint = errors.New("chain: no endpoint could accept the point")

// Chain is an ordered simple path of grid points. It references points owned
// by its grid and records only membership order; degree state lives on the
// points themselves.
//
// Point count = connection count + 1 when the chain is non-empty.
type Chain struct {
	g      *grid.Grid
	id     int
	max    int
	points []*grid.Point
}

// New constructs an empty chain over g with the given id and connection cap.
// Returns ErrNegativeMax if maxConnections < 0.
func New(g *grid.Grid, id, maxConnections int) (*Chain, error) {
	if maxConnections < 0 {
		return nil, ErrNegativeMax
	}
	return &Chain{g: g, id: id, max: maxConnections}, nil
}

// ID returns the chain's identifier.
func (c *Chain) ID() int { return c.id }

// MaxConnections returns the chain's connection cap.
func (c *Chain) MaxConnections() int { return c.max }

// Points returns the member points in path order.
func (c *Chain) Points() []*grid.Point {
	out := make([]*grid.Point, len(c.points))
	copy(out, c.points)
	return out
}

// PointCount returns the current number of member points.
func (c *Chain) PointCount() int { return len(c.points) }

// ConnectionCount returns max(0, point count − 1).
func (c *Chain) ConnectionCount() int {
	if len(c.points) == 0 {
		return 0
	}
	return len(c.points) - 1
}

// Length is the chain length in connections; alias for ConnectionCount.
func (c *Chain) Length() int { return c.ConnectionCount() }

// Empty reports whether the chain has no points.
func (c *Chain) Empty() bool { return len(c.points) == 0 }

// Full reports whether the chain has reached its connection cap.
func (c *Chain) Full() bool { return c.ConnectionCount() >= c.max }

// Endpoints returns the growth points of the chain: empty for an empty
// chain, the sole member for a singleton, otherwise the first and last
// members.
func (c *Chain) Endpoints() []*grid.Point {
	switch len(c.points) {
	case 0:
		return nil
	case 1:
		return []*grid.Point{c.points[0]}
	default:
		return []*grid.Point{c.points[0], c.points[len(c.points)-1]}
	}
}

// CanAdd reports whether p can be appended to this chain: p must be
// unconnected; for a non-empty chain the cap must not be reached, p must
// accept another link, and some link-capable endpoint must be adjacent to p.
// An empty chain accepts any unconnected point unconditionally (the seed).
//
// CanAdd does not consult the constraint engine; Add commits through the
// grid, which does.
func (c *Chain) CanAdd(p *grid.Point) bool {
	if p == nil || p.Connected() {
		return false
	}
	if c.Empty() {
		return true
	}
	if c.Full() || !p.CanLink() {
		return false
	}
	for _, ep := range c.Endpoints() {
		if ep.CanLink() && p.At().Adjacent(ep.At()) {
			return true
		}
	}
	return false
}

// Add appends p to the chain. The first point is seeded: claimed for this
// chain with no link realized. Subsequent points are connected to the first
// endpoint (scan order: first member, then last) that is adjacent,
// link-capable, and whose connection the grid admits — so the constraint
// engine re-validates at commit time and stateful constraints are notified.
//
// Returns ErrCannotAdd when CanAdd(p) is false, or ErrNoEndpoint when every
// endpoint refuses at commit time (callers treat that as "no valid
// extension", not as a fault).
func (c *Chain) Add(p *grid.Point) error {
	if !c.CanAdd(p) {
		return ErrCannotAdd
	}
	if c.Empty() {
		if !c.g.Claim(p, c.id) {
			return ErrCannotAdd
		}
		c.points = append(c.points, p)
		return nil
	}
	for _, ep := range c.Endpoints() {
		if !ep.CanLink() || !p.At().Adjacent(ep.At()) {
			continue
		}
		if !c.g.Connect(ep, p) {
			continue
		}
		c.g.Claim(p, c.id)
		c.points = append(c.points, p)
		return nil
	}
	return ErrNoEndpoint
}

// Remove detaches p's links, returns it to the unconnected state, and drops
// it from the member list. Returns false if p is not a member.
func (c *Chain) Remove(p *grid.Point) bool {
	for i, m := range c.points {
		if m != p {
			continue
		}
		c.g.Release(p)
		c.points = append(c.points[:i], c.points[i+1:]...)
		return true
	}
	return false
}

// Valid reports whether the chain is structurally a simple path: an empty
// chain is trivially valid; a singleton member has degree 0; for two or more
// members exactly two have degree 1 (the endpoints) and the rest degree 2.
// Every member must be connected, carry this chain's id, and the connection
// count must not exceed the cap.
func (c *Chain) Valid() bool {
	n := len(c.points)
	if n == 0 {
		return true
	}
	if c.ConnectionCount() > c.max {
		return false
	}
	endpoints, interior := 0, 0
	for _, p := range c.points {
		id, ok := p.ChainID()
		if !ok || id != c.id || !p.Connected() {
			return false
		}
		switch p.Degree() {
		case 1:
			endpoints++
		case 2:
			interior++
		}
	}
	if n == 1 {
		return c.points[0].Degree() == 0
	}
	return endpoints == 2 && interior == n-2
}

// String renders the chain for debugging.
func (c *Chain) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Chain(id=%d connections=%d/%d path=", c.id, c.ConnectionCount(), c.max)
	for i, p := range c.points {
		if i > 0 {
			sb.WriteByte('-')
		}
		fmt.Fprintf(&sb, "(%d,%d)", p.At().X, p.At().Y)
	}
	sb.WriteByte(')')
	return sb.String()
}
