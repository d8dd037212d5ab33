package grid

import (
	"fmt"

	"github.com/katalvlaran/chaingrid/geom"
)

// noChain marks a point that belongs to no chain; noLink an empty link slot.
const (
	noChain = -1
	noLink  = -1
)

// maxLinks caps the realized connections per point; chains are simple paths.
const maxLinks = 2

// Point is one cell of the grid. Points are created once when the grid is
// built, mutated by connection add/remove, and reset in place; they are
// never destroyed individually. A Point handle stays valid as long as its
// grid does.
type Point struct {
	g         *Grid
	idx       int
	pt        geom.Pt
	connected bool
	chainID   int
	links     [maxLinks]int // arena indices of linked points; -1 when empty
	degree    int
}

// At returns the point's immutable grid coordinates.
func (p *Point) At() geom.Pt { return p.pt }

// Connected reports whether the point has been claimed by a chain. A seeded
// singleton is connected even at degree 0.
func (p *Point) Connected() bool { return p.connected }

// ChainID returns the id of the owning chain, if any.
func (p *Point) ChainID() (int, bool) {
	if p.chainID == noChain {
		return 0, false
	}
	return p.chainID, true
}

// Degree returns the number of realized links (0, 1 or 2).
func (p *Point) Degree() int { return p.degree }

// CanLink reports whether the point can accept another realized link.
func (p *Point) CanLink() bool { return p.degree < maxLinks }

// IsEndpoint reports whether the point has exactly one realized link.
func (p *Point) IsEndpoint() bool { return p.degree == 1 }

// IsInterior reports whether the point has exactly two realized links.
func (p *Point) IsInterior() bool { return p.degree == maxLinks }

// Links returns the points this point is directly linked to, in the order
// the links were realized.
func (p *Point) Links() []*Point {
	out := make([]*Point, 0, p.degree)
	for i := 0; i < p.degree; i++ {
		out = append(out, &p.g.points[p.links[i]])
	}
	return out
}

// LinkedTo reports whether p and q share a realized link.
func (p *Point) LinkedTo(q *Point) bool {
	for i := 0; i < p.degree; i++ {
		if p.links[i] == q.idx {
			return true
		}
	}
	return false
}

// String renders the point for debugging.
func (p *Point) String() string {
	return fmt.Sprintf("Point(%d,%d connected=%v chain=%d degree=%d)",
		p.pt.X, p.pt.Y, p.connected, p.chainID, p.degree)
}

// attach records a link to the arena index of the peer. Callers guarantee
// capacity.
func (p *Point) attach(peer int) {
	p.links[p.degree] = peer
	p.degree++
}

// detach removes the link to the given arena index, preserving the order of
// the remaining link. Returns false if no such link exists.
func (p *Point) detach(peer int) bool {
	for i := 0; i < p.degree; i++ {
		if p.links[i] != peer {
			continue
		}
		copy(p.links[i:p.degree-1], p.links[i+1:p.degree])
		p.degree--
		p.links[p.degree] = noLink
		return true
	}
	return false
}

// resetState returns the point to the freshly-constructed condition.
func (p *Point) resetState() {
	p.connected = false
	p.chainID = noChain
	p.degree = 0
	p.links[0] = noLink
	p.links[1] = noLink
}
