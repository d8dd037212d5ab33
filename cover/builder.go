package cover

import (
	"math/rand"

	"github.com/katalvlaran/chaingrid/chain"
	"github.com/katalvlaran/chaingrid/grid"
)

// Builder computes chain covers of one grid. It mutates the grid in place;
// only one builder should drive a given grid at a time.
type Builder struct {
	g      *grid.Grid
	maxPer int

	chains []*chain.Chain
	nextID int

	// Stepped-mode state.
	current  *chain.Chain
	building bool

	rng *rand.Rand
}

// NewBuilder constructs a builder over g with the given per-chain connection
// cap. Returns ErrNilGrid or ErrNegativeMax on invalid inputs.
func NewBuilder(g *grid.Grid, maxConnections int, opts Options) (*Builder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if maxConnections < 0 {
		return nil, ErrNegativeMax
	}
	return &Builder{
		g:      g,
		maxPer: maxConnections,
		rng:    rngFromSeed(opts.Seed),
	}, nil
}

// Grid returns the grid this builder drives.
func (b *Builder) Grid() *grid.Grid { return b.g }

// MaxConnections returns the per-chain connection cap.
func (b *Builder) MaxConnections() int { return b.maxPer }

// Chains returns the finalized chains built so far, in creation order. The
// in-flight chain of a stepped build is not included; see Current.
func (b *Builder) Chains() []*chain.Chain {
	out := make([]*chain.Chain, len(b.chains))
	copy(out, b.chains)
	return out
}

// Current returns the in-flight chain of a stepped build, or nil.
func (b *Builder) Current() *chain.Chain { return b.current }

// Build runs the cover search to completion: reset the grid, then while
// unconnected points remain and the attempt budget holds, seed a chain at
// the best start point, extend it as far as constraints allow, and finalize
// it. Returns the finalized chains, or a *CoverageError if any point
// remains unconnected after the budget is spent.
func (b *Builder) Build() ([]*chain.Chain, error) {
	b.reset()

	for attempts := 0; attempts < maxAttempts && b.g.HasUnconnected(); attempts++ {
		start := b.selectStart()
		if start == nil {
			break
		}
		c := b.newChain()
		if c.Add(start) != nil {
			// An unconnected point always seeds; reaching here means the
			// grid changed under us, so give the budget another turn.
			continue
		}
		b.extend(c)
		b.finalize(c)
	}

	if n := len(b.g.UnconnectedPoints()); n > 0 {
		return nil, &CoverageError{Unconnected: n}
	}
	return b.Chains(), nil
}

// Start begins a stepped build: the grid is reset and the builder enters
// the building state. Drive it with Step until Done reports true.
func (b *Builder) Start() {
	b.reset()
	b.building = true
}

// Step performs one unit of stepped work: seed a new chain if none is
// active, otherwise extend the active chain by one point, otherwise
// finalize it. Returns whether more work remains. Local failures are
// ordinary outcomes (the chain is finalized); Step never errors.
func (b *Builder) Step() bool {
	if !b.building {
		return false
	}
	if !b.g.HasUnconnected() && b.current == nil {
		b.building = false
		return false
	}

	// Seed.
	if b.current == nil {
		start := b.selectStart()
		if start == nil {
			b.building = false
			return false
		}
		c := b.newChain()
		if c.Add(start) != nil {
			return b.g.HasUnconnected()
		}
		b.current = c
		return true
	}

	// Extend by one.
	if !b.current.Full() {
		if next := b.bestNext(b.current); next != nil && b.addToChain(b.current, next) {
			return true
		}
	}

	// No valid extension: finalize and report whether another chain is due.
	b.finalize(b.current)
	b.current = nil
	if !b.g.HasUnconnected() {
		b.building = false
		return false
	}
	return true
}

// Done reports whether a stepped build has finished: no active chain, not
// building, and every point connected.
func (b *Builder) Done() bool {
	return !b.building && b.current == nil && !b.g.HasUnconnected()
}

// reset clears grid and builder state for a fresh search.
func (b *Builder) reset() {
	b.g.Reset()
	b.chains = nil
	b.nextID = 0
	b.current = nil
	b.building = false
}

// newChain opens an empty chain under the next fresh id. The cap is
// validated at builder construction, so chain.New cannot fail here.
func (b *Builder) newChain() *chain.Chain {
	c, _ := chain.New(b.g, b.nextID, b.maxPer)
	b.nextID++
	return c
}

// finalize appends a non-empty chain to the results. Singleton chains count:
// a covered point with zero connections is still a chain of its own.
func (b *Builder) finalize(c *chain.Chain) {
	if c.PointCount() > 0 {
		b.chains = append(b.chains, c)
	}
}

// extend grows c until it is full or no valid extension exists.
func (b *Builder) extend(c *chain.Chain) {
	for !c.Full() {
		next := b.bestNext(c)
		if next == nil {
			return
		}
		if !b.addToChain(c, next) {
			return
		}
	}
}

// addToChain commits one candidate. The commit path re-validates adjacency
// and constraints inside grid.Connect, so a candidate that was valid during
// filtering can still fail here; that is reported as false, not an error.
func (b *Builder) addToChain(c *chain.Chain, p *grid.Point) bool {
	if !c.CanAdd(p) {
		return false
	}
	return c.Add(p) == nil
}

// selectStart picks the unconnected point with the fewest unconnected
// neighbors, ties broken by row-major scan order (first encountered wins).
// Points with few free neighbors risk becoming unreachable later; seeding
// there connects them while their neighbors are still free. Returns nil
// when every point is connected.
func (b *Builder) selectStart() *grid.Point {
	var best *grid.Point
	bestFree := -1
	for _, p := range b.g.UnconnectedPoints() {
		free := b.g.UnconnectedNeighborCount(p)
		if best == nil || free < bestFree {
			best, bestFree = p, free
		}
	}
	return best
}

// bestNext returns the best constraint-valid extension of c, or nil. A
// candidate must pass the chain's structural CanAdd and have at least one
// link-capable endpoint whose connection the grid's constraints admit
// (short-circuiting on the first valid pair).
func (b *Builder) bestNext(c *chain.Chain) *grid.Point {
	if c.Empty() {
		return nil
	}
	var candidates []*grid.Point
	for _, p := range b.g.UnconnectedPoints() {
		if c.CanAdd(p) && b.hasValidEndpoint(c, p) {
			candidates = append(candidates, p)
		}
	}
	return b.pickBest(candidates)
}

// hasValidEndpoint reports whether some open endpoint of c has a
// constraint-valid connection to p.
func (b *Builder) hasValidEndpoint(c *chain.Chain, p *grid.Point) bool {
	for _, ep := range c.Endpoints() {
		if ep.CanLink() && p.At().Adjacent(ep.At()) && b.g.ValidateConnection(ep, p) {
			return true
		}
	}
	return false
}

// pickBest scores candidates by their unconnected-neighbor count (higher is
// more interior, keeping chains compact) plus a uniform tie-break in
// [0, tieBreakSpan). A single candidate short-circuits scoring, so the rng
// stream is not consumed.
func (b *Builder) pickBest(candidates []*grid.Point) *grid.Point {
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates[0]
	}
	best := candidates[0]
	bestScore := b.score(best)
	for _, p := range candidates[1:] {
		if s := b.score(p); s > bestScore {
			best, bestScore = p, s
		}
	}
	return best
}

// score is the candidate ranking signal: free-neighbor count plus the
// random tie-break component.
func (b *Builder) score(p *grid.Point) float64 {
	return float64(b.g.UnconnectedNeighborCount(p)) + b.rng.Float64()*tieBreakSpan
}
