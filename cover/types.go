package cover

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrNilGrid indicates NewBuilder was called without a grid.
var ErrNilGrid = errors.New("cover: grid must not be nil")

// ErrNegativeMax indicates NewBuilder was called with a negative per-chain
// connection cap.
var ErrNegativeMax = errors.New("cover: max connections must be at least 0")

// ErrCoverage is the sentinel matched by errors.Is for any *CoverageError.
var ErrCoverage = errors.New("cover: failed to connect all points")

// CoverageError is the fatal outcome of a batch build that exhausted its
// attempt budget with points still unconnected. It signals a configuration
// problem (constraints too strict, connection cap too small), not a
// transient condition; retrying without changing the configuration will not
// help.
type CoverageError struct {
	// Unconnected is the number of points left without a chain.
	Unconnected int
}

// Error implements error.
func (e *CoverageError) Error() string {
	return fmt.Sprintf("cover: failed to connect all points, %d remain unconnected", e.Unconnected)
}

// Is matches ErrCoverage, so errors.Is(err, ErrCoverage) identifies the
// failure without unpacking the count.
func (e *CoverageError) Is(target error) bool { return target == ErrCoverage }

// maxAttempts bounds the outer seed-a-chain loop of a batch build.
const maxAttempts = 1000

// tieBreakSpan scales the uniform random tie-break added to candidate
// scores. It is smaller than the scoring granularity (whole neighbor
// counts), so it can only reorder equal scores.
const tieBreakSpan = 0.1

// defaultSeed is the fixed seed used when Options.Seed == 0. Arbitrary but
// stable, so the zero Options value is reproducible.
const defaultSeed int64 = 1

// Options configures a Builder.
type Options struct {
	// Seed initializes the builder's private random source used for
	// tie-breaking. Seed == 0 selects defaultSeed; any other value is used
	// verbatim. Same seed ⇒ identical build results.
	Seed int64
}

// DefaultOptions returns the canonical defaults: the fixed deterministic
// seed.
func DefaultOptions() Options { return Options{} }

// rngFromSeed returns a deterministic *rand.Rand under the seed==0 policy.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
