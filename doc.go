// Package chaingrid computes covers of rectangular point grids by simple
// non-crossing chains.
//
// 🚀 What is chaingrid?
//
//	A small, focused library that connects every point of an N×M grid into
//	chains — simple polylines over the 8-neighborhood — under a pluggable
//	constraint pipeline:
//		• geom/       — integer-lattice segments and the crossing predicate
//		• constraint/ — ordered, toggleable connection constraints + engine
//		• grid/       — the point arena: adjacency, degree, connection state
//		• chain/      — one ordered simple path with endpoint growth
//		• cover/      — the greedy cover builder (batch and stepped modes)
//
// ✨ Why chaingrid?
//
//   - Deterministic by default — tie-breaking randomness is seedable,
//     same seed ⇒ identical cover
//   - Constraint-driven — non-crossing, min/max distance, or your own
//     predicates, evaluated in registration order
//   - Animation-ready — the stepped builder yields after every unit of
//     work so a frame loop can redraw between steps
//
// Quick ASCII example (3×3, chains 0 and 1):
//
//	0───0   1
//	    │   │
//	0───0   1
//
// The cmd/chaingrid command animates the build in the terminal; examples/
// holds a runnable walkthrough of both execution modes.
//
//	go get github.com/katalvlaran/chaingrid
package chaingrid
