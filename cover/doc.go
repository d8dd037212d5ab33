// Package cover computes a cover of a grid by simple chains: every point
// ends up in exactly one chain, every chain respects its connection cap, and
// every realized connection satisfies the grid's constraint engine (with the
// default set, no two connections cross geometrically).
//
// What:
//
//   - Builder: the greedy search. Repeatedly seeds a chain at the unconnected
//     point with the fewest unconnected neighbors, then extends it with the
//     best constraint-valid candidate until the chain is full or stuck.
//   - Build: run to completion over an attempt budget; fatal *CoverageError
//     if points remain unconnected afterwards.
//   - Start / Step / Done: the same search driven one step at a time, so a
//     caller (e.g. a frame loop) can interleave redraws between steps.
//   - Stats / ValidateSolution: coverage snapshot and full solution recheck.
//
// Why:
//
//   - Seeding at the point with the fewest free neighbors connects the points
//     most at risk of isolation while their neighbors are still free.
//   - Extension prefers candidates with more unconnected neighbors, keeping
//     chains compact; ties are broken by a small uniform random component
//     from the builder's own seedable source. The randomness never changes
//     the candidate set, only which equally-good candidate wins, so repeated
//     builds differ in structure but never in validity.
//
// Determinism:
//
//	Same seed ⇒ identical results. Options.Seed == 0 selects a fixed default
//	seed; there is no time-based source anywhere.
//
// Failure semantics:
//
//	Local failures (a candidate cannot be committed) finalize the current
//	chain and continue; they are ordinary search outcomes. Step never returns
//	an error. Only Build fails, and only after the attempt budget is spent
//	with points still unconnected.
//
// Complexity: one extension step scans all unconnected points against up to
// two endpoints, so Build is O(n²) constraint checks on an n-point grid in
// the worst case.
//
// Errors:
//
//   - ErrNilGrid: construction without a grid.
//   - ErrNegativeMax: construction with a negative per-chain connection cap.
//   - ErrCoverage / *CoverageError: batch build left points unconnected.
package cover
