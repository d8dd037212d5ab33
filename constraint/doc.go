// Package constraint implements the pluggable validation pipeline that gates
// connections between grid points.
//
// What:
//
//   - Constraint: a named, independently toggleable predicate over a proposed
//     connection (a pair of geom.Pt), returning pass/fail.
//   - ConnectionObserver: the capability interface stateful constraints
//     implement to track realized connections (OnConnect / OnDisconnect /
//     Clear); the Engine notifies every constraint that implements it.
//   - Engine: a flat, ordered name → constraint registry. Validation runs in
//     registration order, skips disabled constraints, and short-circuits on
//     the first failure.
//   - Built-ins: NonCrossing (enabled by default), MaxDistance and
//     MinDistance (disabled by default, configurable thresholds).
//
// Why:
//
//   - Chain-cover search needs cheap per-candidate validation with clear
//     failure attribution; an ordered short-circuit pipeline gives both.
//   - Toggles let a presentation layer enable or disable rules at runtime
//     without rebuilding the grid.
//
// Error containment:
//
//	A constraint whose Validate returns a non-nil error is converted into a
//	validation failure for that constraint, carrying the error text as the
//	reason. The Engine never propagates constraint errors upward: a
//	malfunctioning predicate blocks the connection instead of crashing the
//	search.
//
// Complexity:
//
//   - Engine.Validate / ValidateFast: O(constraints) plus each constraint's
//     own cost (NonCrossing is O(tracked segments), distance checks O(1)).
//   - Add / Remove / Enable / Disable: O(1) map operations (Remove is O(n)
//     in the order slice).
//
// Errors:
//
//   - ErrDuplicateConstraint: Add was called with an already-registered name.
package constraint
