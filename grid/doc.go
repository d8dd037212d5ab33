// Package grid implements the rectangular point lattice that chain covers
// are computed over: point storage, 8-directional adjacency, per-point
// connection degree, and constraint-gated connection mutation.
//
// What:
//
//   - Grid: a fixed rows × cols arena of Points, owning them exclusively,
//     together with exactly one constraint.Engine (constraints are
//     grid-scoped, not global).
//   - Point: stable handle into the arena. Each point carries its
//     coordinates, a connected flag, an optional chain id, and up to two
//     realized links to other points (degree ≤ 2 is a hard invariant).
//   - Connect/Disconnect: bidirectional link mutation that validates against
//     the engine and keeps stateful constraints notified.
//
// Why:
//
//   - A point with degree 1 is a chain endpoint, degree 2 an interior point,
//     degree 0 unconnected: the cover search reads all of its state from
//     here.
//   - Points are stored in one slice addressed by row-major index and link
//     to each other by index, so there are no ownership cycles and adjacency
//     mutation is O(1). The arena never reallocates, so *Point handles stay
//     valid for the grid's lifetime.
//
// Ordering:
//
//	AllPoints, UnconnectedPoints and ConnectedPoints scan in deterministic
//	row-major order. That order is the tie-break source for "first"
//	selections in the cover builder; do not reorder.
//
// Complexity:
//
//   - PointAt, Connect, Disconnect: O(1) plus constraint validation cost.
//   - Neighbors: O(1) (at most 8 cells).
//   - AllPoints / UnconnectedPoints / ConnectedPoints / Reset: O(rows·cols).
//
// Errors:
//
//   - ErrBadDimensions: rows or cols below 1.
package grid
