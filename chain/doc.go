// Package chain models one simple (non-self-intersecting) polyline over grid
// points: an ordered member sequence with endpoint tracking, a per-chain
// connection cap, and structural validity checking.
//
// What:
//
//   - Chain: identified by an integer id, referencing (never owning) points
//     of one grid. Point count = connection count + 1 when non-empty.
//   - CanAdd / Add: growth at either endpoint, committed through the grid's
//     constraint-aware Connect so validation runs again at commit time and
//     stateful constraints stay notified.
//   - Valid: the structural invariant — for length ≥ 2, exactly two members
//     have degree 1 (the endpoints) and the rest degree 2, every member
//     carries this chain's id, and connections ≤ the cap.
//
// Why:
//
//   - The cover builder grows many chains against shared grid state; keeping
//     membership order here and degree state on the points lets both be
//     checked independently.
//
// Growth contract:
//
//	Callers should check CanAdd before Add. Add re-validates and commits via
//	the grid, so it can still fail (ErrNoEndpoint) when a constraint rejects
//	the connection at commit time; the cover builder treats that as "no
//	valid extension", not as a fault.
//
// Errors:
//
//   - ErrNegativeMax: construction with a negative connection cap.
//   - ErrCannotAdd: Add called while CanAdd is false.
//   - ErrNoEndpoint: no endpoint could accept the new point at commit time.
package chain
