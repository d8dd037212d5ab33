// Package geom provides the small integer-lattice geometry kernel shared by
// the chaingrid packages: grid coordinates, normalized line segments, and the
// segment-crossing predicate used by the non-crossing connection constraint.
//
// What:
//
//   - Pt: an integer (X, Y) grid coordinate; comparable, usable as a map key.
//   - Segment: an unordered pair of endpoints, normalized so (p,q) == (q,p).
//   - SegmentsCross: exact crossing test for two segments, with the convention
//     that segments sharing an endpoint do NOT cross (chain continuations are
//     legitimate, not collisions).
//
// Why:
//
//   - Chain covers forbid realized connections from crossing geometrically;
//     every candidate connection is tested against every tracked segment.
//   - Keeping coordinates as a tiny value type lets constraints validate
//     proposed connections without depending on the grid package.
//
// Crossing test pipeline (in order):
//
//  1. Shared endpoint ⇒ no crossing.
//  2. Axis-aligned bounding boxes disjoint ⇒ no crossing (cheap early-out).
//  3. Cross-product determinant of the direction vectors; |det| > 1e-10 ⇒
//     solve both interpolation parameters via Cramer's rule and require
//     t1, t2 ∈ [0, 1].
//  4. Parallel/collinear (|det| ≤ 1e-10) ⇒ 1D interval overlap on the axis
//     with the larger span of the first segment.
//
// Complexity: every operation is O(1).
package geom
