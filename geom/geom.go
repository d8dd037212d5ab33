package geom

import "math"

// crossEpsilon bounds the determinant magnitude below which two segment
// direction vectors are treated as parallel.
const crossEpsilon = 1e-10

// Pt is an integer grid coordinate. X is the row index, Y the column index.
// Pt is comparable and is the canonical identity key for grid points.
type Pt struct {
	X, Y int
}

// Adjacent reports whether q lies within Chebyshev distance 1 of p,
// excluding p itself (8-neighborhood membership).
// Complexity: O(1).
func (p Pt) Adjacent(q Pt) bool {
	dx := absInt(p.X - q.X)
	dy := absInt(p.Y - q.Y)
	return dx <= 1 && dy <= 1 && dx+dy > 0
}

// Dist returns the Euclidean distance between p and q.
// Complexity: O(1).
func (p Pt) Dist(q Pt) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

// Less reports whether p orders lexicographically before q (X first, then Y).
// Used to normalize segment endpoints.
func (p Pt) Less(q Pt) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Segment is an unordered pair of grid points. Construct via NewSegment so
// that (p,q) and (q,p) compare equal and collide as map keys.
type Segment struct {
	A, B Pt
}

// NewSegment returns the normalized segment over p and q: the
// lexicographically smaller endpoint is stored first.
// Complexity: O(1).
func NewSegment(p, q Pt) Segment {
	if q.Less(p) {
		p, q = q, p
	}
	return Segment{A: p, B: q}
}

// SharesEndpoint reports whether s and o have at least one endpoint in common.
func (s Segment) SharesEndpoint(o Segment) bool {
	return s.A == o.A || s.A == o.B || s.B == o.A || s.B == o.B
}

// SegmentsCross reports whether segments s and o intersect geometrically.
// Segments that share an endpoint are defined to not cross: that is a chain
// continuation, not a collision.
// Complexity: O(1).
func SegmentsCross(s, o Segment) bool {
	if s.SharesEndpoint(o) {
		return false
	}
	if !boundingBoxesOverlap(s, o) {
		return false
	}
	return segmentsIntersect(s, o)
}

// boundingBoxesOverlap is the cheap rejection test: disjoint axis-aligned
// bounding boxes cannot contain an intersection.
func boundingBoxesOverlap(s, o Segment) bool {
	minX1, maxX1 := minMax(s.A.X, s.B.X)
	minY1, maxY1 := minMax(s.A.Y, s.B.Y)
	minX2, maxX2 := minMax(o.A.X, o.B.X)
	minY2, maxY2 := minMax(o.A.Y, o.B.Y)
	return !(maxX1 < minX2 || maxX2 < minX1 || maxY1 < minY2 || maxY2 < minY1)
}

// segmentsIntersect solves the parametric segment-segment equations.
// Non-parallel segments intersect iff both Cramer's-rule parameters lie in
// the closed interval [0, 1]; parallel segments degenerate to a 1D overlap
// check along the dominant axis of s.
func segmentsIntersect(s, o Segment) bool {
	// Direction vectors.
	d1x := s.B.X - s.A.X
	d1y := s.B.Y - s.A.Y
	d2x := o.B.X - o.A.X
	d2y := o.B.Y - o.A.Y

	det := float64(d1x*d2y - d1y*d2x)
	if math.Abs(det) < crossEpsilon {
		return collinearOverlap(s, o)
	}

	// Cramer's rule for the two interpolation parameters.
	d3x := s.A.X - o.A.X
	d3y := s.A.Y - o.A.Y
	t1 := float64(d2x*d3y-d2y*d3x) / det
	t2 := float64(d1x*d3y-d1y*d3x) / det

	return t1 >= 0 && t1 <= 1 && t2 >= 0 && t2 <= 1
}

// collinearOverlap handles the parallel/collinear case by projecting both
// segments onto whichever axis carries the larger span of s, then testing
// the resulting [min, max] intervals for overlap.
func collinearOverlap(s, o Segment) bool {
	var min1, max1, min2, max2 int
	if absInt(s.B.X-s.A.X) >= absInt(s.B.Y-s.A.Y) {
		min1, max1 = minMax(s.A.X, s.B.X)
		min2, max2 = minMax(o.A.X, o.B.X)
	} else {
		min1, max1 = minMax(s.A.Y, s.B.Y)
		min2, max2 = minMax(o.A.Y, o.B.Y)
	}
	return max1 >= min2 && max2 >= min1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minMax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}
