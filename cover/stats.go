package cover

import "github.com/katalvlaran/chaingrid/grid"

// Stats is a snapshot of the builder's coverage, in the shape display
// layers consume.
type Stats struct {
	TotalPoints       int
	ConnectedPoints   int
	UnconnectedPoints int
	// CoveragePercent is ConnectedPoints / TotalPoints × 100.
	CoveragePercent float64
	// TotalChains counts finalized chains only.
	TotalChains int
	// AverageChainLength is the mean connection count over finalized chains;
	// 0 when there are none.
	AverageChainLength float64
}

// Fields returns the snapshot as a named-numeric mapping, for display
// layers that render generic key/value tables.
func (s Stats) Fields() map[string]float64 {
	return map[string]float64{
		"total_points":         float64(s.TotalPoints),
		"connected_points":     float64(s.ConnectedPoints),
		"unconnected_points":   float64(s.UnconnectedPoints),
		"coverage_percentage":  s.CoveragePercent,
		"total_chains":         float64(s.TotalChains),
		"average_chain_length": s.AverageChainLength,
	}
}

// Stats computes the current coverage snapshot. The in-flight chain of a
// stepped build contributes its connected points but is not counted as a
// chain until finalized.
// Complexity: O(points + chains).
func (b *Builder) Stats() Stats {
	total := b.g.TotalPoints()
	connected := len(b.g.ConnectedPoints())

	s := Stats{
		TotalPoints:       total,
		ConnectedPoints:   connected,
		UnconnectedPoints: total - connected,
		TotalChains:       len(b.chains),
	}
	if total > 0 {
		s.CoveragePercent = float64(connected) / float64(total) * 100
	}
	if len(b.chains) > 0 {
		sum := 0
		for _, c := range b.chains {
			sum += c.Length()
		}
		s.AverageChainLength = float64(sum) / float64(len(b.chains))
	}
	return s
}

// ValidateSolution re-checks the finalized cover from first principles:
// every point connected, every chain structurally valid, and no point
// claimed by more than one chain.
// Complexity: O(points).
func (b *Builder) ValidateSolution() bool {
	if b.g.HasUnconnected() {
		return false
	}
	seen := make(map[*grid.Point]struct{}, b.g.TotalPoints())
	for _, c := range b.chains {
		if !c.Valid() {
			return false
		}
		for _, p := range c.Points() {
			if _, dup := seen[p]; dup {
				return false
			}
			seen[p] = struct{}{}
		}
	}
	return true
}
