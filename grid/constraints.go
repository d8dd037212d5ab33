package grid

import "github.com/katalvlaran/chaingrid/constraint"

// The grid owns its constraint engine exclusively. External layers get this
// narrow read/mutate surface instead of the engine itself, so nothing can
// desynchronize the engine's tracking state from the grid's links.

// AddConstraint registers a constraint on the grid's engine.
// Returns constraint.ErrDuplicateConstraint on a name collision.
func (g *Grid) AddConstraint(c constraint.Constraint) error {
	return g.engine.Add(c)
}

// RemoveConstraint unregisters the named constraint. Returns false if absent.
func (g *Grid) RemoveConstraint(name string) bool {
	return g.engine.Remove(name)
}

// Constraint returns the named constraint, if registered. Callers may use
// this to adjust thresholds (e.g. MaxDistance.SetLimit).
func (g *Grid) Constraint(name string) (constraint.Constraint, bool) {
	return g.engine.Get(name)
}

// EnableConstraint turns the named constraint on. Returns false if absent.
func (g *Grid) EnableConstraint(name string) bool {
	return g.engine.Enable(name)
}

// DisableConstraint turns the named constraint off. Returns false if absent.
func (g *Grid) DisableConstraint(name string) bool {
	return g.engine.Disable(name)
}

// ConstraintEnabled reports whether the named constraint exists and is on.
func (g *Grid) ConstraintEnabled(name string) bool {
	return g.engine.IsEnabled(name)
}

// ConstraintNames returns all constraint names in registration order.
func (g *Grid) ConstraintNames() []string {
	return g.engine.Names()
}

// ConstraintDescriptions maps each constraint name to its human-readable
// description, for display layers.
func (g *Grid) ConstraintDescriptions() map[string]string {
	out := make(map[string]string, g.engine.Count())
	for _, c := range g.engine.All() {
		out[c.Name()] = c.Describe()
	}
	return out
}

// ConstraintCounts returns (enabled, total) registered constraint counts.
func (g *Grid) ConstraintCounts() (enabled, total int) {
	return g.engine.EnabledCount(), g.engine.Count()
}
