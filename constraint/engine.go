package constraint

import (
	"fmt"

	"github.com/katalvlaran/chaingrid/geom"
)

// Engine is the central coordinator for zero or more connection constraints.
// Constraints are kept in registration order; names are unique.
//
// Engine is not safe for concurrent use; it is owned by a single grid and
// driven by a single builder at a time.
type Engine struct {
	byName map[string]Constraint
	order  []string
}

// NewEngine returns an empty engine with no constraints registered.
func NewEngine() *Engine {
	return &Engine{byName: make(map[string]Constraint)}
}

// Add registers c under its name. Returns ErrDuplicateConstraint if a
// constraint with the same name is already present.
func (e *Engine) Add(c Constraint) error {
	if _, exists := e.byName[c.Name()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateConstraint, c.Name())
	}
	e.byName[c.Name()] = c
	e.order = append(e.order, c.Name())
	return nil
}

// Remove unregisters the named constraint. Returns false if it was absent.
func (e *Engine) Remove(name string) bool {
	if _, exists := e.byName[name]; !exists {
		return false
	}
	delete(e.byName, name)
	for i, n := range e.order {
		if n == name {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the named constraint, if registered.
func (e *Engine) Get(name string) (Constraint, bool) {
	c, ok := e.byName[name]
	return c, ok
}

// Enable turns the named constraint on. Returns false if it was absent.
func (e *Engine) Enable(name string) bool {
	c, ok := e.byName[name]
	if !ok {
		return false
	}
	c.Enable()
	return true
}

// Disable turns the named constraint off. Returns false if it was absent.
func (e *Engine) Disable(name string) bool {
	c, ok := e.byName[name]
	if !ok {
		return false
	}
	c.Disable()
	return true
}

// IsEnabled reports whether the named constraint exists and is enabled.
func (e *Engine) IsEnabled(name string) bool {
	c, ok := e.byName[name]
	return ok && c.Enabled()
}

// Names returns the constraint names in registration order.
func (e *Engine) Names() []string {
	names := make([]string, len(e.order))
	copy(names, e.order)
	return names
}

// All returns every registered constraint (enabled and disabled) in
// registration order.
func (e *Engine) All() []Constraint {
	cs := make([]Constraint, 0, len(e.order))
	for _, name := range e.order {
		cs = append(cs, e.byName[name])
	}
	return cs
}

// EnabledConstraints returns the currently enabled constraints in
// registration order.
func (e *Engine) EnabledConstraints() []Constraint {
	cs := make([]Constraint, 0, len(e.order))
	for _, name := range e.order {
		if c := e.byName[name]; c.Enabled() {
			cs = append(cs, c)
		}
	}
	return cs
}

// Count returns the total number of registered constraints.
func (e *Engine) Count() int { return len(e.order) }

// EnabledCount returns the number of currently enabled constraints.
func (e *Engine) EnabledCount() int {
	n := 0
	for _, name := range e.order {
		if e.byName[name].Enabled() {
			n++
		}
	}
	return n
}

// ClearConstraints unregisters every constraint.
func (e *Engine) ClearConstraints() {
	e.byName = make(map[string]Constraint)
	e.order = nil
}

// Validate runs the proposed connection a-b through every enabled constraint
// in registration order, short-circuiting on the first failure. A constraint
// whose evaluation errors is reported as a failure of that constraint with
// the error message as the reason.
// Complexity: O(constraints) plus per-constraint cost.
func (e *Engine) Validate(a, b geom.Pt) Result {
	for _, name := range e.order {
		c := e.byName[name]
		if !c.Enabled() {
			continue
		}
		ok, err := c.Validate(a, b)
		if err != nil {
			return Result{
				OK:         false,
				Constraint: name,
				Reason:     fmt.Sprintf("constraint validation error: %v", err),
			}
		}
		if !ok {
			return Result{
				OK:         false,
				Constraint: name,
				Reason:     fmt.Sprintf("connection violates constraint that %s", c.Describe()),
			}
		}
	}
	return Result{OK: true, Constraint: AllPassed, Reason: "all constraints passed"}
}

// ValidateFast is the boolean-only form of Validate, used on the hot path.
func (e *Engine) ValidateFast(a, b geom.Pt) bool {
	return e.Validate(a, b).OK
}

// NotifyConnect informs every observing constraint that the connection a-b
// was realized.
func (e *Engine) NotifyConnect(a, b geom.Pt) {
	for _, name := range e.order {
		if obs, ok := e.byName[name].(ConnectionObserver); ok {
			obs.OnConnect(a, b)
		}
	}
}

// NotifyDisconnect informs every observing constraint that the connection
// a-b was torn down.
func (e *Engine) NotifyDisconnect(a, b geom.Pt) {
	for _, name := range e.order {
		if obs, ok := e.byName[name].(ConnectionObserver); ok {
			obs.OnDisconnect(a, b)
		}
	}
}

// ClearTracking resets every observing constraint's internal state. Called
// on grid reset so no stale segments leak into the next build.
func (e *Engine) ClearTracking() {
	for _, name := range e.order {
		if obs, ok := e.byName[name].(ConnectionObserver); ok {
			obs.Clear()
		}
	}
}
