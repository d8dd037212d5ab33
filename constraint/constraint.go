package constraint

import (
	"errors"

	"github.com/katalvlaran/chaingrid/geom"
)

// ErrDuplicateConstraint indicates Add was called with a name that is
// already registered on the engine.
var ErrDuplicateConstraint = errors.New("constraint: constraint with this name already registered")

// AllPassed is the sentinel constraint name carried by a successful Result,
// meaning every enabled constraint accepted the connection.
const AllPassed = "all"

// Constraint is a named, independently toggleable predicate over a proposed
// connection between two grid points.
//
// Validate returns (false, nil) for an ordinary rejection. A non-nil error
// signals that the predicate itself malfunctioned; the Engine converts that
// into a failure of this constraint rather than propagating it.
type Constraint interface {
	// Name returns the unique registry key for this constraint.
	Name() string
	// Enabled reports whether the constraint currently participates in
	// validation.
	Enabled() bool
	// Enable turns the constraint on.
	Enable()
	// Disable turns the constraint off.
	Disable()
	// Describe returns a human-readable description of what the constraint
	// validates, for display layers.
	Describe() string
	// Validate reports whether a connection between a and b is allowed.
	Validate(a, b geom.Pt) (bool, error)
}

// ConnectionObserver is implemented by constraints that track realized
// connection state. The Engine pushes notifications to every registered
// constraint implementing it; no type-specific dispatch is needed.
type ConnectionObserver interface {
	// OnConnect records that the connection a-b was realized.
	OnConnect(a, b geom.Pt)
	// OnDisconnect records that the connection a-b was torn down.
	OnDisconnect(a, b geom.Pt)
	// Clear drops all tracked state, returning the observer to its
	// freshly-constructed condition.
	Clear()
}

// Result is the outcome of one full validation pass.
type Result struct {
	// OK reports whether the connection passed every enabled constraint.
	OK bool
	// Constraint is the name of the first failing constraint, or AllPassed.
	Constraint string
	// Reason is a human-readable failure explanation; informational on pass.
	Reason string
}

// toggle provides the shared Enabled/Enable/Disable plumbing for the
// built-in constraints.
type toggle struct {
	enabled bool
}

func (t *toggle) Enabled() bool { return t.enabled }
func (t *toggle) Enable()       { t.enabled = true }
func (t *toggle) Disable()      { t.enabled = false }
