package constraint_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chaingrid/constraint"
	"github.com/katalvlaran/chaingrid/geom"
)

// fakeConstraint is a scriptable constraint for engine-behavior tests.
type fakeConstraint struct {
	name    string
	enabled bool
	pass    bool
	err     error
	calls   int
}

func (f *fakeConstraint) Name() string     { return f.name }
func (f *fakeConstraint) Enabled() bool    { return f.enabled }
func (f *fakeConstraint) Enable()          { f.enabled = true }
func (f *fakeConstraint) Disable()         { f.enabled = false }
func (f *fakeConstraint) Describe() string { return "scripted test constraint " + f.name }

func (f *fakeConstraint) Validate(a, b geom.Pt) (bool, error) {
	f.calls++
	return f.pass, f.err
}

// fakeObserver additionally records notifications.
type fakeObserver struct {
	fakeConstraint
	connects    int
	disconnects int
	clears      int
}

func (f *fakeObserver) OnConnect(a, b geom.Pt)    { f.connects++ }
func (f *fakeObserver) OnDisconnect(a, b geom.Pt) { f.disconnects++ }
func (f *fakeObserver) Clear()                    { f.clears++ }

var (
	ptA = geom.Pt{X: 0, Y: 0}
	ptB = geom.Pt{X: 0, Y: 1}
)

// TestEngine_AddDuplicate verifies name uniqueness on registration.
func TestEngine_AddDuplicate(t *testing.T) {
	e := constraint.NewEngine()
	require.NoError(t, e.Add(&fakeConstraint{name: "a", enabled: true, pass: true}))

	err := e.Add(&fakeConstraint{name: "a", enabled: true, pass: true})
	assert.ErrorIs(t, err, constraint.ErrDuplicateConstraint, "duplicate name must be rejected")
	assert.Equal(t, 1, e.Count(), "failed Add must not grow the registry")
}

// TestEngine_RemoveAndToggles covers Remove/Enable/Disable/IsEnabled on
// present and absent names.
func TestEngine_RemoveAndToggles(t *testing.T) {
	e := constraint.NewEngine()
	require.NoError(t, e.Add(&fakeConstraint{name: "a", enabled: false, pass: true}))

	assert.False(t, e.IsEnabled("a"))
	assert.True(t, e.Enable("a"))
	assert.True(t, e.IsEnabled("a"))
	assert.True(t, e.Disable("a"))
	assert.False(t, e.IsEnabled("a"))

	assert.False(t, e.Enable("missing"))
	assert.False(t, e.Disable("missing"))
	assert.False(t, e.IsEnabled("missing"))

	assert.True(t, e.Remove("a"))
	assert.False(t, e.Remove("a"), "second removal must report absence")
	assert.Equal(t, 0, e.Count())
}

// TestEngine_ValidateOrderAndShortCircuit verifies registration-order
// evaluation with short-circuit on the first enabled failure.
func TestEngine_ValidateOrderAndShortCircuit(t *testing.T) {
	first := &fakeConstraint{name: "first", enabled: true, pass: true}
	skipped := &fakeConstraint{name: "skipped", enabled: false, pass: false}
	failing := &fakeConstraint{name: "failing", enabled: true, pass: false}
	unreached := &fakeConstraint{name: "unreached", enabled: true, pass: true}

	e := constraint.NewEngine()
	for _, c := range []constraint.Constraint{first, skipped, failing, unreached} {
		require.NoError(t, e.Add(c))
	}

	res := e.Validate(ptA, ptB)
	assert.False(t, res.OK)
	assert.Equal(t, "failing", res.Constraint, "failure attributed to first failing constraint")
	assert.NotEmpty(t, res.Reason)

	assert.Equal(t, 1, first.calls, "enabled predecessor evaluated once")
	assert.Equal(t, 0, skipped.calls, "disabled constraint skipped")
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 0, unreached.calls, "evaluation stops at first failure")
}

// TestEngine_ValidateAllPass verifies the success Result shape.
func TestEngine_ValidateAllPass(t *testing.T) {
	e := constraint.NewEngine()
	require.NoError(t, e.Add(&fakeConstraint{name: "a", enabled: true, pass: true}))
	require.NoError(t, e.Add(&fakeConstraint{name: "b", enabled: true, pass: true}))

	res := e.Validate(ptA, ptB)
	assert.True(t, res.OK)
	assert.Equal(t, constraint.AllPassed, res.Constraint)
	assert.True(t, e.ValidateFast(ptA, ptB))
}

// TestEngine_ValidateEmpty: an engine with no constraints accepts everything.
func TestEngine_ValidateEmpty(t *testing.T) {
	e := constraint.NewEngine()
	res := e.Validate(ptA, ptB)
	assert.True(t, res.OK)
	assert.Equal(t, constraint.AllPassed, res.Constraint)
}

// TestEngine_ErrorContainment: a constraint whose evaluation errors is
// reported as a failure of that constraint, never propagated upward.
func TestEngine_ErrorContainment(t *testing.T) {
	boom := &fakeConstraint{name: "boom", enabled: true, pass: true, err: errors.New("segment index corrupted")}
	after := &fakeConstraint{name: "after", enabled: true, pass: true}

	e := constraint.NewEngine()
	require.NoError(t, e.Add(boom))
	require.NoError(t, e.Add(after))

	res := e.Validate(ptA, ptB)
	assert.False(t, res.OK, "erroring constraint blocks the connection")
	assert.Equal(t, "boom", res.Constraint)
	assert.Contains(t, res.Reason, "segment index corrupted")
	assert.Equal(t, 0, after.calls, "error short-circuits like an ordinary failure")

	assert.False(t, e.ValidateFast(ptA, ptB))
}

// TestEngine_NotifyFanOut: only ConnectionObserver implementers receive
// connect/disconnect/clear notifications.
func TestEngine_NotifyFanOut(t *testing.T) {
	obs := &fakeObserver{fakeConstraint: fakeConstraint{name: "obs", enabled: true, pass: true}}
	plain := &fakeConstraint{name: "plain", enabled: true, pass: true}

	e := constraint.NewEngine()
	require.NoError(t, e.Add(obs))
	require.NoError(t, e.Add(plain))

	e.NotifyConnect(ptA, ptB)
	e.NotifyConnect(ptA, ptB)
	e.NotifyDisconnect(ptA, ptB)
	e.ClearTracking()

	assert.Equal(t, 2, obs.connects)
	assert.Equal(t, 1, obs.disconnects)
	assert.Equal(t, 1, obs.clears)
}

// TestEngine_OrderAccessors checks Names/All/EnabledConstraints ordering and
// the count accessors.
func TestEngine_OrderAccessors(t *testing.T) {
	e := constraint.NewEngine()
	require.NoError(t, e.Add(&fakeConstraint{name: "z", enabled: true, pass: true}))
	require.NoError(t, e.Add(&fakeConstraint{name: "a", enabled: false, pass: true}))
	require.NoError(t, e.Add(&fakeConstraint{name: "m", enabled: true, pass: true}))

	assert.Equal(t, []string{"z", "a", "m"}, e.Names(), "registration order, not lexical")
	assert.Equal(t, 3, e.Count())
	assert.Equal(t, 2, e.EnabledCount())

	enabled := e.EnabledConstraints()
	require.Len(t, enabled, 2)
	assert.Equal(t, "z", enabled[0].Name())
	assert.Equal(t, "m", enabled[1].Name())

	e.ClearConstraints()
	assert.Equal(t, 0, e.Count())
	assert.Empty(t, e.Names())
}
