package sigmaerrors

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestErrorMessage(t *testing.T) {
	c := qt.New(t)
	err := New(EquationCheckFailed, "check %d failed", 3)
	c.Assert(err.Error(), qt.Equals, "equation check failed: check 3 failed")
}

func TestTooManyScalarsMessage(t *testing.T) {
	c := qt.New(t)
	err := NewTooManyScalars(2, 5)
	c.Assert(err.Error(), qt.Equals, "too many scalars: expected 2, got 5")
	c.Assert(err.Kind, qt.Equals, TooManyScalars)
}

func TestWrapUnwrap(t *testing.T) {
	c := qt.New(t)
	inner := errors.New("inner failure")
	wrapped := Wrap(TranscriptError, inner, "transcript op failed")
	c.Assert(errors.Unwrap(wrapped), qt.Equals, inner)
}

func TestIsMatchesByKind(t *testing.T) {
	c := qt.New(t)
	a := New(UninstantiatedScalar, "a")
	b := New(UninstantiatedScalar, "b")
	c.Assert(errors.Is(a, b), qt.IsTrue)

	other := New(UninstantiatedPoint, "c")
	c.Assert(errors.Is(a, other), qt.IsFalse)
}

func TestSentinelsAreEquationCheckFailedEtc(t *testing.T) {
	c := qt.New(t)
	c.Assert(errors.Is(ErrEquationCheckFailed, ErrEquationCheckFailed), qt.IsTrue)
}
