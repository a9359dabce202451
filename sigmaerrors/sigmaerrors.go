// Package sigmaerrors defines the flat error taxonomy shared by the
// symbolic, reflectrecord, transcript, and sigma packages. Failures of
// proving or verification are reported as an *Error carrying one of the
// Kind values below, with call-site context attached by New or Wrap;
// reflectrecord reports schema problems and surplus points as plain errors.
package sigmaerrors

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a sigma protocol failure.
type Kind int

const (
	// UninstantiatedScalar is returned when evaluating a SymScalar whose
	// Var leaf was never bound.
	UninstantiatedScalar Kind = iota
	// UninstantiatedPoint is returned when evaluating a SymPoint whose
	// Var leaf was never bound.
	UninstantiatedPoint
	// InsufficientScalars is returned when a record is assembled from
	// fewer scalars than its declared arity requires.
	InsufficientScalars
	// InsufficientPoints is returned when a record is assembled from
	// fewer points than its declared arity requires.
	InsufficientPoints
	// TooManyScalars is returned when a record is assembled from more
	// scalars than its declared arity allows.
	TooManyScalars
	// EquationCheckFailed is returned when verification's recomputed
	// ψ(Z,X) disagrees with A + e·f(X) in at least one component.
	EquationCheckFailed
	// PsiOutputLengthMismatch is returned when ψ and f produce a
	// different number of point components for the same protocol. Prove
	// also returns it if the witness and its random blinding differ in
	// scalar arity.
	PsiOutputLengthMismatch
	// TranscriptFinalizationFailed is returned when a proof cannot be
	// framed into a transcript at all: its length is not a multiple of
	// 32 bytes, so there is no well-formed sequence of commitments and
	// responses to finalize against.
	TranscriptFinalizationFailed
	// TranscriptError is returned for any other transcript framing
	// failure: a prover/verifier role mismatch, or a non-canonical
	// scalar or point encoding.
	TranscriptError
)

func (k Kind) String() string {
	switch k {
	case UninstantiatedScalar:
		return "uninstantiated scalar"
	case UninstantiatedPoint:
		return "uninstantiated point"
	case InsufficientScalars:
		return "insufficient scalars"
	case InsufficientPoints:
		return "insufficient points"
	case TooManyScalars:
		return "too many scalars"
	case EquationCheckFailed:
		return "equation check failed"
	case PsiOutputLengthMismatch:
		return "psi output length mismatch"
	case TranscriptFinalizationFailed:
		return "transcript finalization failed"
	case TranscriptError:
		return "transcript error"
	default:
		return "unknown sigma error"
	}
}

// Error wraps a Kind with call-site context. Expected/Actual are populated
// only for TooManyScalars, mirroring that variant's two fields.
type Error struct {
	Kind     Kind
	Expected int
	Actual   int
	msg      string
	err      error
}

func (e *Error) Error() string {
	if e.Kind == TooManyScalars {
		return fmt.Sprintf("%s: expected %d, got %d", e.Kind, e.Expected, e.Actual)
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.err)
	}
	if e.msg != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.msg)
	}
	return e.Kind.String()
}

// NewTooManyScalars builds the TooManyScalars{Expected, Actual} variant.
func NewTooManyScalars(expected, actual int) *Error {
	return &Error{Kind: TooManyScalars, Expected: expected, Actual: actual}
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the same Kind, so callers can use
// errors.Is(err, sigmaerrors.ErrEquationCheckFailed) against the sentinels
// below.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind around an underlying error.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), err: err}
}

// Sentinel values for errors.Is comparisons against a bare Kind.
var (
	ErrUninstantiatedScalar         = &Error{Kind: UninstantiatedScalar}
	ErrUninstantiatedPoint          = &Error{Kind: UninstantiatedPoint}
	ErrInsufficientScalars          = &Error{Kind: InsufficientScalars}
	ErrInsufficientPoints           = &Error{Kind: InsufficientPoints}
	ErrTooManyScalars               = &Error{Kind: TooManyScalars}
	ErrEquationCheckFailed          = &Error{Kind: EquationCheckFailed}
	ErrPsiOutputLengthMismatch      = &Error{Kind: PsiOutputLengthMismatch}
	ErrTranscriptFinalizationFailed = &Error{Kind: TranscriptFinalizationFailed}
	ErrTranscriptError              = &Error{Kind: TranscriptError}
)
