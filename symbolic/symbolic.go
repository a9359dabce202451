// Package symbolic implements the lazy expression trees (SymScalar,
// SymPoint) that the sigma driver compiles into concrete group and field
// arithmetic only at evaluation time. Trees are built with plain
// constructor functions rather than operator overloading, which Go lacks.
package symbolic

import (
	"math/big"

	"github.com/vocdoni/sigmacompiler/crypto/ecc"
	"github.com/vocdoni/sigmacompiler/sigmaerrors"
)

// Curve is the group prototype a symbolic tree evaluates against. Every
// SymPoint belonging to one proof must share the same concrete Curve type.
type Curve = ecc.Point

type scalarKind int

const (
	scalarConst scalarKind = iota
	scalarVar
	scalarAdd
	scalarSub
	scalarNeg
	scalarMul
)

// SymScalar is a lazily-evaluated 𝔽 expression.
type SymScalar struct {
	kind  scalarKind
	order *big.Int // scalar field modulus, carried for reduction
	val   *big.Int // Const / Var payload; nil for Var until bound
	name  string    // display name for a Var leaf, used only by the renderer
	a, b  *SymScalar
}

// ConstScalar builds a leaf bound to a known field element, reduced modulo
// order.
func ConstScalar(order, v *big.Int) *SymScalar {
	return &SymScalar{kind: scalarConst, order: order, val: ecc.BigToFF(order, v)}
}

// VarScalar builds an unbound leaf tagged with a display name (used only by
// the spec renderer; pass "" if the tree will never be rendered). Bind
// fills the value in before Evaluate.
func VarScalar(order *big.Int, name string) *SymScalar {
	return &SymScalar{kind: scalarVar, order: order, name: name}
}

// Name returns the display name given to a Var leaf at construction, or ""
// for anything else.
func (s *SymScalar) Name() string {
	if s.kind == scalarVar {
		return s.name
	}
	return ""
}

// Bind assigns a value to a Var leaf, returning a new bound SymScalar; it
// does not mutate s, since trees are shared across prover/verifier calls.
func (s *SymScalar) Bind(v *big.Int) *SymScalar {
	bound := *s
	bound.val = ecc.BigToFF(s.order, v)
	return &bound
}

// Add returns this+rhs.
func (s *SymScalar) Add(rhs *SymScalar) *SymScalar {
	return &SymScalar{kind: scalarAdd, order: s.order, a: s, b: rhs}
}

// Sub returns this-rhs.
func (s *SymScalar) Sub(rhs *SymScalar) *SymScalar {
	return &SymScalar{kind: scalarSub, order: s.order, a: s, b: rhs}
}

// Neg returns -this.
func (s *SymScalar) Neg() *SymScalar {
	return &SymScalar{kind: scalarNeg, order: s.order, a: s}
}

// Mul returns this*rhs.
func (s *SymScalar) Mul(rhs *SymScalar) *SymScalar {
	return &SymScalar{kind: scalarMul, order: s.order, a: s, b: rhs}
}

// Evaluate walks the tree, failing with UninstantiatedScalar if any Var
// leaf was never bound.
func (s *SymScalar) Evaluate() (*big.Int, error) {
	switch s.kind {
	case scalarConst:
		return new(big.Int).Set(s.val), nil
	case scalarVar:
		if s.val == nil {
			return nil, sigmaerrors.ErrUninstantiatedScalar
		}
		return new(big.Int).Set(s.val), nil
	case scalarAdd:
		av, err := s.a.Evaluate()
		if err != nil {
			return nil, err
		}
		bv, err := s.b.Evaluate()
		if err != nil {
			return nil, err
		}
		return ecc.BigToFF(s.order, new(big.Int).Add(av, bv)), nil
	case scalarSub:
		av, err := s.a.Evaluate()
		if err != nil {
			return nil, err
		}
		bv, err := s.b.Evaluate()
		if err != nil {
			return nil, err
		}
		return ecc.BigToFF(s.order, new(big.Int).Sub(av, bv)), nil
	case scalarNeg:
		av, err := s.a.Evaluate()
		if err != nil {
			return nil, err
		}
		return ecc.BigToFF(s.order, new(big.Int).Neg(av)), nil
	case scalarMul:
		av, err := s.a.Evaluate()
		if err != nil {
			return nil, err
		}
		bv, err := s.b.Evaluate()
		if err != nil {
			return nil, err
		}
		return ecc.BigToFF(s.order, new(big.Int).Mul(av, bv)), nil
	default:
		return nil, sigmaerrors.ErrUninstantiatedScalar
	}
}

// Order returns the scalar field modulus this expression was built against.
func (s *SymScalar) Order() *big.Int { return s.order }

// ScalarNode is a one-level view of a SymScalar tree, for the spec
// renderer to walk without reaching into unexported fields.
type ScalarNode struct {
	Op       string // "const", "var", "add", "sub", "neg", "mul"
	Name     string // set for "var"
	A, B     *SymScalar
	Constant *big.Int // set for "const"
}

// Node returns a one-level view of s for rendering.
func (s *SymScalar) Node() ScalarNode {
	switch s.kind {
	case scalarConst:
		return ScalarNode{Op: "const", Constant: s.val}
	case scalarVar:
		return ScalarNode{Op: "var", Name: s.name}
	case scalarAdd:
		return ScalarNode{Op: "add", A: s.a, B: s.b}
	case scalarSub:
		return ScalarNode{Op: "sub", A: s.a, B: s.b}
	case scalarNeg:
		return ScalarNode{Op: "neg", A: s.a}
	case scalarMul:
		return ScalarNode{Op: "mul", A: s.a, B: s.b}
	default:
		return ScalarNode{Op: "unknown"}
	}
}

type pointKind int

const (
	pointConst pointKind = iota
	pointWellKnownConst
	pointVar
	pointAdd
	pointSub
	pointNeg
	pointScale
)

// SymPoint is a lazily-evaluated 𝔾 expression.
type SymPoint struct {
	kind  pointKind
	curve Curve
	name  string // display name: set for WellKnownConst ("G", "H") or a Var leaf
	val   Curve  // Const / WellKnownConst / Var payload
	s     *SymScalar
	a, b  *SymPoint
}

// ConstPoint builds an anonymous bound leaf.
func ConstPoint(curve Curve, p Curve) *SymPoint {
	return &SymPoint{kind: pointConst, curve: curve, val: p}
}

// WellKnownConst builds a bound leaf carrying a display name, used by the
// renderer to print "G"/"H" instead of walking further.
func WellKnownConst(curve Curve, name string, p Curve) *SymPoint {
	return &SymPoint{kind: pointWellKnownConst, curve: curve, name: name, val: p}
}

// VarPoint builds an unbound leaf tagged with a display name (used only by
// the spec renderer; pass "" if the tree will never be rendered). Bind
// fills it in before Evaluate.
func VarPoint(curve Curve, name string) *SymPoint {
	return &SymPoint{kind: pointVar, curve: curve, name: name}
}

// Bind assigns a value to a Var leaf, returning a new bound SymPoint; p
// itself is left untouched.
func (p *SymPoint) Bind(v Curve) *SymPoint {
	bound := *p
	bound.val = v
	return &bound
}

// Add returns this+rhs.
func (p *SymPoint) Add(rhs *SymPoint) *SymPoint {
	return &SymPoint{kind: pointAdd, curve: p.curve, a: p, b: rhs}
}

// Sub returns this-rhs.
func (p *SymPoint) Sub(rhs *SymPoint) *SymPoint {
	return &SymPoint{kind: pointSub, curve: p.curve, a: p, b: rhs}
}

// Neg returns -this.
func (p *SymPoint) Neg() *SymPoint {
	return &SymPoint{kind: pointNeg, curve: p.curve, a: p}
}

// Scale returns s*p, the only cross-type constructor between SymScalar and
// SymPoint.
func Scale(s *SymScalar, p *SymPoint) *SymPoint {
	return &SymPoint{kind: pointScale, curve: p.curve, s: s, a: p}
}

// Name returns the display name for a WellKnownConst or Var leaf, or "" for
// anything else.
func (p *SymPoint) Name() string {
	if p.kind == pointWellKnownConst || p.kind == pointVar {
		return p.name
	}
	return ""
}

// IsWellKnownConst reports whether p is a WellKnownConst leaf specifically
// (as opposed to a named Var), for renderer disambiguation.
func (p *SymPoint) IsWellKnownConst() bool {
	return p.kind == pointWellKnownConst
}

// PointNode is a one-level view of a SymPoint tree, for the spec renderer
// to walk without reaching into unexported fields.
type PointNode struct {
	Op   string // "const", "wellknown", "var", "add", "sub", "neg", "scale"
	Name string // set for "wellknown" and "var"
	S    *SymScalar
	A, B *SymPoint
}

// Node returns a one-level view of p for rendering.
func (p *SymPoint) Node() PointNode {
	switch p.kind {
	case pointConst:
		return PointNode{Op: "const"}
	case pointWellKnownConst:
		return PointNode{Op: "wellknown", Name: p.name}
	case pointVar:
		return PointNode{Op: "var", Name: p.name}
	case pointAdd:
		return PointNode{Op: "add", A: p.a, B: p.b}
	case pointSub:
		return PointNode{Op: "sub", A: p.a, B: p.b}
	case pointNeg:
		return PointNode{Op: "neg", A: p.a}
	case pointScale:
		return PointNode{Op: "scale", S: p.s, A: p.a}
	default:
		return PointNode{Op: "unknown"}
	}
}

// Evaluate walks the tree, failing with UninstantiatedPoint if any Var leaf
// was never bound, or with the field's error if a nested scalar is
// unbound.
func (p *SymPoint) Evaluate() (Curve, error) {
	switch p.kind {
	case pointConst, pointWellKnownConst:
		return p.val, nil
	case pointVar:
		if p.val == nil {
			return nil, sigmaerrors.ErrUninstantiatedPoint
		}
		return p.val, nil
	case pointAdd:
		av, err := p.a.Evaluate()
		if err != nil {
			return nil, err
		}
		bv, err := p.b.Evaluate()
		if err != nil {
			return nil, err
		}
		out := p.curve.New()
		out.Add(av, bv)
		return out, nil
	case pointSub:
		av, err := p.a.Evaluate()
		if err != nil {
			return nil, err
		}
		bv, err := p.b.Evaluate()
		if err != nil {
			return nil, err
		}
		negB := p.curve.New()
		negB.Neg(bv)
		out := p.curve.New()
		out.Add(av, negB)
		return out, nil
	case pointNeg:
		av, err := p.a.Evaluate()
		if err != nil {
			return nil, err
		}
		out := p.curve.New()
		out.Neg(av)
		return out, nil
	case pointScale:
		sv, err := p.s.Evaluate()
		if err != nil {
			return nil, err
		}
		av, err := p.a.Evaluate()
		if err != nil {
			return nil, err
		}
		out := p.curve.New()
		out.ScalarMult(av, sv)
		return out, nil
	default:
		return nil, sigmaerrors.ErrUninstantiatedPoint
	}
}
