// Package okamoto implements the Okamoto identification protocol — proof of
// knowledge of x, y such that P = x·G + y·H for two independent generators
// G, H — as a client of the generic Σ driver.
package okamoto

import (
	"math/big"

	"github.com/vocdoni/sigmacompiler/crypto/ecc"
	"github.com/vocdoni/sigmacompiler/sigma"
	"github.com/vocdoni/sigmacompiler/symbolic"
)

const Label = "okamoto-protocol"

// Witness holds the two discrete logs being proven.
type Witness struct {
	X *symbolic.SymScalar
	Y *symbolic.SymScalar
}

// Instance holds the commitment P = x·G + y·H.
type Instance struct {
	Point *symbolic.SymPoint
}

func init() {
	sigma.Register(sigma.Protocol[Witness, Instance]{Label: Label})
}

// New builds the protocol definition for curve.
func New(curve ecc.Point) sigma.Protocol[Witness, Instance] {
	g := symbolic.WellKnownConst(curve, "G", symbolic.Generator(curve))
	h := symbolic.WellKnownConst(curve, "H", symbolic.IndependentGenerator(curve))
	return sigma.Protocol[Witness, Instance]{
		Label: Label,
		Curve: curve,
		F: func(x *Instance) []*symbolic.SymPoint {
			return []*symbolic.SymPoint{x.Point}
		},
		Psi: func(w *Witness, _ *Instance) []*symbolic.SymPoint {
			return []*symbolic.SymPoint{symbolic.Scale(w.X, g).Add(symbolic.Scale(w.Y, h))}
		},
	}
}

// NewInstance binds a concrete commitment point into an Instance.
func NewInstance(curve ecc.Point, point ecc.Point) *Instance {
	return &Instance{Point: symbolic.VarPoint(curve, "Point").Bind(point)}
}

// NewWitness binds concrete discrete logs into a Witness.
func NewWitness(curve ecc.Point, x, y *big.Int) *Witness {
	return &Witness{
		X: symbolic.VarScalar(curve.Order(), "X").Bind(x),
		Y: symbolic.VarScalar(curve.Order(), "Y").Bind(y),
	}
}

// Commit computes the public commitment x·G + y·H for curve.
func Commit(curve ecc.Point, x, y *big.Int) ecc.Point {
	g := curve.New()
	g.SetGenerator()
	xg := curve.New()
	xg.ScalarMult(g, x)

	h := symbolic.IndependentGenerator(curve)
	yh := curve.New()
	yh.ScalarMult(h, y)

	out := curve.New()
	out.Add(xg, yh)
	return out
}
