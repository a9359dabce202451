// Package chaum implements the Chaum-Pedersen protocol — proof that two
// points share the same discrete log x relative to independent generators
// G and H, i.e. point1 = x·G and point2 = x·H — as a client of the generic
// Σ driver.
package chaum

import (
	"math/big"

	"github.com/vocdoni/sigmacompiler/crypto/ecc"
	"github.com/vocdoni/sigmacompiler/sigma"
	"github.com/vocdoni/sigmacompiler/symbolic"
)

const Label = "chaum-protocol"

// Witness holds the shared discrete log.
type Witness struct {
	X *symbolic.SymScalar
}

// Instance holds the two images of x under G and H.
type Instance struct {
	Point1 *symbolic.SymPoint
	Point2 *symbolic.SymPoint
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
			return []*symbolic.SymPoint{x.Point1, x.Point2}
		},
		Psi: func(w *Witness, _ *Instance) []*symbolic.SymPoint {
			return []*symbolic.SymPoint{symbolic.Scale(w.X, g), symbolic.Scale(w.X, h)}
		},
	}
}

// NewInstance binds concrete images into an Instance.
func NewInstance(curve ecc.Point, point1, point2 ecc.Point) *Instance {
	return &Instance{
		Point1: symbolic.VarPoint(curve, "Point1").Bind(point1),
		Point2: symbolic.VarPoint(curve, "Point2").Bind(point2),
	}
}

// NewWitness binds a concrete discrete log into a Witness.
func NewWitness(curve ecc.Point, x *big.Int) *Witness {
	return &Witness{X: symbolic.VarScalar(curve.Order(), "X").Bind(x)}
}

// Images computes (x·G, x·H) for curve.
func Images(curve ecc.Point, x *big.Int) (ecc.Point, ecc.Point) {
	g := curve.New()
	g.SetGenerator()
	p1 := curve.New()
	p1.ScalarMult(g, x)

	h := symbolic.IndependentGenerator(curve)
	p2 := curve.New()
	p2.ScalarMult(h, x)

	return p1, p2
}
