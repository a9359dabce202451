// Package zerocheck implements a DDH-tuple membership proof: knowledge of a
// secret s such that imageA = s·baseA and imageB = s·baseB, for
// instance-supplied bases baseA, baseB (not fixed generators). This is the
// corrected formulation of the original's zero-check protocol, whose ψ and
// f mixed the fixed generators G/H with instance-supplied bases
// inconsistently; here ψ and f both range over the same instance-supplied
// bases, so the equation check is actually sound.
package zerocheck

import (
	"math/big"

	"github.com/vocdoni/sigmacompiler/crypto/ecc"
	"github.com/vocdoni/sigmacompiler/sigma"
	"github.com/vocdoni/sigmacompiler/symbolic"
)

const Label = "zero-check-protocol"

// Witness holds the shared discrete log.
type Witness struct {
	Secret *symbolic.SymScalar
}

// Instance holds the two bases and their claimed images under Secret.
type Instance struct {
	BaseA  *symbolic.SymPoint
	BaseB  *symbolic.SymPoint
	ImageA *symbolic.SymPoint
	ImageB *symbolic.SymPoint
}

func init() {
	sigma.Register(sigma.Protocol[Witness, Instance]{Label: Label})
}

// New builds the protocol definition for curve.
func New(curve ecc.Point) sigma.Protocol[Witness, Instance] {
	return sigma.Protocol[Witness, Instance]{
		Label: Label,
		Curve: curve,
		F: func(x *Instance) []*symbolic.SymPoint {
			return []*symbolic.SymPoint{x.ImageA, x.ImageB}
		},
		Psi: func(w *Witness, x *Instance) []*symbolic.SymPoint {
			return []*symbolic.SymPoint{
				symbolic.Scale(w.Secret, x.BaseA),
				symbolic.Scale(w.Secret, x.BaseB),
			}
		},
	}
}

// NewInstance binds concrete bases and images into an Instance.
func NewInstance(curve ecc.Point, baseA, baseB, imageA, imageB ecc.Point) *Instance {
	return &Instance{
		BaseA:  symbolic.VarPoint(curve, "BaseA").Bind(baseA),
		BaseB:  symbolic.VarPoint(curve, "BaseB").Bind(baseB),
		ImageA: symbolic.VarPoint(curve, "ImageA").Bind(imageA),
		ImageB: symbolic.VarPoint(curve, "ImageB").Bind(imageB),
	}
}

// NewWitness binds a concrete discrete log into a Witness.
func NewWitness(curve ecc.Point, secret *big.Int) *Witness {
	return &Witness{Secret: symbolic.VarScalar(curve.Order(), "Secret").Bind(secret)}
}

// Images computes (secret·baseA, secret·baseB).
func Images(baseA, baseB ecc.Point, secret *big.Int) (ecc.Point, ecc.Point) {
	imageA := baseA.New()
	imageA.ScalarMult(baseA, secret)
	imageB := baseB.New()
	imageB.ScalarMult(baseB, secret)
	return imageA, imageB
}
