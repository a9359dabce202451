// Package schnorr implements the classic Schnorr identity protocol — proof
// of knowledge of a discrete log x such that X = x·G — as a client of the
// generic Σ driver.
package schnorr

import (
	"math/big"

	"github.com/vocdoni/sigmacompiler/crypto/ecc"
	"github.com/vocdoni/sigmacompiler/sigma"
	"github.com/vocdoni/sigmacompiler/symbolic"
)

const Label = "schnorr-identity-protocol"

// Witness holds the discrete log being proven.
type Witness struct {
	PrivateKey *symbolic.SymScalar
}

// Instance holds the public key X = x·G.
type Instance struct {
	PublicKey *symbolic.SymPoint
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
			return []*symbolic.SymPoint{x.PublicKey}
		},
		Psi: func(w *Witness, x *Instance) []*symbolic.SymPoint {
			return []*symbolic.SymPoint{symbolic.Scale(w.PrivateKey, symbolic.WellKnownConst(curve, "G", symbolic.Generator(curve)))}
		},
	}
}

// NewInstance binds a concrete public key into an Instance for Prove/Verify.
func NewInstance(curve ecc.Point, publicKey ecc.Point) *Instance {
	return &Instance{PublicKey: symbolic.VarPoint(curve, "PublicKey").Bind(publicKey)}
}

// NewWitness binds a concrete private key into a Witness for Prove.
func NewWitness(curve ecc.Point, privateKey *big.Int) *Witness {
	return &Witness{PrivateKey: symbolic.VarScalar(curve.Order(), "PrivateKey").Bind(privateKey)}
}
