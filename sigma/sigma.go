// Package sigma implements the generic Σ-protocol driver: given a
// protocol's f and ψ as functions over reflection-derived witness/instance
// records, Prove and Verify run the three-move Fiat-Shamir-collapsed
// protocol and Spec renders a human-readable description of it.
package sigma

import (
	"fmt"
	"math/big"

	"github.com/vocdoni/sigmacompiler/crypto/ecc"
	"github.com/vocdoni/sigmacompiler/reflectrecord"
	"github.com/vocdoni/sigmacompiler/sigmaerrors"
	"github.com/vocdoni/sigmacompiler/symbolic"
)

// Protocol describes one Σ-protocol: a label, the curve it runs over, and
// its f (public claim) and ψ (commitment shape) equations, expressed over
// already-assembled witness/instance records.
type Protocol[W any, I any] struct {
	Label string
	Curve ecc.Point
	F     func(x *I) []*symbolic.SymPoint
	Psi   func(w *W, x *I) []*symbolic.SymPoint
}

// Register validates that W and I satisfy the structural reflection
// capability sets this protocol needs, and that W is scalar-only (a valid
// witness shape). Call it from a protocol package's init(); it panics on a
// malformed record, the Go analogue of a failed derive-macro expansion.
func Register[W any, I any](p Protocol[W, I]) {
	wSchema := reflectrecord.MustDescribe[W]()
	if wSchema.NumPoints() != 0 {
		panic(fmt.Sprintf("sigma: witness type for %q has point fields; witnesses must be scalar-only", p.Label))
	}
	reflectrecord.MustDescribe[I]()
}

func absorbInstance[I any](tr interface {
	CommonAbsorbPoint(ecc.Point) error
	CommonAbsorbScalar(*big.Int, *big.Int) error
}, order *big.Int, x *I) error {
	points, err := reflectrecord.Points(x)
	if err != nil {
		return err
	}
	for _, sp := range points {
		v, err := sp.Evaluate()
		if err != nil {
			return err
		}
		if err := tr.CommonAbsorbPoint(v); err != nil {
			return err
		}
	}
	scalars, err := reflectrecord.Values(x)
	if err != nil {
		return err
	}
	for _, v := range scalars {
		if err := tr.CommonAbsorbScalar(order, v); err != nil {
			return err
		}
	}
	return nil
}

func sigmaErrArityMismatch() error {
	return sigmaerrors.New(sigmaerrors.PsiOutputLengthMismatch, "witness and ephemeral randomness have different scalar arity")
}

func evaluateAll(pts []*symbolic.SymPoint) ([]ecc.Point, error) {
	out := make([]ecc.Point, len(pts))
	for i, p := range pts {
		v, err := p.Evaluate()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
