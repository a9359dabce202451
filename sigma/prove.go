package sigma

import (
	"io"
	"math/big"

	"github.com/vocdoni/sigmacompiler/crypto/ecc"
	"github.com/vocdoni/sigmacompiler/reflectrecord"
	"github.com/vocdoni/sigmacompiler/transcript"
)

// Prove runs the Fiat-Shamir-collapsed three-move protocol for w, x and
// returns the wire-format proof bytes: |ψ(X)| commitment points (32 bytes
// each) followed by N_w response scalars (32 bytes each). rng supplies the
// prover's ephemeral randomness; Verify never touches it.
func Prove[W any, I any](p Protocol[W, I], rng io.Reader, w *W, x *I) ([]byte, error) {
	order := p.Curve.Order()
	tr := transcript.NewProver(p.Curve)

	if err := absorbInstance(tr, order, x); err != nil {
		return nil, err
	}

	alpha, err := reflectrecord.RandWitness[W](rng, order)
	if err != nil {
		return nil, err
	}

	commitmentExprs := p.Psi(alpha, x)
	commitments, err := evaluateAll(commitmentExprs)
	if err != nil {
		return nil, err
	}
	for _, c := range commitments {
		if err := tr.ProverAbsorbPoint(c); err != nil {
			return nil, err
		}
	}

	e, err := tr.Challenge(order)
	if err != nil {
		return nil, err
	}

	wVals, err := reflectrecord.Values(w)
	if err != nil {
		return nil, err
	}
	alphaVals, err := reflectrecord.Values(alpha)
	if err != nil {
		return nil, err
	}
	if len(wVals) != len(alphaVals) {
		return nil, sigmaErrArityMismatch()
	}

	for i := range wVals {
		z := new(big.Int).Mul(wVals[i], e)
		z.Add(z, alphaVals[i])
		z = ecc.BigToFF(order, z)
		if err := tr.ProverAbsorbScalar(order, z); err != nil {
			return nil, err
		}
	}

	return tr.Finalize()
}
