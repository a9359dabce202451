package sigma

import (
	"github.com/vocdoni/sigmacompiler/reflectrecord"
	"github.com/vocdoni/sigmacompiler/sigmaerrors"
	"github.com/vocdoni/sigmacompiler/transcript"
)

// Verify checks proof against x. It recomputes f(X), reads back the
// prover's commitments and response scalars, reassembles the response
// witness, and checks ψ(Z,X) == A + e·f(X) component-wise. On rejection it
// reports only that the equation check failed, never which component
// diverged.
func Verify[W any, I any](p Protocol[W, I], x *I, proof []byte) error {
	if len(proof)%32 != 0 {
		return sigmaerrors.New(sigmaerrors.TranscriptFinalizationFailed, "proof length %d is not a multiple of 32", len(proof))
	}

	order := p.Curve.Order()
	tr := transcript.NewVerifier(p.Curve, proof)

	if err := absorbInstance(tr, order, x); err != nil {
		return err
	}

	claimExprs := p.F(x)
	claims, err := evaluateAll(claimExprs)
	if err != nil {
		return err
	}

	commitments, err := tr.VerifierReceivePoints(len(claims))
	if err != nil {
		return err
	}

	e, err := tr.Challenge(order)
	if err != nil {
		return err
	}

	responses, err := tr.VerifierReceiveAllScalars(order)
	if err != nil {
		return err
	}

	z, err := reflectrecord.FromScalars[W](responses, order)
	if err != nil {
		return err
	}

	checkExprs := p.Psi(z, x)
	checks, err := evaluateAll(checkExprs)
	if err != nil {
		return err
	}
	if len(checks) != len(claims) {
		return sigmaerrors.New(sigmaerrors.PsiOutputLengthMismatch, "f produced %d components, psi produced %d", len(claims), len(checks))
	}

	ok := true
	for k := range claims {
		rhs := p.Curve.New()
		scaled := p.Curve.New()
		scaled.ScalarMult(claims[k], e)
		rhs.Add(commitments[k], scaled)
		if !checks[k].Equal(rhs) {
			ok = false
		}
	}
	if !ok {
		return sigmaerrors.ErrEquationCheckFailed
	}
	return nil
}
