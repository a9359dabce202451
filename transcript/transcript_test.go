package transcript

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/sigmacompiler/crypto/ecc/bn254"
)

func newCurve() *bn254.G1 {
	return &bn254.G1{}
}

func TestProverVerifierAgreeOnChallenge(t *testing.T) {
	c := qt.New(t)
	curve := newCurve()
	order := curve.Order()

	g := curve.New()
	g.SetGenerator()

	prover := NewProver(curve)
	c.Assert(prover.CommonAbsorbPoint(g), qt.IsNil)
	c.Assert(prover.ProverAbsorbPoint(g), qt.IsNil)
	eProver, err := prover.Challenge(order)
	c.Assert(err, qt.IsNil)
	c.Assert(prover.ProverAbsorbScalar(order, eProver), qt.IsNil)
	proof, err := prover.Finalize()
	c.Assert(err, qt.IsNil)
	c.Assert(len(proof), qt.Equals, 64)

	verifier := NewVerifier(curve, proof)
	c.Assert(verifier.CommonAbsorbPoint(g), qt.IsNil)
	commitments, err := verifier.VerifierReceivePoints(1)
	c.Assert(err, qt.IsNil)
	c.Assert(commitments[0].Equal(g), qt.IsTrue)
	eVerifier, err := verifier.Challenge(order)
	c.Assert(err, qt.IsNil)
	c.Assert(eVerifier.Cmp(eProver), qt.Equals, 0)

	scalars, err := verifier.VerifierReceiveAllScalars(order)
	c.Assert(err, qt.IsNil)
	c.Assert(len(scalars), qt.Equals, 1)
	c.Assert(scalars[0].Cmp(eProver), qt.Equals, 0)
}

func TestVerifierRoleChecksReject(t *testing.T) {
	c := qt.New(t)
	curve := newCurve()
	verifier := NewVerifier(curve, nil)
	err := verifier.ProverAbsorbPoint(curve.New())
	c.Assert(err, qt.Not(qt.IsNil))

	prover := NewProver(curve)
	_, err = prover.VerifierReceivePoints(1)
	c.Assert(err, qt.Not(qt.IsNil))

	_, err = prover.Finalize()
	c.Assert(err, qt.IsNil)

	_, err = verifier.Finalize()
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestVerifierReceiveAllScalarsRejectsNonCanonical(t *testing.T) {
	c := qt.New(t)
	curve := newCurve()
	order := curve.Order()

	buf := make([]byte, 32)
	order.FillBytes(buf) // == order, not canonical (must be < order)

	verifier := NewVerifier(curve, buf)
	_, err := verifier.VerifierReceiveAllScalars(order)
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestScalarToBytesIsBigEndianRightAligned(t *testing.T) {
	c := qt.New(t)
	order := newCurve().Order()
	buf := scalarToBytes(order, big.NewInt(1))
	c.Assert(buf[31], qt.Equals, byte(1))
	for i := 0; i < 31; i++ {
		c.Assert(buf[i], qt.Equals, byte(0))
	}
}
