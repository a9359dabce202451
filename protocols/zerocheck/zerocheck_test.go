package zerocheck

import (
	"crypto/rand"
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/sigmacompiler/crypto/ecc/bn254"
	"github.com/vocdoni/sigmacompiler/crypto/ecc/curves"
	"github.com/vocdoni/sigmacompiler/sigma"
)

func TestProveVerifyRoundTrip(t *testing.T) {
	c := qt.New(t)
	curve := curves.New(bn254.CurveType)
	proto := New(curve)

	g := curve.New()
	g.SetGenerator()

	scalarA, err := rand.Int(rand.Reader, curve.Order())
	c.Assert(err, qt.IsNil)
	scalarB, err := rand.Int(rand.Reader, curve.Order())
	c.Assert(err, qt.IsNil)
	baseA := curve.New()
	baseA.ScalarMult(g, scalarA)
	baseB := curve.New()
	baseB.ScalarMult(g, scalarB)

	secret, err := rand.Int(rand.Reader, curve.Order())
	c.Assert(err, qt.IsNil)
	imageA, imageB := Images(baseA, baseB, secret)

	w := NewWitness(curve, secret)
	inst := NewInstance(curve, baseA, baseB, imageA, imageB)

	proof, err := sigma.Prove(proto, rand.Reader, w, inst)
	c.Assert(err, qt.IsNil)
	c.Assert(len(proof), qt.Equals, 96)

	err = sigma.Verify(proto, inst, proof)
	c.Assert(err, qt.IsNil)
}

func TestVerifyRejectsNonDDHTuple(t *testing.T) {
	c := qt.New(t)
	curve := curves.New(bn254.CurveType)
	proto := New(curve)

	baseA := curve.New()
	baseA.ScalarBaseMult(big.NewInt(7))
	baseB := curve.New()
	baseB.ScalarBaseMult(big.NewInt(11))

	secret, err := rand.Int(rand.Reader, curve.Order())
	c.Assert(err, qt.IsNil)
	other, err := rand.Int(rand.Reader, curve.Order())
	c.Assert(err, qt.IsNil)

	imageA, _ := Images(baseA, baseB, secret)
	_, imageB := Images(baseA, baseB, other)

	w := NewWitness(curve, secret)
	inst := NewInstance(curve, baseA, baseB, imageA, imageB)

	proof, err := sigma.Prove(proto, rand.Reader, w, inst)
	c.Assert(err, qt.IsNil)

	err = sigma.Verify(proto, inst, proof)
	c.Assert(err, qt.Not(qt.IsNil))
}
