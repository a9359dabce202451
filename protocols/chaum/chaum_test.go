package chaum

import (
	"crypto/rand"
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

	x, err := rand.Int(rand.Reader, curve.Order())
	c.Assert(err, qt.IsNil)
	p1, p2 := Images(curve, x)

	w := NewWitness(curve, x)
	inst := NewInstance(curve, p1, p2)

	proof, err := sigma.Prove(proto, rand.Reader, w, inst)
	c.Assert(err, qt.IsNil)
	c.Assert(len(proof), qt.Equals, 96)

	err = sigma.Verify(proto, inst, proof)
	c.Assert(err, qt.IsNil)
}

func TestVerifyRejectsMismatchedImages(t *testing.T) {
	c := qt.New(t)
	curve := curves.New(bn254.CurveType)
	proto := New(curve)

	x, err := rand.Int(rand.Reader, curve.Order())
	c.Assert(err, qt.IsNil)
	other, err := rand.Int(rand.Reader, curve.Order())
	c.Assert(err, qt.IsNil)

	p1, _ := Images(curve, x)
	_, p2 := Images(curve, other)

	w := NewWitness(curve, x)
	inst := NewInstance(curve, p1, p2)

	proof, err := sigma.Prove(proto, rand.Reader, w, inst)
	c.Assert(err, qt.IsNil)

	err = sigma.Verify(proto, inst, proof)
	c.Assert(err, qt.Not(qt.IsNil))
}
