package okamoto

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
	y, err := rand.Int(rand.Reader, curve.Order())
	c.Assert(err, qt.IsNil)

	point := Commit(curve, x, y)

	w := NewWitness(curve, x, y)
	inst := NewInstance(curve, point)

	proof, err := sigma.Prove(proto, rand.Reader, w, inst)
	c.Assert(err, qt.IsNil)
	c.Assert(len(proof), qt.Equals, 96)

	err = sigma.Verify(proto, inst, proof)
	c.Assert(err, qt.IsNil)
}

func TestVerifyRejectsBadWitness(t *testing.T) {
	c := qt.New(t)
	curve := curves.New(bn254.CurveType)
	proto := New(curve)

	x, err := rand.Int(rand.Reader, curve.Order())
	c.Assert(err, qt.IsNil)
	y, err := rand.Int(rand.Reader, curve.Order())
	c.Assert(err, qt.IsNil)
	point := Commit(curve, x, y)

	badY, err := rand.Int(rand.Reader, curve.Order())
	c.Assert(err, qt.IsNil)

	w := NewWitness(curve, x, badY)
	inst := NewInstance(curve, point)

	proof, err := sigma.Prove(proto, rand.Reader, w, inst)
	c.Assert(err, qt.IsNil)

	err = sigma.Verify(proto, inst, proof)
	c.Assert(err, qt.Not(qt.IsNil))
}
