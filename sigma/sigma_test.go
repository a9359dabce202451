package sigma

import (
	"crypto/rand"
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/sigmacompiler/crypto/ecc/bn254"
	"github.com/vocdoni/sigmacompiler/symbolic"
)

type testWitness struct {
	X *symbolic.SymScalar
}

type testInstance struct {
	Y *symbolic.SymPoint
}

func newTestProtocol(curve *bn254.G1) Protocol[testWitness, testInstance] {
	g := symbolic.WellKnownConst(curve, "G", symbolic.Generator(curve))
	return Protocol[testWitness, testInstance]{
		Label: "test-schnorr",
		Curve: curve,
		F: func(x *testInstance) []*symbolic.SymPoint {
			return []*symbolic.SymPoint{x.Y}
		},
		Psi: func(w *testWitness, x *testInstance) []*symbolic.SymPoint {
			return []*symbolic.SymPoint{symbolic.Scale(w.X, g)}
		},
	}
}

func newCurve() *bn254.G1 {
	return &bn254.G1{}
}

func buildInstance(curve *bn254.G1, secret *big.Int) (*testWitness, *testInstance) {
	g := curve.New()
	g.SetGenerator()
	y := curve.New()
	y.ScalarMult(g, secret)
	return &testWitness{X: symbolic.ConstScalar(curve.Order(), secret)}, &testInstance{Y: symbolic.ConstPoint(curve, y)}
}

func TestProveVerifyCompleteness(t *testing.T) {
	c := qt.New(t)
	curve := newCurve()
	p := newTestProtocol(curve)

	w, x := buildInstance(curve, big.NewInt(42))
	proof, err := Prove(p, rand.Reader, w, x)
	c.Assert(err, qt.IsNil)
	c.Assert(len(proof), qt.Equals, 64)

	c.Assert(Verify(p, x, proof), qt.IsNil)
}

func TestVerifyRejectsFlippedByte(t *testing.T) {
	c := qt.New(t)
	curve := newCurve()
	p := newTestProtocol(curve)

	w, x := buildInstance(curve, big.NewInt(42))
	proof, err := Prove(p, rand.Reader, w, x)
	c.Assert(err, qt.IsNil)

	for i := range proof {
		tampered := make([]byte, len(proof))
		copy(tampered, proof)
		tampered[i] ^= 0x01
		c.Assert(Verify(p, x, tampered), qt.Not(qt.IsNil), qt.Commentf("byte %d", i))
	}
}

func TestVerifyRejectsWrongInstance(t *testing.T) {
	c := qt.New(t)
	curve := newCurve()
	p := newTestProtocol(curve)

	w, x := buildInstance(curve, big.NewInt(42))
	_, wrongX := buildInstance(curve, big.NewInt(43))

	proof, err := Prove(p, rand.Reader, w, x)
	c.Assert(err, qt.IsNil)
	c.Assert(Verify(p, wrongX, proof), qt.Not(qt.IsNil))
}

func TestVerifyRejectsWrongProofLength(t *testing.T) {
	c := qt.New(t)
	curve := newCurve()
	p := newTestProtocol(curve)
	_, x := buildInstance(curve, big.NewInt(42))

	err := Verify(p, x, make([]byte, 33))
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestRegisterPanicsOnPointWitness(t *testing.T) {
	c := qt.New(t)
	curve := newCurve()

	type badWitness struct {
		P *symbolic.SymPoint
	}

	defer func() {
		r := recover()
		c.Assert(r, qt.Not(qt.IsNil))
	}()

	Register(Protocol[badWitness, testInstance]{
		Label: "bad-protocol",
		Curve: curve,
		F: func(x *testInstance) []*symbolic.SymPoint {
			return []*symbolic.SymPoint{x.Y}
		},
		Psi: func(w *badWitness, x *testInstance) []*symbolic.SymPoint {
			return []*symbolic.SymPoint{w.P}
		},
	})
}

func TestSpecRendersWitnessAndInstanceNames(t *testing.T) {
	c := qt.New(t)
	curve := newCurve()
	p := newTestProtocol(curve)

	doc, err := Spec(p)
	c.Assert(err, qt.IsNil)
	c.Assert(doc, qt.Contains, "test-schnorr")
	c.Assert(doc, qt.Contains, "X")
	c.Assert(doc, qt.Contains, "Y")
	c.Assert(doc, qt.Contains, "G")
}
