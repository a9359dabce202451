package symbolic

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/sigmacompiler/crypto/ecc/bn254"
)

func newCurve() *bn254.G1 {
	return &bn254.G1{}
}

func TestScalarArithmetic(t *testing.T) {
	c := qt.New(t)
	order := newCurve().Order()

	a := ConstScalar(order, big.NewInt(5))
	b := ConstScalar(order, big.NewInt(3))

	sum, err := a.Add(b).Evaluate()
	c.Assert(err, qt.IsNil)
	c.Assert(sum.Cmp(big.NewInt(8)), qt.Equals, 0)

	diff, err := a.Sub(b).Evaluate()
	c.Assert(err, qt.IsNil)
	c.Assert(diff.Cmp(big.NewInt(2)), qt.Equals, 0)

	prod, err := a.Mul(b).Evaluate()
	c.Assert(err, qt.IsNil)
	c.Assert(prod.Cmp(big.NewInt(15)), qt.Equals, 0)

	neg, err := a.Neg().Evaluate()
	c.Assert(err, qt.IsNil)
	want := new(big.Int).Sub(order, big.NewInt(5))
	c.Assert(neg.Cmp(want), qt.Equals, 0)
}

func TestUnboundVarScalarFails(t *testing.T) {
	c := qt.New(t)
	order := newCurve().Order()
	v := VarScalar(order, "x")
	_, err := v.Evaluate()
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestBindDoesNotMutateOriginal(t *testing.T) {
	c := qt.New(t)
	order := newCurve().Order()
	v := VarScalar(order, "x")
	bound := v.Bind(big.NewInt(7))

	_, err := v.Evaluate()
	c.Assert(err, qt.Not(qt.IsNil), qt.Commentf("original Var must remain unbound"))

	val, err := bound.Evaluate()
	c.Assert(err, qt.IsNil)
	c.Assert(val.Cmp(big.NewInt(7)), qt.Equals, 0)
}

func TestPointArithmeticMatchesScalarMult(t *testing.T) {
	c := qt.New(t)
	curve := newCurve()
	order := curve.Order()

	g := curve.New()
	g.SetGenerator()
	gSym := ConstPoint(curve, g)

	three := ConstScalar(order, big.NewInt(3))
	scaled := Scale(three, gSym)

	got, err := scaled.Evaluate()
	c.Assert(err, qt.IsNil)

	want := curve.New()
	want.ScalarMult(g, big.NewInt(3))
	c.Assert(got.Equal(want), qt.IsTrue)
}

func TestPointAddSubNeg(t *testing.T) {
	c := qt.New(t)
	curve := newCurve()

	g := curve.New()
	g.SetGenerator()
	twoG := curve.New()
	twoG.ScalarMult(g, big.NewInt(2))

	gSym := ConstPoint(curve, g)
	twoGSym := ConstPoint(curve, twoG)

	sum, err := gSym.Add(twoGSym).Evaluate()
	c.Assert(err, qt.IsNil)
	want := curve.New()
	want.ScalarMult(g, big.NewInt(3))
	c.Assert(sum.Equal(want), qt.IsTrue)

	diff, err := twoGSym.Sub(gSym).Evaluate()
	c.Assert(err, qt.IsNil)
	c.Assert(diff.Equal(g), qt.IsTrue)

	neg, err := gSym.Neg().Evaluate()
	c.Assert(err, qt.IsNil)
	wantNeg := curve.New()
	wantNeg.Neg(g)
	c.Assert(neg.Equal(wantNeg), qt.IsTrue)
}

func TestUnboundVarPointFails(t *testing.T) {
	c := qt.New(t)
	curve := newCurve()
	v := VarPoint(curve, "P")
	_, err := v.Evaluate()
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestIndependentGeneratorDiffersFromGenerator(t *testing.T) {
	c := qt.New(t)
	curve := newCurve()
	g := Generator(curve)
	h := IndependentGenerator(curve)
	c.Assert(g.Equal(h), qt.IsFalse)
}

func TestIndependentGeneratorIsMemoized(t *testing.T) {
	c := qt.New(t)
	curve := newCurve()
	h1 := IndependentGenerator(curve)
	h2 := IndependentGenerator(curve)
	c.Assert(h1.Equal(h2), qt.IsTrue)
}
