package reflectrecord

import (
	"bytes"
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/sigmacompiler/crypto/ecc/bn254"
	"github.com/vocdoni/sigmacompiler/symbolic"
)

type flatWitness struct {
	A *symbolic.SymScalar
	B *symbolic.SymScalar
}

type nested struct {
	X *symbolic.SymScalar
}

type nestedInstance struct {
	Inner nested
	P     *symbolic.SymPoint `sigma:"Point"`
}

func newCurve() *bn254.G1 {
	return &bn254.G1{}
}

func TestDescribeFlatWitness(t *testing.T) {
	c := qt.New(t)
	s, err := Describe[flatWitness]()
	c.Assert(err, qt.IsNil)
	c.Assert(s.NumScalars(), qt.Equals, 2)
	c.Assert(s.NumPoints(), qt.Equals, 0)
	c.Assert(s.FieldNames(), qt.DeepEquals, []string{"A", "B"})
}

func TestDescribeNestedNamesFlattenWithDeclarationPath(t *testing.T) {
	c := qt.New(t)
	s, err := Describe[nestedInstance]()
	c.Assert(err, qt.IsNil)
	c.Assert(s.FieldNames(), qt.DeepEquals, []string{"Inner.X", "Point"})
}

func TestFromScalarsArityMismatch(t *testing.T) {
	c := qt.New(t)
	order := newCurve().Order()

	_, err := FromScalars[flatWitness]([]*big.Int{big.NewInt(1)}, order)
	c.Assert(err, qt.Not(qt.IsNil))

	_, err = FromScalars[flatWitness]([]*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}, order)
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestValuesRoundTrip(t *testing.T) {
	c := qt.New(t)
	order := newCurve().Order()

	w, err := FromScalars[flatWitness]([]*big.Int{big.NewInt(11), big.NewInt(22)}, order)
	c.Assert(err, qt.IsNil)

	vals, err := Values(w)
	c.Assert(err, qt.IsNil)
	c.Assert(len(vals), qt.Equals, 2)
	c.Assert(vals[0].Cmp(big.NewInt(11)), qt.Equals, 0)
	c.Assert(vals[1].Cmp(big.NewInt(22)), qt.Equals, 0)
}

func TestRandWitnessRejectsPointFields(t *testing.T) {
	c := qt.New(t)
	order := newCurve().Order()
	_, err := RandWitness[nestedInstance](bytes.NewReader(make([]byte, 1024)), order)
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestFromHexToHexRoundTrip(t *testing.T) {
	c := qt.New(t)
	curve := newCurve()
	order := curve.Order()

	w, err := FromScalars[flatWitness]([]*big.Int{big.NewInt(9), big.NewInt(4)}, order)
	c.Assert(err, qt.IsNil)

	hexFields, err := ToHex(w)
	c.Assert(err, qt.IsNil)

	w2, err := FromHex[flatWitness](curve, order, hexFields)
	c.Assert(err, qt.IsNil)

	vals, err := Values(w2)
	c.Assert(err, qt.IsNil)
	c.Assert(vals[0].Cmp(big.NewInt(9)), qt.Equals, 0)
	c.Assert(vals[1].Cmp(big.NewInt(4)), qt.Equals, 0)
}
