// Package ecc abstracts over the prime-order group 𝔾 used by the Sigma
// protocol driver, so the symbolic algebra, reflection, and proof layers
// never depend on a specific curve implementation. Point is implemented by
// bn254 (github.com/consensys/gnark-crypto), bjj_gnark
// (gnark-crypto's twisted Edwards BabyJubJub), and bjj_iden3
// (github.com/iden3/go-iden3-crypto).
package ecc

import "math/big"

// Point is a mutable-receiver group element. Methods that compute a result
// store it into the receiver, mirroring gnark-crypto's in-place style; New
// returns a fresh identity-valued element of the same concrete type.
type Point interface {
	// New returns a new, independent identity element of the same
	// concrete curve as the receiver.
	New() Point

	// Order returns the order of the scalar field associated with this
	// curve's prime-order subgroup.
	Order() *big.Int

	// Add sets the receiver to a+b.
	Add(a, b Point)
	// SafeAdd is Add guarded by an internal mutex, for concurrent callers
	// that share a single accumulator.
	SafeAdd(a, b Point)
	// ScalarMult sets the receiver to scalar*a.
	ScalarMult(a Point, scalar *big.Int)
	// ScalarBaseMult sets the receiver to scalar*Generator.
	ScalarBaseMult(scalar *big.Int)
	// Neg sets the receiver to -a.
	Neg(a Point)
	// Set copies a into the receiver.
	Set(a Point)
	// SetZero sets the receiver to the identity element.
	SetZero()
	// SetGenerator sets the receiver to the curve's distinguished generator.
	SetGenerator()
	// Equal reports whether the receiver and a denote the same element.
	Equal(a Point) bool

	// Marshal returns the canonical compressed encoding of the receiver.
	Marshal() []byte
	// Unmarshal decodes a canonical compressed encoding into the receiver.
	Unmarshal(buf []byte) error

	MarshalJSON() ([]byte, error)
	UnmarshalJSON(buf []byte) error
	MarshalCBOR() ([]byte, error)
	UnmarshalCBOR(buf []byte) error

	// Point returns the affine (x, y) coordinates of the receiver.
	Point() (*big.Int, *big.Int)
	// SetPoint returns a new element (of the receiver's concrete type)
	// with the given affine coordinates.
	SetPoint(x, y *big.Int) Point

	// String returns a debug representation.
	String() string
	// Type identifies the concrete curve, e.g. "bn254", "bjj_iden3".
	Type() string
}
