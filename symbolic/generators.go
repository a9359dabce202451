package symbolic

import (
	"crypto/sha256"
	"math/big"
	"sync"

	"github.com/vocdoni/sigmacompiler/crypto/ecc"
)

// domainSeed mirrors the 64-byte nothing-up-my-sleeve input used to derive
// the second generator: the bytes 0..63 in sequence.
var domainSeed = func() []byte {
	b := make([]byte, 64)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}()

var generatorCache sync.Map // curve type string -> ecc.Point (H)

// Generator returns the canonical base point of curve.
func Generator(curve ecc.Point) ecc.Point {
	g := curve.New()
	g.SetGenerator()
	return g
}

// IndependentGenerator returns a second generator H for curve, derived
// deterministically from a fixed public seed so no one holds a usable
// trapdoor: H = SHA256(curve.Type() || seed)·G, reduced into the scalar
// field and applied via ScalarBaseMult. The construction is cached per
// curve type.
func IndependentGenerator(curve ecc.Point) ecc.Point {
	if cached, ok := generatorCache.Load(curve.Type()); ok {
		h := curve.New()
		h.Set(cached.(ecc.Point))
		return h
	}

	hasher := sha256.New()
	hasher.Write([]byte(curve.Type()))
	hasher.Write(domainSeed)
	digest := hasher.Sum(nil)

	scalar := ecc.BigToFF(curve.Order(), new(big.Int).SetBytes(digest))
	h := curve.New()
	h.ScalarBaseMult(scalar)

	generatorCache.Store(curve.Type(), h)
	stored := curve.New()
	stored.Set(h)
	return stored
}
