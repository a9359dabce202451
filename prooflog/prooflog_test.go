package prooflog

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"go.vocdoni.io/dvote/db/metadb"

	"github.com/vocdoni/sigmacompiler/crypto/ecc/bn254"
)

func TestPutGetRoundTrip(t *testing.T) {
	c := qt.New(t)
	database := metadb.NewTest(t)
	logger := New(database)
	defer logger.Close()

	rec := Record{
		Protocol: "schnorr-identity-protocol",
		Instance: []byte("instance-bytes"),
		Proof:    []byte("proof-bytes"),
	}

	id, err := logger.Put(rec)
	c.Assert(err, qt.IsNil)

	got, err := logger.Get(id)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Protocol, qt.Equals, rec.Protocol)
	c.Assert(got.Proof, qt.DeepEquals, rec.Proof)
}

func TestPutRejectsDuplicate(t *testing.T) {
	c := qt.New(t)
	database := metadb.NewTest(t)
	logger := New(database)
	defer logger.Close()

	rec := Record{Protocol: "chaum-protocol", Instance: []byte("x"), Proof: []byte("y")}

	_, err := logger.Put(rec)
	c.Assert(err, qt.IsNil)

	_, err = logger.Put(rec)
	c.Assert(err, qt.Equals, ErrKeyAlreadyExists)
}

func TestCircuitDigestRejectsBadLength(t *testing.T) {
	c := qt.New(t)
	curve := &bn254.G1{}
	_, err := CircuitDigest(curve.Order(), []byte("not-32-aligned"))
	c.Assert(err, qt.Not(qt.IsNil))
}
