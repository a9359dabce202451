// Package prooflog is an optional append-only ledger of proofs submitted to
// the API, keyed by a content-derived id. It follows the teacher's
// prefixed-key-value-store pattern: one prefix per record kind over a
// single underlying go.vocdoni.io/dvote/db.Database.
package prooflog

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"fmt"
	"math/big"
	"time"

	"go.vocdoni.io/dvote/db"
	"go.vocdoni.io/dvote/db/prefixeddb"

	"github.com/vocdoni/sigmacompiler/crypto/hash/poseidon"
)

var (
	proofPrefix = []byte("p/")

	// ErrNotFound is returned when a proof id has no matching record.
	ErrNotFound = fmt.Errorf("proof not found")
	// ErrKeyAlreadyExists is returned by Put when the derived id collides
	// with an existing record (the same protocol/instance/proof triple was
	// already logged).
	ErrKeyAlreadyExists = fmt.Errorf("proof already logged")
)

// idSize is the number of leading SHA-256 bytes kept as the record key.
const idSize = 16

// ID identifies one logged proof.
type ID [idSize]byte

// String renders id as hex.
func (id ID) String() string {
	return fmt.Sprintf("%x", id[:])
}

// Record is one logged proof submission.
type Record struct {
	Protocol  string
	Instance  []byte // caller-supplied canonical encoding of the instance
	Proof     []byte
	LoggedAt  time.Time
}

// Log is an append-only store of Records over a prefixed KV database.
type Log struct {
	db db.Database
}

// New wraps an existing database as a proof log.
func New(database db.Database) *Log {
	return &Log{db: database}
}

// Close closes the underlying database.
func (l *Log) Close() {
	l.db.Close()
}

// Put appends rec to the log and returns its derived id. It returns
// ErrKeyAlreadyExists if an identical (protocol, instance, proof) triple was
// already logged.
func (l *Log) Put(rec Record) (ID, error) {
	id := DeriveID(rec.Protocol, rec.Instance, rec.Proof)

	reader := prefixeddb.NewPrefixedReader(l.db, proofPrefix)
	if _, err := reader.Get(id[:]); err == nil {
		return id, ErrKeyAlreadyExists
	}

	if rec.LoggedAt.IsZero() {
		rec.LoggedAt = time.Now()
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
		return ID{}, fmt.Errorf("could not encode proof record: %w", err)
	}

	wTx := prefixeddb.NewPrefixedWriteTx(l.db.WriteTx(), proofPrefix)
	if err := wTx.Set(id[:], buf.Bytes()); err != nil {
		return ID{}, err
	}
	if err := wTx.Commit(); err != nil {
		return ID{}, err
	}
	return id, nil
}

// Get retrieves the record logged under id.
func (l *Log) Get(id ID) (*Record, error) {
	data, err := prefixeddb.NewPrefixedReader(l.db, proofPrefix).Get(id[:])
	if err != nil {
		return nil, ErrNotFound
	}
	var rec Record
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&rec); err != nil {
		return nil, fmt.Errorf("could not decode proof record: %w", err)
	}
	return &rec, nil
}

// DeriveID computes the content-addressed id of a (protocol, instance,
// proof) triple.
func DeriveID(protocol string, instance, proof []byte) ID {
	h := sha256.New()
	h.Write([]byte(protocol))
	h.Write(instance)
	h.Write(proof)
	sum := h.Sum(nil)
	var id ID
	copy(id[:], sum[:idSize])
	return id
}

// CircuitDigest folds proof into a single Poseidon field element, reduced
// modulo order, for callers that need a hash compatible with an
// arithmetic-circuit verifier rather than SHA-256. proof must be a
// concatenation of 32-byte chunks, as produced by sigma.Prove.
func CircuitDigest(order *big.Int, proof []byte) (*big.Int, error) {
	if len(proof)%32 != 0 || len(proof) == 0 {
		return nil, fmt.Errorf("proof length %d is not a positive multiple of 32", len(proof))
	}
	chunks := make([]*big.Int, 0, len(proof)/32)
	for i := 0; i < len(proof); i += 32 {
		v := new(big.Int).SetBytes(proof[i : i+32])
		chunks = append(chunks, new(big.Int).Mod(v, order))
	}
	return poseidon.MultiPoseidon(chunks...)
}
