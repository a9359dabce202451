// Package transcript implements the prover/verifier duplex adapter that
// binds a Sigma protocol's commitments and instance into a single Fiat-Shamir
// challenge, and frames the outgoing proof bytes. It wraps
// github.com/consensys/gnark-crypto/fiat-shamir instead of hand-rolling a
// sponge, the way the rest of this module leans on gnark-crypto for curve
// arithmetic.
package transcript

import (
	"bytes"
	"crypto/sha256"
	"math/big"

	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"

	"github.com/vocdoni/sigmacompiler/crypto/ecc"
	"github.com/vocdoni/sigmacompiler/sigmaerrors"
)

// challengeLabel is the single Fiat-Shamir challenge this module ever
// derives per proof: a Sigma protocol only squeezes once, after absorbing
// the instance and the prover's commitments.
const challengeLabel = "e"

// ProofTranscript is the stateful prover/verifier adapter over one
// fiatshamir.Transcript. A prover writes the canonical encoding of each
// commitment and response into an outgoing buffer as it goes (common
// instance absorbs are bound but not written); a verifier reads the same
// shape back out of a supplied proof buffer.
type ProofTranscript struct {
	curve    ecc.Point // prototype, for point size / Unmarshal
	fs       *fiatshamir.Transcript
	isProver bool
	out      bytes.Buffer // prover: accumulated outgoing bytes
	in       *bytes.Reader // verifier: remaining proof bytes to read
}

// NewProver starts a transcript that accumulates outgoing proof bytes as
// elements are absorbed.
func NewProver(curve ecc.Point) *ProofTranscript {
	return &ProofTranscript{
		curve:    curve,
		fs:       fiatshamir.NewTranscript(sha256.New(), challengeLabel),
		isProver: true,
	}
}

// NewVerifier starts a transcript that reads elements back out of proof, in
// the same order a prover would have absorbed them.
func NewVerifier(curve ecc.Point, proof []byte) *ProofTranscript {
	return &ProofTranscript{
		curve: curve,
		fs:    fiatshamir.NewTranscript(sha256.New(), challengeLabel),
		in:    bytes.NewReader(proof),
	}
}

func scalarToBytes(order *big.Int, s *big.Int) [32]byte {
	var buf [32]byte
	reduced := ecc.BigToFF(order, s)
	b := reduced.Bytes()
	copy(buf[32-len(b):], b)
	return buf
}

func (t *ProofTranscript) bindLabeled(nonce byte, data []byte) error {
	// the nonce domain-separates repeated absorbs of the same public
	// label ("s", "p", "r") within a single squeeze. Only absorbs that
	// happen before Challenge go through here; responses are framed onto
	// the wire directly (see ProverAbsorbScalar).
	if err := t.fs.Bind(challengeLabel, append([]byte{nonce}, data...)); err != nil {
		return sigmaerrors.Wrap(sigmaerrors.TranscriptError, err, "bind failed")
	}
	return nil
}

// CommonAbsorbScalar binds a scalar known to both roles (e.g. the verifier
// recomputing the same instance digest as the prover).
func (t *ProofTranscript) CommonAbsorbScalar(order *big.Int, s *big.Int) error {
	buf := scalarToBytes(order, s)
	return t.bindLabeled('s', buf[:])
}

// CommonAbsorbPoint binds a point known to both roles.
func (t *ProofTranscript) CommonAbsorbPoint(p ecc.Point) error {
	return t.bindLabeled('p', p.Marshal())
}

// ProverAbsorbScalar appends a scalar's canonical encoding to the outgoing
// proof buffer. Valid only on a prover transcript.
//
// Response scalars are produced after Challenge has already squeezed e, and
// gnark-crypto's fiat-shamir Transcript refuses to Bind a label once its
// challenge has been computed (ErrChallengeAlreadyComputed). Since this
// module never derives a second challenge, there is nothing left for a
// post-challenge bind to feed into: the response is only ever framed onto
// the wire, not absorbed.
func (t *ProofTranscript) ProverAbsorbScalar(order *big.Int, s *big.Int) error {
	if !t.isProver {
		return sigmaerrors.New(sigmaerrors.TranscriptError, "prover_absorb_scalar called on a verifier transcript")
	}
	buf := scalarToBytes(order, s)
	t.out.Write(buf[:])
	return nil
}

// ProverAbsorbPoint binds a point and appends its canonical encoding to the
// outgoing proof buffer. Valid only on a prover transcript.
func (t *ProofTranscript) ProverAbsorbPoint(p ecc.Point) error {
	if !t.isProver {
		return sigmaerrors.New(sigmaerrors.TranscriptError, "prover_absorb_point called on a verifier transcript")
	}
	enc := p.Marshal()
	if err := t.bindLabeled('r', enc); err != nil {
		return err
	}
	t.out.Write(enc)
	return nil
}

// VerifierReceivePoints reads count canonical points out of the proof
// buffer, binding each the same way the prover's ProverAbsorbPoint would
// have.
func (t *ProofTranscript) VerifierReceivePoints(count int) ([]ecc.Point, error) {
	if t.isProver {
		return nil, sigmaerrors.New(sigmaerrors.TranscriptError, "verifier_receive_points called on a prover transcript")
	}
	pointSize := len(t.curve.New().Marshal())
	out := make([]ecc.Point, count)
	for i := 0; i < count; i++ {
		enc := make([]byte, pointSize)
		if _, err := t.in.Read(enc); err != nil {
			return nil, sigmaerrors.Wrap(sigmaerrors.TranscriptError, err, "reading commitment %d", i)
		}
		p := t.curve.New()
		if err := p.Unmarshal(enc); err != nil {
			return nil, sigmaerrors.Wrap(sigmaerrors.TranscriptError, err, "decoding commitment %d", i)
		}
		if err := t.bindLabeled('r', enc); err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// VerifierReceiveAllScalars reads 32-byte scalar chunks until the proof
// buffer is exhausted. These are read back, not bound: they were only ever
// framed onto the wire by ProverAbsorbScalar after the single challenge was
// already squeezed, so there is no challenge left for a bind to feed.
func (t *ProofTranscript) VerifierReceiveAllScalars(order *big.Int) ([]*big.Int, error) {
	if t.isProver {
		return nil, sigmaerrors.New(sigmaerrors.TranscriptError, "verifier_receives_all_scalars called on a prover transcript")
	}
	var out []*big.Int
	for t.in.Len() > 0 {
		var buf [32]byte
		if _, err := t.in.Read(buf[:]); err != nil {
			return nil, sigmaerrors.Wrap(sigmaerrors.TranscriptError, err, "reading response scalar %d", len(out))
		}
		v := new(big.Int).SetBytes(buf[:])
		if v.Cmp(order) >= 0 {
			return nil, sigmaerrors.New(sigmaerrors.TranscriptError, "response scalar %d is not canonical", len(out))
		}
		out = append(out, v)
	}
	return out, nil
}

// Challenge squeezes the single Fiat-Shamir challenge e, reduced into the
// scalar field of order.
func (t *ProofTranscript) Challenge(order *big.Int) (*big.Int, error) {
	raw, err := t.fs.ComputeChallenge(challengeLabel)
	if err != nil {
		return nil, sigmaerrors.Wrap(sigmaerrors.TranscriptError, err, "computing challenge")
	}
	return ecc.BigToFF(order, new(big.Int).SetBytes(raw)), nil
}

// Finalize returns the accumulated proof bytes. Valid only on a prover
// transcript.
func (t *ProofTranscript) Finalize() ([]byte, error) {
	if !t.isProver {
		return nil, sigmaerrors.New(sigmaerrors.TranscriptError, "finalize called on a verifier transcript")
	}
	return t.out.Bytes(), nil
}

// RemainingProofBytes reports how many unread bytes remain in a verifier
// transcript's proof buffer (0 on a prover transcript).
func (t *ProofTranscript) RemainingProofBytes() int {
	if t.in == nil {
		return 0
	}
	return t.in.Len()
}
