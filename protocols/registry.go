// Package protocols is a runtime registry mapping a protocol label to the
// generic sigma driver instantiated for that protocol's concrete witness
// and instance types, type-erased behind an Entry so the HTTP API can
// dispatch on a label string received over the wire.
package protocols

import (
	"crypto/rand"
	"fmt"

	"github.com/vocdoni/sigmacompiler/crypto/ecc"
	"github.com/vocdoni/sigmacompiler/protocols/chaum"
	"github.com/vocdoni/sigmacompiler/protocols/okamoto"
	"github.com/vocdoni/sigmacompiler/protocols/schnorr"
	"github.com/vocdoni/sigmacompiler/protocols/zerocheck"
	"github.com/vocdoni/sigmacompiler/reflectrecord"
	"github.com/vocdoni/sigmacompiler/sigma"
)

// Entry is a type-erased protocol binding for one curve.
type Entry struct {
	Label string
	// Prove parses witness/instance field maps (field name -> hex), runs
	// the protocol's Prove, and returns the wire-format proof.
	Prove func(witness, instance map[string]string) ([]byte, error)
	// Verify parses the instance field map and checks proof against it.
	Verify func(instance map[string]string, proof []byte) error
	// Spec renders the protocol's human-readable equation description.
	Spec func() (string, error)
}

func schnorrEntry(curve ecc.Point) Entry {
	proto := schnorr.New(curve)
	order := curve.Order()
	return Entry{
		Label: schnorr.Label,
		Prove: func(witness, instance map[string]string) ([]byte, error) {
			w, err := reflectrecord.FromHex[schnorr.Witness](curve, order, witness)
			if err != nil {
				return nil, err
			}
			x, err := reflectrecord.FromHex[schnorr.Instance](curve, order, instance)
			if err != nil {
				return nil, err
			}
			return sigma.Prove(proto, rand.Reader, w, x)
		},
		Verify: func(instance map[string]string, proof []byte) error {
			x, err := reflectrecord.FromHex[schnorr.Instance](curve, order, instance)
			if err != nil {
				return err
			}
			return sigma.Verify(proto, x, proof)
		},
		Spec: func() (string, error) { return sigma.Spec(proto) },
	}
}

func okamotoEntry(curve ecc.Point) Entry {
	proto := okamoto.New(curve)
	order := curve.Order()
	return Entry{
		Label: okamoto.Label,
		Prove: func(witness, instance map[string]string) ([]byte, error) {
			w, err := reflectrecord.FromHex[okamoto.Witness](curve, order, witness)
			if err != nil {
				return nil, err
			}
			x, err := reflectrecord.FromHex[okamoto.Instance](curve, order, instance)
			if err != nil {
				return nil, err
			}
			return sigma.Prove(proto, rand.Reader, w, x)
		},
		Verify: func(instance map[string]string, proof []byte) error {
			x, err := reflectrecord.FromHex[okamoto.Instance](curve, order, instance)
			if err != nil {
				return err
			}
			return sigma.Verify(proto, x, proof)
		},
		Spec: func() (string, error) { return sigma.Spec(proto) },
	}
}

func chaumEntry(curve ecc.Point) Entry {
	proto := chaum.New(curve)
	order := curve.Order()
	return Entry{
		Label: chaum.Label,
		Prove: func(witness, instance map[string]string) ([]byte, error) {
			w, err := reflectrecord.FromHex[chaum.Witness](curve, order, witness)
			if err != nil {
				return nil, err
			}
			x, err := reflectrecord.FromHex[chaum.Instance](curve, order, instance)
			if err != nil {
				return nil, err
			}
			return sigma.Prove(proto, rand.Reader, w, x)
		},
		Verify: func(instance map[string]string, proof []byte) error {
			x, err := reflectrecord.FromHex[chaum.Instance](curve, order, instance)
			if err != nil {
				return err
			}
			return sigma.Verify(proto, x, proof)
		},
		Spec: func() (string, error) { return sigma.Spec(proto) },
	}
}

func zerocheckEntry(curve ecc.Point) Entry {
	proto := zerocheck.New(curve)
	order := curve.Order()
	return Entry{
		Label: zerocheck.Label,
		Prove: func(witness, instance map[string]string) ([]byte, error) {
			w, err := reflectrecord.FromHex[zerocheck.Witness](curve, order, witness)
			if err != nil {
				return nil, err
			}
			x, err := reflectrecord.FromHex[zerocheck.Instance](curve, order, instance)
			if err != nil {
				return nil, err
			}
			return sigma.Prove(proto, rand.Reader, w, x)
		},
		Verify: func(instance map[string]string, proof []byte) error {
			x, err := reflectrecord.FromHex[zerocheck.Instance](curve, order, instance)
			if err != nil {
				return err
			}
			return sigma.Verify(proto, x, proof)
		},
		Spec: func() (string, error) { return sigma.Spec(proto) },
	}
}

// Registry builds all known protocol Entries for curve, keyed by label.
func Registry(curve ecc.Point) map[string]Entry {
	entries := []Entry{
		schnorrEntry(curve),
		okamotoEntry(curve),
		chaumEntry(curve),
		zerocheckEntry(curve),
	}
	out := make(map[string]Entry, len(entries))
	for _, e := range entries {
		out[e.Label] = e
	}
	return out
}

// ErrUnknownProtocol is returned when a label has no registered Entry.
func ErrUnknownProtocol(label string) error {
	return fmt.Errorf("unknown protocol %q", label)
}
