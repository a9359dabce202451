// Package reflectrecord derives the structural capability set (arity,
// flattened field names, and flatten/assemble operations) for witness and
// instance structs at runtime via reflect, since Go has no derive macros.
// A struct qualifies by composing only *symbolic.SymScalar, *symbolic.SymPoint,
// or nested qualifying structs as exported fields. A field's flattened name
// is its dotted declaration path, unless overridden with a `sigma:"name"`
// struct tag.
package reflectrecord

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"reflect"
	"sync"

	"github.com/vocdoni/sigmacompiler/crypto/ecc"
	"github.com/vocdoni/sigmacompiler/sigmaerrors"
	"github.com/vocdoni/sigmacompiler/symbolic"
)

type leafKind int

const (
	leafScalar leafKind = iota
	leafPoint
)

type leaf struct {
	name string
	kind leafKind
	path []int
}

// Schema is the cached, declaration-order capability set for a struct type.
type Schema struct {
	typ        reflect.Type
	leaves     []leaf
	numScalars int
	numPoints  int
}

// NumScalars is the declared scalar arity N_s (or N_w for a witness).
func (s *Schema) NumScalars() int { return s.numScalars }

// NumPoints is the declared point arity N_p.
func (s *Schema) NumPoints() int { return s.numPoints }

// FieldNames returns the flattened, declaration-order field names.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.leaves))
	for i, l := range s.leaves {
		names[i] = l.name
	}
	return names
}

var (
	schemaCache sync.Map // reflect.Type -> *Schema
	scalarType  = reflect.TypeOf((*symbolic.SymScalar)(nil))
	pointType   = reflect.TypeOf((*symbolic.SymPoint)(nil))
)

func describeType(t reflect.Type) (*Schema, error) {
	if cached, ok := schemaCache.Load(t); ok {
		return cached.(*Schema), nil
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("reflectrecord: %s is not a struct", t)
	}
	s := &Schema{typ: t}
	if err := walk(t, nil, "", s); err != nil {
		return nil, err
	}
	schemaCache.Store(t, s)
	return s, nil
}

func walk(t reflect.Type, prefix []int, namePrefix string, s *Schema) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag := f.Tag.Get("sigma"); tag != "" {
			name = tag
		}
		if namePrefix != "" {
			name = namePrefix + "." + name
		}
		path := append(append([]int{}, prefix...), i)

		switch {
		case f.Type == scalarType:
			s.leaves = append(s.leaves, leaf{name: name, kind: leafScalar, path: path})
			s.numScalars++
		case f.Type == pointType:
			s.leaves = append(s.leaves, leaf{name: name, kind: leafPoint, path: path})
			s.numPoints++
		case f.Type.Kind() == reflect.Struct:
			if err := walk(f.Type, path, name, s); err != nil {
				return err
			}
		default:
			return fmt.Errorf("reflectrecord: unsupported field %s of type %s (only *symbolic.SymScalar, *symbolic.SymPoint, and nested structs of those are allowed)", name, f.Type)
		}
	}
	return nil
}

// Describe derives (and caches) the Schema for T.
func Describe[T any]() (*Schema, error) {
	var zero T
	return describeType(reflect.TypeOf(zero))
}

// MustDescribe is Describe but panics on error; intended for package-level
// registration in a protocol's init(), the Go analogue of a compile-time
// derive-macro check.
func MustDescribe[T any]() *Schema {
	s, err := Describe[T]()
	if err != nil {
		panic(err)
	}
	return s
}

// NumScalars returns the declared scalar arity of T.
func NumScalars[T any]() (int, error) {
	s, err := Describe[T]()
	if err != nil {
		return 0, err
	}
	return s.numScalars, nil
}

// NumPoints returns the declared point arity of T.
func NumPoints[T any]() (int, error) {
	s, err := Describe[T]()
	if err != nil {
		return 0, err
	}
	return s.numPoints, nil
}

// FieldNames returns the flattened, declaration-order field names of T.
func FieldNames[T any]() ([]string, error) {
	s, err := Describe[T]()
	if err != nil {
		return nil, err
	}
	return s.FieldNames(), nil
}

func fieldValue(root reflect.Value, path []int) reflect.Value {
	return root.FieldByIndex(path)
}

// Scalars returns the leaf SymScalar expressions of rec, in declaration
// order, unevaluated.
func Scalars[T any](rec *T) ([]*symbolic.SymScalar, error) {
	s, err := Describe[T]()
	if err != nil {
		return nil, err
	}
	root := reflect.ValueOf(rec).Elem()
	out := make([]*symbolic.SymScalar, 0, s.numScalars)
	for _, l := range s.leaves {
		if l.kind != leafScalar {
			continue
		}
		v := fieldValue(root, l.path).Interface().(*symbolic.SymScalar)
		if v == nil {
			return nil, sigmaerrors.New(sigmaerrors.UninstantiatedScalar, "field %s", l.name)
		}
		out = append(out, v)
	}
	return out, nil
}

// Points returns the leaf SymPoint expressions of rec, in declaration order,
// unevaluated.
func Points[T any](rec *T) ([]*symbolic.SymPoint, error) {
	s, err := Describe[T]()
	if err != nil {
		return nil, err
	}
	root := reflect.ValueOf(rec).Elem()
	out := make([]*symbolic.SymPoint, 0, s.numPoints)
	for _, l := range s.leaves {
		if l.kind != leafPoint {
			continue
		}
		v := fieldValue(root, l.path).Interface().(*symbolic.SymPoint)
		if v == nil {
			return nil, sigmaerrors.New(sigmaerrors.UninstantiatedPoint, "field %s", l.name)
		}
		out = append(out, v)
	}
	return out, nil
}

// Values evaluates every scalar leaf of rec and returns the flattened field
// elements, in declaration order. Used for witness.values() in the prover.
func Values[T any](rec *T) ([]*big.Int, error) {
	scalars, err := Scalars(rec)
	if err != nil {
		return nil, err
	}
	out := make([]*big.Int, len(scalars))
	for i, sc := range scalars {
		v, err := sc.Evaluate()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// RandWitness samples a fresh random scalar for every leaf of T (which must
// be a scalar-only, i.e. witness, schema) and assembles a bound record.
func RandWitness[T any](rng io.Reader, order *big.Int) (*T, error) {
	s, err := Describe[T]()
	if err != nil {
		return nil, err
	}
	if s.numPoints != 0 {
		return nil, fmt.Errorf("reflectrecord: %s has point fields, not a valid witness for rand()", s.typ)
	}
	vals := make([]*big.Int, s.numScalars)
	for i := range vals {
		v, err := rand.Int(rng, order)
		if err != nil {
			return nil, fmt.Errorf("reflectrecord: sampling random scalar: %w", err)
		}
		vals[i] = v
	}
	return FromScalars[T](vals, order)
}

// FromScalars assembles a scalar-only (witness-shaped) record from exactly
// NumScalars() flat field elements, each becoming a bound Var leaf.
func FromScalars[T any](vals []*big.Int, order *big.Int) (*T, error) {
	return FromValues[T](vals, nil, order)
}

// FromValues assembles a record from flat scalar and point slices, each
// becoming a bound Var leaf, matching the declared arity exactly.
func FromValues[T any](scalars []*big.Int, points []ecc.Point, order *big.Int) (*T, error) {
	s, err := Describe[T]()
	if err != nil {
		return nil, err
	}
	if len(scalars) < s.numScalars {
		return nil, sigmaerrors.ErrInsufficientScalars
	}
	if len(scalars) > s.numScalars {
		return nil, sigmaerrors.NewTooManyScalars(s.numScalars, len(scalars))
	}
	if len(points) < s.numPoints {
		return nil, sigmaerrors.ErrInsufficientPoints
	}
	if len(points) > s.numPoints {
		return nil, fmt.Errorf("reflectrecord: too many points: expected %d, got %d", s.numPoints, len(points))
	}

	rec := new(T)
	root := reflect.ValueOf(rec).Elem()
	si, pi := 0, 0
	for _, l := range s.leaves {
		target := fieldValue(root, l.path)
		switch l.kind {
		case leafScalar:
			v := symbolic.VarScalar(order, l.name).Bind(scalars[si])
			target.Set(reflect.ValueOf(v))
			si++
		case leafPoint:
			curve := points[pi]
			v := symbolic.VarPoint(curve, l.name).Bind(curve)
			target.Set(reflect.ValueOf(v))
			pi++
		}
	}
	return rec, nil
}

// FromHex assembles a record from a field-name-to-hex map, the wire shape
// the HTTP API accepts: scalar leaves decode as big-endian hex integers,
// point leaves decode via curve's canonical Marshal encoding. It returns
// sigmaerrors.ErrInsufficientScalars/ErrInsufficientPoints-flavored errors
// if fields is missing an entry for a declared leaf.
func FromHex[T any](curve ecc.Point, order *big.Int, fields map[string]string) (*T, error) {
	s, err := Describe[T]()
	if err != nil {
		return nil, err
	}

	rec := new(T)
	root := reflect.ValueOf(rec).Elem()
	for _, l := range s.leaves {
		raw, ok := fields[l.name]
		if !ok {
			kind := sigmaerrors.InsufficientScalars
			if l.kind == leafPoint {
				kind = sigmaerrors.InsufficientPoints
			}
			return nil, sigmaerrors.New(kind, "missing field %q", l.name)
		}
		data, err := hex.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("reflectrecord: field %q is not valid hex: %w", l.name, err)
		}

		target := fieldValue(root, l.path)
		switch l.kind {
		case leafScalar:
			v := symbolic.VarScalar(order, l.name).Bind(new(big.Int).SetBytes(data))
			target.Set(reflect.ValueOf(v))
		case leafPoint:
			p := curve.New()
			if err := p.Unmarshal(data); err != nil {
				return nil, fmt.Errorf("reflectrecord: field %q: %w", l.name, err)
			}
			v := symbolic.VarPoint(curve, l.name).Bind(p)
			target.Set(reflect.ValueOf(v))
		}
	}
	return rec, nil
}

// ToHex renders rec's leaves back to a field-name-to-hex map, the inverse of
// FromHex. Unbound leaves are omitted rather than erroring, since callers
// use this to render partial instances too (e.g. for display).
func ToHex[T any](rec *T) (map[string]string, error) {
	s, err := Describe[T]()
	if err != nil {
		return nil, err
	}
	root := reflect.ValueOf(rec).Elem()
	out := make(map[string]string, len(s.leaves))
	for _, l := range s.leaves {
		target := fieldValue(root, l.path)
		switch l.kind {
		case leafScalar:
			v := target.Interface().(*symbolic.SymScalar)
			if v == nil {
				continue
			}
			val, err := v.Evaluate()
			if err != nil {
				continue
			}
			out[l.name] = hex.EncodeToString(val.Bytes())
		case leafPoint:
			v := target.Interface().(*symbolic.SymPoint)
			if v == nil {
				continue
			}
			val, err := v.Evaluate()
			if err != nil {
				continue
			}
			out[l.name] = hex.EncodeToString(val.Marshal())
		}
	}
	return out, nil
}
