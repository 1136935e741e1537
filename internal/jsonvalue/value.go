// Package jsonvalue converts dynamically typed JSON into an immutable tree.
//
// A Value is one of six variants: null, boolean, number, string, map or
// sequence. Numbers are always float64, including integral literals. Maps keep
// the key order of the source object. Containers expose read accessors only;
// their mutating methods exist solely to reject the call with ErrImmutable.
//
// Values are safe to share between goroutines without copying.
package jsonvalue

import (
	"errors"
	"fmt"
)

// ErrImmutable is returned by every mutating method of Map and Sequence.
var ErrImmutable = errors.New("jsonvalue: value is immutable")

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindMap
	KindSequence
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindMap:
		return "map"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is an immutable JSON value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	m    *Map
	seq  *Sequence
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a number value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean held by v.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Number returns the number held by v.
func (v Value) Number() (float64, bool) {
	return v.n, v.kind == KindNumber
}

// Str returns the string held by v.
func (v Value) Str() (string, bool) {
	return v.s, v.kind == KindString
}

// Map returns the map held by v. The returned map is never nil when ok is true.
func (v Value) Map() (*Map, bool) {
	if v.kind != KindMap {
		return nil, false
	}

	return v.m, true
}

// Sequence returns the sequence held by v. The returned sequence is never nil when ok is true.
func (v Value) Sequence() (*Sequence, bool) {
	if v.kind != KindSequence {
		return nil, false
	}

	return v.seq, true
}

// Lookup walks nested maps by key. It returns false when any step is missing
// or is not a map.
func (v Value) Lookup(path ...string) (Value, bool) {
	cur := v

	for _, key := range path {
		m, ok := cur.Map()
		if !ok {
			return Value{}, false
		}

		cur, ok = m.Get(key)
		if !ok {
			return Value{}, false
		}
	}

	return cur, true
}

// GoString renders v for debugging.
func (v Value) GoString() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("jsonvalue.Value(%s)", v.kind)
	}

	return string(data)
}

// Equal reports whether a and b are deep-equal. Map key order is significant.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	case KindMap:
		return a.m.equal(b.m)
	case KindSequence:
		return a.seq.equal(b.seq)
	default:
		return false
	}
}
