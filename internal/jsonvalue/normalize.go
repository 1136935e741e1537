package jsonvalue

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is a parsed JSON object that remembers member order, including
// repeated keys. Parse produces it; Normalize consumes it.
type Object struct {
	Members []Member
}

// NormalizationError reports a value that has no JSON counterpart.
type NormalizationError struct {
	// Path locates the offending value, e.g. "$.items[2].size".
	Path string
	// Type is the Go type that was encountered.
	Type string
}

// Error implements the error interface.
func (e *NormalizationError) Error() string {
	return fmt.Sprintf("jsonvalue: unsupported type %s at %s", e.Type, e.Path)
}

// Normalize converts a dynamically typed JSON value into an immutable Value.
//
// Accepted inputs are nil, bool, string, every Go integer and float type,
// json.Number, an already normalized Value, *Object and Object,
// map[string]any and []any, at any depth.
// All numbers become float64; literals beyond its range become ±Inf.
// map[string]any has no intrinsic order, so its keys are taken in sorted
// order; use Parse or *Object to keep source order.
//
// Any other type fails the whole call with a *NormalizationError.
func Normalize(v any) (Value, error) {
	return normalize(v, nil)
}

func normalize(v any, path *pathSegment) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Number(x), nil
	case json.Number:
		return normalizeNumber(x, path)
	case Value:
		return x, nil
	case *Object:
		if x == nil {
			return Null(), nil
		}

		return normalizeObject(x.Members, path)
	case Object:
		return normalizeObject(x.Members, path)
	case map[string]any:
		return normalizeMap(x, path)
	case []any:
		return normalizeSlice(x, path)
	}

	if f, ok := toFloat(v); ok {
		return Number(f), nil
	}

	return Value{}, &NormalizationError{Path: path.String(), Type: fmt.Sprintf("%T", v)}
}

// normalizeNumber keeps the ±Inf that ParseFloat reports for literals beyond
// the float64 range and rejects only malformed literals.
func normalizeNumber(n json.Number, path *pathSegment) (Value, error) {
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Value{}, fmt.Errorf("jsonvalue: number %q at %s: %w", n.String(), path.String(), err)
	}

	return Number(f), nil
}

func normalizeObject(members []Member, path *pathSegment) (Value, error) {
	b := newMapBuilder(len(members))

	for _, mem := range members {
		nv, err := normalize(mem.Value, &pathSegment{parent: path, key: mem.Key, member: true})
		if err != nil {
			return Value{}, err
		}

		b.put(mem.Key, nv)
	}

	return b.value(), nil
}

func normalizeMap(m map[string]any, path *pathSegment) (Value, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	b := newMapBuilder(len(keys))

	for _, k := range keys {
		nv, err := normalize(m[k], &pathSegment{parent: path, key: k, member: true})
		if err != nil {
			return Value{}, err
		}

		b.put(k, nv)
	}

	return b.value(), nil
}

func normalizeSlice(items []any, path *pathSegment) (Value, error) {
	out := make([]Value, len(items))

	for i, item := range items {
		nv, err := normalize(item, &pathSegment{parent: path, index: i})
		if err != nil {
			return Value{}, err
		}

		out[i] = nv
	}

	return sequenceValue(out), nil
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

// pathSegment is one step from the root to the value being normalized.
// The nil segment is the root. The path is only rendered for errors.
type pathSegment struct {
	parent *pathSegment
	key    string
	index  int
	member bool
}

// String renders the path as "$", "$.items[2]" or `$["a.b"]`.
func (p *pathSegment) String() string {
	var segs []*pathSegment
	for s := p; s != nil; s = s.parent {
		segs = append(segs, s)
	}

	var b strings.Builder
	b.WriteString("$")

	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]

		switch {
		case !s.member:
			b.WriteString("[" + strconv.Itoa(s.index) + "]")
		case s.key != "" && !strings.ContainsAny(s.key, ".[]\""):
			b.WriteString("." + s.key)
		default:
			b.WriteString("[" + strconv.Quote(s.key) + "]")
		}
	}

	return b.String()
}
