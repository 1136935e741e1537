package jsonvalue

import (
	"bytes"
	"encoding/json"
	"math"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, doc string) Value {
	t.Helper()

	v, err := Parse([]byte(doc))
	require.NoError(t, err)

	return v
}

func TestParse_MixedDocument(t *testing.T) {
	v := mustParse(t, `{"a": 1, "b": [true, null, "x"], "c": {}}`)

	m, ok := v.Map()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())

	a, ok := m.Get("a")
	require.True(t, ok)
	n, ok := a.Number()
	require.True(t, ok)
	assert.InDelta(t, 1.0, n, 0)
	assert.Equal(t, KindNumber, a.Kind())

	b, _ := m.Get("b")
	seq, ok := b.Sequence()
	require.True(t, ok)
	require.Equal(t, 3, seq.Len())

	first, _ := seq.At(0)
	bv, ok := first.Bool()
	require.True(t, ok)
	assert.True(t, bv)

	second, _ := seq.At(1)
	assert.True(t, second.IsNull())

	third, _ := seq.At(2)
	s, ok := third.Str()
	require.True(t, ok)
	assert.Equal(t, "x", s)

	c, _ := m.Get("c")
	cm, ok := c.Map()
	require.True(t, ok)
	assert.Equal(t, 0, cm.Len())
	require.ErrorIs(t, cm.Put("k", String("v")), ErrImmutable)
	assert.Equal(t, 0, cm.Len())
}

func TestParse_PreservesKeyOrder(t *testing.T) {
	v := mustParse(t, `{"zeta": 1, "alpha": 2, "mid": 3}`)

	m, _ := v.Map()
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())

	var got []string
	for k := range m.All() {
		got = append(got, k)
	}

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, got)
}

func TestParse_DuplicateKeysLastWins(t *testing.T) {
	v := mustParse(t, `{"a": 1, "b": 2, "a": 3}`)

	m, _ := v.Map()
	assert.Equal(t, []string{"a", "b"}, m.Keys())

	a, _ := m.Get("a")
	n, _ := a.Number()
	assert.InDelta(t, 3.0, n, 0)
}

func TestParse_NumbersAreFloat(t *testing.T) {
	tests := []struct {
		doc  string
		want float64
	}{
		{"5", 5.0},
		{"-12", -12.0},
		{"3.25", 3.25},
		{"1e3", 1000.0},
		{"9007199254740993", 9007199254740992.0},
	}

	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			v := mustParse(t, tt.doc)

			n, ok := v.Number()
			require.True(t, ok)
			assert.InDelta(t, tt.want, n, 0)
		})
	}
}

func TestParse_OutOfRangeNumbers(t *testing.T) {
	tests := []struct {
		doc  string
		sign int
	}{
		{"1e400", 1},
		{"-1e400", -1},
	}

	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			v := mustParse(t, tt.doc)

			n, ok := v.Number()
			require.True(t, ok)
			assert.True(t, math.IsInf(n, tt.sign))
		})
	}
}

func TestNormalize_MalformedNumber(t *testing.T) {
	_, err := Normalize(map[string]any{"size": json.Number("12abc")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `number "12abc" at $.size`)
}

func TestParse_DeepNesting(t *testing.T) {
	const depth = 100_000

	doc := append(bytes.Repeat([]byte("["), depth), bytes.Repeat([]byte("]"), depth)...)

	var before, after runtime.MemStats

	runtime.ReadMemStats(&before)

	v, err := Parse(doc)

	runtime.ReadMemStats(&after)
	require.NoError(t, err)

	levels := 0

	for {
		seq, ok := v.Sequence()
		require.True(t, ok)

		if seq.Len() == 0 {
			break
		}

		v, _ = seq.At(0)
		levels++
	}

	assert.Equal(t, depth-1, levels)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(256<<20), "allocation must grow linearly with depth")
}

func TestNormalize_PathOfDeepFailure(t *testing.T) {
	raw := []any{[]any{map[string]any{"a.b": []any{0, struct{}{}}}}}

	_, err := Normalize(raw)

	var nerr *NormalizationError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, `$[0][0]["a.b"][1]`, nerr.Path)
	assert.True(t, strings.HasPrefix(nerr.Error(), "jsonvalue: unsupported type struct {}"))
}

func TestParse_NestedArrays(t *testing.T) {
	v := mustParse(t, `[[], [[1]], [[[]]]]`)

	seq, ok := v.Sequence()
	require.True(t, ok)
	require.Equal(t, 3, seq.Len())

	empty, _ := seq.At(0)
	es, ok := empty.Sequence()
	require.True(t, ok)
	assert.Equal(t, 0, es.Len())
	require.ErrorIs(t, es.Append(Null()), ErrImmutable)

	deep, _ := seq.At(2)
	ds, _ := deep.Sequence()
	inner, _ := ds.At(0)
	is, _ := inner.Sequence()
	innermost, _ := is.At(0)
	last, ok := innermost.Sequence()
	require.True(t, ok)
	assert.Equal(t, 0, last.Len())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"truncated object", `{"a": 1`},
		{"trailing data", `{"a": 1} {"b": 2}`},
		{"bare word", `nope`},
		{"missing value", `{"a": }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestImmutability_AtEveryDepth(t *testing.T) {
	v := mustParse(t, `{"outer": {"inner": [1, {"leaf": []}]}, "list": [{}]}`)
	before, err := v.MarshalJSON()
	require.NoError(t, err)

	root, _ := v.Map()
	require.ErrorIs(t, root.Put("new", Null()), ErrImmutable)
	require.ErrorIs(t, root.Remove("outer"), ErrImmutable)
	require.ErrorIs(t, root.Clear(), ErrImmutable)

	inner, ok := v.Lookup("outer", "inner")
	require.True(t, ok)
	seq, _ := inner.Sequence()
	require.ErrorIs(t, seq.Set(0, String("x")), ErrImmutable)
	require.ErrorIs(t, seq.Append(Null()), ErrImmutable)
	require.ErrorIs(t, seq.Remove(0), ErrImmutable)

	obj, _ := seq.At(1)
	om, _ := obj.Map()
	leaf, _ := om.Get("leaf")
	ls, _ := leaf.Sequence()
	require.ErrorIs(t, ls.Append(Number(1)), ErrImmutable)

	list, _ := root.Get("list")
	lseq, _ := list.Sequence()
	emptyMap, _ := lseq.At(0)
	em, _ := emptyMap.Map()
	require.ErrorIs(t, em.Put("k", Null()), ErrImmutable)

	after, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestImmutability_AccessorsReturnCopies(t *testing.T) {
	v := mustParse(t, `{"a": [1, 2], "b": 3}`)

	m, _ := v.Map()
	keys := m.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, m.Keys())

	a, _ := m.Get("a")
	seq, _ := a.Sequence()
	items := seq.Values()
	items[0] = String("mutated")

	first, _ := seq.At(0)
	n, ok := first.Number()
	require.True(t, ok)
	assert.InDelta(t, 1.0, n, 0)
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := map[string]any{
		"name":  "report",
		"size":  json.Number("42"),
		"tags":  []any{"a", "b"},
		"meta":  map[string]any{"deleted": false, "owner": nil},
		"ratio": 0.5,
	}

	first, err := Normalize(raw)
	require.NoError(t, err)

	second, err := Normalize(raw)
	require.NoError(t, err)

	assert.True(t, Equal(first, second))
}

func TestNormalize_EmbedsValues(t *testing.T) {
	inner, err := Parse([]byte(`{"z":1,"a":2}`))
	require.NoError(t, err)

	v, err := Normalize(&Object{Members: []Member{
		{Key: "doc", Value: inner},
		{Key: "list", Value: []any{inner, String("x")}},
	}})
	require.NoError(t, err)

	doc, ok := v.Lookup("doc")
	require.True(t, ok)
	assert.True(t, Equal(inner, doc))

	m, _ := doc.Map()
	assert.Equal(t, []string{"z", "a"}, m.Keys())
}

func TestNormalize_GoMapKeysAreSorted(t *testing.T) {
	v, err := Normalize(map[string]any{"b": 1, "a": 2, "c": 3})
	require.NoError(t, err)

	m, _ := v.Map()
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
}

func TestNormalize_IntegersBecomeFloat(t *testing.T) {
	for _, in := range []any{int(7), int64(7), uint8(7), float32(7), json.Number("7")} {
		v, err := Normalize(in)
		require.NoError(t, err)

		n, ok := v.Number()
		require.True(t, ok, "%T", in)
		assert.InDelta(t, 7.0, n, 0)
	}
}

func TestNormalize_UnsupportedType(t *testing.T) {
	raw := map[string]any{
		"ok":    "fine",
		"items": []any{1, struct{}{}},
	}

	v, err := Normalize(raw)
	require.Error(t, err)
	assert.Equal(t, Value{}, v)

	var nerr *NormalizationError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "$.items[1]", nerr.Path)
	assert.Equal(t, "struct {}", nerr.Type)
}

func TestNormalize_NilObject(t *testing.T) {
	var obj *Object

	v, err := Normalize(obj)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"same scalars", `1`, `1.0`, true},
		{"different scalars", `1`, `2`, false},
		{"different kinds", `"1"`, `1`, false},
		{"same maps", `{"a": [1, null]}`, `{"a": [1, null]}`, true},
		{"key order matters", `{"a": 1, "b": 2}`, `{"b": 2, "a": 1}`, false},
		{"different lengths", `[1, 2]`, `[1]`, false},
		{"empty containers", `{"x": {}, "y": []}`, `{"x": {}, "y": []}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(mustParse(t, tt.a), mustParse(t, tt.b)))
		})
	}
}

func TestMarshalJSON_KeepsOrder(t *testing.T) {
	v := mustParse(t, `{"z": 1, "a": [true, null, "s"], "m": {"n": 2.5}}`)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":[true,null,"s"],"m":{"n":2.5}}`, string(data))
}

func TestLookup(t *testing.T) {
	v := mustParse(t, `{"bucket": {"stats": {"objects": 12}}, "name": "x"}`)

	got, ok := v.Lookup("bucket", "stats", "objects")
	require.True(t, ok)
	n, _ := got.Number()
	assert.InDelta(t, 12.0, n, 0)

	_, ok = v.Lookup("name", "deeper")
	assert.False(t, ok)

	_, ok = v.Lookup("missing")
	assert.False(t, ok)

	self, ok := v.Lookup()
	require.True(t, ok)
	assert.True(t, Equal(v, self))
}

func TestValue_WrongAccessor(t *testing.T) {
	v := String("s")

	_, ok := v.Number()
	assert.False(t, ok)

	m, ok := v.Map()
	assert.False(t, ok)
	assert.Nil(t, m)

	seq, ok := v.Sequence()
	assert.False(t, ok)
	assert.Equal(t, 0, seq.Len())
}

func TestValue_ConcurrentReads(t *testing.T) {
	v := mustParse(t, `{"items": [1, 2, 3, {"k": "v"}], "name": "shared"}`)

	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			m, _ := v.Map()
			for k, val := range m.All() {
				_ = k
				_, _ = val.MarshalJSON()
			}
		}()
	}

	wg.Wait()
}
