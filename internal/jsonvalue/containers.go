package jsonvalue

import (
	"iter"
	"slices"
)

// Map is an immutable, insertion-ordered string-keyed map.
// A nil *Map behaves as an empty map.
type Map struct {
	keys   []string
	values []Value
	index  map[string]int
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}

	i, ok := m.index[key]
	if !ok {
		return Value{}, false
	}

	return m.values[i], true
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns a copy of the keys in source order.
func (m *Map) Keys() []string {
	if m == nil {
		return []string{}
	}

	return slices.Clone(m.keys)
}

// All iterates over entries in source order.
func (m *Map) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i := range m.Len() {
			if !yield(m.keys[i], m.values[i]) {
				return
			}
		}
	}
}

// Put always fails with ErrImmutable.
func (m *Map) Put(string, Value) error {
	return ErrImmutable
}

// Remove always fails with ErrImmutable.
func (m *Map) Remove(string) error {
	return ErrImmutable
}

// Clear always fails with ErrImmutable.
func (m *Map) Clear() error {
	return ErrImmutable
}

func (m *Map) equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}

	for i := range m.Len() {
		if m.keys[i] != o.keys[i] || !Equal(m.values[i], o.values[i]) {
			return false
		}
	}

	return true
}

// Sequence is an immutable, fixed-length ordered list.
// A nil *Sequence behaves as an empty sequence.
type Sequence struct {
	items []Value
}

// Len returns the number of elements.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// At returns the element at index i.
func (s *Sequence) At(i int) (Value, bool) {
	if i < 0 || i >= s.Len() {
		return Value{}, false
	}

	return s.items[i], true
}

// Values returns a copy of the elements.
func (s *Sequence) Values() []Value {
	if s == nil {
		return []Value{}
	}

	return slices.Clone(s.items)
}

// All iterates over elements in order.
func (s *Sequence) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i := range s.Len() {
			if !yield(i, s.items[i]) {
				return
			}
		}
	}
}

// Set always fails with ErrImmutable.
func (s *Sequence) Set(int, Value) error {
	return ErrImmutable
}

// Append always fails with ErrImmutable.
func (s *Sequence) Append(...Value) error {
	return ErrImmutable
}

// Remove always fails with ErrImmutable.
func (s *Sequence) Remove(int) error {
	return ErrImmutable
}

func (s *Sequence) equal(o *Sequence) bool {
	if s.Len() != o.Len() {
		return false
	}

	for i := range s.Len() {
		if !Equal(s.items[i], o.items[i]) {
			return false
		}
	}

	return true
}

// mapBuilder collects entries with last-occurrence-wins semantics.
// A repeated key keeps the position of its first occurrence.
type mapBuilder struct {
	m *Map
}

func newMapBuilder(size int) *mapBuilder {
	return &mapBuilder{m: &Map{
		keys:   make([]string, 0, size),
		values: make([]Value, 0, size),
		index:  make(map[string]int, size),
	}}
}

func (b *mapBuilder) put(key string, v Value) {
	if i, ok := b.m.index[key]; ok {
		b.m.values[i] = v
		return
	}

	b.m.index[key] = len(b.m.keys)
	b.m.keys = append(b.m.keys, key)
	b.m.values = append(b.m.values, v)
}

// value hands the map over; the builder must not be used afterwards.
func (b *mapBuilder) value() Value {
	m := b.m
	b.m = nil

	return Value{kind: KindMap, m: m}
}

func sequenceValue(items []Value) Value {
	if items == nil {
		items = []Value{}
	}

	return Value{kind: KindSequence, seq: &Sequence{items: items}}
}
