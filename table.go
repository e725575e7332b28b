// Copyright 2026 The luadata Authors
// SPDX-License-Identifier: MIT

package luadata

import (
	"hash/maphash"
	"iter"

	"github.com/lua-data/luadata/sets"
)

var tableHashSeed = maphash.MakeSeed()

// Table is an ordered sequence of (key, value) pairs with no two live
// entries sharing the same key under [Value.Equal]. It is the table
// representation produced by the parser and consumed by the materializer
// and the JSON bridge.
//
// Table combines a slice (for insertion order) with a hash-keyed side
// index (for near-constant-time lookup), following the "vector plus hash
// index" shape recommended for reproducing Lua's table-constructor
// override semantics: setting an existing key removes its old slot and
// appends the new value at the end of the order.
type Table struct {
	pairs []pair
	index map[uint64][]int
}

type pair struct {
	key   Value
	value Value
}

// NewTable returns a new, empty Table.
func NewTable() *Table {
	return &Table{index: make(map[uint64][]int)}
}

// Len returns the number of live entries in t.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.pairs)
}

// Get returns the value associated with key and whether it is present.
func (t *Table) Get(key Value) (Value, bool) {
	if t == nil {
		return Value{}, false
	}
	if i, ok := t.find(key); ok {
		return t.pairs[i].value, true
	}
	return Value{}, false
}

func (t *Table) find(key Value) (int, bool) {
	h := key.hash(tableHashSeed)
	for _, i := range t.index[h] {
		if t.pairs[i].key.Equal(key) {
			return i, true
		}
	}
	return 0, false
}

// Set assigns value to key, overwriting any existing entry. Per Lua's
// table-constructor semantics, overwriting an existing key removes it
// from its current position and re-appends it at the end of the order,
// so later definitions always sort last.
func (t *Table) Set(key, value Value) {
	if i, ok := t.find(key); ok {
		t.remove(i)
	}
	t.append(key, value)
}

func (t *Table) append(key, value Value) {
	i := len(t.pairs)
	t.pairs = append(t.pairs, pair{key: key, value: value})
	h := key.hash(tableHashSeed)
	t.index[h] = append(t.index[h], i)
}

// remove deletes the pair at slice position i, keeping every other pair's
// relative order and keeping the hash index consistent with the
// resulting, compacted slice.
func (t *Table) remove(i int) {
	removedHash := t.pairs[i].key.hash(tableHashSeed)
	t.pairs = append(t.pairs[:i], t.pairs[i+1:]...)
	t.index[removedHash] = removeInt(t.index[removedHash], i)
	if len(t.index[removedHash]) == 0 {
		delete(t.index, removedHash)
	}
	// Every index recorded for a pair after i has shifted down by one.
	for h, positions := range t.index {
		for j, p := range positions {
			if p > i {
				positions[j] = p - 1
			}
		}
		t.index[h] = positions
	}
}

func removeInt(s []int, v int) []int {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// All returns an iterator over t's entries in insertion order.
func (t *Table) All() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		if t == nil {
			return
		}
		for _, p := range t.pairs {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// IsSequence reports whether t's keys are exactly the integers 1..n for
// n = t.Len(), with no gaps, and returns n.
func (t *Table) IsSequence() (n int, ok bool) {
	n = t.Len()
	if t == nil {
		return 0, true
	}
	seen := new(sets.Bit)
	for _, p := range t.pairs {
		i, isInt := p.key.Int64()
		if !isInt || i < 1 || i > int64(n) {
			return 0, false
		}
		if seen.Has(uint(i)) {
			return 0, false
		}
		seen.Add(uint(i))
	}
	return n, true
}

// Seq returns the values of a sequence table (see [Table.IsSequence]) in
// ascending key order.
func (t *Table) Seq() []Value {
	n, ok := t.IsSequence()
	if !ok {
		return nil
	}
	out := make([]Value, n)
	for _, p := range t.pairs {
		i, _ := p.key.Int64()
		out[i-1] = p.value
	}
	return out
}
