// Package fset provides the indexed-bitset fact sets shared by every
// analysis in package dataflow.
//
// Every classical dataflow analysis in this module tracks sets drawn
// from some fixed, per-run universe of elements (all complex
// expressions in the program, all (name, label) definition pairs, all
// free variables). Universe assigns each element of that universe a
// bit position once, up front; Set is a subset of a Universe backed by
// a bitset, so every analysis shares one set implementation instead of
// a bespoke one per fact type.
package fset

import "github.com/bits-and-blooms/bitset"

// Universe fixes an enumeration of every element a Set[T] over T can
// contain, and the index each element occupies in the backing bitset.
// A Universe is built once per analysis instance and never mutated
// afterward.
type Universe[T comparable] struct {
	items []T
	index map[T]uint
}

// NewUniverse builds a Universe from items, discarding duplicates and
// fixing the order in which remaining items are assigned bit indices.
func NewUniverse[T comparable](items []T) *Universe[T] {
	u := &Universe[T]{index: make(map[T]uint, len(items))}
	for _, item := range items {
		if _, ok := u.index[item]; ok {
			continue
		}
		u.index[item] = uint(len(u.items))
		u.items = append(u.items, item)
	}
	return u
}

// Len returns the number of distinct elements in the universe.
func (u *Universe[T]) Len() int { return len(u.items) }

// indexOf returns the bit position of item, or false if item is not a
// member of the universe.
func (u *Universe[T]) indexOf(item T) (uint, bool) {
	i, ok := u.index[item]
	return i, ok
}

// Empty returns the bottom element of the universe's subset lattice: a
// Set containing nothing.
func (u *Universe[T]) Empty() *Set[T] {
	return &Set[T]{universe: u, bits: new(bitset.BitSet)}
}

// Full returns the top element of the universe's subset lattice: a Set
// containing every element of the universe.
func (u *Universe[T]) Full() *Set[T] {
	bits := new(bitset.BitSet)
	for i := range u.items {
		bits.Set(uint(i))
	}
	return &Set[T]{universe: u, bits: bits}
}

// Of returns a Set containing exactly the given items. Items outside
// the universe are silently ignored, since they can never be produced
// by a gen/kill computed against this universe.
func (u *Universe[T]) Of(items ...T) *Set[T] {
	s := u.Empty()
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Set is a fact set: a subset of some fixed Universe[T], represented as
// a bitset indexed by the universe's element order. The zero value is
// not usable; construct one via a Universe's Empty, Full or Of.
type Set[T comparable] struct {
	universe *Universe[T]
	bits     *bitset.BitSet
}

// Add inserts item into s and returns s for chaining. Adding an item
// outside s's universe is a no-op.
func (s *Set[T]) Add(item T) *Set[T] {
	if i, ok := s.universe.indexOf(item); ok {
		s.bits.Set(i)
	}
	return s
}

// Contains reports whether item is a member of s.
func (s *Set[T]) Contains(item T) bool {
	i, ok := s.universe.indexOf(item)
	return ok && s.bits.Test(i)
}

// Clone returns an independent copy of s.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{universe: s.universe, bits: s.bits.Clone()}
}

// Union returns a new set containing every element of s or other.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	return &Set[T]{universe: s.universe, bits: s.bits.Union(other.bits)}
}

// Intersect returns a new set containing every element of both s and
// other. Implemented as a ∖ (a ∖ b), so it needs only the Difference
// primitive the bitset library exposes.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	diff := s.bits.Difference(other.bits)
	return &Set[T]{universe: s.universe, bits: s.bits.Difference(diff)}
}

// Difference returns a new set containing every element of s that is
// not in other.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	return &Set[T]{universe: s.universe, bits: s.bits.Difference(other.bits)}
}

// Equal reports whether s and other contain exactly the same elements.
func (s *Set[T]) Equal(other *Set[T]) bool {
	return s.SubsetOf(other) && other.SubsetOf(s)
}

// SubsetOf reports whether every element of s is also in other.
func (s *Set[T]) SubsetOf(other *Set[T]) bool {
	return s.bits.Difference(other.bits).Count() == 0
}

// SupersetOf reports whether every element of other is also in s.
func (s *Set[T]) SupersetOf(other *Set[T]) bool {
	return other.SubsetOf(s)
}

// Items returns the elements of s in the universe's enumeration order.
func (s *Set[T]) Items() []T {
	items := make([]T, 0, s.bits.Count())
	for i, ok := uint(0), true; ok; i++ {
		if i, ok = s.bits.NextSet(i); ok {
			items = append(items, s.universe.items[i])
		}
	}
	return items
}
