package domain

import (
	"bytes"
	"sort"
)

// NullifierSet is an in-memory set of nullifier values. Insert-only, no
// ordering semantics.
type NullifierSet map[Nullifier]struct{}

// NewNullifierSet returns a set holding the given nullifiers.
func NewNullifierSet(nullifiers ...Nullifier) NullifierSet {
	s := make(NullifierSet, len(nullifiers))
	for _, nf := range nullifiers {
		s.Insert(nf)
	}
	return s
}

// Contains returns whether the nullifier is in the set.
func (s NullifierSet) Contains(nf Nullifier) bool {
	_, ok := s[nf]
	return ok
}

// Insert adds the nullifier to the set.
func (s NullifierSet) Insert(nf Nullifier) {
	s[nf] = struct{}{}
}

// Slice returns the set members sorted bytewise, so snapshots taken from the
// same set serialize identically.
func (s NullifierSet) Slice() []Nullifier {
	list := make([]Nullifier, 0, len(s))
	for nf := range s {
		list = append(list, nf)
	}
	sort.Slice(list, func(i, j int) bool {
		return bytes.Compare(list[i][:], list[j][:]) < 0
	})
	return list
}

// NullifierEntry is the persisted form of a consumed nullifier, tagged with
// the registry it belongs to.
type NullifierEntry struct {
	Kind  string
	Value Nullifier
}

// Key returns the storage key of the entry.
func (e NullifierEntry) Key() string {
	return e.Kind + ":" + e.Value.Hex()
}
