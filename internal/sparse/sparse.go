/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package sparse provides a sparse set of small integers with O(1) insert,
// membership test and clear. The state-set matcher keeps the reachable atom
// positions of a pattern in it.
package sparse

// Set is a set of ints in [0, capacity). The dense slice keeps insertion
// order for iteration; the sparse slice maps a value to its dense index.
type Set struct {
	sparse []int
	dense  []int
}

// New creates an empty set able to hold the values [0, capacity).
func New(capacity int) *Set {
	return &Set{
		sparse: make([]int, capacity),
		dense:  make([]int, 0, capacity),
	}
}

// Insert adds v to the set. It reports false if v was already present.
// Panics if v is outside [0, capacity).
func (s *Set) Insert(v int) bool {
	if s.Contains(v) {
		return false
	}
	s.sparse[v] = len(s.dense)
	s.dense = append(s.dense, v)
	return true
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v int) bool {
	if v < 0 || v >= len(s.sparse) {
		return false
	}
	i := s.sparse[v]
	return i < len(s.dense) && s.dense[i] == v
}

// Clear empties the set in O(1); stale sparse entries are never trusted.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements.
func (s *Set) Len() int { return len(s.dense) }

// IsEmpty reports whether the set has no elements.
func (s *Set) IsEmpty() bool { return len(s.dense) == 0 }

// Cap returns the exclusive upper bound of storable values.
func (s *Set) Cap() int { return len(s.sparse) }

// Values returns the elements in insertion order. The slice is valid until
// the next mutation.
func (s *Set) Values() []int {
	return s.dense
}
