/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package lite

import (
	"errors"
	"io"

	"github.com/twinfer/regexlite/internal/sparse"
)

// MatchReader decides a full match of everything read from r against p
// without holding the text in memory. It tracks the set of atom positions
// reachable after each code point: position i means "the first i atoms are
// consumed", and position p.Len() is the accepting one.
//
// Each code point costs O(p.Len()), so the total is the same
// O(atoms × code points) as MatchRunes, with O(atoms) memory.
//
// Reading stops early once no position is reachable; the rest of r is left
// unread. Any read error other than io.EOF is returned.
func (p Pattern) MatchReader(r io.RuneReader) (bool, error) {
	n := len(p.atoms)
	cur, next := sparse.New(n+1), sparse.New(n+1)
	p.closure(cur, 0)

	for {
		if cur.IsEmpty() {
			return false, nil
		}

		c, _, err := r.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return false, err
		}

		next.Clear()
		for _, i := range cur.Values() {
			if i == n {
				continue
			}
			a := p.atoms[i]
			if !a.matches(c, p.fold) {
				continue
			}
			if a.Repeatable {
				p.closure(next, i)
			} else {
				p.closure(next, i+1)
			}
		}
		cur, next = next, cur
	}

	return cur.Contains(n), nil
}

// closure adds position i and every position reachable from it by letting
// repeatable atoms match zero times.
func (p Pattern) closure(set *sparse.Set, i int) {
	for ; i < len(p.atoms); i++ {
		// Already present means its whole chain was added before.
		if !set.Insert(i) {
			return
		}
		if !p.atoms[i].Repeatable {
			return
		}
	}
	set.Insert(len(p.atoms))
}
