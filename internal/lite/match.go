/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package lite

import (
	"strings"
	"unicode/utf8"
)

// Match reports whether the whole of s matches the whole of pattern.
// An invalid pattern matches nothing, not even the empty string.
//
// It acts as a dispatcher: a few fast paths handle trivial patterns and
// everything else goes through the match table, which costs
// O(atoms × code points) no matter how many `*` the pattern holds.
func Match[T ~string | ~[]byte](pattern, s T) bool {
	return match(pattern, s, false)
}

func match[T ~string | ~[]byte](pattern, s T, fold bool) bool {
	if len(pattern) == 0 {
		return len(s) == 0
	}

	// Fast path for patterns without any metacharacters.
	if src := string(pattern); isExactPattern(src) {
		if fold {
			return strings.EqualFold(src, string(s))
		}
		return src == string(s)
	}

	p, err := Parse(pattern)
	if err != nil {
		return false
	}
	if fold {
		p = p.Fold()
	}
	// Fast path for `.*`, `.*.*`, ...
	if p.Universal() {
		return true
	}
	return p.MatchRunes([]rune(string(s)))
}

// isExactPattern reports whether pattern is a plain literal whose byte-wise
// comparison agrees with a code point comparison. U+FFFD and invalid UTF-8
// are left to the table, where a bad byte in the text decodes to U+FFFD.
func isExactPattern(pattern string) bool {
	return !strings.ContainsAny(pattern, MetaChars+string(utf8.RuneError)) && utf8.ValidString(pattern)
}

// MatchString reports whether the whole of s matches p.
func (p Pattern) MatchString(s string) bool {
	if p.Universal() {
		return true
	}
	return p.MatchRunes([]rune(s))
}

// MatchBytes reports whether the whole of b, decoded as UTF-8, matches p.
func (p Pattern) MatchBytes(b []byte) bool {
	if p.Universal() {
		return true
	}
	return p.MatchRunes([]rune(string(b)))
}

// MatchRunes decides a full match of text against p with the match table.
//
// table[i][j] is true when the first i atoms can account for exactly the first
// j code points. Row i only reads row i-1 and its own previous cell, so two
// rows of len(text)+1 cells are enough:
//
//	plain atom:      table[i][j] = table[i-1][j-1] && a matches c
//	repeatable atom: table[i][j] = table[i-1][j] || (table[i][j-1] && a matches c)
//
// Every cell is computed once, so the cost is O(p.Len() × len(text)).
func (p Pattern) MatchRunes(text []rune) bool {
	if p.minLen > len(text) {
		return false
	}

	prev := make([]bool, len(text)+1)
	cur := make([]bool, len(text)+1)
	prev[0] = true // the empty pattern matches the empty text

	for _, a := range p.atoms {
		cur[0] = prev[0] && a.Repeatable
		alive := cur[0]

		for j, c := range text {
			if a.Repeatable {
				cur[j+1] = prev[j+1] || (cur[j] && a.matches(c, p.fold))
			} else {
				cur[j+1] = prev[j] && a.matches(c, p.fold)
			}
			alive = alive || cur[j+1]
		}

		// No prefix of the text survives this atom, so no later row can
		// turn true again.
		if !alive {
			return false
		}
		prev, cur = cur, prev
	}

	return prev[len(text)]
}
