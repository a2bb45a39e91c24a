/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package lite contains the pattern parser and the matching engines behind
// the regexlite package. It is intended for internal use by the parent
// package and the command line tool.
//
// Patterns are made of atoms: `.` matches any single code point, any other
// code point matches itself, and a trailing `*` lets the previous atom match
// zero or more times.
package lite

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrBadPattern indicates a pattern was malformed.
var ErrBadPattern = errors.New("syntax error in pattern")

const (
	// MetaChars holds every code point with a special meaning in a pattern.
	MetaChars = ".*"

	wildcardDot  = '.'
	repeatMarker = '*'
)

// AtomKind tells a literal atom from a wildcard.
type AtomKind uint8

const (
	AtomLiteral  AtomKind = iota
	AtomWildcard          // .
)

func (k AtomKind) String() string {
	switch k {
	case AtomLiteral:
		return "literal"
	case AtomWildcard:
		return "wildcard"
	}
	return fmt.Sprintf("AtomKind(%d)", uint8(k))
}

// Atom is one matching unit of a pattern.
type Atom struct {
	Kind       AtomKind
	Rune       rune // only meaningful for AtomLiteral
	Repeatable bool // followed by `*` in the source pattern
}

// matches reports whether the atom accepts the code point c.
func (a Atom) matches(c rune, fold bool) bool {
	if a.Kind == AtomWildcard {
		return true
	}
	if fold {
		return equalFoldRune(a.Rune, c)
	}
	return a.Rune == c
}

// Pattern is a parsed pattern. The zero value is the empty pattern, which
// matches only the empty text. A Pattern is never modified after Parse
// returns it, so it can be shared freely between goroutines.
type Pattern struct {
	atoms []Atom
	// minLen is the number of non-repeatable atoms, the shortest text
	// (in code points) the pattern can match.
	minLen int
	fold   bool
}

// Parse converts pattern into its atom sequence. A `*` that opens the
// pattern or follows another `*` makes the whole pattern invalid; Parse then
// returns an error wrapping ErrBadPattern. Stacked markers are never folded
// into one.
//
// Invalid UTF-8 in the pattern decodes to one utf8.RuneError per bad byte,
// exactly as it does in the matched text.
func Parse[T ~string | ~[]byte](pattern T) (Pattern, error) {
	src := string(pattern)

	atoms := make([]Atom, 0, utf8.RuneCountInString(src))
	minLen := 0
	// open is true while the last atom can still take a repeat marker.
	open := false

	for off, r := range src {
		switch r {
		case repeatMarker:
			if len(atoms) == 0 {
				return Pattern{}, fmt.Errorf("%w: %q at offset %d has no atom to repeat", ErrBadPattern, repeatMarker, off)
			}
			if !open {
				return Pattern{}, fmt.Errorf("%w: %q at offset %d follows another %q", ErrBadPattern, repeatMarker, off, repeatMarker)
			}
			atoms[len(atoms)-1].Repeatable = true
			minLen--
			open = false
		case wildcardDot:
			atoms = append(atoms, Atom{Kind: AtomWildcard})
			minLen++
			open = true
		default:
			atoms = append(atoms, Atom{Kind: AtomLiteral, Rune: r})
			minLen++
			open = true
		}
	}

	return Pattern{atoms: atoms, minLen: minLen}, nil
}

// MustParse is like Parse but panics if the pattern is invalid.
func MustParse(pattern string) Pattern {
	p, err := Parse(pattern)
	if err != nil {
		panic(`lite: Parse(` + strconv.Quote(pattern) + `): ` + err.Error())
	}
	return p
}

// Validate reports whether pattern is well formed without keeping the atoms.
func Validate[T ~string | ~[]byte](pattern T) error {
	_, err := Parse(pattern)
	return err
}

// Len returns the number of atoms.
func (p Pattern) Len() int { return len(p.atoms) }

// MinLen returns the smallest number of code points a matching text has.
func (p Pattern) MinLen() int { return p.minLen }

// Atoms returns a copy of the atom sequence.
func (p Pattern) Atoms() []Atom {
	return append([]Atom(nil), p.atoms...)
}

// Fold returns a copy of p whose literal atoms compare with Unicode simple
// case folding.
func (p Pattern) Fold() Pattern {
	p.fold = true
	return p
}

// Folded reports whether p compares literals case-insensitively.
func (p Pattern) Folded() bool { return p.fold }

// Universal reports whether p matches every text, i.e. it is a non-empty
// run of `.*` atoms.
func (p Pattern) Universal() bool {
	if len(p.atoms) == 0 {
		return false
	}
	for _, a := range p.atoms {
		if a.Kind != AtomWildcard || !a.Repeatable {
			return false
		}
	}
	return true
}

// RequiredLiteral returns the longest run of consecutive non-repeatable
// literal atoms. Any text fully matched by p contains its UTF-8 encoding as
// a substring. utf8.RuneError atoms break a run, since invalid bytes in the
// text decode to that rune without carrying its encoding. The result is empty
// when p has no such atom.
func (p Pattern) RequiredLiteral() string {
	bestStart, bestLen := 0, 0
	start, n := 0, 0
	for i, a := range p.atoms {
		if a.Kind == AtomLiteral && !a.Repeatable && a.Rune != utf8.RuneError {
			if n == 0 {
				start = i
			}
			n++
			if n > bestLen {
				bestStart, bestLen = start, n
			}
			continue
		}
		n = 0
	}

	var sb strings.Builder
	for _, a := range p.atoms[bestStart : bestStart+bestLen] {
		sb.WriteRune(a.Rune)
	}
	return sb.String()
}

// String returns the pattern in source syntax. Parse(p.String()) yields an
// equivalent pattern.
func (p Pattern) String() string {
	var sb strings.Builder
	for _, a := range p.atoms {
		if a.Kind == AtomWildcard {
			sb.WriteByte(wildcardDot)
		} else {
			sb.WriteRune(a.Rune)
		}
		if a.Repeatable {
			sb.WriteByte(repeatMarker)
		}
	}
	return sb.String()
}
