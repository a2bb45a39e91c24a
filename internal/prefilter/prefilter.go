/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package prefilter rejects input that cannot fully match any pattern of a
// set before the match table is built for it.
//
// Every fully matching text contains the pattern's required literal (see
// lite.Pattern.RequiredLiteral), so a line containing none of the required
// literals can be skipped. The literals are searched at once with an
// Aho-Corasick automaton.
package prefilter

import (
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/twinfer/regexlite/internal/lite"
)

// Prefilter is safe for concurrent use once built.
type Prefilter struct {
	auto     *ahocorasick.Automaton
	literals []string
}

// New builds a prefilter for patterns. The result lets every input through
// when a pattern has no required literal or compares case-insensitively,
// since nothing can then be ruled out by a byte search.
func New(patterns []lite.Pattern) (*Prefilter, error) {
	if len(patterns) == 0 {
		return &Prefilter{}, nil
	}

	literals := make([]string, 0, len(patterns))
	seen := make(map[string]struct{}, len(patterns))
	for _, p := range patterns {
		lit := p.RequiredLiteral()
		if lit == "" || p.Folded() {
			return &Prefilter{}, nil
		}
		if _, ok := seen[lit]; ok {
			continue
		}
		seen[lit] = struct{}{}
		literals = append(literals, lit)
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building literal automaton: %w", err)
	}
	return &Prefilter{auto: auto, literals: literals}, nil
}

// Active reports whether the prefilter can reject anything.
func (p *Prefilter) Active() bool {
	return p != nil && p.auto != nil
}

// Literals returns the distinct required literals searched for.
func (p *Prefilter) Literals() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.literals...)
}

// MayMatch reports false only when no pattern can fully match line.
func (p *Prefilter) MayMatch(line []byte) bool {
	if !p.Active() {
		return true
	}
	return p.auto.IsMatch(line)
}
