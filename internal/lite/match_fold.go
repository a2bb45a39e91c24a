/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package lite

import "unicode"

// MatchFold is the case-insensitive variant of Match. Literal atoms compare
// with Unicode simple folding; `.` and `*` behave exactly as in Match.
func MatchFold[T ~string | ~[]byte](pattern, s T) bool {
	return match(pattern, s, true)
}

// equalFoldRune reports whether r1 and r2 are equal under Unicode simple
// folding.
func equalFoldRune(r1, r2 rune) bool {
	if r1 == r2 {
		return true
	}
	if r1 < r2 {
		r1, r2 = r2, r1
	}
	// SimpleFold cycles through the case variants of r2.
	for f := unicode.SimpleFold(r2); f != r2; f = unicode.SimpleFold(f) {
		if f == r1 {
			return true
		}
	}
	return false
}
