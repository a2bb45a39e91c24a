// Package regexlite decides whether a whole string matches a small pattern
// language. It is a lite regular expression matcher, not a general regex
// engine, and it runs in O(pattern × text) time for every input, so no
// pattern can trigger catastrophic backtracking.
//
// # Supported syntax:
//
//   - `.`: Matches any single character (one Unicode code point).
//   - `*`: Matches zero or more repetitions of the previous atom.
//   - Any other character matches itself.
//
// The entire text must match the entire pattern. A `*` with nothing to
// repeat (`*a`) or stacked on another `*` (`a**`) makes the pattern invalid,
// and an invalid pattern matches nothing.
package regexlite

import (
	"io"

	"github.com/twinfer/regexlite/internal/lite"
)

// ErrBadPattern is wrapped by the error Validate returns for a malformed
// pattern.
var ErrBadPattern = lite.ErrBadPattern

// IsMatch reports whether text as a whole matches pattern as a whole.
// Both are decoded to Unicode code points, so `.` matches one character
// even when it is several bytes long. It returns false for a malformed
// pattern.
func IsMatch(pattern, text string) bool {
	return lite.Match(pattern, text)
}

// IsMatchBytes is the byte slice equivalent of IsMatch. The slices are
// decoded as UTF-8, exactly like the strings given to IsMatch.
func IsMatchBytes(pattern, text []byte) bool {
	return lite.Match(pattern, text)
}

// IsMatchFold is the case-insensitive variant of IsMatch. Literal
// characters compare with Unicode simple case folding.
func IsMatchFold(pattern, text string) bool {
	return lite.MatchFold(pattern, text)
}

// IsMatchReader reports whether everything read from r matches pattern.
// The text is never held in memory; matching costs O(len(pattern)) memory.
// The only errors returned are read errors from r. A malformed pattern
// yields false and a nil error, and r is not read.
func IsMatchReader(pattern string, r io.RuneReader) (bool, error) {
	p, err := lite.Parse(pattern)
	if err != nil {
		return false, nil
	}
	return p.MatchReader(r)
}

// Validate returns nil if pattern is well formed, or an error wrapping
// ErrBadPattern that names the offending `*`. It does not change the result
// of IsMatch, which stays false for a malformed pattern.
func Validate(pattern string) error {
	return lite.Validate(pattern)
}
