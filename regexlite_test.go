package regexlite

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

// TestIsMatch covers the documented behaviour of the public entry point.
func TestIsMatch(t *testing.T) {
	cases := []struct {
		pattern string
		text    string
		result  bool
	}{
		// Empty pattern
		{"", "", true},
		{"", "a", false},

		// Full match, not substring
		{"a", "ba", false},
		{"a", "ab", false},
		{".*a", "ba", true},
		{"a.*", "ab", true},

		// Invalid patterns are false
		{"*", "", false},
		{"*a", "a", false},
		{"a**", "", false},

		// Wildcard is a single code point
		{".", "", false},
		{".", "xy", false},
		{"..", "xy", true},

		// Repeat semantics
		{"a*", "", true},
		{"a*", "aaaa", true},
		{"a*", "b", false},

		// Composite
		{"ab*c", "ac", true},
		{"ab*c", "abbbc", true},
		{"ab*c", "abbd", false},
		{"c*a*b", "aab", true},
		{"mis*is*p*.", "mississippi", false},

		// Unicode
		{"..", "🔥a", true},
		{"..", "🔥", false},
		{".*", "🔥", true},
	}

	for i, c := range cases {
		if result := IsMatch(c.pattern, c.text); result != c.result {
			t.Errorf("Test %d: IsMatch(%q, %q) = %v, want %v", i+1, c.pattern, c.text, result, c.result)
		}
		if result := IsMatchBytes([]byte(c.pattern), []byte(c.text)); result != c.result {
			t.Errorf("Test %d: IsMatchBytes(%q, %q) = %v, want %v", i+1, c.pattern, c.text, result, c.result)
		}
		result, err := IsMatchReader(c.pattern, strings.NewReader(c.text))
		if err != nil {
			t.Fatalf("Test %d: IsMatchReader error: %v", i+1, err)
		}
		if result != c.result {
			t.Errorf("Test %d: IsMatchReader(%q, %q) = %v, want %v", i+1, c.pattern, c.text, result, c.result)
		}
	}
}

func TestIsMatchFold(t *testing.T) {
	if !IsMatchFold("HELLO.*", "hello world") {
		t.Error("expected case-insensitive match")
	}
	if IsMatch("HELLO.*", "hello world") {
		t.Error("IsMatch must stay case-sensitive")
	}
	if IsMatchFold("a**", "A") {
		t.Error("invalid pattern matched")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("ab*c.*"); err != nil {
		t.Errorf("Validate returned %v for a valid pattern", err)
	}
	for _, p := range []string{"*", "*a", "a**"} {
		err := Validate(p)
		if !errors.Is(err, ErrBadPattern) {
			t.Errorf("Validate(%q) = %v, want ErrBadPattern", p, err)
		}
	}
}

// TestIsMatchConcurrent calls IsMatch from many goroutines; run with -race.
func TestIsMatchConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			text := strings.Repeat("ab", 100+i)
			for range 50 {
				if !IsMatch("a.*b", text) || IsMatch("a**", "") {
					t.Error("concurrent match failed")
					return
				}
			}
		}()
	}
	wg.Wait()
}
