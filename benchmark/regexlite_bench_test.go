package regexlite_bench

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/IGLOU-EU/go-wildcard/v2"
	"github.com/twinfer/regexlite"
)

// shrug is a five code point emoji sequence joined by a ZWJ.
const shrug = "\U0001F937\U0001F3FE\u200D\u2642\uFE0F"

// TestSet holds each case in regexlite syntax, as an anchored stdlib regexp
// and, where the language allows it, as a go-wildcard pattern (`*` there is
// our `.*`).
var TestSet = []struct {
	pattern  string
	regex    string
	wildcard string
	input    string
}{
	{"", `^$`, "", "These aren't the wildcard you're looking for"},
	{"These aren't the wildcard you're looking for", `^These aren't the wildcard you're looking for$`, "These aren't the wildcard you're looking for", ""},
	{".*", `(?s)^.*$`, "*", "These aren't the wildcard you're looking for"},
	{"These aren't the wildcard you're looking for", `^These aren't the wildcard you're looking for$`, "These aren't the wildcard you're looking for", "These aren't the wildcard you're looking for"},
	{"Th.se .* the wildcard you.re looking fo.", `(?s)^Th.se .* the wildcard you.re looking fo.$`, "Th.se * the wildcard you.re looking fo.", "These aren't the wildcard you're looking for"},
	{".*" + shrug + ".*", "(?s)^.*" + shrug + ".*$", "*" + shrug + "*", "T\U0001F975" + shrug + "\U0001F953"},
	{"a*a*a*a*a*a*a*a*a*a*aaaaaaaaaa", `^a*a*a*a*a*a*a*a*a*a*aaaaaaaaaa$`, "", "aaaaaaaaaa"},
}

func BenchmarkRegex(b *testing.B) {
	for i, t := range TestSet {
		re := regexp.MustCompile(t.regex)
		b.Run(fmt.Sprint(i), func(b *testing.B) {
			for b.Loop() {
				re.MatchString(t.input)
			}
		})
	}
}

func BenchmarkRegexCompile(b *testing.B) {
	for i, t := range TestSet {
		b.Run(fmt.Sprint(i), func(b *testing.B) {
			for b.Loop() {
				regexp.MatchString(t.regex, t.input)
			}
		})
	}
}

func BenchmarkGoWildcardMatch(b *testing.B) {
	for i, t := range TestSet {
		if t.wildcard == "" && t.pattern != "" {
			continue
		}
		b.Run(fmt.Sprint(i), func(b *testing.B) {
			for b.Loop() {
				wildcard.MatchByRune(t.wildcard, t.input)
			}
		})
	}
}

func BenchmarkIsMatch(b *testing.B) {
	for i, t := range TestSet {
		b.Run(fmt.Sprint(i), func(b *testing.B) {
			for b.Loop() {
				regexlite.IsMatch(t.pattern, t.input)
			}
		})
	}
}

func BenchmarkIsMatchBytes(b *testing.B) {
	for i, t := range TestSet {
		pattern := []byte(t.pattern)
		input := []byte(t.input)

		b.Run(fmt.Sprint(i), func(b *testing.B) {
			for b.Loop() {
				regexlite.IsMatchBytes(pattern, input)
			}
		})
	}
}

// TestAgreesWithRegexAndWildcard keeps the three renditions of TestSet in
// step, so the benchmarks compare like with like.
func TestAgreesWithRegexAndWildcard(t *testing.T) {
	for i, c := range TestSet {
		got := regexlite.IsMatch(c.pattern, c.input)
		if want := regexp.MustCompile(c.regex).MatchString(c.input); got != want {
			t.Errorf("case %d: regexlite=%v regexp=%v", i, got, want)
		}
		if c.wildcard == "" && c.pattern != "" {
			continue
		}
		if want := wildcard.MatchByRune(c.wildcard, c.input); got != want {
			t.Errorf("case %d: regexlite=%v go-wildcard=%v", i, got, want)
		}
	}
}
