package regexlite

import (
	"testing"
)

// Benchmark data for IsMatchFold performance analysis
var matchFoldCases = []struct {
	pattern string
	input   string
	name    string
}{
	{"hello", "HELLO", "simple_exact"},
	{"Hello.*World", "HELLO BEAUTIFUL WORLD", "prefix_suffix"},
	{".*test.*", "THIS IS A TEST STRING", "contains"},
	{"file.*\\.txt", "FILE_NAME\\.TXT", "prefix_wildcard"},
	{"H.*l*o", "HELLO", "multiple_wildcards"},
	{"café.*", "CAFÉ CRÈME", "unicode"},
	{"verylongpatternwithmanychars.*", "VERYLONGPATTERNWITHMANYCHARSANDMORE", "long_pattern"},
}

func BenchmarkMatchFold(b *testing.B) {
	for _, tc := range matchFoldCases {
		b.Run(tc.name, func(b *testing.B) {
			for b.Loop() {
				IsMatchFold(tc.pattern, tc.input)
			}
		})
	}
}

func BenchmarkMatchFoldWithAllocs(b *testing.B) {
	for _, tc := range matchFoldCases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				IsMatchFold(tc.pattern, tc.input)
			}
		})
	}
}
