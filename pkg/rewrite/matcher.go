// Package rewrite derives the textual replacement table from the lock state
// and applies it across the text files of a working directory.
package rewrite

import (
	"regexp"
	"strings"
)

// Pattern compiles a boundary-aware regexp for one literal path string.
//
// An occurrence only counts as a match when it is not immediately preceded by
// a word character, a hyphen, or a period, and not immediately preceded by a
// path separator that is itself preceded by one of those. Plain word
// boundaries are not enough here: rewriting "img.png" must corrupt neither
// "bigimg.png" nor the unrelated "other/img.png".
//
// Go's regexp has no lookbehind, so the allowed one- or two-character prefix
// is captured and re-emitted by ReplaceAll.
func Pattern(old string) *regexp.Regexp {
	return regexp.MustCompile(`(^|[^\w.\-/]|(?:^|[^\w.\-])/)` + regexp.QuoteMeta(old))
}

// ReplaceAll replaces every standalone occurrence of old in content with new
// and reports how many occurrences were replaced.
func ReplaceAll(content, old, new string) (string, int) {
	return replaceAllPattern(content, Pattern(old), new)
}

func replaceAllPattern(content string, pattern *regexp.Regexp, new string) (string, int) {
	count := len(pattern.FindAllStringIndex(content, -1))
	if count == 0 {
		return content, 0
	}
	// $ is special in regexp replacement strings.
	replacement := "${1}" + strings.ReplaceAll(new, "$", "$$")
	return pattern.ReplaceAllString(content, replacement), count
}
