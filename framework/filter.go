package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

// RegexFilters selects tests by path.
//
// MustMatch works like "go test -run": each pattern is split at unescaped slashes, and each part
// must match the path element at the same depth. Elements deeper than the pattern match anything,
// so a group is kept whenever some descendant could still be selected. MustNotMatch patterns are
// matched against the whole slash-joined path, and excluding a group excludes everything in it.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(id TestID) bool {
	if r.MustMatch.IsDefined() && !r.MustMatch.MatchLevels(id.Path) {
		return false
	}
	return !r.MustNotMatch.AnyMatch(id.String())
}

type pattern struct {
	whole  *regexp.Regexp
	levels []*regexp.Regexp
}

type RegexList struct {
	patterns []pattern
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.whole.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	whole, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	p := pattern{whole: whole}
	for _, part := range splitLevels(value) {
		rx, err := regexp.Compile(part)
		if err != nil {
			return fmt.Errorf("invalid regex %q in %q: %w", part, value, err)
		}
		p.levels = append(p.levels, rx)
	}
	r.patterns = append(r.patterns, p)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

// AnyMatch reports whether any pattern matches s as a whole.
func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.whole.MatchString(s) {
			return true
		}
	}
	return false
}

// MatchLevels reports whether any pattern matches path level by level.
func (r RegexList) MatchLevels(path []string) bool {
	for _, p := range r.patterns {
		if p.matchLevels(path) {
			return true
		}
	}
	return false
}

func (p pattern) matchLevels(path []string) bool {
	for i, rx := range p.levels {
		if i >= len(path) {
			break
		}
		if !rx.MatchString(path[i]) {
			return false
		}
	}
	return true
}

// splitLevels splits a pattern at slashes that are not escaped and not inside brackets or
// parentheses.
func splitLevels(value string) []string {
	var parts []string
	var depth, start int
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '\\':
			i++
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case '/':
			if depth == 0 {
				parts = append(parts, value[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, value[start:])
}

func PrintFilterDescription(out io.Writer, filters RegexFilters) {
	if !filters.MustMatch.IsDefined() && !filters.MustNotMatch.IsDefined() {
		return
	}
	fmt.Fprintln(out, "Some tests will be skipped based on the filter criteria for this test run:")
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Fprintln(out)
}
