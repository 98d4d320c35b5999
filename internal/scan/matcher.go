package scan

import (
	"regexp"
	"strings"

	"github.com/zhubert/pfp/internal/errors"
)

// Wildcard is the marker value that matches every entry name.
const Wildcard = "*"

// Matcher tests a file name against an exact name set and a set of
// regular-expression patterns. The patterns are compiled into a single
// alternation once, at construction, so the per-entry test in the scan
// hot path is one map lookup plus at most one regexp match.
type Matcher struct {
	exact    map[string]struct{}
	pattern  *regexp.Regexp
	wildcard bool
}

// NewMatcher builds a Matcher from exact names and regular-expression
// patterns. An empty pattern list is valid and matches nothing. An invalid
// pattern is a configuration error reported before any traversal starts.
func NewMatcher(exact, patterns []string) (Matcher, error) {
	m := Matcher{exact: make(map[string]struct{}, len(exact))}
	for _, name := range exact {
		if name == Wildcard {
			m.wildcard = true
			continue
		}
		m.exact[name] = struct{}{}
	}

	if len(patterns) == 0 {
		return m, nil
	}

	parts := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if _, err := regexp.Compile(p); err != nil {
			return Matcher{}, errors.BadPattern(p, err)
		}
		parts = append(parts, "(?:"+p+")")
	}
	combined, err := regexp.Compile(strings.Join(parts, "|"))
	if err != nil {
		return Matcher{}, errors.BadPattern(strings.Join(patterns, "|"), err)
	}
	m.pattern = combined
	return m, nil
}

// Match reports whether name is matched exactly or by any pattern.
func (m Matcher) Match(name string) bool {
	if m.wildcard {
		return true
	}
	if _, ok := m.exact[name]; ok {
		return true
	}
	return m.pattern != nil && m.pattern.MatchString(name)
}

// Empty reports whether the Matcher can never match anything.
func (m Matcher) Empty() bool {
	return !m.wildcard && len(m.exact) == 0 && m.pattern == nil
}
