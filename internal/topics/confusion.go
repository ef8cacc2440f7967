package topics

import (
	"fmt"
	"regexp"
)

// Matcher reports whether text carries any of a set of signal patterns.
type Matcher struct {
	patterns []*regexp.Regexp
}

// NewMatcher compiles the given patterns. An empty set falls back to the
// built-in confusion vocabulary.
func NewMatcher(patterns []string) (*Matcher, error) {
	if len(patterns) == 0 {
		return DefaultConfusionMatcher(), nil
	}
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile confusion pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, re)
	}
	return &Matcher{patterns: compiled}, nil
}

// DefaultConfusionMatcher returns a matcher over the built-in confusion
// keyword and emoji vocabulary.
func DefaultConfusionMatcher() *Matcher {
	raw := []string{
		`(?i)\bconfus(ed|ing|ion)?\b`,
		`(?i)i (don'?t|do not|dont) (get|understand|follow)`,
		`(?i)\b(i'?m|im|i am) lost\b`,
		`(?i)what (does|do) .{0,40} mean`,
		`(?i)can you (repeat|explain|go over)`,
		`(?i)(makes|making) no sense`,
		`(?i)\bstuck\b`,
		`(?i)\bhuh\b`,
		`\?{3,}`,
		`😕|🤔|😵|🫤|❓`,
	}
	compiled := make([]*regexp.Regexp, 0, len(raw))
	for _, pattern := range raw {
		compiled = append(compiled, regexp.MustCompile(pattern))
	}
	return &Matcher{patterns: compiled}
}

// Match reports whether any pattern matches the text.
func (m *Matcher) Match(text string) bool {
	for _, re := range m.patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
