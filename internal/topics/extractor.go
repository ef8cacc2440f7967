package topics

import (
	"fmt"
	"regexp"
	"strings"

	"lectern/internal/config"
)

// Rule binds one compiled pattern to a concept label.
type Rule struct {
	Pattern *regexp.Regexp
	Label   string
}

// Extractor classifies text against an ordered rule table. All matching
// labels are included; table order only decides label ordering, via
// first match position.
type Extractor struct {
	rules    []Rule
	fallback string
}

// NewExtractor compiles the given pattern rules. An empty rule set falls back
// to the built-in circle-geometry table.
func NewExtractor(rules []config.PatternRule, fallback string) (*Extractor, error) {
	if fallback == "" {
		fallback = config.DefaultFallbackTopic
	}
	if len(rules) == 0 {
		return &Extractor{rules: defaultTopicRules(), fallback: fallback}, nil
	}

	compiled := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile topic pattern %q: %w", rule.Pattern, err)
		}
		compiled = append(compiled, Rule{Pattern: re, Label: rule.Label})
	}
	return &Extractor{rules: compiled, fallback: fallback}, nil
}

// DefaultExtractor returns an extractor over the built-in vocabulary.
func DefaultExtractor() *Extractor {
	return &Extractor{rules: defaultTopicRules(), fallback: config.DefaultFallbackTopic}
}

// Extract concatenates the given texts and returns a comma-joined,
// de-duplicated list of every concept whose pattern matches, in table order.
// When nothing matches it returns the fallback label.
func (e *Extractor) Extract(texts []string) string {
	joined := strings.Join(texts, "\n")
	if strings.TrimSpace(joined) == "" {
		return e.fallback
	}

	seen := make(map[string]struct{}, len(e.rules))
	labels := make([]string, 0, 4)
	for _, rule := range e.rules {
		if _, dup := seen[rule.Label]; dup {
			continue
		}
		if rule.Pattern.MatchString(joined) {
			seen[rule.Label] = struct{}{}
			labels = append(labels, rule.Label)
		}
	}

	if len(labels) == 0 {
		return e.fallback
	}
	return strings.Join(labels, ", ")
}

// Fallback returns the label used when no pattern matches.
func (e *Extractor) Fallback() string {
	return e.fallback
}

func defaultTopicRules() []Rule {
	// Circle-geometry vocabulary, most specific terms first.
	table := []struct {
		pattern string
		label   string
	}{
		{`(?i)circumference|perimeter of (a |the )?circle`, "circumference"},
		{`(?i)\bdiameters?\b`, "diameter"},
		{`(?i)\bradi(us|i)\b`, "radius"},
		{`(?i)\bchords?\b`, "chords"},
		{`(?i)\btangents?\b|point of tangency`, "tangents"},
		{`(?i)\barcs?\b|arc length`, "arcs"},
		{`(?i)\bsectors?\b`, "sectors"},
		{`(?i)central angles?|inscribed angles?`, "circle angles"},
		{`(?i)\bpi\b|3\.14`, "pi"},
		{`(?i)area of (a |the )?circle|πr|pi r squared`, "circle area"},
		{`(?i)unit circle`, "unit circle"},
		{`(?i)equation of (a |the )?circle|\(x\s*[-+]`, "circle equations"},
	}

	rules := make([]Rule, 0, len(table))
	for _, entry := range table {
		rules = append(rules, Rule{Pattern: regexp.MustCompile(entry.pattern), Label: entry.label})
	}
	return rules
}
