package topics

import (
	"testing"

	"lectern/internal/config"
)

func TestExtractSingleConcept(t *testing.T) {
	e := DefaultExtractor()
	got := e.Extract([]string{"Today we measure the radius of each circle."})
	if got != "radius" {
		t.Errorf("Extract = %q, want %q", got, "radius")
	}
}

func TestExtractMultipleConceptsTableOrder(t *testing.T) {
	e := DefaultExtractor()
	// Radius appears before diameter in the text, but the table orders
	// diameter first; inclusion follows table order, not text order.
	got := e.Extract([]string{"compare the radius with the diameter"})
	if got != "diameter, radius" {
		t.Errorf("Extract = %q, want %q", got, "diameter, radius")
	}
}

func TestExtractDeduplicatesAcrossTexts(t *testing.T) {
	e := DefaultExtractor()
	got := e.Extract([]string{"a chord here", "another chord there", "and a tangent"})
	if got != "chords, tangents" {
		t.Errorf("Extract = %q, want %q", got, "chords, tangents")
	}
}

func TestExtractFallback(t *testing.T) {
	e := DefaultExtractor()
	tests := [][]string{
		nil,
		{""},
		{"please open your notebooks"},
	}
	for _, texts := range tests {
		if got := e.Extract(texts); got != config.DefaultFallbackTopic {
			t.Errorf("Extract(%v) = %q, want fallback", texts, got)
		}
	}
}

func TestExtractCaseInsensitive(t *testing.T) {
	e := DefaultExtractor()
	if got := e.Extract([]string{"THE CIRCUMFERENCE FORMULA"}); got != "circumference" {
		t.Errorf("Extract = %q, want circumference", got)
	}
}

func TestNewExtractorCustomVocabulary(t *testing.T) {
	rules := []config.PatternRule{
		{Pattern: `(?i)fraction`, Label: "fractions"},
		{Pattern: `(?i)decimal`, Label: "decimals"},
	}
	e, err := NewExtractor(rules, "arithmetic")
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	if got := e.Extract([]string{"converting a fraction to a decimal"}); got != "fractions, decimals" {
		t.Errorf("Extract = %q, want %q", got, "fractions, decimals")
	}
	if got := e.Extract([]string{"circles"}); got != "arithmetic" {
		t.Errorf("fallback = %q, want %q", got, "arithmetic")
	}
}

func TestNewExtractorRejectsBadPattern(t *testing.T) {
	if _, err := NewExtractor([]config.PatternRule{{Pattern: "(", Label: "broken"}}, ""); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestNewExtractorEmptyUsesBuiltin(t *testing.T) {
	e, err := NewExtractor(nil, "")
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	if got := e.Extract([]string{"an inscribed angle"}); got != "circle angles" {
		t.Errorf("Extract = %q, want circle angles", got)
	}
}

func TestConfusionMatcher(t *testing.T) {
	m := DefaultConfusionMatcher()
	positive := []string{
		"i'm so confused",
		"I don't get it",
		"i dont understand this",
		"im lost",
		"what does tangent mean here",
		"can you repeat that",
		"this makes no sense",
		"stuck on question 2",
		"huh",
		"????",
		"😕",
	}
	for _, text := range positive {
		if !m.Match(text) {
			t.Errorf("expected confusion match for %q", text)
		}
	}
	negative := []string{
		"got it, thanks!",
		"the radius is 4",
		"nice one",
		"",
	}
	for _, text := range negative {
		if m.Match(text) {
			t.Errorf("unexpected confusion match for %q", text)
		}
	}
}

func TestNewMatcherCustomPatterns(t *testing.T) {
	m, err := NewMatcher([]string{`(?i)\bayuda\b`})
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	if !m.Match("necesito ayuda") {
		t.Error("expected custom pattern match")
	}
	if m.Match("i'm confused") {
		t.Error("custom vocabulary should replace the builtin set")
	}
}

func TestNewMatcherRejectsBadPattern(t *testing.T) {
	if _, err := NewMatcher([]string{"["}); err == nil {
		t.Fatal("expected compile error")
	}
}
