package testsupport

import (
	"path/filepath"
	"testing"

	"lectern/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ArchiveDir = filepath.Join(base, "archive")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithGapThreshold overrides the segment merge gap on the test config.
func WithGapThreshold(sec float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Segments.GapThresholdSec = sec
	}
}

// WithVocabulary replaces the topic pattern table on the test config.
func WithVocabulary(fallback string, rules ...config.PatternRule) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Vocabulary.FallbackTopic = fallback
		cfg.Vocabulary.Topics = rules
	}
}
