package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	ArchiveDir string `toml:"archive_dir"`
	LogDir     string `toml:"log_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Segments contains thresholds for transcript segment merging.
type Segments struct {
	// GapThresholdSec is the maximum silence between transcript lines that
	// still counts as one continuous speech segment.
	GapThresholdSec float64 `toml:"gap_threshold_sec"`
	// MaxContinuousSec flags any merged segment longer than this as a
	// pacing anti-pattern.
	MaxContinuousSec float64 `toml:"max_continuous_sec"`
	// MaxTotalTalkMin is the ceiling on total teacher talk per session.
	MaxTotalTalkMin float64 `toml:"max_total_talk_min"`
}

// Timeline contains window sizes for per-activity temporal correlation.
type Timeline struct {
	// PreWindowSec caps the pre-activity teaching window to the most recent
	// N seconds before the activity starts.
	PreWindowSec float64 `toml:"pre_window_sec"`
	// PostTailSec bounds the post-teaching window after the final activity.
	PostTailSec float64 `toml:"post_tail_sec"`
	// ConfusionLeadSec extends the confusion scan before activity start.
	ConfusionLeadSec float64 `toml:"confusion_lead_sec"`
	// ConfusionLagSec extends the confusion scan past activity end.
	ConfusionLagSec float64 `toml:"confusion_lag_sec"`
	// RatioLow and RatioHigh bound the acceptable actual/planned duration ratio.
	RatioLow  float64 `toml:"ratio_low"`
	RatioHigh float64 `toml:"ratio_high"`
}

// Engagement contains chat burst and participation thresholds.
type Engagement struct {
	// BurstWindowSec is the rolling window for chat burst detection.
	BurstWindowSec float64 `toml:"burst_window_sec"`
	// BurstMinMessages is the student message count that makes a burst.
	BurstMinMessages int `toml:"burst_min_messages"`
	// BurstOverlapToleranceSec pads teacher-talk segments when deciding
	// whether a burst was prompted by instruction.
	BurstOverlapToleranceSec float64 `toml:"burst_overlap_tolerance_sec"`
	// StudentActiveTargetPct is the student-active share a session should exceed.
	StudentActiveTargetPct int `toml:"student_active_target_pct"`
}

// PatternRule binds a regular expression to a concept label. Order matters:
// rules are evaluated in declaration order.
type PatternRule struct {
	Pattern string `toml:"pattern"`
	Label   string `toml:"label"`
}

// Vocabulary contains the classification pattern tables. Empty slices fall
// back to the built-in circle-geometry and confusion vocabularies, so the
// subject domain can be swapped without touching engine code.
type Vocabulary struct {
	FallbackTopic     string        `toml:"fallback_topic"`
	Topics            []PatternRule `toml:"topics"`
	ConfusionPatterns []string      `toml:"confusion_patterns"`
}

// Config encapsulates all configuration values for lectern.
//
// Configuration sections by subsystem:
//   - Paths: archive and log directories
//   - Logging: log format and level
//   - Segments: transcript merge and talk-time thresholds
//   - Timeline: per-activity correlation windows
//   - Engagement: chat burst and participation thresholds
//   - Vocabulary: topic and confusion pattern tables
type Config struct {
	Paths      Paths      `toml:"paths"`
	Logging    Logging    `toml:"logging"`
	Segments   Segments   `toml:"segments"`
	Timeline   Timeline   `toml:"timeline"`
	Engagement Engagement `toml:"engagement"`
	Vocabulary Vocabulary `toml:"vocabulary"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/lectern/config.toml")
}

// SampleConfig returns the embedded sample configuration document.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes the embedded sample configuration to path.
func CreateSample(path string) error {
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

// ExpandPath resolves a leading tilde and returns an absolute, cleaned path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a file existed at the resolved path; when none does, defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("lectern.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories the CLI writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.ArchiveDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
