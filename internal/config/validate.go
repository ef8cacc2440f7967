package config

import (
	"errors"
	"fmt"
	"regexp"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateSegments(); err != nil {
		return err
	}
	if err := c.validateTimeline(); err != nil {
		return err
	}
	if err := c.validateEngagement(); err != nil {
		return err
	}
	if err := c.validateVocabulary(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateSegments() error {
	if c.Segments.GapThresholdSec <= 0 {
		return errors.New("segments.gap_threshold_sec must be positive")
	}
	if c.Segments.MaxContinuousSec <= c.Segments.GapThresholdSec {
		return errors.New("segments.max_continuous_sec must exceed the gap threshold")
	}
	if c.Segments.MaxTotalTalkMin <= 0 {
		return errors.New("segments.max_total_talk_min must be positive")
	}
	return nil
}

func (c *Config) validateTimeline() error {
	if c.Timeline.PreWindowSec <= 0 {
		return errors.New("timeline.pre_window_sec must be positive")
	}
	if c.Timeline.PostTailSec <= 0 {
		return errors.New("timeline.post_tail_sec must be positive")
	}
	if c.Timeline.ConfusionLeadSec < 0 || c.Timeline.ConfusionLagSec < 0 {
		return errors.New("timeline confusion windows must not be negative")
	}
	if c.Timeline.RatioLow <= 0 || c.Timeline.RatioHigh <= c.Timeline.RatioLow {
		return errors.New("timeline ratio bounds must satisfy 0 < ratio_low < ratio_high")
	}
	return nil
}

func (c *Config) validateEngagement() error {
	if c.Engagement.BurstWindowSec <= 0 {
		return errors.New("engagement.burst_window_sec must be positive")
	}
	if c.Engagement.BurstMinMessages < 2 {
		return errors.New("engagement.burst_min_messages must be at least 2")
	}
	if c.Engagement.BurstOverlapToleranceSec < 0 {
		return errors.New("engagement.burst_overlap_tolerance_sec must not be negative")
	}
	if c.Engagement.StudentActiveTargetPct < 0 || c.Engagement.StudentActiveTargetPct > 100 {
		return errors.New("engagement.student_active_target_pct must be between 0 and 100")
	}
	return nil
}

func (c *Config) validateVocabulary() error {
	for _, rule := range c.Vocabulary.Topics {
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return fmt.Errorf("vocabulary.topics pattern %q: %w", rule.Pattern, err)
		}
	}
	for _, pattern := range c.Vocabulary.ConfusionPatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("vocabulary.confusion_patterns pattern %q: %w", pattern, err)
		}
	}
	return nil
}
