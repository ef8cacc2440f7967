package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeVocabulary()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.ArchiveDir, err = expandPath(c.Paths.ArchiveDir); err != nil {
		return fmt.Errorf("paths.archive_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeVocabulary() {
	c.Vocabulary.FallbackTopic = strings.TrimSpace(c.Vocabulary.FallbackTopic)
	if c.Vocabulary.FallbackTopic == "" {
		c.Vocabulary.FallbackTopic = DefaultFallbackTopic
	}
	rules := c.Vocabulary.Topics[:0]
	for _, rule := range c.Vocabulary.Topics {
		rule.Pattern = strings.TrimSpace(rule.Pattern)
		rule.Label = strings.TrimSpace(rule.Label)
		if rule.Pattern == "" || rule.Label == "" {
			continue
		}
		rules = append(rules, rule)
	}
	c.Vocabulary.Topics = rules

	patterns := c.Vocabulary.ConfusionPatterns[:0]
	for _, pattern := range c.Vocabulary.ConfusionPatterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		patterns = append(patterns, pattern)
	}
	c.Vocabulary.ConfusionPatterns = patterns
}
