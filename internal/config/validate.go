package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateClassifier(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	if _, _, err := net.SplitHostPort(c.Paths.APIBind); err != nil {
		return fmt.Errorf("paths.api_bind must be host:port: %w", err)
	}
	return nil
}

func (c *Config) validateClassifier() error {
	cfg := c.Classifier
	if err := ensurePositiveMap(map[string]int{
		"classifier.cache_size":         cfg.CacheSize,
		"classifier.min_ideographs":     cfg.MinIdeographs,
		"classifier.ideograph_override": cfg.IdeographOverride,
		"classifier.min_vote_tokens":    cfg.MinVoteTokens,
		"classifier.min_votes":          cfg.MinVotes,
		"classifier.short_title_tokens": cfg.ShortTitleTokens,
	}); err != nil {
		return err
	}
	if err := ensureRatioMap(map[string]float64{
		"classifier.ideograph_density": cfg.IdeographDensity,
		"classifier.short_title_ratio": cfg.ShortTitleRatio,
		"classifier.long_title_ratio":  cfg.LongTitleRatio,
	}); err != nil {
		return err
	}
	if cfg.IdeographOverride < cfg.MinIdeographs {
		return errors.New("classifier.ideograph_override must be >= classifier.min_ideographs")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}

func ensureRatioMap(values map[string]float64) error {
	for key, value := range values {
		if value < 0 || value > 1 {
			return fmt.Errorf("%s must be between 0 and 1", key)
		}
	}
	return nil
}
