package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/lintpass/internal/render"
)

// Validate checks option values. It does not touch the filesystem.
func (c *Config) Validate() error {
	if _, err := render.ParseMode(c.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	for _, tag := range c.BuildTags {
		if tag == "" || strings.ContainsAny(tag, " \t,") {
			return fmt.Errorf("build_tags: invalid tag %q", tag)
		}
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative, got %s", c.WatchDebounce)
	}
	return nil
}
