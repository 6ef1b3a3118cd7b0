package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRenamer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRenamer() error {
	if !strings.Contains(c.Renamer.MoviePattern, "{title}") {
		return fmt.Errorf("renamer.movie_pattern must contain {title}, got %q", c.Renamer.MoviePattern)
	}
	if !strings.Contains(c.Renamer.TVPattern, "{title}") {
		return fmt.Errorf("renamer.tv_pattern must contain {title}, got %q", c.Renamer.TVPattern)
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
