package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTMDB()
	c.normalizeTVDB()
	c.normalizeRenamer()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CacheDir) == "" {
		c.Paths.CacheDir = defaultCacheDir
	}
	if c.Paths.CacheDir, err = expandPath(c.Paths.CacheDir); err != nil {
		return fmt.Errorf("paths.cache_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTMDB() {
	if c.TMDB.APIKey == "" {
		if value, ok := os.LookupEnv("TMDB_API_KEY"); ok {
			c.TMDB.APIKey = strings.TrimSpace(value)
		}
	}
	c.TMDB.BaseURL = strings.TrimSpace(c.TMDB.BaseURL)
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
	if c.TMDB.Language == "" {
		c.TMDB.Language = defaultTMDBLanguage
	}
}

func (c *Config) normalizeTVDB() {
	if c.TVDB.APIKey == "" {
		if value, ok := os.LookupEnv("TVDB_API_KEY"); ok {
			c.TVDB.APIKey = strings.TrimSpace(value)
		}
	}
	c.TVDB.BaseURL = strings.TrimSpace(c.TVDB.BaseURL)
	if c.TVDB.BaseURL == "" {
		c.TVDB.BaseURL = defaultTVDBBaseURL
	}
}

func (c *Config) normalizeRenamer() {
	c.Renamer.MoviePattern = strings.TrimSpace(c.Renamer.MoviePattern)
	if c.Renamer.MoviePattern == "" {
		c.Renamer.MoviePattern = defaultMoviePattern
	}
	c.Renamer.TVPattern = strings.TrimSpace(c.Renamer.TVPattern)
	if c.Renamer.TVPattern == "" {
		c.Renamer.TVPattern = defaultTVPattern
	}
	if len(c.Renamer.Extensions) == 0 {
		c.Renamer.Extensions = defaultExtensions()
		return
	}
	exts := make([]string, 0, len(c.Renamer.Extensions))
	seen := make(map[string]struct{}, len(c.Renamer.Extensions))
	for _, ext := range c.Renamer.Extensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		exts = append(exts, normalized)
	}
	if len(exts) == 0 {
		exts = defaultExtensions()
	}
	c.Renamer.Extensions = exts
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
