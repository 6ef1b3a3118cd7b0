package main

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"reshelve/internal/config"
	"reshelve/internal/identity"
	"reshelve/internal/identity/cache"
	"reshelve/internal/identity/tmdb"
	"reshelve/internal/identity/tvdb"
	"reshelve/internal/logging"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{configFlag: configFlag, verboseFlag: verboseFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the process logger from the loaded config. Logs go to
// stderr so command output on stdout stays clean.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		level := cfg.Logging.Level
		if c.verboseFlag != nil && *c.verboseFlag {
			level = "debug"
		}
		logger, err := logging.New(logging.Options{
			Level:       level,
			Format:      cfg.Logging.Format,
			OutputPaths: []string{"stderr"},
		})
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// newLookup assembles the identity manager from whichever metadata services
// are configured. The returned closer releases the lookup cache; it is safe
// to call even when no lookup was built.
func (c *commandContext) newLookup(logger *slog.Logger) (identity.Lookup, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, func() {}, err
	}

	var tmdbClient identity.TMDBSearcher
	if strings.TrimSpace(cfg.TMDB.APIKey) != "" {
		client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
		if err != nil {
			return nil, func() {}, err
		}
		tmdbClient = client
	}

	var tvdbClient identity.TVDBSearcher
	if strings.TrimSpace(cfg.TVDB.APIKey) != "" {
		client, err := tvdb.New(cfg.TVDB.APIKey, cfg.TVDB.BaseURL)
		if err != nil {
			return nil, func() {}, err
		}
		tvdbClient = client
	}

	if tmdbClient == nil && tvdbClient == nil {
		return nil, func() {}, nil
	}

	store, err := cache.Open(filepath.Join(cfg.Paths.CacheDir, "lookups.db"))
	if err != nil {
		logger.Warn("lookup cache unavailable, continuing without it", logging.Error(err))
		store = nil
	}
	closer := func() {
		if store != nil {
			_ = store.Close()
		}
	}
	return identity.NewManager(tmdbClient, tvdbClient, store, logger), closer, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
