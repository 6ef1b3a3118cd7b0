package consolidate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"reshelve/internal/identity"
	"reshelve/internal/logging"
	"reshelve/internal/services"
	"reshelve/internal/textutil"
	"reshelve/internal/titles"
)

const lockFileName = ".reshelve.lock"

// Options configures an Engine.
type Options struct {
	// Lookup resolves show identities online. May be nil, in which case
	// groups keep their discovered titles.
	Lookup identity.Lookup
	// Extensions lists the recognized video file suffixes. Empty means the
	// built-in defaults.
	Extensions []string
	Logger     *slog.Logger
	// DryRun computes and reports every decision without touching the
	// filesystem.
	DryRun bool
}

// Engine runs the four consolidation stages over one root directory.
type Engine struct {
	analyzer *Analyzer
	grouper  *Grouper
	lookup   identity.Lookup
	logger   *slog.Logger
	dryRun   bool
}

// NewEngine constructs an Engine from Options.
func NewEngine(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	componentLogger := logger.With(logging.String(logging.FieldComponent, "consolidate"))
	return &Engine{
		analyzer: NewAnalyzer(titles.NewNormalizer(), opts.Extensions, componentLogger),
		grouper:  NewGrouper(),
		lookup:   opts.Lookup,
		logger:   componentLogger,
		dryRun:   opts.DryRun,
	}
}

// Consolidate discovers, groups, enhances, and merges the show directories
// under root. An invalid root yields an empty result with no side effects.
// Real runs take an exclusive lock on the root for their duration.
func (e *Engine) Consolidate(ctx context.Context, root string) ([]ConsolidationResult, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		e.logger.Warn("root is not a directory, nothing to do", logging.String(logging.FieldPath, root))
		return nil, nil
	}

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, e.logger)

	if !e.dryRun {
		lock := flock.New(filepath.Join(root, lockFileName))
		locked, lockErr := lock.TryLock()
		if lockErr != nil {
			return nil, services.Wrap(services.ErrTransient, "consolidate", "lock", "acquire run lock", lockErr)
		}
		if !locked {
			return nil, services.Wrap(services.ErrValidation, "consolidate", "lock", "another consolidation run holds the lock", nil)
		}
		defer func() { _ = lock.Unlock() }()
	}

	logger.Info("scanning directory", logging.String(logging.FieldPath, root), logging.Bool("dry_run", e.dryRun))

	directories := e.discover(root, logger)
	if len(directories) == 0 {
		logger.Info("no show directories found")
		return nil, nil
	}

	groups := e.grouper.Group(directories)
	logger.Info("grouped directories", logging.Int("directories", len(directories)), logging.Int("groups", len(groups)))

	e.enhance(ctx, groups, logger)

	var results []ConsolidationResult
	for i := range groups {
		if len(groups[i].Members) < 2 {
			continue
		}
		results = append(results, e.consolidateGroup(groups[i], root, logger))
	}
	return results, nil
}

func (e *Engine) discover(root string, logger *slog.Logger) []ShowDirectory {
	entries, err := os.ReadDir(root)
	if err != nil {
		logger.Warn("cannot read root directory", logging.Error(err))
		return nil
	}

	// ReadDir sorts by name; keep that order so runs are deterministic.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var directories []ShowDirectory
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if record, ok := e.analyzer.Analyze(filepath.Join(root, entry.Name())); ok {
			directories = append(directories, record)
		}
	}
	logger.Info("discovered show directories", logging.Int("count", len(directories)))
	return directories
}

// enhance overwrites each group's identity with the lookup answer for its
// first member. Misses and lookup failures leave the discovered identity in
// place; they are never fatal.
func (e *Engine) enhance(ctx context.Context, groups []ShowGroup, logger *slog.Logger) {
	if e.lookup == nil {
		return
	}
	for i := range groups {
		representative := groups[i].Members[0]
		result, found := e.lookup.Lookup(ctx, identity.KindShow, representative.RawTitle, representative.Year)
		if !found {
			logger.Info("no identity match, keeping discovered title", logging.String("title", groups[i].CanonicalTitle))
			continue
		}
		if result.Title != "" {
			groups[i].CanonicalTitle = result.Title
		}
		if result.Year != 0 {
			groups[i].Year = result.Year
		}
		groups[i].ExternalID = result.ID
		logger.Info("enhanced group",
			logging.String("title", groups[i].CanonicalTitle),
			logging.Int("year", groups[i].Year),
			logging.String("external_id", groups[i].ExternalID))
	}
}

func (e *Engine) consolidateGroup(group ShowGroup, root string, logger *slog.Logger) ConsolidationResult {
	unifiedPath := filepath.Join(root, unifiedDirectoryName(group))
	logger.Info("consolidating group",
		logging.String("title", group.CanonicalTitle),
		logging.Int("members", len(group.Members)),
		logging.String(logging.FieldPath, unifiedPath))

	if !e.dryRun {
		if err := os.MkdirAll(unifiedPath, 0o755); err != nil {
			logger.Warn("cannot create unified directory", logging.String(logging.FieldPath, unifiedPath), logging.Error(err))
		}
	}

	operations := make([]ConsolidationOperation, 0, len(group.Members))
	for _, member := range group.Members {
		season := ResolveSeason(member, group)
		if season == 0 {
			logger.Warn("could not determine season", logging.String(logging.FieldPath, member.Path))
			operations = append(operations, ConsolidationOperation{
				Source:  member.Path,
				Success: false,
				Error:   "Could not determine season",
			})
			continue
		}

		seasonDir := filepath.Join(unifiedPath, fmt.Sprintf("Season %02d", season))
		if !e.dryRun {
			if err := os.MkdirAll(seasonDir, 0o755); err != nil {
				logger.Warn("cannot create season directory", logging.String(logging.FieldPath, seasonDir), logging.Error(err))
			}
			mergeContents(member.Path, seasonDir, logger)
		}
		operations = append(operations, ConsolidationOperation{
			Source:      member.Path,
			Destination: seasonDir,
			Season:      season,
			Success:     true,
		})
	}

	return ConsolidationResult{
		ShowTitle:        group.CanonicalTitle,
		UnifiedDirectory: unifiedPath,
		ExternalID:       group.ExternalID,
		Operations:       operations,
	}
}

// unifiedDirectoryName renders "{Title}[ (Year)][ [id-{ExternalID}]]" with
// each bracketed part omitted when its value is absent.
func unifiedDirectoryName(group ShowGroup) string {
	name := textutil.SanitizeFileName(group.CanonicalTitle)
	if group.Year != 0 {
		name += fmt.Sprintf(" (%d)", group.Year)
	}
	if group.ExternalID != "" {
		name += fmt.Sprintf(" [id-%s]", group.ExternalID)
	}
	return name
}
