// Package renamer renames individual media files into configured patterns,
// enriching the parsed name with identity lookups and quality classification.
package renamer

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"reshelve/internal/fileutil"
	"reshelve/internal/identity"
	"reshelve/internal/logging"
	"reshelve/internal/media/guess"
	"reshelve/internal/quality"
	"reshelve/internal/textutil"
)

// Media carries everything needed to rename one file.
type Media struct {
	Path         string
	Kind         guess.Kind
	Title        string
	Year         int
	Season       int
	Episode      int
	EpisodeTitle string
	Quality      quality.Profile
}

// Result records the outcome of one rename.
type Result struct {
	OriginalPath string `json:"original_path"`
	NewPath      string `json:"new_path"`
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
}

// Options configures a Renamer.
type Options struct {
	MoviePattern string
	TVPattern    string
	// Extensions lists the file suffixes ProcessDirectory considers.
	Extensions []string
	// Classifier may be nil to skip quality classification.
	Classifier *quality.Classifier
	// Lookup may be nil to rename from parsed names alone.
	Lookup identity.Lookup
	Logger *slog.Logger
	DryRun bool
}

// Renamer renames media files one at a time.
type Renamer struct {
	moviePattern string
	tvPattern    string
	extensions   map[string]struct{}
	classifier   *quality.Classifier
	lookup       identity.Lookup
	logger       *slog.Logger
	dryRun       bool
	titleCaser   cases.Caser
}

// New constructs a Renamer from Options.
func New(opts Options) *Renamer {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	extensions := make(map[string]struct{}, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		extensions[strings.ToLower(ext)] = struct{}{}
	}
	return &Renamer{
		moviePattern: opts.MoviePattern,
		tvPattern:    opts.TVPattern,
		extensions:   extensions,
		classifier:   opts.Classifier,
		lookup:       opts.Lookup,
		logger:       logger.With(logging.String(logging.FieldComponent, "renamer")),
		dryRun:       opts.DryRun,
		titleCaser:   cases.Title(language.English),
	}
}

// Rename moves the file described by media to its patterned name within the
// same directory. Existing targets are never overwritten.
func (r *Renamer) Rename(media Media) Result {
	filename := r.generateFilename(media)
	if filename == "" {
		return Result{
			OriginalPath: media.Path,
			NewPath:      media.Path,
			Success:      false,
			Error:        "Could not generate filename",
		}
	}

	newPath := filepath.Join(filepath.Dir(media.Path), filename)
	if newPath == media.Path {
		return Result{OriginalPath: media.Path, NewPath: newPath, Success: true}
	}

	if r.dryRun {
		r.logger.Info("would rename", logging.String(logging.FieldPath, media.Path), logging.String("target", newPath))
		return Result{OriginalPath: media.Path, NewPath: newPath, Success: true}
	}

	if _, err := os.Lstat(newPath); err == nil {
		return Result{
			OriginalPath: media.Path,
			NewPath:      newPath,
			Success:      false,
			Error:        fmt.Sprintf("Target file already exists: %s", newPath),
		}
	}

	if err := fileutil.MoveFile(media.Path, newPath); err != nil {
		return Result{
			OriginalPath: media.Path,
			NewPath:      media.Path,
			Success:      false,
			Error:        err.Error(),
		}
	}
	return Result{OriginalPath: media.Path, NewPath: newPath, Success: true}
}

// ProcessDirectory renames every recognized media file beneath dir.
func (r *Renamer) ProcessDirectory(ctx context.Context, dir string) []Result {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}

	var results []Result
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if _, ok := r.extensions[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		media := r.describe(ctx, path)
		result := r.Rename(media)
		if result.Success {
			r.logger.Info("renamed", logging.String(logging.FieldPath, result.OriginalPath), logging.String("target", result.NewPath))
		} else {
			r.logger.Warn("rename failed", logging.String(logging.FieldPath, result.OriginalPath), logging.String("reason", result.Error))
		}
		results = append(results, result)
		return nil
	})
	return results
}

// describe assembles a Media record for path from the filename guesser, the
// identity lookup, and the quality classifier.
func (r *Renamer) describe(ctx context.Context, path string) Media {
	g := guess.FromFilename(filepath.Base(path))
	media := Media{
		Path:         path,
		Kind:         g.Kind,
		Title:        g.Title,
		Year:         g.Year,
		Season:       g.Season,
		Episode:      g.Episode,
		EpisodeTitle: g.EpisodeTitle,
	}

	if r.lookup != nil {
		switch g.Kind {
		case guess.KindShow:
			if result, found := r.lookup.Lookup(ctx, identity.KindShow, g.Title, g.Year); found {
				applyIdentity(&media, result)
			}
		case guess.KindMovie:
			if result, found := r.lookup.Lookup(ctx, identity.KindMovie, g.Title, g.Year); found {
				applyIdentity(&media, result)
			}
		}
	}
	if media.Title == g.Title {
		// Guessed titles keep the filename's casing; tidy them up.
		media.Title = r.titleCaser.String(media.Title)
	}

	if r.classifier != nil {
		media.Quality = r.classifier.Classify(ctx, path)
	}
	return media
}

func applyIdentity(media *Media, result identity.Result) {
	if result.Title != "" {
		media.Title = result.Title
	}
	if result.Year != 0 {
		media.Year = result.Year
	}
}

func (r *Renamer) generateFilename(media Media) string {
	var pattern string
	switch media.Kind {
	case guess.KindMovie:
		pattern = r.moviePattern
	case guess.KindShow:
		pattern = r.tvPattern
	default:
		return ""
	}
	if pattern == "" {
		return ""
	}

	year := ""
	if media.Year != 0 {
		year = strconv.Itoa(media.Year)
	}
	season := media.Season
	if season == 0 {
		season = 1
	}
	episode := media.Episode
	if episode == 0 {
		episode = 1
	}

	replacer := strings.NewReplacer(
		"{title}", textutil.SanitizeFileName(media.Title),
		"{year}", year,
		"{season:02d}", fmt.Sprintf("%02d", season),
		"{season}", strconv.Itoa(season),
		"{episode:02d}", fmt.Sprintf("%02d", episode),
		"{episode}", strconv.Itoa(episode),
		"{episode_title}", textutil.SanitizeFileName(media.EpisodeTitle),
		"{quality_string}", quality.Format(media.Quality),
	)
	return replacer.Replace(pattern) + strings.ToLower(filepath.Ext(media.Path))
}
