package consolidate

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"reshelve/internal/logging"
	"reshelve/internal/media/guess"
	"reshelve/internal/titles"
)

var (
	yearToken        = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	seasonWordToken  = regexp.MustCompile(`(?i)Season\s*\d+`)
	seasonShortToken = regexp.MustCompile(`[Ss]\d+`)
	qualityTokens    = regexp.MustCompile(`(?i)\b(720p|1080p|480p|4K|WEB|BluRay|DVD|h264|x264|h265|x265)\b`)
	groupSuffix      = regexp.MustCompile(`-[A-Z0-9]+$`)
	packToken        = regexp.MustCompile(`(?i)\bPack\b`)
	separatorRun     = regexp.MustCompile(`[.\-_]+`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
	fourDigitRun     = regexp.MustCompile(`\d{4}`)

	// Tried in order; first hit wins. The bare numeral form is limited to two
	// digits so a year-shaped directory name never reads as a season.
	seasonPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)[Ss]eason\s*(\d+)`),
		regexp.MustCompile(`(?i)[Ss](\d+)`),
		regexp.MustCompile(`(?i)Season\s*(\d+)`),
		regexp.MustCompile(`^(\d{1,2})$`),
	}
)

func defaultVideoExtensions() []string {
	return []string{".mkv", ".mp4", ".avi", ".mov", ".wmv", ".flv", ".webm", ".m4v"}
}

// Analyzer inspects one directory and decides whether it holds TV show
// content worth consolidating.
type Analyzer struct {
	normalizer *titles.Normalizer
	extensions map[string]struct{}
	logger     *slog.Logger
}

// NewAnalyzer constructs an Analyzer. extensions lists the recognized video
// file suffixes; when empty a built-in set is used.
func NewAnalyzer(normalizer *titles.Normalizer, extensions []string, logger *slog.Logger) *Analyzer {
	if normalizer == nil {
		normalizer = titles.NewNormalizer()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if len(extensions) == 0 {
		extensions = defaultVideoExtensions()
	}
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return &Analyzer{normalizer: normalizer, extensions: set, logger: logger}
}

// Analyze produces a ShowDirectory record for path. The second return is
// false when the directory holds no recognized video files.
func (a *Analyzer) Analyze(path string) (ShowDirectory, bool) {
	name := filepath.Base(path)

	if !a.hasVideoFiles(path) {
		return ShowDirectory{}, false
	}

	rawTitle := extractRawTitle(name)
	season := extractSeason(name)
	year := extractYear(name)

	if season == 0 {
		season = a.inferSeasonFromFiles(path)
	}

	record := ShowDirectory{
		Path:            path,
		RawTitle:        rawTitle,
		Season:          season,
		Year:            year,
		NormalizedTitle: a.normalizer.Normalize(rawTitle),
	}
	a.logger.Debug("analyzed show directory",
		logging.String(logging.FieldPath, path),
		logging.String("title", record.RawTitle),
		logging.Int("season", record.Season),
		logging.Int("year", record.Year))
	return record, true
}

func (a *Analyzer) hasVideoFiles(dir string) bool {
	errFound := errors.New("found")
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := a.extensions[strings.ToLower(filepath.Ext(path))]; ok {
			return errFound
		}
		return nil
	})
	return errors.Is(err, errFound)
}

// inferSeasonFromFiles adopts a season only when every parseable file under
// the directory agrees on exactly one value.
func (a *Analyzer) inferSeasonFromFiles(dir string) int {
	seasons := make(map[int]struct{})
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if _, ok := a.extensions[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		if g := guess.FromFilename(d.Name()); g.Season > 0 {
			seasons[g.Season] = struct{}{}
		}
		return nil
	})
	if len(seasons) != 1 {
		return 0
	}
	for season := range seasons {
		return season
	}
	return 0
}

// extractRawTitle strips structural tokens from a directory name until only
// the show title remains. Falls back to the untouched name when stripping
// leaves nothing.
func extractRawTitle(name string) string {
	cleaned := name
	cleaned = yearToken.ReplaceAllString(cleaned, "")
	cleaned = seasonWordToken.ReplaceAllString(cleaned, "")
	cleaned = seasonShortToken.ReplaceAllString(cleaned, "")
	cleaned = qualityTokens.ReplaceAllString(cleaned, "")
	cleaned = groupSuffix.ReplaceAllString(cleaned, "")
	cleaned = packToken.ReplaceAllString(cleaned, "")
	cleaned = separatorRun.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(whitespaceRun.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		return name
	}
	return cleaned
}

func extractSeason(name string) int {
	for _, pattern := range seasonPatterns {
		match := pattern.FindStringSubmatch(name)
		if match == nil {
			continue
		}
		season, err := strconv.Atoi(match[1])
		if err != nil || season < 1 {
			continue
		}
		return season
	}
	return 0
}

func extractYear(name string) int {
	match := fourDigitRun.FindString(name)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil || year < 1980 || year > 2030 {
		return 0
	}
	return year
}
