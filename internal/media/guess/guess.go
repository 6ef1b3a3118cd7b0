// Package guess derives best-effort structured fields from bare media file
// names. Every field is optional and the parser never fails; callers treat
// absent fields as unknown.
package guess

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Kind is the coarse media classification inferred from a name.
type Kind string

const (
	KindUnknown Kind = "unknown"
	KindMovie   Kind = "movie"
	KindShow    Kind = "show"
)

// Guess holds the fields recovered from one file name. Zero values mean the
// field could not be determined; season and episode numbers are always >= 1
// when present.
type Guess struct {
	Title        string
	Year         int
	Season       int
	Episode      int
	EpisodeTitle string
	Kind         Kind
}

var (
	seasonEpisodePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bS(\d{1,2})[\s.]?E(\d{1,3})\b`),
		regexp.MustCompile(`(?i)\bSeason[\s.]*(\d{1,2}).*?Episode[\s.]*(\d{1,3})`),
		regexp.MustCompile(`\b(\d{1,2})x(\d{2,3})\b`),
	}
	yearPattern         = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	bracketChunk        = regexp.MustCompile(`\[[^\]]*\]`)
	trailingGroup       = regexp.MustCompile(`-[A-Za-z0-9]+$`)
	separatorRun        = regexp.MustCompile(`[.\-_]+`)
	whitespaceRun       = regexp.MustCompile(`\s+`)
	titleTrimCharacters = " -().,"
)

// FromFilename parses a file name (with or without extension) into a Guess.
func FromFilename(name string) Guess {
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	g := Guess{Kind: KindUnknown}
	markerIndex := len(stem)

	for _, pattern := range seasonEpisodePatterns {
		loc := pattern.FindStringSubmatchIndex(stem)
		if loc == nil {
			continue
		}
		season, seasonErr := strconv.Atoi(stem[loc[2]:loc[3]])
		episode, episodeErr := strconv.Atoi(stem[loc[4]:loc[5]])
		if seasonErr != nil || episodeErr != nil || season < 1 || episode < 1 {
			continue
		}
		g.Season = season
		g.Episode = episode
		g.Kind = KindShow
		if loc[0] < markerIndex {
			markerIndex = loc[0]
		}
		g.EpisodeTitle = cleanEpisodeTitle(stem[loc[1]:])
		break
	}

	if loc := yearPattern.FindStringIndex(stem); loc != nil {
		if year, err := strconv.Atoi(stem[loc[0]:loc[1]]); err == nil {
			g.Year = year
			if g.Kind == KindUnknown {
				g.Kind = KindMovie
			}
			if loc[0] < markerIndex {
				markerIndex = loc[0]
			}
		}
	}

	g.Title = cleanTitle(stem[:markerIndex])
	if g.Title == "" {
		g.Title = cleanTitle(stem)
	}
	return g
}

func cleanTitle(fragment string) string {
	fragment = separatorRun.ReplaceAllString(fragment, " ")
	fragment = whitespaceRun.ReplaceAllString(fragment, " ")
	return strings.Trim(fragment, titleTrimCharacters)
}

func cleanEpisodeTitle(fragment string) string {
	fragment = bracketChunk.ReplaceAllString(fragment, "")
	fragment = strings.TrimSpace(fragment)
	fragment = trailingGroup.ReplaceAllString(fragment, "")
	return cleanTitle(fragment)
}
