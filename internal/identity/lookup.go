// Package identity resolves show and movie titles against online metadata
// services. The Manager queries TheTVDB and TMDB in preference order and
// caches every answer, including misses, in a local store.
package identity

import (
	"context"
	"log/slog"
	"strconv"

	"reshelve/internal/identity/cache"
	"reshelve/internal/identity/tmdb"
	"reshelve/internal/identity/tvdb"
	"reshelve/internal/logging"
)

// Kind distinguishes show lookups from movie lookups.
type Kind string

const (
	KindShow  Kind = "show"
	KindMovie Kind = "movie"
)

// Result is a confirmed identity for a title.
type Result struct {
	Title string
	Year  int
	ID    string
}

// Lookup answers title/year identity queries. Implementations never fail:
// service errors are handled internally and surface as "not found".
type Lookup interface {
	Lookup(ctx context.Context, kind Kind, title string, year int) (Result, bool)
}

// TMDBSearcher is the TMDB client surface the Manager consumes.
type TMDBSearcher interface {
	SearchMovie(ctx context.Context, query string, year int) (*tmdb.Match, error)
	SearchTV(ctx context.Context, query string) (*tmdb.Match, error)
}

// TVDBSearcher is the TVDB client surface the Manager consumes.
type TVDBSearcher interface {
	SearchSeries(ctx context.Context, query string) (*tvdb.Match, error)
	SearchMovie(ctx context.Context, query string, year int) (*tvdb.Match, error)
}

// Manager coordinates the metadata clients. Shows prefer TVDB, movies prefer
// TMDB; the other service is the fallback. Either client may be nil when its
// API key is not configured.
type Manager struct {
	tmdb   TMDBSearcher
	tvdb   TVDBSearcher
	store  *cache.Store
	logger *slog.Logger
}

var _ Lookup = (*Manager)(nil)

// NewManager constructs a Manager. store may be nil to disable caching and
// logger may be nil to disable logging.
func NewManager(tmdbClient TMDBSearcher, tvdbClient TVDBSearcher, store *cache.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Manager{
		tmdb:   tmdbClient,
		tvdb:   tvdbClient,
		store:  store,
		logger: logger.With(logging.String(logging.FieldComponent, "identity")),
	}
}

// Lookup resolves a title against the configured services. Service errors
// are logged and treated as misses so a flaky network never aborts a run.
func (m *Manager) Lookup(ctx context.Context, kind Kind, title string, year int) (Result, bool) {
	if cached, ok := m.fromCache(ctx, kind, title, year); ok {
		return cached.result, cached.found
	}

	result, found := m.query(ctx, kind, title, year)
	m.toCache(ctx, kind, title, year, result, found)
	return result, found
}

func (m *Manager) query(ctx context.Context, kind Kind, title string, year int) (Result, bool) {
	switch kind {
	case KindShow:
		if m.tvdb != nil {
			match, err := m.tvdb.SearchSeries(ctx, title)
			if err != nil {
				m.logger.Warn("tvdb series search failed", logging.String("title", title), logging.Error(err))
			} else if match != nil {
				return Result{Title: match.Title, Year: match.Year, ID: match.ID}, true
			}
		}
		if m.tmdb != nil {
			match, err := m.tmdb.SearchTV(ctx, title)
			if err != nil {
				m.logger.Warn("tmdb tv search failed", logging.String("title", title), logging.Error(err))
			} else if match != nil {
				return Result{Title: match.Title, Year: match.Year, ID: formatTMDBID(match.ID)}, true
			}
		}
	case KindMovie:
		if m.tmdb != nil {
			match, err := m.tmdb.SearchMovie(ctx, title, year)
			if err != nil {
				m.logger.Warn("tmdb movie search failed", logging.String("title", title), logging.Error(err))
			} else if match != nil {
				return Result{Title: match.Title, Year: match.Year, ID: formatTMDBID(match.ID)}, true
			}
		}
		if m.tvdb != nil {
			match, err := m.tvdb.SearchMovie(ctx, title, year)
			if err != nil {
				m.logger.Warn("tvdb movie search failed", logging.String("title", title), logging.Error(err))
			} else if match != nil {
				return Result{Title: match.Title, Year: match.Year, ID: match.ID}, true
			}
		}
	}
	return Result{}, false
}

type cachedAnswer struct {
	result Result
	found  bool
}

func (m *Manager) fromCache(ctx context.Context, kind Kind, title string, year int) (cachedAnswer, bool) {
	if m.store == nil {
		return cachedAnswer{}, false
	}
	entry, err := m.store.Get(ctx, string(kind), title, year)
	if err != nil {
		m.logger.Warn("lookup cache read failed", logging.Error(err))
		return cachedAnswer{}, false
	}
	if entry == nil {
		return cachedAnswer{}, false
	}
	return cachedAnswer{
		result: Result{Title: entry.Title, Year: entry.Year, ID: entry.ID},
		found:  entry.Found,
	}, true
}

func (m *Manager) toCache(ctx context.Context, kind Kind, title string, year int, result Result, found bool) {
	if m.store == nil {
		return
	}
	entry := cache.Entry{Title: result.Title, Year: result.Year, ID: result.ID, Found: found}
	if err := m.store.Put(ctx, string(kind), title, year, entry); err != nil {
		m.logger.Warn("lookup cache write failed", logging.Error(err))
	}
}

func formatTMDBID(id int64) string {
	if id <= 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
