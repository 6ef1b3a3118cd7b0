package config

const (
	defaultLogDir       = "~/.local/share/reshelve/logs"
	defaultCacheDir     = "~/.cache/reshelve"
	defaultTMDBBaseURL  = "https://api.themoviedb.org/3"
	defaultTMDBLanguage = "en-US"
	defaultTVDBBaseURL  = "https://api4.thetvdb.com/v4"
	defaultMoviePattern = "{title} ({year})"
	defaultTVPattern    = "{title} - S{season:02d}E{episode:02d} - {episode_title}"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

func defaultExtensions() []string {
	return []string{".mkv", ".mp4", ".avi", ".mov", ".wmv", ".flv", ".webm", ".m4v"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:   defaultLogDir,
			CacheDir: defaultCacheDir,
		},
		TMDB: TMDB{
			BaseURL:  defaultTMDBBaseURL,
			Language: defaultTMDBLanguage,
		},
		TVDB: TVDB{
			BaseURL: defaultTVDBBaseURL,
		},
		Renamer: Renamer{
			MoviePattern: defaultMoviePattern,
			TVPattern:    defaultTVPattern,
			Extensions:   defaultExtensions(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
