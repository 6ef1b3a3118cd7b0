// Package config loads, normalizes, and validates reshelve configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// TMDB_API_KEY and TVDB_API_KEY. The Config type centralizes every knob the
// CLI needs: identity lookup credentials, rename patterns, the supported video
// extension set, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical extension lists, and clear validation errors.
package config
