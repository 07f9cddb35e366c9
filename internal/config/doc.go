// Package config loads, normalizes, and validates corpus tooling configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and derives the per-locale input and output
// layout the wording extractor works against. Command-line flags are applied
// on top of a loaded Config before Validate runs again.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
