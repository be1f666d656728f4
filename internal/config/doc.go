// Package config loads, normalizes, and validates tidydl configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads the TOML file at ~/.config/tidydl/config.toml or a
// caller-provided location. Per-folder category overrides are a separate
// on-disk contract and live in the rules package, not here.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
