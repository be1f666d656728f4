// Package rules maps file extensions to category names.
//
// It ships the default category table, loads per-folder overrides from
// organize_config.json, and merges the two into an immutable lookup table.
// Classification is pure and total: unknown or missing extensions resolve to
// the fallback category rather than an error.
package rules
