// Package logging assembles structured slog loggers and formatting helpers
// used across tidydl components.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and lets a pass mirror its log lines into a file inside the
// folder being organized. The package also provides a no-op logger for tests
// and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits lines with the same shape.
package logging
