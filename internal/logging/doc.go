// Package logging assembles structured slog loggers and formatting helpers used
// across the corpus tooling.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes small attribute helpers so commands tag every line of a
// run with the same component and run identifier. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every command emits
// data with the same shape and routing.
package logging
