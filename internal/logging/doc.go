// Package logging assembles structured slog loggers and formatting helpers
// used across tubelang.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so API handlers tag log lines
// with request IDs. Filter decisions are logged through DecisionAttrs so
// every hide/show outcome carries the same keys. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
package logging
