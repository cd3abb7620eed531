// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing users to plug
// any structured logger. It also offers a richer SimLogger with contextual
// helpers (run, step, component) and domain specific logging helpers for
// searches, simulation steps and knowledge broadcasts.
package logging
