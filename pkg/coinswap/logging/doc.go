// Package logging provides the slog-backed logger used by the binding and
// the init-once hook for the engine's process-wide file logger.
package logging
