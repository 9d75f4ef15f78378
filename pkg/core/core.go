package core

import (
	"github.com/logscrub/logscrub/internal/engine"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type Result = engine.Result
type FileError = engine.FileError

// Sanitise is the stable entrypoint for other programs.
func Sanitise(cfg Config) error {
	return engine.Sanitise(cfg)
}

// SanitiseWithStats runs a sanitization pass and returns run statistics.
func SanitiseWithStats(cfg Config) (Result, error) {
	return engine.SanitiseWithStats(cfg)
}

// CountTargets reports how many files a run would attempt, without reading
// file contents. Exposed for convenience to avoid importing internals.
func CountTargets(cfg Config) (int, error) { return engine.CountTargets(cfg) }
