// Package engine contains the core sanitization logic for logscrub. It
// enumerates source files, applies the loaded rule set to each one via a
// worker pool, and writes sanitized copies into a mirrored output tree.
// This package is internal; external consumers should use the stable facade
// in pkg/core.
package engine
