// Package core provides a small, stable facade over logscrub's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so other tools can depend on a stable import path without exposing
// internal implementation packages.
//
// Example:
//
//	cfg := core.Config{SourceDir: "source", OutputDir: "results", RulesPath: "main.rule", Placeholder: "*", MaintainLength: true}
//	err := core.Sanitise(cfg)
//	if err != nil { /* handle */ }
package core
