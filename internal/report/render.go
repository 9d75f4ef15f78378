package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/logscrub/logscrub/internal/engine"
)

type PrintOptions struct {
	NoColor bool
	DryRun  bool
}

// PrintSummary writes a human-readable run summary: per-file failures first
// (sorted by path so output is reproducible), then the counters.
func PrintSummary(w io.Writer, res engine.Result, opts PrintOptions) {
	failures := append([]*engine.FileError(nil), res.Failures...)
	sort.Slice(failures, func(i, j int) bool { return failures[i].Path < failures[j].Path })
	for _, f := range failures {
		label := "fail"
		if !opts.NoColor {
			label = "\x1b[31mfail\x1b[0m"
		}
		fmt.Fprintf(w, "%s  %s: %v\n", label, f.Path, f.Err)
	}

	if opts.DryRun {
		fmt.Fprintf(w, "Would process %d files (%d rules)\n", res.FilesProcessed, res.RuleCount)
		return
	}

	fmt.Fprintf(w, "Files processed: %d", res.FilesProcessed)
	if res.FilesSkipped > 0 {
		fmt.Fprintf(w, " (unchanged: %d)", res.FilesSkipped)
	}
	fmt.Fprintln(w)
	if len(failures) > 0 {
		fmt.Fprintf(w, "Failures: %d\n", len(failures))
	}
	if res.Duration > 0 {
		fmt.Fprintf(w, "Run duration: %.2fs\n", res.Duration.Seconds())
	}
}
