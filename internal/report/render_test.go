package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/logscrub/logscrub/internal/engine"
)

func TestPrintSummaryCounts(t *testing.T) {
	var buf bytes.Buffer
	res := engine.Result{
		RuleCount:      3,
		FilesProcessed: 7,
		FilesSkipped:   2,
		Duration:       1500 * time.Millisecond,
	}
	PrintSummary(&buf, res, PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "Files processed: 7 (unchanged: 2)") {
		t.Fatalf("missing counters: %q", out)
	}
	if !strings.Contains(out, "Run duration: 1.50s") {
		t.Fatalf("missing duration: %q", out)
	}
}

func TestPrintSummaryFailuresSortedByPath(t *testing.T) {
	var buf bytes.Buffer
	res := engine.Result{
		FilesProcessed: 1,
		Failures: []*engine.FileError{
			{Path: "z.txt", Err: errors.New("unwritable")},
			{Path: "a.txt", Err: errors.New("unreadable")},
		},
	}
	PrintSummary(&buf, res, PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "Failures: 2") {
		t.Fatalf("missing failure count: %q", out)
	}
	if strings.Index(out, "a.txt") > strings.Index(out, "z.txt") {
		t.Fatalf("failures not sorted by path: %q", out)
	}
}

func TestPrintSummaryDryRun(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, engine.Result{RuleCount: 2, FilesProcessed: 4}, PrintOptions{NoColor: true, DryRun: true})
	if got := buf.String(); got != "Would process 4 files (2 rules)\n" {
		t.Fatalf("unexpected dry-run summary: %q", got)
	}
}
