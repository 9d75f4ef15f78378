package audit

import (
	"errors"
	"testing"
	"time"

	"github.com/logscrub/logscrub/internal/engine"
)

func TestLogRunAndLoadHistory(t *testing.T) {
	dir := t.TempDir()
	al := NewLog(dir)

	first := NewRunRecord("source", dir, engine.Result{RuleCount: 2, FilesProcessed: 5, Duration: time.Second})
	if err := al.LogRun(first); err != nil {
		t.Fatal(err)
	}
	second := NewRunRecord("source", dir, engine.Result{RuleCount: 2, FilesProcessed: 3, FilesSkipped: 2, Duration: time.Second})
	if err := al.LogRun(second); err != nil {
		t.Fatal(err)
	}

	records, err := al.LoadHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// newest first
	if records[0].FilesProcessed != 3 || records[1].FilesProcessed != 5 {
		t.Fatalf("unexpected order: %+v", records)
	}
	if records[0].RunID == "" {
		t.Fatal("expected a generated run ID")
	}
}

func TestNewRunRecordCapsFailedPaths(t *testing.T) {
	res := engine.Result{}
	for i := 0; i < 15; i++ {
		res.Failures = append(res.Failures, &engine.FileError{Path: "f", Err: errors.New("boom")})
	}
	rec := NewRunRecord("s", "o", res)
	if rec.FailureCount != 15 {
		t.Fatalf("expected failure count 15, got %d", rec.FailureCount)
	}
	if len(rec.FailedPaths) != 10 {
		t.Fatalf("expected 10 recorded paths, got %d", len(rec.FailedPaths))
	}
}

func TestLoadHistoryMissingLog(t *testing.T) {
	al := NewLog(t.TempDir())
	if _, err := al.LoadHistory(); err == nil {
		t.Fatal("expected error when no runs were recorded")
	}
}
