package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/logscrub/logscrub/internal/engine"
)

// RunRecord describes one completed sanitization run.
type RunRecord struct {
	Timestamp      time.Time `json:"timestamp"`
	RunID          string    `json:"run_id"`
	SourceDir      string    `json:"source_dir"`
	OutputDir      string    `json:"output_dir"`
	RuleCount      int       `json:"rule_count"`
	FilesProcessed int       `json:"files_processed"`
	FilesSkipped   int       `json:"files_skipped"`
	FailureCount   int       `json:"failure_count"`
	FailedPaths    []string  `json:"failed_paths,omitempty"`
	Duration       string    `json:"duration"`
}

// Log appends run records to a JSONL file in the output directory.
type Log struct {
	logPath string
}

func NewLog(outputDir string) *Log {
	return &Log{logPath: filepath.Join(outputDir, ".logscrub_audit.jsonl")}
}

// LoadHistory returns recorded runs, newest first. Undecodable lines are
// skipped.
func (a *Log) LoadHistory() ([]RunRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []RunRecord
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var record RunRecord
		if err := decoder.Decode(&record); err != nil {
			continue
		}
		records = append(records, record)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// LogRun appends one record. Owner-only permissions since failed paths may
// name sensitive files.
func (a *Log) LogRun(record RunRecord) error {
	if record.RunID == "" {
		record.RunID = fmt.Sprintf("run_%d", time.Now().Unix())
	}

	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// NewRunRecord builds a record from a finished run. At most ten failed
// paths are kept.
func NewRunRecord(sourceDir, outputDir string, res engine.Result) RunRecord {
	failed := make([]string, 0, 10)
	for i, f := range res.Failures {
		if i >= 10 {
			break
		}
		failed = append(failed, f.Path)
	}
	return RunRecord{
		Timestamp:      time.Now(),
		SourceDir:      sourceDir,
		OutputDir:      outputDir,
		RuleCount:      res.RuleCount,
		FilesProcessed: res.FilesProcessed,
		FilesSkipped:   res.FilesSkipped,
		FailureCount:   len(res.Failures),
		FailedPaths:    failed,
		Duration:       res.Duration.String(),
	}
}
