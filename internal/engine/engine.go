package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/logscrub/logscrub/internal/cache"
	"github.com/logscrub/logscrub/internal/ignore"
	"github.com/logscrub/logscrub/internal/rules"
)

// Config controls one sanitization run. The rule set and ignore patterns
// are loaded once up front and shared read-only by every worker.
type Config struct {
	SourceDir      string
	OutputDir      string
	RulesPath      string
	IgnorePath     string
	Placeholder    string
	MaintainLength bool
	Threads        int
	DryRun         bool
	NoCache        bool
	Progress       func()
	Logger         *zap.Logger
}

// FileError records a per-file failure that did not abort the run.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }
func (e *FileError) Unwrap() error { return e.Err }

func (e *FileError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Path  string `json:"path"`
		Cause string `json:"cause"`
	}{e.Path, e.Err.Error()})
}

func (e *FileError) UnmarshalJSON(b []byte) error {
	var raw struct {
		Path  string `json:"path"`
		Cause string `json:"cause"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	e.Path = raw.Path
	e.Err = errors.New(raw.Cause)
	return nil
}

// Result contains run statistics. FilesSkipped counts cache hits, files
// whose content and rule configuration are unchanged since the last run.
type Result struct {
	RuleCount      int           `json:"rule_count"`
	FilesProcessed int           `json:"files_processed"`
	FilesSkipped   int           `json:"files_skipped"`
	Failures       []*FileError  `json:"failures,omitempty"`
	Duration       time.Duration `json:"duration"`
}

// Sanitise runs a full sanitization pass and discards statistics.
func Sanitise(cfg Config) error {
	_, err := SanitiseWithStats(cfg)
	return err
}

// SanitiseWithStats enumerates eligible files under the source root, fans
// them out to a fixed-size worker pool, and blocks until every dispatched
// file has completed or failed. Only configuration problems produce an
// error; per-file failures land in Result.Failures and never abort sibling
// files.
func SanitiseWithStats(cfg Config) (Result, error) {
	var result Result
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Placeholder == "" {
		return result, fmt.Errorf("placeholder must not be empty")
	}

	set, err := rules.Load(cfg.RulesPath)
	if err != nil {
		return result, err
	}
	result.RuleCount = len(set)
	log.Info("loaded sanitization rules", zap.Int("count", len(set)))

	ign, _ := ignore.Load(cfg.IgnorePath)
	if n := ign.Len(); n > 0 {
		log.Info("loaded ignore patterns", zap.Int("count", n))
	}

	tasks, err := Collect(cfg, ign, log)
	if err != nil {
		return result, err
	}

	if cfg.DryRun {
		result.FilesProcessed = len(tasks)
		return result, nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return result, fmt.Errorf("create output dir: %w", err)
	}

	fp := cache.HashString(set.Fingerprint(cfg.Placeholder, cfg.MaintainLength))
	db := cache.DB{Fingerprint: fp, Entries: map[string]string{}}
	if !cfg.NoCache {
		db = cache.Load(cfg.OutputDir, fp)
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	started := time.Now()
	queue := make(chan task)
	var (
		mu      sync.Mutex
		updated = map[string]string{}
		wg      sync.WaitGroup
	)
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range queue {
				hash, skipped, err := processFile(t.file, set, procOptions{
					Placeholder:    cfg.Placeholder,
					MaintainLength: cfg.MaintainLength,
					Cached:         t.cached,
					Logger:         log,
				})
				mu.Lock()
				switch {
				case err != nil:
					result.Failures = append(result.Failures, &FileError{Path: t.file.Source, Err: err})
				case skipped:
					result.FilesSkipped++
					updated[t.file.Rel] = hash
				default:
					result.FilesProcessed++
					updated[t.file.Rel] = hash
				}
				mu.Unlock()
				if cfg.Progress != nil {
					cfg.Progress()
				}
			}
		}()
	}
	for _, t := range tasks {
		queue <- task{file: t, cached: db.Entries[t.Rel]}
	}
	close(queue)
	wg.Wait()

	result.Duration = time.Since(started)
	for _, f := range result.Failures {
		log.Warn("file failed", zap.String("path", f.Path), zap.Error(f.Err))
	}
	if !cfg.NoCache {
		if err := cache.Save(cfg.OutputDir, cache.DB{Fingerprint: fp, Entries: updated}); err != nil {
			log.Debug("cache not saved", zap.Error(err))
		}
	}
	return result, nil
}
