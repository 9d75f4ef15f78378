package engine

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/logscrub/logscrub/internal/ignore"
	"github.com/logscrub/logscrub/internal/types"
)

// Collect enumerates eligible regular files under the source root in
// lexical path order and derives each file's mirrored destination path.
// Directories and symlinks are excluded from the file set.
func Collect(cfg Config, ign ignore.Matcher, log *zap.Logger) ([]types.FileTask, error) {
	var tasks []types.FileTask
	err := filepath.WalkDir(cfg.SourceDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// An unreadable root is a configuration problem; anything
			// below it is skipped like other per-entry trouble.
			if p == cfg.SourceDir {
				return err
			}
			log.Warn("skipping unreadable entry", zap.String("path", p), zap.Error(err))
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(cfg.SourceDir, p)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if ign.Match(rel) {
			log.Debug("ignoring file", zap.String("path", rel))
			return nil
		}
		tasks = append(tasks, types.FileTask{
			Source: p,
			Dest:   filepath.Join(cfg.OutputDir, filepath.FromSlash(rel)),
			Rel:    rel,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", cfg.SourceDir, err)
	}
	return tasks, nil
}

// CountTargets reports how many files a run with cfg would attempt, without
// reading file contents.
func CountTargets(cfg Config) (int, error) {
	ign, _ := ignore.Load(cfg.IgnorePath)
	tasks, err := Collect(cfg, ign, zap.NewNop())
	if err != nil {
		return 0, err
	}
	return len(tasks), nil
}
