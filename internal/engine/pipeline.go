package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/logscrub/logscrub/internal/cache"
	"github.com/logscrub/logscrub/internal/rules"
	"github.com/logscrub/logscrub/internal/scrub"
	"github.com/logscrub/logscrub/internal/types"
)

// task is one unit of worker-pool work: a file plus its cached hash from
// the previous run ("" if none).
type task struct {
	file   types.FileTask
	cached string
}

type procOptions struct {
	Placeholder    string
	MaintainLength bool
	Cached         string
	Logger         *zap.Logger
}

// processFile sanitizes one file: read whole, apply every rule in order to
// the evolving content, ensure the destination directory, write. It returns
// the source content hash for the incremental cache and whether the file
// was skipped as unchanged. Errors are local to this file.
func processFile(ft types.FileTask, set rules.Set, opts procOptions) (hash string, skipped bool, err error) {
	raw, err := os.ReadFile(ft.Source)
	if err != nil {
		return "", false, fmt.Errorf("read source: %w", err)
	}
	hash = cache.Hash(raw)
	if opts.Cached == hash {
		if _, statErr := os.Stat(ft.Dest); statErr == nil {
			opts.Logger.Debug("unchanged since last run", zap.String("path", ft.Rel))
			return hash, true, nil
		}
	}

	// Undecodable byte sequences are dropped rather than failing the file.
	content := strings.ToValidUTF8(string(raw), "")
	for _, r := range set {
		next := scrub.Apply(r.Pattern, content, opts.Placeholder, opts.MaintainLength)
		if next != content {
			opts.Logger.Debug("applied rule",
				zap.String("rule", r.Description),
				zap.String("path", ft.Rel))
		}
		content = next
	}

	if err := os.MkdirAll(filepath.Dir(ft.Dest), 0o755); err != nil {
		return "", false, fmt.Errorf("create destination dir: %w", err)
	}
	if err := os.WriteFile(ft.Dest, []byte(content), 0o644); err != nil {
		return "", false, fmt.Errorf("write destination: %w", err)
	}
	opts.Logger.Info("processed file", zap.String("path", ft.Rel))
	return hash, false, nil
}
