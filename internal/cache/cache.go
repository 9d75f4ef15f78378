package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	xxhash "github.com/cespare/xxhash/v2"
)

// DB maps source-relative paths to content hashes from the previous run.
// Fingerprint records the rule configuration the entries were produced
// under; entries from a different configuration are discarded on load.
type DB struct {
	Fingerprint string            `json:"fingerprint"`
	Entries     map[string]string `json:"entries"`
}

// The cache lives next to the sanitized output so wiping the output
// directory also resets incremental state.
func defaultPath(outputDir string) string {
	return filepath.Join(outputDir, ".logscrubcache.json")
}

// Load reads the cache from the output directory. Read and decode failures,
// and a fingerprint mismatch, all yield a fresh empty cache.
func Load(outputDir, fingerprint string) DB {
	empty := DB{Fingerprint: fingerprint, Entries: map[string]string{}}
	b, err := os.ReadFile(defaultPath(outputDir))
	if err != nil {
		return empty
	}
	var db DB
	if err := json.Unmarshal(b, &db); err != nil {
		return empty
	}
	if db.Fingerprint != fingerprint || db.Entries == nil {
		return empty
	}
	return db
}

// Save writes the cache into the output directory.
func Save(outputDir string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(defaultPath(outputDir), b, 0644)
}

// Hash returns a 16-char hex xxhash digest of b.
func Hash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}

// HashString is Hash over string content.
func HashString(s string) string {
	return Hash([]byte(s))
}
