package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitise_Smoke(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "source")
	if err := os.MkdirAll(src, 0o755); err != nil {
		t.Fatal(err)
	}
	rulesPath := filepath.Join(dir, "main.rule")
	if err := os.WriteFile(rulesPath, []byte("\\d+\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "a.txt"), []byte("pin 1234"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Config{
		SourceDir:      src,
		OutputDir:      filepath.Join(dir, "results"),
		RulesPath:      rulesPath,
		Placeholder:    "*",
		MaintainLength: true,
	}
	res, err := SanitiseWithStats(cfg)
	if err != nil {
		t.Fatalf("Sanitise error: %v", err)
	}
	if res.FilesProcessed != 1 {
		t.Fatalf("expected 1 file processed, got %d", res.FilesProcessed)
	}

	var buf bytes.Buffer
	if err := MarshalResult(&buf, res); err != nil {
		t.Fatalf("MarshalResult: %v", err)
	}
	back, err := UnmarshalResult(&buf)
	if err != nil {
		t.Fatalf("UnmarshalResult: %v", err)
	}
	if back.FilesProcessed != res.FilesProcessed || back.RuleCount != res.RuleCount {
		t.Fatalf("result did not round-trip: %+v vs %+v", back, res)
	}
}

func TestCountTargets_Smoke(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "source")
	if err := os.MkdirAll(src, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "a.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	n, err := CountTargets(Config{SourceDir: src, OutputDir: filepath.Join(dir, "results")})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected 1 target, got %d", n)
	}
}
