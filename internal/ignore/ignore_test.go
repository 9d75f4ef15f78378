package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIgnoreMatch(t *testing.T) {
	dir := t.TempDir()
	ig := filepath.Join(dir, "ignore.list")
	content := "node_modules/\n*.pem\n# comment\n\nsecrets.log\n"
	if err := os.WriteFile(ig, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(ig)
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 3 {
		t.Fatalf("expected 3 patterns, got %d", m.Len())
	}
	cases := map[string]bool{
		"node_modules/pkg/index.js": true,
		"certs/key.pem":             true, // base name matches *.pem
		"secrets.log":               true,
		"sub/dir/secrets.log":       true, // base name matches
		"src/app.go":                false,
		"secrets.log.bak":           false,
	}
	for p, want := range cases {
		if got := m.Match(p); got != want {
			t.Fatalf("Match(%q)=%v want %v", p, got, want)
		}
	}
}

func TestIgnoreRelativePathGlob(t *testing.T) {
	m := Parse("logs/*.txt\nfile?.dat\n")
	if !m.Match("logs/a.txt") {
		t.Fatal("expected relative-path glob match")
	}
	if m.Match("other/a.txt") {
		t.Fatal("pattern with slash must not match other directories")
	}
	if !m.Match("file1.dat") || m.Match("file12.dat") {
		t.Fatal("? must match exactly one character")
	}
}

func TestIgnoreWildcardsCrossDirectories(t *testing.T) {
	m := Parse("temp*\nbuild/*\n")
	cases := map[string]bool{
		"tempdir/file.txt":   true, // temp* spans the separator
		"temp.txt":           true,
		"build/out.bin":      true,
		"build/sub/file.txt": true, // build/* covers nested files
		"rebuild/out.bin":    false,
		"src/attempt.go":     false, // neither path nor base name starts with temp
	}
	for p, want := range cases {
		if got := m.Match(p); got != want {
			t.Fatalf("Match(%q)=%v want %v", p, got, want)
		}
	}
}

func TestIgnoreCharacterClass(t *testing.T) {
	m := Parse("log[0-9].txt\ndata[!a].csv\n")
	if !m.Match("log3.txt") || m.Match("logx.txt") {
		t.Fatal("character class must constrain the matched rune")
	}
	if !m.Match("datab.csv") || m.Match("dataa.csv") {
		t.Fatal("negated class must exclude listed runes")
	}
}

func TestIgnoreMissingFileMatchesNothing(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "absent.list"))
	if err == nil {
		t.Fatal("expected read error for missing ignore file")
	}
	if m.Match("anything.txt") {
		t.Fatal("empty matcher must match nothing")
	}
}

func TestIgnoreEmptyPathMatchesNothing(t *testing.T) {
	m, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 0 || m.Match("a.txt") {
		t.Fatal("no ignore source means ignore nothing")
	}
}
