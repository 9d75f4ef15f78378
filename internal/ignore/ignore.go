package ignore

import (
	"os"
	"path"
	"regexp"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// pattern carries a glob alongside a shell-style regexp equivalent in which
// * and ? also cross path separators, matching fnmatch semantics.
type pattern struct {
	glob string
	re   *regexp.Regexp
}

// Matcher holds glob patterns excluding files from processing. The zero
// value matches nothing.
type Matcher struct {
	patterns []pattern
}

// Load parses an ignore file. Blank lines and #-comments are skipped. A
// missing or unreadable file returns an empty matcher along with the read
// error so callers can degrade to "ignore nothing".
func Load(p string) (Matcher, error) {
	if p == "" {
		return Matcher{}, nil
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return Matcher{}, err
	}
	return Parse(string(b)), nil
}

// Parse builds a matcher from newline-delimited pattern text.
func Parse(text string) Matcher {
	var m Matcher
	for _, line := range strings.Split(text, "\n") {
		tok := strings.TrimSpace(line)
		if tok == "" || strings.HasPrefix(tok, "#") {
			continue
		}
		m.patterns = append(m.patterns, pattern{glob: tok, re: translate(tok)})
	}
	return m
}

// Len reports the number of loaded patterns.
func (m Matcher) Len() int { return len(m.patterns) }

// Match reports whether the given source-relative path is excluded. A
// pattern matches the slash-normalized relative path or the bare file name;
// either is sufficient. Against the relative path the wildcards also span
// separators, so "build/*" covers nested files. Patterns ending in "/"
// exclude everything under that directory.
func (m Matcher) Match(rel string) bool {
	rp := strings.ReplaceAll(rel, "\\", "/")
	base := path.Base(rp)
	for _, p := range m.patterns {
		if dir, ok := strings.CutSuffix(p.glob, "/"); ok {
			if rp == dir || strings.HasPrefix(rp, dir+"/") {
				return true
			}
			continue
		}
		if ok, _ := doublestar.Match(p.glob, rp); ok {
			return true
		}
		if ok, _ := doublestar.Match(p.glob, base); ok {
			return true
		}
		if p.re != nil && p.re.MatchString(rp) {
			return true
		}
	}
	return false
}

// translate converts a shell glob into an anchored regexp where * matches
// any run of characters including separators and ? matches exactly one
// character. An unterminated character class is taken literally. Returns
// nil if the result does not compile.
func translate(glob string) *regexp.Regexp {
	var sb strings.Builder
	sb.WriteString(`(?s)\A`)
	rs := []rune(glob)
	for i := 0; i < len(rs); i++ {
		switch c := rs[i]; c {
		case '*':
			sb.WriteString(`.*`)
		case '?':
			sb.WriteString(`.`)
		case '[':
			j := i + 1
			if j < len(rs) && (rs[j] == '!' || rs[j] == '^') {
				j++
			}
			if j < len(rs) && rs[j] == ']' {
				j++
			}
			for j < len(rs) && rs[j] != ']' {
				j++
			}
			if j >= len(rs) {
				sb.WriteString(`\[`)
				continue
			}
			class := strings.ReplaceAll(string(rs[i+1:j]), `\`, `\\`)
			sb.WriteByte('[')
			switch {
			case strings.HasPrefix(class, "!"):
				sb.WriteString("^" + class[1:])
			case strings.HasPrefix(class, "^"):
				sb.WriteString(`\^` + class[1:])
			default:
				sb.WriteString(class)
			}
			sb.WriteByte(']')
			i = j
		default:
			sb.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	sb.WriteString(`\z`)
	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil
	}
	return re
}
