package rules

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Rule is one compiled sanitization pattern together with its original text.
// Rules are immutable once constructed; a Rule whose pattern does not compile
// never exists.
type Rule struct {
	Description string
	Pattern     *regexp.Regexp
}

// Set is an ordered collection of rules in file order. Later rules see the
// output of earlier rules when applied to a file.
type Set []Rule

// InvalidRuleError reports a rule line that failed to compile. The whole load
// fails; no partial set is returned.
type InvalidRuleError struct {
	Source  string
	Line    int
	Pattern string
	Err     error
}

func (e *InvalidRuleError) Error() string {
	return fmt.Sprintf("invalid regex on line %d of %s: %v", e.Line, e.Source, e.Err)
}

func (e *InvalidRuleError) Unwrap() error { return e.Err }

// EmptyRuleSetError reports a rules source that yielded no usable rules
// after comment and blank-line filtering.
type EmptyRuleSetError struct {
	Source string
}

func (e *EmptyRuleSetError) Error() string {
	return fmt.Sprintf("no sanitization rules found in %s", e.Source)
}

// Load reads a newline-delimited rules file and compiles it into a Set.
func Load(path string) (Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules file not found: %w", err)
	}
	return Parse(path, string(b))
}

// Parse compiles rules from in-memory text. Lines that are empty or start
// with # after trimming are skipped; every other line is a regular
// expression. source names the origin for error messages.
func Parse(source, text string) (Set, error) {
	var set Set
	for i, line := range strings.Split(text, "\n") {
		raw := strings.TrimSpace(line)
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		re, err := regexp.Compile(raw)
		if err != nil {
			return nil, &InvalidRuleError{Source: source, Line: i + 1, Pattern: raw, Err: err}
		}
		set = append(set, Rule{Description: raw, Pattern: re})
	}
	if len(set) == 0 {
		return nil, &EmptyRuleSetError{Source: source}
	}
	return set, nil
}

// Fingerprint returns a stable digest input covering the rule texts and the
// replacement policy. The incremental cache keys off this so a changed rules
// file or placeholder invalidates prior entries.
func (s Set) Fingerprint(placeholder string, maintainLength bool) string {
	var sb strings.Builder
	for _, r := range s {
		sb.WriteString(r.Description)
		sb.WriteByte('\n')
	}
	sb.WriteByte(0)
	sb.WriteString(placeholder)
	if maintainLength {
		sb.WriteString("\x00maintain")
	}
	return sb.String()
}
