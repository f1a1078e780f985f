// Package fpmconf computes and writes the target state of a PHP runtime's
// configuration files: the FPM pool file, the performance profile, and the
// extension_dir directive of php.ini.
//
// The rewrite functions in this package are pure. Reconciler is the only
// type that touches the filesystem.
package fpmconf

import (
	"regexp"
	"strings"
)

// Document is a line-addressed view of an ini-style configuration file.
type Document struct {
	lines           []string
	trailingNewline bool
}

// Parse splits content into a Document.
func Parse(content string) Document {
	if content == "" {
		return Document{}
	}
	trailing := strings.HasSuffix(content, "\n")
	body := strings.TrimSuffix(content, "\n")
	return Document{lines: strings.Split(body, "\n"), trailingNewline: trailing}
}

// String renders the document back to text.
func (d Document) String() string {
	if len(d.lines) == 0 {
		return ""
	}
	out := strings.Join(d.lines, "\n")
	if d.trailingNewline {
		out += "\n"
	}
	return out
}

// Lines returns a copy of the document lines.
func (d Document) Lines() []string {
	return append([]string(nil), d.lines...)
}

// Rule rewrites every occurrence of a directive, commented or not, to one canonical line.
type Rule struct {
	Key   string
	Value string
}

// Line renders the canonical uncommented directive.
func (r Rule) Line() string {
	return r.Key + " = " + r.Value
}

func (r Rule) pattern() *regexp.Regexp {
	return regexp.MustCompile(`^\s*;?\s*` + regexp.QuoteMeta(r.Key) + `\s*=`)
}

// Apply rewrites d with rules and returns the new document.
// The first line matching a rule is replaced in place; later matches are dropped.
// A directive that does not occur is appended. Applying the same rules twice
// yields the same document as applying them once.
func Apply(d Document, rules []Rule) Document {
	lines := append([]string(nil), d.lines...)
	trailing := d.trailingNewline
	for _, rule := range rules {
		re := rule.pattern()
		out := make([]string, 0, len(lines)+1)
		seen := false
		for _, line := range lines {
			if !re.MatchString(line) {
				out = append(out, line)
				continue
			}
			if seen {
				continue
			}
			seen = true
			out = append(out, rule.Line())
		}
		if !seen {
			out = append(out, rule.Line())
			trailing = true
		}
		lines = out
	}
	return Document{lines: lines, trailingNewline: trailing}
}

// Rewrite is Apply over raw text.
func Rewrite(content string, rules []Rule) string {
	return Apply(Parse(content), rules).String()
}

// PoolSettings are the values written into an FPM pool configuration.
type PoolSettings struct {
	User       string
	Group      string
	Socket     string
	ListenMode string
	ErrorLog   string
}

// PoolRules returns the directive rules for an FPM pool file.
func PoolRules(s PoolSettings) []Rule {
	return []Rule{
		{Key: "user", Value: s.User},
		{Key: "group", Value: s.Group},
		{Key: "listen", Value: s.Socket},
		{Key: "listen.owner", Value: s.User},
		{Key: "listen.group", Value: s.Group},
		{Key: "listen.mode", Value: s.ListenMode},
		{Key: "php_admin_value[error_log]", Value: s.ErrorLog},
	}
}
