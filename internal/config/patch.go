package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	// toml v1 is used for syntax validation and key lookup only; edits are
	// line-based so comments and ordering survive.
	tomlv1 "github.com/pelletier/go-toml"

	"github.com/conn-castle/valet-php/internal/messages"
	"github.com/conn-castle/valet-php/internal/templates"
)

var sectionHeader = regexp.MustCompile(`^\s*\[`)

// SettableKeys lists the top-level keys `vphp config set` accepts.
func SettableKeys() []string {
	return []string{"home", "brew_prefix", "group", "listen_mode", "default_version"}
}

// SetKey rewrites key to value in content, keeping comments and ordering. A
// commented-out key is uncommented; a missing key is inserted before the first
// section. The patched document must still validate.
func SetKey(content string, key string, value string) (string, error) {
	if !isSettable(key) {
		return "", fmt.Errorf(messages.ConfigUnknownKeyFmt, key, strings.Join(SettableKeys(), ", "))
	}
	if _, err := tomlv1.LoadBytes([]byte(content)); err != nil {
		return "", fmt.Errorf(messages.ConfigInvalidConfigFmt, "config", err)
	}

	line := key + " = " + strconv.Quote(value)
	pattern := regexp.MustCompile(`^\s*#?\s*` + regexp.QuoteMeta(key) + `\s*=`)
	lines := strings.Split(content, "\n")
	replaced := false
	firstSection := len(lines)
	out := make([]string, 0, len(lines)+1)
	for i, l := range lines {
		if sectionHeader.MatchString(l) && firstSection == len(lines) {
			firstSection = i
		}
		if i < firstSection && pattern.MatchString(l) {
			if replaced {
				continue
			}
			out = append(out, line)
			replaced = true
			continue
		}
		out = append(out, l)
	}
	if !replaced {
		insertAt := firstSection
		if insertAt > len(out) {
			insertAt = len(out)
		}
		out = append(out[:insertAt], append([]string{line}, out[insertAt:]...)...)
	}

	patched := strings.Join(out, "\n")
	if _, err := ParseConfig([]byte(patched), "patched config"); err != nil {
		return "", err
	}
	return patched, nil
}

// GetKey returns the value of key in content, falling back to the embedded
// default when content does not set it.
func GetKey(content string, key string) (string, error) {
	if !isSettable(key) {
		return "", fmt.Errorf(messages.ConfigUnknownKeyFmt, key, strings.Join(SettableKeys(), ", "))
	}
	tree, err := tomlv1.LoadBytes([]byte(content))
	if err != nil {
		return "", fmt.Errorf(messages.ConfigInvalidConfigFmt, "config", err)
	}
	if tree.Has(key) {
		return fmt.Sprint(tree.Get(key)), nil
	}
	return DefaultValue(key)
}

// DefaultValue returns the embedded default for key.
func DefaultValue(key string) (string, error) {
	data, err := templates.Read("config.toml")
	if err != nil {
		return "", fmt.Errorf(messages.ConfigFailedReadTemplateFmt, err)
	}
	tree, err := tomlv1.LoadBytes(data)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigInvalidConfigFmt, "template config.toml", err)
	}
	if !isSettable(key) || !tree.Has(key) {
		return "", fmt.Errorf(messages.ConfigUnknownKeyFmt, key, strings.Join(SettableKeys(), ", "))
	}
	return fmt.Sprint(tree.Get(key)), nil
}

func isSettable(key string) bool {
	for _, k := range SettableKeys() {
		if k == key {
			return true
		}
	}
	return false
}
