package fpmconf

import (
	"regexp"
)

var extensionDirPattern = regexp.MustCompile(`(?m)^[ \t]*extension_dir[ \t]*=[ \t]*"[^"\n]*"[ \t]*(?:\r?\n|$)`)

// SetExtensionDir removes every uncommented extension_dir directive from a
// php.ini document and prepends exactly one pointing at dir.
func SetExtensionDir(content string, dir string) string {
	stripped := extensionDirPattern.ReplaceAllString(content, "")
	return ExtensionDirLine(dir) + "\n" + stripped
}

// ExtensionDirLine renders the canonical extension_dir directive.
func ExtensionDirLine(dir string) string {
	return `extension_dir = "` + dir + `"`
}
