// Package templates embeds the stub files written by vphp.
package templates

import (
	"embed"
	"path"
)

//go:embed files
var content embed.FS

const root = "files"

// Read returns the embedded template at name.
func Read(name string) ([]byte, error) {
	return content.ReadFile(path.Join(root, name))
}
