package config

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var ConfigFS embed.FS

// Load reads a config file by name, preferring an on-disk copy under config/
// (so edits hot reload during development) and falling back to the embedded
// defaults.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ConfigFS.ReadFile(clean)
}

func cleanPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "config/"); ok {
		return after
	}
	return s
}

func diskPath(clean string) string {
	return filepath.Join("config", filepath.FromSlash(clean))
}
