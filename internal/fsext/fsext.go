// Package fsext resolves where dialog templates and theme dictionaries live
// on disk.
package fsext

import (
	"os"
	"path/filepath"

	"github.com/ambler289/ada-ui/internal/env"
)

// ResourceDirEnv overrides the resource directory when set.
const ResourceDirEnv = "ADA_UI_RESOURCES"

// ResourceDir returns the directory templates and themes are loaded from:
// the ADA_UI_RESOURCES variable when set, otherwise "ada-ui" under the user
// config directory. The directory is not required to exist; loaders treat a
// missing directory the same as missing files.
func ResourceDir(e env.Env) string {
	if dir := e.Get(ResourceDirEnv); dir != "" {
		return dir
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "ada-ui"
	}
	return filepath.Join(cfg, "ada-ui")
}

// TemplatePath returns the path of a named dialog template.
func TemplatePath(dir, name string) string {
	return filepath.Join(dir, "templates", name+".json")
}

// ThemePaths lists theme dictionaries under dir in lexical order, base themes
// before brand overrides. Both JSON and YAML dictionaries are returned; a
// missing themes directory yields an empty list.
func ThemePaths(dir string) []string {
	entries, err := os.ReadDir(filepath.Join(dir, "themes"))
	if err != nil {
		return nil
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".json", ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, "themes", entry.Name()))
		}
	}
	return paths
}
