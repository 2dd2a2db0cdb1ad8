package theme

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/qjebbs/go-jsons"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

// Compose merges theme dictionaries into a scope. Dictionaries are flat JSON
// objects; later dictionaries override earlier ones by key. After the merge,
// any required token still missing is injected from the built-in defaults.
// Compose never fails: unusable input degrades to the default scope.
func Compose(dicts ...[]byte) Scope {
	valid := make([][]byte, 0, len(dicts))
	for _, d := range dicts {
		if len(d) == 0 || !json.Valid(d) {
			continue
		}
		valid = append(valid, d)
	}

	merged := []byte("{}")
	if len(valid) > 0 {
		if m, err := jsons.Merge(valid); err == nil {
			merged = m
		} else {
			slog.Debug("theme merge failed, using defaults", "error", err)
		}
	}

	// Patch phase: guarantee the required token table.
	for _, key := range RequiredKeys() {
		if gjson.GetBytes(merged, key).Exists() {
			continue
		}
		if m, err := sjson.SetBytes(merged, key, defaults[key]); err == nil {
			merged = m
		}
	}

	scope := make(Scope)
	gjson.ParseBytes(merged).ForEach(func(key, value gjson.Result) bool {
		scope[key.String()] = value.String()
		return true
	})
	return scope
}

// LoadDict reads one theme dictionary. YAML dictionaries are converted to
// JSON before merging. Loads are best-effort: a missing or malformed file
// yields nil, never an error, because a broken theme asset must not be able
// to break a dialog.
func LoadDict(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("theme dictionary unreadable", "path", path, "error", err)
		return nil
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		var m map[string]any
		if err := yaml.Unmarshal(data, &m); err != nil {
			slog.Debug("theme dictionary malformed", "path", path, "error", err)
			return nil
		}
		out, err := json.Marshal(m)
		if err != nil {
			return nil
		}
		return out
	default:
		if !json.Valid(data) {
			slog.Debug("theme dictionary malformed", "path", path)
			return nil
		}
		return data
	}
}

// LoadAll loads the dictionaries at the given paths in order, skipping the
// ones that fail to load.
func LoadAll(paths []string) [][]byte {
	dicts := make([][]byte, 0, len(paths))
	for _, p := range paths {
		if d := LoadDict(p); d != nil {
			dicts = append(dicts, d)
		}
	}
	return dicts
}
