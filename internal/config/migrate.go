package config

import (
	"errors"
	"os"
	"path/filepath"
)

// canonicalExists reports whether the canonical config file is present.
// A stat error other than "not exist" (for example a permission error on
// a parent directory) is treated as present so migration never clobbers
// a file we cannot see.
func canonicalExists(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return !errors.Is(err, os.ErrNotExist)
	}
	return true
}

// migrateLegacy copies the first readable legacy config file to the
// canonical location. The legacy file is left in place, so running the
// migration again is a no-op once the canonical file exists. Copy
// failures are ignored; resolution then proceeds without a file.
func migrateLegacy(env Environment, canonical string) {
	if canonicalExists(canonical) {
		return
	}
	for _, legacy := range legacyConfigPaths(env) {
		data, err := os.ReadFile(legacy)
		if err != nil {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(canonical), 0o755); err != nil {
			return
		}
		_ = os.WriteFile(canonical, data, 0o644)
		return
	}
}
