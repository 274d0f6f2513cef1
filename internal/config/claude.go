package config

import (
	"os"
	"path/filepath"
)

// ClaudePaths returns the Claude projects directories to monitor, in
// order. The configured list wins when set; otherwise the well-known OS
// locations are probed; otherwise the single configured directory is
// used. Only existing directories are returned, deduplicated by their
// resolved path with first occurrence winning.
func ClaudePaths(env Environment, cfg Config) []string {
	candidates := cfg.ProjectsDirs
	if len(candidates) == 0 {
		for _, p := range claudeDefaultPaths(env) {
			if isDir(p) {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		candidates = []string{cfg.ProjectsDir}
	}

	seen := make(map[string]bool)
	var paths []string
	for _, p := range candidates {
		if !isDir(p) {
			continue
		}
		key := resolvePath(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		paths = append(paths, p)
	}
	return paths
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// resolvePath canonicalizes a path for deduplication so symlinked
// spellings of the same directory collapse to one entry.
func resolvePath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
