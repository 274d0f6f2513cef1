package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand normalizes a path-valued string: $VAR and ${VAR} references are
// replaced with their values from env (unknown variables are left intact),
// then a leading ~ is replaced with the home directory. The path is not
// required to exist. Expansion is idempotent — a path without alias or
// variable syntax passes through unchanged.
func Expand(env Environment, path string) string {
	if path == "" {
		return ""
	}

	path = os.Expand(path, func(key string) string {
		if env.LookupEnv != nil {
			if v, ok := env.LookupEnv(key); ok {
				return v
			}
		}
		// Leave unknown references intact rather than erasing them,
		// so a later expansion with the variable set still resolves.
		return "$" + key
	})

	switch {
	case path == "~":
		return env.Home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(env.Home, path[2:])
	}
	return path
}
