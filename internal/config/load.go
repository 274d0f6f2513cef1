package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Load resolves the effective configuration in one pass: defaults, then
// the config file, then environment overrides, then schema validation.
// When explicitPath is empty the canonical location is used and legacy
// files are migrated first.
//
// A missing or unreadable file and malformed environment values degrade
// to the remaining sources. A file or environment value that survives
// parsing but violates the schema is a hard error.
func Load(env Environment, explicitPath string) (Config, error) {
	path := explicitPath
	if path == "" {
		path = ConfigFilePath(env)
		migrateLegacy(env, path)
	}

	raw := loadRawFile(path)
	expandPathsInRaw(env, raw)
	applyEnvOverrides(env, raw)

	cfg, err := buildConfig(env, raw)
	if err != nil {
		return Config{}, err
	}

	// Best effort; a read-only cache location disables caching naturally.
	_ = os.MkdirAll(cfg.CacheDir, 0o755)

	return cfg, nil
}

// loadRawFile decodes the config file into a raw map. Any read or parse
// failure yields an empty map so resolution continues from defaults and
// environment alone.
func loadRawFile(path string) map[string]any {
	raw := make(map[string]any)
	data, err := os.ReadFile(path)
	if err != nil {
		return raw
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return make(map[string]any)
	}
	return raw
}

// expandPathsInRaw rewrites path-valued file entries with ~ and $VAR
// expanded. Entries in projects_dirs are expanded later, during schema
// validation, so file and environment values go through the same path.
func expandPathsInRaw(env Environment, raw map[string]any) {
	for _, field := range []string{"projects_dir", "cache_dir"} {
		if s, ok := raw[field].(string); ok {
			raw[field] = Expand(env, s)
		}
	}
}
