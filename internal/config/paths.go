package config

import "path/filepath"

const (
	appDirName     = "cc-usage"
	configFileName = "config.toml"
)

// ConfigFilePath returns the canonical config file location:
// $XDG_CONFIG_HOME/cc-usage/config.toml, or ~/.config/cc-usage/config.toml
// when XDG_CONFIG_HOME is unset.
func ConfigFilePath(env Environment) string {
	return filepath.Join(configHome(env), appDirName, configFileName)
}

// DefaultCacheDir returns the default cache directory:
// $XDG_CACHE_HOME/cc-usage, or ~/.cache/cc-usage when XDG_CACHE_HOME is
// unset.
func DefaultCacheDir(env Environment) string {
	if dir := env.Getenv("XDG_CACHE_HOME"); dir != "" && filepath.IsAbs(dir) {
		return filepath.Join(dir, appDirName)
	}
	return filepath.Join(env.Home, ".cache", appDirName)
}

func configHome(env Environment) string {
	if dir := env.Getenv("XDG_CONFIG_HOME"); dir != "" && filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(env.Home, ".config")
}

// legacyConfigPaths lists superseded config file locations, highest
// priority first. Checked only when the canonical file is absent.
func legacyConfigPaths(env Environment) []string {
	return []string{
		filepath.Join(env.Home, "."+appDirName, configFileName),
		filepath.Join(env.Home, "."+appDirName+".toml"),
	}
}

// claudeDefaultPaths lists the OS-default Claude project directories
// checked when no projects_dirs list is configured, in priority order.
func claudeDefaultPaths(env Environment) []string {
	return []string{
		filepath.Join(configHome(env), "claude", "projects"),
		filepath.Join(env.Home, ".claude", "projects"),
	}
}
