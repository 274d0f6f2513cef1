// Package config resolves the effective cc-usage configuration from three
// layered sources with strict precedence: environment variables override
// config file values, which override built-in defaults.
//
// # Configuration Sources (highest priority first)
//
//   - CC_USAGE_* environment variables (one per field, see env.go)
//   - CLAUDE_CONFIG_DIR: comma-separated list of Claude directories,
//     overrides projects_dirs regardless of other settings
//   - $XDG_CONFIG_HOME/cc-usage/config.toml
//   - Default values
//
// # Failure Policy
//
// Resolution never aborts on missing or unreadable input: an absent or
// corrupt config file degrades to defaults, and an environment override
// that fails to parse is dropped while the file or default value stays in
// force. The single hard failure is schema validation — a merged value
// that violates its field's type (for example an unknown theme name)
// returns a *ValidationError naming the field, which the CLI reports
// before exiting non-zero.
//
// # Legacy Migration
//
// When the canonical config file does not exist, superseded locations
// (~/.cc-usage/config.toml, ~/.cc-usage.toml) are checked in order and the
// first match is copied to the canonical location. The legacy file is left
// in place. Migration and cache directory creation are idempotent, so
// concurrent first runs converge without locking.
//
// Resolution is a one-shot startup operation; the resulting Config is a
// value and is never mutated by this package. Callers update a field by
// constructing a modified copy and persisting it with Save.
package config
