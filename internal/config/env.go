package config

// EnvPrefix is the prefix for all cc-usage environment overrides.
const EnvPrefix = "CC_USAGE_"

// ClaudeConfigDirEnv overrides the full projects_dirs list with a
// comma-separated list of directories. It is shared with other Claude
// tooling and wins over both file values and CC_USAGE_PROJECTS_DIR.
const ClaudeConfigDirEnv = "CLAUDE_CONFIG_DIR"

// Fixed environment mapping tables, one per config section.
var (
	topLevelEnv = map[string]string{
		EnvPrefix + "PROJECTS_DIR":                 "projects_dir",
		EnvPrefix + "POLLING_INTERVAL":             "polling_interval",
		EnvPrefix + "TIMEZONE":                     "timezone",
		EnvPrefix + "TOKEN_LIMIT":                  "token_limit",
		EnvPrefix + "CACHE_DIR":                    "cache_dir",
		EnvPrefix + "DISABLE_CACHE":                "disable_cache",
		EnvPrefix + "RECENT_ACTIVITY_WINDOW_HOURS": "recent_activity_window_hours",
	}

	displayEnv = map[string]string{
		EnvPrefix + "SHOW_PROGRESS_BARS":    "show_progress_bars",
		EnvPrefix + "SHOW_ACTIVE_SESSIONS":  "show_active_sessions",
		EnvPrefix + "UPDATE_IN_PLACE":       "update_in_place",
		EnvPrefix + "REFRESH_INTERVAL":      "refresh_interval",
		EnvPrefix + "TIME_FORMAT":           "time_format",
		EnvPrefix + "PROJECT_NAME_PREFIXES": "project_name_prefixes",
		EnvPrefix + "AGGREGATE_BY_PROJECT":  "aggregate_by_project",
		EnvPrefix + "SHOW_TOOL_USAGE":       "show_tool_usage",
		EnvPrefix + "DISPLAY_MODE":          "display_mode",
		EnvPrefix + "SHOW_PRICING":          "show_pricing",
		EnvPrefix + "THEME":                 "theme",
	}

	notificationsEnv = map[string]string{
		EnvPrefix + "DISCORD_WEBHOOK_URL":        "discord_webhook_url",
		EnvPrefix + "SLACK_WEBHOOK_URL":          "slack_webhook_url",
		EnvPrefix + "NOTIFY_ON_BLOCK_COMPLETION": "notify_on_block_completion",
		EnvPrefix + "COOLDOWN_MINUTES":           "cooldown_minutes",
	}
)

// applyEnvOverrides mutates raw with every environment override that is
// set, non-empty, and parseable. The CLAUDE_CONFIG_DIR bypass runs first
// so a per-field override of projects_dir cannot shadow it.
func applyEnvOverrides(env Environment, raw map[string]any) {
	applyClaudeConfigDir(env, raw)
	applyTable(env, raw, topLevelEnv)
	applyNestedTable(env, raw, "display", displayEnv)
	applyNestedTable(env, raw, "notifications", notificationsEnv)
}

// applyClaudeConfigDir overwrites the projects_dirs list unconditionally
// when CLAUDE_CONFIG_DIR is set, expanding each entry.
func applyClaudeConfigDir(env Environment, raw map[string]any) {
	v := env.Getenv(ClaudeConfigDirEnv)
	if v == "" {
		return
	}
	dirs := splitList(v)
	for i, d := range dirs {
		dirs[i] = Expand(env, d)
	}
	if len(dirs) > 0 {
		raw["projects_dirs"] = dirs
	}
}

func applyTable(env Environment, raw map[string]any, table map[string]string) {
	for envVar, field := range table {
		v := env.Getenv(envVar)
		if v == "" {
			continue
		}
		if parsed, ok := parseValue(env, field, v); ok {
			raw[field] = parsed
		}
	}
}

// applyNestedTable applies a mapping table to a nested section, creating
// the sub-map when absent.
func applyNestedTable(env Environment, raw map[string]any, section string, table map[string]string) {
	sub, _ := raw[section].(map[string]any)
	for envVar, field := range table {
		v := env.Getenv(envVar)
		if v == "" {
			continue
		}
		parsed, ok := parseValue(env, field, v)
		if !ok {
			continue
		}
		if sub == nil {
			sub = make(map[string]any)
		}
		sub[field] = parsed
	}
	if sub != nil {
		raw[section] = sub
	}
}
