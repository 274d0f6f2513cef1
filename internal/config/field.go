package config

import (
	"fmt"
	"strings"
)

// Keys lists every settable configuration key in display order, using
// dotted names for nested sections.
func Keys() []string {
	return []string{
		"projects_dir",
		"projects_dirs",
		"polling_interval",
		"timezone",
		"token_limit",
		"cache_dir",
		"disable_cache",
		"recent_activity_window_hours",
		"display.show_progress_bars",
		"display.show_active_sessions",
		"display.update_in_place",
		"display.refresh_interval",
		"display.time_format",
		"display.project_name_prefixes",
		"display.aggregate_by_project",
		"display.show_tool_usage",
		"display.display_mode",
		"display.show_pricing",
		"display.theme",
		"notifications.discord_webhook_url",
		"notifications.slack_webhook_url",
		"notifications.notify_on_block_completion",
		"notifications.cooldown_minutes",
	}
}

// Value returns the current value of a dotted key. The second result is
// false for unknown keys.
func Value(cfg Config, key string) (any, bool) {
	switch key {
	case "projects_dir":
		return cfg.ProjectsDir, true
	case "projects_dirs":
		return cfg.ProjectsDirs, true
	case "polling_interval":
		return cfg.PollingInterval, true
	case "timezone":
		return cfg.Timezone, true
	case "token_limit":
		return cfg.TokenLimit, true
	case "cache_dir":
		return cfg.CacheDir, true
	case "disable_cache":
		return cfg.DisableCache, true
	case "recent_activity_window_hours":
		return cfg.RecentActivityWindowHours, true
	case "display.show_progress_bars":
		return cfg.Display.ShowProgressBars, true
	case "display.show_active_sessions":
		return cfg.Display.ShowActiveSessions, true
	case "display.update_in_place":
		return cfg.Display.UpdateInPlace, true
	case "display.refresh_interval":
		return cfg.Display.RefreshInterval, true
	case "display.time_format":
		return string(cfg.Display.TimeFormat), true
	case "display.project_name_prefixes":
		return cfg.Display.ProjectNamePrefixes, true
	case "display.aggregate_by_project":
		return cfg.Display.AggregateByProject, true
	case "display.show_tool_usage":
		return cfg.Display.ShowToolUsage, true
	case "display.display_mode":
		return string(cfg.Display.DisplayMode), true
	case "display.show_pricing":
		return cfg.Display.ShowPricing, true
	case "display.theme":
		return string(cfg.Display.Theme), true
	case "notifications.discord_webhook_url":
		return cfg.Notifications.DiscordWebhookURL, true
	case "notifications.slack_webhook_url":
		return cfg.Notifications.SlackWebhookURL, true
	case "notifications.notify_on_block_completion":
		return cfg.Notifications.NotifyOnBlockCompletion, true
	case "notifications.cooldown_minutes":
		return cfg.Notifications.CooldownMinutes, true
	}
	return nil, false
}

// SetString parses value for the dotted key and assigns it. Unlike
// environment overrides, a value that fails to parse is reported rather
// than dropped, since the user asked for it explicitly.
func SetString(env Environment, cfg *Config, key, value string) error {
	field := key
	if i := strings.LastIndex(key, "."); i >= 0 {
		field = key[i+1:]
	}

	parsed, ok := parseValue(env, field, value)
	if !ok {
		switch fieldKinds[field] {
		case kindInt:
			return fmt.Errorf("invalid value %q for %s: expected an integer", value, key)
		case kindTimeFormat:
			return fmt.Errorf("invalid value %q for %s: must be %s", value, key, formatOptions(ValidTimeFormats))
		case kindDisplayMode:
			return fmt.Errorf("invalid value %q for %s: must be %s", value, key, formatOptions(ValidDisplayModes))
		}
		return fmt.Errorf("invalid value %q for %s", value, key)
	}

	switch key {
	case "projects_dir":
		cfg.ProjectsDir = parsed.(string)
	case "projects_dirs":
		dirs := parsed.([]string)
		for i, d := range dirs {
			dirs[i] = Expand(env, d)
		}
		cfg.ProjectsDirs = dirs
	case "polling_interval":
		cfg.PollingInterval = parsed.(int)
	case "timezone":
		cfg.Timezone = parsed.(string)
	case "token_limit":
		cfg.TokenLimit = parsed.(int)
	case "cache_dir":
		cfg.CacheDir = parsed.(string)
	case "disable_cache":
		cfg.DisableCache = parsed.(bool)
	case "recent_activity_window_hours":
		cfg.RecentActivityWindowHours = parsed.(int)
	case "display.show_progress_bars":
		cfg.Display.ShowProgressBars = parsed.(bool)
	case "display.show_active_sessions":
		cfg.Display.ShowActiveSessions = parsed.(bool)
	case "display.update_in_place":
		cfg.Display.UpdateInPlace = parsed.(bool)
	case "display.refresh_interval":
		cfg.Display.RefreshInterval = parsed.(int)
	case "display.time_format":
		cfg.Display.TimeFormat = TimeFormat(parsed.(string))
	case "display.project_name_prefixes":
		cfg.Display.ProjectNamePrefixes = parsed.([]string)
	case "display.aggregate_by_project":
		cfg.Display.AggregateByProject = parsed.(bool)
	case "display.show_tool_usage":
		cfg.Display.ShowToolUsage = parsed.(bool)
	case "display.display_mode":
		cfg.Display.DisplayMode = DisplayMode(parsed.(string))
	case "display.show_pricing":
		cfg.Display.ShowPricing = parsed.(bool)
	case "display.theme":
		if err := validateEnum(value, "display.theme", ValidThemes); err != nil {
			return err
		}
		cfg.Display.Theme = Theme(value)
	case "notifications.discord_webhook_url":
		cfg.Notifications.DiscordWebhookURL = parsed.(string)
	case "notifications.slack_webhook_url":
		cfg.Notifications.SlackWebhookURL = parsed.(string)
	case "notifications.notify_on_block_completion":
		cfg.Notifications.NotifyOnBlockCompletion = parsed.(bool)
	case "notifications.cooldown_minutes":
		cfg.Notifications.CooldownMinutes = parsed.(int)
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
