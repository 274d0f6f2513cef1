package config

import (
	"slices"
	"strconv"
	"strings"
)

// fieldKind classifies a schema field for string coercion. The tag drives
// both environment override parsing and config-set value parsing.
type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindBool
	kindPath
	kindTimeFormat
	kindDisplayMode
	kindStringList
)

// fieldKinds maps every schema field name to its kind. Names are the bare
// file keys; nested sections share the namespace because no key repeats.
// Theme is deliberately an opaque string here — bad theme values are caught
// by schema validation, which hard-fails, rather than silently dropped.
var fieldKinds = map[string]fieldKind{
	// top-level
	"projects_dir":                 kindPath,
	"projects_dirs":                kindStringList,
	"polling_interval":             kindInt,
	"timezone":                     kindString,
	"token_limit":                  kindInt,
	"cache_dir":                    kindPath,
	"disable_cache":                kindBool,
	"recent_activity_window_hours": kindInt,

	// display
	"show_progress_bars":    kindBool,
	"show_active_sessions":  kindBool,
	"update_in_place":       kindBool,
	"refresh_interval":      kindInt,
	"time_format":           kindTimeFormat,
	"project_name_prefixes": kindStringList,
	"aggregate_by_project":  kindBool,
	"show_tool_usage":       kindBool,
	"display_mode":          kindDisplayMode,
	"show_pricing":          kindBool,
	"theme":                 kindString,

	// notifications
	"discord_webhook_url":        kindString,
	"slack_webhook_url":          kindString,
	"notify_on_block_completion": kindBool,
	"cooldown_minutes":           kindInt,
}

// parseValue coerces a raw string for the named field. A false result
// means the value could not be parsed and the override must be dropped,
// leaving the prior (file or default) value in force. Booleans and lists
// never fail; integers and enums do.
func parseValue(env Environment, field, raw string) (any, bool) {
	switch fieldKinds[field] {
	case kindInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, false
		}
		return n, true

	case kindBool:
		return parseBool(raw), true

	case kindPath:
		return Expand(env, raw), true

	case kindTimeFormat:
		if !slices.Contains(ValidTimeFormats, raw) {
			return nil, false
		}
		return raw, true

	case kindDisplayMode:
		if !slices.Contains(ValidDisplayModes, raw) {
			return nil, false
		}
		return raw, true

	case kindStringList:
		return splitList(raw), true

	default:
		return raw, true
	}
}

// parseBool recognizes a fixed set of truthy tokens; everything else is
// false. It never fails, by contract.
func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

// splitList splits a comma-separated value, trimming whitespace and
// dropping empty segments.
func splitList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
