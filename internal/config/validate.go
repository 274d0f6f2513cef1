package config

import "fmt"

// ValidationError reports a config field whose value violates the schema.
// Unlike a missing file or a malformed environment value, this is a hard
// error: resolution stops and the caller surfaces it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config field %s: %s", e.Field, e.Message)
}

// buildConfig turns the merged raw map into a validated Config, starting
// from the defaults and overwriting only the fields that are present.
// Unknown keys are ignored so newer config files keep working with older
// binaries.
func buildConfig(env Environment, raw map[string]any) (Config, error) {
	cfg := Default(env)

	if err := applyField(raw, "projects_dir", func(v any) error {
		return setPath(env, v, "projects_dir", &cfg.ProjectsDir)
	}); err != nil {
		return Config{}, err
	}
	if err := applyField(raw, "projects_dirs", func(v any) error {
		dirs, err := stringList(v, "projects_dirs")
		if err != nil {
			return err
		}
		for i, d := range dirs {
			dirs[i] = Expand(env, d)
		}
		cfg.ProjectsDirs = dirs
		return nil
	}); err != nil {
		return Config{}, err
	}
	if err := applyField(raw, "polling_interval", func(v any) error {
		return setInt(v, "polling_interval", &cfg.PollingInterval)
	}); err != nil {
		return Config{}, err
	}
	if err := applyField(raw, "timezone", func(v any) error {
		return setString(v, "timezone", &cfg.Timezone)
	}); err != nil {
		return Config{}, err
	}
	if err := applyField(raw, "token_limit", func(v any) error {
		return setInt(v, "token_limit", &cfg.TokenLimit)
	}); err != nil {
		return Config{}, err
	}
	if err := applyField(raw, "cache_dir", func(v any) error {
		return setPath(env, v, "cache_dir", &cfg.CacheDir)
	}); err != nil {
		return Config{}, err
	}
	if err := applyField(raw, "disable_cache", func(v any) error {
		return setBool(v, "disable_cache", &cfg.DisableCache)
	}); err != nil {
		return Config{}, err
	}
	if err := applyField(raw, "recent_activity_window_hours", func(v any) error {
		return setInt(v, "recent_activity_window_hours", &cfg.RecentActivityWindowHours)
	}); err != nil {
		return Config{}, err
	}

	if err := applySection(raw, "display", func(sub map[string]any) error {
		return buildDisplay(sub, &cfg.Display)
	}); err != nil {
		return Config{}, err
	}
	if err := applySection(raw, "notifications", func(sub map[string]any) error {
		return buildNotifications(sub, &cfg.Notifications)
	}); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func buildDisplay(raw map[string]any, d *DisplayConfig) error {
	if err := applyField(raw, "show_progress_bars", func(v any) error {
		return setBool(v, "display.show_progress_bars", &d.ShowProgressBars)
	}); err != nil {
		return err
	}
	if err := applyField(raw, "show_active_sessions", func(v any) error {
		return setBool(v, "display.show_active_sessions", &d.ShowActiveSessions)
	}); err != nil {
		return err
	}
	if err := applyField(raw, "update_in_place", func(v any) error {
		return setBool(v, "display.update_in_place", &d.UpdateInPlace)
	}); err != nil {
		return err
	}
	if err := applyField(raw, "refresh_interval", func(v any) error {
		return setInt(v, "display.refresh_interval", &d.RefreshInterval)
	}); err != nil {
		return err
	}
	if err := applyField(raw, "time_format", func(v any) error {
		s, err := stringValue(v, "display.time_format")
		if err != nil {
			return err
		}
		if err := validateEnum(s, "display.time_format", ValidTimeFormats); err != nil {
			return err
		}
		d.TimeFormat = TimeFormat(s)
		return nil
	}); err != nil {
		return err
	}
	if err := applyField(raw, "project_name_prefixes", func(v any) error {
		prefixes, err := stringList(v, "display.project_name_prefixes")
		if err != nil {
			return err
		}
		d.ProjectNamePrefixes = prefixes
		return nil
	}); err != nil {
		return err
	}
	if err := applyField(raw, "aggregate_by_project", func(v any) error {
		return setBool(v, "display.aggregate_by_project", &d.AggregateByProject)
	}); err != nil {
		return err
	}
	if err := applyField(raw, "show_tool_usage", func(v any) error {
		return setBool(v, "display.show_tool_usage", &d.ShowToolUsage)
	}); err != nil {
		return err
	}
	if err := applyField(raw, "display_mode", func(v any) error {
		s, err := stringValue(v, "display.display_mode")
		if err != nil {
			return err
		}
		if err := validateEnum(s, "display.display_mode", ValidDisplayModes); err != nil {
			return err
		}
		d.DisplayMode = DisplayMode(s)
		return nil
	}); err != nil {
		return err
	}
	if err := applyField(raw, "show_pricing", func(v any) error {
		return setBool(v, "display.show_pricing", &d.ShowPricing)
	}); err != nil {
		return err
	}
	return applyField(raw, "theme", func(v any) error {
		s, err := stringValue(v, "display.theme")
		if err != nil {
			return err
		}
		if err := validateEnum(s, "display.theme", ValidThemes); err != nil {
			return err
		}
		d.Theme = Theme(s)
		return nil
	})
}

func buildNotifications(raw map[string]any, n *NotificationsConfig) error {
	if err := applyField(raw, "discord_webhook_url", func(v any) error {
		return setString(v, "notifications.discord_webhook_url", &n.DiscordWebhookURL)
	}); err != nil {
		return err
	}
	if err := applyField(raw, "slack_webhook_url", func(v any) error {
		return setString(v, "notifications.slack_webhook_url", &n.SlackWebhookURL)
	}); err != nil {
		return err
	}
	if err := applyField(raw, "notify_on_block_completion", func(v any) error {
		return setBool(v, "notifications.notify_on_block_completion", &n.NotifyOnBlockCompletion)
	}); err != nil {
		return err
	}
	return applyField(raw, "cooldown_minutes", func(v any) error {
		return setInt(v, "notifications.cooldown_minutes", &n.CooldownMinutes)
	})
}

// applyField runs fn only when the key is present.
func applyField(raw map[string]any, key string, fn func(v any) error) error {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	return fn(v)
}

// applySection runs fn on a nested section, which must decode as a table.
func applySection(raw map[string]any, key string, fn func(sub map[string]any) error) error {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	sub, ok := v.(map[string]any)
	if !ok {
		return &ValidationError{Field: key, Message: fmt.Sprintf("expected a table, got %T", v)}
	}
	return fn(sub)
}

func setString(v any, field string, dst *string) error {
	s, err := stringValue(v, field)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

func setPath(env Environment, v any, field string, dst *string) error {
	s, err := stringValue(v, field)
	if err != nil {
		return err
	}
	*dst = Expand(env, s)
	return nil
}

func setInt(v any, field string, dst *int) error {
	n, err := intValue(v, field)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func setBool(v any, field string, dst *bool) error {
	b, ok := v.(bool)
	if !ok {
		return &ValidationError{Field: field, Message: fmt.Sprintf("expected a boolean, got %T", v)}
	}
	*dst = b
	return nil
}

func stringValue(v any, field string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &ValidationError{Field: field, Message: fmt.Sprintf("expected a string, got %T", v)}
	}
	return s, nil
}

// intValue accepts the integer shapes the decoder and the override layer
// produce; an integral float is tolerated too.
func intValue(v any, field string) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, &ValidationError{Field: field, Message: fmt.Sprintf("expected an integer, got %T", v)}
}

// stringList accepts the list shapes the decoder and the override layer
// produce.
func stringList(v any, field string) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		items := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, &ValidationError{Field: field, Message: fmt.Sprintf("expected a list of strings, got element %T", item)}
			}
			items = append(items, s)
		}
		return items, nil
	}
	return nil, &ValidationError{Field: field, Message: fmt.Sprintf("expected a list of strings, got %T", v)}
}
