package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors Config with TOML tags for serialization. Keeping it
// separate from Config means save formatting never leaks into resolution.
type fileConfig struct {
	ProjectsDir               string            `toml:"projects_dir"`
	ProjectsDirs              []string          `toml:"projects_dirs,omitempty"`
	PollingInterval           int               `toml:"polling_interval"`
	Timezone                  string            `toml:"timezone"`
	TokenLimit                int               `toml:"token_limit"`
	CacheDir                  string            `toml:"cache_dir"`
	DisableCache              bool              `toml:"disable_cache"`
	RecentActivityWindowHours int               `toml:"recent_activity_window_hours"`
	Display                   fileDisplay       `toml:"display"`
	Notifications             fileNotifications `toml:"notifications"`
}

type fileDisplay struct {
	ShowProgressBars    bool     `toml:"show_progress_bars"`
	ShowActiveSessions  bool     `toml:"show_active_sessions"`
	UpdateInPlace       bool     `toml:"update_in_place"`
	RefreshInterval     int      `toml:"refresh_interval"`
	TimeFormat          string   `toml:"time_format"`
	ProjectNamePrefixes []string `toml:"project_name_prefixes"`
	AggregateByProject  bool     `toml:"aggregate_by_project"`
	ShowToolUsage       bool     `toml:"show_tool_usage"`
	DisplayMode         string   `toml:"display_mode"`
	ShowPricing         bool     `toml:"show_pricing"`
	Theme               string   `toml:"theme"`
}

type fileNotifications struct {
	DiscordWebhookURL       string `toml:"discord_webhook_url"`
	SlackWebhookURL         string `toml:"slack_webhook_url"`
	NotifyOnBlockCompletion bool   `toml:"notify_on_block_completion"`
	CooldownMinutes         int    `toml:"cooldown_minutes"`
}

// Save writes cfg to path as TOML. The file is written to a temporary
// sibling first and renamed into place so readers never observe a partial
// file. The projects_dirs key is omitted entirely when the list is empty.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	fc := fileConfig{
		ProjectsDir:               cfg.ProjectsDir,
		ProjectsDirs:              cfg.ProjectsDirs,
		PollingInterval:           cfg.PollingInterval,
		Timezone:                  cfg.Timezone,
		TokenLimit:                cfg.TokenLimit,
		CacheDir:                  cfg.CacheDir,
		DisableCache:              cfg.DisableCache,
		RecentActivityWindowHours: cfg.RecentActivityWindowHours,
		Display: fileDisplay{
			ShowProgressBars:    cfg.Display.ShowProgressBars,
			ShowActiveSessions:  cfg.Display.ShowActiveSessions,
			UpdateInPlace:       cfg.Display.UpdateInPlace,
			RefreshInterval:     cfg.Display.RefreshInterval,
			TimeFormat:          string(cfg.Display.TimeFormat),
			ProjectNamePrefixes: cfg.Display.ProjectNamePrefixes,
			AggregateByProject:  cfg.Display.AggregateByProject,
			ShowToolUsage:       cfg.Display.ShowToolUsage,
			DisplayMode:         string(cfg.Display.DisplayMode),
			ShowPricing:         cfg.Display.ShowPricing,
			Theme:               string(cfg.Display.Theme),
		},
		Notifications: fileNotifications{
			DiscordWebhookURL:       cfg.Notifications.DiscordWebhookURL,
			SlackWebhookURL:         cfg.Notifications.SlackWebhookURL,
			NotifyOnBlockCompletion: cfg.Notifications.NotifyOnBlockCompletion,
			CooldownMinutes:         cfg.Notifications.CooldownMinutes,
		},
	}

	var buf bytes.Buffer
	buf.WriteString("# cc-usage configuration\n\n")
	if err := toml.NewEncoder(&buf).Encode(fc); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
