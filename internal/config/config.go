package config

import "path/filepath"

// Config is the validated, resolved cc-usage configuration. It is built
// once per resolution and treated as immutable afterwards; every path field
// is absolute and expanded, every enum field holds a valid value.
type Config struct {
	// ProjectsDir is the single Claude Code projects directory to monitor.
	ProjectsDir string
	// ProjectsDirs lists multiple Claude directories. When non-empty it
	// takes precedence over ProjectsDir (see ClaudePaths).
	ProjectsDirs []string
	// PollingInterval is the usage-log polling interval in seconds.
	PollingInterval int
	// Timezone is the IANA timezone name used for display.
	Timezone string
	// TokenLimit is the token budget; 0 means auto-detect.
	TokenLimit int
	// CacheDir holds cached file states; created during resolution.
	CacheDir string
	// DisableCache turns off the file monitoring cache.
	DisableCache bool
	// RecentActivityWindowHours bounds what counts as "recent" activity
	// for block selection (matches the billing block duration).
	RecentActivityWindowHours int

	Display       DisplayConfig
	Notifications NotificationsConfig
}

// DisplayConfig holds the [display] section.
type DisplayConfig struct {
	ShowProgressBars    bool
	ShowActiveSessions  bool
	UpdateInPlace       bool
	RefreshInterval     int // seconds
	TimeFormat          TimeFormat
	ProjectNamePrefixes []string // stripped from project names for display
	AggregateByProject  bool
	ShowToolUsage       bool
	DisplayMode         DisplayMode
	ShowPricing         bool
	Theme               Theme
}

// NotificationsConfig holds the [notifications] section. Webhook URLs are
// stored verbatim; delivery happens outside this package.
type NotificationsConfig struct {
	DiscordWebhookURL       string
	SlackWebhookURL         string
	NotifyOnBlockCompletion bool
	CooldownMinutes         int
}

// Default returns the built-in configuration for the given environment.
// Home-relative defaults are derived from env so tests can pin them.
func Default(env Environment) Config {
	return Config{
		ProjectsDir:               filepath.Join(env.Home, ".claude", "projects"),
		PollingInterval:           5,
		Timezone:                  "America/Los_Angeles",
		CacheDir:                  DefaultCacheDir(env),
		RecentActivityWindowHours: 5,
		Display: DisplayConfig{
			ShowProgressBars:    true,
			UpdateInPlace:       true,
			RefreshInterval:     1,
			TimeFormat:          TimeFormat24Hour,
			ProjectNamePrefixes: []string{"-Users-", "-home-"},
			AggregateByProject:  true,
			DisplayMode:         DisplayModeNormal,
			Theme:               ThemeDefault,
		},
		Notifications: NotificationsConfig{
			NotifyOnBlockCompletion: true,
			CooldownMinutes:         5,
		},
	}
}
