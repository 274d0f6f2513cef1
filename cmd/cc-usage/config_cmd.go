package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/DiologIR/cc-usage/internal/config"
	"github.com/DiologIR/cc-usage/internal/output"
	"github.com/DiologIR/cc-usage/internal/ui/static"
	"github.com/DiologIR/cc-usage/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage cc-usage configuration.

Config file: ~/.config/cc-usage/config.toml
Environment overrides use the CC_USAGE_ prefix.`,
		Example: `  cc-usage config init                    # Create default config
  cc-usage config show                    # Show effective config
  cc-usage config get display.theme       # Read one value
  cc-usage config set polling_interval 10 # Persist one value`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  cc-usage config init     # Create config file
  cc-usage config init -f  # Overwrite existing config
  cc-usage config init -s  # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := defaultConfig()

			if stdout {
				output.FromContext(cmd.Context()).Print(content)
				return nil
			}

			path := effectiveConfigPath()
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
				}
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return err
			}

			output.FromContext(cmd.Context()).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show the effective configuration after merging defaults, the
config file and environment overrides.`,
		Example: `  cc-usage config show         # Show as a table
  cc-usage config show --json  # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if jsonOutput {
				return out.JSON(nestedValues(cfg))
			}

			rows := make([][]string, 0, len(config.Keys()))
			for _, key := range config.Keys() {
				v, _ := config.Value(cfg, key)
				rows = append(rows, []string{key, formatValue(v)})
			}

			th := styles.ForName(cfg.Display.Theme)
			out.Print(static.RenderTable(th, []string{"KEY", "VALUE"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Read one configuration value",
		Args:  cobra.ExactArgs(1),
		Example: `  cc-usage config get display.theme
  cc-usage config get polling_interval`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			v, ok := config.Value(cfg, key)
			if !ok {
				return unknownKeyError(key)
			}
			output.FromContext(cmd.Context()).Println(formatValue(v))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set and persist one configuration value",
		Args:  cobra.ExactArgs(2),
		Long: `Set a configuration value and write the full effective config back
to the config file.`,
		Example: `  cc-usage config set polling_interval 10
  cc-usage config set display.theme dark
  cc-usage config set projects_dirs ~/claude-a,~/claude-b`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if _, ok := config.Value(cfg, key); !ok {
				return unknownKeyError(key)
			}
			if err := config.SetString(env, &cfg, key, value); err != nil {
				return err
			}

			path := effectiveConfigPath()
			if err := config.Save(cfg, path); err != nil {
				return err
			}

			v, _ := config.Value(cfg, key)
			output.FromContext(cmd.Context()).Printf("%s = %s\n", key, formatValue(v))
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.FromContext(cmd.Context()).Println(effectiveConfigPath())
			return nil
		},
	}
}

// unknownKeyError builds an error with fuzzy "did you mean" suggestions.
func unknownKeyError(key string) error {
	matches := fuzzy.Find(key, config.Keys())
	if len(matches) == 0 {
		return fmt.Errorf("unknown config key %q", key)
	}
	limit := min(3, len(matches))
	suggestions := make([]string, limit)
	for i := range limit {
		suggestions[i] = matches[i].Str
	}
	return fmt.Errorf("unknown config key %q (did you mean %s?)", key, strings.Join(suggestions, ", "))
}

// formatValue renders a config value for table and get output.
func formatValue(v any) string {
	switch val := v.(type) {
	case []string:
		return strings.Join(val, ",")
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// nestedValues converts the flat key list into a nested map for JSON
// output, mirroring the file layout.
func nestedValues(cfg config.Config) map[string]any {
	result := make(map[string]any)
	for _, key := range config.Keys() {
		v, _ := config.Value(cfg, key)
		section, field, found := strings.Cut(key, ".")
		if !found {
			result[key] = v
			continue
		}
		sub, _ := result[section].(map[string]any)
		if sub == nil {
			sub = make(map[string]any)
			result[section] = sub
		}
		sub[field] = v
	}
	return result
}

// defaultConfig returns the default configuration content
func defaultConfig() string {
	return `# cc-usage configuration
# Config location: ~/.config/cc-usage/config.toml
# Every setting can be overridden with a CC_USAGE_* environment variable.

# Claude Code projects directory to monitor
# projects_dir = "~/.claude/projects"

# Monitor several Claude directories at once (overrides projects_dir)
# projects_dirs = ["~/.claude/projects", "~/.config/claude/projects"]

# Usage log polling interval in seconds
# polling_interval = 5

# IANA timezone for timestamps
# timezone = "America/Los_Angeles"

# Token budget per billing block (0 = auto-detect)
# token_limit = 0

# File monitoring cache
# cache_dir = "~/.cache/cc-usage"
# disable_cache = false

# Hours of activity that count as "recent" for block selection
# recent_activity_window_hours = 5

[display]
# show_progress_bars = true
# show_active_sessions = false
# update_in_place = true
# refresh_interval = 1

# Clock format: "12h" or "24h"
# time_format = "24h"

# Prefixes stripped from project names for display
# project_name_prefixes = ["-Users-", "-home-"]

# aggregate_by_project = true
# show_tool_usage = false

# Layout: "normal" or "compact"
# display_mode = "normal"

# show_pricing = false

# Color palette: "default", "dark", "light", "accessibility" or "minimal"
# theme = "default"

# [notifications]
# discord_webhook_url = ""
# slack_webhook_url = ""
# notify_on_block_completion = true
# cooldown_minutes = 5
`
}
