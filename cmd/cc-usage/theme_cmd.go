package main

import (
	"github.com/spf13/cobra"

	"github.com/DiologIR/cc-usage/internal/config"
	"github.com/DiologIR/cc-usage/internal/log"
	"github.com/DiologIR/cc-usage/internal/output"
	"github.com/DiologIR/cc-usage/internal/ui"
	"github.com/DiologIR/cc-usage/internal/ui/styles"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "theme",
		Short:   "Show available display themes",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Example: `  cc-usage theme         # Preview all themes
  cc-usage theme select  # Pick a theme interactively`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			for _, name := range config.ValidThemes {
				th := styles.ForName(config.Theme(name))
				marker := "  "
				if config.Theme(name) == cfg.Display.Theme {
					marker = "* "
				}
				out.Print(marker)
				out.Print(th.PrimaryStyle().Render(name))
				out.Print("  ")
				out.Print(th.SuccessStyle().Render("ok"))
				out.Print(" ")
				out.Print(th.WarningStyle().Render("warn"))
				out.Print(" ")
				out.Print(th.ErrorStyle().Render("over"))
				out.Print(" ")
				out.Print(th.MutedStyle().Render("muted"))
				out.Println()
			}
			return nil
		},
	}

	cmd.AddCommand(newThemeSelectCmd())

	return cmd
}

func newThemeSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select",
		Short: "Pick a theme interactively",
		Args:  cobra.NoArgs,
		Long: `Pick a theme from an interactive list with a live preview and
persist it to the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := log.FromContext(cmd.Context())

			theme, ok, err := ui.SelectTheme(cfg.Display.Theme)
			if err != nil {
				return err
			}
			if !ok {
				l.Println("Cancelled, theme unchanged.")
				return nil
			}

			cfg.Display.Theme = theme
			if err := config.Save(cfg, effectiveConfigPath()); err != nil {
				return err
			}

			l.Printf("Theme set to %q\n", theme)
			return nil
		},
	}
}
