package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/DiologIR/cc-usage/internal/config"
	"github.com/DiologIR/cc-usage/internal/log"
	"github.com/DiologIR/cc-usage/internal/output"
	"github.com/DiologIR/cc-usage/internal/ui/static"
	"github.com/DiologIR/cc-usage/internal/ui/styles"
)

func newPathsCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "paths",
		Short:   "List monitored Claude project directories",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List the Claude Code project directories that will be monitored,
after applying the configured list, OS defaults and existence checks.`,
		Example: `  cc-usage paths          # List directories
  cc-usage paths --copy   # Also copy them to the clipboard
  cc-usage paths | xargs du -sh  # Plain output when piped`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			paths := config.ClaudePaths(env, cfg)
			if len(paths) == 0 {
				l.Println("No Claude project directories found.")
				l.Println("Set projects_dir in the config or CLAUDE_CONFIG_DIR in the environment.")
				return nil
			}

			if isatty.IsTerminal(os.Stdout.Fd()) {
				rows := make([][]string, len(paths))
				for i, p := range paths {
					rows[i] = []string{fmt.Sprintf("%d", i+1), p}
				}
				th := styles.ForName(cfg.Display.Theme)
				out.Print(static.RenderTable(th, []string{"#", "PATH"}, rows))
			} else {
				for _, p := range paths {
					out.Println(p)
				}
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(strings.Join(paths, "\n")); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				l.Printf("Copied %d path(s) to clipboard\n", len(paths))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy paths to the clipboard")

	return cmd
}
