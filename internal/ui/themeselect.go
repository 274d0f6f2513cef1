// Package ui provides interactive terminal components.
package ui

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/sahilm/fuzzy"

	"github.com/DiologIR/cc-usage/internal/config"
	"github.com/DiologIR/cc-usage/internal/ui/styles"
)

// themeSelectModel is the bubbletea model for interactive theme selection.
type themeSelectModel struct {
	names     []string
	filtered  []fuzzy.Match
	textInput textinput.Model
	cursor    int
	current   config.Theme
	chosen    *config.Theme
	cancelled bool
}

func newThemeSelectModel(current config.Theme) themeSelectModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 40
	ti.SetWidth(30)
	ti.Focus()

	m := themeSelectModel{
		names:     config.ValidThemes,
		textInput: ti,
		current:   current,
	}
	m.filtered = allMatches(m.names)

	// Start on the active theme.
	for i, name := range m.names {
		if config.Theme(name) == current {
			m.cursor = i
		}
	}
	return m
}

// allMatches wraps every name in a zero-score match so an empty filter
// shows the full list in declaration order.
func allMatches(names []string) []fuzzy.Match {
	matches := make([]fuzzy.Match, len(names))
	for i, name := range names {
		matches[i] = fuzzy.Match{Str: name, Index: i}
	}
	return matches
}

func (m themeSelectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m themeSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				theme := config.Theme(m.filtered[m.cursor].Str)
				m.chosen = &theme
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	if query := m.textInput.Value(); query == "" {
		m.filtered = allMatches(m.names)
	} else {
		m.filtered = fuzzy.Find(query, m.names)
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}

	return m, cmd
}

func (m themeSelectModel) View() tea.View {
	dim := styles.DefaultTheme.MutedStyle()

	var sb strings.Builder
	sb.WriteString("Select theme:\n")
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	if len(m.filtered) == 0 {
		sb.WriteString(dim.Render("  No matches found"))
		sb.WriteString("\n")
	} else {
		for i, match := range m.filtered {
			name := match.Str
			line := name
			if config.Theme(name) == m.current {
				line += " (current)"
			}

			th := styles.ForName(config.Theme(name))
			if i == m.cursor {
				sb.WriteString(th.AccentStyle().Render("> " + line))
			} else {
				sb.WriteString(th.NormalStyle().Render("  " + line))
			}
			sb.WriteString("\n")
		}

		sb.WriteString("\n")
		sb.WriteString(renderPreview(styles.ForName(config.Theme(m.filtered[m.cursor].Str))))
	}

	sb.WriteString("\n")
	sb.WriteString(dim.Render("↑/↓ navigate • enter select • esc cancel"))

	return tea.NewView(sb.String())
}

// renderPreview shows sample monitor output in the highlighted palette.
func renderPreview(th styles.Theme) string {
	var sb strings.Builder
	sb.WriteString(th.PrimaryStyle().Render("  Active Session"))
	sb.WriteString("\n  ")
	sb.WriteString(th.SuccessStyle().Render("42%"))
	sb.WriteString(th.NormalStyle().Render(" of token limit, "))
	sb.WriteString(th.WarningStyle().Render("2h 10m"))
	sb.WriteString(th.NormalStyle().Render(" left in block"))
	sb.WriteString("\n  ")
	sb.WriteString(th.ErrorStyle().Render("limit exceeded"))
	sb.WriteString(th.MutedStyle().Render("  (sample)"))
	sb.WriteString("\n")
	return sb.String()
}

// SelectTheme shows an interactive fuzzy-filterable theme picker with a
// live preview. The TUI renders to stderr so stdout remains available
// for piping. Returns the chosen theme, or ok=false if cancelled.
func SelectTheme(current config.Theme) (theme config.Theme, ok bool, err error) {
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	p := tea.NewProgram(newThemeSelectModel(current),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	finalModel, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("running theme selector: %w", err)
	}

	m := finalModel.(themeSelectModel)
	if m.cancelled || m.chosen == nil {
		return "", false, nil
	}
	return *m.chosen, true, nil
}
