// Package styles defines the color palettes behind the theme config
// setting.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/DiologIR/cc-usage/internal/config"
)

// Theme defines the color palette for UI components.
type Theme struct {
	Primary color.Color // main accent color (headers, titles)
	Accent  color.Color // highlight color (selected items)
	Success color.Color // under-limit indicators
	Error   color.Color // errors and over-limit indicators
	Warning color.Color // approaching-limit indicators
	Muted   color.Color // secondary text
	Normal  color.Color // standard text
}

// Preset themes, one per config.Theme value.
var (
	// DefaultTheme is the standard dark-terminal palette.
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Accent:  lipgloss.Color("212"), // pink/magenta
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Warning: lipgloss.Color("214"), // orange
		Muted:   lipgloss.Color("240"), // dark gray
		Normal:  lipgloss.Color("252"), // light gray
	}

	// DarkTheme uses deeper hues for high-contrast dark terminals.
	DarkTheme = Theme{
		Primary: lipgloss.Color("#89b4fa"), // blue
		Accent:  lipgloss.Color("#f5c2e7"), // pink
		Success: lipgloss.Color("#a6e3a1"), // green
		Error:   lipgloss.Color("#f38ba8"), // red
		Warning: lipgloss.Color("#fab387"), // peach
		Muted:   lipgloss.Color("#6c7086"), // overlay
		Normal:  lipgloss.Color("#cdd6f4"), // text
	}

	// LightTheme uses darkened colors readable on light backgrounds.
	LightTheme = Theme{
		Primary: lipgloss.Color("#1e66f5"), // blue
		Accent:  lipgloss.Color("#8f3f71"), // purple
		Success: lipgloss.Color("#40a02b"), // green
		Error:   lipgloss.Color("#d20f39"), // red
		Warning: lipgloss.Color("#b57614"), // yellow
		Muted:   lipgloss.Color("#9ca0b0"), // gray
		Normal:  lipgloss.Color("#4c4f69"), // text
	}

	// AccessibilityTheme uses the basic ANSI colors with maximum
	// contrast, for color-vision-deficiency friendliness.
	AccessibilityTheme = Theme{
		Primary: lipgloss.Color("12"), // bright blue
		Accent:  lipgloss.Color("13"), // bright magenta
		Success: lipgloss.Color("10"), // bright green
		Error:   lipgloss.Color("9"),  // bright red
		Warning: lipgloss.Color("11"), // bright yellow
		Muted:   lipgloss.Color("7"),  // white
		Normal:  lipgloss.Color("15"), // bright white
	}

	// MinimalTheme renders without any colors (uses terminal defaults).
	// Formatting (bold/italic) is preserved.
	MinimalTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
	}
)

var themes = map[config.Theme]Theme{
	config.ThemeDefault:       DefaultTheme,
	config.ThemeDark:          DarkTheme,
	config.ThemeLight:         LightTheme,
	config.ThemeAccessibility: AccessibilityTheme,
	config.ThemeMinimal:       MinimalTheme,
}

// ForName returns the palette for a theme name, falling back to the
// default palette for unknown names.
func ForName(name config.Theme) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return DefaultTheme
}

// PrimaryStyle renders header and title text.
func (t Theme) PrimaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
}

// AccentStyle renders highlighted or selected text.
func (t Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}

// SuccessStyle renders positive status text.
func (t Theme) SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success)
}

// ErrorStyle renders error text.
func (t Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error)
}

// WarningStyle renders approaching-limit text.
func (t Theme) WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Warning)
}

// MutedStyle renders secondary text.
func (t Theme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// NormalStyle renders standard text.
func (t Theme) NormalStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Normal)
}
