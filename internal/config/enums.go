package config

import (
	"fmt"
	"slices"
	"strings"
)

// TimeFormat selects 12- or 24-hour clock display.
type TimeFormat string

const (
	TimeFormat12Hour TimeFormat = "12h"
	TimeFormat24Hour TimeFormat = "24h"
)

// DisplayMode selects the monitor layout.
type DisplayMode string

const (
	DisplayModeNormal  DisplayMode = "normal"
	DisplayModeCompact DisplayMode = "compact"
)

// Theme names a display color palette.
type Theme string

const (
	ThemeDefault       Theme = "default"
	ThemeDark          Theme = "dark"
	ThemeLight         Theme = "light"
	ThemeAccessibility Theme = "accessibility"
	ThemeMinimal       Theme = "minimal"
)

// Valid enum values for configuration fields.
var (
	ValidTimeFormats  = []string{"12h", "24h"}
	ValidDisplayModes = []string{"normal", "compact"}
	ValidThemes       = []string{"default", "dark", "light", "accessibility", "minimal"}
)

// validateEnum checks that value is one of the allowed values.
// Returns a *ValidationError mentioning the field and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if !slices.Contains(allowed, value) {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("invalid value %q: must be %s", value, formatOptions(allowed)),
		}
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
