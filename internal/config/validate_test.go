package config

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestBuildConfig(t *testing.T) {
	env := testEnv("/home/tester", nil)

	raw := map[string]any{
		"polling_interval": int64(10),
		"projects_dirs":    []any{"~/a", "/b"},
		"display": map[string]any{
			"time_format":  "12h",
			"theme":        "dark",
			"show_pricing": true,
		},
		"notifications": map[string]any{
			"cooldown_minutes": int64(30),
		},
		"unknown_key": "ignored",
	}

	cfg, err := buildConfig(env, raw)
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}

	if cfg.PollingInterval != 10 {
		t.Errorf("PollingInterval = %d, want 10", cfg.PollingInterval)
	}
	if want := []string{"/home/tester/a", "/b"}; !reflect.DeepEqual(cfg.ProjectsDirs, want) {
		t.Errorf("ProjectsDirs = %#v, want %#v", cfg.ProjectsDirs, want)
	}
	if cfg.Display.TimeFormat != TimeFormat12Hour {
		t.Errorf("TimeFormat = %q, want 12h", cfg.Display.TimeFormat)
	}
	if cfg.Display.Theme != ThemeDark {
		t.Errorf("Theme = %q, want dark", cfg.Display.Theme)
	}
	if !cfg.Display.ShowPricing {
		t.Error("ShowPricing = false, want true")
	}
	if cfg.Notifications.CooldownMinutes != 30 {
		t.Errorf("CooldownMinutes = %d, want 30", cfg.Notifications.CooldownMinutes)
	}
	// Untouched fields keep their defaults.
	if cfg.Timezone != "America/Los_Angeles" {
		t.Errorf("Timezone = %q, want default", cfg.Timezone)
	}
}

func TestBuildConfigErrors(t *testing.T) {
	env := testEnv("/home/tester", nil)

	tests := []struct {
		name      string
		raw       map[string]any
		wantField string
	}{
		{
			"wrong int type",
			map[string]any{"polling_interval": "ten"},
			"polling_interval",
		},
		{
			"wrong bool type",
			map[string]any{"disable_cache": "yes"},
			"disable_cache",
		},
		{
			"fractional int",
			map[string]any{"token_limit": 2.5},
			"token_limit",
		},
		{
			"invalid theme",
			map[string]any{"display": map[string]any{"theme": "neon"}},
			"display.theme",
		},
		{
			"invalid time format",
			map[string]any{"display": map[string]any{"time_format": "military"}},
			"display.time_format",
		},
		{
			"invalid display mode",
			map[string]any{"display": map[string]any{"display_mode": "wide"}},
			"display.display_mode",
		},
		{
			"section not a table",
			map[string]any{"display": "compact"},
			"display",
		},
		{
			"list with non-string",
			map[string]any{"projects_dirs": []any{"/a", int64(2)}},
			"projects_dirs",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildConfig(env, tt.raw)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("buildConfig error = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
			if !strings.Contains(verr.Error(), tt.wantField) {
				t.Errorf("Error() = %q, does not name the field", verr.Error())
			}
		})
	}
}

func TestBuildConfigIntegralFloat(t *testing.T) {
	env := testEnv("/home/tester", nil)
	cfg, err := buildConfig(env, map[string]any{"token_limit": 500000.0})
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.TokenLimit != 500000 {
		t.Errorf("TokenLimit = %d, want 500000", cfg.TokenLimit)
	}
}

func TestValidateEnum(t *testing.T) {
	if err := validateEnum("dark", "display.theme", ValidThemes); err != nil {
		t.Errorf("validateEnum(dark) = %v, want nil", err)
	}

	err := validateEnum("neon", "display.theme", ValidThemes)
	if err == nil {
		t.Fatal("validateEnum(neon) = nil, want error")
	}
	for _, want := range []string{"neon", `"default"`, `or "minimal"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}
}
