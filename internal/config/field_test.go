package config

import (
	"errors"
	"reflect"
	"testing"
)

func TestKeysAllResolvable(t *testing.T) {
	cfg := Default(testEnv("/home/tester", nil))
	for _, key := range Keys() {
		if _, ok := Value(cfg, key); !ok {
			t.Errorf("Value does not resolve listed key %q", key)
		}
	}
}

func TestValueUnknownKey(t *testing.T) {
	cfg := Default(testEnv("/home/tester", nil))
	if _, ok := Value(cfg, "display.sparkles"); ok {
		t.Error("Value resolved an unknown key")
	}
}

func TestSetString(t *testing.T) {
	env := testEnv("/home/tester", nil)

	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, cfg Config)
	}{
		{
			"int", "polling_interval", "15",
			func(t *testing.T, cfg Config) {
				if cfg.PollingInterval != 15 {
					t.Errorf("PollingInterval = %d, want 15", cfg.PollingInterval)
				}
			},
		},
		{
			"bool", "display.show_pricing", "true",
			func(t *testing.T, cfg Config) {
				if !cfg.Display.ShowPricing {
					t.Error("ShowPricing = false, want true")
				}
			},
		},
		{
			"path expanded", "cache_dir", "~/mycache",
			func(t *testing.T, cfg Config) {
				if cfg.CacheDir != "/home/tester/mycache" {
					t.Errorf("CacheDir = %q", cfg.CacheDir)
				}
			},
		},
		{
			"list", "projects_dirs", "~/a,/b",
			func(t *testing.T, cfg Config) {
				want := []string{"/home/tester/a", "/b"}
				if !reflect.DeepEqual(cfg.ProjectsDirs, want) {
					t.Errorf("ProjectsDirs = %#v, want %#v", cfg.ProjectsDirs, want)
				}
			},
		},
		{
			"theme", "display.theme", "minimal",
			func(t *testing.T, cfg Config) {
				if cfg.Display.Theme != ThemeMinimal {
					t.Errorf("Theme = %q, want minimal", cfg.Display.Theme)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default(env)
			if err := SetString(env, &cfg, tt.key, tt.value); err != nil {
				t.Fatalf("SetString: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestSetStringErrors(t *testing.T) {
	env := testEnv("/home/tester", nil)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad int", "polling_interval", "fast"},
		{"bad time format", "display.time_format", "military"},
		{"bad display mode", "display.display_mode", "wide"},
		{"unknown key", "display.sparkles", "on"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default(env)
			if err := SetString(env, &cfg, tt.key, tt.value); err == nil {
				t.Errorf("SetString(%q, %q) = nil, want error", tt.key, tt.value)
			}
		})
	}
}

func TestSetStringBadTheme(t *testing.T) {
	env := testEnv("/home/tester", nil)
	cfg := Default(env)

	err := SetString(env, &cfg, "display.theme", "neon")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("SetString error = %v, want *ValidationError", err)
	}
	if cfg.Display.Theme != ThemeDefault {
		t.Errorf("Theme changed to %q on failed set", cfg.Display.Theme)
	}
}
