package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeConfig writes a canonical config file under home and returns its
// path.
func writeConfig(t *testing.T, home, content string) string {
	t.Helper()
	path := filepath.Join(home, ".config", "cc-usage", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadNoFile(t *testing.T) {
	home := t.TempDir()
	cfg, err := Load(testEnv(home, nil), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := Default(testEnv(home, nil)); !reflect.DeepEqual(cfg, got) {
		t.Errorf("Load with no file = %+v, want defaults %+v", cfg, got)
	}
	if info, err := os.Stat(cfg.CacheDir); err != nil || !info.IsDir() {
		t.Errorf("cache dir %s was not created", cfg.CacheDir)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "polling_interval = = 3\n[broken")

	cfg, err := Load(testEnv(home, nil), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PollingInterval != 5 {
		t.Errorf("PollingInterval = %d, want default 5 after parse failure", cfg.PollingInterval)
	}
}

func TestLoadPrecedence(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "polling_interval = 10\ntimezone = \"Europe/Vienna\"\n")

	env := testEnv(home, map[string]string{
		"CC_USAGE_POLLING_INTERVAL": "20",
	})
	cfg, err := Load(env, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.PollingInterval != 20 {
		t.Errorf("PollingInterval = %d, want env value 20", cfg.PollingInterval)
	}
	if cfg.Timezone != "Europe/Vienna" {
		t.Errorf("Timezone = %q, want file value", cfg.Timezone)
	}
	if cfg.RecentActivityWindowHours != 5 {
		t.Errorf("RecentActivityWindowHours = %d, want default 5", cfg.RecentActivityWindowHours)
	}
}

func TestLoadMalformedEnvKeepsFileValue(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "polling_interval = 10\n")

	env := testEnv(home, map[string]string{
		"CC_USAGE_POLLING_INTERVAL": "fast",
	})
	cfg, err := Load(env, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PollingInterval != 10 {
		t.Errorf("PollingInterval = %d, want file value 10", cfg.PollingInterval)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("token_limit = 500000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(testEnv(home, nil), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TokenLimit != 500000 {
		t.Errorf("TokenLimit = %d, want 500000", cfg.TokenLimit)
	}
}

func TestLoadExpandsPaths(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "projects_dir = \"~/claude/projects\"\n")

	cfg, err := Load(testEnv(home, nil), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := cfg.ProjectsDir, filepath.Join(home, "claude", "projects"); got != want {
		t.Errorf("ProjectsDir = %q, want %q", got, want)
	}
}

func TestLoadValidationError(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "[display]\ntheme = \"neon\"\n")

	_, err := Load(testEnv(home, nil), "")
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("Load error = %v, want *ValidationError", err)
	}
	if verr.Field != "display.theme" {
		t.Errorf("Field = %q, want display.theme", verr.Field)
	}
}

func TestMigrateLegacy(t *testing.T) {
	home := t.TempDir()
	legacy := filepath.Join(home, ".cc-usage", "config.toml")
	if err := os.MkdirAll(filepath.Dir(legacy), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "polling_interval = 30\n"
	if err := os.WriteFile(legacy, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	env := testEnv(home, nil)
	cfg, err := Load(env, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PollingInterval != 30 {
		t.Errorf("PollingInterval = %d, want migrated value 30", cfg.PollingInterval)
	}

	canonical, err := os.ReadFile(ConfigFilePath(env))
	if err != nil {
		t.Fatalf("canonical file not written: %v", err)
	}
	if string(canonical) != content {
		t.Errorf("canonical content = %q, want %q", canonical, content)
	}
	if _, err := os.Stat(legacy); err != nil {
		t.Errorf("legacy file was removed: %v", err)
	}
}

func TestMigrateLegacySkipsWhenCanonicalExists(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "polling_interval = 10\n")

	legacy := filepath.Join(home, ".cc-usage.toml")
	if err := os.WriteFile(legacy, []byte("polling_interval = 99\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(testEnv(home, nil), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PollingInterval != 10 {
		t.Errorf("PollingInterval = %d, want canonical value 10", cfg.PollingInterval)
	}
}

func TestMigrateLegacyPriority(t *testing.T) {
	home := t.TempDir()
	dirStyle := filepath.Join(home, ".cc-usage", "config.toml")
	if err := os.MkdirAll(filepath.Dir(dirStyle), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dirStyle, []byte("polling_interval = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".cc-usage.toml"), []byte("polling_interval = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(testEnv(home, nil), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PollingInterval != 1 {
		t.Errorf("PollingInterval = %d, want 1 from the higher-priority legacy file", cfg.PollingInterval)
	}
}

func TestMigrateLegacySkipsForExplicitPath(t *testing.T) {
	home := t.TempDir()
	legacy := filepath.Join(home, ".cc-usage.toml")
	if err := os.WriteFile(legacy, []byte("polling_interval = 99\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	explicit := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(explicit, []byte("polling_interval = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	env := testEnv(home, nil)
	if _, err := Load(env, explicit); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := os.Stat(ConfigFilePath(env)); !os.IsNotExist(err) {
		t.Error("explicit path load triggered legacy migration")
	}
}
