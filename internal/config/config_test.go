package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points every config source at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	for _, k := range []string{"TADA_CONFIG", "TADA_BACKEND", "TADA_DATA", "TADA_LOG_LEVEL", "TADA_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != DefaultBackend || cfg.LogLevel != DefaultLogLevel || cfg.LogFormat != DefaultLogFormat {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.File != "" {
		t.Errorf("expected no config file, got %q", cfg.File)
	}
	if cfg.ResolvedDataPath() != "tada.json" {
		t.Errorf("ResolvedDataPath = %q", cfg.ResolvedDataPath())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadProjectFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ProjectFileName), `
backend = "sqlite"
log_level = "debug"
group = true
`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "sqlite" || cfg.LogLevel != "debug" || !cfg.Group {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.File != ProjectFileName {
		t.Errorf("File = %q", cfg.File)
	}
	if cfg.ResolvedDataPath() != "tada.db" {
		t.Errorf("ResolvedDataPath = %q", cfg.ResolvedDataPath())
	}
}

func TestPrecedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, `
backend = "sqlite"
data_path = "from-file.db"
log_level = "info"
`)
	t.Setenv("TADA_CONFIG", path)
	t.Setenv("TADA_DATA", "from-env.db")
	t.Setenv("TADA_LOG_LEVEL", "error")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "sqlite" {
		t.Errorf("backend from file lost: %q", cfg.Backend)
	}
	if cfg.DataPath != "from-env.db" || cfg.LogLevel != "error" {
		t.Errorf("env should override file: %+v", cfg)
	}

	flagData := "from-flag.db"
	cfg.Override(Overrides{DataPath: &flagData})
	if cfg.DataPath != "from-flag.db" || cfg.LogLevel != "error" {
		t.Errorf("flag should override env only where set: %+v", cfg)
	}
}

func TestExplicitMissingFileFails(t *testing.T) {
	isolate(t)
	if _, err := Load("nope.toml"); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestUnknownKeysRejected(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ProjectFileName), `colour = "blue"`)

	_, err := Load("")
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
		ok   bool
	}{
		{"defaults", func(*Config) {}, true},
		{"memory backend", func(c *Config) { c.Backend = "Memory" }, true},
		{"unknown backend", func(c *Config) { c.Backend = "redis" }, false},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, false},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mut(cfg)
			if err := cfg.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

// chdir changes the working directory for the rest of the test and restores
// it on cleanup (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
