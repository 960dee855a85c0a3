package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvironDefaults(t *testing.T) {
	cfg, err := LoadEnviron([]string{"XDG_CONFIG_HOME=" + t.TempDir()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled by default")
	}
	if cfg.App.Verbose || cfg.Logging.Trace {
		t.Fatalf("expected verbose and trace off by default")
	}
	if cfg.App.AppsDir != "" {
		t.Fatalf("expected empty apps dir default, got %q", cfg.App.AppsDir)
	}
	if len(cfg.Icons) != 0 {
		t.Fatalf("expected no icon overrides, got %v", cfg.Icons)
	}
}

func TestLoadEnvironOverrides(t *testing.T) {
	cfg, err := LoadEnviron([]string{
		"XDG_CONFIG_HOME=" + t.TempDir(),
		"QAPP_NO_FOOTER=1",
		"QAPP_VERBOSE=true",
		"QAPP_TRACE=true",
		"QAPP_LOG_FILE=/tmp/qapp-test.log",
		"QAPP_APPS_DIR=/tmp/apps",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled")
	}
	if !cfg.App.Verbose || !cfg.Logging.Trace {
		t.Fatalf("expected verbose and trace enabled")
	}
	if cfg.Logging.FilePath != "/tmp/qapp-test.log" {
		t.Fatalf("unexpected log file %q", cfg.Logging.FilePath)
	}
	if cfg.App.AppsDir != "/tmp/apps" {
		t.Fatalf("unexpected apps dir %q", cfg.App.AppsDir)
	}
}

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEnvironReadsConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
[ui]
footer = false
verbose = true

[logging]
file = "/tmp/from-file.log"
trace = true

[scan]
apps_dir = "/opt/apps"

[[icons]]
pattern = "Alacritty"
glyph = "A"

[[icons]]
pattern = "Zellij"
glyph = "Z"
`)
	cfg, err := LoadEnviron([]string{"QAPP_CONFIG=" + path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled via file")
	}
	if !cfg.App.Verbose || !cfg.Logging.Trace {
		t.Fatalf("expected verbose and trace enabled via file")
	}
	if cfg.Logging.FilePath != "/tmp/from-file.log" {
		t.Fatalf("unexpected log file %q", cfg.Logging.FilePath)
	}
	if cfg.App.AppsDir != "/opt/apps" {
		t.Fatalf("unexpected apps dir %q", cfg.App.AppsDir)
	}
	if len(cfg.Icons) != 2 || cfg.Icons[0].Pattern != "Alacritty" || cfg.Icons[1].Glyph != "Z" {
		t.Fatalf("unexpected icon overrides %v", cfg.Icons)
	}
}

func TestEnvironmentBeatsConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
[logging]
file = "/tmp/from-file.log"
`)
	cfg, err := LoadEnviron([]string{
		"QAPP_CONFIG=" + path,
		"QAPP_LOG_FILE=/tmp/from-env.log",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.FilePath != "/tmp/from-env.log" {
		t.Fatalf("expected environment to win, got %q", cfg.Logging.FilePath)
	}
}

func TestMissingConfigFileIsFine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	if _, err := LoadEnviron([]string{"QAPP_CONFIG=" + path}); err != nil {
		t.Fatalf("expected missing file to be tolerated, got %v", err)
	}
}

func TestMalformedConfigFileFails(t *testing.T) {
	path := writeConfigFile(t, "not [valid toml")
	if _, err := LoadEnviron([]string{"QAPP_CONFIG=" + path}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidateRejectsBadIconOverrides(t *testing.T) {
	path := writeConfigFile(t, `
[[icons]]
pattern = ""
glyph = "X"
`)
	if _, err := LoadEnviron([]string{"QAPP_CONFIG=" + path}); err == nil {
		t.Fatalf("expected validation error for empty pattern")
	}

	path = writeConfigFile(t, `
[[icons]]
pattern = "Thing"
glyph = ""
`)
	if _, err := LoadEnviron([]string{"QAPP_CONFIG=" + path}); err == nil {
		t.Fatalf("expected validation error for empty glyph")
	}
}

func TestEnvOrBoolParsing(t *testing.T) {
	env := map[string]string{"A": "true", "B": "0", "C": "garbage", "D": " "}
	if !envOrBool(env, "A", false) {
		t.Fatalf("expected true for A")
	}
	if envOrBool(env, "B", true) {
		t.Fatalf("expected false for B")
	}
	if !envOrBool(env, "C", true) {
		t.Fatalf("expected fallback for garbage value")
	}
	if !envOrBool(env, "D", true) {
		t.Fatalf("expected fallback for blank value")
	}
	if envOrBool(env, "missing", false) {
		t.Fatalf("expected fallback for missing key")
	}
}
