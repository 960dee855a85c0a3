package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/michaelangeloio/qapp/internal/app"
	"github.com/michaelangeloio/qapp/internal/icon"
)

// Config captures runtime configuration for the application. Flags and Args
// are filled in by the CLI layer after parsing so the startup trace can
// record the resolved invocation.
type Config struct {
	App     app.Config
	Logging Logging
	Icons   []icon.Mapping
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigPath = "QAPP_CONFIG"
	envAppsDir    = "QAPP_APPS_DIR"
	envNoFooter   = "QAPP_NO_FOOTER"
	envVerbose    = "QAPP_VERBOSE"
	envTrace      = "QAPP_TRACE"
	envLogFile    = "QAPP_LOG_FILE"
)

// Load resolves configuration from the environment and the optional TOML
// config file. Values resolved here become the defaults for the CLI flags,
// so the precedence ends up flag over environment over file.
func Load() (Config, error) {
	return LoadEnviron(os.Environ())
}

// LoadEnviron allows tests to supply a specific environment.
func LoadEnviron(environ []string) (Config, error) {
	env := parseEnv(environ)

	file, err := loadFile(configPath(env))
	if err != nil {
		return Config{}, err
	}

	footer := true
	if file.UI.Footer != nil {
		footer = *file.UI.Footer
	}
	if envOrBool(env, envNoFooter, false) {
		footer = false
	}

	verbose := false
	if file.UI.Verbose != nil {
		verbose = *file.UI.Verbose
	}
	verbose = envOrBool(env, envVerbose, verbose)

	trace := false
	if file.Logging.Trace != nil {
		trace = *file.Logging.Trace
	}
	trace = envOrBool(env, envTrace, trace)

	cfg := Config{
		App: app.Config{
			AppsDir:    envOrDefault(env, envAppsDir, file.Scan.AppsDir),
			ShowFooter: footer,
			Verbose:    verbose,
		},
		Logging: Logging{
			FilePath: envOrDefault(env, envLogFile, file.Logging.File),
			Trace:    trace,
		},
		Icons: iconMappings(file.Icons),
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the resolved configuration is usable.
func Validate(cfg Config) error {
	for _, m := range cfg.Icons {
		if strings.TrimSpace(m.Pattern) == "" {
			return fmt.Errorf("icon override with empty pattern")
		}
		if m.Glyph == "" {
			return fmt.Errorf("icon override %q missing glyph", m.Pattern)
		}
	}
	return nil
}

// TraceFlags renders the resolved flag values the way the startup trace
// payload records them.
func TraceFlags(cfg Config) map[string]string {
	return map[string]string{
		"appsDir": cfg.App.AppsDir,
		"footer":  strconv.FormatBool(cfg.App.ShowFooter),
		"verbose": strconv.FormatBool(cfg.App.Verbose),
		"trace":   strconv.FormatBool(cfg.Logging.Trace),
		"logFile": cfg.Logging.FilePath,
	}
}

type fileConfig struct {
	UI      fileUI      `toml:"ui"`
	Logging fileLogging `toml:"logging"`
	Scan    fileScan    `toml:"scan"`
	Icons   []fileIcon  `toml:"icons"`
}

type fileUI struct {
	Footer  *bool `toml:"footer"`
	Verbose *bool `toml:"verbose"`
}

type fileLogging struct {
	File  string `toml:"file"`
	Trace *bool  `toml:"trace"`
}

type fileScan struct {
	AppsDir string `toml:"apps_dir"`
}

type fileIcon struct {
	Pattern string `toml:"pattern"`
	Glyph   string `toml:"glyph"`
}

func configPath(env map[string]string) string {
	if p, ok := env[envConfigPath]; ok && strings.TrimSpace(p) != "" {
		return p
	}
	configHome := env["XDG_CONFIG_HOME"]
	if strings.TrimSpace(configHome) == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "qapp", "config.toml")
}

func loadFile(path string) (fileConfig, error) {
	var parsed fileConfig
	if strings.TrimSpace(path) == "" {
		return parsed, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return parsed, nil
		}
		return parsed, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return parsed, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return parsed, nil
}

func iconMappings(entries []fileIcon) []icon.Mapping {
	if len(entries) == 0 {
		return nil
	}
	mappings := make([]icon.Mapping, len(entries))
	for i, entry := range entries {
		mappings[i] = icon.Mapping{Pattern: entry.Pattern, Glyph: entry.Glyph}
	}
	return mappings
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
