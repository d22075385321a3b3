// Package config loads CLI configuration from a YAML file, environment
// variables, and command-line flags, in that ascending priority order.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const envPrefix = "CHRONLANG_"

// ContextKey is the context.Value key under which the resolved Config
// is stored by the root command's PersistentPreRunE, and read back by
// every subcommand.
type ContextKey struct{}

// Config is the resolved CLI configuration.
type Config struct {
	SourcesDir   string `koanf:"sources-dir"`
	ManifestPath string `koanf:"manifest"`
	Extension    string `koanf:"extension"`
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
}

// Defaults returns the configuration used when no file, environment
// variable, or flag overrides a field.
func Defaults() Config {
	return Config{
		SourcesDir:   ".",
		ManifestPath: "chronlang.yaml",
		Extension:    ".chron",
		OutputFormat: "table",
	}
}

var configFileUsed string

// Load resolves configuration from path (if it exists), environment
// variables prefixed CHRONLANG_, and flags, in that order of
// increasing precedence.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	defaults := Defaults()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"sources-dir": defaults.SourcesDir,
		"manifest":    defaults.ManifestPath,
		"extension":   defaults.Extension,
		"output":      defaults.OutputFormat,
		"verbose":     defaults.Verbose,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("config: loading defaults: %w", err)
	}

	if path == "" {
		path = "chronlang.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: loading %s: %w", path, err)
		}
		configFileUsed = path
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: loading environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("config: loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}
	return &cfg, nil
}

// GetConfigFileUsed returns the path of the config file actually read,
// or empty if none was found.
func GetConfigFileUsed() string { return configFileUsed }

// envKey maps CHRONLANG_SOURCES_DIR to the config key "sources-dir".
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", "-")
}

// NewLogger builds the slog logger the CLI uses for its commands: a
// text handler on stderr, debug level when verbose is set.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
