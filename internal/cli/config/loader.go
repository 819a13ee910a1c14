package config

import (
	"context"
	"fmt"
	"io"
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

	"github.com/katalvlaran/integ/core"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "INTEG_"

type (
	configKey struct{}
	loggerKey struct{}
)

var (
	k              = koanf.New(".")
	configFileUsed string
)

// listKeys hold comma-separated lists when read from the environment.
var listKeys = map[string]bool{"solvers": true, "pairs": true}

// findConfigFile returns explicit, or integ.yaml / integ.yml in the working
// directory, or "".
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"integ.yaml", "integ.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

// LoadConfig loads configuration with precedence
// flags > INTEG_* env > config file > defaults, then validates it.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k = koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"verbose":       false,
		"output":        DefaultOutput,
		"suite":         "",
		"solvers":       DefaultSolvers,
		"pairs":         DefaultPairs,
		"subdivisions":  DefaultSubdivisions,
		"samples":       DefaultSamples,
		"seed":          DefaultSeed,
		"unseeded":      false,
		"tolerance":     core.DefaultTolerance,
		"rel_tolerance": core.DefaultRelTolerance,
		"order":         core.DefaultOrder,
		"parallelism":   DefaultParallelism,
		"metrics_file":  "",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment: INTEG_REL_TOLERANCE -> rel_tolerance
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were set explicitly
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Decode and validate
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// GetConfigFileUsed returns the config file read by the last LoadConfig.
func GetConfigFileUsed() string {
	return configFileUsed
}

// NewLogger returns a text logger writing to w at Info, or Debug when verbose.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// WithConfig stores cfg in ctx.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config stored by WithConfig. Without one it
// returns the defaults.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}

	return &Config{
		Output:       DefaultOutput,
		Solvers:      DefaultSolvers,
		Pairs:        DefaultPairs,
		Subdivisions: DefaultSubdivisions,
		Samples:      DefaultSamples,
		Seed:         DefaultSeed,
		Tolerance:    core.DefaultTolerance,
		RelTolerance: core.DefaultRelTolerance,
		Order:        core.DefaultOrder,
		Parallelism:  DefaultParallelism,
	}
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// GetLogger retrieves the logger from ctx, or a discarding one.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}

	return slog.New(slog.DiscardHandler)
}
