package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the CLI configuration.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
	R2G    R2GConfig    `mapstructure:"r2g"`
}

type OutputConfig struct {
	Format           string `mapstructure:"format"`
	Header           bool   `mapstructure:"header"`
	RangePrecision   int    `mapstructure:"range_precision"`
	BearingPrecision int    `mapstructure:"bearing_precision"`
	CoordPrecision   int    `mapstructure:"coord_precision"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type R2GConfig struct {
	// SnapToleranceKm is how close an input range must be to the
	// pole-to-pole distance to be snapped onto it when the bearing is
	// undetermined.
	SnapToleranceKm float64 `mapstructure:"snap_tolerance_km"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"format":         "output.format",
	"header":         "output.header",
	"log-level":      "log.level",
	"log-format":     "log.format",
	"snap-tolerance": "r2g.snap_tolerance_km",
}

// Load reads configuration from defaults, an optional coordtran.yaml,
// COORDTRAN_* environment variables and, with the highest priority, any
// flags in fs that were set. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("output.format", "text")
	v.SetDefault("output.header", false)
	v.SetDefault("output.range_precision", 3)
	v.SetDefault("output.bearing_precision", 4)
	v.SetDefault("output.coord_precision", 4)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("r2g.snap_tolerance_km", 1e-3)

	// Config file (optional)
	v.SetConfigName("coordtran")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/coordtran")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: COORDTRAN_OUTPUT_FORMAT → output.format
	v.SetEnvPrefix("COORDTRAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that configuration fields are sane.
func (c *Config) Validate() error {
	var errs []string

	switch c.Output.Format {
	case "text", "csv":
	default:
		errs = append(errs, fmt.Sprintf("output.format must be text or csv, got %q", c.Output.Format))
	}
	for _, p := range []struct {
		key string
		val int
	}{
		{"output.range_precision", c.Output.RangePrecision},
		{"output.bearing_precision", c.Output.BearingPrecision},
		{"output.coord_precision", c.Output.CoordPrecision},
	} {
		if p.val < 0 || p.val > 17 {
			errs = append(errs, fmt.Sprintf("%s must be 0-17, got %d", p.key, p.val))
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}
	if tol := c.R2G.SnapToleranceKm; tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		errs = append(errs, fmt.Sprintf("r2g.snap_tolerance_km must be finite and non-negative, got %g", tol))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
