package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Scoring ScoringConfig `mapstructure:"scoring"`
	Output  OutputConfig  `mapstructure:"output"`
}

type AppConfig struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // text or json
}

type ScoringConfig struct {
	// SeatWind is E, S, W or N. Empty leaves Triplet of Seat Wind unevaluated.
	SeatWind string `mapstructure:"seat_wind"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"` // text, yaml or json
}

// flagKeys maps command line flag names onto config keys.
var flagKeys = map[string]string{
	"log-level":  "app.log_level",
	"log-format": "app.log_format",
	"seat":       "scoring.seat_wind",
	"format":     "output.format",
}

// Load reads configuration from defaults, then the YAML file at path (if not
// empty), then ZUNGJUNG_* environment variables, then any flags set in fs.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("app.log_level", "warn")
	v.SetDefault("app.log_format", "text")
	v.SetDefault("scoring.seat_wind", "")
	v.SetDefault("output.format", "text")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("zungjung")
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
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if _, err := c.App.Level(); err != nil {
		return err
	}
	switch c.App.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("app.log_format: unknown format %q", c.App.LogFormat)
	}
	switch strings.ToUpper(c.Scoring.SeatWind) {
	case "", "E", "S", "W", "N":
	default:
		return fmt.Errorf("scoring.seat_wind: want E, S, W or N, got %q", c.Scoring.SeatWind)
	}
	switch c.Output.Format {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	return nil
}

// Level parses LogLevel as a slog level name (debug, info, warn, error).
func (a AppConfig) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.LogLevel)); err != nil {
		return level, fmt.Errorf("app.log_level: %w", err)
	}
	return level, nil
}
