package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// DefaultDataPath is where both tools look for the catalog when no path is
// configured.
const DefaultDataPath = "./menu.json"

// EnvPrefix is the prefix of environment variables mapped onto config keys,
// e.g. MENUKIT_DATA.
const EnvPrefix = "MENUKIT"

// FileName is the config file base name searched in the working and home
// directories.
const FileName = ".menukit"

// DefaultMax is the selection cap used when none (or an unusable one) is given.
const DefaultMax = 8

// Config holds the resolved runtime configuration for one invocation.
// Values are populated from .menukit.toml, MENUKIT_* env vars, and CLI flags.
type Config struct {
	DataPath string `mapstructure:"data" toml:"data"`
	MaxRaw   string `mapstructure:"max" toml:"max"`
	Journal  string `mapstructure:"journal" toml:"journal,omitempty"`
	Verbose  bool   `mapstructure:"verbose" toml:"verbose"`
	NoColor  bool   `mapstructure:"no_color" toml:"no_color"`

	// DataExplicit is true when the data path came from a flag, env var or
	// config file rather than the built-in default.
	DataExplicit bool `mapstructure:"-" toml:"-"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("data", "")
	viper.SetDefault("max", strconv.Itoa(DefaultMax))
	viper.SetDefault("journal", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("no_color", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	cfg.DataPath = strings.TrimSpace(cfg.DataPath)
	if cfg.DataPath == "" {
		cfg.DataPath = DefaultDataPath
	} else {
		cfg.DataExplicit = true
	}
	return cfg, nil
}

// Max returns the selection cap. Values that are not positive finite
// numbers fall back to DefaultMax; fractions are floored, minimum one.
func (c Config) Max() int {
	return ParseMax(c.MaxRaw)
}

// ParseMax interprets a user-supplied selection cap.
func ParseMax(raw string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return DefaultMax
	}
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	return max(int(math.Floor(v)), 1)
}
