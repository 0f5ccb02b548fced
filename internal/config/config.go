package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the root configuration for twt, stored in ~/.twt/config.yaml.
// Every key can be overridden with a TWT_ environment variable, e.g.
// TWT_REST_DAY or TWT_LOG_LEVEL.
type Config struct {
	// DataDir is the root of the day-file store.
	DataDir string `mapstructure:"data_dir"`
	// RestDay is the weekly rest day, e.g. "sunday".
	RestDay string `mapstructure:"rest_day"`
	// BodyweightKg counts as the weight of sets logged without one.
	BodyweightKg float64 `mapstructure:"bodyweight_kg"`
	// RestSeconds is the default length of the rest timer.
	RestSeconds int `mapstructure:"rest_seconds"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig holds the diagnostics settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
	JSON  bool   `mapstructure:"json"`
}

const (
	DefaultRestDay     = "sunday"
	DefaultRestSeconds = 90
	DefaultLogLevel    = "warn"

	envPrefix = "TWT"
)

// ErrInvalid is returned for configuration values that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// configTemplate is the annotated config written on first run.
const configTemplate = `# twt configuration – ~/.twt/config.yaml
#
# All settings are optional; the defaults below work out of the box.
# Every key can also be set through the environment, e.g. TWT_REST_DAY=monday
# or TWT_LOG_LEVEL=debug.

# Directory holding the day files (YYYY/MM/DD.json). "~" is expanded.
data_dir: ~/.twt

# Weekly rest day. Missing a workout on this day does not count as absent.
rest_day: sunday

# Your bodyweight in kg. Sets logged without a weight (push-ups, pull-ups)
# count at bodyweight in the per-exercise volume. 0 disables this.
bodyweight_kg: 0

# Default rest timer length in seconds. Override with: twt rest <seconds>
rest_seconds: 90

log:
  # trace, debug, info, warn, error or fatal
  level: warn
  # Write diagnostics to this file (rotated) instead of stderr.
  file: ""
  # Emit diagnostics as JSON lines.
  json: false
`

// New returns a viper instance with defaults and environment overrides set
// up. Flags may be bound to it before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", filepath.Join("~", ".twt"))
	v.SetDefault("rest_day", DefaultRestDay)
	v.SetDefault("bodyweight_kg", 0)
	v.SetDefault("rest_seconds", DefaultRestSeconds)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", "")
	v.SetDefault("log.json", false)
	return v
}

// DefaultPath returns the path to ~/.twt/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".twt", "config.yaml"), nil
}

// Load reads the config file at path into v, creating it with annotated
// defaults on first run, and returns the validated result.
func Load(v *viper.Viper, path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			log.Warnf("could not create config file %s: %v", path, writeErr)
		}
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); !errors.Is(statErr, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	dir, err := expandHome(cfg.DataDir)
	if err != nil {
		return Config{}, err
	}
	cfg.DataDir = dir

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := ParseWeekday(c.RestDay); err != nil {
		return err
	}
	if c.BodyweightKg < 0 {
		return fmt.Errorf("%w: bodyweight_kg must not be negative, got %v", ErrInvalid, c.BodyweightKg)
	}
	if c.RestSeconds <= 0 {
		return fmt.Errorf("%w: rest_seconds must be positive, got %d", ErrInvalid, c.RestSeconds)
	}
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir is empty", ErrInvalid)
	}
	return nil
}

// RestWeekday returns the configured rest day.
func (c Config) RestWeekday() time.Weekday {
	d, err := ParseWeekday(c.RestDay)
	if err != nil {
		return time.Sunday
	}
	return d
}

// RestDuration returns the default rest timer length.
func (c Config) RestDuration() time.Duration {
	return time.Duration(c.RestSeconds) * time.Second
}

// ParseWeekday parses an English weekday name or its three-letter prefix.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) >= 3 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			name := strings.ToLower(d.String())
			if strings.HasPrefix(name, s) {
				return d, nil
			}
		}
	}
	return time.Sunday, fmt.Errorf("%w: unknown weekday %q", ErrInvalid, s)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
