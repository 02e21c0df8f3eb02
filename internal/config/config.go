package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	yaml "go.yaml.in/yaml/v3"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	DatabasePath         string `yaml:"database_path"`
	TickInterval         string `yaml:"tick_interval"`
	EventBuffer          int    `yaml:"event_buffer"`
	DefaultSnoozeMinutes uint   `yaml:"default_snooze_minutes"`
	Log                  Log    `yaml:"log"`
}

type Log struct {
	Level   string `yaml:"level"`
	File    string `yaml:"file"`
	Console bool   `yaml:"console"`
}

func Default() Config {
	return Config{
		DatabasePath:         "clockd.db",
		TickInterval:         "1s",
		EventBuffer:          16,
		DefaultSnoozeMinutes: 10,
		Log: Log{
			Level: "info",
			File:  "clockd.log",
		},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overlays CLOCKD_* variables on base.
func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("CLOCKD_DB"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := getEnvString("CLOCKD_TICK_INTERVAL"); ok {
		cfg.TickInterval = v
	}
	if v, ok := getEnvInt("CLOCKD_EVENT_BUFFER"); ok && v > 0 {
		cfg.EventBuffer = v
	}
	if v, ok := getEnvInt("CLOCKD_SNOOZE_MINUTES"); ok && v > 0 {
		cfg.DefaultSnoozeMinutes = uint(v)
	}
	if v, ok := getEnvString("CLOCKD_LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := getEnvString("CLOCKD_LOG_FILE"); ok {
		cfg.Log.File = v
	}
	if v, ok := getEnvBool("CLOCKD_LOG_CONSOLE"); ok {
		cfg.Log.Console = v
	}
	return cfg
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("%w: database_path is required", ErrInvalidConfig)
	}
	if _, err := c.Interval(); err != nil {
		return err
	}
	if c.EventBuffer <= 0 {
		return fmt.Errorf("%w: event_buffer must be > 0", ErrInvalidConfig)
	}
	if c.DefaultSnoozeMinutes == 0 {
		return fmt.Errorf("%w: default_snooze_minutes must be > 0", ErrInvalidConfig)
	}
	return nil
}

// Interval parses TickInterval, defaulting to one second when empty.
func (c Config) Interval() (time.Duration, error) {
	raw := strings.TrimSpace(c.TickInterval)
	if raw == "" {
		return time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: tick_interval %q: %w", ErrInvalidConfig, c.TickInterval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: tick_interval must be > 0", ErrInvalidConfig)
	}
	return d, nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
