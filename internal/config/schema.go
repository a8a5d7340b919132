package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// DefaultSchedule is the schedule shown when none is given: every minute of
// weekday nights plus all of the weekend.
const DefaultSchedule = "* 0-5,18-23 * * 1-5 | * * * * 0,6"

// ---- Server ----------------------------------------------------------------

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string `yaml:"addr" env:"CRONVIZ_ADDR"`
}

func defaultServerConfig() ServerConfig {
	return ServerConfig{Addr: "127.0.0.1:8080"}
}

// ---- Root config -----------------------------------------------------------

// Config is the root configuration object, loaded from ~/.cronviz/config.yaml.
type Config struct {
	FirstWeekday   string            `yaml:"first_weekday" env:"CRONVIZ_FIRST_WEEKDAY"`
	Timezone       string            `yaml:"timezone" env:"CRONVIZ_TZ"`
	ThumbnailCells int               `yaml:"thumbnail_cells" env:"CRONVIZ_THUMBNAIL_CELLS"`
	LogLevel       string            `yaml:"log_level" env:"CRONVIZ_LOG_LEVEL"`
	Server         ServerConfig      `yaml:"server"`
	Schedules      map[string]string `yaml:"schedules,omitempty"`
}

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() Config {
	return Config{
		FirstWeekday:   "monday",
		Timezone:       "Local",
		ThumbnailCells: 288,
		LogLevel:       "info",
		Server:         defaultServerConfig(),
	}
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// ParseWeekday accepts an English weekday name or its three-letter
// abbreviation, in any case.
func ParseWeekday(name string) (time.Weekday, error) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
	return wd, nil
}

// Weekday returns the configured first day of the week.
func (c *Config) Weekday() (time.Weekday, error) {
	if c.FirstWeekday == "" {
		return time.Monday, nil
	}
	return ParseWeekday(c.FirstWeekday)
}

// Location resolves the configured time zone. An empty value or "Local"
// selects the system zone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local", "local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// SlogLevel maps LogLevel onto a slog level; unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// ResolveSchedule returns the schedule saved under arg, arg itself when no
// such name exists, or DefaultSchedule when arg is empty.
func (c *Config) ResolveSchedule(arg string) string {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return DefaultSchedule
	}
	if raw, ok := c.Schedules[arg]; ok {
		return raw
	}
	return arg
}

// Validate checks the values that Load cannot repair.
func (c *Config) Validate() error {
	if _, err := c.Weekday(); err != nil {
		return fmt.Errorf("first_weekday: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.ThumbnailCells < 0 || c.ThumbnailCells > 24*60 {
		return fmt.Errorf("thumbnail_cells: %d outside [0-1440]", c.ThumbnailCells)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr: empty")
	}
	return nil
}
