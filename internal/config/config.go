package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultTabWidth is the indentation used when --space is absent or invalid.
	DefaultTabWidth = 4

	DefaultTheme        = "nord"
	DefaultMarkdownWrap = 100

	SortNone = "none"
	SortName = "name"
)

// Config represents the application configuration
type Config struct {
	Locale  string        `toml:"locale"`
	View    ViewConfig    `toml:"view"`
	Listing ListingConfig `toml:"listing"`
	Log     LogConfig     `toml:"log"`
}

// ViewConfig controls how file content is prepared for display
type ViewConfig struct {
	TabWidth     int    `toml:"tab_width"`
	Theme        string `toml:"theme"`
	Markdown     bool   `toml:"markdown"`
	MarkdownWrap int    `toml:"markdown_wrap"`
}

// ListingConfig controls directory enumeration
type ListingConfig struct {
	Sort           string `toml:"sort"`
	SkipUnreadable bool   `toml:"skip_unreadable"`
}

// LogConfig controls where diagnostics are written
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		View: ViewConfig{
			TabWidth:     DefaultTabWidth,
			Theme:        DefaultTheme,
			MarkdownWrap: DefaultMarkdownWrap,
		},
		Listing: ListingConfig{
			Sort: SortNone,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the location of the user's config file.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "browse", "config.toml")
}

// Load reads the config file at path. A missing file is not an error and
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.Validate()
	return cfg, nil
}

// Validate replaces out-of-range values with their defaults.
func (c *Config) Validate() {
	if c.View.TabWidth < 0 {
		c.View.TabWidth = DefaultTabWidth
	}
	if c.View.Theme == "" {
		c.View.Theme = DefaultTheme
	}
	if c.View.MarkdownWrap < 20 {
		c.View.MarkdownWrap = DefaultMarkdownWrap
	}
	switch c.Listing.Sort {
	case SortNone, SortName:
	default:
		c.Listing.Sort = SortNone
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// ParseSpace interprets the --space value. Anything that is not a
// non-negative integer falls back to DefaultTabWidth.
func ParseSpace(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return DefaultTabWidth
	}
	return n
}
