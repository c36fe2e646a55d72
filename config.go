package glimgui

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Default window and frame settings.
const (
	DefaultWidth    = 1280
	DefaultHeight   = 720
	DefaultTitle    = "glimgui"
	DefaultFontSize = 13
)

// DefaultClearColor is the color the framebuffer is cleared to before the
// GUI draw data is submitted.
var DefaultClearColor = [4]float32{0.45, 0.55, 0.60, 1.00}

// Config holds everything the backend needs at Init.
// The yaml-tagged fields can be loaded from a file with LoadConfig.
type Config struct {
	// Window
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`

	// Font. FontFile wins over FontFamily, which is looked up among the
	// system fonts. With neither set the toolkit's built-in font is used.
	FontFile   string  `yaml:"font_file"`
	FontFamily string  `yaml:"font_family"`
	FontSize   float32 `yaml:"font_size"`

	// Rendering
	ClearColor [4]float32 `yaml:"clear_color"`
	Theme      string     `yaml:"theme"`

	// IniFilename is where the toolkit persists window positions.
	// Empty disables persistence.
	IniFilename string `yaml:"ini_filename"`

	LogLevel string `yaml:"log_level"`

	Logger      *slog.Logger    `yaml:"-"`
	Toolkit     Toolkit         `yaml:"-"`
	NewPlatform PlatformFactory `yaml:"-"`
	NewRenderer RendererFactory `yaml:"-"`
	FindFont    FontFinder      `yaml:"-"`
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Title:      DefaultTitle,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		VSync:      true,
		FontSize:   DefaultFontSize,
		ClearColor: DefaultClearColor,
		Theme:      ThemeCorporateGray,
		LogLevel:   "info",
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// A missing file is not an error and yields the defaults. A leading ~ in
// path or font_file is expanded to the user's home directory.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config path: %w", err)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.FontFile, err = homedir.Expand(cfg.FontFile); err != nil {
		return cfg, fmt.Errorf("config %s: font_file: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if (c.FontFile != "" || c.FontFamily != "") && !(c.FontSize > 0) {
		return fmt.Errorf("%w: font size %g", ErrInvalidConfig, c.FontSize)
	}
	for i, v := range c.ClearColor {
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("%w: clear color component %d is %g, want [0,1]", ErrInvalidConfig, i, v)
		}
	}
	if _, err := ThemeByName(c.Theme); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := ResolveLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// logger returns the configured logger, or a stderr text logger at
// LogLevel.
func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	l, err := NewLogger(nil, c.LogLevel)
	if err != nil {
		l, _ = NewLogger(nil, "info")
	}
	return l
}
