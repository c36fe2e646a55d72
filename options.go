package glimgui

import "log/slog"

// Option configures a Backend.
type Option func(*Config)

// WithConfig replaces the whole configuration, e.g. one from LoadConfig.
// Options after it still apply.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithWindowSize sets the initial window size in screen coordinates.
func WithWindowSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithFont loads a TrueType/OpenType font file at the given pixel size
// instead of the toolkit's built-in font.
func WithFont(path string, size float32) Option {
	return func(c *Config) {
		c.FontFile = path
		c.FontSize = size
	}
}

// WithFontFamily loads the installed system font of the given family at
// the given pixel size. A font set with WithFont takes precedence.
func WithFontFamily(family string, size float32) Option {
	return func(c *Config) {
		c.FontFamily = family
		c.FontSize = size
	}
}

// WithClearColor sets the framebuffer clear color (RGBA, 0..1).
func WithClearColor(r, g, b, a float32) Option {
	return func(c *Config) { c.ClearColor = [4]float32{r, g, b, a} }
}

// WithTheme selects a theme by name. See ThemeByName.
func WithTheme(name string) Option {
	return func(c *Config) { c.Theme = name }
}

// WithVSync enables or disables waiting for vertical sync on swap.
func WithVSync(enabled bool) Option {
	return func(c *Config) { c.VSync = enabled }
}

// WithIniFilename sets the file the toolkit persists window layout to.
func WithIniFilename(name string) Option {
	return func(c *Config) { c.IniFilename = name }
}

// WithLogger sets the logger diagnostics are written to.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithToolkit replaces the GUI toolkit binding.
func WithToolkit(t Toolkit) Option {
	return func(c *Config) { c.Toolkit = t }
}

// WithPlatform replaces the windowing/input layer.
func WithPlatform(f PlatformFactory) Option {
	return func(c *Config) { c.NewPlatform = f }
}

// WithRenderer replaces the graphics layer.
func WithRenderer(f RendererFactory) Option {
	return func(c *Config) { c.NewRenderer = f }
}

// WithFontFinder replaces the system font lookup used for WithFontFamily.
func WithFontFinder(f FontFinder) Option {
	return func(c *Config) { c.FindFont = f }
}
