package ogmaker

import (
	"log/slog"
	"time"
)

// Config holds all configuration for an ogmaker run or preview server.
type Config struct {
	DataPath     string    // JSON input (default "data.json")
	TemplatePath string    // Background image (default "open-graph-maker-template.png")
	Fonts        FontFiles // Font files; empty paths fall back to the embedded Go fonts
	OutputDir    string    // Where <slug>.png files are written (default "output")

	DatabasePath string // Manifest SQLite path (default "data/ogmaker.db")

	Addr     string        // Preview server listen address (default ":3000")
	SiteURL  string        // Absolute base URL used in og:image tags (default "http://localhost:3000")
	CacheTTL time.Duration // Manifest cache TTL for the preview server (default 30s)
}

func (c *Config) setDefaults() {
	if c.DataPath == "" {
		c.DataPath = "data.json"
	}
	if c.TemplatePath == "" {
		c.TemplatePath = "open-graph-maker-template.png"
	}
	if c.OutputDir == "" {
		c.OutputDir = "output"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/ogmaker.db"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.SiteURL == "" {
		c.SiteURL = "http://localhost:3000"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 30 * time.Second
	}
}

// ConfigFromEnv builds a Config from OG_* environment variables. Unset
// variables keep the defaults applied by New and NewServer.
func ConfigFromEnv() Config {
	return Config{
		DataPath:     EnvOr("OG_DATA", "data.json"),
		TemplatePath: EnvOr("OG_TEMPLATE", "open-graph-maker-template.png"),
		Fonts: FontFiles{
			Display: EnvOr("OG_FONT_DISPLAY", "fonts/SofiaSansCondensed-ExtraBoldItalic.ttf"),
			Tagline: EnvOr("OG_FONT_TAGLINE", "fonts/Inter-MediumItalic.otf"),
			Body:    EnvOr("OG_FONT_BODY", "fonts/Inter-Regular.otf"),
		},
		OutputDir:    EnvOr("OG_OUTPUT_DIR", "output"),
		DatabasePath: EnvOr("OG_DATABASE", "data/ogmaker.db"),
		Addr:         EnvOr("OG_ADDR", ":3000"),
		SiteURL:      EnvOr("OG_SITE_URL", "http://localhost:3000"),
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger sets the logger used for progress and per-item warnings.
// A nil logger discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = orDiscard(l)
	}
}

// WithGenerator replaces the image generator, mainly for tests.
func WithGenerator(g ImageGenerator) Option {
	return func(a *App) {
		a.generator = g
	}
}

// WithoutManifest disables recording generated images in the SQLite manifest.
func WithoutManifest() Option {
	return func(a *App) {
		a.noManifest = true
	}
}
