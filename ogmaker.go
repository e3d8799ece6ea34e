// Package ogmaker renders social preview ("open graph") cards for a list of
// content items. Each item's title, tagline and description are laid out on
// a template background and saved as <slug>.png.
//
// An App reads the JSON data file, normalizes the items, renders them one by
// one through a Batch, and records each generated image in a SQLite
// manifest. The same manifest backs a small preview server (see Serve) that
// shows the generated cards in a browser.
package ogmaker

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/labstack/echo/v4"
)

// NoLimit processes every normalized item.
const NoLimit = math.MaxInt

// App wires configuration, the renderer, the manifest store and the
// preview server together.
type App struct {
	Config Config
	Echo   *echo.Echo
	Store  *Store
	Cache  *ImageCache

	logger     *slog.Logger
	generator  ImageGenerator
	noManifest bool
}

// New creates an App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		logger: orDiscard(nil),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.generator == nil {
		a.generator = NewRenderer(cfg.TemplatePath, cfg.Fonts, cfg.OutputDir)
	}
	return a
}

// Generate loads the data file and renders up to limit items. It fails only
// when the input cannot be used at all; per-item failures are logged and
// reflected in the returned Summary.
func (a *App) Generate(limit int) (Summary, error) {
	raw, err := LoadItems(a.Config.DataPath)
	if err != nil {
		return Summary{}, fmt.Errorf("ogmaker: %w", err)
	}
	items, dropped := NormalizeItems(raw, a.logger)
	if dropped > 0 {
		a.logger.Warn("skipped items with missing fields", "dropped", dropped, "kept", len(items))
	}

	batch := &Batch{Generator: a.generator, Logger: a.logger}
	if !a.noManifest {
		if err := a.openStore(); err != nil {
			a.logger.Warn("manifest unavailable, images will not be recorded", "err", err)
		} else {
			batch.Recorder = a.Store
		}
	}
	summary := batch.Run(items, limit)
	if a.Cache != nil {
		a.Cache.Invalidate()
	}
	return summary, nil
}

func (a *App) openStore() error {
	if a.Store != nil {
		return nil
	}
	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	a.Store = store
	return nil
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
