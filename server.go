package ogmaker

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler builds the preview server's Echo instance without starting it.
func (a *App) Handler() (*echo.Echo, error) {
	if err := a.openStore(); err != nil {
		return nil, fmt.Errorf("ogmaker: %w", err)
	}
	if a.Cache == nil {
		a.Cache = NewImageCache(a.Store, a.Config.CacheTTL)
	}
	if a.Echo == nil {
		a.Echo = echo.New()
		a.Echo.HideBanner = true
		a.setupMiddleware()
		a.setupRoutes()
	}
	return a.Echo, nil
}

// Serve starts the preview server on Config.Addr and blocks until it stops.
func (a *App) Serve() error {
	e, err := a.Handler()
	if err != nil {
		return err
	}
	a.logger.Info("serving previews", "addr", a.Config.Addr, "output", a.Config.OutputDir)
	if err := e.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/og", a.Config.OutputDir)
	e.GET("/healthz", handleHealth)
	e.GET("/", a.handleGallery)
	e.GET("/images/:slug/", a.handleImage)
	e.GET("/api/images/", a.handleAPIImages)
}
