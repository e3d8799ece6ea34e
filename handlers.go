package ogmaker

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/aaronkwhite/open-graph-maker/views"
)

func (a *App) siteConfig() views.SiteConfig {
	return views.SiteConfig{Name: "Open Graph Maker", URL: a.Config.SiteURL}
}

func (a *App) notFoundPage() templ.Component {
	return views.NotFound(a.siteConfig())
}

// renderPage writes a preview page as an HTTP 200 HTML response.
func renderPage(c echo.Context, page templ.Component) error {
	return renderPageStatus(c, http.StatusOK, page)
}

// renderPageStatus writes a preview page with a specific HTTP status code.
func renderPageStatus(c echo.Context, code int, page templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return page.Render(c.Request().Context(), c.Response().Writer)
}

func toView(img ImageRecord) views.Image {
	return views.Image{
		Slug:        img.Slug,
		Title:       img.Title,
		GeneratedAt: img.GeneratedAt,
		Size:        img.Size,
	}
}

func (a *App) handleGallery(c echo.Context) error {
	images, err := a.Cache.ListImages()
	if err != nil {
		return err
	}
	list := make([]views.Image, len(images))
	for i, img := range images {
		list[i] = toView(img)
	}
	return renderPage(c, views.Gallery(a.siteConfig(), list))
}

func (a *App) handleImage(c echo.Context) error {
	img, err := a.Cache.GetImage(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return renderPageStatus(c, http.StatusNotFound, a.notFoundPage())
		}
		return err
	}
	return renderPage(c, views.Detail(a.siteConfig(), toView(img)))
}

// imageJSON is the manifest entry served by the JSON API.
type imageJSON struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Size        int    `json:"size"`
	GeneratedAt string `json:"generated_at"`
}

func (a *App) handleAPIImages(c echo.Context) error {
	images, err := a.Cache.ListImages()
	if err != nil {
		return err
	}
	out := make([]imageJSON, len(images))
	for i, img := range images {
		out[i] = imageJSON{
			Slug:        img.Slug,
			Title:       img.Title,
			URL:         toView(img).Src(),
			Size:        img.Size,
			GeneratedAt: img.GeneratedAt,
		}
	}
	return c.JSON(http.StatusOK, out)
}

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
