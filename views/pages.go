// Package views renders the preview server pages as templ components.
package views

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const style = `body{font-family:system-ui,sans-serif;margin:2rem;background:#f4f1ea;color:#282725}` +
	`.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(360px,1fr));gap:1.5rem}` +
	`figure{margin:0}img{width:100%;height:auto;border:1px solid #ddd}` +
	`figcaption{font-size:.9rem;margin-top:.4rem}.meta{color:#777}`

// page wraps body in the shared document shell. head holds extra tags for
// the <head> element and must already be escaped.
func page(w io.Writer, title, head, body string) error {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
	b.WriteString("<title>" + html.EscapeString(title) + "</title>")
	b.WriteString(head)
	b.WriteString("<style>" + style + "</style></head><body>")
	b.WriteString(body)
	b.WriteString("</body></html>")
	_, err := io.WriteString(w, b.String())
	return err
}

// Gallery lists every generated card, newest first.
func Gallery(site SiteConfig, images []Image) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Open Graph images</h1>")
		if len(images) == 0 {
			b.WriteString("<p>No images have been generated yet.</p>")
			return page(w, pageTitle(site, "Gallery"), "", b.String())
		}
		b.WriteString("<div class=\"grid\">")
		for _, img := range images {
			b.WriteString("<figure><a href=\"" + html.EscapeString(img.Link()) + "\">")
			b.WriteString("<img src=\"" + html.EscapeString(img.Src()) + "\" alt=\"" + html.EscapeString(img.Title) + "\" loading=\"lazy\"></a>")
			b.WriteString("<figcaption>" + html.EscapeString(img.Title))
			b.WriteString(" <span class=\"meta\">" + html.EscapeString(img.GeneratedAt) + "</span></figcaption></figure>")
		}
		b.WriteString("</div>")
		return page(w, pageTitle(site, "Gallery"), "", b.String())
	})
}

// Detail shows one card with the meta tags a page using it would carry.
func Detail(site SiteConfig, img Image) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		imageURL := buildURL(site.URL, img.Src())
		pageURL := buildURL(site.URL, img.Link())

		var head strings.Builder
		meta := func(attr, key, value string) {
			head.WriteString("<meta " + attr + "=\"" + key + "\" content=\"" + html.EscapeString(value) + "\">")
		}
		meta("property", "og:title", img.Title)
		meta("property", "og:type", "website")
		meta("property", "og:url", pageURL)
		meta("property", "og:image", imageURL)
		meta("property", "og:image:width", "1200")
		meta("property", "og:image:height", "630")
		meta("name", "twitter:card", "summary_large_image")
		meta("name", "twitter:image", imageURL)

		var b strings.Builder
		b.WriteString("<p><a href=\"/\">&larr; All images</a></p>")
		b.WriteString("<h1>" + html.EscapeString(img.Title) + "</h1>")
		b.WriteString("<img src=\"" + html.EscapeString(img.Src()) + "\" alt=\"" + html.EscapeString(img.Title) + "\" width=\"1200\" height=\"630\">")
		b.WriteString("<p class=\"meta\">" + html.EscapeString(img.Slug) + ".png &middot; " + humanSize(img.Size) +
			" &middot; " + html.EscapeString(img.GeneratedAt) + "</p>")
		return page(w, pageTitle(site, img.Title), head.String(), b.String())
	})
}

// NotFound is the 404 page.
func NotFound(site SiteConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return page(w, pageTitle(site, "Not found"), "",
			"<h1>Not found</h1><p>No image matches that address. <a href=\"/\">Back to the gallery</a>.</p>")
	})
}
