package views

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// buildURL joins path segments onto a base URL. A trailing slash on the
// last segment is kept.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if n := len(pathSegments); n > 0 && strings.HasSuffix(pathSegments[n-1], "/") && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// humanSize formats a byte count as B, KB or MB.
func humanSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// pageTitle prefixes title with the site name.
func pageTitle(site SiteConfig, title string) string {
	name := strings.TrimSpace(site.Name)
	if name == "" {
		return title
	}
	return title + " | " + name
}
