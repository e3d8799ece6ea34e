package views

// SiteConfig holds site-wide settings the preview pages need.
type SiteConfig struct {
	Name string // page title prefix
	URL  string // absolute base URL, used for og:image
}

// Image is the view model of one generated card.
type Image struct {
	Slug        string
	Title       string
	GeneratedAt string
	Size        int
}

// Src is the site-relative URL of the card PNG.
func (i Image) Src() string {
	return "/og/" + i.Slug + ".png"
}

// Link is the site-relative URL of the card detail page.
func (i Image) Link() string {
	return "/images/" + i.Slug + "/"
}
