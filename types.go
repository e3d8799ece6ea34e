package ogmaker

// RawItem is one record of the input data array, decoded as-is.
type RawItem map[string]any

// Item is a validated input record ready to be rendered.
type Item struct {
	Title       string
	Tagline     string
	Description string
	Slug        string         // derived from Title by Slugify
	Extra       map[string]any // unrecognised input fields, carried along unused
}

// Generated pairs an item title with the image path written for it.
type Generated struct {
	Title string
	Path  string
}

// Summary reports the outcome of one batch run.
type Summary struct {
	Total     int // normalized items available
	Attempted int // items handed to the generator after the limit
	Generated []Generated
}

// ImageRecord is the manifest entry stored for each generated image.
type ImageRecord struct {
	Slug        string
	Title       string
	Path        string
	Size        int
	GeneratedAt string // RFC3339, UTC
}
