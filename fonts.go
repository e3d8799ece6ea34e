package ogmaker

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/aaronkwhite/open-graph-maker/layout"
)

const fontDPI = 72

// FontFiles names the three font files used on a card.
type FontFiles struct {
	Display string // bold italic face for the title
	Tagline string // medium italic face for the tagline
	Body    string // regular face for the description
}

// FontSet holds the faces a card is drawn with. It is loaded once and never
// modified afterwards.
type FontSet struct {
	Display font.Face
	Tagline font.Face
	Body    font.Face
}

// LoadFonts parses each font file and builds its face at the card size. An
// empty path selects the matching embedded Go font.
func LoadFonts(files FontFiles) (*FontSet, error) {
	display, err := loadFace(files.Display, gobolditalic.TTF, titleSize)
	if err != nil {
		return nil, fmt.Errorf("display font: %w", err)
	}
	tagline, err := loadFace(files.Tagline, gomediumitalic.TTF, taglineSize)
	if err != nil {
		return nil, fmt.Errorf("tagline font: %w", err)
	}
	body, err := loadFace(files.Body, goregular.TTF, descriptionSize)
	if err != nil {
		return nil, fmt.Errorf("body font: %w", err)
	}
	return &FontSet{Display: display, Tagline: tagline, Body: body}, nil
}

func loadFace(path string, fallback []byte, size float64) (font.Face, error) {
	data, name := fallback, "embedded font"
	if path != "" {
		name = path
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		data = b
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingNone,
	})
}

// Measure adapts face to a layout.MeasureFunc returning pixel widths.
func Measure(face font.Face) layout.MeasureFunc {
	return func(s string) float64 {
		return float64(font.MeasureString(face, s)) / 64
	}
}
