package ogmaker

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/aaronkwhite/open-graph-maker/layout"
)

// Card geometry, in pixels. Text y coordinates are baselines.
const (
	CardWidth  = 1200
	CardHeight = 630

	textX        = 80
	textMaxWidth = 900

	titleY          = 400
	titleSize       = 68
	titleLineHeight = 90

	taglineY    = 470
	taglineSize = 32

	descriptionY          = 530
	descriptionSize       = 20
	descriptionLineHeight = 32
	descriptionMaxLength  = 160
)

var textColor = color.RGBA{R: 0x28, G: 0x27, B: 0x25, A: 0xff}

// ImageGenerator turns one item into an image file and returns its path.
type ImageGenerator interface {
	Generate(item Item) (string, error)
}

// Renderer draws cards onto the template background. The template and fonts
// are loaded on the first render and shared by every render after it; a
// load failure is reported for each item instead of aborting the caller.
type Renderer struct {
	templatePath string
	fontFiles    FontFiles
	outputDir    string

	once       sync.Once
	background *image.RGBA
	fonts      *FontSet
	loadErr    error
}

// NewRenderer creates a Renderer that reads the template at templatePath and
// writes PNGs into outputDir.
func NewRenderer(templatePath string, fonts FontFiles, outputDir string) *Renderer {
	return &Renderer{templatePath: templatePath, fontFiles: fonts, outputDir: outputDir}
}

func (r *Renderer) load() error {
	r.once.Do(func() {
		bg, err := loadBackground(r.templatePath)
		if err != nil {
			r.loadErr = fmt.Errorf("load template: %w", err)
			return
		}
		r.background = bg
		fonts, err := LoadFonts(r.fontFiles)
		if err != nil {
			r.loadErr = fmt.Errorf("load fonts: %w", err)
			return
		}
		r.fonts = fonts
	})
	return r.loadErr
}

// loadBackground decodes the template and scales it to fill the card.
func loadBackground(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, CardWidth, CardHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst, nil
}

// Render draws item onto a fresh card and returns the PNG bytes.
func (r *Renderer) Render(item Item) ([]byte, error) {
	if err := r.load(); err != nil {
		return nil, &RenderError{Title: item.Title, Kind: ErrResourceLoad, Err: err}
	}
	canvas, err := r.draw(item)
	if err != nil {
		return nil, &RenderError{Title: item.Title, Kind: ErrDraw, Err: err}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, &RenderError{Title: item.Title, Kind: ErrEncode, Err: fmt.Errorf("encode png: %w", err)}
	}
	return buf.Bytes(), nil
}

func (r *Renderer) draw(item Item) (canvas *image.RGBA, err error) {
	defer func() {
		if p := recover(); p != nil {
			canvas, err = nil, fmt.Errorf("%v", p)
		}
	}()

	canvas = image.NewRGBA(image.Rect(0, 0, CardWidth, CardHeight))
	draw.Draw(canvas, canvas.Bounds(), r.background, image.Point{}, draw.Src)

	title := layout.Layout(item.Title, textMaxWidth, titleLineHeight, Measure(r.fonts.Display))
	title.Draw(textX, titleY, drawer(canvas, r.fonts.Display))

	drawer(canvas, r.fonts.Tagline)(item.Tagline, textX, taglineY)

	desc := layout.Truncate(item.Description, descriptionMaxLength)
	body := layout.Layout(desc, textMaxWidth, descriptionLineHeight, Measure(r.fonts.Body))
	body.Draw(textX, descriptionY, drawer(canvas, r.fonts.Body))

	return canvas, nil
}

// drawer returns a layout.DrawFunc that paints text in face onto dst.
// Glyphs outside dst are clipped.
func drawer(dst draw.Image, face font.Face) layout.DrawFunc {
	return func(s string, x, y float64) {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(textColor),
			Face: face,
			Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
		}
		d.DrawString(s)
	}
}

// Generate renders item and writes it to <outputDir>/<slug>.png, creating
// the directory when needed. The PNG is fully encoded before the file is
// opened, so an encode failure leaves nothing on disk.
func (r *Renderer) Generate(item Item) (string, error) {
	data, err := r.Render(item)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", &RenderError{Title: item.Title, Kind: ErrWrite, Err: fmt.Errorf("create output dir: %w", err)}
	}
	path := filepath.Join(r.outputDir, item.Slug+".png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &RenderError{Title: item.Title, Kind: ErrWrite, Err: fmt.Errorf("write image: %w", err)}
	}
	return path, nil
}
