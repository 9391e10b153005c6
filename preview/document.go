// Package preview rasterizes a godeck deck to one PNG image per slide.
//
// The output is an approximation meant for quick visual review: shapes are
// drawn with anti-aliased vector paths, text with installed TrueType fonts
// when available and a fixed bitmap face otherwise.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/font"

	"github.com/VantageDataChat/GoDeck"
)

const defaultWidth = 960

// Options configures rendering.
type Options struct {
	// Width is the output width in pixels; the height follows the canvas
	// aspect ratio. Default: 960.
	Width int
	// FontDirs are searched for fonts in addition to the OS font directories.
	FontDirs []string
	// FontCache shares parsed fonts between documents, which may render
	// concurrently. If nil, one is created from FontDirs.
	FontCache *FontCache
	// Background is painted before any shape. Default: white.
	Background *color.RGBA
}

type slide struct {
	name   string
	shapes []godeck.Primitive
}

// Document collects slides through godeck.Document and renders them on Save.
type Document struct {
	canvas godeck.Canvas
	opts   Options
	slides []*slide
}

var _ godeck.Document = (*Document)(nil)

// New creates an empty preview document for the given canvas.
func New(canvas godeck.Canvas, opts Options) *Document {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.FontCache == nil {
		opts.FontCache = NewFontCache(opts.FontDirs...)
	}
	return &Document{canvas: canvas, opts: opts}
}

// AddSlide starts a new slide.
func (d *Document) AddSlide(name string) {
	d.slides = append(d.slides, &slide{name: name})
}

// Place appends p to the current slide, starting one if needed.
func (d *Document) Place(p godeck.Primitive) {
	if len(d.slides) == 0 {
		d.AddSlide("")
	}
	cur := d.slides[len(d.slides)-1]
	cur.shapes = append(cur.shapes, p)
}

// SlideCount returns the number of slides.
func (d *Document) SlideCount() int {
	return len(d.slides)
}

// Size returns the pixel dimensions of every rendered slide.
func (d *Document) Size() (int, int) {
	w := d.opts.Width
	h := int(float64(w) * float64(d.canvas.Height) / float64(d.canvas.Width))
	return w, h
}

// SlideToImage renders the slide at index (0-based).
func (d *Document) SlideToImage(index int) (*image.RGBA, error) {
	if index < 0 || index >= len(d.slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(d.slides)-1)
	}
	if d.canvas.Width <= 0 || d.canvas.Height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive")
	}

	w, h := d.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if d.opts.Background != nil {
		bg = *d.opts.Background
	}
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)

	r := &renderer{
		img:       img,
		scaleX:    float64(w) / float64(d.canvas.Width),
		scaleY:    float64(h) / float64(d.canvas.Height),
		fontCache: d.opts.FontCache,
		faces:     make(map[faceKey]font.Face),
	}
	for _, p := range d.slides[index].shapes {
		r.renderPrimitive(p)
	}
	return img, nil
}

// Save renders every slide into dir as slide01.png, slide02.png and so on.
// Files are written one at a time; if a slide fails, the images already
// written stay in dir.
func (d *Document) Save(dir string) error {
	if len(d.slides) == 0 {
		return fmt.Errorf("no slides to render")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	for i := range d.slides {
		img, err := d.SlideToImage(i)
		if err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
		if err := saveImage(img, filepath.Join(dir, SlideFileName(i))); err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	return nil
}

// SlideFileName returns the file name Save uses for the slide at index.
func SlideFileName(index int) string {
	return fmt.Sprintf("slide%02d.png", index+1)
}

func saveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
