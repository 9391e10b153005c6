// Package pptx writes a godeck deck as an Office Open XML presentation
// (.pptx) file.
//
// A Document collects slides through the godeck.Document interface and
// serializes them with one slide master, one blank layout and one theme
// derived from the deck's palette.
package pptx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/VantageDataChat/GoDeck"
)

// DocumentProperties holds the core and extended properties of the package.
type DocumentProperties struct {
	Creator        string
	LastModifiedBy string
	Created        time.Time
	Modified       time.Time
	Title          string
	Subject        string
	Description    string
	Company        string
}

// NewDocumentProperties returns properties stamped with the current time.
func NewDocumentProperties() *DocumentProperties {
	now := time.Now()
	return &DocumentProperties{
		Creator:        "GoDeck",
		LastModifiedBy: "GoDeck",
		Created:        now,
		Modified:       now,
	}
}

type slide struct {
	name   string
	shapes []godeck.Primitive
}

// Document is an in-memory presentation that implements godeck.Document.
type Document struct {
	width, height int64
	properties    *DocumentProperties
	theme         godeck.Theme
	slides        []*slide
}

var _ godeck.Document = (*Document)(nil)

// New creates an empty document with the given slide size in EMU.
func New(width, height int64) *Document {
	return &Document{
		width:      width,
		height:     height,
		properties: NewDocumentProperties(),
		theme:      godeck.DefaultTheme,
	}
}

// GetDocumentProperties returns the document properties.
func (d *Document) GetDocumentProperties() *DocumentProperties {
	return d.properties
}

// SetDocumentProperties replaces the document properties. A nil props
// restores fresh defaults.
func (d *Document) SetDocumentProperties(props *DocumentProperties) {
	if props == nil {
		props = NewDocumentProperties()
	}
	d.properties = props
}

// SetTheme sets the palette and fonts written to the theme part.
func (d *Document) SetTheme(t godeck.Theme) {
	d.theme = t
}

// SlideCount returns the number of slides.
func (d *Document) SlideCount() int {
	return len(d.slides)
}

// AddSlide starts a new blank slide.
func (d *Document) AddSlide(name string) {
	d.slides = append(d.slides, &slide{name: name})
}

// Place appends p to the current slide. A slide is started implicitly when
// none exists yet.
func (d *Document) Place(p godeck.Primitive) {
	if len(d.slides) == 0 {
		d.AddSlide("")
	}
	cur := d.slides[len(d.slides)-1]
	cur.shapes = append(cur.shapes, p)
}

// Save validates the document and writes it to path. The file is written to
// a temporary sibling first and renamed into place, so path is either the
// complete package or untouched.
func (d *Document) Save(path string) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	tmp := f.Name()

	writeErr := d.WriteTo(f)
	closeErr := f.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(tmp)
		return writeErr
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move file into place: %w", err)
	}
	return nil
}

// WriteTo writes the package to w without validating it.
func (d *Document) WriteTo(w io.Writer) error {
	pw := &packageWriter{doc: d}
	return pw.write(w)
}
