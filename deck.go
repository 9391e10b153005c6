// Package godeck composes a fixed presentation deck from declarative slide
// descriptions.
//
// A Builder turns title, content, architecture and pipeline descriptions into
// Slides: ordered lists of positioned Primitives on a fixed Canvas, styled
// from a fixed Theme. A Deck collects slides in display order and hands them
// to a Document, the narrow interface behind which a concrete file format
// (see the pptx and preview packages) lives.
package godeck

import (
	"errors"
	"fmt"
)

var (
	// ErrDeckSealed is returned when a deck is modified after it was saved.
	ErrDeckSealed = errors.New("deck already saved")
	// ErrNoSlides is returned when saving a deck without slides.
	ErrNoSlides = errors.New("deck has no slides")
)

// Document is the serialization collaborator a Deck is written through.
// AddSlide starts a new slide; Place appends a primitive to the current slide.
type Document interface {
	AddSlide(name string)
	Place(p Primitive)
	Save(path string) error
}

// Deck is an ordered, append-only sequence of slides on one canvas.
type Deck struct {
	canvas Canvas
	slides []Slide
	sealed bool
}

// NewDeck creates an empty deck for the given canvas.
func NewDeck(c Canvas) *Deck {
	return &Deck{canvas: c}
}

// Canvas returns the deck's canvas.
func (d *Deck) Canvas() Canvas { return d.canvas }

// Append adds slides at the end of the deck, in argument order.
func (d *Deck) Append(slides ...Slide) error {
	if d.sealed {
		return ErrDeckSealed
	}
	d.slides = append(d.slides, slides...)
	return nil
}

// Slides returns the slides in display order.
func (d *Deck) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	copy(out, d.slides)
	return out
}

// Len returns the number of slides.
func (d *Deck) Len() int { return len(d.slides) }

// Sealed reports whether the deck has been saved.
func (d *Deck) Sealed() bool { return d.sealed }

// Emit places every slide of the deck into doc without saving it.
func (d *Deck) Emit(doc Document) {
	for _, s := range d.slides {
		doc.AddSlide(s.name)
		for _, p := range s.primitives {
			doc.Place(p.clone())
		}
	}
}

// Save places the whole deck into doc and persists it to path in one call.
// The deck is sealed afterwards, whether or not the write succeeded; it may
// still be emitted into further documents.
func (d *Deck) Save(doc Document, path string) error {
	if len(d.slides) == 0 {
		return ErrNoSlides
	}
	d.sealed = true
	d.Emit(doc)
	if err := doc.Save(path); err != nil {
		return fmt.Errorf("save deck to %s: %w", path, err)
	}
	return nil
}
