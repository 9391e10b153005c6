package pptx

import (
	"fmt"
	"strings"

	"github.com/VantageDataChat/GoDeck"
)

// Validate checks the document for structural issues and returns an error
// describing all problems found, or nil if the document is valid.
func (d *Document) Validate() error {
	var errs []string

	if d.properties == nil {
		errs = append(errs, "document properties are nil")
	}
	if d.width <= 0 {
		errs = append(errs, "slide width must be positive")
	}
	if d.height <= 0 {
		errs = append(errs, "slide height must be positive")
	}
	if len(d.slides) == 0 {
		errs = append(errs, "presentation must have at least one slide")
	}

	canvas := godeck.Canvas{Width: d.width, Height: d.height}
	for i, s := range d.slides {
		prefix := fmt.Sprintf("slide %d", i+1)
		for _, e := range validateSlide(s, canvas) {
			errs = append(errs, prefix+": "+e)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func validateSlide(s *slide, canvas godeck.Canvas) []string {
	var errs []string
	for j, p := range s.shapes {
		prefix := fmt.Sprintf("shape %d (%s)", j+1, p.Kind)
		if p.Rect.W <= 0 {
			errs = append(errs, prefix+": width must be positive")
		}
		if p.Rect.H <= 0 {
			errs = append(errs, prefix+": height must be positive")
		}
		if !canvas.Contains(p.Rect) {
			errs = append(errs, fmt.Sprintf("%s: extends beyond the slide (%.2fin, %.2fin, %.2fin x %.2fin)", prefix,
				godeck.EMUToInch(p.Rect.X), godeck.EMUToInch(p.Rect.Y),
				godeck.EMUToInch(p.Rect.W), godeck.EMUToInch(p.Rect.H)))
		}
		if p.Fill != nil && !godeck.IsValidARGB(p.Fill.ARGB) {
			errs = append(errs, prefix+": fill color is invalid ARGB")
		}
		if p.Border != nil {
			if !godeck.IsValidARGB(p.Border.Color.ARGB) {
				errs = append(errs, prefix+": border color is invalid ARGB")
			}
			if p.Border.Width <= 0 {
				errs = append(errs, prefix+": border width must be positive")
			}
		}

		if p.Kind == godeck.KindTextBox {
			if p.Text.RunCount() == 0 {
				errs = append(errs, prefix+": text box has no runs")
				continue
			}
			errs = append(errs, validateParagraphs(p.Text.Paragraphs, prefix)...)
		} else if p.Text != nil {
			errs = append(errs, prefix+": only text boxes may carry text")
		}
	}
	return errs
}

// validateParagraphs checks run styling.
func validateParagraphs(paragraphs []godeck.Paragraph, prefix string) []string {
	var errs []string
	for i, para := range paragraphs {
		for k, run := range para.Runs {
			if run.Size <= 0 {
				errs = append(errs, fmt.Sprintf("%s: paragraph %d run %d has non-positive font size", prefix, i+1, k+1))
			}
			if run.Color.ARGB != "" && !godeck.IsValidARGB(run.Color.ARGB) {
				errs = append(errs, fmt.Sprintf("%s: paragraph %d run %d color is invalid ARGB", prefix, i+1, k+1))
			}
		}
	}
	return errs
}
