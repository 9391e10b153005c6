package godeck

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Warning is an advisory finding about a slide that will probably render
// badly. Warnings never block a save.
type Warning struct {
	Slide     int // 1-based
	SlideName string
	Primitive int // 0-based index on the slide
	Message   string
}

func (w Warning) String() string {
	return fmt.Sprintf("slide %d (%s) primitive %d: %s", w.Slide, w.SlideName, w.Primitive, w.Message)
}

// Rough glyph metrics as a fraction of the font size.
const (
	lineHeightFactor = 1.2
	bodyAdvance      = 0.5
	monoAdvance      = 0.6
)

// Lint estimates, for every wrapping text box in the deck, whether its text
// needs more height than the box provides. The estimate counts lines from
// font size and average glyph advance; it does not shape text.
func Lint(d *Deck, t Theme) []Warning {
	var warnings []Warning
	for si, s := range d.slides {
		for pi, p := range s.primitives {
			if p.Kind != KindTextBox || p.Text == nil || !p.Text.Wrap {
				continue
			}
			need := estimateHeight(p.Text, EMUToPoint(p.Rect.W), t.MonoFont)
			have := EMUToPoint(p.Rect.H)
			if need > have {
				warnings = append(warnings, Warning{
					Slide:     si + 1,
					SlideName: s.name,
					Primitive: pi,
					Message:   fmt.Sprintf("text needs about %.0fpt but the box is %.0fpt high", need, have),
				})
			}
		}
	}
	return warnings
}

// estimateHeight returns the approximate height in points of the wrapped text.
func estimateHeight(tb *TextBody, widthPt float64, monoFont string) float64 {
	total := 0.0
	for _, para := range tb.Paragraphs {
		for _, run := range para.Runs {
			size := float64(run.Size)
			advance := bodyAdvance
			if run.Font == monoFont {
				advance = monoAdvance
			}
			perLine := math.Max(1, math.Floor(widthPt/(size*advance)))
			for _, line := range strings.Split(run.Text, "\n") {
				n := math.Max(1, math.Ceil(float64(utf8.RuneCountInString(line))/perLine))
				total += n * size * lineHeightFactor
			}
		}
		total += float64(para.SpaceAfter)
	}
	return total
}
