package godeck

import "slices"

// Kind identifies the variant of a Primitive.
type Kind int

const (
	KindRectangle Kind = iota
	KindRoundedRectangle
	KindArrow
	KindTextBox
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindRoundedRectangle:
		return "rounded-rectangle"
	case KindArrow:
		return "arrow"
	case KindTextBox:
		return "text-box"
	}
	return "unknown"
}

// Primitive is a single drawable element with absolute geometry and style.
//
// Fill and Border are optional; a nil Fill means no fill and a nil Border
// means no outline. Text is set only for KindTextBox.
type Primitive struct {
	Kind   Kind
	Rect   Rect
	Fill   *Color
	Border *Border
	Text   *TextBody
}

// TextBody is the content of a text box.
type TextBody struct {
	Paragraphs []Paragraph
	Wrap       bool
}

// Paragraph is a run sequence with shared alignment and spacing.
type Paragraph struct {
	Align      HorizontalAlignment
	SpaceAfter int // in points
	Runs       []Run
}

// Run is a span of text with one style. A "\n" inside Text is a line break.
type Run struct {
	Text  string
	Size  int // in points
	Bold  bool
	Color Color
	Font  string
}

// RunCount returns the number of runs across all paragraphs.
func (t *TextBody) RunCount() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, p := range t.Paragraphs {
		n += len(p.Runs)
	}
	return n
}

// clone returns a deep copy so a built slide cannot be altered through a
// primitive handed out by an accessor.
func (p Primitive) clone() Primitive {
	out := p
	if p.Fill != nil {
		f := *p.Fill
		out.Fill = &f
	}
	if p.Border != nil {
		b := *p.Border
		out.Border = &b
	}
	if p.Text != nil {
		tb := TextBody{Wrap: p.Text.Wrap, Paragraphs: make([]Paragraph, len(p.Text.Paragraphs))}
		for i, para := range p.Text.Paragraphs {
			para.Runs = slices.Clone(para.Runs)
			tb.Paragraphs[i] = para
		}
		out.Text = &tb
	}
	return out
}
