package godeck

// Shared layout constants, in inches of the 13.333 x 7.5 canvas.
var (
	pageMargin     = Inch(0.5)
	titleBarHeight = Inch(1.2)
	titleTextTop   = Inch(0.3)
	titleTextH     = Inch(0.8)
)

// Slide is an ordered list of primitives built by exactly one builder call.
// Later primitives draw on top of earlier ones.
type Slide struct {
	name       string
	primitives []Primitive
}

// Name returns the slide title the slide was built for.
func (s Slide) Name() string { return s.name }

// Len returns the number of primitives on the slide.
func (s Slide) Len() int { return len(s.primitives) }

// Primitives returns a copy of the slide's primitives in draw order.
func (s Slide) Primitives() []Primitive {
	out := make([]Primitive, len(s.primitives))
	for i, p := range s.primitives {
		out[i] = p.clone()
	}
	return out
}

func (s *Slide) add(ps ...Primitive) {
	s.primitives = append(s.primitives, ps...)
}

// Builder lays out the four slide variants on a fixed canvas with a fixed
// theme. Both are copied in at construction and never change afterwards.
type Builder struct {
	canvas Canvas
	theme  Theme
	place  Placer
}

// NewBuilder creates a Builder for the given canvas and theme.
func NewBuilder(c Canvas, t Theme) *Builder {
	return &Builder{canvas: c, theme: t, place: NewPlacer(c)}
}

// Canvas returns the builder's canvas.
func (b *Builder) Canvas() Canvas { return b.canvas }

// Theme returns the builder's theme.
func (b *Builder) Theme() Theme { return b.theme }

// textStyle is the run and paragraph styling shared by one kind of label.
type textStyle struct {
	size       int
	bold       bool
	color      Color
	font       string
	align      HorizontalAlignment
	spaceAfter int
}

func (ts textStyle) para(text string) Paragraph {
	return Paragraph{
		Align:      ts.align,
		SpaceAfter: ts.spaceAfter,
		Runs: []Run{{
			Text:  text,
			Size:  ts.size,
			Bold:  ts.bold,
			Color: ts.color,
			Font:  ts.font,
		}},
	}
}

func (b *Builder) body(size int, bold bool, color Color, align HorizontalAlignment) textStyle {
	return textStyle{size: size, bold: bold, color: color, font: b.theme.BodyFont, align: align}
}

func (b *Builder) mono(size int, color Color, align HorizontalAlignment) textStyle {
	return textStyle{size: size, color: color, font: b.theme.MonoFont, align: align}
}

// titleBar draws the dark band and left-aligned heading used by every slide
// except the title slide.
func (b *Builder) titleBar(s *Slide, title string) {
	s.add(
		b.place.Rectangle(b.place.FullWidth(0, titleBarHeight), b.theme.Primary),
		b.place.TextBox(
			b.place.Margined(pageMargin, titleTextTop, titleTextH),
			false,
			b.body(32, true, b.theme.TextLight, HorizontalLeft).para(title),
		),
	)
}
