package godeck

// TitleSpec is the input of the title slide.
type TitleSpec struct {
	Title    string
	Subtitle string
}

// Title builds the opening slide: a full-canvas primary background with a
// centered heading and a muted subtitle below it.
func (b *Builder) Title(spec TitleSpec) Slide {
	s := Slide{name: spec.Title}
	s.add(
		b.place.Rectangle(b.canvas.Bounds(), b.theme.Primary),
		b.place.TextBox(
			b.place.Margined(pageMargin, Inch(2.5), Inch(1.5)),
			false,
			b.body(44, true, b.theme.TextLight, HorizontalCenter).para(spec.Title),
		),
		b.place.TextBox(
			b.place.Margined(pageMargin, Inch(4.2), Inch(1)),
			false,
			b.body(24, false, b.theme.Muted, HorizontalCenter).para(spec.Subtitle),
		),
	)
	return s
}
