package godeck

// BulletGlyph prefixes every bullet paragraph.
const BulletGlyph = "•"

// ContentSpec is the input of a content slide. Code is optional.
type ContentSpec struct {
	Title   string
	Bullets []string
	Code    string
}

var (
	contentTop    = Inch(1.5)
	contentHeight = Inch(5.5)
	halfWidth     = Inch(6)
	codePanelX    = Inch(6.8)
	codePadding   = Inch(0.2)
)

const (
	bulletFontSize   = 20
	bulletSpaceAfter = 12
	codeFontSize     = 12
)

// Content builds a titled slide with a bullet list and, when spec.Code is
// set, a console panel on the right half holding the code verbatim.
//
// Bullet spacing is fixed; nothing is measured or reflowed. An empty bullet
// list leaves the content region empty.
func (b *Builder) Content(spec ContentSpec) Slide {
	s := Slide{name: spec.Title}
	b.titleBar(&s, spec.Title)

	hasCode := spec.Code != ""
	region := b.place.Margined(pageMargin, contentTop, contentHeight)
	if hasCode {
		region.W = halfWidth
	}

	if len(spec.Bullets) > 0 {
		style := b.body(bulletFontSize, false, b.theme.TextDark, HorizontalLeft)
		style.spaceAfter = bulletSpaceAfter
		paras := make([]Paragraph, 0, len(spec.Bullets))
		for _, bullet := range spec.Bullets {
			paras = append(paras, style.para(BulletGlyph+" "+bullet))
		}
		s.add(b.place.TextBox(region, true, paras...))
	}

	if hasCode {
		panel := b.place.At(codePanelX, contentTop, halfWidth, contentHeight)
		s.add(
			b.place.RoundedRectangle(panel, b.theme.BackgroundDark, nil),
			b.place.TextBox(
				b.place.Inset(panel, codePadding, codePadding, panel.W-2*codePadding, panel.H-2*codePadding),
				true,
				b.mono(codeFontSize, b.theme.Muted, HorizontalLeft).para(spec.Code),
			),
		)
	}
	return s
}
