package godeck

// Placer turns slide-relative offsets, sizes and alignment intent into
// absolute geometry on one canvas. All methods are pure.
type Placer struct {
	canvas Canvas
}

// NewPlacer returns a Placer for the given canvas.
func NewPlacer(c Canvas) Placer {
	return Placer{canvas: c}
}

// At returns the rectangle at an explicit offset.
func (p Placer) At(x, y, w, h int64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// FullWidth returns a rectangle spanning the canvas width.
func (p Placer) FullWidth(y, h int64) Rect {
	return Rect{X: 0, Y: y, W: p.canvas.Width, H: h}
}

// CenteredX returns a rectangle of width w centered horizontally on the canvas.
func (p Placer) CenteredX(y, w, h int64) Rect {
	return Rect{X: (p.canvas.Width - w) / 2, Y: y, W: w, H: h}
}

// Margined returns a rectangle inset by margin from both vertical edges.
func (p Placer) Margined(margin, y, h int64) Rect {
	return Rect{X: margin, Y: y, W: p.canvas.Width - 2*margin, H: h}
}

// CenteredOn returns a rectangle of width w whose center lies on x = cx.
func (p Placer) CenteredOn(cx, y, w, h int64) Rect {
	return Rect{X: cx - w/2, Y: y, W: w, H: h}
}

// Inset returns a rectangle offset by (dx, dy) from the origin of r.
func (p Placer) Inset(r Rect, dx, dy, w, h int64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: w, H: h}
}

// Slot returns the x offset of slot i in a row of equal-width slots:
// start + i*(width+gap).
func Slot(start int64, i int, width, gap int64) int64 {
	return start + int64(i)*(width+gap)
}

// GapMidpoint returns the horizontal midpoint of the gap that follows the
// slot starting at slotX.
func GapMidpoint(slotX, width, gap int64) int64 {
	return slotX + width + gap/2
}

// Rectangle returns a filled rectangle without outline.
func (p Placer) Rectangle(r Rect, fill Color) Primitive {
	return Primitive{Kind: KindRectangle, Rect: r, Fill: &fill}
}

// RoundedRectangle returns a filled rounded rectangle. border may be nil.
func (p Placer) RoundedRectangle(r Rect, fill Color, border *Border) Primitive {
	return Primitive{Kind: KindRoundedRectangle, Rect: r, Fill: &fill, Border: border}
}

// Arrow returns a filled right-pointing block arrow.
func (p Placer) Arrow(r Rect, fill Color) Primitive {
	return Primitive{Kind: KindArrow, Rect: r, Fill: &fill}
}

// TextBox returns a text box holding the given paragraphs.
func (p Placer) TextBox(r Rect, wrap bool, paras ...Paragraph) Primitive {
	return Primitive{
		Kind: KindTextBox,
		Rect: r,
		Text: &TextBody{Paragraphs: paras, Wrap: wrap},
	}
}
