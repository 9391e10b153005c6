package godeck

import "math"

// Geometry is in EMU (English Metric Units), the integer unit of OOXML
// drawing: 914400 per inch, 12700 per point.
const (
	emuPerInch  = 914400
	emuPerPoint = 12700
)

// maxEMU bounds converted values so that sums of two coordinates cannot
// overflow.
const maxEMU = math.MaxInt64 / 2

// Inch converts inches to EMU, rounding to the nearest unit.
func Inch(n float64) int64 { return toEMU(n * emuPerInch) }

// Point converts points to EMU.
func Point(n float64) int64 { return toEMU(n * emuPerPoint) }

// EMUToInch converts EMU to inches.
func EMUToInch(emu int64) float64 { return float64(emu) / emuPerInch }

// EMUToPoint converts EMU to points.
func EMUToPoint(emu int64) float64 { return float64(emu) / emuPerPoint }

func toEMU(v float64) int64 {
	return int64(math.Round(math.Max(-maxEMU, math.Min(maxEMU, v))))
}

// Rect is an axis-aligned rectangle in EMU, relative to the canvas origin.
type Rect struct {
	X, Y int64
	W, H int64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int64 { return r.Y + r.H }

// CenterX returns the x coordinate of the horizontal center.
func (r Rect) CenterX() int64 { return r.X + r.W/2 }

// Canvas is the fixed drawing surface every slide is laid out on.
type Canvas struct {
	Width  int64 // in EMU
	Height int64 // in EMU
}

// Widescreen is the 13.333in x 7.5in (16:9) canvas the deck is designed for.
var Widescreen = Canvas{Width: Inch(13.333), Height: Inch(7.5)}

// Bounds returns the rectangle covering the whole canvas.
func (c Canvas) Bounds() Rect {
	return Rect{W: c.Width, H: c.Height}
}

// Contains reports whether r lies entirely within the canvas.
func (c Canvas) Contains(r Rect) bool {
	return r.X >= 0 && r.Y >= 0 && r.W >= 0 && r.H >= 0 &&
		r.Right() <= c.Width && r.Bottom() <= c.Height
}
