package preview

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/vector"

	"github.com/VantageDataChat/GoDeck"
)

// Preset geometry defaults, as fractions of the shorter side.
const (
	roundRectRadius = 0.16667
	arrowShaft      = 0.5 // shaft thickness relative to the height
	arrowHead       = 0.5 // head length relative to the shorter side
)

// Default text box insets in EMU.
const (
	insetX = 91440
	insetY = 45720
)

type renderer struct {
	img       *image.RGBA
	scaleX    float64
	scaleY    float64
	fontCache *FontCache
	faces     map[faceKey]font.Face // owned by this renderer
}

func (r *renderer) emuToPixelX(emu int64) float32 {
	return float32(float64(emu) * r.scaleX)
}

func (r *renderer) emuToPixelY(emu int64) float32 {
	return float32(float64(emu) * r.scaleY)
}

func argbToRGBA(c godeck.Color) color.RGBA {
	return color.RGBA{
		R: c.GetRed(),
		G: c.GetGreen(),
		B: c.GetBlue(),
		A: c.GetAlpha(),
	}
}

// box is a rectangle in pixel space.
type box struct {
	x, y, w, h float32
}

func (b box) inset(d float32) box {
	return box{b.x + d, b.y + d, b.w - 2*d, b.h - 2*d}
}

func (r *renderer) pixelBox(rect godeck.Rect) box {
	return box{
		x: r.emuToPixelX(rect.X),
		y: r.emuToPixelY(rect.Y),
		w: r.emuToPixelX(rect.W),
		h: r.emuToPixelY(rect.H),
	}
}

func (r *renderer) renderPrimitive(p godeck.Primitive) {
	b := r.pixelBox(p.Rect)
	if b.w <= 0 || b.h <= 0 {
		return
	}

	var outline func(z *vector.Rasterizer, b box, reverse bool)
	switch p.Kind {
	case godeck.KindRoundedRectangle:
		outline = roundRectPath
	case godeck.KindArrow:
		outline = arrowPath
	default:
		outline = rectPath
	}

	if p.Fill != nil {
		r.fill(argbToRGBA(*p.Fill), func(z *vector.Rasterizer) { outline(z, b, false) })
	}
	if p.Border != nil && p.Border.Width > 0 {
		bw := float32(math.Max(1, float64(r.emuToPixelX(p.Border.Width))))
		// The outline is centered on the shape edge.
		outer, inner := b.inset(-bw/2), b.inset(bw/2)
		r.fill(argbToRGBA(p.Border.Color), func(z *vector.Rasterizer) {
			outline(z, outer, false)
			if inner.w > 0 && inner.h > 0 {
				outline(z, inner, true)
			}
		})
	}
	if p.Kind == godeck.KindTextBox && p.Text != nil {
		text := image.Rect(
			int(b.x+r.emuToPixelX(insetX)),
			int(b.y+r.emuToPixelY(insetY)),
			int(b.x+b.w-r.emuToPixelX(insetX)),
			int(b.y+b.h-r.emuToPixelY(insetY)),
		)
		r.drawText(p.Text, text)
	}
}

// fill rasterizes the path built by trace over the whole image.
func (r *renderer) fill(c color.RGBA, trace func(z *vector.Rasterizer)) {
	bounds := r.img.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	trace(z)
	z.Draw(r.img, bounds, &image.Uniform{c}, image.Point{})
}

func rectPath(z *vector.Rasterizer, b box, reverse bool) {
	polygon(z, reverse,
		[2]float32{b.x, b.y},
		[2]float32{b.x + b.w, b.y},
		[2]float32{b.x + b.w, b.y + b.h},
		[2]float32{b.x, b.y + b.h},
	)
}

// roundRectPath traces a rectangle with quarter-round corners. reverse
// traces counter-clockwise so the path cuts a hole in an enclosing one.
func roundRectPath(z *vector.Rasterizer, b box, reverse bool) {
	rad := float32(roundRectRadius) * min(b.w, b.h)
	x0, y0, x1, y1 := b.x, b.y, b.x+b.w, b.y+b.h

	z.MoveTo(x0+rad, y0)
	if !reverse {
		z.LineTo(x1-rad, y0)
		z.QuadTo(x1, y0, x1, y0+rad)
		z.LineTo(x1, y1-rad)
		z.QuadTo(x1, y1, x1-rad, y1)
		z.LineTo(x0+rad, y1)
		z.QuadTo(x0, y1, x0, y1-rad)
		z.LineTo(x0, y0+rad)
		z.QuadTo(x0, y0, x0+rad, y0)
	} else {
		z.QuadTo(x0, y0, x0, y0+rad)
		z.LineTo(x0, y1-rad)
		z.QuadTo(x0, y1, x0+rad, y1)
		z.LineTo(x1-rad, y1)
		z.QuadTo(x1, y1, x1, y1-rad)
		z.LineTo(x1, y0+rad)
		z.QuadTo(x1, y0, x1-rad, y0)
		z.LineTo(x0+rad, y0)
	}
	z.ClosePath()
}

// arrowPath traces a right-pointing block arrow: a shaft centered
// vertically and a triangular head spanning the full height.
func arrowPath(z *vector.Rasterizer, b box, reverse bool) {
	head := float32(arrowHead) * min(b.w, b.h)
	neck := b.x + b.w - head
	top := b.y + b.h*(1-arrowShaft)/2
	bottom := b.y + b.h*(1+arrowShaft)/2
	polygon(z, reverse,
		[2]float32{b.x, top},
		[2]float32{neck, top},
		[2]float32{neck, b.y},
		[2]float32{b.x + b.w, b.y + b.h/2},
		[2]float32{neck, b.y + b.h},
		[2]float32{neck, bottom},
		[2]float32{b.x, bottom},
	)
}

func polygon(z *vector.Rasterizer, reverse bool, pts ...[2]float32) {
	if reverse {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		z.LineTo(p[0], p[1])
	}
	z.ClosePath()
}
