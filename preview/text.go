package preview

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/VantageDataChat/GoDeck"
)

const emuPerPoint = 12700

var (
	sansFallbacks = []string{"arial", "helvetica", "dejavu sans", "liberation sans", "noto sans"}
	monoFallbacks = []string{"courier new", "dejavu sans mono", "liberation mono", "noto sans mono"}
)

// face returns a face for run, trying the run's font first, then common
// families of the same kind, then a fixed bitmap face.
func (r *renderer) face(run godeck.Run) font.Face {
	size := float64(run.Size)
	if size <= 0 {
		size = 18
	}
	sizePx := size * emuPerPoint * r.scaleY

	name := run.Font
	if name == "" {
		name = godeck.DefaultTheme.BodyFont
	}
	if f := r.sizedFace(name, sizePx, run.Bold); f != nil {
		return f
	}

	fallbacks := sansFallbacks
	if strings.Contains(strings.ToLower(name), "mono") || strings.Contains(strings.ToLower(name), "courier") {
		fallbacks = monoFallbacks
	}
	for _, fb := range fallbacks {
		if f := r.sizedFace(fb, sizePx, run.Bold); f != nil {
			return f
		}
	}
	return basicfont.Face7x13
}

// faceKey identifies a sized face by family, pixel size and weight.
type faceKey struct {
	name string
	size float64
	bold bool
}

// sizedFace returns the renderer's face for the family, building it on first
// use. Missing families are remembered as nil.
func (r *renderer) sizedFace(name string, sizePx float64, bold bool) font.Face {
	key := faceKey{name: strings.ToLower(name), size: sizePx, bold: bold}
	if face, ok := r.faces[key]; ok {
		return face
	}
	if r.faces == nil {
		r.faces = make(map[faceKey]font.Face)
	}
	face := r.fontCache.NewFace(name, sizePx, bold)
	r.faces[key] = face
	return face
}

type textRun struct {
	text  string
	face  font.Face
	color color.RGBA
}

// textLine is one visual line of a paragraph.
type textLine struct {
	runs   []textRun
	width  int
	height int
	align  godeck.HorizontalAlignment
	after  int // extra space below the line, in pixels
}

func buildTextLine(runs []textRun, align godeck.HorizontalAlignment) textLine {
	totalW, maxH := 0, 0
	for _, run := range runs {
		totalW += font.MeasureString(run.face, run.text).Ceil()
		if h := run.face.Metrics().Height.Ceil(); h > maxH {
			maxH = h
		}
	}
	if maxH <= 0 {
		maxH = 14
	}
	return textLine{runs: runs, width: totalW, height: maxH, align: align}
}

// layoutParagraph splits a paragraph into lines at "\n" breaks and, when
// wrap is set, at word boundaries that exceed maxWidth.
func (r *renderer) layoutParagraph(para godeck.Paragraph, maxWidth int, wrap bool) []textLine {
	var lines []textLine
	var cur []textRun
	var lastFace font.Face = basicfont.Face7x13

	flush := func() {
		line := buildTextLine(cur, para.Align)
		if len(cur) == 0 {
			line.height = lastFace.Metrics().Height.Ceil()
		}
		if wrap && line.width > maxWidth && maxWidth > 0 {
			lines = append(lines, wrapRunLine(line, maxWidth)...)
		} else {
			lines = append(lines, line)
		}
		cur = nil
	}

	for _, run := range para.Runs {
		face := r.face(run)
		lastFace = face
		c := argbToRGBA(run.Color)
		if run.Color.ARGB == "" {
			c = color.RGBA{A: 255}
		}
		for i, part := range strings.Split(run.Text, "\n") {
			if i > 0 {
				flush()
			}
			if part != "" {
				cur = append(cur, textRun{text: part, face: face, color: c})
			}
		}
	}
	flush()

	if n := len(lines); n > 0 {
		lines[n-1].after = int(float64(para.SpaceAfter) * emuPerPoint * r.scaleY)
	}
	return lines
}

// drawText draws the paragraphs top-anchored inside rect. Lines that would
// start below the rectangle are dropped.
func (r *renderer) drawText(tb *godeck.TextBody, rect image.Rectangle) {
	var lines []textLine
	for _, para := range tb.Paragraphs {
		lines = append(lines, r.layoutParagraph(para, rect.Dx(), tb.Wrap)...)
	}

	curY := rect.Min.Y
	for _, line := range lines {
		curY += line.height
		if curY > rect.Max.Y+line.height/2 {
			break
		}

		drawX := rect.Min.X
		switch line.align {
		case godeck.HorizontalCenter:
			drawX = rect.Min.X + (rect.Dx()-line.width)/2
		case godeck.HorizontalRight:
			drawX = rect.Max.X - line.width
		}

		for _, run := range line.runs {
			d := &font.Drawer{
				Dst:  r.img,
				Src:  &image.Uniform{run.color},
				Face: run.face,
				Dot:  fixed.P(drawX, curY-run.face.Metrics().Descent.Ceil()),
			}
			d.DrawString(run.text)
			drawX += font.MeasureString(run.face, run.text).Ceil()
		}
		curY += line.after
	}
}

// wrapRunLine wraps a line into lines that fit within maxWidth. A single
// word wider than maxWidth gets a line of its own.
func wrapRunLine(line textLine, maxWidth int) []textLine {
	type styledWord struct {
		word  string
		face  font.Face
		color color.RGBA
	}

	var words []styledWord
	first := true
	for _, run := range line.runs {
		for _, w := range strings.Fields(run.text) {
			if !first {
				w = " " + w
			}
			first = false
			words = append(words, styledWord{word: w, face: run.face, color: run.color})
		}
	}
	if len(words) == 0 {
		return []textLine{line}
	}

	var result []textLine
	var curRuns []textRun
	curWidth := 0
	for _, sw := range words {
		ww := font.MeasureString(sw.face, sw.word).Ceil()
		if curWidth+ww > maxWidth && curWidth > 0 {
			result = append(result, buildTextLine(curRuns, line.align))
			curRuns = nil
			curWidth = 0
			sw.word = strings.TrimLeft(sw.word, " ")
			ww = font.MeasureString(sw.face, sw.word).Ceil()
		}
		curRuns = append(curRuns, textRun{text: sw.word, face: sw.face, color: sw.color})
		curWidth += ww
	}
	if len(curRuns) > 0 {
		result = append(result, buildTextLine(curRuns, line.align))
	}
	result[len(result)-1].after = line.after
	return result
}
