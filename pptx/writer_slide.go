package pptx

import (
	"archive/zip"
	"fmt"
	"strings"

	"github.com/VantageDataChat/GoDeck"
)

// presetGeometry maps a primitive kind to its DrawingML preset shape.
func presetGeometry(k godeck.Kind) string {
	switch k {
	case godeck.KindRoundedRectangle:
		return "roundRect"
	case godeck.KindArrow:
		return "rightArrow"
	default:
		return "rect"
	}
}

func (w *packageWriter) writeSlide(zw *zip.Writer, s *slide, slideNum int) error {
	var shapesXML strings.Builder
	shapeID := 2 // 1 is reserved for the group shape

	for _, p := range s.shapes {
		if p.Kind == godeck.KindTextBox {
			shapesXML.WriteString(writeTextBoxXML(p, &shapeID))
		} else {
			shapesXML.WriteString(writeAutoShapeXML(p, &shapeID))
		}
	}

	content := fmt.Sprintf(`%s<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
  <p:cSld name="%s">
    <p:spTree>
      <p:nvGrpSpPr>
        <p:cNvPr id="1" name=""/>
        <p:cNvGrpSpPr/>
        <p:nvPr/>
      </p:nvGrpSpPr>
      <p:grpSpPr>
        <a:xfrm>
          <a:off x="0" y="0"/>
          <a:ext cx="0" cy="0"/>
          <a:chOff x="0" y="0"/>
          <a:chExt cx="0" cy="0"/>
        </a:xfrm>
      </p:grpSpPr>
%s    </p:spTree>
  </p:cSld>
  <p:clrMapOvr>
    <a:masterClrMapping/>
  </p:clrMapOvr>
</p:sld>`, xmlDecl, nsDrawingML, nsOfficeDocRels, nsPresentationML, xmlEscape(s.name), shapesXML.String())

	return writeRawXMLToZip(zw, fmt.Sprintf("ppt/slides/slide%d.xml", slideNum), content)
}

func (w *packageWriter) writeSlideRels(zw *zip.Writer, slideNum int) error {
	content := fmt.Sprintf(`%s<Relationships xmlns="%s">
  <Relationship Id="rId1" Type="%s" Target="../slideLayouts/slideLayout1.xml"/>
</Relationships>`, xmlDecl, nsRelationships, relTypeSlideLayout)
	return writeRawXMLToZip(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", slideNum), content)
}

func writeTextBoxXML(p godeck.Primitive, shapeID *int) string {
	id := *shapeID
	*shapeID++

	var paragraphsXML strings.Builder
	wrap := false
	if p.Text != nil {
		wrap = p.Text.Wrap
		for _, para := range p.Text.Paragraphs {
			paragraphsXML.WriteString(writeParagraphXML(para))
		}
	}

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="TextBox %d"/>
          <p:cNvSpPr txBox="1"/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="rect">
            <a:avLst/>
          </a:prstGeom>
%s%s        </p:spPr>
        <p:txBody>
          <a:bodyPr wrap="%s" rtlCol="0"/>
          <a:lstStyle/>
%s        </p:txBody>
      </p:sp>
`, id, id,
		p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H,
		writeFillXML(p.Fill), writeBorderXML(p.Border),
		boolToWrap(wrap),
		paragraphsXML.String())
}

func writeAutoShapeXML(p godeck.Primitive, shapeID *int) string {
	id := *shapeID
	*shapeID++

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="Shape %d"/>
          <p:cNvSpPr/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="%s">
            <a:avLst/>
          </a:prstGeom>
%s%s        </p:spPr>
      </p:sp>
`, id, id,
		p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H,
		presetGeometry(p.Kind),
		writeFillXML(p.Fill), writeBorderXML(p.Border))
}

func boolToWrap(wrap bool) string {
	if wrap {
		return "square"
	}
	return "none"
}

func writeParagraphXML(para godeck.Paragraph) string {
	algn := ""
	if para.Align != "" {
		algn = fmt.Sprintf(` algn="%s"`, para.Align)
	}

	spacing := ""
	if para.SpaceAfter > 0 {
		spacing = fmt.Sprintf(`
            <a:spcAft><a:spcPts val="%d"/></a:spcAft>`, para.SpaceAfter*100)
	}

	var runsXML strings.Builder
	for _, run := range para.Runs {
		for i, line := range strings.Split(run.Text, "\n") {
			if i > 0 {
				runsXML.WriteString(writeBreakXML(run))
			}
			runsXML.WriteString(writeTextRunXML(run, line))
		}
	}

	return fmt.Sprintf(`          <a:p>
            <a:pPr%s>%s
            </a:pPr>
%s          </a:p>
`, algn, spacing, runsXML.String())
}

func runProperties(run godeck.Run) string {
	attrs := fmt.Sprintf(` lang="en-US" sz="%d" dirty="0"`, run.Size*100)
	if run.Bold {
		attrs += ` b="1"`
	}

	solidFill := ""
	if run.Color.ARGB != "" {
		solidFill = fmt.Sprintf(`
              <a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, run.Color.RGB())
	}

	latin := ""
	if run.Font != "" {
		latin = fmt.Sprintf(`
              <a:latin typeface="%s"/>
              <a:cs typeface="%s"/>`, xmlEscape(run.Font), xmlEscape(run.Font))
	}

	return fmt.Sprintf(`<a:rPr%s>%s%s
              </a:rPr>`, attrs, solidFill, latin)
}

func writeTextRunXML(run godeck.Run, text string) string {
	return fmt.Sprintf(`            <a:r>
              %s
              <a:t>%s</a:t>
            </a:r>
`, runProperties(run), xmlEscape(text))
}

// writeBreakXML writes a line break carrying the run's properties.
func writeBreakXML(run godeck.Run) string {
	return fmt.Sprintf(`            <a:br>
              %s
            </a:br>
`, runProperties(run))
}

func writeFillXML(c *godeck.Color) string {
	if c == nil {
		return "          <a:noFill/>\n"
	}
	return fmt.Sprintf("          <a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill>\n", c.RGB())
}

func writeBorderXML(b *godeck.Border) string {
	if b == nil || b.Width <= 0 {
		return "          <a:ln><a:noFill/></a:ln>\n"
	}
	return fmt.Sprintf("          <a:ln w=\"%d\"><a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill></a:ln>\n",
		b.Width, b.Color.RGB())
}
