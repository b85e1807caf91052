package trackppt

import (
	"archive/zip"
	"fmt"
	"strings"
)

// slideWriter carries per-slide numbering while shapes are written.
type slideWriter struct {
	w       *PPTXWriter
	shapeID int
	// chartRel maps each chart on the slide to its relationship id. rId1 is
	// the layout.
	chartRel map[*ChartShape]string
}

func (w *PPTXWriter) writeSlide(zw *zip.Writer, slide *Slide, slideNum int) error {
	sw := &slideWriter{w: w, shapeID: 2, chartRel: make(map[*ChartShape]string)}
	for i, cs := range slide.charts() {
		sw.chartRel[cs] = fmt.Sprintf("rId%d", i+2)
	}

	var shapesXML strings.Builder
	for _, shape := range slide.shapes {
		shapesXML.WriteString(sw.shapeXML(shape))
	}

	bgXML := ""
	if slide.background != nil && slide.background.Type != FillNone {
		bgXML = "    <p:bg>\n      <p:bgPr>\n"
		bgXML += writeFillXML(slide.background)
		bgXML += "        <a:effectLst/>\n      </p:bgPr>\n    </p:bg>\n"
	}

	nameAttr := ""
	if slide.name != "" {
		nameAttr = fmt.Sprintf(` name="%s"`, xmlEscape(slide.name))
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
  <p:cSld%s>
%s    <p:spTree>
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
</p:sld>`, nsDrawingML, nsOfficeDocRels, nsPresentationML, nameAttr, bgXML, shapesXML.String())

	return writeRawXMLToZip(zw, fmt.Sprintf("ppt/slides/slide%d.xml", slideNum), content)
}

func (w *PPTXWriter) writeSlideRels(zw *zip.Writer, slide *Slide, slideNum int) error {
	rels := xmlRelationships{Xmlns: nsRelationships}
	rels.add(relTypeSlideLayout, "../slideLayouts/slideLayout1.xml")
	for _, cs := range slide.charts() {
		rels.add(relTypeChart, fmt.Sprintf("../charts/chart%d.xml", w.chartIndex[cs]))
	}
	return writeXMLToZip(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", slideNum), rels)
}

func (sw *slideWriter) nextID() int {
	id := sw.shapeID
	sw.shapeID++
	return id
}

func (sw *slideWriter) shapeXML(shape Shape) string {
	switch s := shape.(type) {
	case *RichTextShape:
		return sw.richTextXML(s)
	case *AutoShape:
		return sw.autoShapeXML(s)
	case *LineShape:
		return sw.lineXML(s)
	case *ChartShape:
		return sw.chartFrameXML(s)
	case *GroupShape:
		return sw.groupXML(s)
	}
	return ""
}

func shapeName(b *BaseShape, kind string, id int) string {
	if b.name != "" {
		return b.name
	}
	return fmt.Sprintf("%s %d", kind, id)
}

// --- Rich Text Shape XML ---

func (sw *slideWriter) richTextXML(s *RichTextShape) string {
	id := sw.nextID()

	var paragraphsXML strings.Builder
	for _, para := range s.paragraphs {
		paragraphsXML.WriteString(writeParagraphXML(para))
	}

	insets := ""
	if s.zeroInsets {
		insets = ` lIns="0" tIns="0" rIns="0" bIns="0"`
	}

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="%s"/>
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
          <a:bodyPr wrap="%s"%s anchor="%s" rtlCol="0"/>
          <a:lstStyle/>
%s        </p:txBody>
      </p:sp>
`, id, xmlEscape(shapeName(&s.BaseShape, "TextBox", id)),
		s.offsetX, s.offsetY, s.width, s.height,
		writeFillXML(s.GetFill()), writeBorderXML(s.GetBorder()),
		boolToWrap(s.wordWrap), insets, s.anchor,
		paragraphsXML.String())
}

func boolToWrap(wrap bool) string {
	if wrap {
		return "square"
	}
	return "none"
}

func writeParagraphXML(para *Paragraph) string {
	var runs strings.Builder
	for _, tr := range para.runs {
		runs.WriteString(writeTextRunXML(tr))
	}
	return fmt.Sprintf(`          <a:p>
            <a:pPr algn="%s"/>
%s          </a:p>
`, para.alignment, runs.String())
}

func writeTextRunXML(tr *TextRun) string {
	font := tr.font
	attrs := fmt.Sprintf(` lang="zh-CN" altLang="en-US" sz="%d" b="%s" dirty="0"`, font.Size*100, boolToXML(font.Bold))

	latin := ""
	if font.Name != "" {
		latin = fmt.Sprintf(`
                <a:latin typeface="%[1]s"/>
                <a:ea typeface="%[1]s"/>`, xmlEscape(font.Name))
	}

	return fmt.Sprintf(`            <a:r>
              <a:rPr%s>
                <a:solidFill><a:srgbClr val="%s"/></a:solidFill>%s
              </a:rPr>
              <a:t>%s</a:t>
            </a:r>
`, attrs, font.Color.RGB(), latin, xmlEscape(tr.text))
}

// --- Auto Shape XML ---

func (sw *slideWriter) autoShapeXML(s *AutoShape) string {
	id := sw.nextID()
	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="%s"/>
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
`, id, xmlEscape(shapeName(&s.BaseShape, "Shape", id)),
		s.offsetX, s.offsetY, s.width, s.height,
		s.shapeType,
		writeFillXML(s.GetFill()), writeBorderXML(s.GetBorder()))
}

// --- Line Shape XML ---

func (sw *slideWriter) lineXML(s *LineShape) string {
	id := sw.nextID()

	dashXML := ""
	if s.lineStyle == BorderDash {
		dashXML = "\n            <a:prstDash val=\"dash\"/>"
	}
	fillXML := fmt.Sprintf(`
            <a:solidFill>
              <a:srgbClr val="%s"/>
            </a:solidFill>`, s.lineColor.RGB())
	if s.lineStyle == BorderNone {
		fillXML, dashXML = "\n            <a:noFill/>", ""
	}

	return fmt.Sprintf(`      <p:cxnSp>
        <p:nvCxnSpPr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvCxnSpPr/>
          <p:nvPr/>
        </p:nvCxnSpPr>
        <p:spPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="line">
            <a:avLst/>
          </a:prstGeom>
          <a:ln w="%d">%s%s
          </a:ln>
        </p:spPr>
      </p:cxnSp>
`, id, xmlEscape(shapeName(&s.BaseShape, "Line", id)),
		s.offsetX, s.offsetY, s.width, s.height,
		s.lineWidth, fillXML, dashXML)
}

// --- Fill and Border helpers ---

func writeFillXML(f *Fill) string {
	if f == nil || f.Type != FillSolid {
		return "          <a:noFill/>\n"
	}
	return fmt.Sprintf("          <a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill>\n", f.Color.RGB())
}

func writeBorderXML(b *Border) string {
	if b == nil || b.Style == BorderNone {
		return "          <a:ln><a:noFill/></a:ln>\n"
	}
	dashXML := ""
	if b.Style == BorderDash {
		dashXML = "<a:prstDash val=\"dash\"/>"
	}
	return fmt.Sprintf("          <a:ln w=\"%d\"><a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill>%s</a:ln>\n",
		b.Width, b.Color.RGB(), dashXML)
}

// --- Chart Shape XML ---

func (sw *slideWriter) chartFrameXML(s *ChartShape) string {
	id := sw.nextID()
	return fmt.Sprintf(`      <p:graphicFrame>
        <p:nvGraphicFramePr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvGraphicFramePr>
            <a:graphicFrameLocks noGrp="1"/>
          </p:cNvGraphicFramePr>
          <p:nvPr/>
        </p:nvGraphicFramePr>
        <p:xfrm>
          <a:off x="%d" y="%d"/>
          <a:ext cx="%d" cy="%d"/>
        </p:xfrm>
        <a:graphic>
          <a:graphicData uri="%s">
            <c:chart xmlns:c="%s" r:id="%s"/>
          </a:graphicData>
        </a:graphic>
      </p:graphicFrame>
`, id, xmlEscape(shapeName(&s.BaseShape, "Chart", id)),
		s.offsetX, s.offsetY, s.width, s.height,
		nsChart, nsChart, sw.chartRel[s])
}

// --- Group Shape XML ---

// groupXML writes a group whose child coordinate space equals its own, so
// children keep their slide coordinates.
func (sw *slideWriter) groupXML(g *GroupShape) string {
	id := sw.nextID()

	var childXML strings.Builder
	for _, shape := range g.shapes {
		childXML.WriteString(sw.shapeXML(shape))
	}

	return fmt.Sprintf(`      <p:grpSp>
        <p:nvGrpSpPr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvGrpSpPr/>
          <p:nvPr/>
        </p:nvGrpSpPr>
        <p:grpSpPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
            <a:chOff x="%d" y="%d"/>
            <a:chExt cx="%d" cy="%d"/>
          </a:xfrm>
        </p:grpSpPr>
%s      </p:grpSp>
`, id, xmlEscape(shapeName(&g.BaseShape, "Group", id)),
		g.offsetX, g.offsetY, g.width, g.height,
		g.offsetX, g.offsetY, g.width, g.height,
		childXML.String())
}
