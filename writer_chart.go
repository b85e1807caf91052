package trackppt

import (
	"archive/zip"
	"fmt"
	"strconv"
	"strings"
)

// writeChartPart writes ppt/charts/chartN.xml. Series data is stored as
// literals; no embedded workbook is written.
func (w *PPTXWriter) writeChartPart(zw *zip.Writer, chart *ChartShape, chartIdx int) error {
	ct := chart.plotArea.chartType
	if ct == nil {
		return fmt.Errorf("chart %d has no chart type", chartIdx)
	}
	categories := chartCategories(ct)

	var chartTypeXML, axisXML string
	switch c := ct.(type) {
	case *LineChart:
		chartTypeXML = writeLineChartXML(c, categories)
		axisXML = writeAxesXML(chart)
	case *PieChart:
		chartTypeXML = writePieChartXML(c, categories)
	default:
		return fmt.Errorf("chart %d: unsupported chart type %q", chartIdx, ct.GetChartTypeName())
	}

	titleXML := "    <c:autoTitleDeleted val=\"1\"/>\n"
	if chart.title.Visible && chart.title.Text != "" {
		titleXML = fmt.Sprintf(`    <c:title>
      <c:tx>
        <c:rich>
          <a:bodyPr/>
          <a:lstStyle/>
          <a:p>
            <a:pPr><a:defRPr sz="%[1]d" b="%[2]s"/></a:pPr>
            <a:r>
              <a:rPr lang="zh-CN" altLang="en-US" sz="%[1]d" b="%[2]s"/>
              <a:t>%[3]s</a:t>
            </a:r>
          </a:p>
        </c:rich>
      </c:tx>
      <c:overlay val="0"/>
    </c:title>
    <c:autoTitleDeleted val="0"/>
`, chart.title.Font.Size*100, boolToXML(chart.title.Font.Bold), xmlEscape(chart.title.Text))
	}

	legendXML := ""
	if chart.legend.Visible {
		legendXML = fmt.Sprintf(`    <c:legend>
      <c:legendPos val="%s"/>
      <c:overlay val="0"/>
    </c:legend>
`, chart.legend.Position)
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<c:chartSpace xmlns:c="%s" xmlns:a="%s" xmlns:r="%s">
  <c:roundedCorners val="0"/>
  <c:chart>
%s    <c:plotArea>
      <c:layout/>
%s%s    </c:plotArea>
%s    <c:plotVisOnly val="1"/>
    <c:dispBlanksAs val="gap"/>
  </c:chart>
</c:chartSpace>`,
		nsChart, nsDrawingML, nsOfficeDocRels,
		titleXML, chartTypeXML, axisXML, legendXML)

	return writeRawXMLToZip(zw, fmt.Sprintf("ppt/charts/chart%d.xml", chartIdx), content)
}

func writeAxesXML(chart *ChartShape) string {
	axX := chart.plotArea.axisX
	axY := chart.plotArea.axisY

	var sb strings.Builder
	fmt.Fprintf(&sb, `      <c:catAx>
        <c:axId val="1"/>
        <c:scaling><c:orientation val="minMax"/></c:scaling>
        <c:delete val="%s"/>
        <c:axPos val="b"/>
`, boolToXML(!axX.Visible))
	if axX.MajorGridlines {
		sb.WriteString("        <c:majorGridlines/>\n")
	}
	sb.WriteString(axisTitleXML(axX.Title))
	sb.WriteString(`        <c:numFmt formatCode="General" sourceLinked="1"/>
        <c:majorTickMark val="out"/>
        <c:minorTickMark val="none"/>
        <c:tickLblPos val="low"/>
        <c:crossAx val="2"/>
        <c:crosses val="autoZero"/>
        <c:auto val="1"/>
        <c:lblAlgn val="ctr"/>
        <c:lblOffset val="100"/>
      </c:catAx>
`)

	sb.WriteString(`      <c:valAx>
        <c:axId val="2"/>
        <c:scaling>
          <c:orientation val="minMax"/>
`)
	if axY.MaxBounds != nil {
		fmt.Fprintf(&sb, "          <c:max val=\"%s\"/>\n", formatNumber(*axY.MaxBounds))
	}
	if axY.MinBounds != nil {
		fmt.Fprintf(&sb, "          <c:min val=\"%s\"/>\n", formatNumber(*axY.MinBounds))
	}
	fmt.Fprintf(&sb, `        </c:scaling>
        <c:delete val="%s"/>
        <c:axPos val="l"/>
`, boolToXML(!axY.Visible))
	if axY.MajorGridlines {
		sb.WriteString("        <c:majorGridlines/>\n")
	}
	sb.WriteString(axisTitleXML(axY.Title))
	format, linked := axY.NumberFormat, "0"
	if format == "" {
		format, linked = "General", "1"
	}
	fmt.Fprintf(&sb, `        <c:numFmt formatCode="%s" sourceLinked="%s"/>
        <c:majorTickMark val="out"/>
        <c:minorTickMark val="none"/>
        <c:tickLblPos val="nextTo"/>
        <c:crossAx val="1"/>
        <c:crosses val="autoZero"/>
        <c:crossBetween val="between"/>
`, xmlEscape(format), linked)
	if axY.MajorUnit != nil {
		fmt.Fprintf(&sb, "        <c:majorUnit val=\"%s\"/>\n", formatNumber(*axY.MajorUnit))
	}
	sb.WriteString("      </c:valAx>\n")
	return sb.String()
}

func axisTitleXML(title string) string {
	if title == "" {
		return ""
	}
	return fmt.Sprintf(`        <c:title><c:tx><c:rich><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="zh-CN" altLang="en-US"/><a:t>%s</a:t></a:r></a:p></c:rich></c:tx><c:overlay val="0"/></c:title>
`, xmlEscape(title))
}

// formatNumber writes v in the shortest form that round-trips.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func solidSpPr(c Color, line bool) string {
	if line {
		return fmt.Sprintf(`<c:spPr><a:ln w="28575" cap="rnd"><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:round/></a:ln></c:spPr>`, c.RGB())
	}
	return fmt.Sprintf(`<c:spPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill></c:spPr>`, c.RGB())
}

// writeSeriesXML writes the shared part of a series: index, name, colour,
// point colours, labels, categories and values. Line series without markers
// get an explicit "none" symbol.
func writeSeriesXML(idx int, s *ChartSeries, categories []string, line, markers bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `        <c:ser>
          <c:idx val="%d"/>
          <c:order val="%d"/>
          <c:tx><c:v>%s</c:v></c:tx>
`, idx, idx, xmlEscape(s.Title))
	if s.FillColor.ARGB != "" {
		fmt.Fprintf(&sb, "          %s\n", solidSpPr(s.FillColor, line))
	}
	if line && !markers {
		sb.WriteString("          <c:marker><c:symbol val=\"none\"/></c:marker>\n")
	}
	for i, c := range s.PointColors {
		fmt.Fprintf(&sb, "          <c:dPt><c:idx val=\"%d\"/><c:bubble3D val=\"0\"/>%s</c:dPt>\n", i, solidSpPr(c, false))
	}

	if s.ShowValue || s.ShowPercent {
		fmt.Fprintf(&sb, `          <c:dLbls>
            <c:showLegendKey val="0"/>
            <c:showVal val="%s"/>
            <c:showCatName val="0"/>
            <c:showSerName val="0"/>
            <c:showPercent val="%s"/>
            <c:showBubbleSize val="0"/>
          </c:dLbls>
`, boolToXML(s.ShowValue), boolToXML(s.ShowPercent))
	}

	fmt.Fprintf(&sb, "          <c:cat>\n            <c:strLit>\n              <c:ptCount val=\"%d\"/>\n", len(categories))
	for i, cat := range categories {
		fmt.Fprintf(&sb, "              <c:pt idx=\"%d\"><c:v>%s</c:v></c:pt>\n", i, xmlEscape(cat))
	}
	sb.WriteString("            </c:strLit>\n          </c:cat>\n")

	fmt.Fprintf(&sb, "          <c:val>\n            <c:numLit>\n              <c:formatCode>General</c:formatCode>\n              <c:ptCount val=\"%d\"/>\n", len(s.Values))
	for i, v := range s.Values {
		fmt.Fprintf(&sb, "              <c:pt idx=\"%d\"><c:v>%s</c:v></c:pt>\n", i, formatNumber(v))
	}
	sb.WriteString("            </c:numLit>\n          </c:val>\n")
	return sb.String()
}

func writeLineChartXML(c *LineChart, cats []string) string {
	var sb strings.Builder
	for idx, s := range c.Series {
		sb.WriteString(writeSeriesXML(idx, s, cats, true, c.ShowMarker))
		fmt.Fprintf(&sb, "          <c:smooth val=\"%s\"/>\n        </c:ser>\n", boolToXML(c.IsSmooth))
	}
	return fmt.Sprintf(`      <c:lineChart>
        <c:grouping val="standard"/>
        <c:varyColors val="0"/>
%s        <c:marker val="%s"/>
        <c:axId val="1"/>
        <c:axId val="2"/>
      </c:lineChart>
`, sb.String(), boolToXML(c.ShowMarker))
}

func writePieChartXML(c *PieChart, cats []string) string {
	var sb strings.Builder
	for idx, s := range c.Series {
		sb.WriteString(writeSeriesXML(idx, s, cats, false, false))
		sb.WriteString("        </c:ser>\n")
	}
	return fmt.Sprintf(`      <c:pieChart>
        <c:varyColors val="1"/>
%s        <c:firstSliceAng val="0"/>
      </c:pieChart>
`, sb.String())
}
