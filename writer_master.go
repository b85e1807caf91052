package trackppt

import (
	"archive/zip"
	"fmt"
	"strings"

	"github.com/VantageDataChat/trackppt/gantt"
)

const (
	masterID = 2147483648
	layoutID = 2147483649
)

func (w *PPTXWriter) writePresentation(zw *zip.Writer) error {
	var ids strings.Builder
	for i := range w.presentation.slides {
		fmt.Fprintf(&ids, "\n    <p:sldId id=\"%d\" r:id=\"rId%d\"/>", 256+i, i+2)
	}

	layout := w.presentation.layout
	typeAttr := ""
	if t := layout.pptType(); t != "" {
		typeAttr = fmt.Sprintf(` type="%s"`, t)
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s" saveSubsetFonts="1">
  <p:sldMasterIdLst>
    <p:sldMasterId id="%d" r:id="rId1"/>
  </p:sldMasterIdLst>
  <p:sldIdLst>%s
  </p:sldIdLst>
  <p:sldSz cx="%d" cy="%d"%s/>
  <p:notesSz cx="6858000" cy="9144000"/>
  <p:defaultTextStyle>
    <a:defPPr>
      <a:defRPr lang="en-US"/>
    </a:defPPr>
  </p:defaultTextStyle>
</p:presentation>`, nsDrawingML, nsOfficeDocRels, nsPresentationML,
		masterID, ids.String(), layout.CX, layout.CY, typeAttr)
	return writeRawXMLToZip(zw, "ppt/presentation.xml", content)
}

func (w *PPTXWriter) writePresProps(zw *zip.Writer) error {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentationPr xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"/>`, nsDrawingML, nsOfficeDocRels, nsPresentationML)
	return writeRawXMLToZip(zw, "ppt/presProps.xml", content)
}

func (w *PPTXWriter) writeViewProps(zw *zip.Writer) error {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:viewPr xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
  <p:normalViewPr>
    <p:restoredLeft sz="15620"/>
    <p:restoredTop sz="94660"/>
  </p:normalViewPr>
  <p:gridSpacing cx="76200" cy="76200"/>
</p:viewPr>`, nsDrawingML, nsOfficeDocRels, nsPresentationML)
	return writeRawXMLToZip(zw, "ppt/viewProps.xml", content)
}

func (w *PPTXWriter) writeTableStyles(zw *zip.Writer) error {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:tblStyleLst xmlns:a="%s" def="{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"/>`, nsDrawingML)
	return writeRawXMLToZip(zw, "ppt/tableStyles.xml", content)
}

// emptySpTree is the shape tree of the master and layout: no placeholders.
const emptySpTree = `    <p:spTree>
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
    </p:spTree>
`

func (w *PPTXWriter) writeSlideMaster(zw *zip.Writer) error {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
  <p:cSld>
    <p:bg>
      <p:bgRef idx="1001">
        <a:schemeClr val="bg1"/>
      </p:bgRef>
    </p:bg>
%s  </p:cSld>
  <p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>
  <p:sldLayoutIdLst>
    <p:sldLayoutId id="%d" r:id="rId1"/>
  </p:sldLayoutIdLst>
  <p:txStyles>
    <p:titleStyle>
      <a:lvl1pPr algn="ctr">
        <a:defRPr sz="4400" b="1"/>
      </a:lvl1pPr>
    </p:titleStyle>
    <p:bodyStyle>
      <a:lvl1pPr>
        <a:defRPr sz="1800"/>
      </a:lvl1pPr>
    </p:bodyStyle>
    <p:otherStyle>
      <a:defPPr>
        <a:defRPr lang="en-US"/>
      </a:defPPr>
    </p:otherStyle>
  </p:txStyles>
</p:sldMaster>`, nsDrawingML, nsOfficeDocRels, nsPresentationML, emptySpTree, layoutID)
	if err := writeRawXMLToZip(zw, "ppt/slideMasters/slideMaster1.xml", content); err != nil {
		return err
	}

	rels := xmlRelationships{Xmlns: nsRelationships}
	rels.add(relTypeSlideLayout, "../slideLayouts/slideLayout1.xml")
	rels.add(relTypeTheme, "../theme/theme1.xml")
	return writeXMLToZip(zw, "ppt/slideMasters/_rels/slideMaster1.xml.rels", rels)
}

func (w *PPTXWriter) writeSlideLayout(zw *zip.Writer) error {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:a="%s" xmlns:r="%s" xmlns:p="%s" type="blank" preserve="1">
  <p:cSld name="Blank">
%s  </p:cSld>
  <p:clrMapOvr>
    <a:masterClrMapping/>
  </p:clrMapOvr>
</p:sldLayout>`, nsDrawingML, nsOfficeDocRels, nsPresentationML, emptySpTree)
	if err := writeRawXMLToZip(zw, "ppt/slideLayouts/slideLayout1.xml", content); err != nil {
		return err
	}

	rels := xmlRelationships{Xmlns: nsRelationships}
	rels.add(relTypeSlideMaster, "../slideMasters/slideMaster1.xml")
	return writeXMLToZip(zw, "ppt/slideLayouts/_rels/slideLayout1.xml.rels", rels)
}

func (w *PPTXWriter) writeTheme(zw *zip.Writer) error {
	// Theme accents follow the bar palette.
	palette := gantt.DefaultPalette()
	var accents strings.Builder
	for i := 1; i <= 6; i++ {
		fmt.Fprintf(&accents, "\n      <a:accent%d><a:srgbClr val=\"%s\"/></a:accent%d>", i, palette.At(i-1).Hex(), i)
	}

	font := NewFont().Name
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="%s" name="%s">
  <a:themeElements>
    <a:clrScheme name="%s">
      <a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>
      <a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>
      <a:dk2><a:srgbClr val="44546A"/></a:dk2>
      <a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>%s
      <a:hlink><a:srgbClr val="0563C1"/></a:hlink>
      <a:folHlink><a:srgbClr val="954F72"/></a:folHlink>
    </a:clrScheme>
    <a:fontScheme name="%s">
      <a:majorFont>
        <a:latin typeface="%s"/>
        <a:ea typeface="%s"/>
        <a:cs typeface=""/>
      </a:majorFont>
      <a:minorFont>
        <a:latin typeface="%s"/>
        <a:ea typeface="%s"/>
        <a:cs typeface=""/>
      </a:minorFont>
    </a:fontScheme>
    <a:fmtScheme name="%s">
      <a:fillStyleLst>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"><a:tint val="50000"/></a:schemeClr></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"><a:shade val="80000"/></a:schemeClr></a:solidFill>
      </a:fillStyleLst>
      <a:lnStyleLst>
        <a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
        <a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
        <a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
      </a:lnStyleLst>
      <a:effectStyleLst>
        <a:effectStyle><a:effectLst/></a:effectStyle>
        <a:effectStyle><a:effectLst/></a:effectStyle>
        <a:effectStyle><a:effectLst/></a:effectStyle>
      </a:effectStyleLst>
      <a:bgFillStyleLst>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"><a:tint val="95000"/></a:schemeClr></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"><a:shade val="90000"/></a:schemeClr></a:solidFill>
      </a:bgFillStyleLst>
    </a:fmtScheme>
  </a:themeElements>
  <a:objectDefaults/>
  <a:extraClrSchemeLst/>
</a:theme>`, nsDrawingML, appName, appName, accents.String(),
		appName, font, font, font, font, appName)
	return writeRawXMLToZip(zw, "ppt/theme/theme1.xml", content)
}
