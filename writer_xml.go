package trackppt

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"
)

// XML namespace constants
const (
	nsRelationships  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsChart          = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	nsOfficeDocRels  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsDCTerms        = "http://purl.org/dc/terms/"
	nsDC             = "http://purl.org/dc/elements/1.1/"
	nsCoreProperties = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtProperties  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsXSI            = "http://www.w3.org/2001/XMLSchema-instance"

	relTypeSlide       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeSlideMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relTypeSlideLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relTypeTheme       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relTypePresProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	relTypeViewProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	relTypeTableStyles = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"
	relTypeOfficeDoc   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProps   = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtProps    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relTypeChart       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/chart"

	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps    = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps    = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles  = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtProps     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctRels         = "application/vnd.openxmlformats-package.relationships+xml"
	ctChart        = "application/vnd.openxmlformats-officedocument.drawingml.chart+xml"
)

func writeXMLToZip(zw *zip.Writer, path string, v any) error {
	fw, err := zw.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s in zip: %w", path, err)
	}
	if _, err := fw.Write([]byte(xml.Header)); err != nil {
		return err
	}
	enc := xml.NewEncoder(fw)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

func writeRawXMLToZip(zw *zip.Writer, path string, content string) error {
	fw, err := zw.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s in zip: %w", path, err)
	}
	_, err = fw.Write([]byte(content))
	return err
}

// --- Content Types ---

type xmlContentTypes struct {
	XMLName   xml.Name      `xml:"Types"`
	Xmlns     string        `xml:"xmlns,attr"`
	Defaults  []xmlDefault  `xml:"Default"`
	Overrides []xmlOverride `xml:"Override"`
}

type xmlDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

func (w *PPTXWriter) writeContentTypes(zw *zip.Writer) error {
	ct := xmlContentTypes{
		Xmlns: nsContentTypes,
		Defaults: []xmlDefault{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []xmlOverride{
			{PartName: "/ppt/presentation.xml", ContentType: ctPresentation},
			{PartName: "/ppt/presProps.xml", ContentType: ctPresProps},
			{PartName: "/ppt/viewProps.xml", ContentType: ctViewProps},
			{PartName: "/ppt/tableStyles.xml", ContentType: ctTableStyles},
			{PartName: "/ppt/slideMasters/slideMaster1.xml", ContentType: ctSlideMaster},
			{PartName: "/ppt/slideLayouts/slideLayout1.xml", ContentType: ctSlideLayout},
			{PartName: "/ppt/theme/theme1.xml", ContentType: ctTheme},
			{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
			{PartName: "/docProps/app.xml", ContentType: ctExtProps},
		},
	}

	for i := range w.presentation.slides {
		ct.Overrides = append(ct.Overrides, xmlOverride{
			PartName:    fmt.Sprintf("/ppt/slides/slide%d.xml", i+1),
			ContentType: ctSlide,
		})
	}
	for i := 1; i <= len(w.chartIndex); i++ {
		ct.Overrides = append(ct.Overrides, xmlOverride{
			PartName:    fmt.Sprintf("/ppt/charts/chart%d.xml", i),
			ContentType: ctChart,
		})
	}

	return writeXMLToZip(zw, "[Content_Types].xml", ct)
}

// --- Relationships ---

type xmlRelationships struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Xmlns         string            `xml:"xmlns,attr"`
	Relationships []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

func (r *xmlRelationships) add(typ, target string) {
	r.Relationships = append(r.Relationships, xmlRelationship{
		ID:     fmt.Sprintf("rId%d", len(r.Relationships)+1),
		Type:   typ,
		Target: target,
	})
}

func (w *PPTXWriter) writeRootRels(zw *zip.Writer) error {
	rels := xmlRelationships{Xmlns: nsRelationships}
	rels.add(relTypeOfficeDoc, "ppt/presentation.xml")
	rels.add(relTypeCoreProps, "docProps/core.xml")
	rels.add(relTypeExtProps, "docProps/app.xml")
	return writeXMLToZip(zw, "_rels/.rels", rels)
}

// writePresentationRels numbers the master rId1 and the slides rId2
// onwards; writePresentation relies on that order.
func (w *PPTXWriter) writePresentationRels(zw *zip.Writer) error {
	rels := xmlRelationships{Xmlns: nsRelationships}
	rels.add(relTypeSlideMaster, "slideMasters/slideMaster1.xml")
	for i := range w.presentation.slides {
		rels.add(relTypeSlide, fmt.Sprintf("slides/slide%d.xml", i+1))
	}
	rels.add(relTypePresProps, "presProps.xml")
	rels.add(relTypeViewProps, "viewProps.xml")
	rels.add(relTypeTableStyles, "tableStyles.xml")
	rels.add(relTypeTheme, "theme/theme1.xml")
	return writeXMLToZip(zw, "ppt/_rels/presentation.xml.rels", rels)
}

// --- App Properties ---

func (w *PPTXWriter) writeAppProperties(zw *zip.Writer) error {
	props := w.presentation.properties
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="%s" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">
  <Application>%s %s</Application>
  <Company>%s</Company>
  <Slides>%d</Slides>
</Properties>`, nsExtProperties, appName, Version, xmlEscape(props.Company), len(w.presentation.slides))
	return writeRawXMLToZip(zw, "docProps/app.xml", content)
}

// --- Core Properties ---

func (w *PPTXWriter) writeCoreProperties(zw *zip.Writer) error {
	props := w.presentation.properties
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="%s" xmlns:dc="%s" xmlns:dcterms="%s" xmlns:xsi="%s">
  <dc:creator>%s</dc:creator>
  <cp:lastModifiedBy>%s</cp:lastModifiedBy>
  <dc:title>%s</dc:title>
  <dc:description>%s</dc:description>
  <dc:subject>%s</dc:subject>
  <cp:keywords>%s</cp:keywords>
  <dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>`,
		nsCoreProperties, nsDC, nsDCTerms, nsXSI,
		xmlEscape(props.Creator),
		xmlEscape(props.LastModifiedBy),
		xmlEscape(props.Title),
		xmlEscape(props.Description),
		xmlEscape(props.Subject),
		xmlEscape(props.Keywords),
		props.Created.UTC().Format("2006-01-02T15:04:05Z"),
		props.Modified.UTC().Format("2006-01-02T15:04:05Z"),
	)
	return writeRawXMLToZip(zw, "docProps/core.xml", content)
}

func xmlEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}

func boolToXML(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
