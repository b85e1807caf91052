package trackppt

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// readPackage writes p and returns every part of the package by name.
func readPackage(t *testing.T, p *Presentation) map[string]string {
	t.Helper()
	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reopen package: %v", err)
	}
	parts := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		parts[f.Name] = string(data)
	}
	return parts
}

// reportDeck has a timeline on slide 1, a line chart on slide 2 and a pie
// chart on slide 3.
func reportDeck(t *testing.T) *Presentation {
	t.Helper()
	p := New()
	p.GetDocumentProperties().Title = "Report & summary"
	p.EnsureSlides(3)
	s1, _ := p.SlideAt(1)
	if _, err := s1.AddGanttChart(trackingData, nil); err != nil {
		t.Fatal(err)
	}
	s2, _ := p.SlideAt(2)
	if _, err := s2.AddLineChart(LineChartData{Title: "Trend", Series: []LineSeries{{Name: "x", Values: []float64{1, 2.5}}}}); err != nil {
		t.Fatal(err)
	}
	s3, _ := p.SlideAt(3)
	if _, err := s3.AddPieChart(PieChartData{Title: "Share", Slices: []PieSlice{{"a", 60}, {"b", 40}}}); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestWritePackageParts(t *testing.T) {
	parts := readPackage(t, reportDeck(t))
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/app.xml",
		"docProps/core.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide3.xml",
		"ppt/slides/_rels/slide2.xml.rels",
		"ppt/charts/chart1.xml",
		"ppt/charts/chart2.xml",
	} {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing part %s", name)
		}
	}
	if _, ok := parts["ppt/charts/chart3.xml"]; ok {
		t.Error("unexpected third chart part")
	}

	// Every XML part must be well formed.
	for name, data := range parts {
		dec := xml.NewDecoder(strings.NewReader(data))
		for {
			_, err := dec.Token()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Errorf("%s: %v", name, err)
				break
			}
		}
	}
}

func TestWriteChartRelationships(t *testing.T) {
	parts := readPackage(t, reportDeck(t))

	if rels := parts["ppt/slides/_rels/slide1.xml.rels"]; strings.Contains(rels, "charts/") {
		t.Error("gantt slide references a chart part")
	}
	if rels := parts["ppt/slides/_rels/slide2.xml.rels"]; !strings.Contains(rels, `Target="../charts/chart1.xml"`) {
		t.Errorf("slide 2 rels do not point at chart1:\n%s", rels)
	}
	if rels := parts["ppt/slides/_rels/slide3.xml.rels"]; !strings.Contains(rels, `Target="../charts/chart2.xml"`) {
		t.Errorf("slide 3 rels do not point at chart2:\n%s", rels)
	}
	if ct := parts["[Content_Types].xml"]; !strings.Contains(ct, "/ppt/charts/chart2.xml") {
		t.Error("content types miss chart2")
	}

	line := parts["ppt/charts/chart1.xml"]
	for _, want := range []string{"<c:lineChart>", "<c:v>2.5</c:v>", "<c:catAx>", "<c:legendPos val=\"b\"/>", "Trend"} {
		if !strings.Contains(line, want) {
			t.Errorf("line chart part lacks %q", want)
		}
	}
	pie := parts["ppt/charts/chart2.xml"]
	for _, want := range []string{"<c:pieChart>", "<c:v>60</c:v>", "<c:dPt>", "<c:firstSliceAng val=\"0\"/>"} {
		if !strings.Contains(pie, want) {
			t.Errorf("pie chart part lacks %q", want)
		}
	}
	if strings.Contains(pie, "<c:catAx>") {
		t.Error("pie chart has a category axis")
	}
}

func TestWritePresentationPart(t *testing.T) {
	parts := readPackage(t, reportDeck(t))
	pres := parts["ppt/presentation.xml"]
	if !strings.Contains(pres, `<p:sldSz cx="12192000" cy="6858000"/>`) {
		t.Errorf("unexpected slide size in:\n%s", pres)
	}
	if n := strings.Count(pres, "<p:sldId "); n != 3 {
		t.Errorf("got %d slide ids, want 3", n)
	}
	if core := parts["docProps/core.xml"]; !strings.Contains(core, "Report &amp; summary") {
		t.Error("core properties lack the escaped title")
	}
}

func TestWriteGanttSlide(t *testing.T) {
	parts := readPackage(t, reportDeck(t))
	slide := parts["ppt/slides/slide1.xml"]
	if n := strings.Count(slide, "<p:grpSp>"); n != 3 {
		t.Errorf("got %d bar groups, want 3", n)
	}
	if n := strings.Count(slide, `<a:prstGeom prst="ellipse">`); n != 6 {
		t.Errorf("got %d bar caps, want 6", n)
	}
	if !strings.Contains(slide, `anchor="ctr"`) || !strings.Contains(slide, `wrap="none"`) {
		t.Error("labels are not centred single-line text boxes")
	}
	if !strings.Contains(slide, "<a:t>Tracking</a:t>") {
		t.Error("title text missing")
	}
}

func TestSaveRejectsInvalidPresentation(t *testing.T) {
	p := New()
	s, _ := p.GetSlide(0)
	g := s.CreateGroupShape()
	g.AddShape(NewChartShape())

	path := filepath.Join(t.TempDir(), "out", "bad.pptx")
	if err := p.Save(path); err == nil {
		t.Fatal("expected a validation error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed save left a file behind")
	}
}

func TestSaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "report.pptx")
	if err := reportDeck(t).Save(path); err != nil {
		t.Fatal(err)
	}
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()
	var names []string
	for _, f := range zr.File[:2] {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"[Content_Types].xml", "_rels/.rels"}, names); diff != "" {
		t.Errorf("first parts (-want +got):\n%s", diff)
	}
}

func TestNewWriter(t *testing.T) {
	if _, err := NewWriter(New(), WriterPowerPoint2007); err != nil {
		t.Fatal(err)
	}
	if _, err := NewWriter(New(), WriterType("ODPresentation")); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
