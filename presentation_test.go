package trackppt

import (
	"errors"
	"strings"
	"testing"

	"github.com/VantageDataChat/trackppt/gantt"
)

func TestNewPresentation(t *testing.T) {
	p := New()
	if p.GetSlideCount() != 1 {
		t.Errorf("new presentation has %d slides, want 1", p.GetSlideCount())
	}
	if l := p.GetLayout(); l.CX != 12192000 || l.CY != 6858000 || l.Name != LayoutScreen16x9 {
		t.Errorf("layout = %+v", l)
	}
	if p.GetDocumentProperties().Creator != appName {
		t.Errorf("creator = %q", p.GetDocumentProperties().Creator)
	}
}

func TestSlideLookup(t *testing.T) {
	p := New()
	p.EnsureSlides(3)
	p.EnsureSlides(2)
	if p.GetSlideCount() != 3 {
		t.Fatalf("got %d slides, want 3", p.GetSlideCount())
	}
	byIndex, err := p.GetSlide(2)
	if err != nil {
		t.Fatal(err)
	}
	byPage, err := p.SlideAt(3)
	if err != nil {
		t.Fatal(err)
	}
	if byIndex != byPage {
		t.Error("GetSlide(2) and SlideAt(3) differ")
	}
	for _, page := range []int{0, 4, -1} {
		if _, err := p.SlideAt(page); !errors.Is(err, ErrSlideOutOfRange) {
			t.Errorf("SlideAt(%d) err = %v", page, err)
		}
	}
	if _, err := p.GetSlide(3); !errors.Is(err, ErrSlideOutOfRange) {
		t.Errorf("GetSlide(3) err = %v", err)
	}
}

func TestRemoveSlide(t *testing.T) {
	p := New()
	second := p.CreateSlide()
	if err := p.RemoveSlideByIndex(0); err != nil {
		t.Fatal(err)
	}
	if s, _ := p.GetSlide(0); s != second {
		t.Error("wrong slide removed")
	}
	if err := p.RemoveSlideByIndex(0); err == nil {
		t.Error("removed the last slide")
	}
	if err := p.RemoveSlideByIndex(5); !errors.Is(err, ErrSlideOutOfRange) {
		t.Errorf("err = %v", err)
	}
}

func TestLayouts(t *testing.T) {
	if l := NewCanvasLayout(gantt.DefaultCanvas()); l.Name != LayoutScreen16x9 {
		t.Errorf("default canvas layout = %+v, want the 16:9 preset", l)
	}
	c := gantt.DefaultCanvas()
	c.TotalWidth, c.Height = 1000, 500
	if l := NewCanvasLayout(c); l.Name != LayoutCustom || l.CX != 9525000 || l.CY != 4762500 {
		t.Errorf("custom canvas layout = %+v", l)
	}

	l := NewDocumentLayout()
	l.SetLayout(LayoutScreen4x3)
	if l.CX != 9144000 || l.pptType() != "screen4x3" {
		t.Errorf("4:3 layout = %+v", l)
	}
	l.SetLayout("nonsense")
	if l.Name != LayoutScreen4x3 {
		t.Error("unknown layout name changed the layout")
	}
	l.SetCustomLayout(0, -1)
	if l.CX != 12192000 || l.CY != 6858000 || l.pptType() != "custom" {
		t.Errorf("fallback custom layout = %+v", l)
	}
}

func TestValidate(t *testing.T) {
	p := New()
	if err := p.Validate(); err != nil {
		t.Fatalf("blank presentation: %v", err)
	}

	s, _ := p.GetSlide(0)
	g := s.CreateGroupShape()
	g.AddShape(NewAutoShape().SetSolid(Color{ARGB: "nothex!!"}))
	g.AddShape(NewChartShape())
	ln := s.CreateLineShape()
	ln.SetLineColor(Color{ARGB: "12"})
	s.AddShape(NewRichTextShape())
	unsupported := s.CreateChartShape()
	unsupported.GetPlotArea().SetType(NewLineChart())

	err := p.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{
		"fill color is invalid ARGB",
		"chart cannot be grouped",
		"line color is invalid ARGB",
		"chart has no series",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("validation error lacks %q:\n%v", want, err)
		}
	}
}

func TestColors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#1f77b4", "FF1F77B4"},
		{"801F77B4", "801F77B4"},
		{"xyz", "FF000000"},
		{"GG0000", "FF000000"},
	}
	for _, tt := range tests {
		if got := NewColor(tt.in).ARGB; got != tt.want {
			t.Errorf("NewColor(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	c := NewColorRGB(1, 2, 255)
	if c.Red() != 1 || c.Green() != 2 || c.Blue() != 255 || c.Alpha() != 255 || c.RGB() != "0102FF" {
		t.Errorf("NewColorRGB components wrong: %v", c)
	}
	if got := colorFromGantt(gantt.Color{R: 0x12, G: 0x34, B: 0x56}); got.ARGB != "FF123456" {
		t.Errorf("colorFromGantt = %v", got)
	}
}

func TestMeasurements(t *testing.T) {
	if Inch(1) != 914400 || Point(1) != 12700 || Pixel(1) != 9525 {
		t.Error("unit constants wrong")
	}
	if Centimeter(1) != 360000 || Millimeter(10) != 360000 {
		t.Error("metric conversions wrong")
	}
	if Pixel(1280) != 12192000 || Pixel(720) != 6858000 {
		t.Error("default canvas does not match the 16:9 slide")
	}
	if EMUToPixel(9525) != 1 || EMUToPoint(12700) != 1 || EMUToInch(914400) != 1 {
		t.Error("inverse conversions wrong")
	}
	if Inch(1e30) != maxEMU || Inch(-1e30) != -maxEMU {
		t.Error("huge values are not clamped")
	}
}
