package trackppt

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/VantageDataChat/trackppt/gantt"
)

func isolatedOptions() *RenderOptions {
	opts := DefaultRenderOptions()
	opts.FontCache = NewIsolatedFontCache()
	return opts
}

func TestSlideToImageSize(t *testing.T) {
	p := New()
	tests := []struct {
		width        int
		wantW, wantH int
	}{
		{0, 1280, 720},
		{1280, 1280, 720},
		{640, 640, 360},
	}
	for _, tt := range tests {
		opts := isolatedOptions()
		opts.Width = tt.width
		img, err := p.SlideToImage(0, opts)
		if err != nil {
			t.Fatal(err)
		}
		if b := img.Bounds(); b.Dx() != tt.wantW || b.Dy() != tt.wantH {
			t.Errorf("width %d: got %dx%d, want %dx%d", tt.width, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
		}
	}
}

func TestSlideToImageOutOfRange(t *testing.T) {
	if _, err := New().SlideToImage(3, isolatedOptions()); !errors.Is(err, ErrSlideOutOfRange) {
		t.Errorf("err = %v, want ErrSlideOutOfRange", err)
	}
}

func TestRenderGanttBars(t *testing.T) {
	p := New()
	s, _ := p.GetSlide(0)
	ch, err := s.AddGanttChart(trackingData, nil)
	if err != nil {
		t.Fatal(err)
	}
	img, err := p.SlideToImage(0, isolatedOptions())
	if err != nil {
		t.Fatal(err)
	}

	// At full width one image pixel is one canvas pixel.
	palette := gantt.DefaultPalette()
	for i, bar := range ch.Bars {
		want := toRGBA(colorFromGantt(bar.Category.Color))
		x, y := bar.Box.X+bar.Box.W/2, bar.Box.Y+bar.Box.H/2
		if got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA); got != want {
			t.Errorf("bar %d centre (%d,%d) = %v, want %v", i, x, y, got, want)
		}
	}
	if ch.Bars[1].Category.Color != palette[1] {
		t.Errorf("second bar colour = %v", ch.Bars[1].Category.Color)
	}

	// Background stays white away from the chart.
	if got := color.RGBAModel.Convert(img.At(5, 710)).(color.RGBA); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("corner pixel = %v, want white", got)
	}
}

func TestRenderBackground(t *testing.T) {
	p := New()
	s, _ := p.GetSlide(0)
	s.SetBackground(NewColor("102030"))
	opts := isolatedOptions()
	opts.Width = 64
	img, err := p.SlideToImage(0, opts)
	if err != nil {
		t.Fatal(err)
	}
	want := color.RGBA{0x10, 0x20, 0x30, 0xFF}
	if got := color.RGBAModel.Convert(img.At(10, 10)).(color.RGBA); got != want {
		t.Errorf("background = %v, want %v", got, want)
	}

	bg := color.RGBA{1, 2, 3, 255}
	opts.BackgroundColor = &bg
	img, err = p.SlideToImage(0, opts)
	if err != nil {
		t.Fatal(err)
	}
	if got := color.RGBAModel.Convert(img.At(10, 10)).(color.RGBA); got != bg {
		t.Errorf("override background = %v, want %v", got, bg)
	}
}

func TestRenderCharts(t *testing.T) {
	p := reportDeck(t)
	opts := isolatedOptions()
	opts.Width = 640
	images, err := p.SlidesToImages(opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(images) != 3 {
		t.Fatalf("got %d images", len(images))
	}

	// The pie fills the centre of its frame with the first slice colour:
	// slice "a" runs clockwise from twelve o'clock to past six.
	pie := images[2]
	first := toRGBA(colorFromGantt(gantt.DefaultPalette()[0]))
	cx, cy := 640/2+20, 360/2
	if got := color.RGBAModel.Convert(pie.At(cx, cy)).(color.RGBA); got != first {
		t.Errorf("pie pixel right of centre = %v, want %v", got, first)
	}

	if countColor(images[1], toRGBA(colorFromGantt(gantt.DefaultPalette()[0]))) == 0 {
		t.Error("line chart draws no series pixels")
	}
}

func countColor(img image.Image, c color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)).(color.RGBA) == c {
				n++
			}
		}
	}
	return n
}

func TestSaveSlidesAsImages(t *testing.T) {
	dir := t.TempDir()
	p := New()
	p.EnsureSlides(2)
	opts := isolatedOptions()
	opts.Width = 320
	if err := p.SaveSlidesAsImages(filepath.Join(dir, "png", "slide%02d.png"), opts); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"slide01.png", "slide02.png"} {
		f, err := os.Open(filepath.Join(dir, "png", name))
		if err != nil {
			t.Fatal(err)
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if cfg.Width != 320 || cfg.Height != 180 {
			t.Errorf("%s is %dx%d, want 320x180", name, cfg.Width, cfg.Height)
		}
	}
}

func TestFontCacheFallback(t *testing.T) {
	fc := NewIsolatedFontCache()
	face := fc.Face("No Such Font", 12, false)
	if face == nil {
		t.Fatal("Face returned nil")
	}
	if face != fc.Face("no such font", 12, false) {
		t.Error("faces are not cached by lower-case name")
	}
	if face == fc.Face("No Such Font", 12, true) {
		t.Error("bold and regular share a face")
	}
	if err := fc.LoadFontData("broken", []byte("not a font")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestWrapRunLine(t *testing.T) {
	fc := NewIsolatedFontCache()
	face := fc.Face("x", 10, false)
	line := buildTextLine([]textRun{{text: "abcdefghij", face: face, color: color.RGBA{A: 255}}}, HorizontalLeft)
	lines := wrapRunLine(line, line.width/3)
	if len(lines) < 3 {
		t.Errorf("got %d lines, want at least 3", len(lines))
	}
	text := ""
	for _, l := range lines {
		for _, r := range l.runs {
			text += r.text
		}
	}
	if text != "abcdefghij" {
		t.Errorf("wrapped text = %q", text)
	}
}
