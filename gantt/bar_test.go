package gantt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecomposeBarNarrow(t *testing.T) {
	red := DefaultPalette()[3]
	got := DecomposeBar(100, 40, 3, 6, red)
	want := []Element{
		&Ellipse{Box: Rect{X: 100, Y: 40, W: 6, H: 6}, Color: red},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecomposeBar mismatch (-want +got):\n%s", diff)
	}
}

func TestDecomposeBarCapsule(t *testing.T) {
	blue := DefaultPalette()[0]
	got := DecomposeBar(180, 95, 304, 4, blue)
	want := []Element{
		&Rectangle{Box: Rect{X: 182, Y: 95, W: 300, H: 4}, Color: blue},
		&Ellipse{Box: Rect{X: 180, Y: 95, W: 4, H: 4}, Color: blue},
		&Ellipse{Box: Rect{X: 480, Y: 95, W: 4, H: 4}, Color: blue},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecomposeBar mismatch (-want +got):\n%s", diff)
	}
	if b := unionBounds(got); b != (Rect{X: 180, Y: 95, W: 304, H: 4}) {
		t.Errorf("union of parts = %v, want the full bar", b)
	}
}

func TestDecomposeBarSquare(t *testing.T) {
	got := DecomposeBar(0, 0, 6, 6, Black)
	if len(got) != 3 {
		t.Fatalf("width == height gave %d shapes, want 3", len(got))
	}
	if r := got[0].Bounds(); r.W != 0 {
		t.Errorf("centre rectangle width = %d, want 0", r.W)
	}
}

func TestDecomposeBarSharedColor(t *testing.T) {
	c := Color{Name: "x", R: 1, G: 2, B: 3}
	for _, e := range DecomposeBar(0, 0, 50, 4, c) {
		var got Color
		switch s := e.(type) {
		case *Rectangle:
			got = s.Color
		case *Ellipse:
			got = s.Color
		default:
			t.Fatalf("unexpected element %T", e)
		}
		if got != c {
			t.Errorf("%T colour = %v, want %v", e, got, c)
		}
	}
}

func TestBarWidth(t *testing.T) {
	tests := []struct {
		span float64
		want int
	}{
		{0, MinBarWidth},
		{9.99, MinBarWidth},
		{10.5, 10},
		{304, 304},
		{456.7, 456},
	}
	for _, tt := range tests {
		if got := BarWidth(tt.span); got != tt.want {
			t.Errorf("BarWidth(%v) = %d, want %d", tt.span, got, tt.want)
		}
	}
}
