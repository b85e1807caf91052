package gantt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var sampleIntervals = []Interval{
	{"A", 0, 10},
	{"B", 5, 20},
	{"A", 15, 25},
}

func TestBuildWorkedExample(t *testing.T) {
	ch := Build("Tracking", sampleIntervals, nil)

	if ch.Scale.TickInterval != 5 {
		t.Errorf("TickInterval = %d, want 5", ch.Scale.TickInterval)
	}
	if ch.RowHeight != 95 || ch.BarHeight != 4 {
		t.Errorf("row/bar height = %d/%d, want 95/4", ch.RowHeight, ch.BarHeight)
	}

	p := DefaultPalette()
	wantCats := []Category{
		{Name: "A", Row: 0, Color: p[0]},
		{Name: "B", Row: 1, Color: p[1]},
	}
	if diff := cmp.Diff(wantCats, ch.Categories.Categories()); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}

	wantTitle := &TextLabel{
		Box:      Rect{X: 0, Y: 20, W: 1080, H: 50},
		Text:     "Tracking",
		FontSize: TitleFontSize,
		Bold:     true,
		Align:    AlignCenter,
		Color:    Black,
	}
	if diff := cmp.Diff(wantTitle, ch.Title); diff != "" {
		t.Errorf("title mismatch (-want +got):\n%s", diff)
	}

	if got, want := ch.YAxis.Box, (Rect{X: 180, Y: 50, W: 0, H: 190}); got != want {
		t.Errorf("y axis = %v, want %v", got, want)
	}
	if got, want := ch.XAxis.Box, (Rect{X: 180, Y: 240, W: 760, H: 0}); got != want {
		t.Errorf("x axis = %v, want %v", got, want)
	}
	if ch.XAxis.Width != AxisLineWidth {
		t.Errorf("axis width = %v, want %v", ch.XAxis.Width, AxisLineWidth)
	}

	if len(ch.RowLabels) != 2 {
		t.Fatalf("row labels = %d, want 2", len(ch.RowLabels))
	}
	if got, want := ch.RowLabels[0].Box, (Rect{X: 10, Y: 82, W: 160, H: 30}); got != want {
		t.Errorf("row 0 label = %v, want %v", got, want)
	}
	if got := ch.RowLabels[1].Box.Y; got != 177 {
		t.Errorf("row 1 label y = %d, want 177", got)
	}
	if ch.RowLabels[0].Align != AlignRight || ch.RowLabels[0].FontSize != RowLabelFontSize {
		t.Errorf("row label style = %v/%d", ch.RowLabels[0].Align, ch.RowLabels[0].FontSize)
	}

	var secs []int
	for _, tk := range ch.Ticks {
		secs = append(secs, tk.Seconds)
	}
	if diff := cmp.Diff([]int{0, 5, 10, 15, 20, 25}, secs); diff != "" {
		t.Errorf("ticks mismatch (-want +got):\n%s", diff)
	}
	first := ch.Ticks[0]
	if got, want := first.Mark.Box, (Rect{X: 180, Y: 240, W: 0, H: 10}); got != want {
		t.Errorf("tick 0 mark = %v, want %v", got, want)
	}
	if got, want := first.Label.Box, (Rect{X: 160, Y: 255, W: 40, H: 25}); got != want {
		t.Errorf("tick 0 label = %v, want %v", got, want)
	}
	if first.Label.Text != "0" || first.Label.FontSize != TickLabelFontSize {
		t.Errorf("tick 0 label = %q/%d", first.Label.Text, first.Label.FontSize)
	}

	if len(ch.Bars) != 3 {
		t.Fatalf("bars = %d, want 3", len(ch.Bars))
	}
	a1 := ch.Bars[0]
	if got, want := a1.Box, (Rect{X: 180, Y: 95, W: 304, H: 4}); got != want {
		t.Errorf("first bar = %v, want %v", got, want)
	}
	if a1.Category.Color != p[0] || ch.Bars[1].Category.Color != p[1] || ch.Bars[2].Category.Color != p[0] {
		t.Error("bar colours do not follow their category")
	}
	if ch.Bars[2].Box.Y != a1.Box.Y {
		t.Errorf("second A bar on y=%d, want the A row y=%d", ch.Bars[2].Box.Y, a1.Box.Y)
	}
}

func TestElementsOrderAndCount(t *testing.T) {
	elems := Build("Tracking", sampleIntervals, nil).Elements()
	// title + 2 axes + 2 row labels + 6*(mark+label) + 3 bars*3 parts
	if len(elems) != 26 {
		t.Fatalf("len(Elements()) = %d, want 26", len(elems))
	}
	if _, ok := elems[0].(*TextLabel); !ok {
		t.Errorf("elems[0] = %T, want title label", elems[0])
	}
	for i := 1; i <= 2; i++ {
		if _, ok := elems[i].(*Line); !ok {
			t.Errorf("elems[%d] = %T, want axis line", i, elems[i])
		}
	}
	for i := 5; i < 17; i += 2 {
		if _, ok := elems[i].(*Line); !ok {
			t.Errorf("elems[%d] = %T, want tick mark", i, elems[i])
		}
		if _, ok := elems[i+1].(*TextLabel); !ok {
			t.Errorf("elems[%d] = %T, want tick label", i+1, elems[i+1])
		}
	}
	for i := 17; i < 26; i += 3 {
		if _, ok := elems[i].(*Rectangle); !ok {
			t.Errorf("elems[%d] = %T, want bar rectangle", i, elems[i])
		}
	}
}

func TestLayoutWithoutTitle(t *testing.T) {
	withTitle := Layout("T", sampleIntervals, DefaultCanvas())
	without := Layout("", sampleIntervals, DefaultCanvas())
	if len(withTitle)-len(without) != 1 {
		t.Errorf("empty title removed %d elements, want 1", len(withTitle)-len(without))
	}
	if _, ok := without[0].(*Line); !ok {
		t.Errorf("first element without title = %T, want y axis", without[0])
	}
}

func TestLayoutEmpty(t *testing.T) {
	ch := Build("", nil, nil)
	if ch.Scale.MaxExtent != DefaultMaxExtent || ch.Scale.TickInterval != 10 {
		t.Errorf("scale = %+v, want extent 60 tick 10", ch.Scale)
	}
	if len(ch.RowLabels) != 0 || len(ch.Bars) != 0 {
		t.Errorf("empty input produced %d labels, %d bars", len(ch.RowLabels), len(ch.Bars))
	}
	// axes + 7 ticks (0..60)
	if got := len(ch.Elements()); got != 2+2*7 {
		t.Errorf("len(Elements()) = %d, want 16", got)
	}
}

func TestShortIntervalGetsMinimumWidth(t *testing.T) {
	ch := Build("", []Interval{{"A", 0, 0}, {"B", 0, 100}}, nil)
	if got := ch.Bars[0].Box.W; got != MinBarWidth {
		t.Errorf("zero-length bar width = %d, want %d", got, MinBarWidth)
	}
}

func TestTallCanvasKeepsBarHeightCap(t *testing.T) {
	var intervals []Interval
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q", "r", "s", "t"} {
		intervals = append(intervals, Interval{name, 0, 1})
	}
	opts := DefaultOptions()
	opts.Canvas.InitialHeight = 2000
	ch := Build("", intervals, opts)
	if ch.BarHeight != MaxBarHeight {
		t.Fatalf("BarHeight = %d", ch.BarHeight)
	}
	for _, b := range ch.Bars {
		if len(b.Shapes) != 3 {
			t.Errorf("bar %s has %d shapes, want 3", b.Interval.Category, len(b.Shapes))
		}
	}
}

func TestRowLabelSize(t *testing.T) {
	tests := []struct {
		label string
		min   int
		want  int
	}{
		{"short", 6, 14},
		{"ninechars", 6, 14},
		{"tenchars!!", 6, 13},
		{"this label is rather long", 6, 6},
		{"this label is rather long", 1, 1},
		{"北斗卫星导航接收终端", 6, 13}, // ten runes
	}
	for _, tt := range tests {
		if got := RowLabelSize(tt.label, tt.min); got != tt.want {
			t.Errorf("RowLabelSize(%q, %d) = %d, want %d", tt.label, tt.min, got, tt.want)
		}
	}
}

func TestOptionsResolve(t *testing.T) {
	var nilOpts *Options
	if diff := cmp.Diff(*DefaultOptions(), nilOpts.resolve()); diff != "" {
		t.Errorf("nil options mismatch (-want +got):\n%s", diff)
	}
	r := (&Options{MinLabelFontSize: 9}).resolve()
	if r.MinLabelFontSize != 9 || len(r.Palette) != 8 || r.Canvas != DefaultCanvas() {
		t.Errorf("partial options resolved to %+v", r)
	}
}

func TestBuildDoesNotModifyInput(t *testing.T) {
	in := []Interval{{"A", 0, 10}, {"B", 5, 20}}
	saved := append([]Interval(nil), in...)
	Build("x", in, nil)
	if diff := cmp.Diff(saved, in); diff != "" {
		t.Errorf("input modified (-before +after):\n%s", diff)
	}
}

func TestManyRowsStillDrawBars(t *testing.T) {
	var intervals []Interval
	for i := range 50 {
		intervals = append(intervals, Interval{string(rune('A' + i)), 0, 5})
	}
	ch := Build("", intervals, nil)
	if ch.RowHeight != 3 || ch.BarHeight != 1 {
		t.Fatalf("row/bar height = %d/%d, want 3/1", ch.RowHeight, ch.BarHeight)
	}
	for _, b := range ch.Bars {
		if b.Box.H != 1 || b.Box.W < MinBarWidth {
			t.Errorf("bar %s box = %v", b.Interval.Category, b.Box)
		}
	}
}
