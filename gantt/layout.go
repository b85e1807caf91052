package gantt

import (
	"strconv"
	"unicode/utf8"
)

// Text and stroke constants of the chart furniture.
const (
	TitleFontSize     = 18
	RowLabelFontSize  = 14
	TickLabelFontSize = 12

	// Row labels longer than this many characters shrink by one point per
	// extra character.
	LabelShrinkThreshold = 9
	// DefaultMinLabelFontSize is the floor applied to shrinking row labels.
	DefaultMinLabelFontSize = 6

	AxisLineWidth = 2.0
	TickLineWidth = 1.0

	titleY          = 20
	titleHeight     = 50
	rowLabelX       = 10
	rowLabelHeight  = 30
	tickLength      = 10
	tickLabelOffset = 15
	tickLabelWidth  = 40
	tickLabelHeight = 25
)

// Options configures a chart build. Zero fields take their defaults, so a
// nil *Options is valid.
type Options struct {
	Canvas           CanvasSpec
	Palette          Palette
	MinLabelFontSize int
}

// DefaultOptions returns the default canvas, palette and label floor.
func DefaultOptions() *Options {
	return &Options{
		Canvas:           DefaultCanvas(),
		Palette:          DefaultPalette(),
		MinLabelFontSize: DefaultMinLabelFontSize,
	}
}

func (o *Options) resolve() Options {
	if o == nil {
		return *DefaultOptions()
	}
	r := *o
	r.Canvas = r.Canvas.withDefaults()
	if len(r.Palette) == 0 {
		r.Palette = DefaultPalette()
	}
	if r.MinLabelFontSize <= 0 {
		r.MinLabelFontSize = DefaultMinLabelFontSize
	}
	return r
}

// Tick is one axis tick: a short vertical mark and its numeric label.
type Tick struct {
	Seconds int
	Mark    *Line
	Label   *TextLabel
}

// Bar is the drawn form of one interval.
type Bar struct {
	Interval Interval
	Category Category
	Box      Rect      // bounding box of the whole capsule
	Shapes   []Element // output of DecomposeBar
}

// Chart is the structured result of a layout.
type Chart struct {
	Canvas     CanvasSpec
	Scale      AxisScale
	Geometry   Geometry
	Categories *CategoryLayout
	RowHeight  int
	BarHeight  int

	Title     *TextLabel // nil when the chart has no title
	YAxis     *Line
	XAxis     *Line
	RowLabels []*TextLabel // in row order
	Ticks     []Tick
	Bars      []Bar // in input order
}

// Layout lays out a chart with the default palette and returns its drawable
// elements. An empty title omits the title label.
func Layout(title string, intervals []Interval, canvas CanvasSpec) []Element {
	return Build(title, intervals, &Options{Canvas: canvas}).Elements()
}

// Build lays out a chart. Intervals are read, never modified; they are
// expected to satisfy Interval.Validate.
func Build(title string, intervals []Interval, opts *Options) *Chart {
	o := opts.resolve()
	canvas := o.Canvas

	scale, geom := ScaleTimeline(intervals, canvas)
	cats := AssignRows(intervals, o.Palette)
	rowHeight := cats.RowHeight(geom.AvailableHeight)

	ch := &Chart{
		Canvas:     canvas,
		Scale:      scale,
		Geometry:   geom,
		Categories: cats,
		RowHeight:  rowHeight,
		BarHeight:  BarHeight(rowHeight),
	}

	if title != "" {
		ch.Title = &TextLabel{
			Box:      Rect{X: 0, Y: titleY, W: canvas.Width, H: titleHeight},
			Text:     title,
			FontSize: TitleFontSize,
			Bold:     true,
			Align:    AlignCenter,
			Color:    Black,
		}
	}

	axisY := geom.AxisY(canvas)
	ch.YAxis = &Line{
		Box:   Rect{X: canvas.LeftMargin, Y: canvas.TopMargin, W: 0, H: axisY - canvas.TopMargin},
		Width: AxisLineWidth,
		Color: Black,
	}
	ch.XAxis = &Line{
		Box:   Rect{X: canvas.LeftMargin, Y: axisY, W: geom.ChartWidth, H: 0},
		Width: AxisLineWidth,
		Color: Black,
	}

	for _, c := range cats.order {
		ch.RowLabels = append(ch.RowLabels, &TextLabel{
			Box: Rect{
				X: rowLabelX,
				Y: canvas.TopMargin + c.Row*rowHeight + (rowHeight-rowLabelHeight)/2,
				W: canvas.LeftMargin - 2*rowLabelX,
				H: rowLabelHeight,
			},
			Text:     c.Name,
			FontSize: RowLabelSize(c.Name, o.MinLabelFontSize),
			Align:    AlignRight,
			Color:    Black,
		})
	}

	for _, sec := range scale.Ticks() {
		x := canvas.LeftMargin + scale.X(float64(sec))
		ch.Ticks = append(ch.Ticks, Tick{
			Seconds: sec,
			Mark: &Line{
				Box:   Rect{X: x, Y: axisY, W: 0, H: tickLength},
				Width: TickLineWidth,
				Color: Black,
			},
			Label: &TextLabel{
				Box:      Rect{X: x - tickLabelWidth/2, Y: axisY + tickLabelOffset, W: tickLabelWidth, H: tickLabelHeight},
				Text:     strconv.Itoa(sec),
				FontSize: TickLabelFontSize,
				Align:    AlignCenter,
				Color:    Black,
			},
		})
	}

	for _, iv := range intervals {
		c, _ := cats.Lookup(iv.Category)
		x := canvas.LeftMargin + scale.X(iv.Start)
		y := canvas.TopMargin + c.Row*rowHeight + (rowHeight-ch.BarHeight)/2
		w := BarWidth(iv.Duration() * scale.PixelsPerUnit)
		shapes := DecomposeBar(x, y, w, ch.BarHeight, c.Color)
		ch.Bars = append(ch.Bars, Bar{
			Interval: iv,
			Category: c,
			Box:      unionBounds(shapes),
			Shapes:   shapes,
		})
	}
	return ch
}

// Elements flattens the chart in drawing order: title, y axis, x axis, row
// labels, ticks (mark then label), bars.
func (ch *Chart) Elements() []Element {
	n := 2 + len(ch.RowLabels) + 2*len(ch.Ticks) + 3*len(ch.Bars)
	out := make([]Element, 0, n+1)
	if ch.Title != nil {
		out = append(out, ch.Title)
	}
	out = append(out, ch.YAxis, ch.XAxis)
	for _, l := range ch.RowLabels {
		out = append(out, l)
	}
	for _, t := range ch.Ticks {
		out = append(out, t.Mark, t.Label)
	}
	for _, b := range ch.Bars {
		out = append(out, b.Shapes...)
	}
	return out
}

// RowLabelSize returns the font size for a row label: RowLabelFontSize,
// minus one point per character beyond LabelShrinkThreshold, but never below
// minSize.
func RowLabelSize(label string, minSize int) int {
	n := utf8.RuneCountInString(label)
	size := RowLabelFontSize
	if n > LabelShrinkThreshold {
		size -= n - LabelShrinkThreshold
	}
	return max(size, minSize)
}

func unionBounds(elems []Element) Rect {
	if len(elems) == 0 {
		return Rect{}
	}
	b := elems[0].Bounds()
	x0, y0, x1, y1 := b.X, b.Y, b.X+b.W, b.Y+b.H
	for _, e := range elems[1:] {
		r := e.Bounds()
		x0 = min(x0, r.X)
		y0 = min(y0, r.Y)
		x1 = max(x1, r.X+r.W)
		y1 = max(y1, r.Y+r.H)
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
