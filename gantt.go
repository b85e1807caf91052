package trackppt

import (
	"fmt"

	"github.com/VantageDataChat/trackppt/gantt"
)

// GanttChartData is the input of a timeline slide.
type GanttChartData struct {
	Title     string
	Intervals []gantt.Interval
}

// AddGanttChart lays out a timeline and appends its shapes to the slide.
// Furniture (title, axes, labels, ticks) becomes individual shapes; each bar
// becomes one group. The returned chart is the layout the shapes were built
// from.
func (s *Slide) AddGanttChart(data GanttChartData, opts *gantt.Options) (*gantt.Chart, error) {
	if err := gantt.ValidateAll(data.Intervals); err != nil {
		return nil, fmt.Errorf("gantt chart %q: %w", data.Title, err)
	}
	ch := gantt.Build(data.Title, data.Intervals, opts)

	if ch.Title != nil {
		s.AddShape(shapeFromElement(ch.Title))
	}
	s.AddShape(shapeFromElement(ch.YAxis))
	s.AddShape(shapeFromElement(ch.XAxis))
	for _, l := range ch.RowLabels {
		s.AddShape(shapeFromElement(l))
	}
	for _, t := range ch.Ticks {
		s.AddShape(shapeFromElement(t.Mark))
		s.AddShape(shapeFromElement(t.Label))
	}
	for i, b := range ch.Bars {
		g := NewGroupShape()
		g.SetName(fmt.Sprintf("%s %d", b.Category.Name, i+1))
		for _, e := range b.Shapes {
			g.AddShape(shapeFromElement(e))
		}
		s.AddShape(g)
	}
	return ch, nil
}

// shapeFromElement converts one layout element to a slide shape.
func shapeFromElement(e gantt.Element) Shape {
	switch e := e.(type) {
	case *gantt.TextLabel:
		tb := NewRichTextShape()
		tb.setPixelBox(e.Box.X, e.Box.Y, e.Box.W, e.Box.H)
		tb.SetWordWrap(false)
		tb.SetTextAnchor(TextAnchorMiddle)
		tb.SetZeroInsets(true)
		tb.GetActiveParagraph().SetAlignment(horizontalFromGantt(e.Align))
		tb.CreateTextRun(e.Text).GetFont().
			SetSize(e.FontSize).
			SetBold(e.Bold).
			SetColor(colorFromGantt(e.Color))
		return tb
	case *gantt.Line:
		ln := NewLineShape()
		ln.setPixelBox(e.Box.X, e.Box.Y, e.Box.W, e.Box.H)
		ln.SetLineWidth(e.Width).SetLineColor(colorFromGantt(e.Color))
		return ln
	case *gantt.Rectangle:
		r := NewAutoShape().SetSolid(colorFromGantt(e.Color))
		r.setPixelBox(e.Box.X, e.Box.Y, e.Box.W, e.Box.H)
		return r
	case *gantt.Ellipse:
		el := NewAutoShape().SetAutoShapeType(AutoShapeEllipse).SetSolid(colorFromGantt(e.Color))
		el.setPixelBox(e.Box.X, e.Box.Y, e.Box.W, e.Box.H)
		return el
	}
	panic(fmt.Sprintf("trackppt: unknown gantt element %T", e))
}
