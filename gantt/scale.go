package gantt

import "math"

// DefaultMaxExtent is the axis extent used when no interval ends after 0.
const DefaultMaxExtent = 60

// AxisScale describes the time axis of one chart.
type AxisScale struct {
	MaxExtent     float64 // seconds covered by the axis
	PixelsPerUnit float64 // canvas units per second
	TickInterval  int     // seconds between ticks
}

// X maps a time to a horizontal offset from the left margin, truncated.
func (s AxisScale) X(t float64) int {
	return int(t * s.PixelsPerUnit)
}

// Ticks returns the tick positions 0, TickInterval, 2*TickInterval, ...
// up to and including MaxExtent. The sequence stops early at the last
// multiple that fits in an int.
func (s AxisScale) Ticks() []int {
	if s.TickInterval <= 0 {
		return nil
	}
	var ticks []int
	for t := 0; float64(t) <= s.MaxExtent; t += s.TickInterval {
		ticks = append(ticks, t)
		if t > math.MaxInt-s.TickInterval {
			break
		}
	}
	return ticks
}

// Geometry is the plot-area geometry derived from a canvas.
type Geometry struct {
	ChartWidth      int
	ChartHeight     int
	AxisAreaHeight  int
	AvailableHeight int // ChartHeight minus the axis strip
}

// AxisY returns the y coordinate of the horizontal time axis.
func (g Geometry) AxisY(c CanvasSpec) int {
	return c.TopMargin + g.AvailableHeight
}

// MaxExtent returns the largest end time, or DefaultMaxExtent if there are
// no intervals or none ends after 0.
func MaxExtent(intervals []Interval) float64 {
	var m float64
	for _, iv := range intervals {
		m = max(m, iv.End)
	}
	if m == 0 {
		return DefaultMaxExtent
	}
	return m
}

// ScaleTimeline computes the axis scale and plot geometry for intervals on
// canvas.
func ScaleTimeline(intervals []Interval, canvas CanvasSpec) (AxisScale, Geometry) {
	g := Geometry{
		ChartWidth:     canvas.ChartWidth(),
		ChartHeight:    canvas.ChartHeight(),
		AxisAreaHeight: canvas.AxisAreaHeight,
	}
	g.AvailableHeight = g.ChartHeight - g.AxisAreaHeight

	extent := MaxExtent(intervals)
	s := AxisScale{
		MaxExtent:     extent,
		PixelsPerUnit: float64(g.ChartWidth) / extent,
		TickInterval:  TickInterval(extent),
	}
	return s, g
}
