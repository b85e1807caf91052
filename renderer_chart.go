package trackppt

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"golang.org/x/image/font"
)

// Chart previews are approximations of what an Office application draws:
// title on top, legend at the bottom, the plot in between.

var (
	gridColor  = color.RGBA{R: 217, G: 217, B: 217, A: 255}
	axisColor  = color.RGBA{R: 89, G: 89, B: 89, A: 255}
	labelColor = color.RGBA{R: 64, G: 64, B: 64, A: 255}
)

const (
	chartPadding   = 10 // canvas pixels
	chartLabelSize = 10 // points
	legendSwatch   = 10 // canvas pixels
)

func (r *renderer) renderChart(cs *ChartShape) {
	rect := r.box(&cs.BaseShape)
	if cs.plotArea.chartType == nil || rect.Empty() {
		return
	}
	unit := r.canvasScale()
	plot := rect.Inset(int(chartPadding * unit))

	if cs.title.Visible && cs.title.Text != "" {
		face := r.face(cs.title.Font)
		h := face.Metrics().Height.Ceil()
		r.drawString(cs.title.Text, face, toRGBA(cs.title.Font.Color), (plot.Min.X+plot.Max.X)/2, plot.Min.Y+face.Metrics().Ascent.Ceil(), HorizontalCenter)
		plot.Min.Y += h + int(chartPadding*unit)
	}

	labelFace := r.face(&Font{Name: NewFont().Name, Size: chartLabelSize})
	entries := legendEntries(cs.plotArea.chartType)
	if cs.legend.Visible && len(entries) > 0 {
		lh := labelFace.Metrics().Height.Ceil()
		plot.Max.Y -= lh + int(chartPadding*unit)
		r.drawLegend(entries, labelFace, image.Rect(plot.Min.X, plot.Max.Y+int(chartPadding*unit), plot.Max.X, plot.Max.Y+int(chartPadding*unit)+lh))
	}

	switch c := cs.plotArea.chartType.(type) {
	case *LineChart:
		r.drawLineChart(c, cs.plotArea.axisY, plot, labelFace)
	case *PieChart:
		r.drawPieChart(c, plot)
	}
}

// canvasScale returns image pixels per canvas pixel.
func (r *renderer) canvasScale() float64 {
	return emuPerPixel * r.scale
}

type legendEntry struct {
	name  string
	color color.RGBA
}

func legendEntries(ct ChartType) []legendEntry {
	var out []legendEntry
	switch c := ct.(type) {
	case *LineChart:
		for _, s := range c.Series {
			out = append(out, legendEntry{name: s.Title, color: toRGBA(s.FillColor)})
		}
	case *PieChart:
		if len(c.Series) == 0 {
			return nil
		}
		s := c.Series[0]
		for i, cat := range s.Categories {
			e := legendEntry{name: cat, color: axisColor}
			if i < len(s.PointColors) {
				e.color = toRGBA(s.PointColors[i])
			}
			out = append(out, e)
		}
	}
	return out
}

// drawLegend centres the entries on one row inside rect.
func (r *renderer) drawLegend(entries []legendEntry, face font.Face, rect image.Rectangle) {
	sw := max(1, int(legendSwatch*r.canvasScale()))
	gap := sw
	total := 0
	for i, e := range entries {
		if i > 0 {
			total += 2 * gap
		}
		total += sw + gap/2 + font.MeasureString(face, e.name).Ceil()
	}
	x := rect.Min.X + (rect.Dx()-total)/2
	mid := (rect.Min.Y + rect.Max.Y) / 2
	for _, e := range entries {
		sq := image.Rect(x, mid-sw/2, x+sw, mid-sw/2+sw)
		draw.Draw(r.img, sq, &image.Uniform{e.color}, image.Point{}, draw.Over)
		x += sw + gap/2
		r.drawString(e.name, face, labelColor, x, mid+face.Metrics().Ascent.Ceil()/2, HorizontalLeft)
		x += font.MeasureString(face, e.name).Ceil() + 2*gap
	}
}

func (r *renderer) drawLineChart(c *LineChart, axis *ChartAxis, plot image.Rectangle, face font.Face) {
	cats := chartCategories(c)
	if len(cats) == 0 {
		return
	}
	lo, hi := valueRange(c.Series)
	if axis.MinBounds != nil {
		lo = *axis.MinBounds
	}
	if axis.MaxBounds != nil {
		hi = *axis.MaxBounds
	}
	step := niceStep(hi - lo)
	if axis.MajorUnit != nil && *axis.MajorUnit > 0 {
		step = *axis.MajorUnit
	}
	lo = math.Floor(lo/step) * step
	hi = math.Ceil(hi/step) * step
	if hi <= lo {
		hi = lo + step
	}

	labelW := 0
	for v := lo; v <= hi+step/2; v += step {
		labelW = max(labelW, font.MeasureString(face, formatTick(v, step)).Ceil())
	}
	lh := face.Metrics().Height.Ceil()
	area := image.Rect(plot.Min.X+labelW+lh/2, plot.Min.Y, plot.Max.X, plot.Max.Y-lh-lh/2)
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}
	yOf := func(v float64) int {
		return area.Max.Y - int(math.Round((v-lo)/(hi-lo)*float64(area.Dy())))
	}

	for v := lo; v <= hi+step/2; v += step {
		y := yOf(v)
		r.drawThickLine(area.Min.X, y, area.Max.X, y, 1, gridColor)
		r.drawString(formatTick(v, step), face, labelColor, area.Min.X-lh/2, y+face.Metrics().Ascent.Ceil()/2, HorizontalRight)
	}

	// Categories sit at the centre of equal slots.
	slot := float64(area.Dx()) / float64(len(cats))
	xOf := func(i int) int {
		return area.Min.X + int(slot*(float64(i)+0.5))
	}
	zero := yOf(math.Max(lo, math.Min(0, hi)))
	r.drawThickLine(area.Min.X, zero, area.Max.X, zero, 1, axisColor)
	for i, cat := range cats {
		r.drawString(cat, face, labelColor, xOf(i), area.Max.Y+lh, HorizontalCenter)
	}

	width := max(1, int(math.Round(2.25*emuPerPoint*r.scale)))
	for _, s := range c.Series {
		col := toRGBA(s.FillColor)
		for i := 1; i < len(s.Values); i++ {
			r.drawThickLine(xOf(i-1), yOf(s.Values[i-1]), xOf(i), yOf(s.Values[i]), width, col)
		}
		if c.ShowMarker {
			for i, v := range s.Values {
				m := 2 * width
				r.fillEllipse(xOf(i)-m, yOf(v)-m, 2*m, 2*m, col)
			}
		}
	}
}

// valueRange returns the smallest and largest value across series,
// always including zero.
func valueRange(series []*ChartSeries) (lo, hi float64) {
	for _, s := range series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}

// niceStep picks a 1, 2 or 5 times power-of-ten gridline step giving at
// most about eight lines over span.
func niceStep(span float64) float64 {
	if span <= 0 {
		return 1
	}
	raw := span / 8
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if m*mag >= raw {
			return m * mag
		}
	}
	return 10 * mag
}

func formatTick(v, step float64) string {
	decimals := 0
	if step < 1 {
		decimals = int(math.Ceil(-math.Log10(step)))
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// drawPieChart fills slices clockwise from twelve o'clock. Non-positive
// values get no slice.
func (r *renderer) drawPieChart(c *PieChart, plot image.Rectangle) {
	if len(c.Series) == 0 {
		return
	}
	s := c.Series[0]
	total := 0.0
	for _, v := range s.Values {
		if v > 0 {
			total += v
		}
	}
	d := min(plot.Dx(), plot.Dy())
	if total <= 0 || d <= 0 {
		return
	}

	// Cumulative end angles, in turns.
	ends := make([]float64, len(s.Values))
	acc := 0.0
	for i, v := range s.Values {
		if v > 0 {
			acc += v / total
		}
		ends[i] = acc
	}
	colors := make([]color.RGBA, len(s.Values))
	for i := range colors {
		colors[i] = axisColor
		if i < len(s.PointColors) {
			colors[i] = toRGBA(s.PointColors[i])
		}
	}

	rad := float64(d) / 2
	cx := float64(plot.Min.X+plot.Max.X) / 2
	cy := float64(plot.Min.Y+plot.Max.Y) / 2
	for py := int(cy - rad); py < int(cy+rad)+1; py++ {
		for px := int(cx - rad); px < int(cx+rad)+1; px++ {
			dx, dy := float64(px)+0.5-cx, float64(py)+0.5-cy
			if dx*dx+dy*dy > rad*rad {
				continue
			}
			// Angle from twelve o'clock, clockwise, in turns.
			turn := math.Atan2(dx, -dy) / (2 * math.Pi)
			if turn < 0 {
				turn++
			}
			for i, end := range ends {
				if turn < end {
					r.setPixel(px, py, colors[i])
					break
				}
			}
		}
	}
}
