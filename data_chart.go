package trackppt

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/VantageDataChat/trackppt/gantt"
)

// ErrNoChartData is returned when a line or pie chart has nothing to plot.
var ErrNoChartData = errors.New("chart has no data")

// Default chart frame, in canvas pixels, on a 1280x720 slide.
const (
	chartBoxX = 100
	chartBoxY = 60
	chartBoxW = 1080
	chartBoxH = 600
)

// LineSeries is one named polyline.
type LineSeries struct {
	Name   string
	Values []float64
}

// LineChartData is the input of a line chart slide. Points are plotted
// against their index; series shorter than the longest are padded with 0.
type LineChartData struct {
	Title  string
	Series []LineSeries
}

// PieSlice is one named pie value.
type PieSlice struct {
	Name  string
	Value float64
}

// PieChartData is the input of a pie chart slide.
type PieChartData struct {
	Title  string
	Slices []PieSlice
}

// AddLineChart appends a native line chart.
func (s *Slide) AddLineChart(data LineChartData) (*ChartShape, error) {
	maxRows := 0
	for _, ls := range data.Series {
		maxRows = max(maxRows, len(ls.Values))
	}
	if len(data.Series) == 0 || maxRows == 0 {
		return nil, fmt.Errorf("line chart %q: %w", data.Title, ErrNoChartData)
	}

	cats := make([]string, maxRows)
	for i := range cats {
		cats[i] = strconv.Itoa(i)
	}
	palette := gantt.DefaultPalette()
	lc := NewLineChart()
	for i, ls := range data.Series {
		name := ls.Name
		if name == "" {
			name = fmt.Sprintf("Series %d", i+1)
		}
		lc.AddSeries(NewChartSeries(name, cats, ls.Values).
			SetFillColor(colorFromGantt(palette.At(i))))
	}

	cs := s.newDataChart(data.Title)
	cs.GetPlotArea().SetType(lc)
	cs.GetLegend().Position = LegendBottom
	return cs, nil
}

// AddPieChart appends a native pie chart. The single series is titled after
// the chart; slice colours cycle through the default palette.
func (s *Slide) AddPieChart(data PieChartData) (*ChartShape, error) {
	if len(data.Slices) == 0 {
		return nil, fmt.Errorf("pie chart %q: %w", data.Title, ErrNoChartData)
	}
	cats := make([]string, len(data.Slices))
	vals := make([]float64, len(data.Slices))
	colors := make([]Color, len(data.Slices))
	cycler := gantt.NewColorCycler(gantt.DefaultPalette())
	for i, sl := range data.Slices {
		cats[i], vals[i] = sl.Name, sl.Value
		colors[i] = colorFromGantt(cycler.Next())
	}
	series := NewChartSeries(data.Title, cats, vals)
	series.PointColors = colors
	series.ShowPercent = true

	cs := s.newDataChart(data.Title)
	cs.GetPlotArea().SetType(NewPieChart().AddSeries(series))
	return cs, nil
}

func (s *Slide) newDataChart(title string) *ChartShape {
	cs := s.CreateChartShape()
	cs.setPixelBox(chartBoxX, chartBoxY, chartBoxW, chartBoxH)
	cs.SetName(title)
	if title == "" {
		cs.GetTitle().Visible = false
	} else {
		cs.GetTitle().SetText(title)
	}
	return cs
}
