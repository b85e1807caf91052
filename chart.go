package trackppt

// ChartShape is a native chart embedded in a slide through a graphic frame.
type ChartShape struct {
	BaseShape
	title    *ChartTitle
	plotArea *PlotArea
	legend   *ChartLegend
}

func (c *ChartShape) GetType() ShapeType { return ShapeTypeChart }

func NewChartShape() *ChartShape {
	return &ChartShape{
		title:    NewChartTitle(),
		plotArea: NewPlotArea(),
		legend:   NewChartLegend(),
	}
}

func (c *ChartShape) GetTitle() *ChartTitle   { return c.title }
func (c *ChartShape) GetPlotArea() *PlotArea  { return c.plotArea }
func (c *ChartShape) GetLegend() *ChartLegend { return c.legend }

// ChartTitle is the text drawn above the plot area.
type ChartTitle struct {
	Text    string
	Visible bool
	Font    *Font
}

func NewChartTitle() *ChartTitle {
	f := NewFont()
	f.Bold = true
	return &ChartTitle{Visible: true, Font: f}
}

func (ct *ChartTitle) SetText(text string) *ChartTitle {
	ct.Text = text
	return ct
}

// PlotArea holds the chart type and, for charts with axes, the category
// and value axes.
type PlotArea struct {
	chartType ChartType
	axisX     *ChartAxis
	axisY     *ChartAxis
}

func NewPlotArea() *PlotArea {
	return &PlotArea{axisX: NewChartAxis(), axisY: NewChartAxis()}
}

func (pa *PlotArea) SetType(ct ChartType) { pa.chartType = ct }
func (pa *PlotArea) GetType() ChartType   { return pa.chartType }
func (pa *PlotArea) GetAxisX() *ChartAxis { return pa.axisX }
func (pa *PlotArea) GetAxisY() *ChartAxis { return pa.axisY }

// ChartAxis configures one axis.
type ChartAxis struct {
	Title          string
	Visible        bool
	MinBounds      *float64
	MaxBounds      *float64
	MajorUnit      *float64
	NumberFormat   string // empty means linked to source
	MajorGridlines bool
}

func NewChartAxis() *ChartAxis {
	return &ChartAxis{Visible: true}
}

func (a *ChartAxis) SetTitle(t string) *ChartAxis {
	a.Title = t
	return a
}

func (a *ChartAxis) SetBounds(lo, hi float64) *ChartAxis {
	a.MinBounds, a.MaxBounds = &lo, &hi
	return a
}

func (a *ChartAxis) SetMajorUnit(v float64) *ChartAxis {
	a.MajorUnit = &v
	return a
}

// ChartLegend is the series key.
type ChartLegend struct {
	Visible  bool
	Position LegendPosition
}

type LegendPosition string

const (
	LegendBottom LegendPosition = "b"
	LegendTop    LegendPosition = "t"
	LegendRight  LegendPosition = "r"
)

func NewChartLegend() *ChartLegend {
	return &ChartLegend{Visible: true, Position: LegendRight}
}

// ChartType is implemented by the concrete chart kinds.
type ChartType interface {
	GetChartTypeName() string
	GetSeries() []*ChartSeries
}

// ChartSeries is one named data series. Categories and Values are parallel.
type ChartSeries struct {
	Title      string
	Categories []string
	Values     []float64
	FillColor  Color
	// PointColors overrides the colour of individual points; used for pie
	// slices.
	PointColors []Color
	ShowValue   bool
	ShowPercent bool
}

// NewChartSeries builds a series. Missing values are zero and extra values
// are dropped so that Values always matches Categories.
func NewChartSeries(title string, categories []string, values []float64) *ChartSeries {
	v := make([]float64, len(categories))
	copy(v, values)
	return &ChartSeries{
		Title:      title,
		Categories: categories,
		Values:     v,
	}
}

func (s *ChartSeries) SetFillColor(c Color) *ChartSeries {
	s.FillColor = c
	return s
}

// LineChart draws each series as a polyline over shared categories.
type LineChart struct {
	Series     []*ChartSeries
	IsSmooth   bool
	ShowMarker bool
}

func (l *LineChart) GetChartTypeName() string  { return "line" }
func (l *LineChart) GetSeries() []*ChartSeries { return l.Series }

func NewLineChart() *LineChart {
	return &LineChart{ShowMarker: true}
}

func (l *LineChart) AddSeries(s *ChartSeries) *LineChart {
	l.Series = append(l.Series, s)
	return l
}

// PieChart draws its first series as slices.
type PieChart struct {
	Series []*ChartSeries
}

func (p *PieChart) GetChartTypeName() string  { return "pie" }
func (p *PieChart) GetSeries() []*ChartSeries { return p.Series }

func NewPieChart() *PieChart { return &PieChart{} }

func (p *PieChart) AddSeries(s *ChartSeries) *PieChart {
	p.Series = append(p.Series, s)
	return p
}

// chartCategories returns the category axis of a chart: the categories of
// its first series.
func chartCategories(ct ChartType) []string {
	series := ct.GetSeries()
	if len(series) == 0 {
		return nil
	}
	return series[0].Categories
}
