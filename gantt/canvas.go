package gantt

// CanvasSpec holds the fixed layout constants of a chart canvas.
// All values are in canvas units (96 DPI pixels when placed on a slide).
type CanvasSpec struct {
	TotalWidth     int // full slide width
	Width          int // usable chart width
	Height         int // full slide height
	LeftMargin     int
	RightMargin    int
	TopMargin      int
	BottomMargin   int
	InitialHeight  int // chart height before margins
	AxisAreaHeight int // reserved below the bars for tick labels
}

// Default canvas dimensions.
const (
	DefaultTotalWidth     = 1280
	DefaultWidth          = 1080
	DefaultHeight         = 720
	DefaultInitialHeight  = 270
	DefaultAxisAreaHeight = 30
)

// DefaultCanvas returns the canvas used for tracking-device charts: a 1080
// wide chart centred on a 1280 wide slide.
func DefaultCanvas() CanvasSpec {
	offset := (DefaultTotalWidth - DefaultWidth) / 2
	return CanvasSpec{
		TotalWidth:     DefaultTotalWidth,
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		LeftMargin:     80 + offset,
		RightMargin:    40 + offset,
		TopMargin:      50,
		BottomMargin:   0,
		InitialHeight:  DefaultInitialHeight,
		AxisAreaHeight: DefaultAxisAreaHeight,
	}
}

// ChartWidth returns the horizontal extent of the plot area.
func (c CanvasSpec) ChartWidth() int {
	return c.Width - c.LeftMargin - c.RightMargin
}

// ChartHeight returns the vertical extent of the plot area including the
// axis label strip.
func (c CanvasSpec) ChartHeight() int {
	return c.InitialHeight - c.TopMargin - c.BottomMargin
}

// withDefaults fills zero-valued fields from DefaultCanvas. A zero
// CanvasSpec therefore means "use the default canvas".
func (c CanvasSpec) withDefaults() CanvasSpec {
	if c == (CanvasSpec{}) {
		return DefaultCanvas()
	}
	d := DefaultCanvas()
	if c.TotalWidth == 0 {
		c.TotalWidth = d.TotalWidth
	}
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.InitialHeight == 0 {
		c.InitialHeight = d.InitialHeight
	}
	if c.AxisAreaHeight == 0 {
		c.AxisAreaHeight = d.AxisAreaHeight
	}
	return c
}
