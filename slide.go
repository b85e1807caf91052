package trackppt

// Slide is one page of a presentation: an ordered list of shapes drawn
// back to front.
type Slide struct {
	name       string
	shapes     []Shape
	background *Fill
}

func newSlide() *Slide {
	return &Slide{}
}

func (s *Slide) GetName() string     { return s.name }
func (s *Slide) SetName(name string) { s.name = name }
func (s *Slide) GetShapes() []Shape  { return s.shapes }

// SetBackground sets a solid slide background.
func (s *Slide) SetBackground(c Color) {
	s.background = NewFill().SetSolid(c)
}

// AddShape appends an existing shape.
func (s *Slide) AddShape(shape Shape) {
	s.shapes = append(s.shapes, shape)
}

// CreateRichTextShape appends an empty text box.
func (s *Slide) CreateRichTextShape() *RichTextShape {
	shape := NewRichTextShape()
	s.AddShape(shape)
	return shape
}

// CreateAutoShape appends a rectangle.
func (s *Slide) CreateAutoShape() *AutoShape {
	shape := NewAutoShape()
	s.AddShape(shape)
	return shape
}

// CreateLineShape appends a 1pt black line.
func (s *Slide) CreateLineShape() *LineShape {
	shape := NewLineShape()
	s.AddShape(shape)
	return shape
}

// CreateChartShape appends an empty chart frame.
func (s *Slide) CreateChartShape() *ChartShape {
	shape := NewChartShape()
	s.AddShape(shape)
	return shape
}

// CreateGroupShape appends an empty group.
func (s *Slide) CreateGroupShape() *GroupShape {
	shape := NewGroupShape()
	s.AddShape(shape)
	return shape
}

// charts returns the chart shapes of the slide in drawing order.
func (s *Slide) charts() []*ChartShape {
	var out []*ChartShape
	for _, shape := range s.shapes {
		if cs, ok := shape.(*ChartShape); ok {
			out = append(out, cs)
		}
	}
	return out
}
