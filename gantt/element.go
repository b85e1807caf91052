package gantt

import "fmt"

// Element is a drawable primitive: one of *Line, *TextLabel, *Rectangle or
// *Ellipse. The set is closed; renderers switch on the concrete type.
type Element interface {
	Bounds() Rect
	element()
}

// Rect is an axis-aligned box in canvas units.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// Align is the horizontal alignment of a text label.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Line is a straight stroke. Box spans from (X, Y) to (X+W, Y+H); axis and
// tick lines have W or H equal to zero.
type Line struct {
	Box   Rect
	Width float64 // stroke width
	Color Color
}

// TextLabel is a single-line text box.
type TextLabel struct {
	Box      Rect
	Text     string
	FontSize int
	Bold     bool
	Align    Align
	Color    Color
}

// Rectangle is a filled box with an outline of the same colour.
type Rectangle struct {
	Box   Rect
	Color Color
}

// Ellipse is a filled ellipse inscribed in Box.
type Ellipse struct {
	Box   Rect
	Color Color
}

func (l *Line) Bounds() Rect      { return l.Box }
func (t *TextLabel) Bounds() Rect { return t.Box }
func (r *Rectangle) Bounds() Rect { return r.Box }
func (e *Ellipse) Bounds() Rect   { return e.Box }

func (*Line) element()      {}
func (*TextLabel) element() {}
func (*Rectangle) element() {}
func (*Ellipse) element()   {}
