package trackppt

import "errors"

var errOutOfRange = errors.New("index out of range")

// GroupShape is a set of shapes moved and written as one unit. Its bounds
// track the union of its children.
type GroupShape struct {
	BaseShape
	shapes []Shape
}

func (g *GroupShape) GetType() ShapeType { return ShapeTypeGroup }

func NewGroupShape() *GroupShape {
	return &GroupShape{}
}

// AddShape appends s and grows the group bounds to cover it.
func (g *GroupShape) AddShape(s Shape) *GroupShape {
	if len(g.shapes) == 0 {
		g.offsetX, g.offsetY = s.GetOffsetX(), s.GetOffsetY()
		g.width, g.height = s.GetWidth(), s.GetHeight()
	} else {
		x0 := min(g.offsetX, s.GetOffsetX())
		y0 := min(g.offsetY, s.GetOffsetY())
		x1 := max(g.offsetX+g.width, s.GetOffsetX()+s.GetWidth())
		y1 := max(g.offsetY+g.height, s.GetOffsetY()+s.GetHeight())
		g.offsetX, g.offsetY, g.width, g.height = x0, y0, x1-x0, y1-y0
	}
	g.shapes = append(g.shapes, s)
	return g
}

func (g *GroupShape) GetShapes() []Shape { return g.shapes }

func (g *GroupShape) GetShapeCount() int { return len(g.shapes) }

// RemoveShape removes the child at index. The bounds are left unchanged.
func (g *GroupShape) RemoveShape(index int) error {
	if index < 0 || index >= len(g.shapes) {
		return errOutOfRange
	}
	g.shapes = append(g.shapes[:index], g.shapes[index+1:]...)
	return nil
}
