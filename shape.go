package trackppt

import "strings"

// Shape is implemented by everything that can be placed on a slide.
type Shape interface {
	GetType() ShapeType
	GetOffsetX() int64
	GetOffsetY() int64
	GetWidth() int64
	GetHeight() int64
	GetName() string
	base() *BaseShape
}

type ShapeType int

const (
	ShapeTypeRichText ShapeType = iota
	ShapeTypeAutoShape
	ShapeTypeLine
	ShapeTypeChart
	ShapeTypeGroup
)

func (t ShapeType) String() string {
	switch t {
	case ShapeTypeRichText:
		return "text"
	case ShapeTypeAutoShape:
		return "autoshape"
	case ShapeTypeLine:
		return "line"
	case ShapeTypeChart:
		return "chart"
	case ShapeTypeGroup:
		return "group"
	}
	return "unknown"
}

// BaseShape carries position, size and outline properties in EMU.
type BaseShape struct {
	name    string
	offsetX int64
	offsetY int64
	width   int64
	height  int64
	fill    *Fill
	border  *Border
}

func (b *BaseShape) GetOffsetX() int64 { return b.offsetX }
func (b *BaseShape) GetOffsetY() int64 { return b.offsetY }
func (b *BaseShape) GetWidth() int64   { return b.width }
func (b *BaseShape) GetHeight() int64  { return b.height }
func (b *BaseShape) GetName() string   { return b.name }
func (b *BaseShape) base() *BaseShape  { return b }

func (b *BaseShape) SetName(n string) *BaseShape { b.name = n; return b }

// SetPosition sets the offset in EMU.
func (b *BaseShape) SetPosition(x, y int64) *BaseShape {
	b.offsetX, b.offsetY = x, y
	return b
}

// SetSize sets the extent in EMU.
func (b *BaseShape) SetSize(w, h int64) *BaseShape {
	b.width, b.height = w, h
	return b
}

// setPixelBox places the shape on a canvas box.
func (b *BaseShape) setPixelBox(x, y, w, h int) {
	b.offsetX, b.offsetY, b.width, b.height = pixelRect(x, y, w, h)
}

func (b *BaseShape) GetFill() *Fill {
	if b.fill == nil {
		b.fill = NewFill()
	}
	return b.fill
}

func (b *BaseShape) GetBorder() *Border {
	if b.border == nil {
		b.border = NewBorder()
	}
	return b.border
}

// TextAnchorType is the vertical position of text inside its box.
type TextAnchorType string

const (
	TextAnchorTop    TextAnchorType = "t"
	TextAnchorMiddle TextAnchorType = "ctr"
	TextAnchorBottom TextAnchorType = "b"
)

// RichTextShape is a text box.
type RichTextShape struct {
	BaseShape
	paragraphs []*Paragraph
	wordWrap   bool
	anchor     TextAnchorType
	// zeroInsets drops the default body insets so that text is positioned
	// by the box alone.
	zeroInsets bool
}

func (r *RichTextShape) GetType() ShapeType { return ShapeTypeRichText }

// NewRichTextShape returns a text box holding one empty paragraph.
func NewRichTextShape() *RichTextShape {
	return &RichTextShape{
		paragraphs: []*Paragraph{NewParagraph()},
		wordWrap:   true,
		anchor:     TextAnchorTop,
	}
}

// GetActiveParagraph returns the last paragraph.
func (r *RichTextShape) GetActiveParagraph() *Paragraph {
	if len(r.paragraphs) == 0 {
		r.paragraphs = append(r.paragraphs, NewParagraph())
	}
	return r.paragraphs[len(r.paragraphs)-1]
}

// CreateParagraph appends a paragraph.
func (r *RichTextShape) CreateParagraph() *Paragraph {
	p := NewParagraph()
	r.paragraphs = append(r.paragraphs, p)
	return p
}

func (r *RichTextShape) GetParagraphs() []*Paragraph { return r.paragraphs }

// CreateTextRun appends a run to the last paragraph.
func (r *RichTextShape) CreateTextRun(text string) *TextRun {
	return r.GetActiveParagraph().CreateTextRun(text)
}

func (r *RichTextShape) SetWordWrap(wrap bool)          { r.wordWrap = wrap }
func (r *RichTextShape) GetWordWrap() bool              { return r.wordWrap }
func (r *RichTextShape) SetTextAnchor(a TextAnchorType) { r.anchor = a }
func (r *RichTextShape) GetTextAnchor() TextAnchorType  { return r.anchor }
func (r *RichTextShape) SetZeroInsets(v bool)           { r.zeroInsets = v }

// Text returns the concatenated text of all runs, paragraphs joined by
// newlines.
func (r *RichTextShape) Text() string {
	var sb strings.Builder
	for i, p := range r.paragraphs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, run := range p.runs {
			sb.WriteString(run.text)
		}
	}
	return sb.String()
}

// Paragraph is a list of runs with one alignment.
type Paragraph struct {
	runs      []*TextRun
	alignment HorizontalAlignment
}

func NewParagraph() *Paragraph {
	return &Paragraph{alignment: HorizontalLeft}
}

func (p *Paragraph) SetAlignment(a HorizontalAlignment) *Paragraph {
	p.alignment = a
	return p
}

func (p *Paragraph) GetAlignment() HorizontalAlignment { return p.alignment }
func (p *Paragraph) GetRuns() []*TextRun               { return p.runs }

// CreateTextRun appends a run with the default font.
func (p *Paragraph) CreateTextRun(text string) *TextRun {
	tr := &TextRun{text: text, font: NewFont()}
	p.runs = append(p.runs, tr)
	return tr
}

// TextRun is a run of identically formatted text.
type TextRun struct {
	text string
	font *Font
}

func (tr *TextRun) GetText() string { return tr.text }
func (tr *TextRun) GetFont() *Font  { return tr.font }

// AutoShapeType is a DrawingML preset geometry name.
type AutoShapeType string

const (
	AutoShapeRectangle   AutoShapeType = "rect"
	AutoShapeRoundedRect AutoShapeType = "roundRect"
	AutoShapeEllipse     AutoShapeType = "ellipse"
)

// AutoShape is a preset geometry shape.
type AutoShape struct {
	BaseShape
	shapeType AutoShapeType
}

func (a *AutoShape) GetType() ShapeType { return ShapeTypeAutoShape }

func NewAutoShape() *AutoShape {
	return &AutoShape{shapeType: AutoShapeRectangle}
}

func (a *AutoShape) SetAutoShapeType(t AutoShapeType) *AutoShape {
	a.shapeType = t
	return a
}

func (a *AutoShape) GetAutoShapeType() AutoShapeType { return a.shapeType }

// SetSolid fills the shape and outlines it with a thin line of the same
// colour.
func (a *AutoShape) SetSolid(c Color) *AutoShape {
	a.GetFill().SetSolid(c)
	a.GetBorder().SetSolid(c, Point(0.75))
	return a
}

// LineShape is a straight connector from (offX, offY) to
// (offX+width, offY+height).
type LineShape struct {
	BaseShape
	lineStyle BorderStyle
	lineWidth int64 // EMU
	lineColor Color
}

func (l *LineShape) GetType() ShapeType { return ShapeTypeLine }

// NewLineShape returns a 1pt black solid line.
func NewLineShape() *LineShape {
	return &LineShape{
		lineStyle: BorderSolid,
		lineWidth: Point(1),
		lineColor: ColorBlack,
	}
}

// SetLineWidth sets the stroke width in points.
func (l *LineShape) SetLineWidth(pt float64) *LineShape {
	l.lineWidth = Point(pt)
	return l
}

func (l *LineShape) SetLineColor(c Color) *LineShape {
	l.lineColor = c
	return l
}

func (l *LineShape) SetLineStyle(s BorderStyle) *LineShape {
	l.lineStyle = s
	return l
}

// GetLineWidth returns the stroke width in EMU.
func (l *LineShape) GetLineWidth() int64       { return l.lineWidth }
func (l *LineShape) GetLineColor() Color       { return l.lineColor }
func (l *LineShape) GetLineStyle() BorderStyle { return l.lineStyle }
