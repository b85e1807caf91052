// Package trackppt builds tracking-report presentations: Gantt-style
// timeline slides laid out by package gantt, plus native line and pie
// charts. Presentations are written as .pptx (Office Open XML) files and
// can be previewed as raster images.
package trackppt

import (
	"errors"
	"fmt"
	"time"

	"github.com/VantageDataChat/trackppt/gantt"
)

// ErrSlideOutOfRange is returned when a slide index or page does not exist.
var ErrSlideOutOfRange = errors.New("slide index out of range")

// Presentation is an in-memory presentation.
type Presentation struct {
	properties *DocumentProperties
	slides     []*Slide
	layout     *DocumentLayout
}

// New returns a 16:9 presentation with one blank slide.
func New() *Presentation {
	p := &Presentation{
		properties: NewDocumentProperties(),
		layout:     NewDocumentLayout(),
	}
	p.CreateSlide()
	return p
}

func (p *Presentation) GetDocumentProperties() *DocumentProperties { return p.properties }
func (p *Presentation) GetLayout() *DocumentLayout                 { return p.layout }
func (p *Presentation) SetLayout(l *DocumentLayout)                { p.layout = l }

// CreateSlide appends a blank slide.
func (p *Presentation) CreateSlide() *Slide {
	s := newSlide()
	p.slides = append(p.slides, s)
	return s
}

// EnsureSlides appends blank slides until there are at least n.
func (p *Presentation) EnsureSlides(n int) {
	for len(p.slides) < n {
		p.CreateSlide()
	}
}

// GetSlide returns the slide at a 0-based index.
func (p *Presentation) GetSlide(index int) (*Slide, error) {
	if index < 0 || index >= len(p.slides) {
		return nil, fmt.Errorf("slide %d of %d: %w", index, len(p.slides), ErrSlideOutOfRange)
	}
	return p.slides[index], nil
}

// SlideAt returns the slide at a 1-based page number.
func (p *Presentation) SlideAt(page int) (*Slide, error) {
	if page < 1 || page > len(p.slides) {
		return nil, fmt.Errorf("page %d of %d: %w", page, len(p.slides), ErrSlideOutOfRange)
	}
	return p.slides[page-1], nil
}

func (p *Presentation) GetAllSlides() []*Slide { return p.slides }
func (p *Presentation) GetSlideCount() int     { return len(p.slides) }

// RemoveSlideByIndex removes a slide. The last remaining slide cannot be
// removed.
func (p *Presentation) RemoveSlideByIndex(index int) error {
	if index < 0 || index >= len(p.slides) {
		return fmt.Errorf("slide %d of %d: %w", index, len(p.slides), ErrSlideOutOfRange)
	}
	if len(p.slides) == 1 {
		return errors.New("cannot remove the last slide")
	}
	p.slides = append(p.slides[:index], p.slides[index+1:]...)
	return nil
}

// DocumentProperties are written to docProps/core.xml and app.xml.
type DocumentProperties struct {
	Creator        string
	LastModifiedBy string
	Created        time.Time
	Modified       time.Time
	Title          string
	Subject        string
	Description    string
	Keywords       string
	Company        string
}

func NewDocumentProperties() *DocumentProperties {
	now := time.Now()
	return &DocumentProperties{
		Creator:        appName,
		LastModifiedBy: appName,
		Created:        now,
		Modified:       now,
	}
}

// DocumentLayout is the slide size in EMU.
type DocumentLayout struct {
	CX   int64
	CY   int64
	Name string
}

const (
	LayoutScreen4x3  = "screen4x3"
	LayoutScreen16x9 = "screen16x9"
	LayoutCustom     = "custom"
)

// NewDocumentLayout returns the 13.333 x 7.5 inch widescreen layout, which
// is exactly the default gantt canvas at 96 DPI.
func NewDocumentLayout() *DocumentLayout {
	return &DocumentLayout{CX: 12192000, CY: 6858000, Name: LayoutScreen16x9}
}

// NewCanvasLayout sizes slides to a gantt canvas, one canvas unit per pixel.
func NewCanvasLayout(c gantt.CanvasSpec) *DocumentLayout {
	cx, cy := Pixel(float64(c.TotalWidth)), Pixel(float64(c.Height))
	d := NewDocumentLayout()
	if cx == d.CX && cy == d.CY {
		return d
	}
	d.SetCustomLayout(cx, cy)
	return d
}

// SetLayout switches to a named preset. Unknown names are ignored.
func (dl *DocumentLayout) SetLayout(name string) {
	switch name {
	case LayoutScreen4x3:
		dl.CX, dl.CY = 9144000, 6858000
	case LayoutScreen16x9:
		dl.CX, dl.CY = 12192000, 6858000
	default:
		return
	}
	dl.Name = name
}

// SetCustomLayout sets explicit dimensions. Non-positive values fall back
// to the widescreen size.
func (dl *DocumentLayout) SetCustomLayout(cx, cy int64) {
	if cx <= 0 {
		cx = 12192000
	}
	if cy <= 0 {
		cy = 6858000
	}
	dl.CX, dl.CY, dl.Name = cx, cy, LayoutCustom
}

// pptType returns the sldSz type attribute for the layout.
func (dl *DocumentLayout) pptType() string {
	switch dl.Name {
	case LayoutScreen4x3:
		return "screen4x3"
	case LayoutScreen16x9:
		return ""
	}
	return "custom"
}
