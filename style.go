package trackppt

import (
	"fmt"
	"strings"

	"github.com/VantageDataChat/trackppt/gantt"
)

// Color is an ARGB colour stored as 8 upper-case hex characters.
type Color struct {
	ARGB string
}

var (
	ColorBlack = Color{ARGB: "FF000000"}
	ColorWhite = Color{ARGB: "FFFFFFFF"}
)

// NewColor parses "RRGGBB", "AARRGGBB" or either with a leading '#'.
// Anything else yields black.
func NewColor(hex string) Color {
	hex = strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(hex) == 6 {
		hex = "FF" + hex
	}
	if len(hex) != 8 {
		return ColorBlack
	}
	for i := 0; i < len(hex); i++ {
		if hexVal(hex[i]) < 0 {
			return ColorBlack
		}
	}
	return Color{ARGB: hex}
}

// NewColorRGB builds an opaque colour from 8-bit components.
func NewColorRGB(r, g, b uint8) Color {
	return Color{ARGB: fmt.Sprintf("FF%02X%02X%02X", r, g, b)}
}

// colorFromGantt converts a layout colour to a slide colour.
func colorFromGantt(c gantt.Color) Color {
	return NewColorRGB(c.R, c.G, c.B)
}

// RGB returns the 6 hex character RGB part.
func (c Color) RGB() string {
	if len(c.ARGB) == 8 {
		return c.ARGB[2:]
	}
	return "000000"
}

func (c Color) Alpha() uint8 { return c.component(0) }
func (c Color) Red() uint8   { return c.component(2) }
func (c Color) Green() uint8 { return c.component(4) }
func (c Color) Blue() uint8  { return c.component(6) }

func (c Color) component(off int) uint8 {
	if off+2 > len(c.ARGB) {
		return 0
	}
	h, l := hexVal(c.ARGB[off]), hexVal(c.ARGB[off+1])
	if h < 0 || l < 0 {
		return 0
	}
	return uint8(h<<4 | l)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	}
	return -1
}

// Font holds run-level text properties.
type Font struct {
	Name  string
	Size  int // points
	Bold  bool
	Color Color
}

// NewFont returns an 18pt black font in the theme's latin face.
func NewFont() *Font {
	return &Font{Name: "Microsoft YaHei", Size: 18, Color: ColorBlack}
}

// SetSize sets the size in points, clamped to 1..4000.
func (f *Font) SetSize(size int) *Font {
	f.Size = min(max(size, 1), 4000)
	return f
}

func (f *Font) SetBold(b bool) *Font {
	f.Bold = b
	return f
}

func (f *Font) SetColor(c Color) *Font {
	f.Color = c
	return f
}

func (f *Font) SetName(name string) *Font {
	f.Name = name
	return f
}

// HorizontalAlignment is the DrawingML paragraph alignment.
type HorizontalAlignment string

const (
	HorizontalLeft   HorizontalAlignment = "l"
	HorizontalCenter HorizontalAlignment = "ctr"
	HorizontalRight  HorizontalAlignment = "r"
)

// horizontalFromGantt maps a label alignment to a paragraph alignment.
func horizontalFromGantt(a gantt.Align) HorizontalAlignment {
	switch a {
	case gantt.AlignCenter:
		return HorizontalCenter
	case gantt.AlignRight:
		return HorizontalRight
	}
	return HorizontalLeft
}

// Fill is a shape fill. Only no fill and solid fill are written.
type Fill struct {
	Type  FillType
	Color Color
}

type FillType int

const (
	FillNone FillType = iota
	FillSolid
)

func NewFill() *Fill { return &Fill{Type: FillNone} }

// SetSolid switches the fill to a solid colour.
func (f *Fill) SetSolid(c Color) *Fill {
	f.Type = FillSolid
	f.Color = c
	return f
}

// Border is a shape outline.
type Border struct {
	Style BorderStyle
	Width int64 // EMU
	Color Color
}

type BorderStyle string

const (
	BorderNone  BorderStyle = "none"
	BorderSolid BorderStyle = "solid"
	BorderDash  BorderStyle = "dash"
)

func NewBorder() *Border { return &Border{Style: BorderNone} }

// SetSolid switches the border to a solid line of the given width in EMU.
func (b *Border) SetSolid(c Color, width int64) *Border {
	b.Style = BorderSolid
	b.Color = c
	b.Width = width
	return b
}
