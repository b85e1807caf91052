package gantt

import "fmt"

// Color is a named 8-bit RGB colour.
type Color struct {
	Name    string
	R, G, B uint8
}

// Hex returns the colour as a 6-character upper-case RGB hex string.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	if c.Name != "" {
		return c.Name
	}
	return "#" + c.Hex()
}

// Fixed colours used for axes and text.
var (
	Black = Color{Name: "black"}
	White = Color{Name: "white", R: 255, G: 255, B: 255}
)

// Palette is an ordered, read-only list of colours that categories are
// assigned from.
type Palette []Color

// DefaultPalette returns the tracking-device palette. Each call returns a
// fresh slice.
func DefaultPalette() Palette {
	return Palette{
		{Name: "blue", R: 52, G: 152, B: 219},
		{Name: "green", R: 46, G: 204, B: 113},
		{Name: "yellow", R: 241, G: 196, B: 15},
		{Name: "red", R: 231, G: 76, B: 60},
		{Name: "purple", R: 155, G: 89, B: 182},
		{Name: "cyan", R: 26, G: 188, B: 156},
		{Name: "orange", R: 230, G: 126, B: 34},
		{Name: "gray", R: 149, G: 165, B: 166},
	}
}

// At returns the colour for the i-th assignment, cycling through the
// palette. An empty palette yields Black.
func (p Palette) At(i int) Color {
	if len(p) == 0 {
		return Black
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// ColorCycler hands out palette colours in order.
type ColorCycler struct {
	palette Palette
	next    int
}

// NewColorCycler returns a cycler positioned at the first palette entry.
func NewColorCycler(p Palette) *ColorCycler {
	return &ColorCycler{palette: p}
}

// Next returns the next colour and advances the cycler.
func (c *ColorCycler) Next() Color {
	col := c.palette.At(c.next)
	c.next++
	return col
}

// Assigned returns how many colours have been handed out.
func (c *ColorCycler) Assigned() int { return c.next }
