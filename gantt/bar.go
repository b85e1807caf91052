package gantt

// MinBarWidth keeps very short intervals visible. Layout raises bar widths
// to it before decomposing.
const MinBarWidth = 10

// BarWidth converts a duration in canvas units to a bar width, truncating
// and applying MinBarWidth.
func BarWidth(span float64) int {
	return max(MinBarWidth, int(span))
}

// DecomposeBar splits a bar at (x, y) into primitives that approximate a
// capsule. A bar narrower than it is tall becomes a single circle of
// diameter height; otherwise it becomes a centre rectangle between two
// circular end caps. All parts share color.
func DecomposeBar(x, y, width, height int, color Color) []Element {
	if width < height {
		return []Element{
			&Ellipse{Box: Rect{X: x, Y: y, W: height, H: height}, Color: color},
		}
	}
	radius := height / 2
	return []Element{
		&Rectangle{Box: Rect{X: x + radius, Y: y, W: width - 2*radius, H: height}, Color: color},
		&Ellipse{Box: Rect{X: x, Y: y, W: height, H: height}, Color: color},
		&Ellipse{Box: Rect{X: x + width - height, Y: y, W: height, H: height}, Color: color},
	}
}
