package trackppt

import "math"

// EMU (English Metric Units) conversions.
// 1 inch = 914400 EMU, 1 point = 12700 EMU, 1 pixel (96 DPI) = 9525 EMU.
// Gantt canvas units are pixels.

const (
	emuPerInch       = 914400
	emuPerPoint      = 12700
	emuPerPixel      = 9525
	emuPerCentimeter = 360000
	emuPerMillimeter = 36000

	maxEMU = math.MaxInt64 / 2
)

// Inch converts inches to EMU.
func Inch(n float64) int64 { return toEMU(n, emuPerInch) }

// Point converts points to EMU.
func Point(n float64) int64 { return toEMU(n, emuPerPoint) }

// Pixel converts 96 DPI pixels to EMU.
func Pixel(n float64) int64 { return toEMU(n, emuPerPixel) }

// Centimeter converts centimeters to EMU.
func Centimeter(n float64) int64 { return toEMU(n, emuPerCentimeter) }

// Millimeter converts millimeters to EMU.
func Millimeter(n float64) int64 { return toEMU(n, emuPerMillimeter) }

// EMUToPoint converts EMU to points.
func EMUToPoint(emu int64) float64 { return float64(emu) / emuPerPoint }

// EMUToPixel converts EMU to 96 DPI pixels.
func EMUToPixel(emu int64) float64 { return float64(emu) / emuPerPixel }

// EMUToInch converts EMU to inches.
func EMUToInch(emu int64) float64 { return float64(emu) / emuPerInch }

// toEMU scales n and clamps the result to a range that cannot overflow
// when offsets and extents are added together.
func toEMU(n float64, per float64) int64 {
	v := n * per
	switch {
	case v > maxEMU:
		return maxEMU
	case v < -maxEMU:
		return -maxEMU
	}
	return int64(math.Round(v))
}

// pixelRect converts a canvas box to EMU offset and extent.
func pixelRect(x, y, w, h int) (offX, offY, cx, cy int64) {
	return Pixel(float64(x)), Pixel(float64(y)), Pixel(float64(w)), Pixel(float64(h))
}
