package trackppt

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ImageFormat represents the output image format.
type ImageFormat int

const (
	ImageFormatPNG ImageFormat = iota
	ImageFormatJPEG
)

// RenderOptions configures slide previews.
type RenderOptions struct {
	// Width is the output width in pixels; height follows the slide aspect
	// ratio. Default 1280, one pixel per canvas unit.
	Width int

	Format ImageFormat

	// JPEGQuality is 1-100. Default 90.
	JPEGQuality int

	// BackgroundColor overrides the slide background. Nil means the slide
	// background or white.
	BackgroundColor *color.RGBA

	// FontDirs are searched in addition to the system font directories.
	FontDirs []string

	// FontCache is shared across renders when set; FontDirs is then ignored.
	FontCache *FontCache
}

// DefaultRenderOptions returns default rendering options.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Width:       1280,
		Format:      ImageFormatPNG,
		JPEGQuality: 90,
	}
}

// SlideToImage renders the slide at a 0-based index.
func (p *Presentation) SlideToImage(slideIndex int, opts *RenderOptions) (image.Image, error) {
	slide, err := p.GetSlide(slideIndex)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = DefaultRenderOptions()
	}
	imgW := opts.Width
	if imgW <= 0 {
		imgW = 1280
	}

	slideW := float64(p.layout.CX)
	slideH := float64(p.layout.CY)
	imgH := int(math.Round(float64(imgW) * slideH / slideW))
	scale := float64(imgW) / slideW

	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if opts.BackgroundColor != nil {
		bg = *opts.BackgroundColor
	} else if slide.background != nil && slide.background.Type == FillSolid {
		bg = toRGBA(slide.background.Color)
	}
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)

	r := &renderer{img: img, scale: scale, fontCache: opts.FontCache}
	if r.fontCache == nil {
		r.fontCache = NewFontCache(opts.FontDirs...)
	}
	for _, shape := range slide.shapes {
		r.renderShape(shape)
	}
	return img, nil
}

// SlidesToImages renders all slides, sharing one font cache.
func (p *Presentation) SlidesToImages(opts *RenderOptions) ([]image.Image, error) {
	opts = withSharedFontCache(opts)
	images := make([]image.Image, len(p.slides))
	for i := range p.slides {
		img, err := p.SlideToImage(i, opts)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		images[i] = img
	}
	return images, nil
}

// SaveSlideAsImage renders a slide and saves it to a file.
func (p *Presentation) SaveSlideAsImage(slideIndex int, path string, opts *RenderOptions) error {
	img, err := p.SlideToImage(slideIndex, opts)
	if err != nil {
		return err
	}
	return saveImage(img, path, opts)
}

// SaveSlidesAsImages renders every slide to fmt.Sprintf(pattern, n), n
// counting from 1.
func (p *Presentation) SaveSlidesAsImages(pattern string, opts *RenderOptions) error {
	opts = withSharedFontCache(opts)
	for i := range p.slides {
		path := fmt.Sprintf(pattern, i+1)
		if err := p.SaveSlideAsImage(i, path, opts); err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	return nil
}

func withSharedFontCache(opts *RenderOptions) *RenderOptions {
	if opts == nil {
		opts = DefaultRenderOptions()
	}
	if opts.FontCache != nil {
		return opts
	}
	o := *opts
	o.FontCache = NewFontCache(opts.FontDirs...)
	return &o
}

func saveImage(img image.Image, path string, opts *RenderOptions) error {
	if opts == nil {
		opts = DefaultRenderOptions()
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	switch opts.Format {
	case ImageFormatJPEG:
		quality := opts.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = 90
		}
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: quality})
	default:
		err = png.Encode(f, img)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// --- renderer ---

type renderer struct {
	img       *image.RGBA
	scale     float64 // pixels per EMU
	fontCache *FontCache
}

func (r *renderer) renderShape(shape Shape) {
	switch s := shape.(type) {
	case *RichTextShape:
		r.renderRichText(s)
	case *AutoShape:
		r.renderAutoShape(s)
	case *LineShape:
		r.renderLine(s)
	case *ChartShape:
		r.renderChart(s)
	case *GroupShape:
		for _, gs := range s.shapes {
			r.renderShape(gs)
		}
	}
}

func (r *renderer) px(emu int64) int {
	return int(math.Round(float64(emu) * r.scale))
}

// strokeWidth converts an EMU stroke width to whole pixels, at least 1.
func (r *renderer) strokeWidth(emu int64) int {
	return max(1, r.px(emu))
}

func (r *renderer) box(b *BaseShape) image.Rectangle {
	x, y := r.px(b.offsetX), r.px(b.offsetY)
	return image.Rect(x, y, x+r.px(b.width), y+r.px(b.height))
}

func toRGBA(c Color) color.RGBA {
	return color.RGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// --- Shape rendering ---

func (r *renderer) renderRichText(s *RichTextShape) {
	rect := r.box(&s.BaseShape)
	if s.fill != nil && s.fill.Type == FillSolid {
		draw.Draw(r.img, rect, &image.Uniform{toRGBA(s.fill.Color)}, image.Point{}, draw.Over)
	}
	if s.border != nil && s.border.Style != BorderNone {
		r.drawRect(rect, toRGBA(s.border.Color), r.strokeWidth(s.border.Width))
	}
	r.drawParagraphs(s, rect)
}

func (r *renderer) renderAutoShape(s *AutoShape) {
	rect := r.box(&s.BaseShape)
	x, y, w, h := rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy()

	if s.fill != nil && s.fill.Type == FillSolid {
		c := toRGBA(s.fill.Color)
		switch s.shapeType {
		case AutoShapeEllipse:
			r.fillEllipse(x, y, w, h, c)
		default:
			draw.Draw(r.img, rect, &image.Uniform{c}, image.Point{}, draw.Over)
		}
	}
	if s.border != nil && s.border.Style != BorderNone {
		c := toRGBA(s.border.Color)
		switch s.shapeType {
		case AutoShapeEllipse:
			r.drawEllipse(x, y, w, h, c)
		default:
			r.drawRect(rect, c, r.strokeWidth(s.border.Width))
		}
	}
}

func (r *renderer) renderLine(s *LineShape) {
	if s.lineStyle == BorderNone {
		return
	}
	x1, y1 := r.px(s.offsetX), r.px(s.offsetY)
	x2, y2 := r.px(s.offsetX+s.width), r.px(s.offsetY+s.height)
	r.drawThickLine(x1, y1, x2, y2, r.strokeWidth(s.lineWidth), toRGBA(s.lineColor))
}

// --- Drawing primitives ---

func (r *renderer) drawRect(rect image.Rectangle, c color.RGBA, width int) {
	for i := 0; i < width; i++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r.setPixel(x, rect.Min.Y+i, c)
			r.setPixel(x, rect.Max.Y-1-i, c)
		}
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			r.setPixel(rect.Min.X+i, y, c)
			r.setPixel(rect.Max.X-1-i, y, c)
		}
	}
}

// drawThickLine draws a line of the given pixel width. Axis-aligned lines
// are filled as rectangles centred on the line; others stamp a square at
// every Bresenham step.
func (r *renderer) drawThickLine(x1, y1, x2, y2, width int, c color.RGBA) {
	lo := -(width - 1) / 2
	hi := lo + width
	switch {
	case x1 == x2:
		rect := image.Rect(x1+lo, min(y1, y2), x1+hi, max(y1, y2)+1)
		draw.Draw(r.img, rect, &image.Uniform{c}, image.Point{}, draw.Over)
	case y1 == y2:
		rect := image.Rect(min(x1, x2), y1+lo, max(x1, x2)+1, y1+hi)
		draw.Draw(r.img, rect, &image.Uniform{c}, image.Point{}, draw.Over)
	default:
		r.bresenham(x1, y1, x2, y2, func(x, y int) {
			for dy := lo; dy < hi; dy++ {
				for dx := lo; dx < hi; dx++ {
					r.setPixel(x+dx, y+dy, c)
				}
			}
		})
	}
}

func (r *renderer) bresenham(x1, y1, x2, y2 int, plot func(x, y int)) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		plot(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (r *renderer) fillEllipse(cx, cy, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	rx := float64(w) / 2
	ry := float64(h) / 2
	centerX := float64(cx) + rx
	centerY := float64(cy) + ry

	for py := cy; py < cy+h; py++ {
		for px := cx; px < cx+w; px++ {
			dx := (float64(px) + 0.5 - centerX) / rx
			dy := (float64(py) + 0.5 - centerY) / ry
			if dx*dx+dy*dy <= 1.0 {
				r.setPixel(px, py, c)
			}
		}
	}
}

func (r *renderer) drawEllipse(cx, cy, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	rx := float64(w) / 2
	ry := float64(h) / 2
	centerX := float64(cx) + rx
	centerY := float64(cy) + ry

	steps := max(w, h) * 4
	if steps < 100 {
		steps = 100
	}
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		r.setPixel(int(centerX+rx*math.Cos(angle)), int(centerY+ry*math.Sin(angle)), c)
	}
}

func (r *renderer) setPixel(x, y int, c color.RGBA) {
	if image.Pt(x, y).In(r.img.Bounds()) {
		r.img.SetRGBA(x, y, c)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// --- Text rendering ---

// face returns the face for f at the preview scale. Font sizes are points
// and the slide is 96 DPI, so one point is 4/3 canvas pixels.
func (r *renderer) face(f *Font) font.Face {
	if f == nil {
		f = NewFont()
	}
	size := float64(f.Size)
	if size <= 0 {
		size = 10
	}
	pixels := size * emuPerPoint * r.scale
	return r.fontCache.Face(f.Name, pixels, f.Bold)
}

type textRun struct {
	text  string
	face  font.Face
	color color.RGBA
}

type textLine struct {
	runs      []textRun
	width     int
	height    int
	ascent    int
	alignment HorizontalAlignment
}

func buildTextLine(runs []textRun, align HorizontalAlignment) textLine {
	line := textLine{runs: runs, alignment: align}
	for _, run := range runs {
		line.width += font.MeasureString(run.face, run.text).Ceil()
		m := run.face.Metrics()
		line.height = max(line.height, m.Height.Ceil())
		line.ascent = max(line.ascent, m.Ascent.Ceil())
	}
	if line.height <= 0 {
		line.height, line.ascent = 14, 11
	}
	return line
}

// drawParagraphs lays paragraphs out inside rect: one line per paragraph
// unless word wrap is on, placed vertically by the text anchor.
func (r *renderer) drawParagraphs(s *RichTextShape, rect image.Rectangle) {
	var lines []textLine
	for _, para := range s.paragraphs {
		var runs []textRun
		for _, tr := range para.runs {
			runs = append(runs, textRun{text: tr.text, face: r.face(tr.font), color: toRGBA(tr.font.Color)})
		}
		line := buildTextLine(runs, para.alignment)
		if s.wordWrap && line.width > rect.Dx() && rect.Dx() > 0 {
			lines = append(lines, wrapRunLine(line, rect.Dx())...)
		} else {
			lines = append(lines, line)
		}
	}

	total := 0
	for _, l := range lines {
		total += l.height
	}
	y := rect.Min.Y
	switch s.anchor {
	case TextAnchorMiddle:
		y += (rect.Dy() - total) / 2
	case TextAnchorBottom:
		y += rect.Dy() - total
	}

	for _, line := range lines {
		x := rect.Min.X
		switch line.alignment {
		case HorizontalCenter:
			x += (rect.Dx() - line.width) / 2
		case HorizontalRight:
			x += rect.Dx() - line.width
		}
		baseline := y + line.ascent
		for _, run := range line.runs {
			d := &font.Drawer{
				Dst:  r.img,
				Src:  &image.Uniform{run.color},
				Face: run.face,
				Dot:  fixed.P(x, baseline),
			}
			d.DrawString(run.text)
			x += font.MeasureString(run.face, run.text).Ceil()
		}
		y += line.height
	}
}

// wrapRunLine breaks a line at rune boundaries so that it fits maxWidth.
// Chinese text has no spaces to break at.
func wrapRunLine(line textLine, maxWidth int) []textLine {
	var result []textLine
	var cur []textRun
	curWidth := 0
	for _, run := range line.runs {
		start := 0
		for i, ch := range run.text {
			cw := font.MeasureString(run.face, string(ch)).Ceil()
			if curWidth+cw > maxWidth && curWidth > 0 {
				if i > start {
					cur = append(cur, textRun{text: run.text[start:i], face: run.face, color: run.color})
				}
				result = append(result, buildTextLine(cur, line.alignment))
				cur, curWidth, start = nil, 0, i
			}
			curWidth += cw
		}
		if start < len(run.text) {
			cur = append(cur, textRun{text: run.text[start:], face: run.face, color: run.color})
		}
	}
	if len(cur) > 0 {
		result = append(result, buildTextLine(cur, line.alignment))
	}
	return result
}

// drawString draws text with its baseline at y and its horizontal anchor
// at x according to align.
func (r *renderer) drawString(text string, face font.Face, c color.RGBA, x, y int, align HorizontalAlignment) {
	w := font.MeasureString(face, text).Ceil()
	switch align {
	case HorizontalCenter:
		x -= w / 2
	case HorizontalRight:
		x -= w
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  &image.Uniform{c},
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
