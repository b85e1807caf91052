package trackppt

import (
	"fmt"
	"strings"
)

// Validate checks the presentation for structural issues and returns an error
// describing all problems found, or nil if the presentation is valid.
func (p *Presentation) Validate() error {
	var errs []string

	if p.properties == nil {
		errs = append(errs, "document properties are nil")
	}
	if p.layout == nil {
		errs = append(errs, "document layout is nil")
	} else {
		if p.layout.CX <= 0 {
			errs = append(errs, "layout width (CX) must be positive")
		}
		if p.layout.CY <= 0 {
			errs = append(errs, "layout height (CY) must be positive")
		}
	}
	if len(p.slides) == 0 {
		errs = append(errs, "presentation must have at least one slide")
	}

	for i, slide := range p.slides {
		prefix := fmt.Sprintf("slide %d", i+1)
		if slide == nil {
			errs = append(errs, prefix+": slide is nil")
			continue
		}
		for _, e := range validateShapes(slide.shapes, false) {
			errs = append(errs, prefix+": "+e)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
}

// validateShapes checks a shape list. Charts are only allowed at the top
// level of a slide, since each needs a slide relationship.
func validateShapes(shapes []Shape, inGroup bool) []string {
	var errs []string
	for j, shape := range shapes {
		prefix := fmt.Sprintf("shape %d", j+1)
		if shape == nil {
			errs = append(errs, prefix+": shape is nil")
			continue
		}
		if shape.GetWidth() < 0 {
			errs = append(errs, prefix+": width is negative")
		}
		if shape.GetHeight() < 0 {
			errs = append(errs, prefix+": height is negative")
		}

		switch sh := shape.(type) {
		case *ChartShape:
			if inGroup {
				errs = append(errs, prefix+": chart cannot be grouped")
			}
			errs = append(errs, validateChart(sh, prefix)...)
		case *RichTextShape:
			if len(sh.paragraphs) == 0 {
				errs = append(errs, prefix+": rich text shape has no paragraphs")
			}
			errs = append(errs, validateParagraphs(sh.paragraphs, prefix)...)
		case *LineShape:
			if !isValidARGB(sh.lineColor.ARGB) {
				errs = append(errs, prefix+": line color is invalid ARGB")
			}
			if sh.lineWidth < 0 {
				errs = append(errs, prefix+": line width is negative")
			}
		case *AutoShape:
			if sh.fill != nil && sh.fill.Type == FillSolid && !isValidARGB(sh.fill.Color.ARGB) {
				errs = append(errs, prefix+": fill color is invalid ARGB")
			}
		case *GroupShape:
			for _, e := range validateShapes(sh.shapes, true) {
				errs = append(errs, prefix+": "+e)
			}
		}
	}
	return errs
}

func validateChart(cs *ChartShape, prefix string) []string {
	ct := cs.plotArea.chartType
	if ct == nil {
		return []string{prefix + ": chart shape has no chart type set"}
	}
	var errs []string
	switch ct.(type) {
	case *LineChart, *PieChart:
	default:
		errs = append(errs, fmt.Sprintf("%s: unsupported chart type %q", prefix, ct.GetChartTypeName()))
	}
	series := ct.GetSeries()
	if len(series) == 0 {
		errs = append(errs, prefix+": chart has no series")
	}
	for k, s := range series {
		if s == nil {
			errs = append(errs, fmt.Sprintf("%s: series %d is nil", prefix, k+1))
			continue
		}
		if len(s.Values) != len(s.Categories) {
			errs = append(errs, fmt.Sprintf("%s: series %d has %d values for %d categories",
				prefix, k+1, len(s.Values), len(s.Categories)))
		}
	}
	return errs
}

// validateParagraphs checks paragraph elements for common issues.
func validateParagraphs(paragraphs []*Paragraph, prefix string) []string {
	var errs []string
	for i, para := range paragraphs {
		if para == nil {
			errs = append(errs, fmt.Sprintf("%s: paragraph %d is nil", prefix, i+1))
			continue
		}
		for k, tr := range para.runs {
			if tr == nil {
				errs = append(errs, fmt.Sprintf("%s: paragraph %d run %d is nil", prefix, i+1, k+1))
				continue
			}
			if tr.font == nil {
				errs = append(errs, fmt.Sprintf("%s: paragraph %d text run %d has nil font", prefix, i+1, k+1))
			}
		}
	}
	return errs
}

func isValidARGB(s string) bool {
	if len(s) != 8 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if hexVal(s[i]) < 0 {
			return false
		}
	}
	return true
}
