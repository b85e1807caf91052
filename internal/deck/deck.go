// Package deck reads YAML deck descriptions and turns them into
// presentations.
//
// A deck looks like:
//
//	title: Weekly tracking report
//	slides:
//	  - kind: gantt
//	    title: Device activity
//	    intervals:
//	      - {category: CPU使用率, start: 0, end: 42.5}
//	  - kind: line
//	    page: 3
//	    series:
//	      - {name: 响应时间, values: [0.3, 1.2, -0.4]}
//	  - kind: pie
//	    slices:
//	      - {name: 磁盘IOPS, value: 40}
package deck

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/VantageDataChat/trackppt"
	"github.com/VantageDataChat/trackppt/gantt"
)

// Kind selects the chart drawn on a slide.
type Kind string

const (
	KindGantt Kind = "gantt"
	KindLine  Kind = "line"
	KindPie   Kind = "pie"
)

var (
	ErrUnknownKind = errors.New("unknown slide kind")
	ErrEmptySlide  = errors.New("slide has no data")
	ErrBadPage     = errors.New("page must be positive")
)

// Deck is a titled list of chart slides.
type Deck struct {
	Title            string  `yaml:"title"`
	MinLabelFontSize int     `yaml:"min_label_font_size"` // gantt row labels; 0 keeps the default
	Slides           []Slide `yaml:"slides"`
}

// Slide describes one chart. Only the data field matching Kind is used.
type Slide struct {
	Kind  Kind   `yaml:"kind"`
	Title string `yaml:"title"`
	Page  int    `yaml:"page"` // 1-based; 0 means the page after the previous chart

	Intervals []Interval `yaml:"intervals"`
	Series    []Series   `yaml:"series"`
	Slices    []Slice    `yaml:"slices"`
}

// Interval is one bar of a gantt slide, in seconds.
type Interval struct {
	Category string  `yaml:"category"`
	Start    float64 `yaml:"start"`
	End      float64 `yaml:"end"`
}

// Series is one named line of a line slide.
type Series struct {
	Name   string    `yaml:"name"`
	Values []float64 `yaml:"values"`
}

// Slice is one named wedge of a pie slide.
type Slice struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// Load reads and parses a deck file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a deck, normalises its names and checks every slide.
// Unknown keys are rejected.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	d.normalize()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// cleanName trims a name and puts it in NFC so that names typed with
// composed and decomposed characters share one row.
func cleanName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func (d *Deck) normalize() {
	d.Title = cleanName(d.Title)
	for i := range d.Slides {
		s := &d.Slides[i]
		s.Kind = Kind(strings.ToLower(strings.TrimSpace(string(s.Kind))))
		s.Title = cleanName(s.Title)
		for j := range s.Intervals {
			s.Intervals[j].Category = cleanName(s.Intervals[j].Category)
		}
		for j := range s.Series {
			s.Series[j].Name = cleanName(s.Series[j].Name)
		}
		for j := range s.Slices {
			s.Slices[j].Name = cleanName(s.Slices[j].Name)
		}
	}
}

// Validate reports the first bad slide.
func (d *Deck) Validate() error {
	for i, s := range d.Slides {
		if err := s.validate(); err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *Slide) validate() error {
	if s.Page < 0 {
		return fmt.Errorf("%w: %d", ErrBadPage, s.Page)
	}
	switch s.Kind {
	case KindGantt:
		// An empty gantt slide still draws its axes.
		return gantt.ValidateAll(s.GanttIntervals())
	case KindLine:
		if len(s.Series) == 0 {
			return fmt.Errorf("%w: line chart needs series", ErrEmptySlide)
		}
	case KindPie:
		if len(s.Slices) == 0 {
			return fmt.Errorf("%w: pie chart needs slices", ErrEmptySlide)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownKind, s.Kind)
	}
	return nil
}

// GanttIntervals returns the slide's intervals for the layout engine.
func (s *Slide) GanttIntervals() []gantt.Interval {
	out := make([]gantt.Interval, len(s.Intervals))
	for i, iv := range s.Intervals {
		out[i] = gantt.Interval{Category: iv.Category, Start: iv.Start, End: iv.End}
	}
	return out
}

// LineSeries returns the slide's series as chart data.
func (s *Slide) LineSeries() []trackppt.LineSeries {
	out := make([]trackppt.LineSeries, len(s.Series))
	for i, sr := range s.Series {
		out[i] = trackppt.LineSeries{Name: sr.Name, Values: sr.Values}
	}
	return out
}

// PieSlices returns the slide's slices as chart data.
func (s *Slide) PieSlices() []trackppt.PieSlice {
	out := make([]trackppt.PieSlice, len(s.Slices))
	for i, sl := range s.Slices {
		out[i] = trackppt.PieSlice{Name: sl.Name, Value: sl.Value}
	}
	return out
}

// Build draws every slide of the deck into a new presentation. Pages that
// no slide names stay blank.
func (d *Deck) Build() (*trackppt.Presentation, error) {
	p := trackppt.New()
	p.GetDocumentProperties().Title = d.Title

	opts := gantt.DefaultOptions()
	if d.MinLabelFontSize > 0 {
		opts.MinLabelFontSize = d.MinLabelFontSize
	}

	page := 0
	for i, s := range d.Slides {
		if s.Page > 0 {
			page = s.Page
		} else {
			page++
		}
		p.EnsureSlides(page)
		slide, err := p.SlideAt(page)
		if err != nil {
			return nil, err
		}
		if err := s.draw(slide, opts); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	return p, nil
}

func (s *Slide) draw(slide *trackppt.Slide, opts *gantt.Options) error {
	var err error
	switch s.Kind {
	case KindGantt:
		_, err = slide.AddGanttChart(trackppt.GanttChartData{Title: s.Title, Intervals: s.GanttIntervals()}, opts)
	case KindLine:
		_, err = slide.AddLineChart(trackppt.LineChartData{Title: s.Title, Series: s.LineSeries()})
	case KindPie:
		_, err = slide.AddPieChart(trackppt.PieChartData{Title: s.Title, Slices: s.PieSlices()})
	default:
		err = fmt.Errorf("%w %q", ErrUnknownKind, s.Kind)
	}
	return err
}
