package trackppt

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer is the interface for presentation writers.
type Writer interface {
	Save(path string) error
	WriteTo(w io.Writer) error
}

// WriterType names an output format.
type WriterType string

const (
	WriterPowerPoint2007 WriterType = "PowerPoint2007"
)

// NewWriter creates a writer for the given format.
func NewWriter(p *Presentation, format WriterType) (Writer, error) {
	switch format {
	case WriterPowerPoint2007:
		return &PPTXWriter{presentation: p}, nil
	default:
		return nil, fmt.Errorf("unsupported writer format: %s", format)
	}
}

// PPTXWriter writes presentations as Office Open XML packages.
type PPTXWriter struct {
	presentation *Presentation
	// chartIndex maps each chart to its 1-based part number, across slides.
	chartIndex map[*ChartShape]int
}

// Save writes the presentation to a file, creating parent directories. A
// partially written file is removed on failure.
func (w *PPTXWriter) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	writeErr := w.WriteTo(f)
	closeErr := f.Close()

	if writeErr != nil {
		os.Remove(path)
		return writeErr
	}
	return closeErr
}

// WriteTo writes the package to writer.
func (w *PPTXWriter) WriteTo(writer io.Writer) error {
	if w.presentation == nil {
		return errors.New("presentation is nil")
	}
	if err := w.presentation.Validate(); err != nil {
		return err
	}

	w.indexCharts()
	zw := zip.NewWriter(writer)

	parts := []func(*zip.Writer) error{
		w.writeContentTypes,
		w.writeRootRels,
		w.writeAppProperties,
		w.writeCoreProperties,
		w.writePresentation,
		w.writePresentationRels,
		w.writePresProps,
		w.writeViewProps,
		w.writeTableStyles,
		w.writeSlideMaster,
		w.writeSlideLayout,
		w.writeTheme,
	}
	for _, part := range parts {
		if err := part(zw); err != nil {
			return err
		}
	}

	for i, slide := range w.presentation.slides {
		if err := w.writeSlide(zw, slide, i+1); err != nil {
			return err
		}
		if err := w.writeSlideRels(zw, slide, i+1); err != nil {
			return err
		}
		for _, cs := range slide.charts() {
			if err := w.writeChartPart(zw, cs, w.chartIndex[cs]); err != nil {
				return err
			}
		}
	}

	return zw.Close()
}

func (w *PPTXWriter) indexCharts() {
	w.chartIndex = make(map[*ChartShape]int)
	n := 1
	for _, slide := range w.presentation.slides {
		for _, cs := range slide.charts() {
			w.chartIndex[cs] = n
			n++
		}
	}
}

// Save writes the presentation as a .pptx file.
func (p *Presentation) Save(path string) error {
	return (&PPTXWriter{presentation: p}).Save(path)
}

// WriteTo writes the presentation as a .pptx package.
func (p *Presentation) WriteTo(w io.Writer) error {
	return (&PPTXWriter{presentation: p}).WriteTo(w)
}
