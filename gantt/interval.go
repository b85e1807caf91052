// Package gantt lays out Gantt-style timeline charts.
//
// The engine maps time intervals onto a fixed-size canvas, picks a readable
// tick spacing for the time axis, assigns each category a row and a colour
// in first-seen order, and decomposes every interval into primitive shapes
// that together look like a rounded bar. The result is a flat list of
// drawable elements; turning those into document shapes is the caller's job.
//
// All functions are pure. A chart build keeps its state local, so charts may
// be laid out concurrently.
package gantt

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvertedInterval is returned by Interval.Validate when End < Start.
var ErrInvertedInterval = errors.New("interval ends before it starts")

// Interval is a named category with a start and end time, in seconds.
type Interval struct {
	Category string
	Start    float64
	End      float64
}

// Duration returns End - Start.
func (iv Interval) Duration() float64 {
	return iv.End - iv.Start
}

// Validate checks that both bounds are finite and that End >= Start.
// The layout engine assumes valid input and does not call it.
func (iv Interval) Validate() error {
	if math.IsNaN(iv.Start) || math.IsInf(iv.Start, 0) {
		return fmt.Errorf("interval %q: start %v is not finite", iv.Category, iv.Start)
	}
	if math.IsNaN(iv.End) || math.IsInf(iv.End, 0) {
		return fmt.Errorf("interval %q: end %v is not finite", iv.Category, iv.End)
	}
	if iv.End < iv.Start {
		return fmt.Errorf("interval %q [%g, %g]: %w", iv.Category, iv.Start, iv.End, ErrInvertedInterval)
	}
	return nil
}

// Normalize returns the interval with its bounds swapped if End < Start.
func (iv Interval) Normalize() Interval {
	if iv.End < iv.Start {
		iv.Start, iv.End = iv.End, iv.Start
	}
	return iv
}

// ValidateAll validates every interval and reports the first failure with
// its index.
func ValidateAll(intervals []Interval) error {
	for i, iv := range intervals {
		if err := iv.Validate(); err != nil {
			return fmt.Errorf("interval %d: %w", i, err)
		}
	}
	return nil
}
