package gantt

import (
	"math"
	"strconv"
	"testing"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		maxExtent float64
		want      int
	}{
		{0, 10},
		{0.5, 10},
		{1, 1},
		{10, 1},
		{11, 2},
		{20, 2},
		{25, 5},
		{60, 10},
		{100, 10},
		{109.9, 10}, // truncated to 109, 109/10 == 10
		{110, 15},
		{300, 30},
		{3600, 600},
		{36000, 3600},
		{39599, 3600},
		{39600, 4000},
		{50000, 6000},
		{250000, 30000},
	}
	for _, tt := range tests {
		if got := TickInterval(tt.maxExtent); got != tt.want {
			t.Errorf("TickInterval(%v) = %d, want %d", tt.maxExtent, got, tt.want)
		}
	}
}

func TestTickIntervalIsMinimalCandidate(t *testing.T) {
	for m := 1; m <= 36000; m += 7 {
		got := TickInterval(float64(m))
		if m/got > TargetTickCount {
			t.Fatalf("TickInterval(%d) = %d gives %d ticks", m, got, m/got)
		}
		for _, c := range tickCandidates {
			if c >= got {
				break
			}
			if m/c <= TargetTickCount {
				t.Fatalf("TickInterval(%d) = %d, but smaller candidate %d also fits", m, got, c)
			}
		}
	}
}

func TestTickIntervalHugeExtent(t *testing.T) {
	capped := TickInterval(maxTickExtent)
	for _, m := range []float64{9.2e18, 1e19, 1e300, math.MaxFloat64} {
		if got := TickInterval(m); got != capped {
			t.Errorf("TickInterval(%g) = %d, want %d", m, got, capped)
		}
	}
	if strconv.IntSize == 64 && int64(capped) != 3e17 {
		t.Errorf("TickInterval(maxTickExtent) = %d, want 3e17", capped)
	}
	for _, m := range []float64{-5, math.NaN(), math.Inf(-1)} {
		if got := TickInterval(m); got != defaultTickInterval {
			t.Errorf("TickInterval(%g) = %d, want %d", m, got, defaultTickInterval)
		}
	}
}
