package gantt

import "math"

// tickCandidates are the "nice" tick spacings, in seconds, tried in order.
var tickCandidates = [...]int{1, 2, 5, 10, 15, 20, 30, 60, 120, 300, 600, 1200, 1800, 3600}

// TargetTickCount is the maximum number of tick intervals TickInterval aims for.
const TargetTickCount = 10

// defaultTickInterval is used when the extent truncates to zero seconds.
const defaultTickInterval = 10

// maxTickExtent caps the extent used for tick selection so that the chosen
// interval and its multiples fit in an int.
const maxTickExtent = math.MaxInt / 4

// TickInterval chooses the axis tick spacing for a timeline that runs from 0
// to maxExtent seconds. The extent is truncated to whole seconds and the
// first candidate c with extent/c <= TargetTickCount (integer division) wins.
// Extents beyond the candidate table round extent/TargetTickCount up to the
// next multiple of its decimal magnitude. Extents past maxTickExtent are
// treated as maxTickExtent.
func TickInterval(maxExtent float64) int {
	if !(maxExtent >= 1) {
		return defaultTickInterval
	}
	maxTime := int(min(maxExtent, maxTickExtent))
	for _, c := range tickCandidates {
		if maxTime/c <= TargetTickCount {
			return c
		}
	}
	fallback := maxTime / TargetTickCount
	magnitude := int(math.Pow(10, math.Floor(math.Log10(float64(fallback)))))
	return (fallback/magnitude + 1) * magnitude
}
