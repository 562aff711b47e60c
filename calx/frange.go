package calx

import (
	"fmt"
	"iter"
	"math"
)

// relTolerance guards the sequence boundary against float drift,
// matching the usual 1e-9 relative-closeness convention
const relTolerance = 1e-9

func isClose(a, b float64) bool {
	return math.Abs(a-b) <= relTolerance*math.Max(math.Abs(a), math.Abs(b))
}

// FRange returns a restartable sequence of floats increasing by step,
// exclusive of both endpoints. Bounds resolve like a float range():
//
//	FRange(step)              -> (0, 1)
//	FRange(step, end)         -> (0, end)
//	FRange(step, start, end)  -> (start, end)
//
// A value within float tolerance of end is not yielded, so a step that
// lands on the boundary up to drift stops cleanly before it.
// A zero step is an error.
func FRange(step float64, bounds ...float64) (iter.Seq[float64], error) {
	return frange(step, false, bounds)
}

// FRangeInclusive is FRange but yields start first and end last,
// bracketing the strictly-between values
func FRangeInclusive(step float64, bounds ...float64) (iter.Seq[float64], error) {
	return frange(step, true, bounds)
}

func frange(step float64, inclusive bool, bounds []float64) (iter.Seq[float64], error) {
	if step == 0 {
		return nil, fmt.Errorf("frange: step must be non-zero")
	}

	var start, end float64
	switch len(bounds) {
	case 0:
		start, end = 0, 1
	case 1:
		start, end = 0, bounds[0]
	case 2:
		start, end = bounds[0], bounds[1]
	default:
		return nil, fmt.Errorf("frange: want at most start and end, got %d bounds", len(bounds))
	}

	return func(yield func(float64) bool) {
		if inclusive && !yield(start) {
			return
		}
		for n := start + step; n < end && !isClose(n, end); n += step {
			if !yield(n) {
				return
			}
		}
		if inclusive {
			yield(end)
		}
	}, nil
}

// Fractions returns n evenly spaced interior fractions of [0,1],
// equivalent to FRange(1/(n+1))
func Fractions(n int) iter.Seq[float64] {
	seq, _ := FRange(1 / float64(n+1))
	return seq
}

// FractionsInclusive is Fractions with 0 prepended and 1 appended
func FractionsInclusive(n int) iter.Seq[float64] {
	seq, _ := FRangeInclusive(1 / float64(n+1))
	return seq
}
