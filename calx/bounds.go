package calx

import "math"

// Angle constants, degree convention
const (
	FullCircle       = 360.0
	HalfCircle       = 180.0
	RadiansToDegrees = 180.0 / math.Pi
)

// Bounds maps a fraction in [0,1] onto the range [start, end] and back.
// Immutable after construction; the span is computed once.
type Bounds struct {
	start, end, span float64
}

// NewBounds returns linear bounds from start to end
func NewBounds(start, end float64) Bounds {
	return Bounds{start: start, end: end, span: end - start}
}

// Start returns the lower endpoint of the bounds
func (b Bounds) Start() float64 { return b.start }

// End returns the upper endpoint of the bounds
func (b Bounds) End() float64 { return b.end }

// Span returns end - start
func (b Bounds) Span() float64 { return b.span }

// Interpolate maps fraction f onto the bounds. Values outside [0,1]
// extrapolate linearly.
func (b Bounds) Interpolate(f float64) float64 {
	return b.start + b.span*f
}

// InverseInterpolate maps a value in the bounds back to a fraction.
// Zero-span bounds map every value to 0 rather than dividing by zero.
// With inside set, the fraction is trimmed into [0,1].
func (b Bounds) InverseInterpolate(n float64, inside bool) float64 {
	if b.span == 0 {
		return 0
	}
	f := (n - b.start) / b.span
	if inside {
		return Trim(f, 0, 1)
	}
	return f
}

// CyclicBounds wraps linear bounds onto a periodic domain, always
// interpolating along the minor arc between start and end.
type CyclicBounds struct {
	lin    Bounds
	period float64
}

// NewCyclicBounds returns cyclic bounds from start to end over the given
// period. A period <= 0 resolves to FullCircle.
//
// Both endpoints are reduced into [0, period), then start is phase
// shifted by a whole period so that |end - start| <= period/2:
//
//	                     v------ period ------v
//	-1                   0                    1                  2
//	 |                   |                    |    start < end:  |
//	 |                   |   S ~~~~~~~~~> E   |                  |
//	 |                   |                E <~|~~ S' = S + period|
//	 |   start > end:    |                    |                  |
//	 |                   |   E <~~~~~~~~~ S   |                  |
//	 | S - period = S'~~~|~> E                |                  |
func NewCyclicBounds(start, end, period float64) CyclicBounds {
	if period <= 0 {
		period = FullCircle
	}
	start = floorMod(start, period)
	end = floorMod(end, period)
	if math.Abs(end-start) > period/2 {
		if start < end {
			start += period
		} else {
			start -= period
		}
	}
	return CyclicBounds{lin: NewBounds(start, end), period: period}
}

// Period returns the cycle length
func (b CyclicBounds) Period() float64 { return b.period }

// Start returns the phase-shifted lower endpoint, possibly outside
// [0, period)
func (b CyclicBounds) Start() float64 { return b.lin.start }

// End returns the reduced upper endpoint
func (b CyclicBounds) End() float64 { return b.lin.end }

// Interpolate maps fraction f along the minor arc, reduced into
// [0, period)
func (b CyclicBounds) Interpolate(f float64) float64 {
	return floorMod(b.lin.Interpolate(f), b.period)
}

// InverseInterpolate reduces n into [0, period) before inverting, so
// values exactly one period apart are indistinguishable.
func (b CyclicBounds) InverseInterpolate(n float64, inside bool) float64 {
	return b.lin.InverseInterpolate(floorMod(n, b.period), inside)
}

// Interpolate maps fraction f onto [start, end]
func Interpolate(f, start, end float64) float64 {
	return NewBounds(start, end).Interpolate(f)
}

// InverseInterpolate maps n in [start, end] back to a fraction
func InverseInterpolate(n, start, end float64, inside bool) float64 {
	return NewBounds(start, end).InverseInterpolate(n, inside)
}

// InterpolateCyclic maps fraction f along the minor arc from start to end
func InterpolateCyclic(f, start, end, period float64) float64 {
	return NewCyclicBounds(start, end, period).Interpolate(f)
}

// InverseInterpolateCyclic maps n back to a fraction of the minor arc
func InverseInterpolateCyclic(n, start, end, period float64, inside bool) float64 {
	return NewCyclicBounds(start, end, period).InverseInterpolate(n, inside)
}

// InterpolateAngle maps fraction f along the minor arc between two angles
// in degrees
func InterpolateAngle(f, angle1, angle2 float64) float64 {
	return NewCyclicBounds(angle1, angle2, FullCircle).Interpolate(f)
}

// InverseInterpolateAngle maps an angle in degrees back to a fraction of
// the minor arc between angle1 and angle2
func InverseInterpolateAngle(n, angle1, angle2 float64, inside bool) float64 {
	return NewCyclicBounds(angle1, angle2, FullCircle).InverseInterpolate(n, inside)
}

// floorMod reduces x into [0, y) for positive y, matching the sign of y
// like Python's % rather than math.Mod's truncation
func floorMod(x, y float64) float64 {
	m := math.Mod(x, y)
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return m
}
