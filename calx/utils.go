package calx

import (
	"cmp"
	"crypto/rand"
	"math"
	"math/big"
	"math/cmplx"
)

// Trim clamps n into [lower, upper]
func Trim(n, lower, upper float64) float64 {
	return math.Min(math.Max(lower, n), upper)
}

// SolveQuadratic returns the roots of a*x^2 + b*x + c = 0 as
// (smaller, larger).
//
// Quirk: the discriminant root is taken as the real part of the complex
// square root, so a negative discriminant yields the double value -b/2a
// instead of an error. Callers cannot distinguish that from a genuine
// double root.
func SolveQuadratic(a, b, c float64) (float64, float64) {
	r := real(cmplx.Sqrt(complex(b*b-4*a*c, 0)))
	left := (-b - r) / (2 * a)
	right := (-b + r) / (2 * a)
	if left > right {
		left, right = right, left
	}
	return left, right
}

// Mods returns the floored remainder of x modulo y, offset by shift.
// Unlike Go's % the result for negative x is non-negative before the
// offset: Mods(-1, 5, 0) == 4.
func Mods(x, y, shift int) int {
	m := x % y
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return m + shift
}

// Compare is a three-way comparator: -1 when v1 < v2, 1 when v1 > v2,
// 0 otherwise
func Compare[T cmp.Ordered](v1, v2 T) int {
	switch {
	case v1 < v2:
		return -1
	case v1 > v2:
		return 1
	}
	return 0
}

// RandF returns a uniform float in [0, exclusiveUpperBound) with the
// given number of significant decimal digits, drawn from the
// cryptographically strong system source. Not for hot paths.
func RandF(exclusiveUpperBound float64, precision int) float64 {
	digits := int(math.Ceil(math.Log10(exclusiveUpperBound))) + precision
	epb := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, epb)
	if err != nil {
		// the system entropy source is gone; nothing sensible to return
		panic(err)
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	e, _ := new(big.Float).SetInt(epb).Float64()
	return f * exclusiveUpperBound / e
}
