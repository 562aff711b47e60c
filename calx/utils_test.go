package calx

import (
	"math"
	"testing"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		n, lower, upper float64
		want            float64
	}{
		{1.5, 0, 1, 1},
		{-0.2, 0, 1, 0},
		{0.5, 0, 1, 0.5},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
		{7, -5, 5, 5},
		{-7, -5, 5, -5},
	}
	for _, tt := range tests {
		if got := Trim(tt.n, tt.lower, tt.upper); got != tt.want {
			t.Errorf("Trim(%v, %v, %v) = %v, want %v", tt.n, tt.lower, tt.upper, got, tt.want)
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name                string
		a, b, c             float64
		wantLeft, wantRight float64
	}{
		{"negative discriminant yields double value", 20.6, -10.3, 8.7, 0.25, 0.25},
		{"two real roots", 2.5, 25, 20, -9.12310562561766, -0.8768943743823392},
		{"negative leading coefficient orders roots", -1, 0, 4, -2, 2},
		{"true double root", 1, -2, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := SolveQuadratic(tt.a, tt.b, tt.c)
			if !almostEqual(left, tt.wantLeft) || !almostEqual(right, tt.wantRight) {
				t.Errorf("SolveQuadratic(%v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.a, tt.b, tt.c, left, right, tt.wantLeft, tt.wantRight)
			}
			if left > right {
				t.Errorf("roots out of order: %v > %v", left, right)
			}
		})
	}
}

func TestMods(t *testing.T) {
	tests := []struct {
		x, y, shift int
		want        int
	}{
		{-1, 5, 0, 4},
		{5, 5, 1, 1},
		{5, 5, 0, 0},
		{7, 5, 0, 2},
		{-7, 5, 0, 3},
		{3, 5, 0, 3},
		{-1, 5, 10, 14},
	}
	for _, tt := range tests {
		if got := Mods(tt.x, tt.y, tt.shift); got != tt.want {
			t.Errorf("Mods(%d, %d, %d) = %d, want %d", tt.x, tt.y, tt.shift, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	if got := Compare(3, 5); got != -1 {
		t.Errorf("Compare(3, 5) = %d, want -1", got)
	}
	if got := Compare(5, 3); got != 1 {
		t.Errorf("Compare(5, 3) = %d, want 1", got)
	}
	if got := Compare(4, 4); got != 0 {
		t.Errorf("Compare(4, 4) = %d, want 0", got)
	}
	if got := Compare("apple", "banana"); got != -1 {
		t.Errorf(`Compare("apple", "banana") = %d, want -1`, got)
	}
	if got := Compare(2.5, 2.5); got != 0 {
		t.Errorf("Compare(2.5, 2.5) = %d, want 0", got)
	}
}

func TestRandF(t *testing.T) {
	for i := 0; i < 200; i++ {
		n := RandF(1, 8)
		if n < 0 || n >= 1 {
			t.Fatalf("RandF(1, 8) = %v, outside [0,1)", n)
		}
		// eight significant decimal digits: scaling up must give an integer
		scaled := n * 1e8
		if math.Abs(scaled-math.Round(scaled)) > 1e-6 {
			t.Fatalf("RandF(1, 8) = %v, more than 8 decimal digits", n)
		}
	}

	for i := 0; i < 200; i++ {
		n := RandF(5, 3)
		if n < 0 || n >= 5 {
			t.Fatalf("RandF(5, 3) = %v, outside [0,5)", n)
		}
	}
}
