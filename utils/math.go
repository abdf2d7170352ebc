package utils

import "math"

// Fl is the float type used for every length of the layout.
type Fl = float32

// Epsilon absorbs the accumulation error of the layout computations.
const Epsilon Fl = 1e-3

func MaxF(x, y Fl) Fl {
	if x > y {
		return x
	}
	return y
}

// Sum returns the sum of values.
func Sum(values []Fl) Fl {
	var s Fl
	for _, v := range values {
		s += v
	}
	return s
}

// RoundPrec rounds f with n digits precision
func RoundPrec(f Fl, n int) Fl {
	n10 := math.Pow10(n)
	return Fl(math.Round(float64(f)*n10) / n10)
}
