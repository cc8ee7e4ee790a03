package utils

import (
	"math"
	"strconv"
)

type Fl = float32

func MinInt(x, y int) int {
	if x < y {
		return x
	}
	return y
}

func MaxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}

func MinF(x, y Fl) Fl {
	if x < y {
		return x
	}
	return y
}

func Floor(x Fl) Fl {
	return Fl(math.Floor(float64(x)))
}

func Ceil(x Fl) Fl {
	return Fl(math.Ceil(float64(x)))
}

// RoundPrec rounds f with n digits precision
func RoundPrec(f Fl, n int) Fl {
	n10 := math.Pow10(n)
	return Fl(math.Round(float64(f)*n10) / n10)
}

// FormatFl returns a compact representation of f, rounded
// to 3 digits.
func FormatFl(f Fl) string {
	return strconv.FormatFloat(float64(RoundPrec(f, 3)), 'g', -1, 32)
}
