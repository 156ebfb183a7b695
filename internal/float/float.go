// seehuhn.de/go/colorimetry - colour science computations in Go
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package float contains helpers for rounding and printing computed values.
package float

import (
	"math"
	"regexp"
	"strconv"
)

// Format formats x with the given number of decimal places and removes
// trailing zeros.
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(Round(x, precision), 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	return out
}

// Round rounds x to the given number of decimal places.
// Negative zero is mapped to zero.
func Round(x float64, digits int) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	scale := math.Pow(10, float64(digits))
	y := math.Round(x*scale) / scale
	if math.IsInf(y, 0) || math.IsNaN(y) {
		// x*scale overflowed
		y = x
	}
	if y == 0 {
		return 0
	}
	return y
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
