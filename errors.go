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

package colorimetry

import (
	"fmt"
	"math"
	"strconv"
)

// RangeError is returned when an argument of a conversion lies outside the
// range for which the conversion is meaningful.
type RangeError struct {
	Op    string // the operation, e.g. "XYToUV"
	Field string // the offending argument, e.g. "y"
	Value float64

	Min, Max         float64
	OpenMin, OpenMax bool
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: invalid %s=%g∉%s", e.Op, e.Field, e.Value, e.interval())
}

// Is allows to use [errors.Is] to check for range errors.
func (e *RangeError) Is(target error) bool {
	_, ok := target.(*RangeError)
	return ok
}

func (e *RangeError) interval() string {
	left, right := "[", "]"
	if e.OpenMin || math.IsInf(e.Min, -1) {
		left = "("
	}
	if e.OpenMax || math.IsInf(e.Max, 1) {
		right = ")"
	}
	return left + formatBound(e.Min) + "," + formatBound(e.Max) + right
}

func formatBound(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "∞"
	case math.IsInf(x, -1):
		return "-∞"
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// CheckRange returns a [*RangeError] if value does not lie in the closed
// interval [min, max].  NaN values are always rejected.
func CheckRange(op, field string, value, min, max float64) error {
	if value >= min && value <= max {
		return nil
	}
	return &RangeError{Op: op, Field: field, Value: value, Min: min, Max: max}
}

// CheckNonNegative returns a [*RangeError] if value is negative or NaN.
func CheckNonNegative(op, field string, value float64) error {
	if value >= 0 {
		return nil
	}
	return &RangeError{Op: op, Field: field, Value: value, Min: 0, Max: math.Inf(1)}
}

// checkOpenMin is like CheckRange, but excludes the lower bound.
func checkOpenMin(op, field string, value, min, max float64) error {
	if value > min && value <= max {
		return nil
	}
	return &RangeError{Op: op, Field: field, Value: value, Min: min, Max: max, OpenMin: true}
}
