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

// Package cone converts between cone activations (LMS) and other colour
// representations.
//
// Two field sizes are supported.  For a 2° field the Smith & Pokorny (1975)
// cone fundamentals are used, which are based on the Judd-Vos modified
// CIE 1931 colour matching functions.  For a 10° field the CIE (2012)
// transformation between the CIE 2006 cone fundamentals and the
// corresponding colour matching functions is used.
//
// The Stiles & Burch (1959) 10° colour matching experiment used red, green
// and blue primaries.  [StilesBurchToLMS] and [LMSToStilesBurch] convert
// between the coordinates of these primaries and cone activations.
package cone

import (
	"errors"
	"fmt"

	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/internal/mat3"
)

// Field is the size of the visual field.
type Field int

// The supported field sizes.
const (
	TwoDegree Field = iota
	TenDegree
)

func (f Field) String() string {
	switch f {
	case TwoDegree:
		return "2°"
	case TenDegree:
		return "10°"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField converts "2" or "10" (optionally followed by "deg" or "°")
// to a field size.
func ParseField(s string) (Field, error) {
	switch s {
	case "2", "2deg", "2°":
		return TwoDegree, nil
	case "10", "10deg", "10°":
		return TenDegree, nil
	}
	return 0, fmt.Errorf("unknown field size %q", s)
}

var (
	// xyzToLMS2 is the Smith & Pokorny transformation.
	xyzToLMS2 = mat3.Matrix{
		{0.15514, 0.54312, -0.03286},
		{-0.15514, 0.45684, 0.03286},
		{0, 0, 0.00801},
	}
	lmsToXYZ2 = xyzToLMS2.MustInverse()

	lmsToXYZ10 = mat3.Matrix{
		{1.93986443, -1.34664359, 0.43044935},
		{0.69283932, 0.34967567, 0},
		{0, 0, 2.14687945},
	}
	xyzToLMS10 = lmsToXYZ10.MustInverse()
)

// ToLMS returns the matrix which maps XYZ to LMS for the given field size.
func ToLMS(f Field) mat3.Matrix {
	if f == TenDegree {
		return xyzToLMS10
	}
	return xyzToLMS2
}

// FromLMS returns the matrix which maps LMS to XYZ for the given field size.
func FromLMS(f Field) mat3.Matrix {
	if f == TenDegree {
		return lmsToXYZ10
	}
	return lmsToXYZ2
}

// XYZToLMS converts tristimulus values to cone activations.
// All tristimulus values must be non-negative.
func XYZToLMS(c colorimetry.XYZ, f Field) (colorimetry.LMS, error) {
	err := errors.Join(
		colorimetry.CheckNonNegative("XYZToLMS", "X", c.X),
		colorimetry.CheckNonNegative("XYZToLMS", "Y", c.Y),
		colorimetry.CheckNonNegative("XYZToLMS", "Z", c.Z),
	)
	if err != nil {
		return colorimetry.LMS{}, err
	}
	v := ToLMS(f).Apply(mat3.Vec{c.X, c.Y, c.Z})
	return colorimetry.LMS{L: v[0], M: v[1], S: v[2]}, nil
}

// LMSToXYZ converts cone activations to tristimulus values.
// All activations must lie in [0, 1].
func LMSToXYZ(c colorimetry.LMS, f Field) (colorimetry.XYZ, error) {
	err := errors.Join(
		colorimetry.CheckRange("LMSToXYZ", "L", c.L, 0, 1),
		colorimetry.CheckRange("LMSToXYZ", "M", c.M, 0, 1),
		colorimetry.CheckRange("LMSToXYZ", "S", c.S, 0, 1),
	)
	if err != nil {
		return colorimetry.XYZ{}, err
	}
	v := FromLMS(f).Apply(mat3.Vec{c.L, c.M, c.S})
	return colorimetry.XYZ{X: v[0], Y: v[1], Z: v[2]}, nil
}
