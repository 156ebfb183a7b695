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

package cone

import (
	"errors"

	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/internal/mat3"
)

var (
	// sbToUnscaledLMS gives the cone sensitivities relative to the blue
	// primary.  The three rows are arbitrarily scaled relative to each
	// other.
	sbToUnscaledLMS = mat3.Matrix{
		{2.846201, 11.092490, 1},
		{0.168926, 8.265895, 1},
		{0, 0.010600, 1},
	}
	unscaledLMSToSB = sbToUnscaledLMS.MustInverse()

	// sbToLMS is scaled so that each cone fundamental has a maximum of 1.
	sbToLMS = mat3.Matrix{
		{0.191888, 0.747846, 0.067419},
		{0.019219, 0.940413, 0.113770},
		{0, 0.010590, 0.999052},
	}
	lmsToSB = sbToLMS.MustInverse()
)

// StilesBurchToLMS converts coordinates with respect to the Stiles & Burch
// primaries to cone activations.  If normalized is set, the cone
// fundamentals are scaled to a maximum of 1, otherwise the unscaled
// coefficients are used.
func StilesBurchToLMS(c colorimetry.RGB, normalized bool) colorimetry.LMS {
	M := sbToUnscaledLMS
	if normalized {
		M = sbToLMS
	}
	v := M.Apply(mat3.Vec{c.R, c.G, c.B})
	return colorimetry.LMS{L: v[0], M: v[1], S: v[2]}
}

// LMSToStilesBurch inverts [StilesBurchToLMS].  The activations must be
// non-negative, and normalized activations must not exceed 1.
func LMSToStilesBurch(c colorimetry.LMS, normalized bool) (colorimetry.RGB, error) {
	var errs []error
	for _, x := range []struct {
		name  string
		value float64
	}{{"L", c.L}, {"M", c.M}, {"S", c.S}} {
		if normalized {
			errs = append(errs, colorimetry.CheckRange("LMSToStilesBurch", x.name, x.value, 0, 1))
		} else {
			errs = append(errs, colorimetry.CheckNonNegative("LMSToStilesBurch", x.name, x.value))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return colorimetry.RGB{}, err
	}

	M := unscaledLMSToSB
	if normalized {
		M = lmsToSB
	}
	v := M.Apply(mat3.Vec{c.L, c.M, c.S})
	return colorimetry.RGB{R: v[0], G: v[1], B: v[2]}, nil
}
