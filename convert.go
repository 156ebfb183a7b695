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

import "errors"

// XYZToXyY converts tristimulus values to chromoluminance.
//
// All tristimulus values must be non-negative.  Black (X+Y+Z = 0) has no
// chromaticity of its own; in this case the chromaticity black is used,
// normally the white point of the display at hand.
func XYZToXyY(c XYZ, black Chromaticity) (XyY, error) {
	err := errors.Join(
		CheckNonNegative("XYZToXyY", "X", c.X),
		CheckNonNegative("XYZToXyY", "Y", c.Y),
		CheckNonNegative("XYZToXyY", "Z", c.Z),
	)
	if err != nil {
		return XyY{}, err
	}

	if c.Sum() == 0 {
		return XyY{Chromaticity: black}, nil
	}
	return XyY{Chromaticity: c.Chromaticity(), Luminance: c.Y}, nil
}

// XyYToXYZ converts chromoluminance to tristimulus values.
//
// The chromaticity must satisfy 0 ≤ x ≤ 1 and 0 < y ≤ 1, and the luminance
// must be non-negative.
func XyYToXYZ(c XyY) (XYZ, error) {
	err := errors.Join(
		CheckRange("XyYToXYZ", "x", c.X, 0, 1),
		checkOpenMin("XyYToXYZ", "y", c.Y, 0, 1),
		CheckNonNegative("XyYToXYZ", "Y", c.Luminance),
	)
	if err != nil {
		return XYZ{}, err
	}
	return c.XYZ(), nil
}

// XYToUV converts CIE 1931 (x, y) chromaticity to CIE 1960 (u, v)
// coordinates.  The arguments must satisfy 0 ≤ x ≤ 1 and 0 < y ≤ 1.
//
// For chromaticities far outside the spectrum locus, u can exceed 1.  Such
// results are not accepted by [UVToXY].
func XYToUV(c Chromaticity) (UV, error) {
	err := errors.Join(
		CheckRange("XYToUV", "x", c.X, 0, 1),
		checkOpenMin("XYToUV", "y", c.Y, 0, 1),
	)
	if err != nil {
		return UV{}, err
	}
	return c.UV(), nil
}

// UVToXY converts CIE 1960 (u, v) coordinates to CIE 1931 (x, y)
// chromaticity.  Both coordinates must lie in [0, 1].
func UVToXY(c UV) (Chromaticity, error) {
	err := errors.Join(
		CheckRange("UVToXY", "u", c.U, 0, 1),
		CheckRange("UVToXY", "v", c.V, 0, 1),
	)
	if err != nil {
		return Chromaticity{}, err
	}
	return c.Chromaticity(), nil
}
