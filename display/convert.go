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

package display

import (
	"errors"

	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/internal/float"
	"seehuhn.de/go/colorimetry/internal/mat3"
)

// resultDigits is the number of decimal places kept in converted values.
const resultDigits = 8

// ToXYZ converts display RGB values to tristimulus values.
//
// All components of c must lie in [0, 1].  If gamma is set, c is taken
// to be gamma encoded and is decoded before the linear transformation.
func (d *Display) ToXYZ(c colorimetry.RGB, gamma bool) (colorimetry.XYZ, colorimetry.Warning, error) {
	err := errors.Join(
		colorimetry.CheckRange("ToXYZ", "red", c.R, 0, 1),
		colorimetry.CheckRange("ToXYZ", "green", c.G, 0, 1),
		colorimetry.CheckRange("ToXYZ", "blue", c.B, 0, 1),
	)
	if err != nil {
		return colorimetry.XYZ{}, 0, err
	}

	var warn colorimetry.Warning
	if gamma {
		if d.srgb {
			c = c.Decode()
		} else {
			warn |= colorimetry.WarnGammaIgnored
		}
	}

	v := d.toXYZ.Apply(mat3.Vec{c.R, c.G, c.B})
	res := colorimetry.XYZ{
		X: float.Round(v[0], resultDigits),
		Y: float.Round(v[1], resultDigits),
		Z: float.Round(v[2], resultDigits),
	}
	return res, warn, nil
}

// FromXYZ converts tristimulus values to display RGB values.
//
// A tristimulus value is only required to be non-negative if the
// corresponding row of the inverse display matrix has no negative
// entries.  Colours the display cannot show are converted all the same,
// and the problem is reported via the returned warnings.  If gamma is set,
// the result is gamma encoded.
func (d *Display) FromXYZ(c colorimetry.XYZ, gamma bool) (colorimetry.RGB, colorimetry.Warning, error) {
	components := []float64{c.X, c.Y, c.Z}
	fields := []string{"X", "Y", "Z"}
	var errs []error
	for i := range 3 {
		if d.fromXYZ.NonNegativeRow(i) {
			errs = append(errs, colorimetry.CheckNonNegative("FromXYZ", fields[i], components[i]))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return colorimetry.RGB{}, 0, err
	}

	var warn colorimetry.Warning
	if gamma && !d.srgb {
		warn |= colorimetry.WarnGammaIgnored
	}
	if d.Realizable() {
		if !d.Contains(d.chromaticity(c)) {
			warn |= colorimetry.WarnOutsideGamut
		}
	} else {
		warn |= colorimetry.WarnGamutUnchecked
	}
	if c.Y > d.white.Y*(1+1e-9) {
		warn |= colorimetry.WarnAboveWhite
	}

	v := d.fromXYZ.Apply(mat3.Vec{c.X, c.Y, c.Z})
	rgb := colorimetry.RGB{R: v[0], G: v[1], B: v[2]}
	if gamma && d.srgb {
		rgb = rgb.Encode()
	}
	if !rgb.InUnitCube() {
		warn |= colorimetry.WarnOutsideUnitCube
	}

	rgb = colorimetry.RGB{
		R: float.Round(rgb.R, resultDigits),
		G: float.Round(rgb.G, resultDigits),
		B: float.Round(rgb.B, resultDigits),
	}
	return rgb, warn, nil
}

// ToXyY converts display RGB values to chromoluminance.
// Black is assigned the chromaticity of the display white.
func (d *Display) ToXyY(c colorimetry.RGB, gamma bool) (colorimetry.XyY, colorimetry.Warning, error) {
	xyz, warn, err := d.ToXYZ(c, gamma)
	if err != nil {
		return colorimetry.XyY{}, 0, err
	}
	xyY, err := d.XYZToXyY(xyz)
	return xyY, warn, err
}

// FromXyY converts chromoluminance to display RGB values.
func (d *Display) FromXyY(c colorimetry.XyY, gamma bool) (colorimetry.RGB, colorimetry.Warning, error) {
	xyz, err := colorimetry.XyYToXYZ(c)
	if err != nil {
		return colorimetry.RGB{}, 0, err
	}
	return d.FromXYZ(xyz, gamma)
}

// XYZToXyY converts tristimulus values to chromoluminance, using the
// chromaticity of the display white for black.
func (d *Display) XYZToXyY(c colorimetry.XYZ) (colorimetry.XyY, error) {
	return colorimetry.XYZToXyY(c, d.White())
}

// chromaticity returns the chromaticity of c without range checks,
// using the display white for black.
func (d *Display) chromaticity(c colorimetry.XYZ) colorimetry.Chromaticity {
	if c.Sum() == 0 {
		return d.White()
	}
	return c.Chromaticity()
}
