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

package confusion

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/cone"
	"seehuhn.de/go/colorimetry/display"
	"seehuhn.de/go/colorimetry/internal/mat3"
)

// DefaultMultiples are the activation factors used by the colorimetry
// activation command.
var DefaultMultiples = []float64{0.85, 0.925, 1.0, 1.075, 1.15}

// Activation describes a colour obtained by scaling the activation of one
// cone type.
type Activation struct {
	Multiple     float64
	LMS          colorimetry.LMS
	XYZ          colorimetry.XYZ
	Chromaticity colorimetry.Chromaticity
	RGB          colorimetry.RGB // gamma encoded sRGB
	Hex          string
	Warning      colorimetry.Warning
}

// ActivationSeries scales the activation of cone c for the gamma encoded
// sRGB colour base by each of the given factors, leaving the other two cone
// activations unchanged.  All colours of the series lie on one confusion
// line of the cone type.
func ActivationSeries(c Cone, base colorimetry.RGB, multiples []float64) ([]Activation, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid cone type %s", c)
	}
	d := display.SRGB
	xyz, _, err := d.ToXYZ(base, true)
	if err != nil {
		return nil, err
	}
	lms0 := cone.ToLMS(cone.TwoDegree).Apply(mat3.Vec{xyz.X, xyz.Y, xyz.Z})
	toXYZ := cone.FromLMS(cone.TwoDegree)

	res := make([]Activation, 0, len(multiples))
	for _, m := range multiples {
		if err := colorimetry.CheckNonNegative("ActivationSeries", "multiple", m); err != nil {
			return nil, err
		}
		lms := lms0
		lms[c] *= m
		v := toXYZ.Apply(lms)
		xyz := colorimetry.XYZ{X: v[0], Y: v[1], Z: v[2]}

		rgb, warn, err := d.FromXYZ(xyz, true)
		if err != nil {
			return nil, err
		}
		xyY, err := d.XYZToXyY(xyz)
		if err != nil {
			return nil, err
		}
		hex := colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Clamped().Hex()
		res = append(res, Activation{
			Multiple:     m,
			LMS:          colorimetry.LMS{L: lms[0], M: lms[1], S: lms[2]},
			XYZ:          xyz,
			Chromaticity: xyY.Chromaticity,
			RGB:          rgb,
			Hex:          hex,
			Warning:      warn,
		})
	}
	return res, nil
}
