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
	"fmt"

	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/internal/mat3"
)

// Display is a linear RGB display.
type Display struct {
	name    string
	toXYZ   mat3.Matrix
	fromXYZ mat3.Matrix
	srgb    bool

	white     colorimetry.XYZ
	primaries [3]colorimetry.Chromaticity
}

// The built-in displays.
var (
	// SRGB is the sRGB display with D65 white.
	SRGB = mustNew("srgb", [3][3]float64{
		{0.4124, 0.3576, 0.1805},
		{0.2126, 0.7152, 0.0722},
		{0.0193, 0.1192, 0.9505},
	}, true)

	// Interior has custom primaries which maximise the area of the gamut
	// triangle inside the CIE 1931 spectrum locus, while keeping D65 white
	// and the hue angles of red, yellow, cyan and blue.
	Interior = mustNew("interior", [3][3]float64{
		{0.7365, 0.0435, 0.1705},
		{0.3654, 0.5821, 0.0525},
		{0.0058, 0.0801, 1.0032},
	}, false)

	// Exterior has custom primaries whose gamut triangle tightly encloses
	// the CIE 1931 spectrum locus.  These primaries are not physically
	// realisable.
	Exterior = mustNew("exterior", [3][3]float64{
		{0.8812, -0.0405, 0.1097},
		{0.3247, 0.7334, -0.0581},
		{-0.2237, 0.0807, 1.2320},
	}, false)
)

// Builtin returns the built-in displays, indexed by name.
func Builtin() map[string]*Display {
	return map[string]*Display{
		SRGB.name:     SRGB,
		Interior.name: Interior,
		Exterior.name: Exterior,
	}
}

// New creates a display from the matrix which maps linear RGB values to
// XYZ tristimulus values.  If srgbTransfer is set, the sRGB transfer
// function is used for gamma correction.
func New(name string, toXYZ [3][3]float64, srgbTransfer bool) (*Display, error) {
	M := mat3.Matrix(toXYZ)
	inv, err := M.Inverse()
	if err != nil {
		return nil, fmt.Errorf("display %q: %w", name, err)
	}

	w := M.Apply(mat3.Vec{1, 1, 1})
	white := colorimetry.XYZ{X: w[0], Y: w[1], Z: w[2]}
	if !(white.Y > 0) || !(white.Sum() > 0) {
		return nil, fmt.Errorf("display %q: invalid white point", name)
	}

	d := &Display{
		name:    name,
		toXYZ:   M,
		fromXYZ: inv,
		srgb:    srgbTransfer,
		white:   white,
	}
	for j := range 3 {
		col := M.Column(j)
		c := colorimetry.XYZ{X: col[0], Y: col[1], Z: col[2]}
		if c.Sum() == 0 {
			return nil, fmt.Errorf("display %q: invalid primary %d", name, j)
		}
		d.primaries[j] = c.Chromaticity()
	}
	return d, nil
}

// FromPrimaries creates a display from the tristimulus values of its red,
// green and blue primaries at full intensity.
func FromPrimaries(name string, red, green, blue colorimetry.XYZ) (*Display, error) {
	if name == "" {
		return nil, errors.New("display: missing name")
	}
	M := mat3.FromColumns(
		mat3.Vec{red.X, red.Y, red.Z},
		mat3.Vec{green.X, green.Y, green.Z},
		mat3.Vec{blue.X, blue.Y, blue.Z},
	)
	return New(name, M, false)
}

func mustNew(name string, toXYZ [3][3]float64, srgbTransfer bool) *Display {
	d, err := New(name, toXYZ, srgbTransfer)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the name of the display.
func (d *Display) Name() string {
	return d.name
}

func (d *Display) String() string {
	return d.name
}

// Matrix returns the matrix which maps linear RGB to XYZ.
func (d *Display) Matrix() [3][3]float64 {
	return d.toXYZ
}

// InverseMatrix returns the matrix which maps XYZ to linear RGB.
func (d *Display) InverseMatrix() [3][3]float64 {
	return d.fromXYZ
}

// HasTransfer reports whether the display uses the sRGB transfer function.
func (d *Display) HasTransfer() bool {
	return d.srgb
}

// Realizable reports whether all primaries are physically realisable,
// i.e. whether the RGB to XYZ matrix has no negative entries.
func (d *Display) Realizable() bool {
	return d.toXYZ.NonNegative()
}

// WhiteXYZ returns the tristimulus values of the display white, RGB = (1, 1, 1).
func (d *Display) WhiteXYZ() colorimetry.XYZ {
	return d.white
}

// White returns the chromaticity of the display white.
func (d *Display) White() colorimetry.Chromaticity {
	return d.white.Chromaticity()
}

// Primaries returns the chromaticities of the red, green and blue
// primaries.  These are the vertices of the gamut triangle.
func (d *Display) Primaries() [3]colorimetry.Chromaticity {
	return d.primaries
}
