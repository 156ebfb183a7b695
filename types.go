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
	"math"

	"seehuhn.de/go/geom/vec"
)

// XYZ holds CIE tristimulus values.
type XYZ struct {
	X, Y, Z float64
}

// Sum returns X+Y+Z.
func (c XYZ) Sum() float64 {
	return c.X + c.Y + c.Z
}

// Chromaticity returns the (x, y) chromaticity of c.
// The result is NaN if X+Y+Z is zero.
func (c XYZ) Chromaticity() Chromaticity {
	s := c.Sum()
	return Chromaticity{X: c.X / s, Y: c.Y / s}
}

// Scale multiplies all tristimulus values by f.
func (c XYZ) Scale(f float64) XYZ {
	return XYZ{X: c.X * f, Y: c.Y * f, Z: c.Z * f}
}

// Chromaticity holds CIE 1931 (x, y) chromaticity coordinates.
type Chromaticity struct {
	X, Y float64
}

// Vec returns the chromaticity as a point in the plane.
func (c Chromaticity) Vec() vec.Vec2 {
	return vec.Vec2{X: c.X, Y: c.Y}
}

// FromVec converts a point in the (x, y) plane to a chromaticity.
func FromVec(v vec.Vec2) Chromaticity {
	return Chromaticity{X: v.X, Y: v.Y}
}

// Dist returns the Euclidean distance between two chromaticities.
func (c Chromaticity) Dist(other Chromaticity) float64 {
	return math.Hypot(c.X-other.X, c.Y-other.Y)
}

// UV converts c to CIE 1960 (u, v) coordinates, without range checks.
func (c Chromaticity) UV() UV {
	d := 12*c.Y - 2*c.X + 3
	return UV{U: 4 * c.X / d, V: 6 * c.Y / d}
}

// IsFinite reports whether both coordinates are finite.
func (c Chromaticity) IsFinite() bool {
	return isFinite(c.X) && isFinite(c.Y)
}

// XyY holds a chromoluminance value.
type XyY struct {
	Chromaticity
	Luminance float64
}

// XYZ converts c to tristimulus values, without range checks.
func (c XyY) XYZ() XYZ {
	f := c.Luminance / c.Y
	return XYZ{X: f * c.X, Y: c.Luminance, Z: f * (1 - c.X - c.Y)}
}

// UV holds CIE 1960 (u, v) coordinates.
type UV struct {
	U, V float64
}

// Chromaticity converts c to (x, y) coordinates, without range checks.
func (c UV) Chromaticity() Chromaticity {
	d := 2*c.U - 8*c.V + 4
	return Chromaticity{X: 3 * c.U / d, Y: 2 * c.V / d}
}

// Dist returns the Euclidean distance between two points in the (u, v)
// plane.
func (c UV) Dist(other UV) float64 {
	return math.Hypot(c.U-other.U, c.V-other.V)
}

// RGB holds the coordinates of a colour with respect to three primaries.
type RGB struct {
	R, G, B float64
}

// InUnitCube reports whether all three components lie in [0, 1].
func (c RGB) InUnitCube() bool {
	return inUnit(c.R) && inUnit(c.G) && inUnit(c.B)
}

// Scale multiplies all three components by f.
func (c RGB) Scale(f float64) RGB {
	return RGB{R: c.R * f, G: c.G * f, B: c.B * f}
}

// LMS holds the activations of the long, medium and short wavelength cones.
type LMS struct {
	L, M, S float64
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

func inUnit(x float64) bool {
	return x >= 0 && x <= 1
}
