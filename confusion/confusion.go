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

// Package confusion implements confusion lines and copunctal points for the
// three types of missing-cone colour blindness.
//
// An observer who lacks one cone type cannot distinguish colours which only
// differ in the activation of the missing cone.  In the chromaticity
// diagram, such colours lie on straight lines, the confusion lines, which
// all meet in one point, the copunctal point of the cone.
package confusion

import (
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/colorimetry"
)

// Cone identifies one of the three cone types.
type Cone int

// These are the supported cone types.
const (
	Long   Cone = iota // protanopia
	Medium             // deuteranopia
	Short              // tritanopia
)

func (c Cone) String() string {
	switch c {
	case Long:
		return "long"
	case Medium:
		return "medium"
	case Short:
		return "short"
	default:
		return fmt.Sprintf("Cone(%d)", int(c))
	}
}

// Valid reports whether c is one of the three cone types.
func (c Cone) Valid() bool {
	return c >= Long && c <= Short
}

// ParseCone converts a cone name into a Cone.  The names "long", "medium"
// and "short" are accepted, as well as the abbreviations "l", "m" and "s" and
// the names of the corresponding colour blindness types.
func ParseCone(s string) (Cone, error) {
	switch strings.ToLower(s) {
	case "long", "l", "protan", "protanope", "protanopia":
		return Long, nil
	case "medium", "m", "deutan", "deuteranope", "deuteranopia":
		return Medium, nil
	case "short", "s", "tritan", "tritanope", "tritanopia":
		return Short, nil
	}
	return 0, fmt.Errorf("unknown cone type %q", s)
}

var copunctalPoints = [3]colorimetry.Chromaticity{
	Long:   {X: 0.746, Y: 0.254},
	Medium: {X: 1.400, Y: -0.400},
	Short:  {X: 0.175, Y: 0.000},
}

// CopunctalPoint returns the tabulated copunctal point of the cone type.
// The values agree with [EstimateCopunctal] to three decimal places.
func CopunctalPoint(c Cone) colorimetry.Chromaticity {
	if !c.Valid() {
		panic("invalid cone type " + c.String())
	}
	return copunctalPoints[c]
}

// Polar returns the polar coordinates of x relative to the copunctal point
// of the given cone.  The angle lies in [colorimetry.MinAngle,
// colorimetry.MaxAngle).
func Polar(x colorimetry.Chromaticity, c Cone) (angle, radius float64) {
	return colorimetry.ToPolar(x, CopunctalPoint(c))
}

// Rectangular is the inverse of [Polar].
func Rectangular(angle, radius float64, c Cone) (colorimetry.Chromaticity, error) {
	if err := colorimetry.CheckNonNegative("Rectangular", "radius", radius); err != nil {
		return colorimetry.Chromaticity{}, err
	}
	if math.IsInf(radius, 0) || math.IsNaN(angle) || math.IsInf(angle, 0) {
		return colorimetry.Chromaticity{}, fmt.Errorf("Rectangular: invalid coordinates (%g, %g)", angle, radius)
	}
	return colorimetry.FromPolar(angle, radius, CopunctalPoint(c)), nil
}

// Intersect returns the intersection of the line through a1 and a2 with the
// line through b1 and b2.  If the lines are parallel, both coordinates of the
// result are +Inf.
func Intersect(a1, a2, b1, b2 vec.Vec2) vec.Vec2 {
	la := cross(homogeneous(a1), homogeneous(a2))
	lb := cross(homogeneous(b1), homogeneous(b2))
	p := cross(la, lb)
	if p[2] == 0 {
		return vec.Vec2{X: math.Inf(1), Y: math.Inf(1)}
	}
	return vec.Vec2{X: p[0] / p[2], Y: p[1] / p[2]}
}

func homogeneous(v vec.Vec2) [3]float64 {
	return [3]float64{v.X, v.Y, 1}
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
