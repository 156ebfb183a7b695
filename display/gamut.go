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

import "seehuhn.de/go/colorimetry"

// gamutTolerance is the maximal difference between the area of the gamut
// triangle and the sum of the areas of the three sub-triangles, for a point
// still to be considered inside the gamut.
const gamutTolerance = 5e-7

// Contains reports whether the chromaticity c lies inside the gamut
// triangle of the display, including its boundary.
func (d *Display) Contains(c colorimetry.Chromaticity) bool {
	r, g, b := d.primaries[0], d.primaries[1], d.primaries[2]
	a := area(r, g, b)
	a1 := area(c, g, b)
	a2 := area(r, c, b)
	a3 := area(r, g, c)
	diff := a1 + a2 + a3 - a
	return diff <= gamutTolerance && diff >= -gamutTolerance
}

// Edge returns the gamut triangle edge between the primaries i and j
// (0 = red, 1 = green, 2 = blue).
func (d *Display) Edge(i, j int) [2]colorimetry.Chromaticity {
	return [2]colorimetry.Chromaticity{d.primaries[i], d.primaries[j]}
}

func area(p1, p2, p3 colorimetry.Chromaticity) float64 {
	a := (p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y)) / 2
	if a < 0 {
		return -a
	}
	return a
}

// Indices of the primaries, for use with [Display.Edge].
const (
	Red = iota
	Green
	Blue
)
