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

import "strings"

// Warning is a set of conditions which make a computed result questionable.
// The computation is still carried out when a warning is raised.
type Warning uint8

// These are the conditions which can be reported as a [Warning].
const (
	// WarnGammaIgnored indicates that gamma correction was requested for a
	// display without a known transfer function.
	WarnGammaIgnored Warning = 1 << iota

	// WarnOutsideGamut indicates that a chromaticity lies outside the
	// gamut triangle of the display.
	WarnOutsideGamut

	// WarnGamutUnchecked indicates that the gamut test was skipped,
	// because the display primaries are not physically realisable.
	WarnGamutUnchecked

	// WarnAboveWhite indicates a luminance above the luminance of the
	// display white.
	WarnAboveWhite

	// WarnOutsideUnitCube indicates RGB values outside [0, 1].
	WarnOutsideUnitCube

	// WarnAngleWrapped indicates that a hue angle was wrapped into the
	// interval [-5π/2, -π/2).
	WarnAngleWrapped
)

var warningNames = []string{
	"gamma correction ignored",
	"outside gamut",
	"gamut not checked",
	"luminance above white",
	"RGB outside unit cube",
	"hue angle wrapped",
}

// Has reports whether all conditions in x are set in w.
func (w Warning) Has(x Warning) bool {
	return w&x == x
}

func (w Warning) String() string {
	if w == 0 {
		return "none"
	}
	var parts []string
	for i, name := range warningNames {
		if w&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}
