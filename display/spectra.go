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
	"fmt"

	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/spectrum"
)

// FromSpectra creates a display from the measured emission spectra of its
// primaries at full intensity, for example the phosphors of a CRT monitor.
//
// The tristimulus values of the primaries are scaled so that the display
// white has luminance Y = 1.
func FromSpectra(name string, obs *spectrum.Observer, red, green, blue spectrum.Spectrum) (*Display, error) {
	var prim [3]colorimetry.XYZ
	for i, s := range []spectrum.Spectrum{red, green, blue} {
		xyz, err := obs.Tristimulus(s)
		if err != nil {
			return nil, fmt.Errorf("display %q: primary %d: %w", name, i, err)
		}
		prim[i] = xyz
	}

	Y := prim[0].Y + prim[1].Y + prim[2].Y
	if !(Y > 0) {
		return nil, fmt.Errorf("display %q: primaries have no luminance", name)
	}
	for i := range prim {
		prim[i] = prim[i].Scale(1 / Y)
	}
	return FromPrimaries(name, prim[0], prim[1], prim[2])
}
