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

package spectrum

import (
	"fmt"
	"math"
)

// Physical constants, in SI units.
const (
	Planck       = 6.62607015e-34 // J s
	SpeedOfLight = 299792458      // m/s
	Boltzmann    = 1.380649e-23   // J/K
)

// The first and second radiation constants.
const (
	C1 = 2 * math.Pi * Planck * SpeedOfLight * SpeedOfLight // W m²
	C2 = Planck * SpeedOfLight / Boltzmann                  // m K
)

// RadiantExitance returns the spectral radiant exitance of a black body
// at the given temperature (in K), for the given wavelength (in nm), using
// Planck's law.  The result is in W/m³.
func RadiantExitance(wavelength, temperature float64) float64 {
	lambda := wavelength * 1e-9
	return C1 / math.Pow(lambda, 5) / math.Expm1(C2/(lambda*temperature))
}

// Blackbody returns the spectrum of a black body at the given temperature
// (in K), sampled at the given wavelengths.
func Blackbody(temperature float64, wavelengths []float64) (Spectrum, error) {
	if !(temperature > 0) || math.IsInf(temperature, 0) {
		return nil, fmt.Errorf("blackbody: invalid temperature %g K", temperature)
	}
	samples := make([]Sample, len(wavelengths))
	for i, wl := range wavelengths {
		if !(wl > 0) {
			return nil, fmt.Errorf("blackbody: invalid wavelength %g nm", wl)
		}
		samples[i] = Sample{Wavelength: wl, Value: RadiantExitance(wl, temperature)}
	}
	return New(samples)
}
