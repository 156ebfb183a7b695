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

package planck

import (
	"fmt"
	"math"

	"seehuhn.de/go/colorimetry"
)

// Default parameters for [Locus.Series].
const (
	DefaultMinTemperature = 100
	DefaultMaxTemperature = 1e10
	DefaultStep           = 0.0025
)

// Series generates temperatures from lo to hi, such that the (x, y)
// chromaticities of consecutive temperatures are at least step apart.
//
// Starting from the current temperature T, the candidates T+10, T+100, ...,
// T+10^10 are tried in turn, and the first candidate further than step from
// the previous chromaticity is appended.  The candidate T+10^10 is always
// accepted.  The series stops once hi is reached or exceeded.
func (l *Locus) Series(lo, hi, step float64) ([]float64, []colorimetry.Chromaticity, error) {
	if !(lo > 0) || !(hi > lo) || math.IsInf(hi, 0) {
		return nil, nil, fmt.Errorf("temperature series: invalid range [%g, %g]", lo, hi)
	}
	if !(step > 0 && step < 0.5) {
		return nil, nil, fmt.Errorf("temperature series: invalid step %g", step)
	}

	c, _, err := l.Chromaticity(lo)
	if err != nil {
		return nil, nil, err
	}
	temps := []float64{lo}
	chroma := []colorimetry.Chromaticity{c}
	for temps[len(temps)-1] < hi {
		last := temps[len(temps)-1]
		prev := chroma[len(chroma)-1]
		for p := 1; p <= 10; p++ {
			T := last + math.Pow(10, float64(p))
			c, _, err := l.Chromaticity(T)
			if err != nil {
				return nil, nil, err
			}
			if c.Dist(prev) > step || p == 10 {
				temps = append(temps, T)
				chroma = append(chroma, c)
				break
			}
		}
	}
	return temps, chroma, nil
}
