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
	"math"
	"testing"
)

func TestRadiantExitance(t *testing.T) {
	got := RadiantExitance(500, 5000)
	want := 3.8035861e13
	if math.Abs(got-want)/want > 1e-6 {
		t.Errorf("RadiantExitance(500, 5000) = %g, want %g", got, want)
	}
}

// TestWien checks that the maximum of the spectrum is where Wien's
// displacement law predicts.
func TestWien(t *testing.T) {
	const b = 2.897771955e-3 // m K
	for _, T := range []float64{3000, 5000, 6500} {
		peak := b / T * 1e9
		m := RadiantExitance(peak, T)
		if RadiantExitance(peak-1, T) >= m || RadiantExitance(peak+1, T) >= m {
			t.Errorf("T=%g: %g nm is not the maximum", T, peak)
		}
	}
}

func TestBlackbody(t *testing.T) {
	s, err := Blackbody(6500, CIE1931.Wavelengths())
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 81 {
		t.Fatalf("got %d samples, want 81", len(s))
	}
	_, c, err := CIE1931.Chromaticity(s)
	if err != nil {
		t.Fatal(err)
	}
	// the 6500 K point on the Planckian locus
	if math.Abs(c.X-0.3135) > 0.002 || math.Abs(c.Y-0.3236) > 0.002 {
		t.Errorf("chromaticity of a 6500 K black body is %v", c)
	}

	if _, err := Blackbody(0, []float64{500}); err == nil {
		t.Error("expected an error for T=0")
	}
}
