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

package locus

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/colorimetry"
)

func TestKnownValues(t *testing.T) {
	l := CIE1931()

	c, err := l.Chromaticity(550)
	if err != nil {
		t.Fatal(err)
	}
	want := colorimetry.Chromaticity{X: 0.30161, Y: 0.69231}
	if d := cmp.Diff(want, c, cmpopts.EquateApprox(0, 1e-4)); d != "" {
		t.Errorf("chromaticity at 550 nm (-want +got):\n%s", d)
	}

	angle, err := l.HueAngle(550)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(angle-(-4.68182)) > 1e-4 {
		t.Errorf("hue angle at 550 nm is %g, want -4.68182", angle)
	}
}

func TestBounds(t *testing.T) {
	l := CIE1931()
	lo, hi := l.WavelengthBounds()
	if lo != 380 || hi != 695 {
		t.Errorf("wavelength bounds [%g, %g], want [380, 695]", lo, hi)
	}
	aMin, aMax := l.AngleBounds()
	if math.Abs(aMin-(-6.4328)) > 1e-3 || math.Abs(aMax-(-1.9750)) > 1e-3 {
		t.Errorf("angle bounds [%g, %g]", aMin, aMax)
	}

	_, err := l.Chromaticity(700)
	if !errors.Is(err, &colorimetry.RangeError{}) {
		t.Errorf("Chromaticity(700): got %v, want a range error", err)
	}
	_, err = l.HueAngle(379)
	if !errors.Is(err, &colorimetry.RangeError{}) {
		t.Errorf("HueAngle(379): got %v, want a range error", err)
	}
}

func TestWavelengthRoundTrip(t *testing.T) {
	l := CIE1931()

	// at the tabulated wavelengths the interpolation is exact
	for _, p := range l.Points() {
		angle, err := l.HueAngle(p.Wavelength)
		if err != nil {
			t.Fatal(err)
		}
		wl, warn, err := l.Wavelength(angle)
		if err != nil {
			t.Fatal(err)
		}
		if warn != 0 {
			t.Errorf("unexpected warning %q", warn)
		}
		if math.Abs(wl-p.Wavelength) > 1e-6 {
			t.Errorf("%g nm -> %g -> %g nm", p.Wavelength, angle, wl)
		}
	}

	for wl := 450.0; wl <= 680; wl += 0.7 {
		angle, err := l.HueAngle(wl)
		if err != nil {
			t.Fatal(err)
		}
		back, _, err := l.Wavelength(angle)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(back-wl) > 0.1 {
			t.Errorf("%g nm -> %g -> %g nm", wl, angle, back)
		}
	}
}

func TestWavelengthWrap(t *testing.T) {
	l := CIE1931()
	angle, err := l.HueAngle(550)
	if err != nil {
		t.Fatal(err)
	}
	wl, warn, err := l.Wavelength(angle + 2*math.Pi)
	if err != nil {
		t.Fatal(err)
	}
	if !warn.Has(colorimetry.WarnAngleWrapped) {
		t.Error("missing warning for wrapped angle")
	}
	if math.Abs(wl-550) > 1e-6 {
		t.Errorf("got %g nm, want 550 nm", wl)
	}

	// straight down from white is the purple line
	_, _, err = l.Wavelength(-5 * math.Pi / 2)
	if !errors.Is(err, &colorimetry.RangeError{}) {
		t.Errorf("got %v, want a range error", err)
	}
}

func TestLocusOnLine(t *testing.T) {
	// points on the locus and the white point are collinear with the
	// direction given by the hue angle
	l := CIE1931()
	for _, wl := range []float64{470, 505, 575, 610} {
		c, err := l.Chromaticity(wl)
		if err != nil {
			t.Fatal(err)
		}
		angle, err := l.HueAngle(wl)
		if err != nil {
			t.Fatal(err)
		}
		a, _ := colorimetry.ToPolar(c, l.White())
		if math.Abs(a-angle) > 2e-3 {
			t.Errorf("%g nm: interpolated angle %g, angle of interpolated point %g", wl, angle, a)
		}
	}
}

func TestCIE1964(t *testing.T) {
	l := CIE1964()

	c, err := l.Chromaticity(550)
	if err != nil {
		t.Fatal(err)
	}
	want := colorimetry.Chromaticity{X: 0.34730, Y: 0.65009}
	if d := cmp.Diff(want, c, cmpopts.EquateApprox(0, 1e-4)); d != "" {
		t.Errorf("chromaticity at 550 nm (-want +got):\n%s", d)
	}

	angle, err := l.HueAngle(550)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(angle-(-4.81967)) > 1e-4 {
		t.Errorf("hue angle at 550 nm is %g, want -4.81967", angle)
	}

	lo, hi := l.WavelengthBounds()
	if lo != 380 || hi != 700 {
		t.Errorf("wavelength bounds [%g, %g], want [380, 700]", lo, hi)
	}
	aMin, aMax := l.AngleBounds()
	if math.Abs(aMin-(-6.4037)) > 1e-3 || math.Abs(aMax-(-1.9718)) > 1e-3 {
		t.Errorf("angle bounds [%g, %g]", aMin, aMax)
	}

	nm, _, err := l.Wavelength(angle)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(nm-550) > 1e-6 {
		t.Errorf("Wavelength(HueAngle(550)) = %g", nm)
	}
}
