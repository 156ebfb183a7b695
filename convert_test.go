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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestXYZRoundTrip(t *testing.T) {
	testCases := []XYZ{
		{0.3, 0.4, 0.5},
		{0.95047, 1, 1.08883},
		{0.01, 0.001, 0.2},
		{0.6, 0.3, 0},
	}
	for _, c := range testCases {
		xyY, err := XYZToXyY(c, Chromaticity{})
		if err != nil {
			t.Fatal(err)
		}
		back, err := XyYToXYZ(xyY)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(c, back, approx); d != "" {
			t.Errorf("round trip of %v failed (-want +got):\n%s", c, d)
		}
	}
}

func TestXYZToXyYBlack(t *testing.T) {
	white := Chromaticity{X: 0.3127, Y: 0.3290}
	got, err := XYZToXyY(XYZ{}, white)
	if err != nil {
		t.Fatal(err)
	}
	want := XyY{Chromaticity: white, Luminance: 0}
	if got != want {
		t.Errorf("XYZToXyY(black) = %v, want %v", got, want)
	}
}

func TestUVRoundTrip(t *testing.T) {
	for i := 0; i <= 16; i++ {
		for j := 1; i+j <= 20; j++ {
			c := Chromaticity{X: 0.05 * float64(i), Y: 0.05 * float64(j)}
			uv, err := XYToUV(c)
			if err != nil {
				t.Fatal(err)
			}
			if uv.U > 1 || uv.V > 1 {
				if _, err := UVToXY(uv); !errors.Is(err, &RangeError{}) {
					t.Errorf("UVToXY(%v): got %v, want a range error", uv, err)
				}
				continue
			}
			back, err := UVToXY(uv)
			if err != nil {
				t.Fatalf("UVToXY(%v): %v", uv, err)
			}
			if d := cmp.Diff(c, back, approx); d != "" {
				t.Errorf("round trip of %v failed (-want +got):\n%s", c, d)
			}
		}
	}
}

func TestKnownUV(t *testing.T) {
	// D65 white in CIE 1960 coordinates
	uv, err := XYToUV(Chromaticity{X: 0.31271, Y: 0.32902})
	if err != nil {
		t.Fatal(err)
	}
	want := UV{U: 0.19783, V: 0.31222}
	if d := cmp.Diff(want, uv, cmpopts.EquateApprox(0, 1e-4)); d != "" {
		t.Errorf("unexpected (u, v) (-want +got):\n%s", d)
	}
}

func TestRangeErrors(t *testing.T) {
	type testCase struct {
		name string
		err  error
		msg  string
	}
	_, err1 := XYToUV(Chromaticity{X: 0.3, Y: 0})
	_, err2 := XYToUV(Chromaticity{X: 2, Y: 0.5})
	_, err3 := UVToXY(UV{U: -0.1, V: 0.3})
	_, err4 := XYZToXyY(XYZ{X: 1, Y: -1, Z: 0}, Chromaticity{})
	_, err5 := XyYToXYZ(XyY{Chromaticity{0.3, 0.3}, math.NaN()})
	testCases := []testCase{
		{"y zero", err1, "XYToUV: invalid y=0∉(0,1]"},
		{"x too large", err2, "XYToUV: invalid x=2∉[0,1]"},
		{"negative u", err3, "UVToXY: invalid u=-0.1∉[0,1]"},
		{"negative Y", err4, "XYZToXyY: invalid Y=-1∉[0,∞)"},
		{"NaN luminance", err5, "XyYToXYZ: invalid Y=NaN∉[0,∞)"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(tc.err, &RangeError{}) {
				t.Errorf("error %q is not a RangeError", tc.err)
			}
			if tc.err.Error() != tc.msg {
				t.Errorf("got message %q, want %q", tc.err.Error(), tc.msg)
			}
		})
	}
}

func TestCheckRange(t *testing.T) {
	type testCase struct {
		x     float64
		valid bool
	}
	testCases := []testCase{
		{0, true},
		{1, true},
		{0.5, true},
		{-1e-12, false},
		{1.000001, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}
	for i, tc := range testCases {
		err := CheckRange("f", "x", tc.x, 0, 1)
		if (err == nil) != tc.valid {
			t.Errorf("Test case %d failed: CheckRange(%g) = %v, want valid=%v",
				i, tc.x, err, tc.valid)
		}
	}
}

func TestWarningString(t *testing.T) {
	w := WarnOutsideGamut | WarnAboveWhite
	if got, want := w.String(), "outside gamut, luminance above white"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !w.Has(WarnAboveWhite) || w.Has(WarnGammaIgnored) {
		t.Errorf("Has() gives wrong results for %q", w)
	}
	if got := Warning(0).String(); got != "none" {
		t.Errorf("empty warning set: got %q", got)
	}
}
