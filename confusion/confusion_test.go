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

package confusion

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/cone"
	"seehuhn.de/go/colorimetry/display"
)

func TestIntersect(t *testing.T) {
	p := Intersect(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: 1, Y: 0})
	if d := cmp.Diff(vec.Vec2{X: 0.5, Y: 0.5}, p, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("unexpected intersection (-want +got):\n%s", d)
	}

	// vertical and horizontal lines
	p = Intersect(vec.Vec2{X: 2, Y: -1}, vec.Vec2{X: 2, Y: 5}, vec.Vec2{X: 0, Y: 3}, vec.Vec2{X: 1, Y: 3})
	if d := cmp.Diff(vec.Vec2{X: 2, Y: 3}, p, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("unexpected intersection (-want +got):\n%s", d)
	}

	p = Intersect(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: 1, Y: 2})
	if !math.IsInf(p.X, 1) || !math.IsInf(p.Y, 1) {
		t.Errorf("parallel lines intersect at %v", p)
	}
}

func TestParseCone(t *testing.T) {
	for _, c := range []Cone{Long, Medium, Short} {
		got, err := ParseCone(c.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != c {
			t.Errorf("ParseCone(%q) = %v", c.String(), got)
		}
	}
	if c, err := ParseCone("Deutan"); err != nil || c != Medium {
		t.Errorf("ParseCone(\"Deutan\") = %v, %v", c, err)
	}
	if _, err := ParseCone("rod"); err == nil {
		t.Error("expected an error for an unknown cone type")
	}
}

func TestEstimateCopunctal(t *testing.T) {
	want := map[Cone]colorimetry.Chromaticity{
		Long:   {X: 0.74649, Y: 0.25351},
		Medium: {X: 1.39987, Y: -0.39987},
		Short:  {X: 0.17479, Y: 0},
	}
	for c, w := range want {
		t.Run(c.String(), func(t *testing.T) {
			est, err := EstimateCopunctal(c)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(w, est.Point, cmpopts.EquateApprox(0, 1e-4)); d != "" {
				t.Errorf("unexpected copunctal point (-want +got):\n%s", d)
			}
			if len(est.Lines) != 3 || len(est.Intersections) != 2 {
				t.Errorf("got %d lines and %d intersections", len(est.Lines), len(est.Intersections))
			}
			if dist := est.Point.Dist(CopunctalPoint(c)); dist > 2e-3 {
				t.Errorf("estimate %v is %g away from the tabulated value", est.Point, dist)
			}
		})
	}
}

func TestEstimateWithTooFewColours(t *testing.T) {
	_, err := EstimateWith(display.SRGB, cone.TwoDegree, Long, []colorimetry.RGB{Grey, Pink})
	if err == nil {
		t.Error("expected an error")
	}
}

func TestPolarRoundTrip(t *testing.T) {
	x := colorimetry.Chromaticity{X: 0.3, Y: 0.4}
	for _, c := range []Cone{Long, Medium, Short} {
		angle, radius := Polar(x, c)
		back, err := Rectangular(angle, radius, c)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(x, back, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("%s: round trip failed (-want +got):\n%s", c, d)
		}
	}
	if _, err := Rectangular(-3, -0.1, Long); err == nil {
		t.Error("expected an error for a negative radius")
	}
}

func TestActivationSeries(t *testing.T) {
	for _, c := range []Cone{Long, Medium, Short} {
		series, err := ActivationSeries(c, Grey, DefaultMultiples)
		if err != nil {
			t.Fatal(err)
		}
		if len(series) != len(DefaultMultiples) {
			t.Fatalf("got %d entries", len(series))
		}

		mid := series[2]
		if d := cmp.Diff(Grey, mid.RGB, cmpopts.EquateApprox(0, 1e-6)); d != "" {
			t.Errorf("%s: unscaled colour differs from base (-want +got):\n%s", c, d)
		}
		for _, a := range series {
			h, err := colorful.Hex(a.Hex)
			if err != nil {
				t.Fatal(err)
			}
			want := colorful.Color{R: a.RGB.R, G: a.RGB.G, B: a.RGB.B}.Clamped()
			if h.DistanceRgb(want) > 1/255.0 {
				t.Errorf("%s ×%g: hex code %s does not match %v", c, a.Multiple, a.Hex, a.RGB)
			}
		}

		// all colours lie on a confusion line
		est, err := EstimateCopunctal(c)
		if err != nil {
			t.Fatal(err)
		}
		p0 := est.Point.Vec()
		d1 := series[0].Chromaticity.Vec().Sub(p0)
		for _, a := range series[1:] {
			d2 := a.Chromaticity.Vec().Sub(p0)
			cross := (d1.X*d2.Y - d1.Y*d2.X) / (d1.Length() * d2.Length())
			if math.Abs(cross) > 1e-4 {
				t.Errorf("%s ×%g: colour not on the confusion line (%g)", c, a.Multiple, cross)
			}
		}
	}
}

func testImage() *image.NRGBA {
	colors := []color.NRGBA{
		{200, 50, 50, 255},
		{50, 200, 50, 255},
		{50, 50, 200, 255},
		{128, 128, 128, 255},
		{0, 0, 0, 255},
		{255, 255, 255, 255},
	}
	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := range 4 {
		for x := range 6 {
			img.SetNRGBA(x, y, colors[(x+y)%len(colors)])
		}
	}
	return img
}

func TestUniqueColors(t *testing.T) {
	counts := UniqueColors(testImage())
	if len(counts) != 6 {
		t.Errorf("got %d colours, want 6", len(counts))
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != 24 {
		t.Errorf("got %d pixels, want 24", total)
	}
	if counts[Pixel{0, 0, 0}] != 4 {
		t.Errorf("got %d black pixels, want 4", counts[Pixel{0, 0, 0}])
	}
}

func TestFilter(t *testing.T) {
	img := testImage()
	for _, c := range []Cone{Long, Medium, Short} {
		t.Run(c.String(), func(t *testing.T) {
			out, err := Filter(img, c)
			if err != nil {
				t.Fatal(err)
			}
			if out.Bounds() != img.Bounds() {
				t.Fatalf("got bounds %v, want %v", out.Bounds(), img.Bounds())
			}
			if out.RGBAAt(0, 1) != out.RGBAAt(1, 0) {
				t.Errorf("equal colours are mapped differently")
			}
			if got := out.RGBAAt(4, 0); got != (color.RGBA{A: 255}) {
				t.Errorf("black is mapped to %v", got)
			}

			// all colours end up at the same distance from the copunctal point
			var radius float64
			for p := range UniqueColors(out) {
				if p == (Pixel{}) {
					continue
				}
				rgb := colorimetry.RGB{R: float64(p.R) / 255, G: float64(p.G) / 255, B: float64(p.B) / 255}
				xyY, _, err := display.SRGB.ToXyY(rgb, false)
				if err != nil {
					t.Fatal(err)
				}
				r := xyY.Chromaticity.Dist(CopunctalPoint(c))
				if radius == 0 {
					radius = r
				} else if math.Abs(r-radius) > 5e-3 {
					t.Errorf("colour %v at distance %g, expected %g", p, r, radius)
				}
			}
		})
	}
}

func TestArcBoundsMultipleCrossings(t *testing.T) {
	// A circle around the white point which is larger than the distance to
	// every edge, but smaller than the distance to every primary, leaves
	// and re-enters the gamut near each primary.
	d := display.SRGB
	centre := d.White()
	radius := 0.23
	angle, _ := colorimetry.ToPolar(d.Primaries()[display.Red], centre)

	lo, hi, err := arcBounds(d, centre, radius, angle)
	if err != nil {
		t.Fatal(err)
	}
	if !(lo < angle && angle < hi) {
		t.Fatalf("arc [%g, %g] does not contain %g", lo, hi, angle)
	}
	for a := lo; a <= hi; a += 0.01 {
		if c := colorimetry.FromPolar(a, radius, centre); !d.Contains(c) {
			t.Errorf("angle %g: %v is outside the gamut", a, c)
		}
	}
}
