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

// Package locus interpolates along the spectrum locus.
//
// The spectrum locus is the curve traced in the chromaticity diagram by
// monochromatic light.  A [Locus] converts between wavelengths,
// chromaticities on the locus and hue angles around a white point, using
// quadratic spline interpolation of the tabulated colour matching
// functions.
//
// Hue angles follow the convention of [colorimetry.ToPolar]: they decrease
// monotonically with wavelength, from about -1.97 at 380 nm to about -6.43
// at the red end of the locus.
package locus

import (
	"fmt"
	"sync"

	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/display"
	"seehuhn.de/go/colorimetry/spectrum"
	"seehuhn.de/go/colorimetry/spline"
)

// Locus interpolates the spectrum locus of an observer.
// A Locus is immutable and can be used concurrently.
type Locus struct {
	obs   *spectrum.Observer
	white colorimetry.Chromaticity

	x, y, angle *spline.Quadratic
	wavelength  *spline.Quadratic

	points []spectrum.LocusPoint
}

// New builds the interpolation tables for the spectrum locus of obs.
// Hue angles are measured around the given white point.
func New(obs *spectrum.Observer, white colorimetry.Chromaticity) (*Locus, error) {
	points := obs.Locus()
	n := len(points)
	if n < 3 {
		return nil, fmt.Errorf("locus %s: too few points", obs.Name())
	}

	wl := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	angles := make([]float64, n)
	for i, p := range points {
		wl[i] = p.Wavelength
		xs[i] = p.X
		ys[i] = p.Y
		angles[i], _ = colorimetry.ToPolar(p.Chromaticity, white)
		if i > 0 && !(angles[i] < angles[i-1]) {
			return nil, fmt.Errorf("locus %s: hue angle not decreasing at %g nm",
				obs.Name(), p.Wavelength)
		}
	}

	l := &Locus{
		obs:    obs,
		white:  white,
		points: points,
	}
	var err error
	if l.x, err = spline.NewQuadratic(wl, xs); err != nil {
		return nil, err
	}
	if l.y, err = spline.NewQuadratic(wl, ys); err != nil {
		return nil, err
	}
	if l.angle, err = spline.NewQuadratic(wl, angles); err != nil {
		return nil, err
	}
	if l.wavelength, err = spline.NewQuadratic(angles, wl); err != nil {
		return nil, err
	}
	return l, nil
}

var cie1931 = sync.OnceValue(func() *Locus {
	l, err := New(spectrum.CIE1931, display.SRGB.White())
	if err != nil {
		panic(err)
	}
	return l
})

// CIE1931 returns the spectrum locus of the CIE 1931 2° observer, with hue
// angles measured around the white point of the sRGB display.
func CIE1931() *Locus {
	return cie1931()
}

var cie1964 = sync.OnceValue(func() *Locus {
	l, err := New(spectrum.CIE1964, display.SRGB.White())
	if err != nil {
		panic(err)
	}
	return l
})

// CIE1964 returns the spectrum locus of the CIE 1964 10° observer, with hue
// angles measured around the white point of the sRGB display.
func CIE1964() *Locus {
	return cie1964()
}

// Observer returns the observer whose spectrum locus is interpolated.
func (l *Locus) Observer() *spectrum.Observer {
	return l.obs
}

// White returns the centre used for hue angles.
func (l *Locus) White() colorimetry.Chromaticity {
	return l.white
}

// Points returns the tabulated points of the spectrum locus.
// The result must not be modified.
func (l *Locus) Points() []spectrum.LocusPoint {
	return l.points
}

// WavelengthBounds returns the range of wavelengths covered by the locus.
func (l *Locus) WavelengthBounds() (float64, float64) {
	return l.x.Domain()
}

// AngleBounds returns the range of hue angles covered by the locus.
func (l *Locus) AngleBounds() (float64, float64) {
	return l.wavelength.Domain()
}

// Chromaticity returns the chromaticity of monochromatic light of the given
// wavelength.
func (l *Locus) Chromaticity(wavelength float64) (colorimetry.Chromaticity, error) {
	if err := l.checkWavelength("Chromaticity", wavelength); err != nil {
		return colorimetry.Chromaticity{}, err
	}
	x, err := l.x.At(wavelength)
	if err != nil {
		return colorimetry.Chromaticity{}, err
	}
	y, err := l.y.At(wavelength)
	if err != nil {
		return colorimetry.Chromaticity{}, err
	}
	return colorimetry.Chromaticity{X: x, Y: y}, nil
}

// HueAngle returns the hue angle around the white point of monochromatic
// light of the given wavelength.
func (l *Locus) HueAngle(wavelength float64) (float64, error) {
	if err := l.checkWavelength("HueAngle", wavelength); err != nil {
		return 0, err
	}
	return l.angle.At(wavelength)
}

// Wavelength returns the wavelength of the spectrum locus in the direction
// of the given hue angle.
//
// Angles outside [colorimetry.MinAngle, colorimetry.MaxAngle) are first
// wrapped into this interval, and [colorimetry.WarnAngleWrapped] is
// reported.  Angles which point to the purple line, rather than to the
// spectrum locus, are rejected with a [*colorimetry.RangeError].
func (l *Locus) Wavelength(angle float64) (float64, colorimetry.Warning, error) {
	var warn colorimetry.Warning
	angle, wrapped := colorimetry.WrapAngle(angle)
	if wrapped {
		warn |= colorimetry.WarnAngleWrapped
	}
	lo, hi := l.AngleBounds()
	if err := colorimetry.CheckRange("Wavelength", "angle", angle, lo, hi); err != nil {
		return 0, warn, err
	}
	wl, err := l.wavelength.At(angle)
	return wl, warn, err
}

func (l *Locus) checkWavelength(op string, wavelength float64) error {
	lo, hi := l.WavelengthBounds()
	return colorimetry.CheckRange(op, "wavelength", wavelength, lo, hi)
}
